// seehuhn.de/go/emf - a library for reading EMF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package parser

import (
	"bytes"
	"strings"
	"unicode"
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"
)

// UTF16LEToString decodes a little-endian UTF-16 string of exactly len(buf)
// bytes.  The length must be even, and unpaired surrogates are an error.
func UTF16LEToString(buf []byte) (string, error) {
	if len(buf)%2 != 0 {
		return "", Unexpected("UTF-16 data has odd length %d", len(buf))
	}
	units := make([]uint16, len(buf)/2)
	for i := range units {
		units[i] = uint16(buf[2*i]) | uint16(buf[2*i+1])<<8
	}

	var sb strings.Builder
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case utf16.IsSurrogate(rune(u)):
			if u >= 0xDC00 || i+1 >= len(units) {
				return "", Unexpected("unpaired UTF-16 surrogate %04x", u)
			}
			r := utf16.DecodeRune(rune(u), rune(units[i+1]))
			if r == unicode.ReplacementChar {
				return "", Unexpected("unpaired UTF-16 surrogate %04x", u)
			}
			sb.WriteRune(r)
			i++
		default:
			sb.WriteRune(rune(u))
		}
	}
	return sb.String(), nil
}

// NullTerminatedUTF16LE decodes a little-endian UTF-16 string which is
// terminated by the first zero code unit.  If there is no zero code unit,
// the whole buffer is used.  A trailing odd byte is ignored.
func NullTerminatedUTF16LE(buf []byte) (string, error) {
	n := len(buf) &^ 1
	for i := 0; i+1 < len(buf); i += 2 {
		if buf[i] == 0 && buf[i+1] == 0 {
			n = i
			break
		}
	}
	return UTF16LEToString(buf[:n])
}

// ANSIToString decodes an 8-bit string using the Windows-1252 code page.
func ANSIToString(buf []byte) string {
	res, err := charmap.Windows1252.NewDecoder().Bytes(buf)
	if err != nil {
		// Windows-1252 maps every byte, so this cannot happen.
		return string(buf)
	}
	return string(res)
}

// NullTerminatedANSI decodes an 8-bit string which is terminated by the
// first zero byte.  If there is no zero byte, the whole buffer is used.
func NullTerminatedANSI(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return ANSIToString(buf)
}
