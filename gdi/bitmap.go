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

package gdi

import (
	"encoding/binary"

	"seehuhn.de/go/emf/parser"
)

// Compression is the compression method of a bitmap.
type Compression uint32

// These are the possible values for Compression.
const (
	BIRGB       Compression = 0x0000
	BIRLE8      Compression = 0x0001
	BIRLE4      Compression = 0x0002
	BIBitfields Compression = 0x0003
	BIJPEG      Compression = 0x0004
	BIPNG       Compression = 0x0005
	BICMYK      Compression = 0x000B
	BICMYKRLE8  Compression = 0x000C
	BICMYKRLE4  Compression = 0x000D
)

// Header sizes of the supported bitmap header variants.
const (
	bitmapCoreHeaderSize = 12
	bitmapInfoHeaderSize = 40
)

// BitmapHeader holds the fields of a BITMAPINFOHEADER.  Bitmaps with a
// BITMAPCOREHEADER are converted to this form, with Core set to true.
type BitmapHeader struct {
	HeaderSize     uint32
	Core           bool
	Width          int32
	Height         int32 // negative for top-down bitmaps
	Planes         uint16
	BitCount       uint16
	Compression    Compression
	ImageSize      uint32
	XPelsPerMeter  int32
	YPelsPerMeter  int32
	ColorUsed      uint32
	ColorImportant uint32
}

// DIB is a device-independent bitmap, as embedded in EMF records.
type DIB struct {
	Header BitmapHeader

	// Info is the complete bitmap info buffer: the header, optional
	// color masks and the color table.
	Info []byte

	// Bits holds the pixel data.  For BIJPEG and BIPNG compression this is
	// a complete JPEG or PNG file.
	Bits []byte
}

// DecodeDIB decodes a bitmap from the bitmap info buffer bmi and the pixel
// data bits, as stored by the bit-block transfer records.
func DecodeDIB(bmi, bits []byte) (*DIB, error) {
	r := parser.NewReader(bmi)
	size := parser.NewSize(uint32(len(bmi)))
	b := parser.NewBody(r, 0, size)

	h := BitmapHeader{HeaderSize: b.U32()}
	switch {
	case b.Err() != nil:
		return nil, b.Err()
	case h.HeaderSize == bitmapCoreHeaderSize:
		h.Core = true
		h.Width = int32(b.U16())
		h.Height = int32(b.U16())
		h.Planes = b.U16()
		h.BitCount = b.U16()
	case h.HeaderSize >= bitmapInfoHeaderSize:
		h.Width = b.I32()
		h.Height = b.I32()
		h.Planes = b.U16()
		h.BitCount = b.U16()
		h.Compression = Compression(b.U32())
		h.ImageSize = b.U32()
		h.XPelsPerMeter = b.I32()
		h.YPelsPerMeter = b.I32()
		h.ColorUsed = b.U32()
		h.ColorImportant = b.U32()
	default:
		return nil, parser.Unexpected("bitmap header size %d", h.HeaderSize)
	}
	if b.Err() != nil {
		return nil, b.Err()
	}

	if h.Planes != 1 {
		return nil, parser.Unexpected("bitmap has %d planes", h.Planes)
	}
	switch h.BitCount {
	case 0, 1, 4, 8, 16, 24, 32:
	default:
		return nil, parser.EnumValue("BitCount", h.BitCount)
	}
	if h.Width < 0 {
		return nil, parser.Unexpected("bitmap width %d", h.Width)
	}

	return &DIB{Header: h, Info: bmi, Bits: bits}, nil
}

// Width returns the width of the bitmap in pixels.
func (d *DIB) Width() int {
	return int(d.Header.Width)
}

// Height returns the height of the bitmap in pixels.
func (d *DIB) Height() int {
	h := int(d.Header.Height)
	if h < 0 {
		h = -h
	}
	return h
}

// BMPFile returns the bitmap as the contents of a BMP file, by prepending
// a BITMAPFILEHEADER to the bitmap info and pixel data.
func (d *DIB) BMPFile() []byte {
	const fileHeaderSize = 14
	total := fileHeaderSize + len(d.Info) + len(d.Bits)
	res := make([]byte, fileHeaderSize, total)
	res[0] = 'B'
	res[1] = 'M'
	binary.LittleEndian.PutUint32(res[2:], uint32(total))
	// two reserved uint16 values are zero
	binary.LittleEndian.PutUint32(res[10:], uint32(fileHeaderSize+len(d.Info)))
	res = append(res, d.Info...)
	res = append(res, d.Bits...)
	return res
}
