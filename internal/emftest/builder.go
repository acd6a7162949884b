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

// Package emftest helps to construct EMF data for tests.
package emftest

import (
	"encoding/binary"
	"math"
	"unicode/utf16"

	"seehuhn.de/go/emf/parser"
)

// Builder accumulates little-endian binary data.
type Builder struct {
	buf []byte
}

// Data returns the accumulated bytes.
func (b *Builder) Data() []byte {
	return b.buf
}

// Len returns the number of bytes written so far.
func (b *Builder) Len() int {
	return len(b.buf)
}

// U8 appends a byte.
func (b *Builder) U8(x uint8) *Builder {
	b.buf = append(b.buf, x)
	return b
}

// U16 appends 16-bit unsigned integers.
func (b *Builder) U16(xx ...uint16) *Builder {
	for _, x := range xx {
		b.buf = binary.LittleEndian.AppendUint16(b.buf, x)
	}
	return b
}

// I16 appends a 16-bit signed integer.
func (b *Builder) I16(x int16) *Builder {
	return b.U16(uint16(x))
}

// U32 appends a 32-bit unsigned integer.
func (b *Builder) U32(xx ...uint32) *Builder {
	for _, x := range xx {
		b.buf = binary.LittleEndian.AppendUint32(b.buf, x)
	}
	return b
}

// I32 appends 32-bit signed integers.
func (b *Builder) I32(xx ...int32) *Builder {
	for _, x := range xx {
		b.buf = binary.LittleEndian.AppendUint32(b.buf, uint32(x))
	}
	return b
}

// F32 appends 32-bit floating point numbers.
func (b *Builder) F32(xx ...float32) *Builder {
	for _, x := range xx {
		b.buf = binary.LittleEndian.AppendUint32(b.buf, math.Float32bits(x))
	}
	return b
}

// Bytes appends raw bytes.
func (b *Builder) Bytes(data []byte) *Builder {
	b.buf = append(b.buf, data...)
	return b
}

// Zero appends n zero bytes.
func (b *Builder) Zero(n int) *Builder {
	b.buf = append(b.buf, make([]byte, n)...)
	return b
}

// Pad appends zero bytes until the length is a multiple of 4.
func (b *Builder) Pad() *Builder {
	for len(b.buf)%4 != 0 {
		b.buf = append(b.buf, 0)
	}
	return b
}

// UTF16 appends s as UTF-16LE, padded with zeros to size bytes.
// If size is 0, no padding is added.
func (b *Builder) UTF16(s string, size int) *Builder {
	start := len(b.buf)
	for _, u := range utf16.Encode([]rune(s)) {
		b.U16(u)
	}
	if size > 0 {
		b.Zero(size - (len(b.buf) - start))
	}
	return b
}

// Record appends a complete record of the given type.  The size field is
// filled in after body has written the record body.
func (b *Builder) Record(tp uint32, body func(r *Builder)) *Builder {
	start := len(b.buf)
	b.U32(tp, 0)
	if body != nil {
		body(b)
	}
	binary.LittleEndian.PutUint32(b.buf[start+4:], uint32(len(b.buf)-start))
	return b
}

// Header appends a minimal EMR_HEADER record without extensions.  The
// record counts and the file size are not filled in.
func (b *Builder) Header(bounds, frame [4]int32) *Builder {
	return b.HeaderWithHandles(bounds, frame, 1)
}

// HeaderWithHandles is like Header, but sets the size of the object table.
func (b *Builder) HeaderWithHandles(bounds, frame [4]int32, handles uint16) *Builder {
	return b.Record(1, func(r *Builder) {
		r.I32(bounds[:]...)
		r.I32(frame[:]...)
		r.U32(0x464D4520) // signature
		r.U32(0x00010000) // version
		r.U32(0, 0)       // bytes, records
		r.U16(handles, 0) // handles, reserved
		r.U32(0, 0)       // description
		r.U32(0)          // palette entries
		r.I32(1024, 768)  // device in pixels
		r.I32(320, 240)   // device in millimeters
	})
}

// EOF appends an EMR_EOF record with an empty palette.
func (b *Builder) EOF() *Builder {
	return b.Record(14, func(r *Builder) {
		r.U32(0, 16, 20)
	})
}

// Body returns a record body decoder for data, treating all of data as
// the body.
func Body(data []byte) *parser.Body {
	return parser.NewBody(parser.NewReader(data), 0, parser.NewSize(uint32(len(data))))
}
