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

// Package parser implements the low-level decoding of EMF data.
//
// A [Reader] reads little-endian values from an in-memory buffer.  A [Size]
// keeps track of how many bytes of the current record have been consumed,
// and a [Body] combines the two, so that every field read is accounted for
// against the declared record size.
package parser

import (
	"encoding/binary"
	"math"
)

// Reader reads little-endian binary data from a byte slice.
type Reader struct {
	data []byte
	pos  int
}

// NewReader allocates a new Reader which reads from data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Pos returns the current reading position.
func (r *Reader) Pos() int64 {
	return int64(r.pos)
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	return len(r.data) - r.pos
}

// Size returns the total size of the underlying buffer.
func (r *Reader) Size() int64 {
	return int64(len(r.data))
}

// SeekPos changes the reading position.
func (r *Reader) SeekPos(pos int64) error {
	if pos < 0 || pos > int64(len(r.data)) {
		return &ReadError{Pos: pos, Want: 0, Have: 0}
	}
	r.pos = int(pos)
	return nil
}

// ReadFixed reads exactly n bytes.  The returned slice is a copy and can be
// retained by the caller.
func (r *Reader) ReadFixed(n int) ([]byte, error) {
	buf, err := r.next(n)
	if err != nil {
		return nil, err
	}
	res := make([]byte, n)
	copy(res, buf)
	return res, nil
}

// ReadVariable reads n bytes.  If n is zero, an empty slice is returned
// and the reader is not touched, even at the end of the input.
func (r *Reader) ReadVariable(n int) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}
	return r.ReadFixed(n)
}

// Skip advances the reading position by n bytes.
func (r *Reader) Skip(n int) error {
	_, err := r.next(n)
	return err
}

// ReadUInt8 reads a single uint8 value.
func (r *Reader) ReadUInt8() (uint8, error) {
	buf, err := r.next(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadUInt16 reads a single little-endian uint16 value.
func (r *Reader) ReadUInt16() (uint16, error) {
	buf, err := r.next(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf), nil
}

// ReadInt16 reads a single little-endian int16 value.
func (r *Reader) ReadInt16() (int16, error) {
	val, err := r.ReadUInt16()
	return int16(val), err
}

// ReadUInt32 reads a single little-endian uint32 value.
func (r *Reader) ReadUInt32() (uint32, error) {
	buf, err := r.next(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf), nil
}

// ReadInt32 reads a single little-endian int32 value.
func (r *Reader) ReadInt32() (int32, error) {
	val, err := r.ReadUInt32()
	return int32(val), err
}

// ReadFloat32 reads a single little-endian IEEE 754 float32 value.
func (r *Reader) ReadFloat32() (float32, error) {
	val, err := r.ReadUInt32()
	return math.Float32frombits(val), err
}

// PeekUInt32 returns the next uint32 value without advancing the reader.
func (r *Reader) PeekUInt32() (uint32, error) {
	if r.Len() < 4 {
		return 0, &ReadError{Pos: int64(r.pos), Want: 4, Have: r.Len()}
	}
	return binary.LittleEndian.Uint32(r.data[r.pos:]), nil
}

// next returns a view of the next n bytes and advances the reader.
func (r *Reader) next(n int) ([]byte, error) {
	if n < 0 || n > len(r.data)-r.pos {
		return nil, &ReadError{Pos: int64(r.pos), Want: n, Have: len(r.data) - r.pos}
	}
	buf := r.data[r.pos : r.pos+n]
	r.pos += n
	return buf, nil
}
