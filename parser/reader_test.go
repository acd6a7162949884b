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
	"errors"
	"testing"
)

func TestPos(t *testing.T) {
	r := NewReader([]byte{'0', '1', '2', '3', '4', '5', '6', '7'})

	if pos := r.Pos(); pos != 0 {
		t.Errorf("wrong position, expected 0 but got %d", pos)
	}

	_, err := r.ReadUInt16()
	if err != nil {
		t.Fatal(err)
	}
	if pos := r.Pos(); pos != 2 {
		t.Errorf("wrong position, expected 2 but got %d", pos)
	}

	err = r.SeekPos(5)
	if err != nil {
		t.Fatal(err)
	}
	if r.Pos() != 5 {
		t.Errorf("wrong position, expected 5 but got %d", r.Pos())
	}
	if r.Len() != 3 {
		t.Errorf("wrong length, expected 3 but got %d", r.Len())
	}
}

func TestLittleEndian(t *testing.T) {
	r := NewReader([]byte{
		0x01, 0x02,             // uint16
		0xFE, 0xFF,             // int16
		0x01, 0x02, 0x03, 0x04, // uint32
		0xFF, 0xFF, 0xFF, 0xFF, // int32
		0x00, 0x00, 0x80, 0x3F, // float32
	})

	u16, err := r.ReadUInt16()
	if err != nil || u16 != 0x0201 {
		t.Errorf("ReadUInt16: got %#x, %v", u16, err)
	}
	i16, err := r.ReadInt16()
	if err != nil || i16 != -2 {
		t.Errorf("ReadInt16: got %d, %v", i16, err)
	}
	u32, err := r.ReadUInt32()
	if err != nil || u32 != 0x04030201 {
		t.Errorf("ReadUInt32: got %#x, %v", u32, err)
	}
	i32, err := r.ReadInt32()
	if err != nil || i32 != -1 {
		t.Errorf("ReadInt32: got %d, %v", i32, err)
	}
	f32, err := r.ReadFloat32()
	if err != nil || f32 != 1 {
		t.Errorf("ReadFloat32: got %g, %v", f32, err)
	}
}

func TestShortRead(t *testing.T) {
	r := NewReader([]byte{1, 2, 3})
	_, err := r.ReadUInt32()
	var re *ReadError
	if !errors.As(err, &re) {
		t.Fatalf("expected ReadError, got %v", err)
	}
	if re.Want != 4 || re.Have != 3 || re.Pos != 0 {
		t.Errorf("unexpected error details: %+v", re)
	}

	// a failed read does not advance the reader
	if r.Pos() != 0 {
		t.Errorf("position moved to %d", r.Pos())
	}
}

func TestReadVariableZero(t *testing.T) {
	r := NewReader(nil)
	buf, err := r.ReadVariable(0)
	if err != nil {
		t.Fatal(err)
	}
	if buf == nil || len(buf) != 0 {
		t.Errorf("expected empty, non-nil buffer, got %v", buf)
	}

	_, err = r.ReadVariable(1)
	if err == nil {
		t.Error("reading past the end succeeded")
	}
}

func TestReadFixedCopies(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	r := NewReader(data)
	buf, err := r.ReadFixed(4)
	if err != nil {
		t.Fatal(err)
	}
	data[0] = 99
	if buf[0] != 1 {
		t.Error("ReadFixed returned a view into the input buffer")
	}
}
