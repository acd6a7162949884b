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

// Package wmf reads the framing of Windows Metafiles (WMF).
//
// WMF is the 16-bit predecessor of the EMF format.  This package validates
// the optional placeable header and the META_HEADER record, and splits the
// rest of the file into records.  The contents of the records are not
// interpreted, except for the records which determine the image bounds.
package wmf

import (
	"log/slog"

	"seehuhn.de/go/emf/gdi"
	"seehuhn.de/go/emf/parser"
)

// PlaceableKey is the first value of a placeable metafile header.
const PlaceableKey = 0x9AC6CDD7

const (
	placeableSize  = 22
	headerWords    = 9
	minRecordWords = 3
)

// Metafile types, as stored in the Type field of the META_HEADER record.
const (
	MemoryMetafile = 0x0001
	DiskMetafile   = 0x0002
)

// Metafile versions.
const (
	Version1 = 0x0100
	Version3 = 0x0300
)

// Placeable is the optional header which precedes the metafile and gives
// the image size in physical units.
type Placeable struct {
	Bounds   gdi.RectL // in logical units
	Inch     uint16    // logical units per inch
	Checksum uint16
}

// Header is the META_HEADER record.
type Header struct {
	Type       uint16
	Version    uint16
	Size       uint32 // in 16-bit words
	NumObjects uint16
	MaxRecord  uint32 // in 16-bit words
}

// Record is one record of a metafile.
type Record struct {
	// Offset is the position of the record in the input.
	Offset int64

	Function Function

	// Params holds the record parameters, following the size and
	// function fields.
	Params []byte
}

// Metafile is a decoded WMF file.
type Metafile struct {
	Placeable *Placeable
	Header    Header

	// Records lists all records after the header.  The final META_EOF
	// record is not included.
	Records []Record

	// ChecksumOK is false if the placeable header has a wrong checksum.
	ChecksumOK bool
}

// Decode splits a WMF file into records.
func Decode(data []byte) (*Metafile, error) {
	r := parser.NewReader(data)
	m := &Metafile{ChecksumOK: true}

	key, err := r.PeekUInt32()
	if err != nil {
		return nil, parser.FailedRead(err)
	}
	if key == PlaceableKey {
		buf, err := r.ReadFixed(placeableSize)
		if err != nil {
			return nil, parser.FailedRead(err)
		}
		m.Placeable, m.ChecksumOK = decodePlaceable(buf)
	}

	start := r.Pos()
	buf, err := r.ReadFixed(2 * headerWords)
	if err != nil {
		return nil, parser.FailedRead(err)
	}
	h, err := decodeHeader(buf)
	if err != nil {
		return nil, parser.WithPos(err, start)
	}
	m.Header = h

	for {
		pos := r.Pos()
		size, err := r.ReadUInt32()
		if err != nil {
			return nil, parser.WithPos(parser.Unexpected("missing META_EOF record"), pos)
		}
		fn, err := r.ReadUInt16()
		if err != nil {
			return nil, parser.FailedRead(err)
		}
		if size < minRecordWords {
			return nil, parser.WithPos(parser.Unexpected("%s record has size %d words", Function(fn), size), pos)
		}
		nParams := 2 * (uint64(size) - minRecordWords)
		if nParams > uint64(r.Len()) {
			return nil, parser.WithPos(parser.Unexpected("%s record of %d words exceeds the input", Function(fn), size), pos)
		}
		params, err := r.ReadFixed(int(nParams))
		if err != nil {
			return nil, parser.FailedRead(err)
		}
		if Function(fn) == MetaEOF {
			break
		}
		m.Records = append(m.Records, Record{Offset: pos, Function: Function(fn), Params: params})
	}
	return m, nil
}

func decodePlaceable(buf []byte) (*Placeable, bool) {
	u16 := func(i int) uint16 { return uint16(buf[i]) | uint16(buf[i+1])<<8 }
	i16 := func(i int) int32 { return int32(int16(u16(i))) }

	p := &Placeable{
		Bounds: gdi.RectL{
			Left:   i16(6),
			Top:    i16(8),
			Right:  i16(10),
			Bottom: i16(12),
		},
		Inch:     u16(14),
		Checksum: u16(20),
	}
	var sum uint16
	for i := 0; i < 20; i += 2 {
		sum ^= u16(i)
	}
	return p, sum == p.Checksum
}

func decodeHeader(buf []byte) (Header, error) {
	b := parser.NewBody(parser.NewReader(buf), 0, parser.NewSize(uint32(len(buf))))
	h := Header{Type: b.U16()}
	hdrSize := b.U16()
	h.Version = b.U16()
	h.Size = uint32(b.U16()) | uint32(b.U16())<<16
	h.NumObjects = b.U16()
	h.MaxRecord = b.U32()
	numMembers := b.U16()
	if err := b.Err(); err != nil {
		return h, err
	}

	switch {
	case h.Type != MemoryMetafile && h.Type != DiskMetafile:
		return h, parser.EnumValue("MetafileType", h.Type)
	case hdrSize != headerWords:
		return h, parser.Unexpected("META_HEADER size %d words", hdrSize)
	case h.Version != Version1 && h.Version != Version3:
		return h, parser.Unsupported("WMF version %#04x", h.Version)
	case numMembers != 0:
		return h, parser.Unexpected("NumberOfMembers is %d", numMembers)
	}
	return h, nil
}

// Bounds returns the image bounds in logical units.  If there is a
// placeable header, its bounding box is used.  Otherwise the bounds are
// taken from the last META_SETWINDOWORG and META_SETWINDOWEXT records.
func (m *Metafile) Bounds() (gdi.RectL, bool) {
	if m.Placeable != nil {
		return m.Placeable.Bounds, true
	}

	var org gdi.PointL
	var ext gdi.SizeL
	haveExt := false
	for _, rec := range m.Records {
		if len(rec.Params) < 4 {
			continue
		}
		// Coordinates are stored in the order y, x.
		y := int32(int16(uint16(rec.Params[0]) | uint16(rec.Params[1])<<8))
		x := int32(int16(uint16(rec.Params[2]) | uint16(rec.Params[3])<<8))
		switch rec.Function {
		case MetaSetWindowOrg:
			org = gdi.PointL{X: x, Y: y}
		case MetaSetWindowExt:
			ext = gdi.SizeL{CX: x, CY: y}
			haveExt = true
		}
	}
	if !haveExt || ext.CX == 0 || ext.CY == 0 {
		return gdi.RectL{}, false
	}
	return gdi.RectL{
		Left:   org.X,
		Top:    org.Y,
		Right:  org.X + ext.CX,
		Bottom: org.Y + ext.CY,
	}, true
}

// LogValue implements [slog.LogValuer].
func (r Record) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("function", r.Function.String()),
		slog.Int("size", len(r.Params)+2*minRecordWords),
		slog.Int64("offset", r.Offset))
}
