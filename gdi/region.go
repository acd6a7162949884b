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
	"seehuhn.de/go/emf/parser"
)

const (
	regionDataHeaderSize = 0x00000020
	rdhRectangles        = 0x00000001
)

// RegionDataHeader describes the rectangles which make up a region.
type RegionDataHeader struct {
	CountRects uint32

	// RgnSize is the size of the rectangle buffer in bytes.  This may be
	// larger than 16*CountRects, or zero if the size is unknown.
	RgnSize uint32

	Bounds RectL
}

// ReadRegionDataHeader decodes a RegionDataHeader (32 bytes).
func ReadRegionDataHeader(b *parser.Body) RegionDataHeader {
	size := b.U32()
	tp := b.U32()
	h := RegionDataHeader{
		CountRects: b.U32(),
		RgnSize:    b.U32(),
		Bounds:     ReadRectL(b),
	}
	if b.Err() != nil {
		return h
	}
	if size != regionDataHeaderSize {
		b.Failf("RegionDataHeader size %d", size)
	}
	if tp != rdhRectangles {
		b.Failf("RegionDataHeader type %d", tp)
	}
	return h
}

// RegionData is a region, given as a list of rectangles.
type RegionData struct {
	Header RegionDataHeader
	Rects  []RectL
}

// ReadRegionData decodes a RegionData object of the given size in bytes.
func ReadRegionData(b *parser.Body, size uint32) *RegionData {
	if size < regionDataHeaderSize {
		b.Failf("region data size %d is too small", size)
		return nil
	}
	start := b.Consumed()
	h := ReadRegionDataHeader(b)
	if b.Err() != nil {
		return nil
	}
	if uint64(h.CountRects)*16 > uint64(size)-regionDataHeaderSize {
		b.Failf("region with %d rectangles does not fit into %d bytes",
			h.CountRects, size)
		return nil
	}
	res := &RegionData{
		Header: h,
		Rects:  make([]RectL, b.Count(h.CountRects, 16)),
	}
	for i := range res.Rects {
		res.Rects[i] = ReadRectL(b)
	}

	// skip unused space at the end of the region buffer
	used := b.Consumed() - start
	if b.Err() == nil && used < size {
		b.Skip(int(size - used))
	}
	return res
}

// Bounds returns the bounding rectangle of the region.
func (r *RegionData) Bounds() RectL {
	if r == nil {
		return RectL{}
	}
	return r.Header.Bounds
}
