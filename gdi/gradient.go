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

// TriVertex is a vertex of a gradient fill, with 16-bit color channels.
type TriVertex struct {
	X, Y  int32
	Red   uint16
	Green uint16
	Blue  uint16
	Alpha uint16
}

// ReadTriVertex decodes a TriVertex (16 bytes).
func ReadTriVertex(b *parser.Body) TriVertex {
	return TriVertex{
		X:     b.I32(),
		Y:     b.I32(),
		Red:   b.U16(),
		Green: b.U16(),
		Blue:  b.U16(),
		Alpha: b.U16(),
	}
}

// Color returns the vertex color, reduced to 8 bits per channel.
func (v TriVertex) Color() ColorRef {
	return RGB(uint8(v.Red>>8), uint8(v.Green>>8), uint8(v.Blue>>8))
}

// GradientRect specifies a rectangle by the indices of two vertices.
type GradientRect struct {
	UpperLeft  uint32
	LowerRight uint32
}

// GradientTriangle specifies a triangle by the indices of three vertices.
type GradientTriangle struct {
	Vertex1, Vertex2, Vertex3 uint32
}

// GradientObject is either GradientRect or GradientTriangle.
type GradientObject interface {
	Vertices() []uint32
}

// Vertices implements the GradientObject interface.
func (g GradientRect) Vertices() []uint32 {
	return []uint32{g.UpperLeft, g.LowerRight}
}

// Vertices implements the GradientObject interface.
func (g GradientTriangle) Vertices() []uint32 {
	return []uint32{g.Vertex1, g.Vertex2, g.Vertex3}
}

// ReadGradientObjects decodes n gradient objects of the shape given by mode.
// All vertex indices must be smaller than nVer.
func ReadGradientObjects(b *parser.Body, mode GradientFillMode, n, nVer uint32) []GradientObject {
	elemSize := 8
	if mode == GradientFillTriangle {
		elemSize = 12
	}
	k := b.Count(n, elemSize)
	res := make([]GradientObject, 0, k)
	for range k {
		var obj GradientObject
		if mode == GradientFillTriangle {
			obj = GradientTriangle{b.U32(), b.U32(), b.U32()}
		} else {
			obj = GradientRect{b.U32(), b.U32()}
		}
		if b.Err() != nil {
			return nil
		}
		for _, idx := range obj.Vertices() {
			if idx >= nVer {
				b.Failf("gradient vertex index %d out of range (%d vertices)", idx, nVer)
				return nil
			}
		}
		res = append(res, obj)
	}
	return res
}
