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

// Package gdi implements the data structures which are shared between
// different EMF records: points and rectangles, colors, pens, brushes,
// fonts, palettes, regions, bitmaps and the associated enumerations.
//
// The Read* functions decode a structure from a [parser.Body], so that all
// bytes read are accounted for in the enclosing record.
package gdi

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/emf/parser"
)

// PointL is a point with 32-bit signed coordinates.
type PointL struct {
	X, Y int32
}

// ReadPointL decodes a PointL (8 bytes).
func ReadPointL(b *parser.Body) PointL {
	return PointL{X: b.I32(), Y: b.I32()}
}

// Vec returns the point as a vector.
func (p PointL) Vec() vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// PointS is a point with 16-bit signed coordinates.
type PointS struct {
	X, Y int16
}

// ReadPointS decodes a PointS (4 bytes).
func ReadPointS(b *parser.Body) PointS {
	return PointS{X: b.I16(), Y: b.I16()}
}

// Vec returns the point as a vector.
func (p PointS) Vec() vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// RectL is a rectangle with 32-bit signed coordinates.  Both the top-left
// and the bottom-right corners are inside the rectangle.
type RectL struct {
	Left, Top, Right, Bottom int32
}

// ReadRectL decodes a RectL (16 bytes).
func ReadRectL(b *parser.Body) RectL {
	return RectL{Left: b.I32(), Top: b.I32(), Right: b.I32(), Bottom: b.I32()}
}

// Rect returns the rectangle as a normalized [rect.Rect].
func (r RectL) Rect() rect.Rect {
	res := rect.Rect{
		LLx: float64(r.Left),
		LLy: float64(r.Top),
		URx: float64(r.Right),
		URy: float64(r.Bottom),
	}
	if res.LLx > res.URx {
		res.LLx, res.URx = res.URx, res.LLx
	}
	if res.LLy > res.URy {
		res.LLy, res.URy = res.URy, res.LLy
	}
	return res
}

// IsEmpty reports whether the rectangle has zero area.
func (r RectL) IsEmpty() bool {
	return r.Left == r.Right || r.Top == r.Bottom
}

// Intersect returns the intersection of two rectangles.
// If the rectangles do not overlap, the result is empty.
func (r RectL) Intersect(s RectL) RectL {
	res := RectL{
		Left:   max(r.Left, s.Left),
		Top:    max(r.Top, s.Top),
		Right:  min(r.Right, s.Right),
		Bottom: min(r.Bottom, s.Bottom),
	}
	if res.Left > res.Right || res.Top > res.Bottom {
		return RectL{}
	}
	return res
}

// Union returns the smallest rectangle which contains both r and s.
func (r RectL) Union(s RectL) RectL {
	return RectL{
		Left:   min(r.Left, s.Left),
		Top:    min(r.Top, s.Top),
		Right:  max(r.Right, s.Right),
		Bottom: max(r.Bottom, s.Bottom),
	}
}

// Offset returns the rectangle moved by (dx, dy).
func (r RectL) Offset(dx, dy int32) RectL {
	return RectL{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// SizeL is a two-dimensional extent.
//
// The EMF format defines the fields as unsigned, but negative values are
// used in practice to flip axes, so the values are decoded as signed.
type SizeL struct {
	CX, CY int32
}

// ReadSizeL decodes a SizeL (8 bytes).
func ReadSizeL(b *parser.Body) SizeL {
	return SizeL{CX: b.I32(), CY: b.I32()}
}

// XForm is a two-dimensional affine transformation.  A point (x, y) is
// mapped to (x*M11 + y*M21 + Dx, x*M12 + y*M22 + Dy).
type XForm struct {
	M11, M12, M21, M22, Dx, Dy float32
}

// ReadXForm decodes an XForm (24 bytes).
func ReadXForm(b *parser.Body) XForm {
	return XForm{
		M11: b.F32(),
		M12: b.F32(),
		M21: b.F32(),
		M22: b.F32(),
		Dx:  b.F32(),
		Dy:  b.F32(),
	}
}

// Matrix converts the transformation to a [matrix.Matrix].
// Both types use the same element order.
func (x XForm) Matrix() matrix.Matrix {
	return matrix.Matrix{
		float64(x.M11), float64(x.M12),
		float64(x.M21), float64(x.M22),
		float64(x.Dx), float64(x.Dy),
	}
}

// IdentityXForm is the identity transformation.
var IdentityXForm = XForm{M11: 1, M22: 1}

// PointXY28_4 is a point with 28.4 fixed-point coordinates, as used in
// embedded PostScript data.
type PointXY28_4 struct {
	X, Y int32
}

// Float returns the coordinates as floating point values.
func (p PointXY28_4) Float() (float64, float64) {
	return float64(p.X) / 16, float64(p.Y) / 16
}
