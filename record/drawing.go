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

package record

import (
	"seehuhn.de/go/emf/gdi"
	"seehuhn.de/go/emf/parser"
)

// Poly holds the records EMR_POLYBEZIER, EMR_POLYGON, EMR_POLYLINE,
// EMR_POLYBEZIERTO and EMR_POLYLINETO.
type Poly struct {
	Type   Type
	Bounds gdi.RectL
	Points []gdi.PointL
}

// RecordType implements the [Record] interface.
func (r *Poly) RecordType() Type { return r.Type }

func decodePoly(tp Type, b *parser.Body) Record {
	if !accepts(tp, b, polyTypes) || !minSize(tp, b, 28) {
		return nil
	}
	rec := &Poly{Type: tp, Bounds: gdi.ReadRectL(b)}
	n := b.U32()
	rec.Points = readPointsL(b, n)
	return rec
}

// Poly16 holds the 16-bit variants of the [Poly] records.
type Poly16 struct {
	Type   Type
	Bounds gdi.RectL
	Points []gdi.PointS
}

// RecordType implements the [Record] interface.
func (r *Poly16) RecordType() Type { return r.Type }

func decodePoly16(tp Type, b *parser.Body) Record {
	if !accepts(tp, b, poly16Types) || !minSize(tp, b, 28) {
		return nil
	}
	rec := &Poly16{Type: tp, Bounds: gdi.ReadRectL(b)}
	n := b.U32()
	rec.Points = readPointsS(b, n)
	return rec
}

// PolyPoly holds the records EMR_POLYPOLYLINE and EMR_POLYPOLYGON.
type PolyPoly struct {
	Type   Type
	Bounds gdi.RectL

	// Counts holds the number of points of each polygon or polyline.
	Counts []uint32

	// Points holds the points of all polygons or polylines.
	Points []gdi.PointL
}

// RecordType implements the [Record] interface.
func (r *PolyPoly) RecordType() Type { return r.Type }

// Polys splits the points into the individual polygons or polylines.
func (r *PolyPoly) Polys() [][]gdi.PointL {
	return splitPolys(r.Points, r.Counts)
}

func decodePolyPoly(tp Type, b *parser.Body) Record {
	if !accepts(tp, b, polyPolyTypes) || !minSize(tp, b, 32) {
		return nil
	}
	rec := &PolyPoly{Type: tp, Bounds: gdi.ReadRectL(b)}
	nPolys := b.U32()
	nPoints := b.U32()
	rec.Counts = readU32s(b, nPolys)
	checkCounts(b, rec.Counts, nPoints)
	rec.Points = readPointsL(b, nPoints)
	return rec
}

// PolyPoly16 holds the records EMR_POLYPOLYLINE16 and EMR_POLYPOLYGON16.
type PolyPoly16 struct {
	Type   Type
	Bounds gdi.RectL
	Counts []uint32
	Points []gdi.PointS
}

// RecordType implements the [Record] interface.
func (r *PolyPoly16) RecordType() Type { return r.Type }

// Polys splits the points into the individual polygons or polylines.
func (r *PolyPoly16) Polys() [][]gdi.PointS {
	return splitPolys(r.Points, r.Counts)
}

func decodePolyPoly16(tp Type, b *parser.Body) Record {
	if !accepts(tp, b, polyPoly16Types) || !minSize(tp, b, 32) {
		return nil
	}
	rec := &PolyPoly16{Type: tp, Bounds: gdi.ReadRectL(b)}
	nPolys := b.U32()
	nPoints := b.U32()
	rec.Counts = readU32s(b, nPolys)
	checkCounts(b, rec.Counts, nPoints)
	rec.Points = readPointsS(b, nPoints)
	return rec
}

func checkCounts(b *parser.Body, counts []uint32, total uint32) {
	var sum uint64
	for _, c := range counts {
		sum += uint64(c)
	}
	if b.Err() == nil && sum != uint64(total) {
		b.Failf("polygon point counts add up to %d, expected %d", sum, total)
	}
}

func splitPolys[P any](points []P, counts []uint32) [][]P {
	res := make([][]P, 0, len(counts))
	pos := 0
	for _, c := range counts {
		end := min(pos+int(c), len(points))
		res = append(res, points[pos:end])
		pos = end
	}
	return res
}

// PolyDraw is the EMR_POLYDRAW record.
type PolyDraw struct {
	Bounds gdi.RectL
	Points []gdi.PointL
	Types  []gdi.PolyDrawType
}

// RecordType implements the [Record] interface.
func (*PolyDraw) RecordType() Type { return EMRPolyDraw }

func decodePolyDraw(tp Type, b *parser.Body) Record {
	if !minSize(tp, b, 28) {
		return nil
	}
	rec := &PolyDraw{Bounds: gdi.ReadRectL(b)}
	n := b.U32()
	b.Count(n, 9)
	rec.Points = readPointsL(b, n)
	rec.Types = readPolyDrawTypes(b, n)
	return rec
}

// PolyDraw16 is the EMR_POLYDRAW16 record.
type PolyDraw16 struct {
	Bounds gdi.RectL
	Points []gdi.PointS
	Types  []gdi.PolyDrawType
}

// RecordType implements the [Record] interface.
func (*PolyDraw16) RecordType() Type { return EMRPolyDraw16 }

func decodePolyDraw16(tp Type, b *parser.Body) Record {
	if !minSize(tp, b, 28) {
		return nil
	}
	rec := &PolyDraw16{Bounds: gdi.ReadRectL(b)}
	n := b.U32()
	b.Count(n, 5)
	rec.Points = readPointsS(b, n)
	rec.Types = readPolyDrawTypes(b, n)
	return rec
}

func readPolyDrawTypes(b *parser.Body, n uint32) []gdi.PolyDrawType {
	buf := b.Bytes(b.Count(n, 1))
	res := make([]gdi.PolyDrawType, len(buf))
	for i, t := range buf {
		res[i] = gdi.PolyDrawType(t)
		if !res[i].IsValid() {
			b.Fail(parser.EnumValue("PolyDrawType", t))
			return nil
		}
	}
	return res
}

// Box holds the records EMR_ELLIPSE and EMR_RECTANGLE.
type Box struct {
	Type Type
	Box  gdi.RectL // inclusive-inclusive
}

// RecordType implements the [Record] interface.
func (r *Box) RecordType() Type { return r.Type }

func decodeBox(tp Type, b *parser.Body) Record {
	if !accepts(tp, b, boxTypes) || !fixedSize(tp, b, 24) {
		return nil
	}
	return &Box{Type: tp, Box: gdi.ReadRectL(b)}
}

// RoundRect is the EMR_ROUNDRECT record.
type RoundRect struct {
	Box    gdi.RectL
	Corner gdi.SizeL
}

// RecordType implements the [Record] interface.
func (*RoundRect) RecordType() Type { return EMRRoundRect }

func decodeRoundRect(tp Type, b *parser.Body) Record {
	if !fixedSize(tp, b, 32) {
		return nil
	}
	return &RoundRect{Box: gdi.ReadRectL(b), Corner: gdi.ReadSizeL(b)}
}

// ArcBox holds the records EMR_ARC, EMR_CHORD, EMR_PIE and EMR_ARCTO.
// The arc is part of the ellipse inscribed in Box, starting at the
// intersection with the radial through Start and ending at the
// intersection with the radial through End.
type ArcBox struct {
	Type  Type
	Box   gdi.RectL
	Start gdi.PointL
	End   gdi.PointL
}

// RecordType implements the [Record] interface.
func (r *ArcBox) RecordType() Type { return r.Type }

func decodeArcBox(tp Type, b *parser.Body) Record {
	if !accepts(tp, b, arcBoxTypes) || !fixedSize(tp, b, 40) {
		return nil
	}
	return &ArcBox{
		Type:  tp,
		Box:   gdi.ReadRectL(b),
		Start: gdi.ReadPointL(b),
		End:   gdi.ReadPointL(b),
	}
}

// AngleArc is the EMR_ANGLEARC record.
type AngleArc struct {
	Center     gdi.PointL
	Radius     uint32
	StartAngle float32 // degrees
	SweepAngle float32 // degrees
}

// RecordType implements the [Record] interface.
func (*AngleArc) RecordType() Type { return EMRAngleArc }

func decodeAngleArc(tp Type, b *parser.Body) Record {
	if !fixedSize(tp, b, 28) {
		return nil
	}
	return &AngleArc{
		Center:     gdi.ReadPointL(b),
		Radius:     b.U32(),
		StartAngle: b.F32(),
		SweepAngle: b.F32(),
	}
}

// LineTo is the EMR_LINETO record.
type LineTo struct {
	Point gdi.PointL
}

// RecordType implements the [Record] interface.
func (*LineTo) RecordType() Type { return EMRLineTo }

func decodeLineTo(tp Type, b *parser.Body) Record {
	if !fixedSize(tp, b, 16) {
		return nil
	}
	return &LineTo{Point: gdi.ReadPointL(b)}
}

// SetPixelV is the EMR_SETPIXELV record.
type SetPixelV struct {
	Pixel gdi.PointL
	Color gdi.ColorRef
}

// RecordType implements the [Record] interface.
func (*SetPixelV) RecordType() Type { return EMRSetPixelV }

func decodeSetPixelV(tp Type, b *parser.Body) Record {
	if !fixedSize(tp, b, 20) {
		return nil
	}
	return &SetPixelV{Pixel: gdi.ReadPointL(b), Color: gdi.ReadColorRef(b)}
}

// ExtFloodFill is the EMR_EXTFLOODFILL record.
type ExtFloodFill struct {
	Start gdi.PointL
	Color gdi.ColorRef
	Mode  gdi.FloodFill
}

// RecordType implements the [Record] interface.
func (*ExtFloodFill) RecordType() Type { return EMRExtFloodFill }

func decodeExtFloodFill(tp Type, b *parser.Body) Record {
	if !fixedSize(tp, b, 24) {
		return nil
	}
	return &ExtFloodFill{
		Start: gdi.ReadPointL(b),
		Color: gdi.ReadColorRef(b),
		Mode:  gdi.ReadEnum[gdi.FloodFill](b, "FloodFill"),
	}
}

// PathBounds holds the records EMR_FILLPATH, EMR_STROKEANDFILLPATH and
// EMR_STROKEPATH.
type PathBounds struct {
	Type   Type
	Bounds gdi.RectL
}

// RecordType implements the [Record] interface.
func (r *PathBounds) RecordType() Type { return r.Type }

func decodePathBounds(tp Type, b *parser.Body) Record {
	if !accepts(tp, b, pathBoundsTypes) || !fixedSize(tp, b, 24) {
		return nil
	}
	return &PathBounds{Type: tp, Bounds: gdi.ReadRectL(b)}
}

// FillRgn is the EMR_FILLRGN record.
type FillRgn struct {
	Bounds gdi.RectL
	Brush  uint32 // object table index
	Region *gdi.RegionData
}

// RecordType implements the [Record] interface.
func (*FillRgn) RecordType() Type { return EMRFillRgn }

func decodeFillRgn(tp Type, b *parser.Body) Record {
	if !minSize(tp, b, 32) {
		return nil
	}
	rec := &FillRgn{Bounds: gdi.ReadRectL(b)}
	size := b.U32()
	rec.Brush = b.U32()
	rec.Region = gdi.ReadRegionData(b, size)
	return rec
}

// FrameRgn is the EMR_FRAMERGN record.
type FrameRgn struct {
	Bounds gdi.RectL
	Brush  uint32 // object table index
	Width  int32
	Height int32
	Region *gdi.RegionData
}

// RecordType implements the [Record] interface.
func (*FrameRgn) RecordType() Type { return EMRFrameRgn }

func decodeFrameRgn(tp Type, b *parser.Body) Record {
	if !minSize(tp, b, 40) {
		return nil
	}
	rec := &FrameRgn{Bounds: gdi.ReadRectL(b)}
	size := b.U32()
	rec.Brush = b.U32()
	rec.Width = b.I32()
	rec.Height = b.I32()
	rec.Region = gdi.ReadRegionData(b, size)
	return rec
}

// PaintRgn holds the records EMR_INVERTRGN and EMR_PAINTRGN.
type PaintRgn struct {
	Type   Type
	Bounds gdi.RectL
	Region *gdi.RegionData
}

// RecordType implements the [Record] interface.
func (r *PaintRgn) RecordType() Type { return r.Type }

func decodePaintRgn(tp Type, b *parser.Body) Record {
	if !accepts(tp, b, paintRgnTypes) || !minSize(tp, b, 28) {
		return nil
	}
	rec := &PaintRgn{Type: tp, Bounds: gdi.ReadRectL(b)}
	size := b.U32()
	rec.Region = gdi.ReadRegionData(b, size)
	return rec
}

// GradientFill is the EMR_GRADIENTFILL record.
type GradientFill struct {
	Bounds   gdi.RectL
	Mode     gdi.GradientFillMode
	Vertices []gdi.TriVertex
	Objects  []gdi.GradientObject
}

// RecordType implements the [Record] interface.
func (*GradientFill) RecordType() Type { return EMRGradientFill }

func decodeGradientFill(tp Type, b *parser.Body) Record {
	if !minSize(tp, b, 36) {
		return nil
	}
	rec := &GradientFill{Bounds: gdi.ReadRectL(b)}
	nVer := b.U32()
	nTri := b.U32()
	rec.Mode = gdi.ReadEnum[gdi.GradientFillMode](b, "GradientFillMode")
	rec.Vertices = make([]gdi.TriVertex, b.Count(nVer, 16))
	for i := range rec.Vertices {
		rec.Vertices[i] = gdi.ReadTriVertex(b)
	}
	rec.Objects = gdi.ReadGradientObjects(b, rec.Mode, nTri, nVer)
	return rec
}
