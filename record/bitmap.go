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

// Area is a rectangle given by its upper-left corner and its size.
type Area struct {
	X, Y          int32
	Width, Height int32
}

func readArea(b *parser.Body) Area {
	return Area{X: b.I32(), Y: b.I32(), Width: b.I32(), Height: b.I32()}
}

// BitmapSource describes the source bitmap of a bit-block transfer.
type BitmapSource struct {
	X, Y int32

	// XForm maps the source coordinates to the page space.
	XForm gdi.XForm

	// BkColor is the background color of the source, used for
	// monochrome bitmaps.
	BkColor gdi.ColorRef

	Usage gdi.DIBColors

	// Bitmap is nil if the record does not use a source bitmap.
	Bitmap *gdi.DIB
}

// bitmapLocation holds the offsets and sizes of an embedded bitmap.
type bitmapLocation struct {
	offBmi, cbBmi, offBits, cbBits uint32
}

func readBitmapLocation(b *parser.Body) bitmapLocation {
	return bitmapLocation{b.U32(), b.U32(), b.U32(), b.U32()}
}

func (loc bitmapLocation) read(b *parser.Body) *gdi.DIB {
	return readDIB(b, loc.offBmi, loc.cbBmi, loc.offBits, loc.cbBits)
}

// readBitmapSource reads the fields from xSrc to cbBitsSrc, which are shared
// by several bit-block transfer records.  The bitmap itself is read later,
// once all fixed fields have been decoded.
func readBitmapSource(b *parser.Body) (*BitmapSource, bitmapLocation) {
	src := &BitmapSource{
		X:       b.I32(),
		Y:       b.I32(),
		XForm:   gdi.ReadXForm(b),
		BkColor: gdi.ReadColorRef(b),
		Usage:   gdi.ReadEnum[gdi.DIBColors](b, "DIBColors"),
	}
	return src, readBitmapLocation(b)
}

// BitBlt is the EMR_BITBLT record.
type BitBlt struct {
	Bounds gdi.RectL
	Dest   Area
	ROP    gdi.TernaryRasterOp
	Source *BitmapSource
}

// RecordType implements the [Record] interface.
func (*BitBlt) RecordType() Type { return EMRBitBlt }

func decodeBitBlt(tp Type, b *parser.Body) Record {
	if !minSize(tp, b, 100) {
		return nil
	}
	rec := &BitBlt{
		Bounds: gdi.ReadRectL(b),
		Dest:   readArea(b),
		ROP:    gdi.TernaryRasterOp(b.U32()),
	}
	var loc bitmapLocation
	rec.Source, loc = readBitmapSource(b)
	rec.Source.Bitmap = loc.read(b)
	return rec
}

// StretchBlt is the EMR_STRETCHBLT record.
type StretchBlt struct {
	Bounds     gdi.RectL
	Dest       Area
	ROP        gdi.TernaryRasterOp
	Source     *BitmapSource
	SourceSize gdi.SizeL
}

// RecordType implements the [Record] interface.
func (*StretchBlt) RecordType() Type { return EMRStretchBlt }

func decodeStretchBlt(tp Type, b *parser.Body) Record {
	if !minSize(tp, b, 108) {
		return nil
	}
	rec := &StretchBlt{
		Bounds: gdi.ReadRectL(b),
		Dest:   readArea(b),
		ROP:    gdi.TernaryRasterOp(b.U32()),
	}
	var loc bitmapLocation
	rec.Source, loc = readBitmapSource(b)
	rec.SourceSize = gdi.ReadSizeL(b)
	rec.Source.Bitmap = loc.read(b)
	return rec
}

// BitmapMask describes the monochrome mask of EMR_MASKBLT and EMR_PLGBLT.
type BitmapMask struct {
	X, Y   int32
	Usage  gdi.DIBColors
	Bitmap *gdi.DIB // nil if there is no mask
}

func readBitmapMask(b *parser.Body) (*BitmapMask, bitmapLocation) {
	mask := &BitmapMask{
		X:     b.I32(),
		Y:     b.I32(),
		Usage: gdi.ReadEnum[gdi.DIBColors](b, "DIBColors"),
	}
	return mask, readBitmapLocation(b)
}

// readBitmaps reads a source bitmap and a mask bitmap.  The four buffers
// can appear in any order.
func readBitmaps(b *parser.Body, src, mask bitmapLocation) (*gdi.DIB, *gdi.DIB) {
	bufs := readBuffers(b,
		buffer{src.offBmi, src.cbBmi}, buffer{src.offBits, src.cbBits},
		buffer{mask.offBmi, mask.cbBmi}, buffer{mask.offBits, mask.cbBits})
	if b.Err() != nil {
		return nil, nil
	}
	var res [2]*gdi.DIB
	for i := range res {
		bmi, bits := bufs[2*i], bufs[2*i+1]
		if bmi == nil && bits == nil {
			continue
		}
		dib, err := gdi.DecodeDIB(bmi, bits)
		if err != nil {
			b.Fail(err)
			return nil, nil
		}
		res[i] = dib
	}
	return res[0], res[1]
}

// MaskBlt is the EMR_MASKBLT record.
type MaskBlt struct {
	Bounds gdi.RectL
	Dest   Area
	ROP4   uint32
	Source *BitmapSource
	Mask   *BitmapMask
}

// RecordType implements the [Record] interface.
func (*MaskBlt) RecordType() Type { return EMRMaskBlt }

func decodeMaskBlt(tp Type, b *parser.Body) Record {
	if !minSize(tp, b, 128) {
		return nil
	}
	rec := &MaskBlt{
		Bounds: gdi.ReadRectL(b),
		Dest:   readArea(b),
		ROP4:   b.U32(),
	}
	var srcLoc, maskLoc bitmapLocation
	rec.Source, srcLoc = readBitmapSource(b)
	rec.Mask, maskLoc = readBitmapMask(b)
	rec.Source.Bitmap, rec.Mask.Bitmap = readBitmaps(b, srcLoc, maskLoc)
	return rec
}

// PlgBlt is the EMR_PLGBLT record.
type PlgBlt struct {
	Bounds gdi.RectL

	// Dest holds the upper-left, upper-right and lower-left corners of
	// the destination parallelogram.
	Dest [3]gdi.PointL

	Source     *BitmapSource
	SourceSize gdi.SizeL
	Mask       *BitmapMask
}

// RecordType implements the [Record] interface.
func (*PlgBlt) RecordType() Type { return EMRPlgBlt }

func decodePlgBlt(tp Type, b *parser.Body) Record {
	if !minSize(tp, b, 140) {
		return nil
	}
	rec := &PlgBlt{Bounds: gdi.ReadRectL(b)}
	for i := range rec.Dest {
		rec.Dest[i] = gdi.ReadPointL(b)
	}
	x, y := b.I32(), b.I32()
	rec.SourceSize = gdi.ReadSizeL(b)
	src := &BitmapSource{
		X:       x,
		Y:       y,
		XForm:   gdi.ReadXForm(b),
		BkColor: gdi.ReadColorRef(b),
		Usage:   gdi.ReadEnum[gdi.DIBColors](b, "DIBColors"),
	}
	srcLoc := readBitmapLocation(b)
	var maskLoc bitmapLocation
	rec.Mask, maskLoc = readBitmapMask(b)
	src.Bitmap, rec.Mask.Bitmap = readBitmaps(b, srcLoc, maskLoc)
	rec.Source = src
	return rec
}

// SetDIBitsToDevice is the EMR_SETDIBITSTODEVICE record.
type SetDIBitsToDevice struct {
	Bounds    gdi.RectL
	Dest      gdi.PointL
	Src       gdi.PointL
	SrcSize   gdi.SizeL
	Usage     gdi.DIBColors
	StartScan uint32
	NumScans  uint32
	Bitmap    *gdi.DIB
}

// RecordType implements the [Record] interface.
func (*SetDIBitsToDevice) RecordType() Type { return EMRSetDIBitsToDevice }

func decodeSetDIBitsToDevice(tp Type, b *parser.Body) Record {
	if !minSize(tp, b, 76) {
		return nil
	}
	rec := &SetDIBitsToDevice{
		Bounds:  gdi.ReadRectL(b),
		Dest:    gdi.ReadPointL(b),
		Src:     gdi.ReadPointL(b),
		SrcSize: gdi.ReadSizeL(b),
	}
	loc := readBitmapLocation(b)
	rec.Usage = gdi.ReadEnum[gdi.DIBColors](b, "DIBColors")
	rec.StartScan = b.U32()
	rec.NumScans = b.U32()
	rec.Bitmap = loc.read(b)
	return rec
}

// StretchDIBits is the EMR_STRETCHDIBITS record.
type StretchDIBits struct {
	Bounds   gdi.RectL
	Dest     gdi.PointL
	Src      gdi.PointL
	SrcSize  gdi.SizeL
	Usage    gdi.DIBColors
	ROP      gdi.TernaryRasterOp
	DestSize gdi.SizeL
	Bitmap   *gdi.DIB
}

// RecordType implements the [Record] interface.
func (*StretchDIBits) RecordType() Type { return EMRStretchDIBits }

func decodeStretchDIBits(tp Type, b *parser.Body) Record {
	if !minSize(tp, b, 80) {
		return nil
	}
	rec := &StretchDIBits{
		Bounds:  gdi.ReadRectL(b),
		Dest:    gdi.ReadPointL(b),
		Src:     gdi.ReadPointL(b),
		SrcSize: gdi.ReadSizeL(b),
	}
	loc := readBitmapLocation(b)
	rec.Usage = gdi.ReadEnum[gdi.DIBColors](b, "DIBColors")
	rec.ROP = gdi.TernaryRasterOp(b.U32())
	rec.DestSize = gdi.ReadSizeL(b)
	rec.Bitmap = loc.read(b)
	return rec
}

// BlendFunction controls alpha blending in EMR_ALPHABLEND.
type BlendFunction struct {
	Op                  uint8 // must be 0 (AC_SRC_OVER)
	Flags               uint8
	SourceConstantAlpha uint8
	AlphaFormat         uint8 // 1 (AC_SRC_ALPHA) for per-pixel alpha
}

// AlphaBlend is the EMR_ALPHABLEND record.
type AlphaBlend struct {
	Bounds     gdi.RectL
	Dest       Area
	Blend      BlendFunction
	Source     *BitmapSource
	SourceSize gdi.SizeL
}

// RecordType implements the [Record] interface.
func (*AlphaBlend) RecordType() Type { return EMRAlphaBlend }

func decodeAlphaBlend(tp Type, b *parser.Body) Record {
	if !minSize(tp, b, 108) {
		return nil
	}
	rec := &AlphaBlend{
		Bounds: gdi.ReadRectL(b),
		Dest:   readArea(b),
		Blend: BlendFunction{
			Op:                  b.U8(),
			Flags:               b.U8(),
			SourceConstantAlpha: b.U8(),
			AlphaFormat:         b.U8(),
		},
	}
	if b.Err() == nil && rec.Blend.Op != 0 {
		b.Fail(parser.EnumValue("BlendOperation", rec.Blend.Op))
		return nil
	}
	var loc bitmapLocation
	rec.Source, loc = readBitmapSource(b)
	rec.SourceSize = gdi.ReadSizeL(b)
	rec.Source.Bitmap = loc.read(b)
	return rec
}

// TransparentBlt is the EMR_TRANSPARENTBLT record.
type TransparentBlt struct {
	Bounds gdi.RectL
	Dest   Area

	// Transparent is the color in the source bitmap which is treated as
	// transparent.
	Transparent gdi.ColorRef

	Source     *BitmapSource
	SourceSize gdi.SizeL
}

// RecordType implements the [Record] interface.
func (*TransparentBlt) RecordType() Type { return EMRTransparentBlt }

func decodeTransparentBlt(tp Type, b *parser.Body) Record {
	if !minSize(tp, b, 108) {
		return nil
	}
	rec := &TransparentBlt{
		Bounds:      gdi.ReadRectL(b),
		Dest:        readArea(b),
		Transparent: gdi.ReadColorRef(b),
	}
	var loc bitmapLocation
	rec.Source, loc = readBitmapSource(b)
	rec.SourceSize = gdi.ReadSizeL(b)
	rec.Source.Bitmap = loc.read(b)
	return rec
}
