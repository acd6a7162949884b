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

// ObjectIndex holds the records which refer to a single object table
// entry: EMR_SELECTOBJECT, EMR_DELETEOBJECT, EMR_SELECTPALETTE,
// EMR_SETCOLORSPACE and EMR_DELETECOLORSPACE.
type ObjectIndex struct {
	Type Type

	// Index is an object table index.  For EMR_SELECTOBJECT this can also
	// be a stock object.
	Index uint32
}

// RecordType implements the [Record] interface.
func (r *ObjectIndex) RecordType() Type { return r.Type }

func decodeObjectIndex(tp Type, b *parser.Body) Record {
	if !accepts(tp, b, objectIndexTypes) || !fixedSize(tp, b, 12) {
		return nil
	}
	rec := &ObjectIndex{Type: tp, Index: b.U32()}
	if b.Err() != nil {
		return nil
	}
	switch tp {
	case EMRSelectObject:
		if gdi.IsStock(rec.Index) && !gdi.StockObject(rec.Index).IsValid() {
			b.Fail(parser.EnumValue("StockObject", rec.Index))
		}
	case EMRSelectPalette:
		if gdi.IsStock(rec.Index) && gdi.StockObject(rec.Index) != gdi.DefaultPalette {
			b.Failf("EMR_SELECTPALETTE with stock object %s", gdi.StockObject(rec.Index))
		}
	default:
		checkTableIndex(tp, b, rec.Index)
	}
	return rec
}

// checkTableIndex verifies that index can be used to store an object.
// Index 0 refers to the metafile itself, and stock objects cannot be
// created or deleted.
func checkTableIndex(tp Type, b *parser.Body, index uint32) {
	if b.Err() != nil {
		return
	}
	if index == 0 || gdi.IsStock(index) {
		b.Failf("%s with reserved object index %#x", tp, index)
	}
}

// CreatePen is the EMR_CREATEPEN record.
type CreatePen struct {
	Index uint32
	Pen   gdi.LogPen
}

// RecordType implements the [Record] interface.
func (*CreatePen) RecordType() Type { return EMRCreatePen }

func decodeCreatePen(tp Type, b *parser.Body) Record {
	if !fixedSize(tp, b, 28) {
		return nil
	}
	rec := &CreatePen{Index: b.U32()}
	checkTableIndex(tp, b, rec.Index)
	rec.Pen = gdi.ReadLogPen(b)
	return rec
}

// CreateBrushIndirect is the EMR_CREATEBRUSHINDIRECT record.
type CreateBrushIndirect struct {
	Index uint32
	Brush gdi.LogBrushEx
}

// RecordType implements the [Record] interface.
func (*CreateBrushIndirect) RecordType() Type { return EMRCreateBrushIndirect }

func decodeCreateBrushIndirect(tp Type, b *parser.Body) Record {
	if !fixedSize(tp, b, 24) {
		return nil
	}
	rec := &CreateBrushIndirect{Index: b.U32()}
	checkTableIndex(tp, b, rec.Index)
	rec.Brush = gdi.ReadLogBrushEx(b)
	return rec
}

// CreatePalette is the EMR_CREATEPALETTE record.
type CreatePalette struct {
	Index   uint32
	Palette *gdi.LogPalette
}

// RecordType implements the [Record] interface.
func (*CreatePalette) RecordType() Type { return EMRCreatePalette }

func decodeCreatePalette(tp Type, b *parser.Body) Record {
	if !minSize(tp, b, 16) {
		return nil
	}
	rec := &CreatePalette{Index: b.U32()}
	checkTableIndex(tp, b, rec.Index)
	rec.Palette = gdi.ReadLogPalette(b)
	if b.Err() == nil && len(rec.Palette.Entries) == 0 {
		b.Failf("EMR_CREATEPALETTE with empty palette")
	}
	return rec
}

// SetPaletteEntries is the EMR_SETPALETTEENTRIES record.
type SetPaletteEntries struct {
	Index   uint32
	Start   uint32
	Entries []gdi.PaletteEntry
}

// RecordType implements the [Record] interface.
func (*SetPaletteEntries) RecordType() Type { return EMRSetPaletteEntries }

func decodeSetPaletteEntries(tp Type, b *parser.Body) Record {
	if !minSize(tp, b, 20) {
		return nil
	}
	rec := &SetPaletteEntries{Index: b.U32(), Start: b.U32()}
	n := b.U32()
	rec.Entries = gdi.ReadPaletteEntries(b, n)
	return rec
}

// ResizePalette is the EMR_RESIZEPALETTE record.
type ResizePalette struct {
	Index      uint32
	NumEntries uint32
}

// RecordType implements the [Record] interface.
func (*ResizePalette) RecordType() Type { return EMRResizePalette }

func decodeResizePalette(tp Type, b *parser.Body) Record {
	if !fixedSize(tp, b, 16) {
		return nil
	}
	rec := &ResizePalette{Index: b.U32(), NumEntries: b.U32()}
	if b.Err() == nil && rec.NumEntries > gdi.MaxPaletteEntries {
		b.Failf("EMR_RESIZEPALETTE with %d entries", rec.NumEntries)
	}
	return rec
}

// ExtCreateFontIndirectW is the EMR_EXTCREATEFONTINDIRECTW record.
//
// Depending on the record size, the font is described by a LogFont, a
// LogFontPanose or a LogFontExDv structure.  Exactly one of the
// corresponding fields is set.
type ExtCreateFontIndirectW struct {
	Index uint32

	LogFont       *gdi.LogFont
	LogFontPanose *gdi.LogFontPanose
	LogFontExDv   *gdi.LogFontExDv
}

// RecordType implements the [Record] interface.
func (*ExtCreateFontIndirectW) RecordType() Type { return EMRExtCreateFontIndirectW }

// Font returns the basic attributes of the font.
func (r *ExtCreateFontIndirectW) Font() *gdi.LogFont {
	switch {
	case r.LogFont != nil:
		return r.LogFont
	case r.LogFontPanose != nil:
		return &r.LogFontPanose.LogFont
	case r.LogFontExDv != nil:
		return &r.LogFontExDv.LogFont
	}
	return nil
}

func decodeExtCreateFontIndirectW(tp Type, b *parser.Body) Record {
	if !minSize(tp, b, 12+gdi.LogFontSize) {
		return nil
	}
	rec := &ExtCreateFontIndirectW{Index: b.U32()}
	checkTableIndex(tp, b, rec.Index)
	switch b.Remaining() {
	case gdi.LogFontSize:
		lf := gdi.ReadLogFont(b)
		rec.LogFont = &lf
	case gdi.LogFontPanoseSize:
		rec.LogFontPanose = gdi.ReadLogFontPanose(b)
	default:
		if b.Remaining() < gdi.LogFontExSize+8 {
			b.Failf("font description of %d bytes", b.Remaining())
			return nil
		}
		rec.LogFontExDv = gdi.ReadLogFontExDv(b)
	}
	return rec
}

// CreateMonoBrush is the EMR_CREATEMONOBRUSH record.
type CreateMonoBrush struct {
	Index  uint32
	Usage  gdi.DIBColors
	Bitmap *gdi.DIB
}

// RecordType implements the [Record] interface.
func (*CreateMonoBrush) RecordType() Type { return EMRCreateMonoBrush }

func decodeCreateMonoBrush(tp Type, b *parser.Body) Record {
	if !minSize(tp, b, 32) {
		return nil
	}
	rec := &CreateMonoBrush{Index: b.U32()}
	checkTableIndex(tp, b, rec.Index)
	rec.Usage = gdi.ReadEnum[gdi.DIBColors](b, "DIBColors")
	offBmi, cbBmi, offBits, cbBits := b.U32(), b.U32(), b.U32(), b.U32()
	rec.Bitmap = readDIB(b, offBmi, cbBmi, offBits, cbBits)
	if b.Err() == nil && rec.Bitmap != nil && rec.Bitmap.Header.BitCount != 1 {
		b.Failf("monochrome brush with %d bits per pixel", rec.Bitmap.Header.BitCount)
	}
	return rec
}

// CreateDIBPatternBrushPt is the EMR_CREATEDIBPATTERNBRUSHPT record.
type CreateDIBPatternBrushPt struct {
	Index  uint32
	Usage  gdi.DIBColors
	Bitmap *gdi.DIB
}

// RecordType implements the [Record] interface.
func (*CreateDIBPatternBrushPt) RecordType() Type { return EMRCreateDIBPatternBrushPt }

func decodeCreateDIBPatternBrushPt(tp Type, b *parser.Body) Record {
	if !minSize(tp, b, 32) {
		return nil
	}
	rec := &CreateDIBPatternBrushPt{Index: b.U32()}
	checkTableIndex(tp, b, rec.Index)
	rec.Usage = gdi.ReadEnum[gdi.DIBColors](b, "DIBColors")
	offBmi, cbBmi, offBits, cbBits := b.U32(), b.U32(), b.U32(), b.U32()
	rec.Bitmap = readDIB(b, offBmi, cbBmi, offBits, cbBits)
	return rec
}

// ExtCreatePen is the EMR_EXTCREATEPEN record.
type ExtCreatePen struct {
	Index uint32
	Pen   *gdi.LogPenEx

	// Bitmap is the pattern of pens with a pattern brush.
	Bitmap *gdi.DIB
}

// RecordType implements the [Record] interface.
func (*ExtCreatePen) RecordType() Type { return EMRExtCreatePen }

func decodeExtCreatePen(tp Type, b *parser.Body) Record {
	if !minSize(tp, b, 52) {
		return nil
	}
	rec := &ExtCreatePen{Index: b.U32()}
	checkTableIndex(tp, b, rec.Index)
	offBmi, cbBmi, offBits, cbBits := b.U32(), b.U32(), b.U32(), b.U32()
	rec.Pen = gdi.ReadLogPenEx(b)
	rec.Bitmap = readDIB(b, offBmi, cbBmi, offBits, cbBits)
	return rec
}

// CreateColorSpace is the EMR_CREATECOLORSPACE record.
type CreateColorSpace struct {
	Index      uint32
	ColorSpace *gdi.LogColorSpace
}

// RecordType implements the [Record] interface.
func (*CreateColorSpace) RecordType() Type { return EMRCreateColorSpace }

func decodeCreateColorSpace(tp Type, b *parser.Body) Record {
	if !fixedSize(tp, b, 12+gdi.LogColorSpaceSize) {
		return nil
	}
	rec := &CreateColorSpace{Index: b.U32()}
	checkTableIndex(tp, b, rec.Index)
	rec.ColorSpace = gdi.ReadLogColorSpace(b)
	return rec
}

// CreateColorSpaceEmbedded is set in the Flags field of
// [CreateColorSpaceW] if the record contains an embedded color profile.
const CreateColorSpaceEmbedded = 0x00000001

// CreateColorSpaceW is the EMR_CREATECOLORSPACEW record.
type CreateColorSpaceW struct {
	Index      uint32
	ColorSpace *gdi.LogColorSpace
	Flags      uint32

	// Data is the embedded color profile, if any.
	Data []byte
}

// RecordType implements the [Record] interface.
func (*CreateColorSpaceW) RecordType() Type { return EMRCreateColorSpaceW }

func decodeCreateColorSpaceW(tp Type, b *parser.Body) Record {
	if !minSize(tp, b, 20+gdi.LogColorSpaceWSize) {
		return nil
	}
	rec := &CreateColorSpaceW{Index: b.U32()}
	checkTableIndex(tp, b, rec.Index)
	rec.ColorSpace = gdi.ReadLogColorSpaceW(b)
	rec.Flags = b.U32()
	cbData := b.U32()
	rec.Data = b.Bytes(b.Count(cbData, 1))
	if len(rec.Data) == 0 {
		rec.Data = nil
	}
	return rec
}
