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
	"encoding/binary"

	"seehuhn.de/go/emf/gdi"
	"seehuhn.de/go/emf/parser"
)

// EmrText describes a text string and its placement.
type EmrText struct {
	// Reference is the reference point used to position the string.
	Reference gdi.PointL

	Options gdi.ExtTextOutOptions

	// Rectangle is the clipping and/or opaquing rectangle.  It is only
	// present if the ETONoRect option is not set.
	Rectangle gdi.RectL

	// Text is the decoded string.  If the ETOGlyphIndex option is set, the
	// string is given as glyph indices in Glyphs instead.
	Text   string
	Glyphs []uint16

	// Dx holds the character advances in logical units.  If the ETOPDY
	// option is set, there are two values per character: the horizontal
	// and the vertical advance.
	Dx []int32
}

// textLocation holds the fields of EmrText which locate the variable-length
// parts of the text in the record.
type textLocation struct {
	chars     uint32
	offString uint32
	offDx     uint32
}

// readEmrTextFixed reads the fixed-size part of an EmrText object.
func readEmrTextFixed(b *parser.Body) (*EmrText, textLocation) {
	t := &EmrText{Reference: gdi.ReadPointL(b)}
	var loc textLocation
	loc.chars = b.U32()
	loc.offString = b.U32()
	t.Options = gdi.ExtTextOutOptions(b.U32())
	if t.Options&gdi.ETONoRect == 0 {
		t.Rectangle = gdi.ReadRectL(b)
	}
	loc.offDx = b.U32()
	return t, loc
}

// readTextPayloads reads the strings and advances of the given text
// objects.  The buffers are read in order of increasing offset.
func readTextPayloads(b *parser.Body, texts []*EmrText, locs []textLocation, wide bool) {
	bufs := make([]buffer, 0, 2*len(texts))
	for i, t := range texts {
		loc := locs[i]
		charSize := uint32(1)
		if wide || t.Options&gdi.ETOGlyphIndex != 0 {
			charSize = 2
		}
		nDx := uint64(loc.chars)
		if t.Options&gdi.ETOPDY != 0 {
			nDx *= 2
		}
		strSize := uint64(loc.chars) * uint64(charSize)
		dxSize := 4 * nDx
		if strSize > uint64(b.Size().Declared()) || dxSize > uint64(b.Size().Declared()) {
			b.Failf("text with %d characters exceeds the record size", loc.chars)
			return
		}
		if loc.offDx == 0 {
			dxSize = 0
		}
		bufs = append(bufs,
			buffer{loc.offString, uint32(strSize)},
			buffer{loc.offDx, uint32(dxSize)})
	}

	data := readBuffers(b, bufs...)
	if b.Err() != nil {
		return
	}
	for i, t := range texts {
		str, dx := data[2*i], data[2*i+1]
		switch {
		case t.Options&gdi.ETOGlyphIndex != 0:
			t.Glyphs = make([]uint16, len(str)/2)
			for j := range t.Glyphs {
				t.Glyphs[j] = binary.LittleEndian.Uint16(str[2*j:])
			}
		case wide:
			s, err := parser.UTF16LEToString(str)
			if err != nil {
				b.Fail(err)
				return
			}
			t.Text = s
		default:
			t.Text = parser.ANSIToString(str)
		}
		if len(dx) > 0 {
			t.Dx = make([]int32, len(dx)/4)
			for j := range t.Dx {
				t.Dx[j] = int32(binary.LittleEndian.Uint32(dx[4*j:]))
			}
		}
	}
}

// TextScale holds the fields which are shared by the text output records.
type TextScale struct {
	// GraphicsMode determines whether the scale factors are used.
	GraphicsMode gdi.GraphicsMode

	// ExScale and EyScale convert page units to .01 mm, for the
	// GMCompatible graphics mode.
	ExScale float32
	EyScale float32
}

func readTextScale(b *parser.Body) TextScale {
	return TextScale{
		GraphicsMode: gdi.ReadEnum[gdi.GraphicsMode](b, "GraphicsMode"),
		ExScale:      b.F32(),
		EyScale:      b.F32(),
	}
}

// ExtTextOut holds the records EMR_EXTTEXTOUTA and EMR_EXTTEXTOUTW.
type ExtTextOut struct {
	Type   Type
	Bounds gdi.RectL
	TextScale
	Text *EmrText
}

// RecordType implements the [Record] interface.
func (r *ExtTextOut) RecordType() Type { return r.Type }

func decodeExtTextOut(tp Type, b *parser.Body) Record {
	if !accepts(tp, b, extTextOutTypes) || !minSize(tp, b, 60) {
		return nil
	}
	rec := &ExtTextOut{
		Type:      tp,
		Bounds:    gdi.ReadRectL(b),
		TextScale: readTextScale(b),
	}
	t, loc := readEmrTextFixed(b)
	readTextPayloads(b, []*EmrText{t}, []textLocation{loc}, tp == EMRExtTextOutW)
	rec.Text = t
	return rec
}

// PolyTextOut holds the records EMR_POLYTEXTOUTA and EMR_POLYTEXTOUTW.
type PolyTextOut struct {
	Type   Type
	Bounds gdi.RectL
	TextScale
	Texts []*EmrText
}

// RecordType implements the [Record] interface.
func (r *PolyTextOut) RecordType() Type { return r.Type }

func decodePolyTextOut(tp Type, b *parser.Body) Record {
	if !accepts(tp, b, polyTextOutTypes) || !minSize(tp, b, 40) {
		return nil
	}
	rec := &PolyTextOut{
		Type:      tp,
		Bounds:    gdi.ReadRectL(b),
		TextScale: readTextScale(b),
	}
	n := b.Count(b.U32(), 24)
	rec.Texts = make([]*EmrText, n)
	locs := make([]textLocation, n)
	for i := range rec.Texts {
		rec.Texts[i], locs[i] = readEmrTextFixed(b)
	}
	readTextPayloads(b, rec.Texts, locs, tp == EMRPolyTextOutW)
	return rec
}

// SmallTextOut is the EMR_SMALLTEXTOUT record.
type SmallTextOut struct {
	Reference gdi.PointL
	Options   gdi.ExtTextOutOptions
	TextScale

	// Bounds is only present if the ETONoRect option is not set.
	Bounds gdi.RectL

	// Text is the decoded string.  If ETOSmallChars is set, the string is
	// stored using 8-bit characters.  If ETOGlyphIndex is set, the string
	// is given as glyph indices in Glyphs instead.
	Text   string
	Glyphs []uint16
}

// RecordType implements the [Record] interface.
func (*SmallTextOut) RecordType() Type { return EMRSmallTextOut }

func decodeSmallTextOut(tp Type, b *parser.Body) Record {
	if !minSize(tp, b, 36) {
		return nil
	}
	rec := &SmallTextOut{Reference: gdi.ReadPointL(b)}
	chars := b.U32()
	rec.Options = gdi.ExtTextOutOptions(b.U32())
	rec.TextScale = readTextScale(b)
	if rec.Options&gdi.ETONoRect == 0 {
		rec.Bounds = gdi.ReadRectL(b)
	}

	small := rec.Options&gdi.ETOSmallChars != 0
	glyphs := rec.Options&gdi.ETOGlyphIndex != 0
	charSize := 2
	if small {
		charSize = 1
	}
	buf := b.Bytes(b.Count(chars, charSize))
	if b.Err() != nil {
		return nil
	}
	switch {
	case glyphs && small:
		rec.Glyphs = make([]uint16, len(buf))
		for i, c := range buf {
			rec.Glyphs[i] = uint16(c)
		}
	case glyphs:
		rec.Glyphs = make([]uint16, len(buf)/2)
		for i := range rec.Glyphs {
			rec.Glyphs[i] = binary.LittleEndian.Uint16(buf[2*i:])
		}
	case small:
		rec.Text = parser.ANSIToString(buf)
	default:
		s, err := parser.UTF16LEToString(buf)
		if err != nil {
			b.Fail(err)
			return nil
		}
		rec.Text = s
	}
	return rec
}
