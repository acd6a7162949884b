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

// PenStyle combines the type, line style, end cap and line join of a pen.
type PenStyle uint32

// Pen style values.  A PenStyle is the sum of one line style, one end cap,
// one line join and one pen type.
const (
	PSSolid       PenStyle = 0x00000000
	PSDash        PenStyle = 0x00000001
	PSDot         PenStyle = 0x00000002
	PSDashDot     PenStyle = 0x00000003
	PSDashDotDot  PenStyle = 0x00000004
	PSNull        PenStyle = 0x00000005
	PSInsideFrame PenStyle = 0x00000006
	PSUserStyle   PenStyle = 0x00000007
	PSAlternate   PenStyle = 0x00000008

	PSEndCapRound  PenStyle = 0x00000000
	PSEndCapSquare PenStyle = 0x00000100
	PSEndCapFlat   PenStyle = 0x00000200

	PSJoinRound PenStyle = 0x00000000
	PSJoinBevel PenStyle = 0x00001000
	PSJoinMiter PenStyle = 0x00002000

	PSCosmetic  PenStyle = 0x00000000
	PSGeometric PenStyle = 0x00010000

	psStyleMask  PenStyle = 0x0000000F
	psEndCapMask PenStyle = 0x00000F00
	psJoinMask   PenStyle = 0x0000F000
	psTypeMask   PenStyle = 0x000F0000
)

// Line returns the line style part of the pen style.
func (s PenStyle) Line() PenStyle {
	return s & psStyleMask
}

// EndCap returns the end cap part of the pen style.
func (s PenStyle) EndCap() PenStyle {
	return s & psEndCapMask
}

// Join returns the line join part of the pen style.
func (s PenStyle) Join() PenStyle {
	return s & psJoinMask
}

// IsGeometric reports whether the pen is a geometric pen.
func (s PenStyle) IsGeometric() bool {
	return s&psTypeMask == PSGeometric
}

// IsValid reports whether all parts of the pen style are defined.
func (s PenStyle) IsValid() bool {
	if s&^(psStyleMask|psEndCapMask|psJoinMask|psTypeMask) != 0 {
		return false
	}
	if s.Line() > PSAlternate {
		return false
	}
	switch s.EndCap() {
	case PSEndCapRound, PSEndCapSquare, PSEndCapFlat:
	default:
		return false
	}
	switch s.Join() {
	case PSJoinRound, PSJoinBevel, PSJoinMiter:
	default:
		return false
	}
	t := s & psTypeMask
	return t == PSCosmetic || t == PSGeometric
}

// LogPen is the logical pen used by EMR_CREATEPEN.
type LogPen struct {
	Style PenStyle

	// Width is the pen width in logical units.  Only the X coordinate is
	// used.
	Width PointL

	Color ColorRef
}

// ReadLogPen decodes a LogPen (20 bytes).
func ReadLogPen(b *parser.Body) LogPen {
	return LogPen{
		Style: ReadEnum[PenStyle](b, "PenStyle"),
		Width: ReadPointL(b),
		Color: ReadColorRef(b),
	}
}

// Extended returns the pen as a LogPenEx.
func (p LogPen) Extended() *LogPenEx {
	var brush Brush
	if p.Style.Line() != PSNull {
		brush = SolidBrush{Color: p.Color}
	}
	return &LogPenEx{
		Style: p.Style,
		Width: uint32(max(p.Width.X, 0)),
		Brush: brush,
	}
}

// LogPenEx is the extended logical pen used by EMR_EXTCREATEPEN.
type LogPenEx struct {
	Style PenStyle
	Width uint32

	// Brush is the brush used to paint the pen.  This is nil for the
	// null brush.
	Brush Brush

	// StyleEntries holds the lengths of dashes and gaps for pens with
	// style PSUserStyle.
	StyleEntries []uint32
}

// ReadLogPenEx decodes a LogPenEx (24 bytes plus the style entries).
//
// The 8 bytes after the brush style are interpreted according to the brush
// style: a color and a hatch style for solid and hatched brushes, or a
// 16-bit color usage value for pattern brushes.
func ReadLogPenEx(b *parser.Body) *LogPenEx {
	style := ReadEnum[PenStyle](b, "PenStyle")
	width := b.U32()
	brushStyle := ReadEnum[BrushStyle](b, "BrushStyle")
	if b.Err() != nil {
		return nil
	}

	pen := &LogPenEx{Style: style, Width: width}
	switch brushStyle {
	case BSSolid:
		color := ReadColorRef(b)
		b.Skip(4) // hatch, ignored
		pen.Brush = SolidBrush{Color: color}
	case BSHatched:
		color := ReadColorRef(b)
		hatch := ReadEnum[HatchStyle](b, "HatchStyle")
		if b.Err() == nil && !style.IsGeometric() &&
			hatch != HSSolidClr && hatch != HSDitheredClr {
			b.Fail(parser.Unsupported("hatch style %d for cosmetic pen", hatch))
		}
		pen.Brush = HatchBrush{Color: color, Hatch: hatch}
	case BSNull:
		b.Skip(8)
	case BSPattern, BSDIBPattern, BSDIBPatternPT:
		usage := DIBColors(b.U16())
		b.Skip(2)
		b.Skip(4) // hatch, ignored
		if b.Err() == nil && !usage.IsValid() {
			b.Fail(parser.EnumValue("DIBColors", uint32(usage)))
		}
		pen.Brush = PatternBrush{Style: brushStyle, Usage: usage}
	default:
		b.Fail(parser.Unsupported("brush style %d in LogPenEx", brushStyle))
		return nil
	}

	n := b.U32()
	k := b.Count(n, 4)
	if k > 0 {
		pen.StyleEntries = make([]uint32, k)
		for i := range pen.StyleEntries {
			pen.StyleEntries[i] = b.U32()
		}
	}
	return pen
}
