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

// BrushStyle specifies the style of a brush.
type BrushStyle uint32

// These are the possible values for BrushStyle.
const (
	BSSolid         BrushStyle = 0x0000
	BSNull          BrushStyle = 0x0001
	BSHatched       BrushStyle = 0x0002
	BSPattern       BrushStyle = 0x0003
	BSIndexed       BrushStyle = 0x0004
	BSDIBPattern    BrushStyle = 0x0005
	BSDIBPatternPT  BrushStyle = 0x0006
	BSPattern8x8    BrushStyle = 0x0007
	BSDIBPattern8x8 BrushStyle = 0x0008
	BSMonoPattern   BrushStyle = 0x0009
)

// IsValid reports whether s is a defined brush style.
func (s BrushStyle) IsValid() bool {
	return s <= BSMonoPattern
}

// HatchStyle specifies the hatch pattern of a brush.
type HatchStyle uint32

// These are the possible values for HatchStyle.
const (
	HSHorizontal      HatchStyle = 0x0000
	HSVertical        HatchStyle = 0x0001
	HSFDiagonal       HatchStyle = 0x0002
	HSBDiagonal       HatchStyle = 0x0003
	HSCross           HatchStyle = 0x0004
	HSDiagCross       HatchStyle = 0x0005
	HSSolidClr        HatchStyle = 0x0006
	HSDitheredClr     HatchStyle = 0x0007
	HSSolidTextClr    HatchStyle = 0x0008
	HSDitheredTextClr HatchStyle = 0x0009
	HSSolidBkClr      HatchStyle = 0x000A
	HSDitheredBkClr   HatchStyle = 0x000B
)

// IsValid reports whether h is a defined hatch style.
func (h HatchStyle) IsValid() bool {
	return h <= HSDitheredBkClr
}

// Brush is one of [SolidBrush], [HatchBrush], [PatternBrush] or
// [DIBPatternBrush].  A nil Brush is the null brush, which paints nothing.
type Brush interface {
	BrushStyle() BrushStyle
}

// SolidBrush paints with a single color.
type SolidBrush struct {
	Color ColorRef
}

// BrushStyle implements the [Brush] interface.
func (SolidBrush) BrushStyle() BrushStyle { return BSSolid }

// HatchBrush paints a hatch pattern.
type HatchBrush struct {
	Color ColorRef
	Hatch HatchStyle
}

// BrushStyle implements the [Brush] interface.
func (HatchBrush) BrushStyle() BrushStyle { return BSHatched }

// PatternBrush is the brush of a geometric pen which paints with a bitmap
// pattern.  The bitmap is stored in the enclosing record.
type PatternBrush struct {
	Style BrushStyle
	Usage DIBColors
}

// BrushStyle implements the [Brush] interface.
func (b PatternBrush) BrushStyle() BrushStyle { return b.Style }

// DIBPatternBrush paints with a device-independent bitmap.
type DIBPatternBrush struct {
	Usage  DIBColors
	Bitmap *DIB

	// Mono is set for brushes created by EMR_CREATEMONOBRUSH.  For these
	// the text color and background color are used for the bitmap bits.
	Mono bool
}

// BrushStyle implements the [Brush] interface.
func (DIBPatternBrush) BrushStyle() BrushStyle { return BSDIBPatternPT }

// LogBrushEx is the logical brush used by EMR_CREATEBRUSHINDIRECT.
type LogBrushEx struct {
	Style BrushStyle
	Color ColorRef
	Hatch HatchStyle
}

// ReadLogBrushEx decodes a LogBrushEx (12 bytes).  Only solid, hollow and
// hatched brushes can be described by this structure.
func ReadLogBrushEx(b *parser.Body) LogBrushEx {
	style := ReadEnum[BrushStyle](b, "BrushStyle")
	color := ReadColorRef(b)
	hatch := HatchStyle(b.U32())
	if b.Err() != nil {
		return LogBrushEx{}
	}

	switch style {
	case BSSolid, BSNull:
	case BSHatched:
		if !hatch.IsValid() {
			b.Fail(parser.EnumValue("HatchStyle", uint32(hatch)))
		}
	default:
		b.Fail(parser.Unsupported("brush style %d in LogBrushEx", style))
	}
	return LogBrushEx{Style: style, Color: color, Hatch: hatch}
}

// Brush converts the logical brush to a [Brush].
func (lb LogBrushEx) Brush() Brush {
	switch lb.Style {
	case BSSolid:
		return SolidBrush{Color: lb.Color}
	case BSHatched:
		return HatchBrush{Color: lb.Color, Hatch: lb.Hatch}
	default:
		return nil
	}
}
