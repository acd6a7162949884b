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

import "seehuhn.de/go/emf/parser"

// Enum is the set of 32-bit enumeration types which can validate their
// values.
type Enum interface {
	~uint32
	IsValid() bool
}

// ReadEnum reads a 32-bit enumeration value.  Values outside the
// enumeration cause an UnexpectedEnumValue error.
func ReadEnum[T Enum](b *parser.Body, name string) T {
	x := T(b.U32())
	if b.Err() == nil && !x.IsValid() {
		b.Fail(parser.EnumValue(name, uint32(x)))
	}
	return x
}

// MapMode specifies how logical units are mapped to device units.
type MapMode uint32

// These are the possible values for MapMode.
const (
	MapModeText        MapMode = 0x01
	MapModeLoMetric    MapMode = 0x02
	MapModeHiMetric    MapMode = 0x03
	MapModeLoEnglish   MapMode = 0x04
	MapModeHiEnglish   MapMode = 0x05
	MapModeTwips       MapMode = 0x06
	MapModeIsotropic   MapMode = 0x07
	MapModeAnisotropic MapMode = 0x08
)

// IsValid reports whether m is a defined map mode.
func (m MapMode) IsValid() bool {
	return m >= MapModeText && m <= MapModeAnisotropic
}

// BackgroundMode specifies whether the background is filled before text,
// hatched brushes and non-solid pens are drawn.
type BackgroundMode uint32

// These are the possible values for BackgroundMode.
const (
	Transparent BackgroundMode = 0x0001
	Opaque      BackgroundMode = 0x0002
)

// IsValid reports whether m is a defined background mode.
func (m BackgroundMode) IsValid() bool {
	return m == Transparent || m == Opaque
}

// PolygonFillMode specifies how the interior of self-intersecting polygons
// is determined.
type PolygonFillMode uint32

// These are the possible values for PolygonFillMode.
const (
	Alternate PolygonFillMode = 0x01
	Winding   PolygonFillMode = 0x02
)

// IsValid reports whether m is a defined fill mode.
func (m PolygonFillMode) IsValid() bool {
	return m == Alternate || m == Winding
}

// BinaryRasterOp is a mix mode, combining pen or brush colors with the
// colors already on the output surface.
type BinaryRasterOp uint32

// These are the possible values for BinaryRasterOp.
const (
	R2Black       BinaryRasterOp = 0x0001
	R2NotMergePen BinaryRasterOp = 0x0002
	R2MaskNotPen  BinaryRasterOp = 0x0003
	R2NotCopyPen  BinaryRasterOp = 0x0004
	R2MaskPenNot  BinaryRasterOp = 0x0005
	R2Not         BinaryRasterOp = 0x0006
	R2XorPen      BinaryRasterOp = 0x0007
	R2NotMaskPen  BinaryRasterOp = 0x0008
	R2MaskPen     BinaryRasterOp = 0x0009
	R2NotXorPen   BinaryRasterOp = 0x000A
	R2Nop         BinaryRasterOp = 0x000B
	R2MergeNotPen BinaryRasterOp = 0x000C
	R2CopyPen     BinaryRasterOp = 0x000D
	R2MergePenNot BinaryRasterOp = 0x000E
	R2MergePen    BinaryRasterOp = 0x000F
	R2White       BinaryRasterOp = 0x0010
)

// IsValid reports whether op is a defined mix mode.
func (op BinaryRasterOp) IsValid() bool {
	return op >= R2Black && op <= R2White
}

// StretchMode specifies how bitmaps are stretched or compressed.
type StretchMode uint32

// These are the possible values for StretchMode.
const (
	StretchAndScans    StretchMode = 0x01
	StretchOrScans     StretchMode = 0x02
	StretchDeleteScans StretchMode = 0x03
	StretchHalftone    StretchMode = 0x04
)

// IsValid reports whether m is a defined stretch mode.
func (m StretchMode) IsValid() bool {
	return m >= StretchAndScans && m <= StretchHalftone
}

// ArcDirection specifies the drawing direction for arcs and rectangles.
type ArcDirection uint32

// These are the possible values for ArcDirection.
const (
	CounterClockwise ArcDirection = 0x0001
	Clockwise        ArcDirection = 0x0002
)

// IsValid reports whether d is a defined arc direction.
func (d ArcDirection) IsValid() bool {
	return d == CounterClockwise || d == Clockwise
}

// RegionMode specifies how a new region is combined with the clipping
// region.
type RegionMode uint32

// These are the possible values for RegionMode.
const (
	RgnAnd  RegionMode = 0x01
	RgnOr   RegionMode = 0x02
	RgnXor  RegionMode = 0x03
	RgnDiff RegionMode = 0x04
	RgnCopy RegionMode = 0x05
)

// IsValid reports whether m is a defined region mode.
func (m RegionMode) IsValid() bool {
	return m >= RgnAnd && m <= RgnCopy
}

// ICMMode specifies the state of image color management.
type ICMMode uint32

// These are the possible values for ICMMode.
const (
	ICMOff           ICMMode = 0x01
	ICMOn            ICMMode = 0x02
	ICMQuery         ICMMode = 0x03
	ICMDoneOutsideDC ICMMode = 0x04
	ICMDoneInsideDC  ICMMode = 0x05
)

// IsValid reports whether m is a defined ICM mode.
func (m ICMMode) IsValid() bool {
	return m >= ICMOff && m <= ICMDoneInsideDC
}

// LayoutMode specifies the order in which text and graphics are drawn.
type LayoutMode uint32

// These are the possible values for LayoutMode.
const (
	LayoutLTR                        LayoutMode = 0x00000000
	LayoutRTL                        LayoutMode = 0x00000001
	LayoutBitmapOrientationPreserved LayoutMode = 0x00000008
)

// IsValid reports whether m is a defined layout mode.
func (m LayoutMode) IsValid() bool {
	return m&^(LayoutRTL|LayoutBitmapOrientationPreserved) == 0
}

// GraphicsMode specifies how text is transformed.
type GraphicsMode uint32

// These are the possible values for GraphicsMode.
const (
	GMCompatible GraphicsMode = 0x00000001
	GMAdvanced   GraphicsMode = 0x00000002
)

// IsValid reports whether m is a defined graphics mode.
func (m GraphicsMode) IsValid() bool {
	return m == GMCompatible || m == GMAdvanced
}

// ModifyWorldTransformMode specifies how EMR_MODIFYWORLDTRANSFORM changes
// the world transformation.
type ModifyWorldTransformMode uint32

// These are the possible values for ModifyWorldTransformMode.
const (
	MWTIdentity      ModifyWorldTransformMode = 0x01
	MWTLeftMultiply  ModifyWorldTransformMode = 0x02
	MWTRightMultiply ModifyWorldTransformMode = 0x03
	MWTSet           ModifyWorldTransformMode = 0x04
)

// IsValid reports whether m is a defined mode.
func (m ModifyWorldTransformMode) IsValid() bool {
	return m >= MWTIdentity && m <= MWTSet
}

// FloodFill specifies how the area of a flood fill is determined.
type FloodFill uint32

// These are the possible values for FloodFill.
const (
	FloodFillBorder  FloodFill = 0x00000000
	FloodFillSurface FloodFill = 0x00000001
)

// IsValid reports whether f is a defined flood fill mode.
func (f FloodFill) IsValid() bool {
	return f == FloodFillBorder || f == FloodFillSurface
}

// DIBColors specifies how the color table of a bitmap is interpreted.
type DIBColors uint32

// These are the possible values for DIBColors.
const (
	DIBRGBColors  DIBColors = 0x00
	DIBPalColors  DIBColors = 0x01
	DIBPalIndices DIBColors = 0x02
)

// IsValid reports whether c is a defined color usage.
func (c DIBColors) IsValid() bool {
	return c <= DIBPalIndices
}

// TextAlignment is a combination of text alignment flags.
type TextAlignment uint32

// Text alignment flags.  The horizontal and vertical alignments are
// encoded in bit fields, the zero values mean left and top.
const (
	TANoUpdateCP TextAlignment = 0x0000
	TALeft       TextAlignment = 0x0000
	TATop        TextAlignment = 0x0000
	TAUpdateCP   TextAlignment = 0x0001
	TARight      TextAlignment = 0x0002
	TACenter     TextAlignment = 0x0006
	TABottom     TextAlignment = 0x0008
	TABaseline   TextAlignment = 0x0018
	TARTLReading TextAlignment = 0x0100

	taHorizontalMask = 0x0006
	taVerticalMask   = 0x0018
)

// Horizontal returns the horizontal alignment: TALeft, TARight or TACenter.
func (a TextAlignment) Horizontal() TextAlignment {
	return a & taHorizontalMask
}

// Vertical returns the vertical alignment: TATop, TABottom or TABaseline.
func (a TextAlignment) Vertical() TextAlignment {
	return a & taVerticalMask
}

// ExtTextOutOptions is a combination of text output flags.
type ExtTextOutOptions uint32

// Text output flags.
const (
	ETOOpaque          ExtTextOutOptions = 0x00000002
	ETOClipped         ExtTextOutOptions = 0x00000004
	ETOGlyphIndex      ExtTextOutOptions = 0x00000010
	ETORTLReading      ExtTextOutOptions = 0x00000080
	ETONoRect          ExtTextOutOptions = 0x00000100
	ETOSmallChars      ExtTextOutOptions = 0x00000200
	ETONumericsLocal   ExtTextOutOptions = 0x00000400
	ETONumericsLatin   ExtTextOutOptions = 0x00000800
	ETOIgnoreLanguage  ExtTextOutOptions = 0x00001000
	ETOPDY             ExtTextOutOptions = 0x00002000
	ETOReverseIndexMap ExtTextOutOptions = 0x00010000
)

// TernaryRasterOp combines a source bitmap, the selected brush and the
// destination.  Only the commonly used values are named here.
type TernaryRasterOp uint32

// Common raster operations.
const (
	SrcCopy    TernaryRasterOp = 0x00CC0020
	SrcPaint   TernaryRasterOp = 0x00EE0086
	SrcAnd     TernaryRasterOp = 0x008800C6
	SrcInvert  TernaryRasterOp = 0x00660046
	SrcErase   TernaryRasterOp = 0x00440328
	NotSrcCopy TernaryRasterOp = 0x00330008
	MergeCopy  TernaryRasterOp = 0x00C000CA
	PatCopy    TernaryRasterOp = 0x00F00021
	PatInvert  TernaryRasterOp = 0x005A0049
	DstInvert  TernaryRasterOp = 0x00550009
	Blackness  TernaryRasterOp = 0x00000042
	Whiteness  TernaryRasterOp = 0x00FF0062
)

// UsesSource reports whether the raster operation depends on the source
// bitmap.
func (op TernaryRasterOp) UsesSource() bool {
	// The index byte encodes the result for all combinations of pattern,
	// source and destination bits.  The operation ignores the source if
	// the result is the same for both source values.
	idx := byte(op >> 16)
	return (idx>>2)&0x33 != idx&0x33
}

// PolyDrawType is the type of a point in EMR_POLYDRAW records.
type PolyDrawType uint8

// These are the possible values for PolyDrawType.
const (
	PTCloseFigure PolyDrawType = 0x01
	PTLineTo      PolyDrawType = 0x02
	PTBezierTo    PolyDrawType = 0x04
	PTMoveTo      PolyDrawType = 0x06
)

// Kind returns the point type without the close figure flag.
func (t PolyDrawType) Kind() PolyDrawType {
	return t &^ PTCloseFigure
}

// IsValid reports whether t is a defined point type.
func (t PolyDrawType) IsValid() bool {
	switch t.Kind() {
	case PTLineTo, PTBezierTo, PTMoveTo:
		return true
	}
	return false
}

// ColorMatchToTarget specifies how EMR_COLORMATCHTOPROFILEW uses a profile.
type ColorMatchToTarget uint32

// These are the possible values for ColorMatchToTarget.
const (
	CSEnable          ColorMatchToTarget = 0x00000001
	CSDisable         ColorMatchToTarget = 0x00000002
	CSDeleteTransform ColorMatchToTarget = 0x00000003
)

// IsValid reports whether t is a defined action.
func (t ColorMatchToTarget) IsValid() bool {
	return t >= CSEnable && t <= CSDeleteTransform
}

// GradientFillMode specifies the shape of a gradient fill.
type GradientFillMode uint32

// These are the possible values for GradientFillMode.
const (
	GradientFillRectH    GradientFillMode = 0x00000000
	GradientFillRectV    GradientFillMode = 0x00000001
	GradientFillTriangle GradientFillMode = 0x00000002
)

// IsValid reports whether m is a defined gradient fill mode.
func (m GradientFillMode) IsValid() bool {
	return m <= GradientFillTriangle
}
