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

// Package record decodes the individual records of an EMF file.
//
// Each record starts with a 4-byte record type and a 4-byte size, followed
// by a body whose layout depends on the type.  [Decode] reads the body of
// one record into a typed value which implements the [Record] interface.
// Record types which share a layout share a Go type; these carry the
// record type in a Type field.
//
// Some records contain variable-length buffers, for example bitmaps or
// strings, which are located using byte offsets from the start of the
// record.  The decoders read these buffers in order of increasing offset
// and discard any undefined space between them.  Overlapping buffers, or
// buffers which extend beyond the end of the record, are reported as
// errors.
package record

import (
	"golang.org/x/exp/slices"

	"seehuhn.de/go/emf/gdi"
	"seehuhn.de/go/emf/parser"
)

// Record is a decoded EMF record.
type Record interface {
	RecordType() Type
}

// HeaderSize is the number of bytes used by the record type and size
// fields at the start of every record.
const HeaderSize = 8

type decoder func(tp Type, b *parser.Body) Record

// Decode decodes the body of a record of type tp.  The body must have been
// positioned after the type and size fields; on success, all bytes of the
// record have been consumed.
func Decode(tp Type, b *parser.Body) (Record, error) {
	if int(tp) >= len(decoders) || decoders[tp] == nil {
		return nil, parser.Unexpected("no decoder for record type %s", tp)
	}
	rec := decoders[tp](tp, b)
	if err := b.Finish(); err != nil {
		return nil, err
	}
	if rec == nil || rec.RecordType() != tp {
		return nil, parser.Unexpected("decoder for %s returned the wrong record", tp)
	}
	return rec, nil
}

// Record types which share a decoder.
var (
	polyTypes        = []Type{EMRPolyBezier, EMRPolygon, EMRPolyline, EMRPolyBezierTo, EMRPolylineTo}
	poly16Types      = []Type{EMRPolyBezier16, EMRPolygon16, EMRPolyline16, EMRPolyBezierTo16, EMRPolylineTo16}
	polyPolyTypes    = []Type{EMRPolyPolyline, EMRPolyPolygon}
	polyPoly16Types  = []Type{EMRPolyPolyline16, EMRPolyPolygon16}
	boxTypes         = []Type{EMREllipse, EMRRectangle}
	arcBoxTypes      = []Type{EMRArc, EMRChord, EMRPie, EMRArcTo}
	pathBoundsTypes  = []Type{EMRFillPath, EMRStrokeAndFillPath, EMRStrokePath}
	paintRgnTypes    = []Type{EMRInvertRgn, EMRPaintRgn}
	noParamsTypes    = []Type{EMRSetMetaRgn, EMRSaveDC, EMRRealizePalette, EMRBeginPath, EMREndPath, EMRCloseFigure, EMRFlattenPath, EMRWidenPath, EMRAbortPath}
	setExtentTypes   = []Type{EMRSetWindowExtEx, EMRSetViewportExtEx}
	setOriginTypes   = []Type{EMRSetWindowOrgEx, EMRSetViewportOrgEx, EMRSetBrushOrgEx}
	scaleExtentTypes = []Type{EMRScaleViewportExtEx, EMRScaleWindowExtEx}
	setColorTypes    = []Type{EMRSetTextColor, EMRSetBkColor}
	clipRectTypes    = []Type{EMRExcludeClipRect, EMRIntersectClipRect}
	icmProfileTypes  = []Type{EMRSetICMProfileA, EMRSetICMProfileW}
	objectIndexTypes = []Type{EMRSelectObject, EMRDeleteObject, EMRSelectPalette, EMRSetColorSpace, EMRDeleteColorSpace}
	extTextOutTypes  = []Type{EMRExtTextOutA, EMRExtTextOutW}
	polyTextOutTypes = []Type{EMRPolyTextOutA, EMRPolyTextOutW}
	escapeTypes      = []Type{EMRDrawEscape, EMRExtEscape}
)

var decoders [lastType + 1]decoder

func init() {
	reg := func(dec decoder, types ...Type) {
		for _, tp := range types {
			decoders[tp] = dec
		}
	}

	reg(decodeHeader, EMRHeader)
	reg(decodeEOF, EMREOF)

	reg(decodePoly, polyTypes...)
	reg(decodePoly16, poly16Types...)
	reg(decodePolyPoly, polyPolyTypes...)
	reg(decodePolyPoly16, polyPoly16Types...)
	reg(decodePolyDraw, EMRPolyDraw)
	reg(decodePolyDraw16, EMRPolyDraw16)
	reg(decodeBox, boxTypes...)
	reg(decodeRoundRect, EMRRoundRect)
	reg(decodeArcBox, arcBoxTypes...)
	reg(decodeAngleArc, EMRAngleArc)
	reg(decodeLineTo, EMRLineTo)
	reg(decodeSetPixelV, EMRSetPixelV)
	reg(decodeExtFloodFill, EMRExtFloodFill)
	reg(decodePathBounds, pathBoundsTypes...)
	reg(decodeFillRgn, EMRFillRgn)
	reg(decodeFrameRgn, EMRFrameRgn)
	reg(decodePaintRgn, paintRgnTypes...)
	reg(decodeGradientFill, EMRGradientFill)

	reg(decodeNoParams, noParamsTypes...)
	reg(decodeSetExtent, setExtentTypes...)
	reg(decodeSetOrigin, setOriginTypes...)
	reg(decodeScaleExtent, scaleExtentTypes...)
	reg(decodeSetMapperFlags, EMRSetMapperFlags)
	reg(decodeSetMapMode, EMRSetMapMode)
	reg(decodeSetBkMode, EMRSetBkMode)
	reg(decodeSetPolyFillMode, EMRSetPolyFillMode)
	reg(decodeSetROP2, EMRSetROP2)
	reg(decodeSetStretchBltMode, EMRSetStretchBltMode)
	reg(decodeSetTextAlign, EMRSetTextAlign)
	reg(decodeSetColorAdjustment, EMRSetColorAdjustment)
	reg(decodeSetColor, setColorTypes...)
	reg(decodeOffsetClipRgn, EMROffsetClipRgn)
	reg(decodeMoveToEx, EMRMoveToEx)
	reg(decodeClipRect, clipRectTypes...)
	reg(decodeRestoreDC, EMRRestoreDC)
	reg(decodeSetWorldTransform, EMRSetWorldTransform)
	reg(decodeModifyWorldTransform, EMRModifyWorldTransform)
	reg(decodeSetArcDirection, EMRSetArcDirection)
	reg(decodeSetMiterLimit, EMRSetMiterLimit)
	reg(decodeSelectClipPath, EMRSelectClipPath)
	reg(decodeExtSelectClipRgn, EMRExtSelectClipRgn)
	reg(decodeSetICMMode, EMRSetICMMode)
	reg(decodeSetLayout, EMRSetLayout)
	reg(decodeSetTextJustification, EMRSetTextJustification)
	reg(decodeForceUFIMapping, EMRForceUFIMapping)
	reg(decodeSetLinkedUFIs, EMRSetLinkedUFIs)
	reg(decodePixelFormat, EMRPixelFormat)
	reg(decodeSetICMProfile, icmProfileTypes...)
	reg(decodeColorMatchToProfileW, EMRColorMatchToProfileW)
	reg(decodeColorCorrectPalette, EMRColorCorrectPalette)

	reg(decodeObjectIndex, objectIndexTypes...)
	reg(decodeCreatePen, EMRCreatePen)
	reg(decodeCreateBrushIndirect, EMRCreateBrushIndirect)
	reg(decodeCreatePalette, EMRCreatePalette)
	reg(decodeSetPaletteEntries, EMRSetPaletteEntries)
	reg(decodeResizePalette, EMRResizePalette)
	reg(decodeExtCreateFontIndirectW, EMRExtCreateFontIndirectW)
	reg(decodeCreateMonoBrush, EMRCreateMonoBrush)
	reg(decodeCreateDIBPatternBrushPt, EMRCreateDIBPatternBrushPt)
	reg(decodeExtCreatePen, EMRExtCreatePen)
	reg(decodeCreateColorSpace, EMRCreateColorSpace)
	reg(decodeCreateColorSpaceW, EMRCreateColorSpaceW)

	reg(decodeBitBlt, EMRBitBlt)
	reg(decodeStretchBlt, EMRStretchBlt)
	reg(decodeMaskBlt, EMRMaskBlt)
	reg(decodePlgBlt, EMRPlgBlt)
	reg(decodeSetDIBitsToDevice, EMRSetDIBitsToDevice)
	reg(decodeStretchDIBits, EMRStretchDIBits)
	reg(decodeAlphaBlend, EMRAlphaBlend)
	reg(decodeTransparentBlt, EMRTransparentBlt)

	reg(decodeExtTextOut, extTextOutTypes...)
	reg(decodePolyTextOut, polyTextOutTypes...)
	reg(decodeSmallTextOut, EMRSmallTextOut)

	reg(decodeComment, EMRComment)
	reg(decodeEscape, escapeTypes...)
	reg(decodeNamedEscape, EMRNamedEscape)
	reg(decodeGLSRecord, EMRGLSRecord)
	reg(decodeGLSBoundedRecord, EMRGLSBoundedRecord)
}

// accepts checks that tp is one of the record types handled by a shared
// decoder.
func accepts(tp Type, b *parser.Body, types []Type) bool {
	if slices.Contains(types, tp) {
		return true
	}
	b.Failf("%s passed to the decoder for %s", tp, types[0])
	return false
}

// fixedSize checks that the record has exactly the given size.
func fixedSize(tp Type, b *parser.Body, size uint32) bool {
	if declared := b.Size().Declared(); declared != size {
		b.Failf("%s record has size %d, expected %d", tp, declared, size)
		return false
	}
	return true
}

// minSize checks that the record has at least the given size.
func minSize(tp Type, b *parser.Body, size uint32) bool {
	if declared := b.Size().Declared(); declared < size {
		b.Failf("%s record has size %d, expected at least %d", tp, declared, size)
		return false
	}
	return true
}

// buffer locates a variable-length buffer inside a record.
type buffer struct {
	offset uint32
	size   uint32
}

// readBuffers reads the given buffers in order of increasing offset.
// Empty buffers are returned as nil.
func readBuffers(b *parser.Body, bufs ...buffer) [][]byte {
	order := make([]int, len(bufs))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(i, j int) int {
		switch {
		case bufs[i].offset < bufs[j].offset:
			return -1
		case bufs[i].offset > bufs[j].offset:
			return 1
		default:
			return 0
		}
	})

	res := make([][]byte, len(bufs))
	for _, i := range order {
		res[i] = b.Payload(bufs[i].offset, bufs[i].size)
	}
	return res
}

// readDIB reads a bitmap which is given by the offsets and sizes of its
// bitmap info and its bits.  If both sizes are zero, nil is returned.
func readDIB(b *parser.Body, offBmi, cbBmi, offBits, cbBits uint32) *gdi.DIB {
	if cbBmi == 0 && cbBits == 0 {
		return nil
	}
	bufs := readBuffers(b, buffer{offBmi, cbBmi}, buffer{offBits, cbBits})
	if b.Err() != nil {
		return nil
	}
	dib, err := gdi.DecodeDIB(bufs[0], bufs[1])
	if err != nil {
		b.Fail(err)
		return nil
	}
	return dib
}

func readPointsL(b *parser.Body, n uint32) []gdi.PointL {
	k := b.Count(n, 8)
	res := make([]gdi.PointL, k)
	for i := range res {
		res[i] = gdi.ReadPointL(b)
	}
	return res
}

func readPointsS(b *parser.Body, n uint32) []gdi.PointS {
	k := b.Count(n, 4)
	res := make([]gdi.PointS, k)
	for i := range res {
		res[i] = gdi.ReadPointS(b)
	}
	return res
}

func readU32s(b *parser.Body, n uint32) []uint32 {
	k := b.Count(n, 4)
	res := make([]uint32, k)
	for i := range res {
		res[i] = b.U32()
	}
	return res
}
