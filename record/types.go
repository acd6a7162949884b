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
	"strconv"

	"seehuhn.de/go/emf/parser"
)

// Type is the numeric type of an EMF record.
type Type uint32

// These are the record types defined for EMF files.
const (
	EMRHeader                  Type = 1
	EMRPolyBezier              Type = 2
	EMRPolygon                 Type = 3
	EMRPolyline                Type = 4
	EMRPolyBezierTo            Type = 5
	EMRPolylineTo              Type = 6
	EMRPolyPolyline            Type = 7
	EMRPolyPolygon             Type = 8
	EMRSetWindowExtEx          Type = 9
	EMRSetWindowOrgEx          Type = 10
	EMRSetViewportExtEx        Type = 11
	EMRSetViewportOrgEx        Type = 12
	EMRSetBrushOrgEx           Type = 13
	EMREOF                     Type = 14
	EMRSetPixelV               Type = 15
	EMRSetMapperFlags          Type = 16
	EMRSetMapMode              Type = 17
	EMRSetBkMode               Type = 18
	EMRSetPolyFillMode         Type = 19
	EMRSetROP2                 Type = 20
	EMRSetStretchBltMode       Type = 21
	EMRSetTextAlign            Type = 22
	EMRSetColorAdjustment      Type = 23
	EMRSetTextColor            Type = 24
	EMRSetBkColor              Type = 25
	EMROffsetClipRgn           Type = 26
	EMRMoveToEx                Type = 27
	EMRSetMetaRgn              Type = 28
	EMRExcludeClipRect         Type = 29
	EMRIntersectClipRect       Type = 30
	EMRScaleViewportExtEx      Type = 31
	EMRScaleWindowExtEx        Type = 32
	EMRSaveDC                  Type = 33
	EMRRestoreDC               Type = 34
	EMRSetWorldTransform       Type = 35
	EMRModifyWorldTransform    Type = 36
	EMRSelectObject            Type = 37
	EMRCreatePen               Type = 38
	EMRCreateBrushIndirect     Type = 39
	EMRDeleteObject            Type = 40
	EMRAngleArc                Type = 41
	EMREllipse                 Type = 42
	EMRRectangle               Type = 43
	EMRRoundRect               Type = 44
	EMRArc                     Type = 45
	EMRChord                   Type = 46
	EMRPie                     Type = 47
	EMRSelectPalette           Type = 48
	EMRCreatePalette           Type = 49
	EMRSetPaletteEntries       Type = 50
	EMRResizePalette           Type = 51
	EMRRealizePalette          Type = 52
	EMRExtFloodFill            Type = 53
	EMRLineTo                  Type = 54
	EMRArcTo                   Type = 55
	EMRPolyDraw                Type = 56
	EMRSetArcDirection         Type = 57
	EMRSetMiterLimit           Type = 58
	EMRBeginPath               Type = 59
	EMREndPath                 Type = 60
	EMRCloseFigure             Type = 61
	EMRFillPath                Type = 62
	EMRStrokeAndFillPath       Type = 63
	EMRStrokePath              Type = 64
	EMRFlattenPath             Type = 65
	EMRWidenPath               Type = 66
	EMRSelectClipPath          Type = 67
	EMRAbortPath               Type = 68
	EMRReserved69              Type = 69
	EMRComment                 Type = 70
	EMRFillRgn                 Type = 71
	EMRFrameRgn                Type = 72
	EMRInvertRgn               Type = 73
	EMRPaintRgn                Type = 74
	EMRExtSelectClipRgn        Type = 75
	EMRBitBlt                  Type = 76
	EMRStretchBlt              Type = 77
	EMRMaskBlt                 Type = 78
	EMRPlgBlt                  Type = 79
	EMRSetDIBitsToDevice       Type = 80
	EMRStretchDIBits           Type = 81
	EMRExtCreateFontIndirectW  Type = 82
	EMRExtTextOutA             Type = 83
	EMRExtTextOutW             Type = 84
	EMRPolyBezier16            Type = 85
	EMRPolygon16               Type = 86
	EMRPolyline16              Type = 87
	EMRPolyBezierTo16          Type = 88
	EMRPolylineTo16            Type = 89
	EMRPolyPolyline16          Type = 90
	EMRPolyPolygon16           Type = 91
	EMRPolyDraw16              Type = 92
	EMRCreateMonoBrush         Type = 93
	EMRCreateDIBPatternBrushPt Type = 94
	EMRExtCreatePen            Type = 95
	EMRPolyTextOutA            Type = 96
	EMRPolyTextOutW            Type = 97
	EMRSetICMMode              Type = 98
	EMRCreateColorSpace        Type = 99
	EMRSetColorSpace           Type = 100
	EMRDeleteColorSpace        Type = 101
	EMRGLSRecord               Type = 102
	EMRGLSBoundedRecord        Type = 103
	EMRPixelFormat             Type = 104
	EMRDrawEscape              Type = 105
	EMRExtEscape               Type = 106
	EMRReserved107             Type = 107
	EMRSmallTextOut            Type = 108
	EMRForceUFIMapping         Type = 109
	EMRNamedEscape             Type = 110
	EMRColorCorrectPalette     Type = 111
	EMRSetICMProfileA          Type = 112
	EMRSetICMProfileW          Type = 113
	EMRAlphaBlend              Type = 114
	EMRSetLayout               Type = 115
	EMRTransparentBlt          Type = 116
	EMRReserved117             Type = 117
	EMRGradientFill            Type = 118
	EMRSetLinkedUFIs           Type = 119
	EMRSetTextJustification    Type = 120
	EMRColorMatchToProfileW    Type = 121
	EMRCreateColorSpaceW       Type = 122
)

// lastType is the highest record type defined for EMF files.
const lastType = EMRCreateColorSpaceW

var typeNames = [...]string{
	EMRHeader:                  "EMR_HEADER",
	EMRPolyBezier:              "EMR_POLYBEZIER",
	EMRPolygon:                 "EMR_POLYGON",
	EMRPolyline:                "EMR_POLYLINE",
	EMRPolyBezierTo:            "EMR_POLYBEZIERTO",
	EMRPolylineTo:              "EMR_POLYLINETO",
	EMRPolyPolyline:            "EMR_POLYPOLYLINE",
	EMRPolyPolygon:             "EMR_POLYPOLYGON",
	EMRSetWindowExtEx:          "EMR_SETWINDOWEXTEX",
	EMRSetWindowOrgEx:          "EMR_SETWINDOWORGEX",
	EMRSetViewportExtEx:        "EMR_SETVIEWPORTEXTEX",
	EMRSetViewportOrgEx:        "EMR_SETVIEWPORTORGEX",
	EMRSetBrushOrgEx:           "EMR_SETBRUSHORGEX",
	EMREOF:                     "EMR_EOF",
	EMRSetPixelV:               "EMR_SETPIXELV",
	EMRSetMapperFlags:          "EMR_SETMAPPERFLAGS",
	EMRSetMapMode:              "EMR_SETMAPMODE",
	EMRSetBkMode:               "EMR_SETBKMODE",
	EMRSetPolyFillMode:         "EMR_SETPOLYFILLMODE",
	EMRSetROP2:                 "EMR_SETROP2",
	EMRSetStretchBltMode:       "EMR_SETSTRETCHBLTMODE",
	EMRSetTextAlign:            "EMR_SETTEXTALIGN",
	EMRSetColorAdjustment:      "EMR_SETCOLORADJUSTMENT",
	EMRSetTextColor:            "EMR_SETTEXTCOLOR",
	EMRSetBkColor:              "EMR_SETBKCOLOR",
	EMROffsetClipRgn:           "EMR_OFFSETCLIPRGN",
	EMRMoveToEx:                "EMR_MOVETOEX",
	EMRSetMetaRgn:              "EMR_SETMETARGN",
	EMRExcludeClipRect:         "EMR_EXCLUDECLIPRECT",
	EMRIntersectClipRect:       "EMR_INTERSECTCLIPRECT",
	EMRScaleViewportExtEx:      "EMR_SCALEVIEWPORTEXTEX",
	EMRScaleWindowExtEx:        "EMR_SCALEWINDOWEXTEX",
	EMRSaveDC:                  "EMR_SAVEDC",
	EMRRestoreDC:               "EMR_RESTOREDC",
	EMRSetWorldTransform:       "EMR_SETWORLDTRANSFORM",
	EMRModifyWorldTransform:    "EMR_MODIFYWORLDTRANSFORM",
	EMRSelectObject:            "EMR_SELECTOBJECT",
	EMRCreatePen:               "EMR_CREATEPEN",
	EMRCreateBrushIndirect:     "EMR_CREATEBRUSHINDIRECT",
	EMRDeleteObject:            "EMR_DELETEOBJECT",
	EMRAngleArc:                "EMR_ANGLEARC",
	EMREllipse:                 "EMR_ELLIPSE",
	EMRRectangle:               "EMR_RECTANGLE",
	EMRRoundRect:               "EMR_ROUNDRECT",
	EMRArc:                     "EMR_ARC",
	EMRChord:                   "EMR_CHORD",
	EMRPie:                     "EMR_PIE",
	EMRSelectPalette:           "EMR_SELECTPALETTE",
	EMRCreatePalette:           "EMR_CREATEPALETTE",
	EMRSetPaletteEntries:       "EMR_SETPALETTEENTRIES",
	EMRResizePalette:           "EMR_RESIZEPALETTE",
	EMRRealizePalette:          "EMR_REALIZEPALETTE",
	EMRExtFloodFill:            "EMR_EXTFLOODFILL",
	EMRLineTo:                  "EMR_LINETO",
	EMRArcTo:                   "EMR_ARCTO",
	EMRPolyDraw:                "EMR_POLYDRAW",
	EMRSetArcDirection:         "EMR_SETARCDIRECTION",
	EMRSetMiterLimit:           "EMR_SETMITERLIMIT",
	EMRBeginPath:               "EMR_BEGINPATH",
	EMREndPath:                 "EMR_ENDPATH",
	EMRCloseFigure:             "EMR_CLOSEFIGURE",
	EMRFillPath:                "EMR_FILLPATH",
	EMRStrokeAndFillPath:       "EMR_STROKEANDFILLPATH",
	EMRStrokePath:              "EMR_STROKEPATH",
	EMRFlattenPath:             "EMR_FLATTENPATH",
	EMRWidenPath:               "EMR_WIDENPATH",
	EMRSelectClipPath:          "EMR_SELECTCLIPPATH",
	EMRAbortPath:               "EMR_ABORTPATH",
	EMRReserved69:              "EMR_RESERVED_69",
	EMRComment:                 "EMR_COMMENT",
	EMRFillRgn:                 "EMR_FILLRGN",
	EMRFrameRgn:                "EMR_FRAMERGN",
	EMRInvertRgn:               "EMR_INVERTRGN",
	EMRPaintRgn:                "EMR_PAINTRGN",
	EMRExtSelectClipRgn:        "EMR_EXTSELECTCLIPRGN",
	EMRBitBlt:                  "EMR_BITBLT",
	EMRStretchBlt:              "EMR_STRETCHBLT",
	EMRMaskBlt:                 "EMR_MASKBLT",
	EMRPlgBlt:                  "EMR_PLGBLT",
	EMRSetDIBitsToDevice:       "EMR_SETDIBITSTODEVICE",
	EMRStretchDIBits:           "EMR_STRETCHDIBITS",
	EMRExtCreateFontIndirectW:  "EMR_EXTCREATEFONTINDIRECTW",
	EMRExtTextOutA:             "EMR_EXTTEXTOUTA",
	EMRExtTextOutW:             "EMR_EXTTEXTOUTW",
	EMRPolyBezier16:            "EMR_POLYBEZIER16",
	EMRPolygon16:               "EMR_POLYGON16",
	EMRPolyline16:              "EMR_POLYLINE16",
	EMRPolyBezierTo16:          "EMR_POLYBEZIERTO16",
	EMRPolylineTo16:            "EMR_POLYLINETO16",
	EMRPolyPolyline16:          "EMR_POLYPOLYLINE16",
	EMRPolyPolygon16:           "EMR_POLYPOLYGON16",
	EMRPolyDraw16:              "EMR_POLYDRAW16",
	EMRCreateMonoBrush:         "EMR_CREATEMONOBRUSH",
	EMRCreateDIBPatternBrushPt: "EMR_CREATEDIBPATTERNBRUSHPT",
	EMRExtCreatePen:            "EMR_EXTCREATEPEN",
	EMRPolyTextOutA:            "EMR_POLYTEXTOUTA",
	EMRPolyTextOutW:            "EMR_POLYTEXTOUTW",
	EMRSetICMMode:              "EMR_SETICMMODE",
	EMRCreateColorSpace:        "EMR_CREATECOLORSPACE",
	EMRSetColorSpace:           "EMR_SETCOLORSPACE",
	EMRDeleteColorSpace:        "EMR_DELETECOLORSPACE",
	EMRGLSRecord:               "EMR_GLSRECORD",
	EMRGLSBoundedRecord:        "EMR_GLSBOUNDEDRECORD",
	EMRPixelFormat:             "EMR_PIXELFORMAT",
	EMRDrawEscape:              "EMR_DRAWESCAPE",
	EMRExtEscape:               "EMR_EXTESCAPE",
	EMRReserved107:             "EMR_RESERVED_107",
	EMRSmallTextOut:            "EMR_SMALLTEXTOUT",
	EMRForceUFIMapping:         "EMR_FORCEUFIMAPPING",
	EMRNamedEscape:             "EMR_NAMEDESCAPE",
	EMRColorCorrectPalette:     "EMR_COLORCORRECTPALETTE",
	EMRSetICMProfileA:          "EMR_SETICMPROFILEA",
	EMRSetICMProfileW:          "EMR_SETICMPROFILEW",
	EMRAlphaBlend:              "EMR_ALPHABLEND",
	EMRSetLayout:               "EMR_SETLAYOUT",
	EMRTransparentBlt:          "EMR_TRANSPARENTBLT",
	EMRReserved117:             "EMR_RESERVED_117",
	EMRGradientFill:            "EMR_GRADIENTFILL",
	EMRSetLinkedUFIs:           "EMR_SETLINKEDUFIS",
	EMRSetTextJustification:    "EMR_SETTEXTJUSTIFICATION",
	EMRColorMatchToProfileW:    "EMR_COLORMATCHTOPROFILEW",
	EMRCreateColorSpaceW:       "EMR_CREATECOLORSPACEW",
}

func (t Type) String() string {
	if t >= EMRHeader && t <= lastType {
		return typeNames[t]
	}
	return "Type(" + strconv.FormatUint(uint64(t), 10) + ")"
}

// IsReserved reports whether t is one of the record types which are
// reserved and must be ignored.
func (t Type) IsReserved() bool {
	return t == EMRReserved69 || t == EMRReserved107 || t == EMRReserved117
}

// ParseType converts a record type code to a Type.  Codes outside the range
// of defined record types give an UnexpectedPattern error.
func ParseType(code uint32) (Type, error) {
	t := Type(code)
	if t < EMRHeader || t > lastType {
		return 0, parser.Unexpected("record type %d", code)
	}
	return t, nil
}
