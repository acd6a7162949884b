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

package wmf

import "strconv"

// Function identifies the type of a WMF record.  The high byte of the value
// gives the number of parameter words of the record, for records with a
// fixed size.
type Function uint16

// These are the record functions defined for WMF files.
const (
	MetaEOF                   Function = 0x0000
	MetaSaveDC                Function = 0x001E
	MetaRealizePalette        Function = 0x0035
	MetaSetPalEntries         Function = 0x0037
	MetaCreatePalette         Function = 0x00F7
	MetaSetBkMode             Function = 0x0102
	MetaSetMapMode            Function = 0x0103
	MetaSetROP2               Function = 0x0104
	MetaSetRelAbs             Function = 0x0105
	MetaSetPolyFillMode       Function = 0x0106
	MetaSetStretchBltMode     Function = 0x0107
	MetaSetTextCharExtra      Function = 0x0108
	MetaRestoreDC             Function = 0x0127
	MetaInvertRegion          Function = 0x012A
	MetaPaintRegion           Function = 0x012B
	MetaSelectClipRegion      Function = 0x012C
	MetaSelectObject          Function = 0x012D
	MetaSetTextAlign          Function = 0x012E
	MetaResizePalette         Function = 0x0139
	MetaDIBCreatePatternBrush Function = 0x0142
	MetaSetLayout             Function = 0x0149
	MetaDeleteObject          Function = 0x01F0
	MetaCreatePatternBrush    Function = 0x01F9
	MetaSetBkColor            Function = 0x0201
	MetaSetTextColor          Function = 0x0209
	MetaSetTextJustification  Function = 0x020A
	MetaSetWindowOrg          Function = 0x020B
	MetaSetWindowExt          Function = 0x020C
	MetaSetViewportOrg        Function = 0x020D
	MetaSetViewportExt        Function = 0x020E
	MetaOffsetWindowOrg       Function = 0x020F
	MetaOffsetViewportOrg     Function = 0x0211
	MetaLineTo                Function = 0x0213
	MetaMoveTo                Function = 0x0214
	MetaOffsetClipRgn         Function = 0x0220
	MetaFillRegion            Function = 0x0228
	MetaSetMapperFlags        Function = 0x0231
	MetaSelectPalette         Function = 0x0234
	MetaCreatePenIndirect     Function = 0x02FA
	MetaCreateFontIndirect    Function = 0x02FB
	MetaCreateBrushIndirect   Function = 0x02FC
	MetaPolygon               Function = 0x0324
	MetaPolyline              Function = 0x0325
	MetaScaleWindowExt        Function = 0x0410
	MetaScaleViewportExt      Function = 0x0412
	MetaExcludeClipRect       Function = 0x0415
	MetaIntersectClipRect     Function = 0x0416
	MetaEllipse               Function = 0x0418
	MetaFloodFill             Function = 0x0419
	MetaRectangle             Function = 0x041B
	MetaSetPixel              Function = 0x041F
	MetaFrameRegion           Function = 0x0429
	MetaAnimatePalette        Function = 0x0436
	MetaTextOut               Function = 0x0521
	MetaPolyPolygon           Function = 0x0538
	MetaExtFloodFill          Function = 0x0548
	MetaRoundRect             Function = 0x061C
	MetaPatBlt                Function = 0x061D
	MetaEscape                Function = 0x0626
	MetaCreateRegion          Function = 0x06FF
	MetaArc                   Function = 0x0817
	MetaPie                   Function = 0x081A
	MetaChord                 Function = 0x0830
	MetaBitBlt                Function = 0x0922
	MetaDIBBitBlt             Function = 0x0940
	MetaExtTextOut            Function = 0x0A32
	MetaStretchBlt            Function = 0x0B23
	MetaDIBStretchBlt         Function = 0x0B41
	MetaSetDIBToDev           Function = 0x0D33
	MetaStretchDIB            Function = 0x0F43
)

var functionNames = map[Function]string{
	MetaEOF:                   "META_EOF",
	MetaSaveDC:                "META_SAVEDC",
	MetaRealizePalette:        "META_REALIZEPALETTE",
	MetaSetPalEntries:         "META_SETPALENTRIES",
	MetaCreatePalette:         "META_CREATEPALETTE",
	MetaSetBkMode:             "META_SETBKMODE",
	MetaSetMapMode:            "META_SETMAPMODE",
	MetaSetROP2:               "META_SETROP2",
	MetaSetRelAbs:             "META_SETRELABS",
	MetaSetPolyFillMode:       "META_SETPOLYFILLMODE",
	MetaSetStretchBltMode:     "META_SETSTRETCHBLTMODE",
	MetaSetTextCharExtra:      "META_SETTEXTCHAREXTRA",
	MetaRestoreDC:             "META_RESTOREDC",
	MetaInvertRegion:          "META_INVERTREGION",
	MetaPaintRegion:           "META_PAINTREGION",
	MetaSelectClipRegion:      "META_SELECTCLIPREGION",
	MetaSelectObject:          "META_SELECTOBJECT",
	MetaSetTextAlign:          "META_SETTEXTALIGN",
	MetaResizePalette:         "META_RESIZEPALETTE",
	MetaDIBCreatePatternBrush: "META_DIBCREATEPATTERNBRUSH",
	MetaSetLayout:             "META_SETLAYOUT",
	MetaDeleteObject:          "META_DELETEOBJECT",
	MetaCreatePatternBrush:    "META_CREATEPATTERNBRUSH",
	MetaSetBkColor:            "META_SETBKCOLOR",
	MetaSetTextColor:          "META_SETTEXTCOLOR",
	MetaSetTextJustification:  "META_SETTEXTJUSTIFICATION",
	MetaSetWindowOrg:          "META_SETWINDOWORG",
	MetaSetWindowExt:          "META_SETWINDOWEXT",
	MetaSetViewportOrg:        "META_SETVIEWPORTORG",
	MetaSetViewportExt:        "META_SETVIEWPORTEXT",
	MetaOffsetWindowOrg:       "META_OFFSETWINDOWORG",
	MetaOffsetViewportOrg:     "META_OFFSETVIEWPORTORG",
	MetaLineTo:                "META_LINETO",
	MetaMoveTo:                "META_MOVETO",
	MetaOffsetClipRgn:         "META_OFFSETCLIPRGN",
	MetaFillRegion:            "META_FILLREGION",
	MetaSetMapperFlags:        "META_SETMAPPERFLAGS",
	MetaSelectPalette:         "META_SELECTPALETTE",
	MetaCreatePenIndirect:     "META_CREATEPENINDIRECT",
	MetaCreateFontIndirect:    "META_CREATEFONTINDIRECT",
	MetaCreateBrushIndirect:   "META_CREATEBRUSHINDIRECT",
	MetaPolygon:               "META_POLYGON",
	MetaPolyline:              "META_POLYLINE",
	MetaScaleWindowExt:        "META_SCALEWINDOWEXT",
	MetaScaleViewportExt:      "META_SCALEVIEWPORTEXT",
	MetaExcludeClipRect:       "META_EXCLUDECLIPRECT",
	MetaIntersectClipRect:     "META_INTERSECTCLIPRECT",
	MetaEllipse:               "META_ELLIPSE",
	MetaFloodFill:             "META_FLOODFILL",
	MetaRectangle:             "META_RECTANGLE",
	MetaSetPixel:              "META_SETPIXEL",
	MetaFrameRegion:           "META_FRAMEREGION",
	MetaAnimatePalette:        "META_ANIMATEPALETTE",
	MetaTextOut:               "META_TEXTOUT",
	MetaPolyPolygon:           "META_POLYPOLYGON",
	MetaExtFloodFill:          "META_EXTFLOODFILL",
	MetaRoundRect:             "META_ROUNDRECT",
	MetaPatBlt:                "META_PATBLT",
	MetaEscape:                "META_ESCAPE",
	MetaCreateRegion:          "META_CREATEREGION",
	MetaArc:                   "META_ARC",
	MetaPie:                   "META_PIE",
	MetaChord:                 "META_CHORD",
	MetaBitBlt:                "META_BITBLT",
	MetaDIBBitBlt:             "META_DIBBITBLT",
	MetaExtTextOut:            "META_EXTTEXTOUT",
	MetaStretchBlt:            "META_STRETCHBLT",
	MetaDIBStretchBlt:         "META_DIBSTRETCHBLT",
	MetaSetDIBToDev:           "META_SETDIBTODEV",
	MetaStretchDIB:            "META_STRETCHDIB",
}

func (f Function) String() string {
	if name, ok := functionNames[f]; ok {
		return name
	}
	return "Function(0x" + strconv.FormatUint(uint64(f), 16) + ")"
}
