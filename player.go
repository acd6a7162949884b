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

package emf

import (
	"seehuhn.de/go/emf/playback"
	"seehuhn.de/go/emf/record"
)

// Player receives the records of a metafile, in the order in which they
// appear in the file.
//
// There is one method for every record type.  Records which share a layout
// are passed as the same Go type.  After the EMR_EOF record has been
// played, Generate is called to obtain the output.
type Player interface {
	Header(r *record.Header) error                                   // EMR_HEADER
	PolyBezier(r *record.Poly) error                                 // EMR_POLYBEZIER
	Polygon(r *record.Poly) error                                    // EMR_POLYGON
	Polyline(r *record.Poly) error                                   // EMR_POLYLINE
	PolyBezierTo(r *record.Poly) error                               // EMR_POLYBEZIERTO
	PolylineTo(r *record.Poly) error                                 // EMR_POLYLINETO
	PolyPolyline(r *record.PolyPoly) error                           // EMR_POLYPOLYLINE
	PolyPolygon(r *record.PolyPoly) error                            // EMR_POLYPOLYGON
	SetWindowExtEx(r *record.SetExtent) error                        // EMR_SETWINDOWEXTEX
	SetWindowOrgEx(r *record.SetOrigin) error                        // EMR_SETWINDOWORGEX
	SetViewportExtEx(r *record.SetExtent) error                      // EMR_SETVIEWPORTEXTEX
	SetViewportOrgEx(r *record.SetOrigin) error                      // EMR_SETVIEWPORTORGEX
	SetBrushOrgEx(r *record.SetOrigin) error                         // EMR_SETBRUSHORGEX
	EOF(r *record.EOF) error                                         // EMR_EOF
	SetPixelV(r *record.SetPixelV) error                             // EMR_SETPIXELV
	SetMapperFlags(r *record.SetMapperFlags) error                   // EMR_SETMAPPERFLAGS
	SetMapMode(r *record.SetMapMode) error                           // EMR_SETMAPMODE
	SetBkMode(r *record.SetBkMode) error                             // EMR_SETBKMODE
	SetPolyFillMode(r *record.SetPolyFillMode) error                 // EMR_SETPOLYFILLMODE
	SetROP2(r *record.SetROP2) error                                 // EMR_SETROP2
	SetStretchBltMode(r *record.SetStretchBltMode) error             // EMR_SETSTRETCHBLTMODE
	SetTextAlign(r *record.SetTextAlign) error                       // EMR_SETTEXTALIGN
	SetColorAdjustment(r *record.SetColorAdjustment) error           // EMR_SETCOLORADJUSTMENT
	SetTextColor(r *record.SetColor) error                           // EMR_SETTEXTCOLOR
	SetBkColor(r *record.SetColor) error                             // EMR_SETBKCOLOR
	OffsetClipRgn(r *record.OffsetClipRgn) error                     // EMR_OFFSETCLIPRGN
	MoveToEx(r *record.MoveToEx) error                               // EMR_MOVETOEX
	SetMetaRgn(r *record.NoParams) error                             // EMR_SETMETARGN
	ExcludeClipRect(r *record.ClipRect) error                        // EMR_EXCLUDECLIPRECT
	IntersectClipRect(r *record.ClipRect) error                      // EMR_INTERSECTCLIPRECT
	ScaleViewportExtEx(r *record.ScaleExtent) error                  // EMR_SCALEVIEWPORTEXTEX
	ScaleWindowExtEx(r *record.ScaleExtent) error                    // EMR_SCALEWINDOWEXTEX
	SaveDC(r *record.NoParams) error                                 // EMR_SAVEDC
	RestoreDC(r *record.RestoreDC) error                             // EMR_RESTOREDC
	SetWorldTransform(r *record.SetWorldTransform) error             // EMR_SETWORLDTRANSFORM
	ModifyWorldTransform(r *record.ModifyWorldTransform) error       // EMR_MODIFYWORLDTRANSFORM
	SelectObject(r *record.ObjectIndex) error                        // EMR_SELECTOBJECT
	CreatePen(r *record.CreatePen) error                             // EMR_CREATEPEN
	CreateBrushIndirect(r *record.CreateBrushIndirect) error         // EMR_CREATEBRUSHINDIRECT
	DeleteObject(r *record.ObjectIndex) error                        // EMR_DELETEOBJECT
	AngleArc(r *record.AngleArc) error                               // EMR_ANGLEARC
	Ellipse(r *record.Box) error                                     // EMR_ELLIPSE
	Rectangle(r *record.Box) error                                   // EMR_RECTANGLE
	RoundRect(r *record.RoundRect) error                             // EMR_ROUNDRECT
	Arc(r *record.ArcBox) error                                      // EMR_ARC
	Chord(r *record.ArcBox) error                                    // EMR_CHORD
	Pie(r *record.ArcBox) error                                      // EMR_PIE
	SelectPalette(r *record.ObjectIndex) error                       // EMR_SELECTPALETTE
	CreatePalette(r *record.CreatePalette) error                     // EMR_CREATEPALETTE
	SetPaletteEntries(r *record.SetPaletteEntries) error             // EMR_SETPALETTEENTRIES
	ResizePalette(r *record.ResizePalette) error                     // EMR_RESIZEPALETTE
	RealizePalette(r *record.NoParams) error                         // EMR_REALIZEPALETTE
	ExtFloodFill(r *record.ExtFloodFill) error                       // EMR_EXTFLOODFILL
	LineTo(r *record.LineTo) error                                   // EMR_LINETO
	ArcTo(r *record.ArcBox) error                                    // EMR_ARCTO
	PolyDraw(r *record.PolyDraw) error                               // EMR_POLYDRAW
	SetArcDirection(r *record.SetArcDirection) error                 // EMR_SETARCDIRECTION
	SetMiterLimit(r *record.SetMiterLimit) error                     // EMR_SETMITERLIMIT
	BeginPath(r *record.NoParams) error                              // EMR_BEGINPATH
	EndPath(r *record.NoParams) error                                // EMR_ENDPATH
	CloseFigure(r *record.NoParams) error                            // EMR_CLOSEFIGURE
	FillPath(r *record.PathBounds) error                             // EMR_FILLPATH
	StrokeAndFillPath(r *record.PathBounds) error                    // EMR_STROKEANDFILLPATH
	StrokePath(r *record.PathBounds) error                           // EMR_STROKEPATH
	FlattenPath(r *record.NoParams) error                            // EMR_FLATTENPATH
	WidenPath(r *record.NoParams) error                              // EMR_WIDENPATH
	SelectClipPath(r *record.SelectClipPath) error                   // EMR_SELECTCLIPPATH
	AbortPath(r *record.NoParams) error                              // EMR_ABORTPATH
	Comment(r *record.Comment) error                                 // EMR_COMMENT
	FillRgn(r *record.FillRgn) error                                 // EMR_FILLRGN
	FrameRgn(r *record.FrameRgn) error                               // EMR_FRAMERGN
	InvertRgn(r *record.PaintRgn) error                              // EMR_INVERTRGN
	PaintRgn(r *record.PaintRgn) error                               // EMR_PAINTRGN
	ExtSelectClipRgn(r *record.ExtSelectClipRgn) error               // EMR_EXTSELECTCLIPRGN
	BitBlt(r *record.BitBlt) error                                   // EMR_BITBLT
	StretchBlt(r *record.StretchBlt) error                           // EMR_STRETCHBLT
	MaskBlt(r *record.MaskBlt) error                                 // EMR_MASKBLT
	PlgBlt(r *record.PlgBlt) error                                   // EMR_PLGBLT
	SetDIBitsToDevice(r *record.SetDIBitsToDevice) error             // EMR_SETDIBITSTODEVICE
	StretchDIBits(r *record.StretchDIBits) error                     // EMR_STRETCHDIBITS
	ExtCreateFontIndirectW(r *record.ExtCreateFontIndirectW) error   // EMR_EXTCREATEFONTINDIRECTW
	ExtTextOutA(r *record.ExtTextOut) error                          // EMR_EXTTEXTOUTA
	ExtTextOutW(r *record.ExtTextOut) error                          // EMR_EXTTEXTOUTW
	PolyBezier16(r *record.Poly16) error                             // EMR_POLYBEZIER16
	Polygon16(r *record.Poly16) error                                // EMR_POLYGON16
	Polyline16(r *record.Poly16) error                               // EMR_POLYLINE16
	PolyBezierTo16(r *record.Poly16) error                           // EMR_POLYBEZIERTO16
	PolylineTo16(r *record.Poly16) error                             // EMR_POLYLINETO16
	PolyPolyline16(r *record.PolyPoly16) error                       // EMR_POLYPOLYLINE16
	PolyPolygon16(r *record.PolyPoly16) error                        // EMR_POLYPOLYGON16
	PolyDraw16(r *record.PolyDraw16) error                           // EMR_POLYDRAW16
	CreateMonoBrush(r *record.CreateMonoBrush) error                 // EMR_CREATEMONOBRUSH
	CreateDIBPatternBrushPt(r *record.CreateDIBPatternBrushPt) error // EMR_CREATEDIBPATTERNBRUSHPT
	ExtCreatePen(r *record.ExtCreatePen) error                       // EMR_EXTCREATEPEN
	PolyTextOutA(r *record.PolyTextOut) error                        // EMR_POLYTEXTOUTA
	PolyTextOutW(r *record.PolyTextOut) error                        // EMR_POLYTEXTOUTW
	SetICMMode(r *record.SetICMMode) error                           // EMR_SETICMMODE
	CreateColorSpace(r *record.CreateColorSpace) error               // EMR_CREATECOLORSPACE
	SetColorSpace(r *record.ObjectIndex) error                       // EMR_SETCOLORSPACE
	DeleteColorSpace(r *record.ObjectIndex) error                    // EMR_DELETECOLORSPACE
	GLSRecord(r *record.GLSRecord) error                             // EMR_GLSRECORD
	GLSBoundedRecord(r *record.GLSBoundedRecord) error               // EMR_GLSBOUNDEDRECORD
	PixelFormat(r *record.PixelFormat) error                         // EMR_PIXELFORMAT
	DrawEscape(r *record.Escape) error                               // EMR_DRAWESCAPE
	ExtEscape(r *record.Escape) error                                // EMR_EXTESCAPE
	SmallTextOut(r *record.SmallTextOut) error                       // EMR_SMALLTEXTOUT
	ForceUFIMapping(r *record.ForceUFIMapping) error                 // EMR_FORCEUFIMAPPING
	NamedEscape(r *record.NamedEscape) error                         // EMR_NAMEDESCAPE
	ColorCorrectPalette(r *record.ColorCorrectPalette) error         // EMR_COLORCORRECTPALETTE
	SetICMProfileA(r *record.SetICMProfile) error                    // EMR_SETICMPROFILEA
	SetICMProfileW(r *record.SetICMProfile) error                    // EMR_SETICMPROFILEW
	AlphaBlend(r *record.AlphaBlend) error                           // EMR_ALPHABLEND
	SetLayout(r *record.SetLayout) error                             // EMR_SETLAYOUT
	TransparentBlt(r *record.TransparentBlt) error                   // EMR_TRANSPARENTBLT
	GradientFill(r *record.GradientFill) error                       // EMR_GRADIENTFILL
	SetLinkedUFIs(r *record.SetLinkedUFIs) error                     // EMR_SETLINKEDUFIS
	SetTextJustification(r *record.SetTextJustification) error       // EMR_SETTEXTJUSTIFICATION
	ColorMatchToProfileW(r *record.ColorMatchToProfileW) error       // EMR_COLORMATCHTOPROFILEW
	CreateColorSpaceW(r *record.CreateColorSpaceW) error             // EMR_CREATECOLORSPACEW

	// Generate returns the output of the player.  It is called once, after
	// the last record has been played.
	Generate() ([]byte, error)
}

// Play passes a decoded record to the corresponding method of p.
func Play(p Player, rec record.Record) error {
	switch r := rec.(type) {
	case *record.Header:
		return p.Header(r)
	case *record.Poly:
		switch r.RecordType() {
		case record.EMRPolyBezier:
			return p.PolyBezier(r)
		case record.EMRPolygon:
			return p.Polygon(r)
		case record.EMRPolyline:
			return p.Polyline(r)
		case record.EMRPolyBezierTo:
			return p.PolyBezierTo(r)
		case record.EMRPolylineTo:
			return p.PolylineTo(r)
		}
	case *record.PolyPoly:
		switch r.RecordType() {
		case record.EMRPolyPolyline:
			return p.PolyPolyline(r)
		case record.EMRPolyPolygon:
			return p.PolyPolygon(r)
		}
	case *record.SetExtent:
		switch r.RecordType() {
		case record.EMRSetWindowExtEx:
			return p.SetWindowExtEx(r)
		case record.EMRSetViewportExtEx:
			return p.SetViewportExtEx(r)
		}
	case *record.SetOrigin:
		switch r.RecordType() {
		case record.EMRSetWindowOrgEx:
			return p.SetWindowOrgEx(r)
		case record.EMRSetViewportOrgEx:
			return p.SetViewportOrgEx(r)
		case record.EMRSetBrushOrgEx:
			return p.SetBrushOrgEx(r)
		}
	case *record.EOF:
		return p.EOF(r)
	case *record.SetPixelV:
		return p.SetPixelV(r)
	case *record.SetMapperFlags:
		return p.SetMapperFlags(r)
	case *record.SetMapMode:
		return p.SetMapMode(r)
	case *record.SetBkMode:
		return p.SetBkMode(r)
	case *record.SetPolyFillMode:
		return p.SetPolyFillMode(r)
	case *record.SetROP2:
		return p.SetROP2(r)
	case *record.SetStretchBltMode:
		return p.SetStretchBltMode(r)
	case *record.SetTextAlign:
		return p.SetTextAlign(r)
	case *record.SetColorAdjustment:
		return p.SetColorAdjustment(r)
	case *record.SetColor:
		switch r.RecordType() {
		case record.EMRSetTextColor:
			return p.SetTextColor(r)
		case record.EMRSetBkColor:
			return p.SetBkColor(r)
		}
	case *record.OffsetClipRgn:
		return p.OffsetClipRgn(r)
	case *record.MoveToEx:
		return p.MoveToEx(r)
	case *record.NoParams:
		switch r.RecordType() {
		case record.EMRSetMetaRgn:
			return p.SetMetaRgn(r)
		case record.EMRSaveDC:
			return p.SaveDC(r)
		case record.EMRRealizePalette:
			return p.RealizePalette(r)
		case record.EMRBeginPath:
			return p.BeginPath(r)
		case record.EMREndPath:
			return p.EndPath(r)
		case record.EMRCloseFigure:
			return p.CloseFigure(r)
		case record.EMRFlattenPath:
			return p.FlattenPath(r)
		case record.EMRWidenPath:
			return p.WidenPath(r)
		case record.EMRAbortPath:
			return p.AbortPath(r)
		}
	case *record.ClipRect:
		switch r.RecordType() {
		case record.EMRExcludeClipRect:
			return p.ExcludeClipRect(r)
		case record.EMRIntersectClipRect:
			return p.IntersectClipRect(r)
		}
	case *record.ScaleExtent:
		switch r.RecordType() {
		case record.EMRScaleViewportExtEx:
			return p.ScaleViewportExtEx(r)
		case record.EMRScaleWindowExtEx:
			return p.ScaleWindowExtEx(r)
		}
	case *record.RestoreDC:
		return p.RestoreDC(r)
	case *record.SetWorldTransform:
		return p.SetWorldTransform(r)
	case *record.ModifyWorldTransform:
		return p.ModifyWorldTransform(r)
	case *record.ObjectIndex:
		switch r.RecordType() {
		case record.EMRSelectObject:
			return p.SelectObject(r)
		case record.EMRDeleteObject:
			return p.DeleteObject(r)
		case record.EMRSelectPalette:
			return p.SelectPalette(r)
		case record.EMRSetColorSpace:
			return p.SetColorSpace(r)
		case record.EMRDeleteColorSpace:
			return p.DeleteColorSpace(r)
		}
	case *record.CreatePen:
		return p.CreatePen(r)
	case *record.CreateBrushIndirect:
		return p.CreateBrushIndirect(r)
	case *record.AngleArc:
		return p.AngleArc(r)
	case *record.Box:
		switch r.RecordType() {
		case record.EMREllipse:
			return p.Ellipse(r)
		case record.EMRRectangle:
			return p.Rectangle(r)
		}
	case *record.RoundRect:
		return p.RoundRect(r)
	case *record.ArcBox:
		switch r.RecordType() {
		case record.EMRArc:
			return p.Arc(r)
		case record.EMRChord:
			return p.Chord(r)
		case record.EMRPie:
			return p.Pie(r)
		case record.EMRArcTo:
			return p.ArcTo(r)
		}
	case *record.CreatePalette:
		return p.CreatePalette(r)
	case *record.SetPaletteEntries:
		return p.SetPaletteEntries(r)
	case *record.ResizePalette:
		return p.ResizePalette(r)
	case *record.ExtFloodFill:
		return p.ExtFloodFill(r)
	case *record.LineTo:
		return p.LineTo(r)
	case *record.PolyDraw:
		return p.PolyDraw(r)
	case *record.SetArcDirection:
		return p.SetArcDirection(r)
	case *record.SetMiterLimit:
		return p.SetMiterLimit(r)
	case *record.PathBounds:
		switch r.RecordType() {
		case record.EMRFillPath:
			return p.FillPath(r)
		case record.EMRStrokeAndFillPath:
			return p.StrokeAndFillPath(r)
		case record.EMRStrokePath:
			return p.StrokePath(r)
		}
	case *record.SelectClipPath:
		return p.SelectClipPath(r)
	case *record.Comment:
		return p.Comment(r)
	case *record.FillRgn:
		return p.FillRgn(r)
	case *record.FrameRgn:
		return p.FrameRgn(r)
	case *record.PaintRgn:
		switch r.RecordType() {
		case record.EMRInvertRgn:
			return p.InvertRgn(r)
		case record.EMRPaintRgn:
			return p.PaintRgn(r)
		}
	case *record.ExtSelectClipRgn:
		return p.ExtSelectClipRgn(r)
	case *record.BitBlt:
		return p.BitBlt(r)
	case *record.StretchBlt:
		return p.StretchBlt(r)
	case *record.MaskBlt:
		return p.MaskBlt(r)
	case *record.PlgBlt:
		return p.PlgBlt(r)
	case *record.SetDIBitsToDevice:
		return p.SetDIBitsToDevice(r)
	case *record.StretchDIBits:
		return p.StretchDIBits(r)
	case *record.ExtCreateFontIndirectW:
		return p.ExtCreateFontIndirectW(r)
	case *record.ExtTextOut:
		switch r.RecordType() {
		case record.EMRExtTextOutA:
			return p.ExtTextOutA(r)
		case record.EMRExtTextOutW:
			return p.ExtTextOutW(r)
		}
	case *record.Poly16:
		switch r.RecordType() {
		case record.EMRPolyBezier16:
			return p.PolyBezier16(r)
		case record.EMRPolygon16:
			return p.Polygon16(r)
		case record.EMRPolyline16:
			return p.Polyline16(r)
		case record.EMRPolyBezierTo16:
			return p.PolyBezierTo16(r)
		case record.EMRPolylineTo16:
			return p.PolylineTo16(r)
		}
	case *record.PolyPoly16:
		switch r.RecordType() {
		case record.EMRPolyPolyline16:
			return p.PolyPolyline16(r)
		case record.EMRPolyPolygon16:
			return p.PolyPolygon16(r)
		}
	case *record.PolyDraw16:
		return p.PolyDraw16(r)
	case *record.CreateMonoBrush:
		return p.CreateMonoBrush(r)
	case *record.CreateDIBPatternBrushPt:
		return p.CreateDIBPatternBrushPt(r)
	case *record.ExtCreatePen:
		return p.ExtCreatePen(r)
	case *record.PolyTextOut:
		switch r.RecordType() {
		case record.EMRPolyTextOutA:
			return p.PolyTextOutA(r)
		case record.EMRPolyTextOutW:
			return p.PolyTextOutW(r)
		}
	case *record.SetICMMode:
		return p.SetICMMode(r)
	case *record.CreateColorSpace:
		return p.CreateColorSpace(r)
	case *record.GLSRecord:
		return p.GLSRecord(r)
	case *record.GLSBoundedRecord:
		return p.GLSBoundedRecord(r)
	case *record.PixelFormat:
		return p.PixelFormat(r)
	case *record.Escape:
		switch r.RecordType() {
		case record.EMRDrawEscape:
			return p.DrawEscape(r)
		case record.EMRExtEscape:
			return p.ExtEscape(r)
		}
	case *record.SmallTextOut:
		return p.SmallTextOut(r)
	case *record.ForceUFIMapping:
		return p.ForceUFIMapping(r)
	case *record.NamedEscape:
		return p.NamedEscape(r)
	case *record.ColorCorrectPalette:
		return p.ColorCorrectPalette(r)
	case *record.SetICMProfile:
		switch r.RecordType() {
		case record.EMRSetICMProfileA:
			return p.SetICMProfileA(r)
		case record.EMRSetICMProfileW:
			return p.SetICMProfileW(r)
		}
	case *record.AlphaBlend:
		return p.AlphaBlend(r)
	case *record.SetLayout:
		return p.SetLayout(r)
	case *record.TransparentBlt:
		return p.TransparentBlt(r)
	case *record.GradientFill:
		return p.GradientFill(r)
	case *record.SetLinkedUFIs:
		return p.SetLinkedUFIs(r)
	case *record.SetTextJustification:
		return p.SetTextJustification(r)
	case *record.ColorMatchToProfileW:
		return p.ColorMatchToProfileW(r)
	case *record.CreateColorSpaceW:
		return p.CreateColorSpaceW(r)
	}
	return playback.Errorf(playback.Unknown, "no player method for %s", rec.RecordType())
}

// NopPlayer implements the [Player] interface by ignoring all records.  It
// can be embedded into other players, which then only need to implement the
// methods for the records they render.
type NopPlayer struct{}

var _ Player = NopPlayer{}

// Generate implements the [Player] interface.  It returns no data.
func (NopPlayer) Generate() ([]byte, error) { return nil, nil }

func (NopPlayer) Header(*record.Header) error { return nil }
func (NopPlayer) PolyBezier(*record.Poly) error { return nil }
func (NopPlayer) Polygon(*record.Poly) error { return nil }
func (NopPlayer) Polyline(*record.Poly) error { return nil }
func (NopPlayer) PolyBezierTo(*record.Poly) error { return nil }
func (NopPlayer) PolylineTo(*record.Poly) error { return nil }
func (NopPlayer) PolyPolyline(*record.PolyPoly) error { return nil }
func (NopPlayer) PolyPolygon(*record.PolyPoly) error { return nil }
func (NopPlayer) SetWindowExtEx(*record.SetExtent) error { return nil }
func (NopPlayer) SetWindowOrgEx(*record.SetOrigin) error { return nil }
func (NopPlayer) SetViewportExtEx(*record.SetExtent) error { return nil }
func (NopPlayer) SetViewportOrgEx(*record.SetOrigin) error { return nil }
func (NopPlayer) SetBrushOrgEx(*record.SetOrigin) error { return nil }
func (NopPlayer) EOF(*record.EOF) error { return nil }
func (NopPlayer) SetPixelV(*record.SetPixelV) error { return nil }
func (NopPlayer) SetMapperFlags(*record.SetMapperFlags) error { return nil }
func (NopPlayer) SetMapMode(*record.SetMapMode) error { return nil }
func (NopPlayer) SetBkMode(*record.SetBkMode) error { return nil }
func (NopPlayer) SetPolyFillMode(*record.SetPolyFillMode) error { return nil }
func (NopPlayer) SetROP2(*record.SetROP2) error { return nil }
func (NopPlayer) SetStretchBltMode(*record.SetStretchBltMode) error { return nil }
func (NopPlayer) SetTextAlign(*record.SetTextAlign) error { return nil }
func (NopPlayer) SetColorAdjustment(*record.SetColorAdjustment) error { return nil }
func (NopPlayer) SetTextColor(*record.SetColor) error { return nil }
func (NopPlayer) SetBkColor(*record.SetColor) error { return nil }
func (NopPlayer) OffsetClipRgn(*record.OffsetClipRgn) error { return nil }
func (NopPlayer) MoveToEx(*record.MoveToEx) error { return nil }
func (NopPlayer) SetMetaRgn(*record.NoParams) error { return nil }
func (NopPlayer) ExcludeClipRect(*record.ClipRect) error { return nil }
func (NopPlayer) IntersectClipRect(*record.ClipRect) error { return nil }
func (NopPlayer) ScaleViewportExtEx(*record.ScaleExtent) error { return nil }
func (NopPlayer) ScaleWindowExtEx(*record.ScaleExtent) error { return nil }
func (NopPlayer) SaveDC(*record.NoParams) error { return nil }
func (NopPlayer) RestoreDC(*record.RestoreDC) error { return nil }
func (NopPlayer) SetWorldTransform(*record.SetWorldTransform) error { return nil }
func (NopPlayer) ModifyWorldTransform(*record.ModifyWorldTransform) error { return nil }
func (NopPlayer) SelectObject(*record.ObjectIndex) error { return nil }
func (NopPlayer) CreatePen(*record.CreatePen) error { return nil }
func (NopPlayer) CreateBrushIndirect(*record.CreateBrushIndirect) error { return nil }
func (NopPlayer) DeleteObject(*record.ObjectIndex) error { return nil }
func (NopPlayer) AngleArc(*record.AngleArc) error { return nil }
func (NopPlayer) Ellipse(*record.Box) error { return nil }
func (NopPlayer) Rectangle(*record.Box) error { return nil }
func (NopPlayer) RoundRect(*record.RoundRect) error { return nil }
func (NopPlayer) Arc(*record.ArcBox) error { return nil }
func (NopPlayer) Chord(*record.ArcBox) error { return nil }
func (NopPlayer) Pie(*record.ArcBox) error { return nil }
func (NopPlayer) SelectPalette(*record.ObjectIndex) error { return nil }
func (NopPlayer) CreatePalette(*record.CreatePalette) error { return nil }
func (NopPlayer) SetPaletteEntries(*record.SetPaletteEntries) error { return nil }
func (NopPlayer) ResizePalette(*record.ResizePalette) error { return nil }
func (NopPlayer) RealizePalette(*record.NoParams) error { return nil }
func (NopPlayer) ExtFloodFill(*record.ExtFloodFill) error { return nil }
func (NopPlayer) LineTo(*record.LineTo) error { return nil }
func (NopPlayer) ArcTo(*record.ArcBox) error { return nil }
func (NopPlayer) PolyDraw(*record.PolyDraw) error { return nil }
func (NopPlayer) SetArcDirection(*record.SetArcDirection) error { return nil }
func (NopPlayer) SetMiterLimit(*record.SetMiterLimit) error { return nil }
func (NopPlayer) BeginPath(*record.NoParams) error { return nil }
func (NopPlayer) EndPath(*record.NoParams) error { return nil }
func (NopPlayer) CloseFigure(*record.NoParams) error { return nil }
func (NopPlayer) FillPath(*record.PathBounds) error { return nil }
func (NopPlayer) StrokeAndFillPath(*record.PathBounds) error { return nil }
func (NopPlayer) StrokePath(*record.PathBounds) error { return nil }
func (NopPlayer) FlattenPath(*record.NoParams) error { return nil }
func (NopPlayer) WidenPath(*record.NoParams) error { return nil }
func (NopPlayer) SelectClipPath(*record.SelectClipPath) error { return nil }
func (NopPlayer) AbortPath(*record.NoParams) error { return nil }
func (NopPlayer) Comment(*record.Comment) error { return nil }
func (NopPlayer) FillRgn(*record.FillRgn) error { return nil }
func (NopPlayer) FrameRgn(*record.FrameRgn) error { return nil }
func (NopPlayer) InvertRgn(*record.PaintRgn) error { return nil }
func (NopPlayer) PaintRgn(*record.PaintRgn) error { return nil }
func (NopPlayer) ExtSelectClipRgn(*record.ExtSelectClipRgn) error { return nil }
func (NopPlayer) BitBlt(*record.BitBlt) error { return nil }
func (NopPlayer) StretchBlt(*record.StretchBlt) error { return nil }
func (NopPlayer) MaskBlt(*record.MaskBlt) error { return nil }
func (NopPlayer) PlgBlt(*record.PlgBlt) error { return nil }
func (NopPlayer) SetDIBitsToDevice(*record.SetDIBitsToDevice) error { return nil }
func (NopPlayer) StretchDIBits(*record.StretchDIBits) error { return nil }
func (NopPlayer) ExtCreateFontIndirectW(*record.ExtCreateFontIndirectW) error { return nil }
func (NopPlayer) ExtTextOutA(*record.ExtTextOut) error { return nil }
func (NopPlayer) ExtTextOutW(*record.ExtTextOut) error { return nil }
func (NopPlayer) PolyBezier16(*record.Poly16) error { return nil }
func (NopPlayer) Polygon16(*record.Poly16) error { return nil }
func (NopPlayer) Polyline16(*record.Poly16) error { return nil }
func (NopPlayer) PolyBezierTo16(*record.Poly16) error { return nil }
func (NopPlayer) PolylineTo16(*record.Poly16) error { return nil }
func (NopPlayer) PolyPolyline16(*record.PolyPoly16) error { return nil }
func (NopPlayer) PolyPolygon16(*record.PolyPoly16) error { return nil }
func (NopPlayer) PolyDraw16(*record.PolyDraw16) error { return nil }
func (NopPlayer) CreateMonoBrush(*record.CreateMonoBrush) error { return nil }
func (NopPlayer) CreateDIBPatternBrushPt(*record.CreateDIBPatternBrushPt) error { return nil }
func (NopPlayer) ExtCreatePen(*record.ExtCreatePen) error { return nil }
func (NopPlayer) PolyTextOutA(*record.PolyTextOut) error { return nil }
func (NopPlayer) PolyTextOutW(*record.PolyTextOut) error { return nil }
func (NopPlayer) SetICMMode(*record.SetICMMode) error { return nil }
func (NopPlayer) CreateColorSpace(*record.CreateColorSpace) error { return nil }
func (NopPlayer) SetColorSpace(*record.ObjectIndex) error { return nil }
func (NopPlayer) DeleteColorSpace(*record.ObjectIndex) error { return nil }
func (NopPlayer) GLSRecord(*record.GLSRecord) error { return nil }
func (NopPlayer) GLSBoundedRecord(*record.GLSBoundedRecord) error { return nil }
func (NopPlayer) PixelFormat(*record.PixelFormat) error { return nil }
func (NopPlayer) DrawEscape(*record.Escape) error { return nil }
func (NopPlayer) ExtEscape(*record.Escape) error { return nil }
func (NopPlayer) SmallTextOut(*record.SmallTextOut) error { return nil }
func (NopPlayer) ForceUFIMapping(*record.ForceUFIMapping) error { return nil }
func (NopPlayer) NamedEscape(*record.NamedEscape) error { return nil }
func (NopPlayer) ColorCorrectPalette(*record.ColorCorrectPalette) error { return nil }
func (NopPlayer) SetICMProfileA(*record.SetICMProfile) error { return nil }
func (NopPlayer) SetICMProfileW(*record.SetICMProfile) error { return nil }
func (NopPlayer) AlphaBlend(*record.AlphaBlend) error { return nil }
func (NopPlayer) SetLayout(*record.SetLayout) error { return nil }
func (NopPlayer) TransparentBlt(*record.TransparentBlt) error { return nil }
func (NopPlayer) GradientFill(*record.GradientFill) error { return nil }
func (NopPlayer) SetLinkedUFIs(*record.SetLinkedUFIs) error { return nil }
func (NopPlayer) SetTextJustification(*record.SetTextJustification) error { return nil }
func (NopPlayer) ColorMatchToProfileW(*record.ColorMatchToProfileW) error { return nil }
func (NopPlayer) CreateColorSpaceW(*record.CreateColorSpaceW) error { return nil }
