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

// NoParams holds the records which consist only of the record type and
// size: EMR_SETMETARGN, EMR_SAVEDC, EMR_REALIZEPALETTE, EMR_BEGINPATH,
// EMR_ENDPATH, EMR_CLOSEFIGURE, EMR_FLATTENPATH, EMR_WIDENPATH and
// EMR_ABORTPATH.
type NoParams struct {
	Type Type
}

// RecordType implements the [Record] interface.
func (r *NoParams) RecordType() Type { return r.Type }

func decodeNoParams(tp Type, b *parser.Body) Record {
	if !accepts(tp, b, noParamsTypes) || !fixedSize(tp, b, 8) {
		return nil
	}
	return &NoParams{Type: tp}
}

// SetExtent holds the records EMR_SETWINDOWEXTEX and EMR_SETVIEWPORTEXTEX.
type SetExtent struct {
	Type   Type
	Extent gdi.SizeL
}

// RecordType implements the [Record] interface.
func (r *SetExtent) RecordType() Type { return r.Type }

func decodeSetExtent(tp Type, b *parser.Body) Record {
	if !accepts(tp, b, setExtentTypes) || !fixedSize(tp, b, 16) {
		return nil
	}
	return &SetExtent{Type: tp, Extent: gdi.ReadSizeL(b)}
}

// SetOrigin holds the records EMR_SETWINDOWORGEX, EMR_SETVIEWPORTORGEX
// and EMR_SETBRUSHORGEX.
type SetOrigin struct {
	Type   Type
	Origin gdi.PointL
}

// RecordType implements the [Record] interface.
func (r *SetOrigin) RecordType() Type { return r.Type }

func decodeSetOrigin(tp Type, b *parser.Body) Record {
	if !accepts(tp, b, setOriginTypes) || !fixedSize(tp, b, 16) {
		return nil
	}
	return &SetOrigin{Type: tp, Origin: gdi.ReadPointL(b)}
}

// ScaleExtent holds the records EMR_SCALEVIEWPORTEXTEX and
// EMR_SCALEWINDOWEXTEX.  The new extent is the old extent, multiplied by
// Num and divided by Denom.
type ScaleExtent struct {
	Type   Type
	XNum   int32
	XDenom int32
	YNum   int32
	YDenom int32
}

// RecordType implements the [Record] interface.
func (r *ScaleExtent) RecordType() Type { return r.Type }

func decodeScaleExtent(tp Type, b *parser.Body) Record {
	if !accepts(tp, b, scaleExtentTypes) || !fixedSize(tp, b, 24) {
		return nil
	}
	rec := &ScaleExtent{
		Type:   tp,
		XNum:   b.I32(),
		XDenom: b.I32(),
		YNum:   b.I32(),
		YDenom: b.I32(),
	}
	if b.Err() == nil && (rec.XDenom == 0 || rec.YDenom == 0) {
		b.Failf("%s with zero denominator", tp)
	}
	return rec
}

// SetMapperFlags is the EMR_SETMAPPERFLAGS record.
type SetMapperFlags struct {
	Flags uint32
}

// RecordType implements the [Record] interface.
func (*SetMapperFlags) RecordType() Type { return EMRSetMapperFlags }

func decodeSetMapperFlags(tp Type, b *parser.Body) Record {
	if !fixedSize(tp, b, 12) {
		return nil
	}
	return &SetMapperFlags{Flags: b.U32()}
}

// SetMapMode is the EMR_SETMAPMODE record.
type SetMapMode struct {
	Mode gdi.MapMode
}

// RecordType implements the [Record] interface.
func (*SetMapMode) RecordType() Type { return EMRSetMapMode }

func decodeSetMapMode(tp Type, b *parser.Body) Record {
	if !fixedSize(tp, b, 12) {
		return nil
	}
	return &SetMapMode{Mode: gdi.ReadEnum[gdi.MapMode](b, "MapMode")}
}

// SetBkMode is the EMR_SETBKMODE record.
type SetBkMode struct {
	Mode gdi.BackgroundMode
}

// RecordType implements the [Record] interface.
func (*SetBkMode) RecordType() Type { return EMRSetBkMode }

func decodeSetBkMode(tp Type, b *parser.Body) Record {
	if !fixedSize(tp, b, 12) {
		return nil
	}
	return &SetBkMode{Mode: gdi.ReadEnum[gdi.BackgroundMode](b, "BackgroundMode")}
}

// SetPolyFillMode is the EMR_SETPOLYFILLMODE record.
type SetPolyFillMode struct {
	Mode gdi.PolygonFillMode
}

// RecordType implements the [Record] interface.
func (*SetPolyFillMode) RecordType() Type { return EMRSetPolyFillMode }

func decodeSetPolyFillMode(tp Type, b *parser.Body) Record {
	if !fixedSize(tp, b, 12) {
		return nil
	}
	return &SetPolyFillMode{Mode: gdi.ReadEnum[gdi.PolygonFillMode](b, "PolygonFillMode")}
}

// SetROP2 is the EMR_SETROP2 record.
type SetROP2 struct {
	Op gdi.BinaryRasterOp
}

// RecordType implements the [Record] interface.
func (*SetROP2) RecordType() Type { return EMRSetROP2 }

func decodeSetROP2(tp Type, b *parser.Body) Record {
	if !fixedSize(tp, b, 12) {
		return nil
	}
	return &SetROP2{Op: gdi.ReadEnum[gdi.BinaryRasterOp](b, "BinaryRasterOp")}
}

// SetStretchBltMode is the EMR_SETSTRETCHBLTMODE record.
type SetStretchBltMode struct {
	Mode gdi.StretchMode
}

// RecordType implements the [Record] interface.
func (*SetStretchBltMode) RecordType() Type { return EMRSetStretchBltMode }

func decodeSetStretchBltMode(tp Type, b *parser.Body) Record {
	if !fixedSize(tp, b, 12) {
		return nil
	}
	return &SetStretchBltMode{Mode: gdi.ReadEnum[gdi.StretchMode](b, "StretchMode")}
}

// SetTextAlign is the EMR_SETTEXTALIGN record.
type SetTextAlign struct {
	Align gdi.TextAlignment
}

// RecordType implements the [Record] interface.
func (*SetTextAlign) RecordType() Type { return EMRSetTextAlign }

func decodeSetTextAlign(tp Type, b *parser.Body) Record {
	if !fixedSize(tp, b, 12) {
		return nil
	}
	return &SetTextAlign{Align: gdi.TextAlignment(b.U32())}
}

// SetColorAdjustment is the EMR_SETCOLORADJUSTMENT record.
type SetColorAdjustment struct {
	Adjustment gdi.ColorAdjustment
}

// RecordType implements the [Record] interface.
func (*SetColorAdjustment) RecordType() Type { return EMRSetColorAdjustment }

func decodeSetColorAdjustment(tp Type, b *parser.Body) Record {
	if !fixedSize(tp, b, 32) {
		return nil
	}
	return &SetColorAdjustment{Adjustment: gdi.ReadColorAdjustment(b)}
}

// SetColor holds the records EMR_SETTEXTCOLOR and EMR_SETBKCOLOR.
type SetColor struct {
	Type  Type
	Color gdi.ColorRef
}

// RecordType implements the [Record] interface.
func (r *SetColor) RecordType() Type { return r.Type }

func decodeSetColor(tp Type, b *parser.Body) Record {
	if !accepts(tp, b, setColorTypes) || !fixedSize(tp, b, 12) {
		return nil
	}
	return &SetColor{Type: tp, Color: gdi.ReadColorRef(b)}
}

// OffsetClipRgn is the EMR_OFFSETCLIPRGN record.
type OffsetClipRgn struct {
	Offset gdi.PointL
}

// RecordType implements the [Record] interface.
func (*OffsetClipRgn) RecordType() Type { return EMROffsetClipRgn }

func decodeOffsetClipRgn(tp Type, b *parser.Body) Record {
	if !fixedSize(tp, b, 16) {
		return nil
	}
	return &OffsetClipRgn{Offset: gdi.ReadPointL(b)}
}

// MoveToEx is the EMR_MOVETOEX record.
type MoveToEx struct {
	Point gdi.PointL
}

// RecordType implements the [Record] interface.
func (*MoveToEx) RecordType() Type { return EMRMoveToEx }

func decodeMoveToEx(tp Type, b *parser.Body) Record {
	if !fixedSize(tp, b, 16) {
		return nil
	}
	return &MoveToEx{Point: gdi.ReadPointL(b)}
}

// ClipRect holds the records EMR_EXCLUDECLIPRECT and
// EMR_INTERSECTCLIPRECT.
type ClipRect struct {
	Type Type
	Clip gdi.RectL
}

// RecordType implements the [Record] interface.
func (r *ClipRect) RecordType() Type { return r.Type }

func decodeClipRect(tp Type, b *parser.Body) Record {
	if !accepts(tp, b, clipRectTypes) || !fixedSize(tp, b, 24) {
		return nil
	}
	return &ClipRect{Type: tp, Clip: gdi.ReadRectL(b)}
}

// RestoreDC is the EMR_RESTOREDC record.
type RestoreDC struct {
	// SavedDC is a negative number, giving the position of the state to
	// restore relative to the top of the stack: -1 is the most recently
	// saved state.
	SavedDC int32
}

// RecordType implements the [Record] interface.
func (*RestoreDC) RecordType() Type { return EMRRestoreDC }

func decodeRestoreDC(tp Type, b *parser.Body) Record {
	if !fixedSize(tp, b, 12) {
		return nil
	}
	rec := &RestoreDC{SavedDC: b.I32()}
	if b.Err() == nil && rec.SavedDC >= 0 {
		b.Failf("EMR_RESTOREDC with non-negative index %d", rec.SavedDC)
	}
	return rec
}

// SetWorldTransform is the EMR_SETWORLDTRANSFORM record.
type SetWorldTransform struct {
	XForm gdi.XForm
}

// RecordType implements the [Record] interface.
func (*SetWorldTransform) RecordType() Type { return EMRSetWorldTransform }

func decodeSetWorldTransform(tp Type, b *parser.Body) Record {
	if !fixedSize(tp, b, 32) {
		return nil
	}
	return &SetWorldTransform{XForm: gdi.ReadXForm(b)}
}

// ModifyWorldTransform is the EMR_MODIFYWORLDTRANSFORM record.
type ModifyWorldTransform struct {
	XForm gdi.XForm
	Mode  gdi.ModifyWorldTransformMode
}

// RecordType implements the [Record] interface.
func (*ModifyWorldTransform) RecordType() Type { return EMRModifyWorldTransform }

func decodeModifyWorldTransform(tp Type, b *parser.Body) Record {
	if !fixedSize(tp, b, 36) {
		return nil
	}
	return &ModifyWorldTransform{
		XForm: gdi.ReadXForm(b),
		Mode:  gdi.ReadEnum[gdi.ModifyWorldTransformMode](b, "ModifyWorldTransformMode"),
	}
}

// SetArcDirection is the EMR_SETARCDIRECTION record.
type SetArcDirection struct {
	Direction gdi.ArcDirection
}

// RecordType implements the [Record] interface.
func (*SetArcDirection) RecordType() Type { return EMRSetArcDirection }

func decodeSetArcDirection(tp Type, b *parser.Body) Record {
	if !fixedSize(tp, b, 12) {
		return nil
	}
	return &SetArcDirection{Direction: gdi.ReadEnum[gdi.ArcDirection](b, "ArcDirection")}
}

// SetMiterLimit is the EMR_SETMITERLIMIT record.
type SetMiterLimit struct {
	Limit uint32
}

// RecordType implements the [Record] interface.
func (*SetMiterLimit) RecordType() Type { return EMRSetMiterLimit }

func decodeSetMiterLimit(tp Type, b *parser.Body) Record {
	if !fixedSize(tp, b, 12) {
		return nil
	}
	return &SetMiterLimit{Limit: b.U32()}
}

// SelectClipPath is the EMR_SELECTCLIPPATH record.
type SelectClipPath struct {
	Mode gdi.RegionMode
}

// RecordType implements the [Record] interface.
func (*SelectClipPath) RecordType() Type { return EMRSelectClipPath }

func decodeSelectClipPath(tp Type, b *parser.Body) Record {
	if !fixedSize(tp, b, 12) {
		return nil
	}
	return &SelectClipPath{Mode: gdi.ReadEnum[gdi.RegionMode](b, "RegionMode")}
}

// ExtSelectClipRgn is the EMR_EXTSELECTCLIPRGN record.
type ExtSelectClipRgn struct {
	Mode gdi.RegionMode

	// Region is nil if the record has no region data.  This is only
	// allowed for RgnCopy, where it resets the clipping region.
	Region *gdi.RegionData
}

// RecordType implements the [Record] interface.
func (*ExtSelectClipRgn) RecordType() Type { return EMRExtSelectClipRgn }

func decodeExtSelectClipRgn(tp Type, b *parser.Body) Record {
	if !minSize(tp, b, 16) {
		return nil
	}
	size := b.U32()
	rec := &ExtSelectClipRgn{
		Mode: gdi.ReadEnum[gdi.RegionMode](b, "RegionMode"),
	}
	if b.Err() != nil {
		return nil
	}
	if size == 0 {
		if rec.Mode != gdi.RgnCopy {
			b.Failf("region mode %d without region data", rec.Mode)
		}
		return rec
	}
	rec.Region = gdi.ReadRegionData(b, size)
	return rec
}

// SetICMMode is the EMR_SETICMMODE record.
type SetICMMode struct {
	Mode gdi.ICMMode
}

// RecordType implements the [Record] interface.
func (*SetICMMode) RecordType() Type { return EMRSetICMMode }

func decodeSetICMMode(tp Type, b *parser.Body) Record {
	if !fixedSize(tp, b, 12) {
		return nil
	}
	return &SetICMMode{Mode: gdi.ReadEnum[gdi.ICMMode](b, "ICMMode")}
}

// SetLayout is the EMR_SETLAYOUT record.
type SetLayout struct {
	Mode gdi.LayoutMode
}

// RecordType implements the [Record] interface.
func (*SetLayout) RecordType() Type { return EMRSetLayout }

func decodeSetLayout(tp Type, b *parser.Body) Record {
	if !fixedSize(tp, b, 12) {
		return nil
	}
	return &SetLayout{Mode: gdi.ReadEnum[gdi.LayoutMode](b, "LayoutMode")}
}

// SetTextJustification is the EMR_SETTEXTJUSTIFICATION record.
type SetTextJustification struct {
	BreakExtra int32
	BreakCount int32
}

// RecordType implements the [Record] interface.
func (*SetTextJustification) RecordType() Type { return EMRSetTextJustification }

func decodeSetTextJustification(tp Type, b *parser.Body) Record {
	if !fixedSize(tp, b, 16) {
		return nil
	}
	return &SetTextJustification{BreakExtra: b.I32(), BreakCount: b.I32()}
}

// ForceUFIMapping is the EMR_FORCEUFIMAPPING record.
type ForceUFIMapping struct {
	UFI gdi.UniversalFontID
}

// RecordType implements the [Record] interface.
func (*ForceUFIMapping) RecordType() Type { return EMRForceUFIMapping }

func decodeForceUFIMapping(tp Type, b *parser.Body) Record {
	if !fixedSize(tp, b, 16) {
		return nil
	}
	return &ForceUFIMapping{UFI: gdi.ReadUniversalFontID(b)}
}

// SetLinkedUFIs is the EMR_SETLINKEDUFIS record.
type SetLinkedUFIs struct {
	UFIs []gdi.UniversalFontID
}

// RecordType implements the [Record] interface.
func (*SetLinkedUFIs) RecordType() Type { return EMRSetLinkedUFIs }

func decodeSetLinkedUFIs(tp Type, b *parser.Body) Record {
	if !minSize(tp, b, 20) {
		return nil
	}
	n := b.U32()
	// 8 reserved bytes follow the font identifiers
	if b.Err() == nil && uint64(n)*8+8 > uint64(b.Remaining()) {
		b.Failf("%d linked fonts exceed the record size", n)
		return nil
	}
	rec := &SetLinkedUFIs{UFIs: make([]gdi.UniversalFontID, n)}
	for i := range rec.UFIs {
		rec.UFIs[i] = gdi.ReadUniversalFontID(b)
	}
	b.Skip(8)
	return rec
}

// PixelFormat is the EMR_PIXELFORMAT record.
type PixelFormat struct {
	PFD *gdi.PixelFormatDescriptor
}

// RecordType implements the [Record] interface.
func (*PixelFormat) RecordType() Type { return EMRPixelFormat }

func decodePixelFormat(tp Type, b *parser.Body) Record {
	if !fixedSize(tp, b, 8+gdi.PixelFormatDescriptorSize) {
		return nil
	}
	return &PixelFormat{PFD: gdi.ReadPixelFormatDescriptor(b)}
}

// ICM profile flags used by EMR_SETICMPROFILEA and EMR_SETICMPROFILEW.
const (
	// SetICMProfileEmbedded indicates that the data is an embedded profile,
	// rather than a profile name.
	SetICMProfileEmbedded = 0x00000001
)

// SetICMProfile holds the records EMR_SETICMPROFILEA and
// EMR_SETICMPROFILEW.
type SetICMProfile struct {
	Type  Type
	Flags uint32

	// Name is the name of the profile.
	Name string

	// Data is the profile data, if the profile is embedded.
	Data []byte
}

// RecordType implements the [Record] interface.
func (r *SetICMProfile) RecordType() Type { return r.Type }

func decodeSetICMProfile(tp Type, b *parser.Body) Record {
	if !accepts(tp, b, icmProfileTypes) || !minSize(tp, b, 20) {
		return nil
	}
	rec := &SetICMProfile{Type: tp, Flags: b.U32()}
	cbName := b.U32()
	cbData := b.U32()
	if b.Err() == nil && uint64(cbName)+uint64(cbData) > uint64(b.Remaining()) {
		b.Failf("ICM profile of %d+%d bytes exceeds the record size", cbName, cbData)
		return nil
	}
	name := b.Bytes(int(cbName))
	rec.Data = b.Bytes(int(cbData))
	if b.Err() != nil {
		return nil
	}
	rec.Name = decodeName(b, tp == EMRSetICMProfileW, name)
	if cbData == 0 {
		rec.Data = nil
	}
	return rec
}

// ColorMatchToProfileW is the EMR_COLORMATCHTOPROFILEW record.
type ColorMatchToProfileW struct {
	Action gdi.ColorMatchToTarget
	Flags  uint32
	Name   string
	Data   []byte
}

// RecordType implements the [Record] interface.
func (*ColorMatchToProfileW) RecordType() Type { return EMRColorMatchToProfileW }

func decodeColorMatchToProfileW(tp Type, b *parser.Body) Record {
	if !minSize(tp, b, 24) {
		return nil
	}
	rec := &ColorMatchToProfileW{
		Action: gdi.ReadEnum[gdi.ColorMatchToTarget](b, "ColorMatchToTarget"),
		Flags:  b.U32(),
	}
	cbName := b.U32()
	cbData := b.U32()
	if b.Err() == nil && uint64(cbName)+uint64(cbData) > uint64(b.Remaining()) {
		b.Failf("profile of %d+%d bytes exceeds the record size", cbName, cbData)
		return nil
	}
	name := b.Bytes(int(cbName))
	rec.Data = b.Bytes(int(cbData))
	if b.Err() != nil {
		return nil
	}
	rec.Name = decodeName(b, true, name)
	if cbData == 0 {
		rec.Data = nil
	}
	return rec
}

// decodeName decodes a null-terminated profile or file name.
func decodeName(b *parser.Body, wide bool, buf []byte) string {
	if !wide {
		return parser.NullTerminatedANSI(buf)
	}
	s, err := parser.NullTerminatedUTF16LE(buf)
	if err != nil {
		b.Fail(err)
	}
	return s
}

// ColorCorrectPalette is the EMR_COLORCORRECTPALETTE record.
type ColorCorrectPalette struct {
	Palette    uint32 // object table index
	FirstEntry uint32
	NumEntries uint32
}

// RecordType implements the [Record] interface.
func (*ColorCorrectPalette) RecordType() Type { return EMRColorCorrectPalette }

func decodeColorCorrectPalette(tp Type, b *parser.Body) Record {
	if !fixedSize(tp, b, 24) {
		return nil
	}
	rec := &ColorCorrectPalette{
		Palette:    b.U32(),
		FirstEntry: b.U32(),
		NumEntries: b.U32(),
	}
	b.Skip(4) // reserved
	return rec
}
