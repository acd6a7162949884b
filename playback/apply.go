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

package playback

import (
	"math"

	"seehuhn.de/go/icc"

	"seehuhn.de/go/emf/gdi"
	"seehuhn.de/go/emf/record"
)

// Apply updates the device context for a decoded record.  Records which
// do not change the state of the device context are ignored.
func (c *Context) Apply(rec record.Record) error {
	switch r := rec.(type) {
	case *record.Header:
		c.Device = r.Device
		c.Millimeters = r.Millimeters

	// == window and viewport ============================================

	case *record.SetExtent:
		if r.Type == record.EMRSetWindowExtEx {
			c.Regions.Window.Extent = r.Extent
		} else {
			c.Regions.Viewport.Extent = r.Extent
		}
		c.updateExtents()

	case *record.SetOrigin:
		switch r.Type {
		case record.EMRSetWindowOrgEx:
			c.Regions.Window.Origin = r.Origin
		case record.EMRSetViewportOrgEx:
			c.Regions.Viewport.Origin = r.Origin
		case record.EMRSetBrushOrgEx:
			c.Drawing.BrushOrigin = r.Origin
		}

	case *record.ScaleExtent:
		ext := &c.Regions.Viewport.Extent
		if r.Type == record.EMRScaleWindowExtEx {
			ext = &c.Regions.Window.Extent
		}
		ext.CX = scale(ext.CX, r.XNum, r.XDenom)
		ext.CY = scale(ext.CY, r.YNum, r.YDenom)
		c.updateExtents()

	case *record.SetMapMode:
		c.setMapMode(r.Mode)

	case *record.SetWorldTransform:
		c.World = r.XForm.Matrix()

	case *record.ModifyWorldTransform:
		c.modifyWorld(r.XForm, r.Mode)

	// == simple attributes ==============================================

	case *record.SetBkMode:
		c.Drawing.BkMode = r.Mode
	case *record.SetPolyFillMode:
		c.Drawing.PolyFillMode = r.Mode
	case *record.SetROP2:
		c.Drawing.ROP2 = r.Op
	case *record.SetStretchBltMode:
		c.Drawing.StretchMode = r.Mode
	case *record.SetArcDirection:
		c.Drawing.ArcDirection = r.Direction
	case *record.SetMiterLimit:
		c.Drawing.MiterLimit = float64(r.Limit)
	case *record.SetLayout:
		c.Drawing.Layout = r.Mode
	case *record.SetColor:
		if r.Type == record.EMRSetTextColor {
			c.Drawing.TextColor = r.Color
		} else {
			c.Drawing.BkColor = r.Color
		}

	case *record.SetTextAlign:
		c.Text.Align = r.Align
	case *record.SetMapperFlags:
		c.Text.MapperFlags = r.Flags
	case *record.SetTextJustification:
		c.Text.BreakExtra = r.BreakExtra
		c.Text.BreakCount = r.BreakCount
	case *record.ForceUFIMapping:
		ufi := r.UFI
		c.Text.ForcedUFI = &ufi
	case *record.SetLinkedUFIs:
		c.Text.LinkedUFIs = append(c.Text.LinkedUFIs[:0:0], r.UFIs...)

	case *record.SetColorAdjustment:
		c.Colors.Adjustment = r.Adjustment
	case *record.SetICMMode:
		c.Colors.ICMMode = r.Mode
	case *record.PixelFormat:
		c.Colors.PixelFormat = r.PFD
	case *record.SetICMProfile:
		c.setICMProfile(r.Name, r.Data)
	case *record.ColorMatchToProfileW:
		switch r.Action {
		case gdi.CSEnable:
			c.setICMProfile(r.Name, r.Data)
		case gdi.CSDisable, gdi.CSDeleteTransform:
			c.setICMProfile("", nil)
		}

	// == current position and paths =====================================

	case *record.MoveToEx:
		c.Drawing.CurrentPosition = r.Point
	case *record.LineTo:
		c.Drawing.CurrentPosition = r.Point
	case *record.Poly:
		if (r.Type == record.EMRPolyBezierTo || r.Type == record.EMRPolylineTo) && len(r.Points) > 0 {
			c.Drawing.CurrentPosition = r.Points[len(r.Points)-1]
		}
	case *record.Poly16:
		if (r.Type == record.EMRPolyBezierTo16 || r.Type == record.EMRPolylineTo16) && len(r.Points) > 0 {
			p := r.Points[len(r.Points)-1]
			c.Drawing.CurrentPosition = gdi.PointL{X: int32(p.X), Y: int32(p.Y)}
		}
	case *record.PolyDraw:
		if len(r.Points) > 0 {
			c.Drawing.CurrentPosition = r.Points[len(r.Points)-1]
		}
	case *record.PolyDraw16:
		if len(r.Points) > 0 {
			p := r.Points[len(r.Points)-1]
			c.Drawing.CurrentPosition = gdi.PointL{X: int32(p.X), Y: int32(p.Y)}
		}
	case *record.ArcBox:
		if r.Type == record.EMRArcTo {
			c.Drawing.CurrentPosition = ArcEndPoint(r.Box, r.End)
		}
	case *record.AngleArc:
		a := float64(r.StartAngle+r.SweepAngle) * math.Pi / 180
		rad := float64(r.Radius)
		c.Drawing.CurrentPosition = gdi.PointL{
			X: r.Center.X + int32(math.Round(rad*math.Cos(a))),
			Y: r.Center.Y - int32(math.Round(rad*math.Sin(a))),
		}

	case *record.NoParams:
		return c.applyNoParams(r.Type)

	case *record.PathBounds:
		c.Drawing.InPath = false
		c.Drawing.HasPath = false

	// == clipping ========================================================

	case *record.ClipRect:
		rect := c.rectToDevice(r.Clip)
		mode := gdi.RgnAnd
		if r.Type == record.EMRExcludeClipRect {
			mode = gdi.RgnDiff
		}
		c.Regions.Clip = combineClip(c.Regions.Clip, mode, rect, nil)

	case *record.ExtSelectClipRgn:
		if r.Region == nil {
			// only allowed for RgnCopy
			c.Regions.Clip = nil
			break
		}
		c.Regions.Clip = combineClip(c.Regions.Clip, r.Mode,
			r.Region.Bounds(), r.Region.Rects)

	case *record.OffsetClipRgn:
		if c.Regions.Clip != nil {
			dx, dy := c.vectorToDevice(r.Offset.X, r.Offset.Y)
			c.Regions.Clip = c.Regions.Clip.Clone()
			c.Regions.Clip.Offset(dx, dy)
		}

	case *record.SelectClipPath:
		if !c.Drawing.HasPath {
			return Errorf(InvalidRecord, "EMR_SELECTCLIPPATH without a path")
		}
		clip := c.Regions.Clip.Clone()
		if clip == nil {
			clip = &Clip{Bounds: Unbounded}
		}
		clip.Path = true
		clip.PathMode = r.Mode
		c.Regions.Clip = clip
		c.Drawing.HasPath = false

	// == objects =========================================================

	case *record.CreatePen:
		return c.Objects.store(r.Index, &Pen{Pen: r.Pen.Extended()})
	case *record.ExtCreatePen:
		pen := *r.Pen
		if pb, ok := pen.Brush.(gdi.PatternBrush); ok && r.Bitmap != nil {
			pen.Brush = gdi.DIBPatternBrush{Usage: pb.Usage, Bitmap: r.Bitmap}
		}
		return c.Objects.store(r.Index, &Pen{Pen: &pen})
	case *record.CreateBrushIndirect:
		return c.Objects.store(r.Index, &Brush{Brush: r.Brush.Brush()})
	case *record.CreateMonoBrush:
		return c.Objects.store(r.Index, &Brush{Brush: gdi.DIBPatternBrush{
			Usage:  r.Usage,
			Bitmap: r.Bitmap,
			Mono:   true,
		}})
	case *record.CreateDIBPatternBrushPt:
		if r.Bitmap == nil {
			return Errorf(InvalidBrush, "DIB pattern brush %d without bitmap", r.Index)
		}
		return c.Objects.store(r.Index, &Brush{Brush: gdi.DIBPatternBrush{
			Usage:  r.Usage,
			Bitmap: r.Bitmap,
		}})
	case *record.ExtCreateFontIndirectW:
		if r.LogFontExDv != nil {
			return c.Objects.store(r.Index, &FontDV{Font: r.LogFontExDv})
		}
		f := &Font{LogFont: *r.Font()}
		if r.LogFontPanose != nil {
			panose := r.LogFontPanose.Panose
			f.Panose = &panose
		}
		return c.Objects.store(r.Index, f)
	case *record.CreatePalette:
		return c.Objects.store(r.Index, &Palette{Palette: r.Palette})
	case *record.CreateColorSpace:
		return c.Objects.store(r.Index, &ColorSpace{Space: r.ColorSpace})
	case *record.CreateColorSpaceW:
		return c.Objects.store(r.Index, &ColorSpace{
			Space:   r.ColorSpace,
			Wide:    true,
			Profile: r.Data,
		})

	case *record.ObjectIndex:
		return c.applyObjectIndex(r)

	case *record.SetPaletteEntries:
		pal, err := lookup[*Palette](c.Objects, r.Index)
		if err != nil {
			return err
		}
		entries := pal.Palette.Entries
		if uint64(r.Start)+uint64(len(r.Entries)) > uint64(len(entries)) {
			return Errorf(InvalidRecord, "palette entries %d+%d outside palette of size %d",
				r.Start, len(r.Entries), len(entries))
		}
		newPal := &gdi.LogPalette{Entries: append([]gdi.PaletteEntry(nil), entries...)}
		copy(newPal.Entries[r.Start:], r.Entries)
		c.replacePalette(r.Index, pal, &Palette{Palette: newPal})

	case *record.ResizePalette:
		pal, err := lookup[*Palette](c.Objects, r.Index)
		if err != nil {
			return err
		}
		if r.NumEntries > gdi.MaxPaletteEntries {
			return Errorf(InvalidRecord, "palette with %d entries", r.NumEntries)
		}
		entries := make([]gdi.PaletteEntry, r.NumEntries)
		copy(entries, pal.Palette.Entries)
		c.replacePalette(r.Index, pal, &Palette{Palette: &gdi.LogPalette{Entries: entries}})

	case *record.ColorCorrectPalette:
		pal, err := lookup[*Palette](c.Objects, r.Palette)
		if err != nil {
			return err
		}
		if uint64(r.FirstEntry)+uint64(r.NumEntries) > uint64(len(pal.Palette.Entries)) {
			return Errorf(InvalidRecord, "palette entries %d+%d outside palette of size %d",
				r.FirstEntry, r.NumEntries, len(pal.Palette.Entries))
		}

	case *record.RestoreDC:
		return c.Restore(r.SavedDC)
	}
	return nil
}

func (c *Context) applyNoParams(tp record.Type) error {
	switch tp {
	case record.EMRSaveDC:
		c.Save()
	case record.EMRBeginPath:
		c.Drawing.InPath = true
		c.Drawing.HasPath = false
	case record.EMREndPath:
		if !c.Drawing.InPath {
			return Errorf(InvalidRecord, "EMR_ENDPATH without EMR_BEGINPATH")
		}
		c.Drawing.InPath = false
		c.Drawing.HasPath = true
	case record.EMRAbortPath:
		c.Drawing.InPath = false
		c.Drawing.HasPath = false
	case record.EMRSetMetaRgn:
		c.Regions.MetaClip = intersectClip(c.Regions.MetaClip, c.Regions.Clip)
		c.Regions.Clip = nil
	}
	return nil
}

func (c *Context) applyObjectIndex(r *record.ObjectIndex) error {
	switch r.Type {
	case record.EMRSelectObject:
		obj, err := c.Object(r.Index)
		if err != nil {
			return err
		}
		return c.selectObject(r.Index, obj)

	case record.EMRDeleteObject:
		if !c.Objects.Contains(r.Index) {
			return Errorf(InvalidRecord,
				"object index %d outside table of size %d", r.Index, c.Objects.Len())
		}
		c.Objects.Delete(r.Index)

	case record.EMRSelectPalette:
		if r.Index == uint32(gdi.DefaultPalette) {
			obj, _ := FromStock(gdi.DefaultPalette, c.Selected.DCBrush, c.Selected.DCPen)
			c.Selected.Palette = obj.(*Palette)
			return nil
		}
		pal, err := lookup[*Palette](c.Objects, r.Index)
		if err != nil {
			return err
		}
		c.Selected.Palette = pal

	case record.EMRSetColorSpace:
		cs, err := lookup[*ColorSpace](c.Objects, r.Index)
		if err != nil {
			return err
		}
		c.Selected.ColorSpace = cs

	case record.EMRDeleteColorSpace:
		if _, err := lookup[*ColorSpace](c.Objects, r.Index); err != nil {
			return err
		}
		c.Objects.Delete(r.Index)
	}
	return nil
}

// Object returns the graphics object with the given index.  Indices with
// the high bit set refer to stock objects.
func (c *Context) Object(idx uint32) (GraphicsObject, error) {
	if gdi.IsStock(idx) {
		return FromStock(gdi.StockObject(idx), c.Selected.DCBrush, c.Selected.DCPen)
	}
	if !c.Objects.Contains(idx) {
		return nil, Errorf(InvalidRecord,
			"object index %d outside table of size %d", idx, c.Objects.Len())
	}
	return c.Objects.Get(idx), nil
}

func (c *Context) selectObject(idx uint32, obj GraphicsObject) error {
	switch obj := obj.(type) {
	case *Pen:
		c.Selected.Pen = obj
		if obj.Pen.Style.IsGeometric() {
			c.Drawing.LineCap = obj.Pen.Style.EndCap()
			c.Drawing.LineJoin = obj.Pen.Style.Join()
		} else {
			c.Drawing.LineCap = gdi.PSEndCapRound
			c.Drawing.LineJoin = gdi.PSJoinRound
		}
	case *Brush:
		c.Selected.Brush = obj
	case *Font:
		c.Selected.Font = obj
		c.Selected.FontDV = nil
	case *FontDV:
		c.Selected.Font = nil
		c.Selected.FontDV = obj
	default:
		return Errorf(UnexpectedGraphicsObject,
			"cannot select %s (index %#x)", obj.Kind(), idx)
	}
	return nil
}

// replacePalette stores a modified palette in the object table, and
// updates the selected palette if needed.
func (c *Context) replacePalette(idx uint32, old, pal *Palette) {
	c.Objects.Set(idx, pal)
	if c.Selected.Palette == old {
		c.Selected.Palette = pal
	}
}

func (c *Context) setICMProfile(name string, data []byte) {
	c.Colors.ICMProfileName = name
	c.Colors.ICMProfile = data
	c.Colors.ICMComponents = 0
	if len(data) == 0 {
		return
	}
	p, err := icc.Decode(data)
	if err != nil {
		return
	}
	c.Colors.ICMComponents = p.ColorSpace.NumComponents()
}

// scale multiplies x by num/denom.  The denominator is never zero, since
// the record decoder rejects such records.
func scale(x, num, denom int32) int32 {
	return int32(int64(x) * int64(num) / int64(denom))
}

// ArcEndPoint returns the point where the ray from the center of the
// ellipse inscribed in box through p intersects the ellipse.  This is where
// arcs which end at p actually end.
func ArcEndPoint(box gdi.RectL, p gdi.PointL) gdi.PointL {
	cx := (float64(box.Left) + float64(box.Right)) / 2
	cy := (float64(box.Top) + float64(box.Bottom)) / 2
	rx := math.Abs(float64(box.Right)-float64(box.Left)) / 2
	ry := math.Abs(float64(box.Bottom)-float64(box.Top)) / 2
	dx := float64(p.X) - cx
	dy := float64(p.Y) - cy
	if rx == 0 || ry == 0 || dx == 0 && dy == 0 {
		return gdi.PointL{X: int32(math.Round(cx + rx)), Y: int32(math.Round(cy))}
	}
	t := 1 / math.Hypot(dx/rx, dy/ry)
	return gdi.PointL{
		X: int32(math.Round(cx + t*dx)),
		Y: int32(math.Round(cy + t*dy)),
	}
}
