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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/emf/gdi"
)

// ApplyTransformation recomputes XForm from the window and viewport
// extents.  The result is a pure scaling, with the scale factors given by
// the ratio of viewport extent to window extent.
//
// If one of the window extents is zero, XForm is left unchanged.
func (c *Context) ApplyTransformation() {
	win := c.Regions.Window.Extent
	vp := c.Regions.Viewport.Extent
	if win.CX == 0 || win.CY == 0 {
		return
	}
	sx := float64(vp.CX) / float64(win.CX)
	sy := float64(vp.CY) / float64(win.CY)
	c.XForm = matrix.Scale(sx, sy)
}

// updateExtents is called whenever the window or viewport extents or the
// mapping mode change.  In isotropic mode, one of the viewport extents is
// shrunk so that logical units have the same size along both axes.  The
// signs of the extents are kept.
func (c *Context) updateExtents() {
	win := c.Regions.Window.Extent
	vp := &c.Regions.Viewport.Extent
	if c.Drawing.MapMode == gdi.MapModeIsotropic &&
		win.CX != 0 && win.CY != 0 && vp.CX != 0 && vp.CY != 0 {
		sx := math.Abs(float64(vp.CX) / float64(win.CX))
		sy := math.Abs(float64(vp.CY) / float64(win.CY))
		switch {
		case sx > sy:
			vp.CX = shrinkExtent(vp.CX, sy/sx)
		case sy > sx:
			vp.CY = shrinkExtent(vp.CY, sx/sy)
		}
	}
	c.ApplyTransformation()
}

// shrinkExtent scales an extent by 0 < f < 1, without letting it become 0.
func shrinkExtent(ext int32, f float64) int32 {
	res := int32(math.Round(float64(ext) * f))
	if res == 0 {
		if ext < 0 {
			return -1
		}
		return 1
	}
	return res
}

// SetScale sets XForm to a scaling by (sx, sy).
func (c *Context) SetScale(sx, sy float64) {
	c.XForm = matrix.Scale(sx, sy)
}

// TransformPointL applies XForm to a point.  The coordinates are computed
// in double precision and then truncated.
func (c *Context) TransformPointL(p gdi.PointL) gdi.PointL {
	x, y := apply(c.XForm, float64(p.X), float64(p.Y))
	return gdi.PointL{X: int32(x), Y: int32(y)}
}

// TransformPointS applies XForm to a point with 16-bit coordinates.  The
// coordinates are computed in double precision and then truncated.
func (c *Context) TransformPointS(p gdi.PointS) gdi.PointS {
	x, y := apply(c.XForm, float64(p.X), float64(p.Y))
	return gdi.PointS{X: int16(x), Y: int16(y)}
}

// PageMatrix returns the transformation from page space to device space.
// This applies the window origin, XForm and the viewport origin.
func (c *Context) PageMatrix() matrix.Matrix {
	wo := c.Regions.Window.Origin
	vo := c.Regions.Viewport.Origin
	return matrix.Translate(-float64(wo.X), -float64(wo.Y)).
		Mul(c.XForm).
		Mul(matrix.Translate(float64(vo.X), float64(vo.Y)))
}

// DeviceMatrix returns the transformation from logical coordinates (world
// space) to device coordinates.
func (c *Context) DeviceMatrix() matrix.Matrix {
	return c.World.Mul(c.PageMatrix())
}

// ToDevice maps a point in logical coordinates to device coordinates.
func (c *Context) ToDevice(p vec.Vec2) vec.Vec2 {
	x, y := apply(c.DeviceMatrix(), p.X, p.Y)
	return vec.Vec2{X: x, Y: y}
}

// rectToDevice maps a rectangle in logical coordinates to device
// coordinates.  The result is normalized.
func (c *Context) rectToDevice(r gdi.RectL) gdi.RectL {
	m := c.DeviceMatrix()
	x0, y0 := apply(m, float64(r.Left), float64(r.Top))
	x1, y1 := apply(m, float64(r.Right), float64(r.Bottom))
	return gdi.RectL{
		Left:   int32(math.Round(min(x0, x1))),
		Top:    int32(math.Round(min(y0, y1))),
		Right:  int32(math.Round(max(x0, x1))),
		Bottom: int32(math.Round(max(y0, y1))),
	}
}

// vectorToDevice maps a displacement in logical units to device units.
func (c *Context) vectorToDevice(dx, dy int32) (int32, int32) {
	m := c.DeviceMatrix()
	x := float64(dx)*m[0] + float64(dy)*m[2]
	y := float64(dx)*m[1] + float64(dy)*m[3]
	return int32(math.Round(x)), int32(math.Round(y))
}

// setMapMode changes the mapping mode.  For the fixed mapping modes, the
// window and viewport extents are set up so that one logical unit
// corresponds to the unit of the mapping mode on the reference device.
func (c *Context) setMapMode(mode gdi.MapMode) {
	c.Drawing.MapMode = mode

	var unitsPerMM float64
	switch mode {
	case gdi.MapModeText:
		c.Regions.Window.Extent = gdi.SizeL{CX: 1, CY: 1}
		c.Regions.Viewport.Extent = gdi.SizeL{CX: 1, CY: 1}
		c.updateExtents()
		return
	case gdi.MapModeLoMetric:
		unitsPerMM = 10
	case gdi.MapModeHiMetric:
		unitsPerMM = 100
	case gdi.MapModeLoEnglish:
		unitsPerMM = 100 / 25.4
	case gdi.MapModeHiEnglish:
		unitsPerMM = 1000 / 25.4
	case gdi.MapModeTwips:
		unitsPerMM = 1440 / 25.4
	default:
		// isotropic and anisotropic modes keep the current extents
		c.updateExtents()
		return
	}

	mm := c.Millimeters
	if mm.CX == 0 || mm.CY == 0 || c.Device.CX == 0 || c.Device.CY == 0 {
		return
	}
	c.Regions.Window.Extent = gdi.SizeL{
		CX: int32(math.Round(float64(mm.CX) * unitsPerMM)),
		CY: int32(math.Round(float64(mm.CY) * unitsPerMM)),
	}
	// the y-axis of the fixed mapping modes points up
	c.Regions.Viewport.Extent = gdi.SizeL{CX: c.Device.CX, CY: -c.Device.CY}
	c.updateExtents()
}

// modifyWorld changes the world transformation.
func (c *Context) modifyWorld(x gdi.XForm, mode gdi.ModifyWorldTransformMode) {
	switch mode {
	case gdi.MWTIdentity:
		c.World = matrix.Identity
	case gdi.MWTLeftMultiply:
		c.World = x.Matrix().Mul(c.World)
	case gdi.MWTRightMultiply:
		c.World = c.World.Mul(x.Matrix())
	case gdi.MWTSet:
		c.World = x.Matrix()
	}
}

func apply(m matrix.Matrix, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
