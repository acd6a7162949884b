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

// Package playback implements the state of an EMF playback device context.
//
// A [Context] tracks everything which the records of a metafile can change:
// the object table, the selected objects, the coordinate transformations,
// the clipping region and the drawing attributes.  Renderers call
// [Context.Apply] for every record, and consult the context to find out how
// a drawing record must be rendered.
package playback

import (
	"golang.org/x/exp/slices"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/emf/gdi"
	"seehuhn.de/go/emf/record"
)

// Context is the playback device context of a metafile.
type Context struct {
	Environment

	// XForm maps page space to device space.  It is recomputed from the
	// window and viewport extents by ApplyTransformation.
	XForm matrix.Matrix

	// Objects is the object table of the metafile.
	Objects *ObjectTable

	// Device is the size of the reference device in pixels, and Millimeters
	// is the same size in millimeters.  Both are taken from the header and
	// are used to set up the fixed mapping modes.
	Device      gdi.SizeL
	Millimeters gdi.SizeL

	stack []snapshot
}

type snapshot struct {
	env   Environment
	xform matrix.Matrix
}

// Environment collects the graphics state of a device context, apart from
// the object table and the page-to-device transformation.
type Environment struct {
	Regions  Regions
	Colors   Colors
	Text     Text
	Drawing  Drawing
	Selected Selected

	// World maps world space to page space (default: identity).
	World matrix.Matrix
}

// Regions holds the clipping regions and the window and viewport mapping.
type Regions struct {
	// Clip is the current clipping region, in device coordinates.  A nil
	// value means that drawing is not clipped.
	Clip *Clip

	// MetaClip is the meta region set by EMR_SETMETARGN.  The effective
	// clipping region is the intersection of Clip and MetaClip.
	MetaClip *Clip

	// Viewport is the origin and extent of the viewport in device units
	// (default: origin (0, 0), extent (1, 1)).
	Viewport Frame

	// Window is the origin and extent of the window in logical units
	// (default: origin (0, 0), extent (1, 1)).
	Window Frame
}

// Frame is the origin and extent of a window or viewport.
type Frame struct {
	Origin gdi.PointL
	Extent gdi.SizeL
}

// Colors holds the color management state.
type Colors struct {
	Adjustment gdi.ColorAdjustment
	ICMMode    gdi.ICMMode // default: ICMOff

	// ICMProfile holds the data of the current color profile, if the profile
	// is embedded in the metafile.  ICMProfileName is the name of the
	// profile.
	ICMProfile     []byte
	ICMProfileName string

	// ICMComponents is the number of color components of ICMProfile, or 0
	// if the profile is missing or cannot be decoded.
	ICMComponents int

	PixelFormat *gdi.PixelFormatDescriptor
}

// Text holds the text output state.
type Text struct {
	MapperFlags uint32
	ForcedUFI   *gdi.UniversalFontID
	LinkedUFIs  []gdi.UniversalFontID
	Align       gdi.TextAlignment // default: TALeft|TATop

	// BreakExtra is the extra space, in logical units, which is distributed
	// over BreakCount break characters.
	BreakExtra int32
	BreakCount int32
}

// Drawing holds the line and fill drawing state.
type Drawing struct {
	ArcDirection    gdi.ArcDirection    // default: CounterClockwise
	BkColor         gdi.ColorRef        // default: white
	BkMode          gdi.BackgroundMode  // default: Opaque
	BrushOrigin     gdi.PointL          // default: (0, 0)
	CurrentPosition gdi.PointL          // default: (0, 0)
	GraphicsMode    gdi.GraphicsMode    // default: GMCompatible
	Layout          gdi.LayoutMode      // default: LayoutLTR
	LineCap         gdi.PenStyle        // default: PSEndCapRound
	LineJoin        gdi.PenStyle        // default: PSJoinRound
	MapMode         gdi.MapMode         // default: MapModeText
	MiterLimit      float64             // default: 10
	PolyFillMode    gdi.PolygonFillMode // default: Alternate
	ROP2            gdi.BinaryRasterOp  // default: R2CopyPen
	StretchMode     gdi.StretchMode     // default: StretchAndScans
	TextColor       gdi.ColorRef        // default: black

	// InPath is set between EMR_BEGINPATH and EMR_ENDPATH.
	InPath bool

	// HasPath is set after EMR_ENDPATH, until the path is used or
	// discarded.
	HasPath bool
}

// Selected holds the objects which are currently selected into the device
// context.
type Selected struct {
	Brush      *Brush
	Pen        *Pen
	Font       *Font
	FontDV     *FontDV // set instead of Font for fonts with a design vector
	Palette    *Palette
	ColorSpace *ColorSpace // nil for the default sRGB color space

	// DCBrush and DCPen are the colors of the DCBrush and DCPen stock
	// objects.
	DCBrush gdi.ColorRef
	DCPen   gdi.ColorRef
}

// New returns a device context with default values for all fields, and an
// object table with the number of slots declared in the header.
// If h is nil, the table has no usable slots.
func New(h *record.Header) *Context {
	c := &Context{
		Environment: DefaultEnvironment(),
		XForm:       matrix.Identity,
	}
	n := 0
	if h != nil {
		n = int(h.Handles)
		c.Device = h.Device
		c.Millimeters = h.Millimeters
	}
	c.Objects = NewObjectTable(n)
	return c
}

// DefaultEnvironment returns the graphics state of a new device context.
func DefaultEnvironment() Environment {
	brush, _ := FromStock(gdi.WhiteBrush, DefaultDCBrushColor, DefaultDCPenColor)
	pen, _ := FromStock(gdi.BlackPen, DefaultDCBrushColor, DefaultDCPenColor)
	font, _ := FromStock(gdi.SystemFont, DefaultDCBrushColor, DefaultDCPenColor)
	pal, _ := FromStock(gdi.DefaultPalette, DefaultDCBrushColor, DefaultDCPenColor)

	return Environment{
		Regions: Regions{
			Viewport: Frame{Extent: gdi.SizeL{CX: 1, CY: 1}},
			Window:   Frame{Extent: gdi.SizeL{CX: 1, CY: 1}},
		},
		Colors: Colors{
			Adjustment: gdi.DefaultColorAdjustment,
			ICMMode:    gdi.ICMOff,
		},
		Text: Text{
			Align: gdi.TALeft | gdi.TATop,
		},
		Drawing: Drawing{
			ArcDirection: gdi.CounterClockwise,
			BkColor:      gdi.White,
			BkMode:       gdi.Opaque,
			GraphicsMode: gdi.GMCompatible,
			Layout:       gdi.LayoutLTR,
			LineCap:      gdi.PSEndCapRound,
			LineJoin:     gdi.PSJoinRound,
			MapMode:      gdi.MapModeText,
			MiterLimit:   10,
			PolyFillMode: gdi.Alternate,
			ROP2:         gdi.R2CopyPen,
			StretchMode:  gdi.StretchAndScans,
			TextColor:    gdi.Black,
		},
		Selected: Selected{
			Brush:   brush.(*Brush),
			Pen:     pen.(*Pen),
			Font:    font.(*Font),
			Palette: pal.(*Palette),
			DCBrush: DefaultDCBrushColor,
			DCPen:   DefaultDCPenColor,
		},
		World: matrix.Identity,
	}
}

// Clone returns a deep copy of the environment.
//
// Graphics objects are shared between the copies.  They are never modified
// in place; records which change an object replace it by a new one.
func (env *Environment) Clone() Environment {
	res := *env
	res.Regions.Clip = env.Regions.Clip.Clone()
	res.Regions.MetaClip = env.Regions.MetaClip.Clone()
	res.Colors.ICMProfile = slices.Clone(env.Colors.ICMProfile)
	res.Text.LinkedUFIs = slices.Clone(env.Text.LinkedUFIs)
	if env.Text.ForcedUFI != nil {
		ufi := *env.Text.ForcedUFI
		res.Text.ForcedUFI = &ufi
	}
	return res
}

// Depth returns the number of saved states.
func (c *Context) Depth() int {
	return len(c.stack)
}

// Save pushes a copy of the current state onto the stack.
// The object table is not part of the saved state.
func (c *Context) Save() {
	c.stack = append(c.stack, snapshot{
		env:   c.Environment.Clone(),
		xform: c.XForm,
	})
}

// Restore restores a saved state.  The argument rel is negative and gives
// the position of the state relative to the top of the stack: -1 restores
// the most recently saved state.  All states above the restored one are
// discarded.
func (c *Context) Restore(rel int32) error {
	if rel >= 0 {
		return Errorf(InvalidRecord, "RestoreDC with non-negative index %d", rel)
	}
	n := -int64(rel)
	if n > int64(len(c.stack)) {
		return Errorf(InvalidRecord,
			"RestoreDC(%d) with only %d saved states", rel, len(c.stack))
	}
	pos := len(c.stack) - int(n)
	s := c.stack[pos]
	c.stack = c.stack[:pos]
	c.Environment = s.env
	c.XForm = s.xform
	return nil
}
