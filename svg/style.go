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

package svg

import (
	"fmt"
	"math"
	"strings"

	"seehuhn.de/go/emf/gdi"
	"seehuhn.de/go/emf/playback"
)

// emit writes a path element.  Inside a path bracket, the path data is
// added to the current path instead, and nothing is drawn.
func (p *Player) emit(d string, fill, stroke bool) {
	if d == "" {
		return
	}
	if p.ctx.Drawing.InPath {
		p.path.Append(d)
		return
	}

	var attr strings.Builder
	if fill {
		attr.WriteString(p.fillAttrs(p.brush()))
	} else {
		attr.WriteString(` fill="none"`)
	}
	if stroke {
		attr.WriteString(p.strokeAttrs())
	}
	attr.WriteString(p.clipAttr())
	fmt.Fprintf(&p.body, "<path d=\"%s\"%s/>\n", d, attr.String())
}

// brush returns the selected brush, or nil for the null brush.
func (p *Player) brush() gdi.Brush {
	if b := p.ctx.Selected.Brush; b != nil {
		return b.Brush
	}
	return nil
}

// fillAttrs returns the fill attributes for painting with the brush b.
func (p *Player) fillAttrs(b gdi.Brush) string {
	paint := p.paint(b)
	if paint == "none" {
		return ` fill="none"`
	}
	rule := "evenodd"
	if p.ctx.Drawing.PolyFillMode == gdi.Winding {
		rule = "nonzero"
	}
	return fmt.Sprintf(` fill="%s" fill-rule="%s"`, paint, rule)
}

// paint converts a brush into an SVG paint value.
func (p *Player) paint(b gdi.Brush) string {
	switch b := b.(type) {
	case nil:
		return "none"
	case gdi.SolidBrush:
		return b.Color.Hex()
	case gdi.HatchBrush:
		return p.hatch(b)
	case gdi.DIBPatternBrush:
		if id, ok := p.pattern(b); ok {
			return "url(#" + id + ")"
		}
		return p.ctx.Drawing.TextColor.Hex()
	default:
		// pattern brushes of pens without a bitmap
		return gdi.Black.Hex()
	}
}

// hatchPaths gives the lines of the hatch patterns, in an 8x8 tile.
var hatchPaths = map[gdi.HatchStyle]string{
	gdi.HSHorizontal: "M0,4 H8",
	gdi.HSVertical:   "M4,0 V8",
	gdi.HSFDiagonal:  "M0,0 L8,8 M-1,7 L1,9 M7,-1 L9,1",
	gdi.HSBDiagonal:  "M0,8 L8,0 M-1,1 L1,-1 M7,9 L9,7",
	gdi.HSCross:      "M0,4 H8 M4,0 V8",
	gdi.HSDiagCross:  "M0,0 L8,8 M0,8 L8,0",
}

func (p *Player) hatch(b gdi.HatchBrush) string {
	d, ok := hatchPaths[b.Hatch]
	if !ok {
		switch b.Hatch {
		case gdi.HSSolidTextClr, gdi.HSDitheredTextClr:
			return p.ctx.Drawing.TextColor.Hex()
		case gdi.HSSolidBkClr, gdi.HSDitheredBkClr:
			return p.ctx.Drawing.BkColor.Hex()
		}
		return b.Color.Hex()
	}

	var bg string
	if p.ctx.Drawing.BkMode == gdi.Opaque {
		bg = fmt.Sprintf(`<rect width="8" height="8" fill="%s"/>`, p.ctx.Drawing.BkColor.Hex())
	}
	id := p.define("h",
		`<pattern id="%[1]s" width="8" height="8" patternUnits="userSpaceOnUse">%[2]s<path d="%[3]s" stroke="%[4]s" stroke-width="1"/></pattern>`,
		bg, d, b.Color.Hex())
	return "url(#" + id + ")"
}

// dash patterns for cosmetic pens, in device pixels
var cosmeticDashes = map[gdi.PenStyle][]float64{
	gdi.PSDash:       {18, 6},
	gdi.PSDot:        {3, 3},
	gdi.PSDashDot:    {9, 6, 3, 6},
	gdi.PSDashDotDot: {9, 3, 3, 3, 3, 3},
	gdi.PSAlternate:  {1, 1},
}

// dash patterns for geometric pens, in multiples of the pen width
var geometricDashes = map[gdi.PenStyle][]float64{
	gdi.PSDash:       {3, 1},
	gdi.PSDot:        {1, 1},
	gdi.PSDashDot:    {3, 1, 1, 1},
	gdi.PSDashDotDot: {3, 1, 1, 1, 1, 1},
}

// scale returns the factor by which lengths in logical units grow when
// mapped to device space.
func (p *Player) scale() float64 {
	m := p.ctx.DeviceMatrix()
	return math.Sqrt(math.Abs(m[0]*m[3] - m[1]*m[2]))
}

// strokeAttrs returns the stroke attributes for the selected pen.
func (p *Player) strokeAttrs() string {
	sel := p.ctx.Selected.Pen
	if sel == nil || sel.Pen == nil {
		return ""
	}
	pen := sel.Pen
	style := pen.Style.Line()
	if style == gdi.PSNull || pen.Brush == nil {
		return ""
	}

	// EMR_CREATEPEN stores wide pens as cosmetic pens, so the width is
	// used for both pen types.
	width := 1.0
	if pen.Width > 1 || pen.Style.IsGeometric() && pen.Width > 0 {
		width = float64(pen.Width) * p.scale()
	}

	var b strings.Builder
	fmt.Fprintf(&b, ` stroke="%s" stroke-width="%s"`, p.paint(pen.Brush), p.num(width))

	switch p.ctx.Drawing.LineCap {
	case gdi.PSEndCapSquare:
		b.WriteString(` stroke-linecap="square"`)
	case gdi.PSEndCapFlat:
		// butt is the default
	default:
		b.WriteString(` stroke-linecap="round"`)
	}
	switch p.ctx.Drawing.LineJoin {
	case gdi.PSJoinBevel:
		b.WriteString(` stroke-linejoin="bevel"`)
	case gdi.PSJoinMiter:
		if ml := p.ctx.Drawing.MiterLimit; ml >= 1 {
			fmt.Fprintf(&b, ` stroke-miterlimit="%s"`, p.num(ml))
		}
	default:
		b.WriteString(` stroke-linejoin="round"`)
	}

	var dashes []float64
	switch {
	case style == gdi.PSUserStyle:
		for _, e := range pen.StyleEntries {
			dashes = append(dashes, float64(e)*p.scale())
		}
	case pen.Style.IsGeometric():
		for _, d := range geometricDashes[style] {
			dashes = append(dashes, d*width)
		}
	default:
		dashes = cosmeticDashes[style]
	}
	if len(dashes) > 0 {
		parts := make([]string, len(dashes))
		for i, d := range dashes {
			parts[i] = p.num(d)
		}
		fmt.Fprintf(&b, ` stroke-dasharray="%s"`, strings.Join(parts, " "))
	}
	return b.String()
}

// clipAttr returns the clip-path attribute for the current clipping
// region, or the empty string if drawing is not clipped.
func (p *Player) clipAttr() string {
	c := p.ctx.EffectiveClip()
	if c == nil {
		return ""
	}

	var id string
	if c.Bounds != playback.Unbounded || len(c.Excluded) > 0 || c.Rects != nil {
		bounds := c.Bounds
		if bounds == playback.Unbounded {
			bounds = p.viewRect()
		}
		rects := c.Rects
		if rects == nil {
			rects = []gdi.RectL{bounds}
		}
		w := &pathWriter{prec: p.opt.Precision}
		for _, r := range rects {
			rectPath(w, r.Intersect(bounds))
		}
		rule := "nonzero"
		if len(c.Excluded) > 0 {
			rule = "evenodd"
			for _, r := range c.Excluded {
				rectPath(w, r.Intersect(bounds))
			}
		}
		id = p.define("c",
			`<clipPath id="%[1]s"><path d="%[2]s" clip-rule="%[3]s"/></clipPath>`,
			w.String(), rule)
	}

	if c.Path && p.clipPath != "" {
		var nested string
		if id != "" && c.PathMode == gdi.RgnAnd {
			nested = ` clip-path="url(#` + id + `)"`
		} else if c.PathMode != gdi.RgnCopy && c.PathMode != gdi.RgnAnd {
			p.logger.Debug("clip path mode approximated", "mode", c.PathMode)
		}
		id = p.define("c",
			`<clipPath id="%[1]s"%[2]s><path d="%[3]s" clip-rule="%[4]s"/></clipPath>`,
			nested, p.clipPath, p.clipRule)
	}

	if id == "" {
		return ""
	}
	return ` clip-path="url(#` + id + `)"`
}

// viewRect returns the image bounds in device coordinates.
func (p *Player) viewRect() gdi.RectL {
	b := p.header.Bounds
	return gdi.RectL{
		Left:   min(b.Left, b.Right),
		Top:    min(b.Top, b.Bottom),
		Right:  max(b.Left, b.Right) + 1,
		Bottom: max(b.Top, b.Bottom) + 1,
	}
}

// rectPath adds a rectangle in device coordinates to w.
func rectPath(w *pathWriter, r gdi.RectL) {
	if r.IsEmpty() {
		return
	}
	w.MoveTo(vecOf(r.Left, r.Top))
	w.LineTo(vecOf(r.Right, r.Top))
	w.LineTo(vecOf(r.Right, r.Bottom))
	w.LineTo(vecOf(r.Left, r.Bottom))
	w.Close()
}
