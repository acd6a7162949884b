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
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strings"

	"seehuhn.de/go/emf/gdi"
	"seehuhn.de/go/emf/record"
)

func (p *Player) ExtTextOutA(r *record.ExtTextOut) error {
	p.text(r.Type, r.Text)
	return nil
}

func (p *Player) ExtTextOutW(r *record.ExtTextOut) error {
	p.text(r.Type, r.Text)
	return nil
}

func (p *Player) PolyTextOutA(r *record.PolyTextOut) error {
	for _, t := range r.Texts {
		p.text(r.Type, t)
	}
	return nil
}

func (p *Player) PolyTextOutW(r *record.PolyTextOut) error {
	for _, t := range r.Texts {
		p.text(r.Type, t)
	}
	return nil
}

func (p *Player) SmallTextOut(r *record.SmallTextOut) error {
	p.text(record.EMRSmallTextOut, &record.EmrText{
		Reference: r.Reference,
		Options:   r.Options,
		Rectangle: r.Bounds,
		Text:      r.Text,
		Glyphs:    r.Glyphs,
	})
	return nil
}

// text draws a single string.
func (p *Player) text(tp record.Type, t *record.EmrText) {
	if t == nil || p.ctx.Drawing.InPath {
		return
	}

	if t.Options&gdi.ETOOpaque != 0 && t.Options&gdi.ETONoRect == 0 {
		rect := t.Rectangle
		w := p.newPath()
		w.MoveTo(p.dev(vecOf(rect.Left, rect.Top)))
		w.LineTo(p.dev(vecOf(rect.Right, rect.Top)))
		w.LineTo(p.dev(vecOf(rect.Right, rect.Bottom)))
		w.LineTo(p.dev(vecOf(rect.Left, rect.Bottom)))
		w.Close()
		fmt.Fprintf(&p.body, "<path d=\"%s\" fill=\"%s\"%s/>\n",
			w.String(), p.ctx.Drawing.BkColor.Hex(), p.clipAttr())
	}

	if len(t.Glyphs) > 0 {
		p.drop(tp, "text given as glyph indices")
		return
	}
	if t.Text == "" {
		return
	}

	align := p.ctx.Text.Align
	ref := t.Reference.Vec()
	if align&gdi.TAUpdateCP != 0 {
		ref = p.ctx.Drawing.CurrentPosition.Vec()
	}
	font := p.font()

	runes := []rune(t.Text)
	var xs, ys []string
	pdy := t.Options&gdi.ETOPDY != 0
	step := 1
	if pdy {
		step = 2
	}
	if len(t.Dx) == step*len(runes) && len(runes) > 1 {
		pos := ref
		for i := range runes {
			d := p.dev(pos)
			xs = append(xs, p.num(d.X))
			ys = append(ys, p.num(d.Y))
			pos.X += float64(t.Dx[step*i])
			if pdy {
				pos.Y += float64(t.Dx[step*i+1])
			}
		}
	} else {
		d := p.dev(ref)
		xs, ys = []string{p.num(d.X)}, []string{p.num(d.Y)}
	}

	var attr strings.Builder
	fmt.Fprintf(&attr, ` x="%s" y="%s"`, strings.Join(xs, " "), strings.Join(ys, " "))
	if font != nil {
		fmt.Fprintf(&attr, ` font-family="%s"`, escape(fontFamily(font)))
	}
	fmt.Fprintf(&attr, ` font-size="%s"`, p.num(p.fontSize(font)))
	if font != nil {
		if font.Weight != gdi.FWDontCare && font.Weight != gdi.FWNormal {
			fmt.Fprintf(&attr, ` font-weight="%d"`, font.Weight)
		}
		if font.Italic {
			attr.WriteString(` font-style="italic"`)
		}
		switch {
		case font.Underline && font.StrikeOut:
			attr.WriteString(` text-decoration="underline line-through"`)
		case font.Underline:
			attr.WriteString(` text-decoration="underline"`)
		case font.StrikeOut:
			attr.WriteString(` text-decoration="line-through"`)
		}
	}
	fmt.Fprintf(&attr, ` fill="%s"`, p.ctx.Drawing.TextColor.Hex())

	if len(xs) == 1 {
		switch align.Horizontal() {
		case gdi.TACenter:
			attr.WriteString(` text-anchor="middle"`)
		case gdi.TARight:
			attr.WriteString(` text-anchor="end"`)
		}
	}
	switch align.Vertical() {
	case gdi.TABaseline:
		// alphabetic is the default
	case gdi.TABottom:
		attr.WriteString(` dominant-baseline="text-after-edge"`)
	default:
		attr.WriteString(` dominant-baseline="text-before-edge"`)
	}

	if font != nil && font.Escapement != 0 {
		// the escapement is given in tenths of degrees, counterclockwise
		d := p.dev(ref)
		fmt.Fprintf(&attr, ` transform="rotate(%s %s %s)"`,
			p.num(-float64(font.Escapement)/10), p.num(d.X), p.num(d.Y))
	}
	attr.WriteString(p.clipAttr())

	fmt.Fprintf(&p.body, "<text xml:space=\"preserve\"%s>%s</text>\n",
		attr.String(), escape(t.Text))
}

// font returns the selected font, or nil if no font is selected.
func (p *Player) font() *gdi.LogFont {
	switch {
	case p.ctx.Selected.Font != nil:
		return &p.ctx.Selected.Font.LogFont
	case p.ctx.Selected.FontDV != nil && p.ctx.Selected.FontDV.Font != nil:
		return &p.ctx.Selected.FontDV.Font.LogFont
	}
	return nil
}

// fontSize returns the font size in device units.
func (p *Player) fontSize(font *gdi.LogFont) float64 {
	h := 12.0
	if font != nil && font.Height != 0 {
		h = math.Abs(float64(font.Height))
	}
	m := p.ctx.DeviceMatrix()
	return h * math.Hypot(m[2], m[3])
}

// generic font families, indexed by the family bits of PitchAndFamily
var genericFamilies = []string{
	1: "serif",
	2: "sans-serif",
	3: "monospace",
	4: "cursive",
	5: "fantasy",
}

func fontFamily(font *gdi.LogFont) string {
	var names []string
	if font.FaceName != "" {
		name := font.FaceName
		if strings.ContainsAny(name, " ,") {
			name = "'" + name + "'"
		}
		names = append(names, name)
	}
	if fam := int(font.PitchAndFamily >> 4); fam < len(genericFamilies) && genericFamilies[fam] != "" {
		names = append(names, genericFamilies[fam])
	} else if font.PitchAndFamily&0x03 == 1 {
		names = append(names, "monospace")
	}
	if len(names) == 0 {
		return "sans-serif"
	}
	return strings.Join(names, ", ")
}

// escape returns s with the XML special characters escaped.
func escape(s string) string {
	buf := &bytes.Buffer{}
	_ = xml.EscapeText(buf, []byte(s))
	return buf.String()
}
