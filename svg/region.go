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

	"seehuhn.de/go/icc"

	"seehuhn.de/go/emf/gdi"
	"seehuhn.de/go/emf/playback"
	"seehuhn.de/go/emf/record"
)

// regionPath returns the path of a region given in logical coordinates.
func (p *Player) regionPath(rgn *gdi.RegionData) string {
	if rgn == nil {
		return ""
	}
	w := p.newPath()
	for _, r := range rgn.Rects {
		if r.IsEmpty() {
			continue
		}
		w.MoveTo(p.dev(vecOf(r.Left, r.Top)))
		w.LineTo(p.dev(vecOf(r.Right, r.Top)))
		w.LineTo(p.dev(vecOf(r.Right, r.Bottom)))
		w.LineTo(p.dev(vecOf(r.Left, r.Bottom)))
		w.Close()
	}
	return w.String()
}

// brushAt returns the brush stored at index idx of the object table.
func (p *Player) brushAt(idx uint32) (gdi.Brush, error) {
	obj, err := p.ctx.Object(idx)
	if err != nil {
		return nil, err
	}
	b, ok := obj.(*playback.Brush)
	if !ok {
		return nil, playback.Errorf(playback.UnexpectedGraphicsObject,
			"object %d is a %s, not a brush", idx, obj.Kind())
	}
	return b.Brush, nil
}

func (p *Player) FillRgn(r *record.FillRgn) error {
	b, err := p.brushAt(r.Brush)
	if err != nil {
		return err
	}
	p.paintRegion(r.Region, b)
	return nil
}

func (p *Player) PaintRgn(r *record.PaintRgn) error {
	p.paintRegion(r.Region, p.brush())
	return nil
}

func (p *Player) paintRegion(rgn *gdi.RegionData, b gdi.Brush) {
	d := p.regionPath(rgn)
	if d == "" || p.ctx.Drawing.InPath {
		return
	}
	paint := p.paint(b)
	if paint == "none" {
		return
	}
	fmt.Fprintf(&p.body, "<path d=\"%s\" fill=\"%s\"%s/>\n", d, paint, p.clipAttr())
}

func (p *Player) FrameRgn(r *record.FrameRgn) error {
	b, err := p.brushAt(r.Brush)
	if err != nil {
		return err
	}
	d := p.regionPath(r.Region)
	if d == "" || p.ctx.Drawing.InPath {
		return nil
	}
	paint := p.paint(b)
	if paint == "none" {
		return nil
	}

	// The frame is drawn inside the region, so a stroke of twice the
	// width is clipped to the region.
	width := float64(max(r.Width, r.Height, 1)) * p.scale()
	id := p.define("c", `<clipPath id="%[1]s"><path d="%[2]s"/></clipPath>`, d)
	fmt.Fprintf(&p.body, "<g%s><path d=\"%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"%s\" clip-path=\"url(#%s)\"/></g>\n",
		p.clipAttr(), d, paint, p.num(2*width), id)
	return nil
}

func (p *Player) InvertRgn(*record.PaintRgn) error {
	p.drop(record.EMRInvertRgn, "color inversion is not supported")
	return nil
}

func (p *Player) GradientFill(r *record.GradientFill) error {
	if p.ctx.Drawing.InPath {
		return nil
	}
	for _, obj := range r.Objects {
		switch obj := obj.(type) {
		case gdi.GradientRect:
			p.gradientRect(r.Mode, r.Vertices[obj.UpperLeft], r.Vertices[obj.LowerRight])
		case gdi.GradientTriangle:
			p.gradientTriangle(r.Vertices[obj.Vertex1], r.Vertices[obj.Vertex2], r.Vertices[obj.Vertex3])
		}
	}
	return nil
}

func (p *Player) gradientRect(mode gdi.GradientFillMode, ul, lr gdi.TriVertex) {
	a := p.dev(vecOf(ul.X, ul.Y))
	b := p.dev(vecOf(lr.X, ul.Y))
	if mode == gdi.GradientFillRectV {
		b = p.dev(vecOf(ul.X, lr.Y))
	}
	id := p.define("g",
		`<linearGradient id="%[1]s" gradientUnits="userSpaceOnUse" x1="%[2]s" y1="%[3]s" x2="%[4]s" y2="%[5]s"><stop offset="0" stop-color="%[6]s"/><stop offset="1" stop-color="%[7]s"/></linearGradient>`,
		p.num(a.X), p.num(a.Y), p.num(b.X), p.num(b.Y), ul.Color().Hex(), lr.Color().Hex())

	w := p.newPath()
	w.MoveTo(p.dev(vecOf(ul.X, ul.Y)))
	w.LineTo(p.dev(vecOf(lr.X, ul.Y)))
	w.LineTo(p.dev(vecOf(lr.X, lr.Y)))
	w.LineTo(p.dev(vecOf(ul.X, lr.Y)))
	w.Close()
	fmt.Fprintf(&p.body, "<path d=\"%s\" fill=\"url(#%s)\"%s/>\n", w.String(), id, p.clipAttr())
}

// gradientTriangle fills a triangle with the mean of the vertex colors.
// SVG has no gradients with three colors.
func (p *Player) gradientTriangle(vs ...gdi.TriVertex) {
	var r, g, b int
	w := p.newPath()
	for i, v := range vs {
		pt := p.dev(vecOf(v.X, v.Y))
		if i == 0 {
			w.MoveTo(pt)
		} else {
			w.LineTo(pt)
		}
		c := v.Color()
		r += int(c.Red)
		g += int(c.Green)
		b += int(c.Blue)
	}
	w.Close()
	n := len(vs)
	c := gdi.RGB(uint8(r/n), uint8(g/n), uint8(b/n))
	fmt.Fprintf(&p.body, "<path d=\"%s\" fill=\"%s\"%s/>\n", w.String(), c.Hex(), p.clipAttr())
}

func (p *Player) GLSRecord(*record.GLSRecord) error {
	p.drop(record.EMRGLSRecord, "OpenGL records are not supported")
	return nil
}

func (p *Player) GLSBoundedRecord(*record.GLSBoundedRecord) error {
	p.drop(record.EMRGLSBoundedRecord, "OpenGL records are not supported")
	return nil
}

func (p *Player) SetICMProfileA(r *record.SetICMProfile) error {
	p.checkProfile(r.Name, r.Data)
	return nil
}

func (p *Player) SetICMProfileW(r *record.SetICMProfile) error {
	p.checkProfile(r.Name, r.Data)
	return nil
}

func (p *Player) ColorMatchToProfileW(r *record.ColorMatchToProfileW) error {
	p.checkProfile(r.Name, r.Data)
	return nil
}

// checkProfile logs color profiles, which are not used for the output.
func (p *Player) checkProfile(name string, data []byte) {
	if len(data) == 0 {
		p.logger.Debug("linked ICM profile ignored", "name", name)
		return
	}
	prof, err := icc.Decode(data)
	if err != nil {
		p.logger.Warn("unsupported ICM profile", "name", name, "error", err)
		return
	}
	p.logger.Info("ICM profile ignored", "name", name,
		"components", prof.ColorSpace.NumComponents())
}
