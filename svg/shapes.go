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

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/emf/gdi"
	"seehuhn.de/go/emf/record"
)

func vecOf(x, y int32) vec.Vec2 {
	return vec.Vec2{X: float64(x), Y: float64(y)}
}

func pointsL(pts []gdi.PointL) []vec.Vec2 {
	res := make([]vec.Vec2, len(pts))
	for i, pt := range pts {
		res[i] = pt.Vec()
	}
	return res
}

func pointsS(pts []gdi.PointS) []vec.Vec2 {
	res := make([]vec.Vec2, len(pts))
	for i, pt := range pts {
		res[i] = pt.Vec()
	}
	return res
}

// dev maps a point from logical to device coordinates.
func (p *Player) dev(v vec.Vec2) vec.Vec2 {
	return p.ctx.ToDevice(v)
}

func (p *Player) newPath() *pathWriter {
	return &pathWriter{prec: p.opt.Precision}
}

// fromCurrent returns a path for a record which draws from the current
// position.  Inside a path bracket the new segments continue the current
// figure.
func (p *Player) fromCurrent() *pathWriter {
	w := p.newPath()
	if !p.ctx.Drawing.InPath || p.path.Empty() || p.figureClosed {
		w.MoveTo(p.dev(p.ctx.Drawing.CurrentPosition.Vec()))
		p.figureClosed = false
	}
	return w
}

// closed emits a closed shape.
func (p *Player) closed(w *pathWriter) {
	w.Close()
	p.emit(w.String(), true, true)
	if p.ctx.Drawing.InPath {
		p.figureClosed = true
	}
}

func (p *Player) PolyBezier(r *record.Poly) error { p.poly(r.Type, pointsL(r.Points)); return nil }
func (p *Player) Polygon(r *record.Poly) error { p.poly(r.Type, pointsL(r.Points)); return nil }
func (p *Player) Polyline(r *record.Poly) error { p.poly(r.Type, pointsL(r.Points)); return nil }
func (p *Player) PolyBezierTo(r *record.Poly) error { p.poly(r.Type, pointsL(r.Points)); return nil }
func (p *Player) PolylineTo(r *record.Poly) error { p.poly(r.Type, pointsL(r.Points)); return nil }
func (p *Player) PolyBezier16(r *record.Poly16) error { p.poly(r.Type, pointsS(r.Points)); return nil }
func (p *Player) Polygon16(r *record.Poly16) error { p.poly(r.Type, pointsS(r.Points)); return nil }
func (p *Player) Polyline16(r *record.Poly16) error { p.poly(r.Type, pointsS(r.Points)); return nil }

func (p *Player) PolyBezierTo16(r *record.Poly16) error {
	p.poly(r.Type, pointsS(r.Points))
	return nil
}

func (p *Player) PolylineTo16(r *record.Poly16) error {
	p.poly(r.Type, pointsS(r.Points))
	return nil
}

// poly draws the records which consist of a single list of points.
func (p *Player) poly(tp record.Type, pts []vec.Vec2) {
	if len(pts) == 0 {
		return
	}

	var w *pathWriter
	switch tp {
	case record.EMRPolyBezierTo, record.EMRPolyBezierTo16,
		record.EMRPolylineTo, record.EMRPolylineTo16:
		w = p.fromCurrent()
	default:
		w = p.newPath()
		w.MoveTo(p.dev(pts[0]))
		pts = pts[1:]
	}

	switch tp {
	case record.EMRPolyBezier, record.EMRPolyBezier16,
		record.EMRPolyBezierTo, record.EMRPolyBezierTo16:
		for i := 0; i+2 < len(pts); i += 3 {
			w.CubeTo(p.dev(pts[i]), p.dev(pts[i+1]), p.dev(pts[i+2]))
		}
	default:
		for _, pt := range pts {
			w.LineTo(p.dev(pt))
		}
	}

	if tp == record.EMRPolygon || tp == record.EMRPolygon16 {
		p.closed(w)
		return
	}
	p.emit(w.String(), false, true)
}

func (p *Player) PolyPolyline(r *record.PolyPoly) error {
	p.polyPoly(r.Type, r.Counts, pointsL(r.Points))
	return nil
}

func (p *Player) PolyPolygon(r *record.PolyPoly) error {
	p.polyPoly(r.Type, r.Counts, pointsL(r.Points))
	return nil
}

func (p *Player) PolyPolyline16(r *record.PolyPoly16) error {
	p.polyPoly(r.Type, r.Counts, pointsS(r.Points))
	return nil
}

func (p *Player) PolyPolygon16(r *record.PolyPoly16) error {
	p.polyPoly(r.Type, r.Counts, pointsS(r.Points))
	return nil
}

// polyPoly draws several polylines or polygons as a single path.
func (p *Player) polyPoly(tp record.Type, counts []uint32, pts []vec.Vec2) {
	closed := tp == record.EMRPolyPolygon || tp == record.EMRPolyPolygon16
	w := p.newPath()
	pos := 0
	for _, n := range counts {
		end := pos + int(n)
		if n == 0 || end > len(pts) {
			break
		}
		w.MoveTo(p.dev(pts[pos]))
		for _, pt := range pts[pos+1 : end] {
			w.LineTo(p.dev(pt))
		}
		if closed {
			w.Close()
		}
		pos = end
	}
	if closed {
		p.closed(w)
		return
	}
	p.emit(w.String(), false, true)
}

func (p *Player) Rectangle(r *record.Box) error {
	b := r.Box
	w := p.newPath()
	w.MoveTo(p.dev(vecOf(b.Left, b.Top)))
	w.LineTo(p.dev(vecOf(b.Right, b.Top)))
	w.LineTo(p.dev(vecOf(b.Right, b.Bottom)))
	w.LineTo(p.dev(vecOf(b.Left, b.Bottom)))
	p.closed(w)
	return nil
}

func boxEllipse(b gdi.RectL) ellipse {
	return ellipse{
		c:  vec.Vec2{X: (float64(b.Left) + float64(b.Right)) / 2, Y: (float64(b.Top) + float64(b.Bottom)) / 2},
		rx: math.Abs(float64(b.Right)-float64(b.Left)) / 2,
		ry: math.Abs(float64(b.Bottom)-float64(b.Top)) / 2,
	}
}

func (p *Player) Ellipse(r *record.Box) error {
	e := boxEllipse(r.Box)
	w := p.newPath()
	w.MoveTo(p.dev(e.at(0)))
	e.arc(w, 0, 2*math.Pi, p.dev)
	p.closed(w)
	return nil
}

func (p *Player) RoundRect(r *record.RoundRect) error {
	b := r.Box
	x0, x1 := float64(min(b.Left, b.Right)), float64(max(b.Left, b.Right))
	y0, y1 := float64(min(b.Top, b.Bottom)), float64(max(b.Top, b.Bottom))
	rx := min(math.Abs(float64(r.Corner.CX))/2, (x1-x0)/2)
	ry := min(math.Abs(float64(r.Corner.CY))/2, (y1-y0)/2)

	corner := func(cx, cy float64) ellipse {
		return ellipse{c: vec.Vec2{X: cx, Y: cy}, rx: rx, ry: ry}
	}
	w := p.newPath()
	w.MoveTo(p.dev(vec.Vec2{X: x0 + rx, Y: y0}))
	w.LineTo(p.dev(vec.Vec2{X: x1 - rx, Y: y0}))
	corner(x1-rx, y0+ry).arc(w, -math.Pi/2, math.Pi/2, p.dev)
	w.LineTo(p.dev(vec.Vec2{X: x1, Y: y1 - ry}))
	corner(x1-rx, y1-ry).arc(w, 0, math.Pi/2, p.dev)
	w.LineTo(p.dev(vec.Vec2{X: x0 + rx, Y: y1}))
	corner(x0+rx, y1-ry).arc(w, math.Pi/2, math.Pi/2, p.dev)
	w.LineTo(p.dev(vec.Vec2{X: x0, Y: y0 + ry}))
	corner(x0+rx, y0+ry).arc(w, math.Pi, math.Pi/2, p.dev)
	p.closed(w)
	return nil
}

// arcSweep returns the signed parameter difference for an arc from t0 to
// t1 in the given direction.  Equal angles give a full ellipse.
func arcSweep(t0, t1 float64, dir gdi.ArcDirection) float64 {
	if dir == gdi.Clockwise {
		d := math.Mod(t1-t0, 2*math.Pi)
		if d <= 1e-9 {
			d += 2 * math.Pi
		}
		return d
	}
	d := math.Mod(t0-t1, 2*math.Pi)
	if d <= 1e-9 {
		d += 2 * math.Pi
	}
	return -d
}

func (p *Player) Arc(r *record.ArcBox) error { p.arcBox(r); return nil }
func (p *Player) ArcTo(r *record.ArcBox) error { p.arcBox(r); return nil }
func (p *Player) Chord(r *record.ArcBox) error { p.arcBox(r); return nil }
func (p *Player) Pie(r *record.ArcBox) error { p.arcBox(r); return nil }

func (p *Player) arcBox(r *record.ArcBox) {
	e := boxEllipse(r.Box)
	t0 := e.param(r.Start.Vec())
	t1 := e.param(r.End.Vec())
	sweep := arcSweep(t0, t1, p.ctx.Drawing.ArcDirection)

	var w *pathWriter
	switch r.Type {
	case record.EMRArcTo:
		w = p.fromCurrent()
		w.LineTo(p.dev(e.at(t0)))
	case record.EMRPie:
		w = p.newPath()
		w.MoveTo(p.dev(e.c))
		w.LineTo(p.dev(e.at(t0)))
	default:
		w = p.newPath()
		w.MoveTo(p.dev(e.at(t0)))
	}
	e.arc(w, t0, sweep, p.dev)

	switch r.Type {
	case record.EMRChord, record.EMRPie:
		p.closed(w)
	default:
		p.emit(w.String(), false, true)
	}
}

func (p *Player) AngleArc(r *record.AngleArc) error {
	rad := float64(r.Radius)
	e := ellipse{c: r.Center.Vec(), rx: rad, ry: rad}

	// The angles are measured counterclockwise, with the y-axis pointing
	// down.
	t0 := -float64(r.StartAngle) * math.Pi / 180
	sweep := -float64(r.SweepAngle) * math.Pi / 180

	w := p.fromCurrent()
	w.LineTo(p.dev(e.at(t0)))
	e.arc(w, t0, sweep, p.dev)
	p.emit(w.String(), false, true)
	return nil
}

func (p *Player) LineTo(r *record.LineTo) error {
	w := p.fromCurrent()
	w.LineTo(p.dev(r.Point.Vec()))
	p.emit(w.String(), false, true)
	return nil
}

func (p *Player) MoveToEx(r *record.MoveToEx) error {
	if p.ctx.Drawing.InPath {
		w := p.newPath()
		w.MoveTo(p.dev(r.Point.Vec()))
		p.path.Append(w.String())
		p.figureClosed = false
	}
	return nil
}

func (p *Player) PolyDraw(r *record.PolyDraw) error {
	p.polyDraw(pointsL(r.Points), r.Types)
	return nil
}

func (p *Player) PolyDraw16(r *record.PolyDraw16) error {
	p.polyDraw(pointsS(r.Points), r.Types)
	return nil
}

func (p *Player) polyDraw(pts []vec.Vec2, types []gdi.PolyDrawType) {
	w := p.fromCurrent()
	n := min(len(pts), len(types))
	for i := 0; i < n; i++ {
		tp := types[i]
		switch tp.Kind() {
		case gdi.PTMoveTo:
			w.MoveTo(p.dev(pts[i]))
		case gdi.PTLineTo:
			w.LineTo(p.dev(pts[i]))
		case gdi.PTBezierTo:
			if i+2 >= n {
				i = n
				continue
			}
			w.CubeTo(p.dev(pts[i]), p.dev(pts[i+1]), p.dev(pts[i+2]))
			i += 2
			tp = types[i]
		}
		if tp&gdi.PTCloseFigure != 0 {
			w.Close()
		}
	}
	p.emit(w.String(), false, true)
}

func (p *Player) SetPixelV(r *record.SetPixelV) error {
	if p.ctx.Drawing.InPath {
		return nil
	}
	d := p.dev(r.Pixel.Vec())
	fmt.Fprintf(&p.body, "<rect x=\"%s\" y=\"%s\" width=\"1\" height=\"1\" fill=\"%s\"%s/>\n",
		p.num(d.X), p.num(d.Y), r.Color.Hex(), p.clipAttr())
	return nil
}

func (p *Player) ExtFloodFill(*record.ExtFloodFill) error {
	p.drop(record.EMRExtFloodFill, "flood fill needs the rendered image")
	return nil
}

// == path brackets ==========================================================

func (p *Player) BeginPath(*record.NoParams) error {
	p.path.Reset()
	p.widened = false
	p.figureClosed = false
	return nil
}

func (p *Player) AbortPath(*record.NoParams) error {
	p.path.Reset()
	return nil
}

func (p *Player) CloseFigure(*record.NoParams) error {
	if p.ctx.Drawing.InPath {
		p.path.Close()
		p.figureClosed = true
	}
	return nil
}

func (p *Player) WidenPath(*record.NoParams) error {
	p.widened = true
	return nil
}

func (p *Player) FillPath(*record.PathBounds) error {
	p.paintPath(true, false)
	return nil
}

func (p *Player) StrokePath(*record.PathBounds) error {
	p.paintPath(false, true)
	return nil
}

func (p *Player) StrokeAndFillPath(*record.PathBounds) error {
	p.paintPath(true, true)
	return nil
}

// paintPath draws the path of the last path bracket.
func (p *Player) paintPath(fill, stroke bool) {
	if !p.ctx.Drawing.HasPath {
		return
	}
	d := p.path.String()
	p.path.Reset()
	if p.widened {
		// the outline of a widened path is approximated by a stroke
		fill, stroke = false, true
	}
	p.emit(d, fill, stroke)
}

func (p *Player) SelectClipPath(r *record.SelectClipPath) error {
	if !p.ctx.Drawing.HasPath {
		return nil
	}
	p.clipPath = p.path.String()
	p.clipRule = "evenodd"
	if p.ctx.Drawing.PolyFillMode == gdi.Winding {
		p.clipRule = "nonzero"
	}
	p.path.Reset()
	return nil
}

// == saved states ===========================================================

func (p *Player) SaveDC(*record.NoParams) error {
	p.saved = append(p.saved, clipState{path: p.clipPath, rule: p.clipRule})
	return nil
}

func (p *Player) RestoreDC(r *record.RestoreDC) error {
	rel := int(r.SavedDC)
	if rel >= 0 || -rel > len(p.saved) {
		return nil
	}
	pos := len(p.saved) + rel
	p.clipPath, p.clipRule = p.saved[pos].path, p.saved[pos].rule
	p.saved = p.saved[:pos]
	return nil
}
