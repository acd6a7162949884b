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
	"math"
	"strings"

	"seehuhn.de/go/geom/vec"
)

// pathWriter builds the "d" attribute of an SVG path element.
type pathWriter struct {
	b    strings.Builder
	prec int
}

func (w *pathWriter) MoveTo(p vec.Vec2) {
	w.cmd('M', p)
}

func (w *pathWriter) LineTo(p vec.Vec2) {
	w.cmd('L', p)
}

func (w *pathWriter) CubeTo(p1, p2, p3 vec.Vec2) {
	w.cmd('C', p1, p2, p3)
}

func (w *pathWriter) Close() {
	if w.b.Len() > 0 {
		w.b.WriteString("Z")
	}
}

// Append adds the commands of another path.
func (w *pathWriter) Append(d string) {
	if d == "" {
		return
	}
	if w.b.Len() > 0 {
		w.b.WriteByte(' ')
	}
	w.b.WriteString(d)
}

func (w *pathWriter) Empty() bool {
	return w.b.Len() == 0
}

func (w *pathWriter) Reset() {
	w.b.Reset()
}

func (w *pathWriter) String() string {
	return w.b.String()
}

func (w *pathWriter) cmd(c byte, pts ...vec.Vec2) {
	if w.b.Len() > 0 {
		w.b.WriteByte(' ')
	}
	w.b.WriteByte(c)
	for i, p := range pts {
		if i > 0 {
			w.b.WriteByte(' ')
		}
		w.b.WriteString(formatNum(p.X, w.prec))
		w.b.WriteByte(',')
		w.b.WriteString(formatNum(p.Y, w.prec))
	}
}

// ellipse describes an axis-parallel ellipse in logical coordinates.
type ellipse struct {
	c      vec.Vec2
	rx, ry float64
}

// at returns the point of the ellipse with parameter t.
func (e ellipse) at(t float64) vec.Vec2 {
	return vec.Vec2{X: e.c.X + e.rx*math.Cos(t), Y: e.c.Y + e.ry*math.Sin(t)}
}

// param returns the parameter of the ray from the center through p.
func (e ellipse) param(p vec.Vec2) float64 {
	if e.rx == 0 || e.ry == 0 {
		return 0
	}
	return math.Atan2((p.Y-e.c.Y)/e.ry, (p.X-e.c.X)/e.rx)
}

// arc appends cubic Bézier segments approximating the part of the ellipse
// between parameters t0 and t0+sweep.  The points are mapped through tr.
// The path must already be positioned at the start point.
func (e ellipse) arc(w *pathWriter, t0, sweep float64, tr func(vec.Vec2) vec.Vec2) {
	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	if n == 0 {
		return
	}
	h := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(h/4)
	deriv := func(t float64) vec.Vec2 {
		return vec.Vec2{X: -e.rx * math.Sin(t), Y: e.ry * math.Cos(t)}
	}
	for i := range n {
		a := t0 + float64(i)*h
		b := a + h
		p0, p3 := e.at(a), e.at(b)
		d0, d3 := deriv(a), deriv(b)
		p1 := vec.Vec2{X: p0.X + k*d0.X, Y: p0.Y + k*d0.Y}
		p2 := vec.Vec2{X: p3.X - k*d3.X, Y: p3.Y - k*d3.Y}
		w.CubeTo(tr(p1), tr(p2), tr(p3))
	}
}
