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

	"golang.org/x/exp/slices"

	"seehuhn.de/go/emf/gdi"
)

// Clip describes a clipping region in device coordinates.
//
// The region is tracked approximately: Bounds is a rectangle which contains
// the region, Rects optionally lists the rectangles which make up the
// region, and Excluded lists rectangles which have been removed.  Regions
// constructed from a path are only known to the renderer, which keeps track
// of the path geometry.
type Clip struct {
	Bounds   gdi.RectL
	Rects    []gdi.RectL // nil means all of Bounds
	Excluded []gdi.RectL

	// Path is set if a path was combined into the region.  PathMode is the
	// mode which was used to combine the path.
	Path     bool
	PathMode gdi.RegionMode
}

// Unbounded is used as the bounds of clipping regions which do not restrict
// drawing in any direction.
var Unbounded = gdi.RectL{
	Left:   math.MinInt32,
	Top:    math.MinInt32,
	Right:  math.MaxInt32,
	Bottom: math.MaxInt32,
}

// Clone returns a deep copy of the clipping region.
func (c *Clip) Clone() *Clip {
	if c == nil {
		return nil
	}
	res := *c
	res.Rects = slices.Clone(c.Rects)
	res.Excluded = slices.Clone(c.Excluded)
	return &res
}

// Offset moves the clipping region by (dx, dy).
func (c *Clip) Offset(dx, dy int32) {
	if c.Bounds != Unbounded {
		c.Bounds = c.Bounds.Offset(dx, dy)
	}
	for i, r := range c.Rects {
		c.Rects[i] = r.Offset(dx, dy)
	}
	for i, r := range c.Excluded {
		c.Excluded[i] = r.Offset(dx, dy)
	}
}

// combineClip combines the clipping region cur with the region given by
// the rectangles rects, which are bounded by bounds.  A nil result means
// that drawing is not clipped.
func combineClip(cur *Clip, mode gdi.RegionMode, bounds gdi.RectL, rects []gdi.RectL) *Clip {
	switch mode {
	case gdi.RgnCopy:
		return &Clip{Bounds: bounds, Rects: slices.Clone(rects)}

	case gdi.RgnAnd:
		if cur == nil {
			return &Clip{Bounds: bounds, Rects: slices.Clone(rects)}
		}
		res := cur.Clone()
		res.Bounds = res.Bounds.Intersect(bounds)
		if rects != nil {
			res.Rects = slices.Clone(rects)
		}
		return res

	case gdi.RgnOr, gdi.RgnXor:
		if cur == nil {
			return nil
		}
		res := cur.Clone()
		res.Bounds = res.Bounds.Union(bounds)
		if res.Rects != nil {
			if rects == nil {
				rects = []gdi.RectL{bounds}
			}
			res.Rects = append(res.Rects, rects...)
		}
		return res

	case gdi.RgnDiff:
		res := cur.Clone()
		if res == nil {
			res = &Clip{Bounds: Unbounded}
		}
		if rects == nil {
			rects = []gdi.RectL{bounds}
		}
		res.Excluded = append(res.Excluded, rects...)
		return res
	}
	return cur
}

// intersectClip returns the intersection of two clipping regions.
func intersectClip(a, b *Clip) *Clip {
	switch {
	case a == nil:
		return b.Clone()
	case b == nil:
		return a.Clone()
	}
	res := a.Clone()
	res.Bounds = res.Bounds.Intersect(b.Bounds)
	if res.Rects == nil {
		res.Rects = slices.Clone(b.Rects)
	}
	res.Excluded = append(res.Excluded, b.Excluded...)
	res.Path = res.Path || b.Path
	return res
}

// EffectiveClip returns the region which limits drawing: the intersection
// of the clipping region and the meta region.  The result is nil if
// drawing is not clipped.
func (c *Context) EffectiveClip() *Clip {
	if c.Regions.MetaClip == nil {
		return c.Regions.Clip
	}
	return intersectClip(c.Regions.MetaClip, c.Regions.Clip)
}
