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
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/icc"

	"seehuhn.de/go/emf/gdi"
	"seehuhn.de/go/emf/record"
)

func TestObjectTable(t *testing.T) {
	for _, n := range []int{0, 1, 7} {
		tab := NewObjectTable(n)
		if tab.Len() != n+1 {
			t.Errorf("NewObjectTable(%d) has %d slots", n, tab.Len())
		}
		if _, ok := tab.Get(0).(Self); !ok {
			t.Errorf("slot 0 holds %s", tab.Get(0).Kind())
		}
	}

	tab := NewObjectTable(3)
	tab.Set(0, &Brush{})
	if _, ok := tab.Get(0).(Self); !ok {
		t.Error("slot 0 was overwritten")
	}

	tab.Set(2, &Pen{})
	if _, ok := tab.Get(2).(*Pen); !ok {
		t.Errorf("slot 2 holds %s", tab.Get(2).Kind())
	}
	tab.Delete(2)
	if _, ok := tab.Get(2).(Empty); !ok {
		t.Errorf("deleted slot holds %s", tab.Get(2).Kind())
	}

	if tab.Contains(0) || !tab.Contains(3) || tab.Contains(4) {
		t.Error("wrong result from Contains")
	}
}

func TestObjectTableGetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("out of range Get did not panic")
		}
	}()
	NewObjectTable(2).Get(3)
}

func TestTransformation(t *testing.T) {
	c := New(nil)
	c.Regions.Viewport.Extent = gdi.SizeL{CX: 2000, CY: 1000}
	c.Regions.Window.Extent = gdi.SizeL{CX: 1000, CY: 1000}
	c.ApplyTransformation()

	if c.XForm[0] != 2 || c.XForm[3] != 1 {
		t.Errorf("scale is (%g, %g), want (2, 1)", c.XForm[0], c.XForm[3])
	}
	if c.XForm[1] != 0 || c.XForm[2] != 0 || c.XForm[4] != 0 || c.XForm[5] != 0 {
		t.Errorf("transformation is not a pure scaling: %v", c.XForm)
	}

	got := c.TransformPointL(gdi.PointL{X: 100, Y: 50})
	if want := (gdi.PointL{X: 200, Y: 50}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	gotS := c.TransformPointS(gdi.PointS{X: 100, Y: 50})
	if want := (gdi.PointS{X: 200, Y: 50}); gotS != want {
		t.Errorf("got %v, want %v", gotS, want)
	}
}

func TestTransformTruncates(t *testing.T) {
	c := New(nil)
	c.SetScale(0.5, -0.5)
	got := c.TransformPointL(gdi.PointL{X: 3, Y: 3})
	if want := (gdi.PointL{X: 1, Y: -1}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestExtentRecords(t *testing.T) {
	c := New(nil)
	recs := []record.Record{
		&record.SetMapMode{Mode: gdi.MapModeAnisotropic},
		&record.SetExtent{Type: record.EMRSetWindowExtEx, Extent: gdi.SizeL{CX: 1000, CY: 1000}},
		&record.SetExtent{Type: record.EMRSetViewportExtEx, Extent: gdi.SizeL{CX: 2000, CY: 1000}},
		&record.SetOrigin{Type: record.EMRSetViewportOrgEx, Origin: gdi.PointL{X: 10, Y: 20}},
		&record.SetOrigin{Type: record.EMRSetWindowOrgEx, Origin: gdi.PointL{X: 100, Y: 0}},
	}
	for _, r := range recs {
		if err := c.Apply(r); err != nil {
			t.Fatal(err)
		}
	}

	// (200, 50) - window origin = (100, 50), scaled = (200, 50),
	// plus viewport origin = (210, 70)
	got := c.ToDevice(gdi.PointL{X: 200, Y: 50}.Vec())
	if got.X != 210 || got.Y != 70 {
		t.Errorf("got %v, want (210, 70)", got)
	}

	err := c.Apply(&record.ScaleExtent{Type: record.EMRScaleWindowExtEx, XNum: 1, XDenom: 2, YNum: 1, YDenom: 1})
	if err != nil {
		t.Fatal(err)
	}
	if c.Regions.Window.Extent != (gdi.SizeL{CX: 500, CY: 1000}) {
		t.Errorf("window extent %v", c.Regions.Window.Extent)
	}
	if c.XForm[0] != 4 {
		t.Errorf("x scale %g, want 4", c.XForm[0])
	}
}

func TestIsotropic(t *testing.T) {
	// ApplyTransformation itself does not depend on the mapping mode
	c := New(nil)
	c.Drawing.MapMode = gdi.MapModeIsotropic
	c.Regions.Viewport.Extent = gdi.SizeL{CX: 300, CY: -100}
	c.Regions.Window.Extent = gdi.SizeL{CX: 100, CY: 100}
	c.ApplyTransformation()
	if c.XForm[0] != 3 || c.XForm[3] != -1 {
		t.Errorf("scale is (%g, %g), want (3, -1)", c.XForm[0], c.XForm[3])
	}

	cases := []struct {
		name string
		recs []record.Record
		want gdi.SizeL
	}{
		{
			name: "ShrinkX",
			recs: []record.Record{
				&record.SetMapMode{Mode: gdi.MapModeIsotropic},
				&record.SetExtent{Type: record.EMRSetWindowExtEx, Extent: gdi.SizeL{CX: 100, CY: 100}},
				&record.SetExtent{Type: record.EMRSetViewportExtEx, Extent: gdi.SizeL{CX: 300, CY: -100}},
			},
			want: gdi.SizeL{CX: 100, CY: -100},
		},
		{
			name: "ShrinkY",
			recs: []record.Record{
				&record.SetMapMode{Mode: gdi.MapModeIsotropic},
				&record.SetExtent{Type: record.EMRSetWindowExtEx, Extent: gdi.SizeL{CX: 200, CY: 100}},
				&record.SetExtent{Type: record.EMRSetViewportExtEx, Extent: gdi.SizeL{CX: 200, CY: 400}},
			},
			want: gdi.SizeL{CX: 200, CY: 100},
		},
		{
			name: "ModeSetLast",
			recs: []record.Record{
				&record.SetExtent{Type: record.EMRSetWindowExtEx, Extent: gdi.SizeL{CX: 100, CY: 100}},
				&record.SetExtent{Type: record.EMRSetViewportExtEx, Extent: gdi.SizeL{CX: -50, CY: 200}},
				&record.SetMapMode{Mode: gdi.MapModeIsotropic},
			},
			want: gdi.SizeL{CX: -50, CY: 50},
		},
		{
			name: "Anisotropic",
			recs: []record.Record{
				&record.SetMapMode{Mode: gdi.MapModeAnisotropic},
				&record.SetExtent{Type: record.EMRSetWindowExtEx, Extent: gdi.SizeL{CX: 100, CY: 100}},
				&record.SetExtent{Type: record.EMRSetViewportExtEx, Extent: gdi.SizeL{CX: 300, CY: -100}},
			},
			want: gdi.SizeL{CX: 300, CY: -100},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := New(nil)
			for _, r := range tc.recs {
				if err := c.Apply(r); err != nil {
					t.Fatal(err)
				}
			}
			if got := c.Regions.Viewport.Extent; got != tc.want {
				t.Errorf("viewport extent %v, want %v", got, tc.want)
			}
			win := c.Regions.Window.Extent
			sx := float64(tc.want.CX) / float64(win.CX)
			sy := float64(tc.want.CY) / float64(win.CY)
			if c.XForm[0] != sx || c.XForm[3] != sy {
				t.Errorf("scale is (%g, %g), want (%g, %g)", c.XForm[0], c.XForm[3], sx, sy)
			}
		})
	}
}

func TestWorldTransform(t *testing.T) {
	c := New(nil)
	shift := gdi.XForm{M11: 1, M22: 1, Dx: 10}
	double := gdi.XForm{M11: 2, M22: 2}

	c.Apply(&record.ModifyWorldTransform{XForm: shift, Mode: gdi.MWTSet})
	c.Apply(&record.ModifyWorldTransform{XForm: double, Mode: gdi.MWTLeftMultiply})
	// scale first, then shift
	got := c.ToDevice(gdi.PointL{X: 1, Y: 1}.Vec())
	if got.X != 12 || got.Y != 2 {
		t.Errorf("left multiply: got %v, want (12, 2)", got)
	}

	c.Apply(&record.ModifyWorldTransform{Mode: gdi.MWTIdentity})
	c.Apply(&record.SetWorldTransform{XForm: shift})
	c.Apply(&record.ModifyWorldTransform{XForm: double, Mode: gdi.MWTRightMultiply})
	// shift first, then scale
	got = c.ToDevice(gdi.PointL{X: 1, Y: 1}.Vec())
	if got.X != 22 || got.Y != 2 {
		t.Errorf("right multiply: got %v, want (22, 2)", got)
	}
}

func TestFixedMapMode(t *testing.T) {
	c := New(&record.Header{
		Handles:     1,
		Device:      gdi.SizeL{CX: 1000, CY: 500},
		Millimeters: gdi.SizeL{CX: 100, CY: 50},
	})
	if err := c.Apply(&record.SetMapMode{Mode: gdi.MapModeLoMetric}); err != nil {
		t.Fatal(err)
	}
	// 10 pixels per mm, 10 logical units per mm, y-axis up
	got := c.TransformPointL(gdi.PointL{X: 100, Y: 100})
	if want := (gdi.PointL{X: 100, Y: -100}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSaveRestore(t *testing.T) {
	c := New(nil)
	c.Apply(&record.SetColor{Type: record.EMRSetTextColor, Color: gdi.RGB(1, 2, 3)})
	c.Apply(&record.NoParams{Type: record.EMRSaveDC})
	c.Apply(&record.SetColor{Type: record.EMRSetTextColor, Color: gdi.RGB(4, 5, 6)})
	c.Apply(&record.SetLinkedUFIs{UFIs: []gdi.UniversalFontID{{Checksum: 1}}})
	c.Apply(&record.NoParams{Type: record.EMRSaveDC})
	c.Apply(&record.SetColor{Type: record.EMRSetTextColor, Color: gdi.RGB(7, 8, 9)})
	c.SetScale(3, 3)

	if c.Depth() != 2 {
		t.Fatalf("depth %d, want 2", c.Depth())
	}

	err := c.Apply(&record.RestoreDC{SavedDC: -2})
	if err != nil {
		t.Fatal(err)
	}
	if c.Drawing.TextColor != gdi.RGB(1, 2, 3) {
		t.Errorf("text color %v after restore", c.Drawing.TextColor)
	}
	if c.Text.LinkedUFIs != nil {
		t.Errorf("linked UFIs %v after restore", c.Text.LinkedUFIs)
	}
	if c.XForm[0] != 1 {
		t.Errorf("xform %v after restore", c.XForm)
	}
	if c.Depth() != 0 {
		t.Errorf("depth %d after restore, want 0", c.Depth())
	}

	err = c.Apply(&record.RestoreDC{SavedDC: -1})
	if !errors.Is(err, ErrInvalidRecord) {
		t.Errorf("restore with empty stack: got %v", err)
	}

	c.Save()
	err = c.Apply(&record.RestoreDC{SavedDC: math.MinInt32})
	if !errors.Is(err, ErrInvalidRecord) {
		t.Errorf("restore with index %d: got %v", math.MinInt32, err)
	}
	if c.Depth() != 1 {
		t.Errorf("depth %d after failed restore, want 1", c.Depth())
	}
}

func TestSaveIsDeepCopy(t *testing.T) {
	c := New(nil)
	c.Apply(&record.ClipRect{Type: record.EMRIntersectClipRect, Clip: gdi.RectL{Right: 10, Bottom: 10}})
	c.Save()
	c.Apply(&record.OffsetClipRgn{Offset: gdi.PointL{X: 5, Y: 5}})
	c.Restore(-1)
	if d := cmp.Diff(&Clip{Bounds: gdi.RectL{Right: 10, Bottom: 10}}, c.Regions.Clip); d != "" {
		t.Error(d)
	}
}

func TestObjects(t *testing.T) {
	c := New(&record.Header{Handles: 4})
	red := gdi.RGB(0xFF, 0, 0)
	recs := []record.Record{
		&record.CreatePen{Index: 1, Pen: gdi.LogPen{Style: gdi.PSSolid, Width: gdi.PointL{X: 3}, Color: red}},
		&record.CreateBrushIndirect{Index: 2, Brush: gdi.LogBrushEx{Style: gdi.BSSolid, Color: red}},
		&record.ObjectIndex{Type: record.EMRSelectObject, Index: 1},
		&record.ObjectIndex{Type: record.EMRSelectObject, Index: 2},
		&record.ObjectIndex{Type: record.EMRDeleteObject, Index: 2},
	}
	for _, r := range recs {
		if err := c.Apply(r); err != nil {
			t.Fatal(err)
		}
	}

	if c.Selected.Pen.Pen.Width != 3 {
		t.Errorf("pen width %d, want 3", c.Selected.Pen.Pen.Width)
	}
	if d := cmp.Diff(gdi.SolidBrush{Color: red}, c.Selected.Brush.Brush); d != "" {
		t.Error(d)
	}
	if _, ok := c.Objects.Get(2).(Empty); !ok {
		t.Error("brush was not deleted")
	}

	// selecting an empty slot
	err := c.Apply(&record.ObjectIndex{Type: record.EMRSelectObject, Index: 2})
	if !errors.Is(err, ErrUnexpectedGraphicsObject) {
		t.Errorf("select deleted object: got %v", err)
	}

	// index beyond the table
	err = c.Apply(&record.CreatePen{Index: 9})
	if !errors.Is(err, ErrInvalidRecord) {
		t.Errorf("create beyond table: got %v", err)
	}

	// stock objects do not use the table
	err = c.Apply(&record.ObjectIndex{Type: record.EMRSelectObject, Index: uint32(gdi.NullBrush)})
	if err != nil {
		t.Fatal(err)
	}
	if c.Selected.Brush.Brush != nil {
		t.Errorf("null brush is %v", c.Selected.Brush.Brush)
	}
}

func TestPalette(t *testing.T) {
	c := New(&record.Header{Handles: 2})
	pal := &gdi.LogPalette{Entries: make([]gdi.PaletteEntry, 2)}
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	must(c.Apply(&record.CreatePalette{Index: 1, Palette: pal}))
	must(c.Apply(&record.ObjectIndex{Type: record.EMRSelectPalette, Index: 1}))
	must(c.Apply(&record.SetPaletteEntries{
		Index:   1,
		Start:   1,
		Entries: []gdi.PaletteEntry{{Red: 9}},
	}))

	if c.Selected.Palette.Palette.Entries[1].Red != 9 {
		t.Error("selected palette was not updated")
	}
	if pal.Entries[1].Red != 0 {
		t.Error("palette was modified in place")
	}

	err := c.Apply(&record.SetPaletteEntries{Index: 1, Start: 2, Entries: []gdi.PaletteEntry{{}}})
	if !errors.Is(err, ErrInvalidRecord) {
		t.Errorf("entries outside palette: got %v", err)
	}

	must(c.Apply(&record.ResizePalette{Index: 1, NumEntries: 5}))
	if n := len(c.Selected.Palette.Palette.Entries); n != 5 {
		t.Errorf("palette has %d entries after resize", n)
	}

	err = c.Apply(&record.ResizePalette{Index: 1, NumEntries: 1 << 26})
	if !errors.Is(err, ErrInvalidRecord) {
		t.Errorf("oversized palette: got %v", err)
	}
	if n := len(c.Selected.Palette.Palette.Entries); n != 5 {
		t.Errorf("palette has %d entries after failed resize", n)
	}

	err = c.Apply(&record.ObjectIndex{Type: record.EMRSelectObject, Index: 1})
	if !errors.Is(err, ErrUnexpectedGraphicsObject) {
		t.Errorf("select palette as object: got %v", err)
	}
}

func TestStockObjects(t *testing.T) {
	count := 0
	for id := gdi.WhiteBrush; id <= gdi.DCPen; id++ {
		obj, err := FromStock(id, gdi.RGB(1, 1, 1), gdi.RGB(2, 2, 2))
		if !id.IsValid() {
			if err == nil {
				t.Errorf("%s: no error", id)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %v", id, err)
			continue
		}
		count++
		if obj == nil {
			t.Errorf("%s: nil object", id)
		}
	}
	if count != 19 {
		t.Errorf("%d stock objects, want 19", count)
	}

	obj, _ := FromStock(gdi.DCBrush, gdi.RGB(1, 1, 1), gdi.RGB(2, 2, 2))
	if d := cmp.Diff(solidBrush(gdi.RGB(1, 1, 1)), obj); d != "" {
		t.Error(d)
	}
	obj, _ = FromStock(gdi.DCPen, gdi.RGB(1, 1, 1), gdi.RGB(2, 2, 2))
	if d := cmp.Diff(solidPen(gdi.RGB(2, 2, 2)), obj); d != "" {
		t.Error(d)
	}
}

func TestClip(t *testing.T) {
	c := New(nil)
	c.SetScale(2, 2)
	c.Apply(&record.ClipRect{Type: record.EMRIntersectClipRect, Clip: gdi.RectL{Right: 10, Bottom: 10}})
	c.Apply(&record.ClipRect{Type: record.EMRIntersectClipRect, Clip: gdi.RectL{Left: 5, Top: 5, Right: 20, Bottom: 20}})
	c.Apply(&record.ClipRect{Type: record.EMRExcludeClipRect, Clip: gdi.RectL{Left: 6, Top: 6, Right: 7, Bottom: 7}})

	want := &Clip{
		Bounds:   gdi.RectL{Left: 10, Top: 10, Right: 20, Bottom: 20},
		Excluded: []gdi.RectL{{Left: 12, Top: 12, Right: 14, Bottom: 14}},
	}
	if d := cmp.Diff(want, c.Regions.Clip); d != "" {
		t.Error(d)
	}

	c.Apply(&record.NoParams{Type: record.EMRSetMetaRgn})
	if c.Regions.Clip != nil {
		t.Error("clip region not reset by EMR_SETMETARGN")
	}
	if d := cmp.Diff(want, c.Regions.MetaClip); d != "" {
		t.Error(d)
	}

	c.Apply(&record.ExtSelectClipRgn{Mode: gdi.RgnCopy, Region: &gdi.RegionData{
		Header: gdi.RegionDataHeader{CountRects: 1, Bounds: gdi.RectL{Right: 4, Bottom: 4}},
		Rects:  []gdi.RectL{{Right: 4, Bottom: 4}},
	}})
	if c.Regions.Clip == nil || c.Regions.Clip.Bounds != (gdi.RectL{Right: 4, Bottom: 4}) {
		t.Errorf("wrong clip region %v", c.Regions.Clip)
	}
	c.Apply(&record.ExtSelectClipRgn{Mode: gdi.RgnCopy})
	if c.Regions.Clip != nil {
		t.Error("clip region not reset")
	}
	if d := cmp.Diff(want, c.EffectiveClip()); d != "" {
		t.Errorf("effective clip: %s", d)
	}
}

func TestPath(t *testing.T) {
	c := New(nil)
	err := c.Apply(&record.SelectClipPath{Mode: gdi.RgnCopy})
	if !errors.Is(err, ErrInvalidRecord) {
		t.Errorf("clip path without path: got %v", err)
	}

	c.Apply(&record.NoParams{Type: record.EMRBeginPath})
	if !c.Drawing.InPath {
		t.Error("path bracket not open")
	}
	c.Apply(&record.MoveToEx{Point: gdi.PointL{X: 1, Y: 2}})
	c.Apply(&record.Poly16{Type: record.EMRPolylineTo16, Points: []gdi.PointS{{X: 3, Y: 4}, {X: 5, Y: 6}}})
	if c.Drawing.CurrentPosition != (gdi.PointL{X: 5, Y: 6}) {
		t.Errorf("current position %v", c.Drawing.CurrentPosition)
	}
	c.Apply(&record.NoParams{Type: record.EMREndPath})
	if c.Drawing.InPath || !c.Drawing.HasPath {
		t.Error("path bracket not closed")
	}
	if err := c.Apply(&record.SelectClipPath{Mode: gdi.RgnAnd}); err != nil {
		t.Fatal(err)
	}
	if c.Regions.Clip == nil || !c.Regions.Clip.Path || c.Drawing.HasPath {
		t.Error("path not used for clipping")
	}
}

func TestArcEndPoint(t *testing.T) {
	box := gdi.RectL{Left: -10, Top: -5, Right: 10, Bottom: 5}
	cases := []struct {
		p, want gdi.PointL
	}{
		{gdi.PointL{X: 100, Y: 0}, gdi.PointL{X: 10, Y: 0}},
		{gdi.PointL{X: 0, Y: -1}, gdi.PointL{X: 0, Y: -5}},
		{gdi.PointL{X: -3, Y: 0}, gdi.PointL{X: -10, Y: 0}},
	}
	for _, c := range cases {
		if got := ArcEndPoint(box, c.p); got != c.want {
			t.Errorf("ArcEndPoint(%v) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestICMProfile(t *testing.T) {
	c := New(nil)
	err := c.Apply(&record.SetICMProfile{
		Type: record.EMRSetICMProfileW,
		Name: "sRGB",
		Data: icc.SRGBv2Profile,
	})
	if err != nil {
		t.Fatal(err)
	}
	if c.Colors.ICMComponents != 3 {
		t.Errorf("profile has %d components, want 3", c.Colors.ICMComponents)
	}

	c.Apply(&record.SetICMProfile{Type: record.EMRSetICMProfileA, Data: []byte("junk")})
	if c.Colors.ICMComponents != 0 {
		t.Error("invalid profile was accepted")
	}

	c.Apply(&record.ColorMatchToProfileW{Action: gdi.CSDisable})
	if c.Colors.ICMProfile != nil {
		t.Error("profile not removed")
	}
}
