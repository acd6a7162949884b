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

package record

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/emf/gdi"
	"seehuhn.de/go/emf/internal/emftest"
	"seehuhn.de/go/emf/parser"
)

// decodeOne decodes the first record in data, in the same way as the main
// decoding loop does.  It checks that exactly the declared number of bytes
// has been consumed.
func decodeOne(t *testing.T, data []byte) (Record, error) {
	t.Helper()

	r := parser.NewReader(data)
	code, err := r.ReadUInt32()
	if err != nil {
		t.Fatal(err)
	}
	size, err := r.ReadUInt32()
	if err != nil {
		t.Fatal(err)
	}
	tp, err := ParseType(code)
	if err != nil {
		return nil, err
	}
	sz := parser.NewSize(size)
	sz.Consume(HeaderSize)
	rec, err := Decode(tp, parser.NewBody(r, 0, sz))
	if err != nil {
		return nil, err
	}
	if r.Pos() != int64(size) {
		t.Errorf("%s: decoder stopped at byte %d, record size is %d", tp, r.Pos(), size)
	}
	if sz.Consumed() != size {
		t.Errorf("%s: consumed %d bytes, record size is %d", tp, sz.Consumed(), size)
	}
	if rec.RecordType() != tp {
		t.Errorf("record type is %s, expected %s", rec.RecordType(), tp)
	}
	return rec, nil
}

func build(tp Type, body func(r *emftest.Builder)) []byte {
	b := &emftest.Builder{}
	b.Record(uint32(tp), body)
	return b.Data()
}

func TestRoundTripConsumption(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want Record
	}{
		{
			name: "rectangle",
			data: build(EMRRectangle, func(r *emftest.Builder) {
				r.I32(0, 0, 100, 100)
			}),
			want: &Box{Type: EMRRectangle, Box: gdi.RectL{Right: 100, Bottom: 100}},
		},
		{
			name: "polygon16",
			data: build(EMRPolygon16, func(r *emftest.Builder) {
				r.I32(0, 0, 10, 10)
				r.U32(3)
				r.I16(0).I16(0).I16(10).I16(0).I16(10).I16(10)
			}),
			want: &Poly16{
				Type:   EMRPolygon16,
				Bounds: gdi.RectL{Right: 10, Bottom: 10},
				Points: []gdi.PointS{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}},
			},
		},
		{
			name: "polypolyline",
			data: build(EMRPolyPolyline, func(r *emftest.Builder) {
				r.I32(0, 0, 5, 5)
				r.U32(2, 3)
				r.U32(1, 2)
				r.I32(1, 1)
				r.I32(2, 2, 5, 5)
			}),
			want: &PolyPoly{
				Type:   EMRPolyPolyline,
				Bounds: gdi.RectL{Right: 5, Bottom: 5},
				Counts: []uint32{1, 2},
				Points: []gdi.PointL{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 5, Y: 5}},
			},
		},
		{
			name: "polydraw-padding",
			data: build(EMRPolyDraw, func(r *emftest.Builder) {
				r.I32(0, 0, 1, 1)
				r.U32(2)
				r.I32(0, 0, 1, 1)
				r.U8(uint8(gdi.PTMoveTo)).U8(uint8(gdi.PTLineTo | gdi.PTCloseFigure))
				r.Pad()
			}),
			want: &PolyDraw{
				Bounds: gdi.RectL{Right: 1, Bottom: 1},
				Points: []gdi.PointL{{X: 0, Y: 0}, {X: 1, Y: 1}},
				Types:  []gdi.PolyDrawType{gdi.PTMoveTo, gdi.PTLineTo | gdi.PTCloseFigure},
			},
		},
		{
			name: "createpen",
			data: build(EMRCreatePen, func(r *emftest.Builder) {
				r.U32(1)
				r.U32(uint32(gdi.PSDash))
				r.I32(2, 0)
				r.Bytes([]byte{0xFF, 0, 0, 0})
			}),
			want: &CreatePen{
				Index: 1,
				Pen: gdi.LogPen{
					Style: gdi.PSDash,
					Width: gdi.PointL{X: 2},
					Color: gdi.RGB(0xFF, 0, 0),
				},
			},
		},
		{
			name: "comment-padding",
			data: build(EMRComment, func(r *emftest.Builder) {
				r.U32(5)
				r.Bytes([]byte("hello"))
				r.Pad()
			}),
			want: &Comment{
				Identifier: 0x6C6C6568,
				Data:       []byte("hello"),
			},
		},
		{
			name: "comment-begingroup",
			data: build(EMRComment, func(r *emftest.Builder) {
				r.U32(32)
				r.U32(CommentPublic, uint32(CommentBeginGroup))
				r.I32(1, 2, 3, 4)
				r.U32(2)
				r.UTF16("ab", 4)
			}),
			want: &Comment{
				Identifier: CommentPublic,
				Data: (&emftest.Builder{}).
					U32(CommentPublic, uint32(CommentBeginGroup)).
					I32(1, 2, 3, 4).U32(2).UTF16("ab", 4).Data(),
				PublicType: CommentBeginGroup,
				Group: &CommentGroup{
					Bounds:      gdi.RectL{Left: 1, Top: 2, Right: 3, Bottom: 4},
					Description: "ab",
				},
			},
		},
		{
			name: "exttextoutw",
			data: build(EMRExtTextOutW, func(r *emftest.Builder) {
				r.I32(0, 0, 20, 10)                // bounds
				r.U32(uint32(gdi.GMCompatible))    // graphics mode
				r.F32(1, 1)                        // scale
				r.I32(5, 6)                        // reference
				r.U32(2, 76, 0)                    // chars, offString, options
				r.I32(0, 0, 20, 10)                // rectangle
				r.U32(80)                          // offDx
				r.UTF16("Hi", 4)
				r.I32(7, 8)
			}),
			want: &ExtTextOut{
				Type:   EMRExtTextOutW,
				Bounds: gdi.RectL{Right: 20, Bottom: 10},
				TextScale: TextScale{
					GraphicsMode: gdi.GMCompatible,
					ExScale:      1,
					EyScale:      1,
				},
				Text: &EmrText{
					Reference: gdi.PointL{X: 5, Y: 6},
					Rectangle: gdi.RectL{Right: 20, Bottom: 10},
					Text:      "Hi",
					Dx:        []int32{7, 8},
				},
			},
		},
		{
			name: "exttextouta-norect-pdy",
			data: build(EMRExtTextOutA, func(r *emftest.Builder) {
				r.I32(0, 0, 20, 10)
				r.U32(uint32(gdi.GMAdvanced))
				r.F32(0, 0)
				r.I32(5, 6)
				r.U32(1, 60, uint32(gdi.ETONoRect|gdi.ETOPDY))
				r.U32(64) // offDx
				r.Bytes([]byte{0xE9}).Pad()
				r.I32(9, -1)
			}),
			want: &ExtTextOut{
				Type:      EMRExtTextOutA,
				Bounds:    gdi.RectL{Right: 20, Bottom: 10},
				TextScale: TextScale{GraphicsMode: gdi.GMAdvanced},
				Text: &EmrText{
					Reference: gdi.PointL{X: 5, Y: 6},
					Options:   gdi.ETONoRect | gdi.ETOPDY,
					Text:      "é",
					Dx:        []int32{9, -1},
				},
			},
		},
		{
			name: "smalltextout",
			data: build(EMRSmallTextOut, func(r *emftest.Builder) {
				r.I32(1, 2)
				r.U32(3, uint32(gdi.ETONoRect|gdi.ETOSmallChars))
				r.U32(uint32(gdi.GMCompatible))
				r.F32(2, 2)
				r.Bytes([]byte("abc")).Pad()
			}),
			want: &SmallTextOut{
				Reference: gdi.PointL{X: 1, Y: 2},
				Options:   gdi.ETONoRect | gdi.ETOSmallChars,
				TextScale: TextScale{GraphicsMode: gdi.GMCompatible, ExScale: 2, EyScale: 2},
				Text:      "abc",
			},
		},
		{
			name: "setlinkedufis",
			data: build(EMRSetLinkedUFIs, func(r *emftest.Builder) {
				r.U32(1)
				r.U32(0xDEADBEEF, 2)
				r.Zero(8)
			}),
			want: &SetLinkedUFIs{
				UFIs: []gdi.UniversalFontID{{Checksum: 0xDEADBEEF, Index: 2}},
			},
		},
		{
			name: "extselectcliprgn-reset",
			data: build(EMRExtSelectClipRgn, func(r *emftest.Builder) {
				r.U32(0, uint32(gdi.RgnCopy))
			}),
			want: &ExtSelectClipRgn{Mode: gdi.RgnCopy},
		},
		{
			name: "eof",
			data: (&emftest.Builder{}).EOF().Data(),
			want: &EOF{},
		},
		{
			name: "savedc",
			data: build(EMRSaveDC, nil),
			want: &NoParams{Type: EMRSaveDC},
		},
		{
			name: "scalewindowextex",
			data: build(EMRScaleWindowExtEx, func(r *emftest.Builder) {
				r.I32(1, 2, 3, 4)
			}),
			want: &ScaleExtent{Type: EMRScaleWindowExtEx, XNum: 1, XDenom: 2, YNum: 3, YDenom: 4},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec, err := decodeOne(t, c.data)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(c.want, rec); d != "" {
				t.Error(d)
			}
		})
	}
}

func TestHeader(t *testing.T) {
	b := &emftest.Builder{}
	b.Record(uint32(EMRHeader), func(r *emftest.Builder) {
		r.I32(0, 0, 99, 49)
		r.I32(0, 0, 2000, 1000)
		r.U32(Signature, Version)
		r.U32(1000, 3)
		r.U16(4, 0)
		r.U32(8, 108) // description
		r.U32(0)
		r.I32(1920, 1080)
		r.I32(508, 286)
		r.U32(0, 0, 0)      // extension 1
		r.U32(508000, 286000) // extension 2
		r.UTF16("app\x00pic\x00", 0)
		r.Pad()
	})

	rec, err := decodeOne(t, b.Data())
	if err != nil {
		t.Fatal(err)
	}
	h := rec.(*Header)
	if !h.HasExtension1 || !h.HasExtension2 {
		t.Errorf("extensions not detected: %t %t", h.HasExtension1, h.HasExtension2)
	}
	if h.Micrometers != (gdi.SizeL{CX: 508000, CY: 286000}) {
		t.Errorf("wrong micrometer size %v", h.Micrometers)
	}
	if d := cmp.Diff([]string{"app", "pic"}, h.DescriptionParts()); d != "" {
		t.Error(d)
	}
	if h.Handles != 4 {
		t.Errorf("handles = %d, want 4", h.Handles)
	}
}

func TestHeaderMinimal(t *testing.T) {
	data := (&emftest.Builder{}).Header([4]int32{0, 0, 10, 10}, [4]int32{0, 0, 100, 100}).Data()
	rec, err := decodeOne(t, data)
	if err != nil {
		t.Fatal(err)
	}
	h := rec.(*Header)
	if h.HasExtension1 || h.Description != "" {
		t.Errorf("unexpected header contents %+v", h)
	}
}

func TestBitBlt(t *testing.T) {
	info := (&emftest.Builder{}).U32(40).I32(1, 1).U16(1, 24).U32(0, 4).I32(0, 0).U32(0, 0)
	data := build(EMRBitBlt, func(r *emftest.Builder) {
		r.I32(0, 0, 10, 10)     // bounds
		r.I32(0, 0, 10, 10)     // destination
		r.U32(uint32(gdi.SrcCopy))
		r.I32(0, 0)             // source position
		r.F32(1, 0, 0, 1, 0, 0) // source transform
		r.U32(0)                // background color
		r.U32(uint32(gdi.DIBRGBColors))
		r.U32(100, 40, 140, 4)
		r.Bytes(info.Data())
		r.Bytes([]byte{1, 2, 3, 0})
	})

	rec, err := decodeOne(t, data)
	if err != nil {
		t.Fatal(err)
	}
	blt := rec.(*BitBlt)
	if blt.Dest != (Area{Width: 10, Height: 10}) {
		t.Errorf("wrong destination %v", blt.Dest)
	}
	bm := blt.Source.Bitmap
	if bm == nil {
		t.Fatal("bitmap missing")
	}
	if bm.Width() != 1 || bm.Height() != 1 || bm.Header.BitCount != 24 {
		t.Errorf("wrong bitmap header %+v", bm.Header)
	}
	if d := cmp.Diff([]byte{1, 2, 3, 0}, bm.Bits); d != "" {
		t.Error(d)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want error
	}{
		{
			name: "restoredc-positive",
			data: build(EMRRestoreDC, func(r *emftest.Builder) { r.I32(1) }),
			want: parser.ErrUnexpectedPattern,
		},
		{
			name: "rectangle-wrong-size",
			data: build(EMRRectangle, func(r *emftest.Builder) { r.I32(0, 0, 1, 1, 0) }),
			want: parser.ErrUnexpectedPattern,
		},
		{
			name: "createpalette-empty",
			data: build(EMRCreatePalette, func(r *emftest.Builder) {
				r.U32(1)
				r.U16(gdi.LogPaletteVersion, 0)
			}),
			want: parser.ErrUnexpectedPattern,
		},
		{
			name: "deleteobject-zero",
			data: build(EMRDeleteObject, func(r *emftest.Builder) { r.U32(0) }),
			want: parser.ErrUnexpectedPattern,
		},
		{
			name: "deleteobject-stock",
			data: build(EMRDeleteObject, func(r *emftest.Builder) { r.U32(uint32(gdi.BlackPen)) }),
			want: parser.ErrUnexpectedPattern,
		},
		{
			name: "setmapmode-invalid",
			data: build(EMRSetMapMode, func(r *emftest.Builder) { r.U32(9) }),
			want: parser.ErrUnexpectedEnumValue,
		},
		{
			name: "brush-pattern",
			data: build(EMRCreateBrushIndirect, func(r *emftest.Builder) {
				r.U32(1, uint32(gdi.BSPattern), 0, 0)
			}),
			want: parser.ErrNotSupported,
		},
		{
			name: "text-offset-backwards",
			data: build(EMRExtTextOutW, func(r *emftest.Builder) {
				r.I32(0, 0, 20, 10)
				r.U32(uint32(gdi.GMCompatible))
				r.F32(1, 1)
				r.I32(5, 6)
				r.U32(1, 40, 0)
				r.I32(0, 0, 20, 10)
				r.U32(0)
				r.Zero(4)
			}),
			want: parser.ErrUnexpectedPattern,
		},
		{
			name: "poly-count-too-large",
			data: build(EMRPolyline, func(r *emftest.Builder) {
				r.I32(0, 0, 1, 1)
				r.U32(10)
				r.I32(0, 0)
			}),
			want: parser.ErrUnexpectedPattern,
		},
		{
			name: "polypoly-counts-mismatch",
			data: build(EMRPolyPolygon, func(r *emftest.Builder) {
				r.I32(0, 0, 1, 1)
				r.U32(1, 2)
				r.U32(1)
				r.I32(0, 0, 1, 1)
			}),
			want: parser.ErrUnexpectedPattern,
		},
		{
			name: "unknown-type",
			data: (&emftest.Builder{}).U32(200, 8).Data(),
			want: parser.ErrUnexpectedPattern,
		},
		{
			name: "eof-sizelast",
			data: build(EMREOF, func(r *emftest.Builder) { r.U32(0, 16, 24) }),
			want: parser.ErrUnexpectedPattern,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := decodeOne(t, c.data)
			if !errors.Is(err, c.want) {
				t.Errorf("got %v, want %v", err, c.want)
			}
		})
	}
}

func TestTypeString(t *testing.T) {
	cases := []struct {
		tp   Type
		want string
	}{
		{EMRHeader, "EMR_HEADER"},
		{EMRPolyDraw16, "EMR_POLYDRAW16"},
		{EMRCreateColorSpaceW, "EMR_CREATECOLORSPACEW"},
		{Type(0), "Type(0)"},
		{Type(123), "Type(123)"},
	}
	for _, c := range cases {
		if got := c.tp.String(); got != c.want {
			t.Errorf("%d: got %q, want %q", uint32(c.tp), got, c.want)
		}
	}
	for _, tp := range []Type{EMRReserved69, EMRReserved107, EMRReserved117} {
		if !tp.IsReserved() {
			t.Errorf("%s is not reserved", tp)
		}
		if _, err := Decode(tp, emftest.Body(nil)); err == nil {
			t.Errorf("%s: reserved record decoded", tp)
		}
	}
}
