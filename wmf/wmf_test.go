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

package wmf

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/emf/gdi"
	"seehuhn.de/go/emf/internal/emftest"
	"seehuhn.de/go/emf/parser"
)

func placeable(b *emftest.Builder, left, top, right, bottom int16, inch uint16) {
	start := b.Len()
	b.U32(PlaceableKey)
	b.U16(0) // HWmf
	b.I16(left).I16(top).I16(right).I16(bottom)
	b.U16(inch)
	b.U32(0)
	data := b.Data()[start:]
	var sum uint16
	for i := 0; i < 20; i += 2 {
		sum ^= binary.LittleEndian.Uint16(data[i:])
	}
	b.U16(sum)
}

func metaHeader(b *emftest.Builder) {
	b.U16(DiskMetafile, headerWords, Version3)
	b.U16(0, 0) // size, filled in by nobody
	b.U16(0)    // objects
	b.U32(5)
	b.U16(0)
}

func record(b *emftest.Builder, fn Function, params ...int16) {
	b.U32(uint32(minRecordWords + len(params)))
	b.U16(uint16(fn))
	for _, p := range params {
		b.I16(p)
	}
}

func TestDecodePlaceable(t *testing.T) {
	b := &emftest.Builder{}
	placeable(b, 0, 0, 1440, 720, 1440)
	metaHeader(b)
	record(b, MetaSetBkMode, 1)
	record(b, MetaRectangle, 100, 100, 0, 0)
	record(b, MetaEOF)

	m, err := Decode(b.Data())
	if err != nil {
		t.Fatal(err)
	}
	if !m.ChecksumOK {
		t.Error("checksum not recognised")
	}
	want := &Placeable{
		Bounds:   gdi.RectL{Right: 1440, Bottom: 720},
		Inch:     1440,
		Checksum: m.Placeable.Checksum,
	}
	if d := cmp.Diff(want, m.Placeable); d != "" {
		t.Errorf("placeable header (-want +got):\n%s", d)
	}
	var funcs []Function
	for _, rec := range m.Records {
		funcs = append(funcs, rec.Function)
	}
	if d := cmp.Diff([]Function{MetaSetBkMode, MetaRectangle}, funcs); d != "" {
		t.Errorf("records (-want +got):\n%s", d)
	}
	if m.Records[1].Offset != placeableSize+2*headerWords+8 {
		t.Errorf("second record at offset %d", m.Records[1].Offset)
	}

	svg, err := Convert(b.Data(), nil)
	if err != nil {
		t.Fatal(err)
	}
	wantSVG := `<svg xmlns="http://www.w3.org/2000/svg" width="72pt" height="36pt" viewBox="0 0 1440 720"/>` + "\n"
	if string(svg) != wantSVG {
		t.Errorf("got %q, want %q", svg, wantSVG)
	}
}

func TestWindowBounds(t *testing.T) {
	b := &emftest.Builder{}
	metaHeader(b)
	record(b, MetaSetWindowOrg, -10, 20) // y, x
	record(b, MetaSetWindowExt, 300, 400)
	record(b, MetaEOF)

	m, err := Decode(b.Data())
	if err != nil {
		t.Fatal(err)
	}
	bounds, ok := m.Bounds()
	if !ok {
		t.Fatal("no bounds")
	}
	want := gdi.RectL{Left: 20, Top: -10, Right: 420, Bottom: 290}
	if bounds != want {
		t.Errorf("got %v, want %v", bounds, want)
	}

	svg, err := Convert(b.Data(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(svg, []byte(`viewBox="20 -10 400 300"`)) {
		t.Errorf("unexpected SVG %q", svg)
	}
}

func TestBadChecksum(t *testing.T) {
	b := &emftest.Builder{}
	placeable(b, 0, 0, 100, 100, 100)
	metaHeader(b)
	record(b, MetaEOF)
	data := b.Data()
	data[20] ^= 0xFF

	m, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if m.ChecksumOK {
		t.Error("wrong checksum not detected")
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name string
		data func(b *emftest.Builder)
		want error
	}{
		{
			name: "empty",
			data: func(b *emftest.Builder) {},
			want: parser.ErrFailedReadBuffer,
		},
		{
			name: "garbage",
			data: func(b *emftest.Builder) {
				b.U32(0xDEADBEEF, 0x12345678, 0, 0, 0)
			},
			want: parser.ErrUnexpectedEnumValue,
		},
		{
			name: "version",
			data: func(b *emftest.Builder) {
				b.U16(MemoryMetafile, headerWords, 0x0200)
				b.Zero(12)
			},
			want: parser.ErrNotSupported,
		},
		{
			name: "missing-eof",
			data: func(b *emftest.Builder) {
				metaHeader(b)
				record(b, MetaSaveDC)
			},
			want: parser.ErrUnexpectedPattern,
		},
		{
			name: "short-record",
			data: func(b *emftest.Builder) {
				metaHeader(b)
				b.U32(2).U16(uint16(MetaSaveDC))
			},
			want: parser.ErrUnexpectedPattern,
		},
		{
			name: "record-too-long",
			data: func(b *emftest.Builder) {
				metaHeader(b)
				b.U32(100).U16(uint16(MetaPolygon)).U16(1, 2)
			},
			want: parser.ErrUnexpectedPattern,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := &emftest.Builder{}
			c.data(b)
			_, err := Decode(b.Data())
			if !errors.Is(err, c.want) {
				t.Errorf("got error %v, want %v", err, c.want)
			}
		})
	}
}

func TestConvertNoBounds(t *testing.T) {
	b := &emftest.Builder{}
	metaHeader(b)
	record(b, MetaEOF)
	_, err := Convert(b.Data(), nil)
	if !errors.Is(err, parser.ErrUnexpectedPattern) {
		t.Errorf("got error %v", err)
	}
}

func TestFunctionString(t *testing.T) {
	if s := MetaSetWindowExt.String(); s != "META_SETWINDOWEXT" {
		t.Errorf("got %q", s)
	}
	if s := Function(0x1234).String(); s != "Function(0x1234)" {
		t.Errorf("got %q", s)
	}
}
