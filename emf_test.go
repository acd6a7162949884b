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

package emf

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/emf/gdi"
	"seehuhn.de/go/emf/internal/emftest"
	"seehuhn.de/go/emf/parser"
	"seehuhn.de/go/emf/playback"
	"seehuhn.de/go/emf/record"
)

// recorder logs the player methods which are called.
type recorder struct {
	NopPlayer
	calls []string
	rect  gdi.RectL
}

func (p *recorder) Header(*record.Header) error {
	p.calls = append(p.calls, "header")
	return nil
}

func (p *recorder) Rectangle(r *record.Box) error {
	p.calls = append(p.calls, "rectangle")
	p.rect = r.Box
	return nil
}

func (p *recorder) EOF(*record.EOF) error {
	p.calls = append(p.calls, "eof")
	return nil
}

func (p *recorder) Generate() ([]byte, error) {
	p.calls = append(p.calls, "generate")
	return []byte("done"), nil
}

func minimalEMF() *emftest.Builder {
	b := &emftest.Builder{}
	b.Header([4]int32{0, 0, 100, 100}, [4]int32{0, 0, 2646, 2646})
	b.Record(uint32(record.EMRRectangle), func(r *emftest.Builder) {
		r.I32(0, 0, 100, 100)
	})
	return b
}

func TestEndToEnd(t *testing.T) {
	b := minimalEMF()
	b.EOF()
	end := b.Len()
	b.U32(0xDEADBEEF, 0x12345678) // trailing garbage

	p := &recorder{}
	out, err := Convert(bytes.NewReader(b.Data()), p, nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "done" {
		t.Errorf("unexpected output %q", out)
	}
	want := []string{"header", "rectangle", "eof", "generate"}
	if d := cmp.Diff(want, p.calls); d != "" {
		t.Errorf("calls (-want +got):\n%s", d)
	}
	if p.rect != (gdi.RectL{Right: 100, Bottom: 100}) {
		t.Errorf("wrong rectangle %v", p.rect)
	}

	d, err := NewDecoder(b.Data(), nil)
	if err != nil {
		t.Fatal(err)
	}
	n := 0
	for {
		_, err := d.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			t.Fatal(err)
		}
		n++
	}
	if n != 2 {
		t.Errorf("got %d records after the header, want 2", n)
	}
	if d.Pos() != int64(end) {
		t.Errorf("decoder stopped at %d, EMR_EOF ends at %d", d.Pos(), end)
	}
}

func TestSniffing(t *testing.T) {
	cases := []struct {
		name  string
		data  []byte
		isEMF bool
	}{
		{"emf", minimalEMF().EOF().Data(), true},
		{"garbage", []byte{2, 0, 0, 0, 0xFF, 0xFF}, false},
		{"short", []byte{1, 0}, false},
		{"empty", nil, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := IsEMF(c.data); got != c.isEMF {
				t.Errorf("IsEMF: got %t, want %t", got, c.isEMF)
			}

			var fallbackData []byte
			called := false
			opt := &Options{
				Fallback: func(data []byte, _ *slog.Logger) ([]byte, error) {
					called = true
					fallbackData = data
					return []byte("wmf"), nil
				},
			}
			p := &recorder{}
			out, err := ConvertBytes(c.data, p, opt)
			if err != nil {
				t.Fatal(err)
			}
			if called == c.isEMF {
				t.Errorf("fallback called: %t", called)
			}
			if !c.isEMF {
				if string(out) != "wmf" || len(p.calls) > 0 {
					t.Errorf("output %q, calls %v", out, p.calls)
				}
				if !bytes.Equal(fallbackData, c.data) {
					t.Error("fallback got modified data")
				}
			}
		})
	}
}

func TestDefaultFallback(t *testing.T) {
	_, err := ConvertBytes([]byte{0xD7, 0xCD, 0xC6, 0x9A, 0, 0}, &recorder{}, nil)
	var convErr *ConvertError
	if !errors.As(err, &convErr) || convErr.Stage != StageWMF {
		t.Fatalf("got error %v, want WMF error", err)
	}
	if !errors.Is(err, parser.ErrFailedReadBuffer) {
		t.Errorf("got error %v", err)
	}
}

func TestSkippedRecords(t *testing.T) {
	b := &emftest.Builder{}
	b.Header([4]int32{0, 0, 100, 100}, [4]int32{0, 0, 2646, 2646})
	b.U32(uint32(record.EMRComment), 0) // empty record
	b.Record(uint32(record.EMRReserved69), func(r *emftest.Builder) {
		r.U32(1, 2, 3)
	})
	b.Record(uint32(record.EMRRectangle), func(r *emftest.Builder) {
		r.I32(0, 0, 100, 100)
	})
	b.EOF()

	p := &recorder{}
	_, err := ConvertBytes(b.Data(), p, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"header", "rectangle", "eof", "generate"}
	if d := cmp.Diff(want, p.calls); d != "" {
		t.Errorf("calls (-want +got):\n%s", d)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name   string
		data   func() []byte
		offset int64
	}{
		{
			name:   "missing-eof",
			data:   func() []byte { return minimalEMF().Data() },
			offset: 112,
		},
		{
			name: "bad-size",
			data: func() []byte {
				b := minimalEMF()
				b.U32(uint32(record.EMRSaveDC), 6)
				return b.Data()
			},
			offset: 112,
		},
		{
			name: "beyond-input",
			data: func() []byte {
				b := minimalEMF()
				b.U32(uint32(record.EMRSaveDC), 64)
				return b.Data()
			},
			offset: 112,
		},
		{
			name: "unknown-type",
			data: func() []byte {
				b := minimalEMF()
				b.U32(500, 8)
				b.EOF()
				return b.Data()
			},
			offset: 112,
		},
		{
			name: "header-not-first",
			data: func() []byte {
				b := &emftest.Builder{}
				b.U32(1, 0) // skipped, since it is empty
				b.EOF()
				return b.Data()
			},
			offset: 8,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ConvertBytes(c.data(), &recorder{}, nil)
			var convErr *ConvertError
			if !errors.As(err, &convErr) {
				t.Fatalf("got error %v, want ConvertError", err)
			}
			if convErr.Stage != StageParse {
				t.Errorf("stage %q", convErr.Stage)
			}
			if !errors.Is(err, parser.ErrUnexpectedPattern) {
				t.Errorf("got error %v", err)
			}
			var pe *parser.ParseError
			if !errors.As(err, &pe) || pe.Pos != c.offset {
				t.Errorf("error position: got %v, want %d", err, c.offset)
			}
		})
	}
}

type failingPlayer struct {
	NopPlayer
	generate error
}

func (p *failingPlayer) Rectangle(*record.Box) error {
	return playback.Errorf(playback.InvalidRecord, "rectangles are not allowed")
}

func (p *failingPlayer) Generate() ([]byte, error) {
	return nil, p.generate
}

func TestPlayErrors(t *testing.T) {
	b := minimalEMF()
	b.EOF()
	_, err := ConvertBytes(b.Data(), &failingPlayer{}, nil)
	var convErr *ConvertError
	if !errors.As(err, &convErr) {
		t.Fatalf("got error %v, want ConvertError", err)
	}
	if convErr.Stage != StagePlay || convErr.Offset != 88 {
		t.Errorf("stage %q, offset %d", convErr.Stage, convErr.Offset)
	}
	if !errors.Is(err, playback.ErrInvalidRecord) {
		t.Errorf("got error %v", err)
	}
}

func TestRestoreDCOutOfRange(t *testing.T) {
	for _, idx := range []uint32{0xFFFFFFFE, 0x80000000} {
		b := &emftest.Builder{}
		b.Header([4]int32{0, 0, 100, 100}, [4]int32{0, 0, 2646, 2646})
		b.Record(uint32(record.EMRSaveDC), nil)
		b.Record(uint32(record.EMRRestoreDC), func(r *emftest.Builder) {
			r.U32(idx)
		})
		b.EOF()

		_, err := ConvertBytes(b.Data(), &trackingPlayer{}, nil)
		var convErr *ConvertError
		if !errors.As(err, &convErr) {
			t.Fatalf("RestoreDC(%#x): got error %v, want ConvertError", idx, err)
		}
		if convErr.Stage != StagePlay || convErr.Offset != 96 {
			t.Errorf("RestoreDC(%#x): stage %q, offset %d", idx, convErr.Stage, convErr.Offset)
		}
		if !errors.Is(err, playback.ErrInvalidRecord) {
			t.Errorf("RestoreDC(%#x): got error %v", idx, err)
		}
	}
}

func TestGenerateError(t *testing.T) {
	b := &emftest.Builder{}
	b.Header([4]int32{0, 0, 100, 100}, [4]int32{0, 0, 2646, 2646})
	b.EOF()

	_, err := ConvertBytes(b.Data(), &failingPlayer{generate: io.ErrShortWrite}, nil)
	var convErr *ConvertError
	if !errors.As(err, &convErr) || convErr.Stage != StageGenerate {
		t.Fatalf("got error %v", err)
	}
	if !errors.Is(err, playback.ErrFailedGenerate) || !errors.Is(err, io.ErrShortWrite) {
		t.Errorf("got error %v", err)
	}
}

type trackingPlayer struct {
	NopPlayer
	ctx *playback.Context
}

func (p *trackingPlayer) Header(h *record.Header) error {
	p.ctx = playback.New(h)
	return nil
}

func (p *trackingPlayer) Context() *playback.Context {
	return p.ctx
}

func TestTracker(t *testing.T) {
	b := &emftest.Builder{}
	b.Header([4]int32{0, 0, 100, 100}, [4]int32{0, 0, 2646, 2646})
	b.Record(uint32(record.EMRSaveDC), nil)
	b.Record(uint32(record.EMRSetBkMode), func(r *emftest.Builder) {
		r.U32(uint32(gdi.Transparent))
	})
	b.EOF()

	p := &trackingPlayer{}
	_, err := ConvertBytes(b.Data(), p, nil)
	if err != nil {
		t.Fatal(err)
	}
	if p.ctx.Depth() != 1 {
		t.Errorf("save stack has depth %d", p.ctx.Depth())
	}
	if p.ctx.Drawing.BkMode != gdi.Transparent {
		t.Errorf("background mode %v", p.ctx.Drawing.BkMode)
	}

	b = &emftest.Builder{}
	b.Header([4]int32{0, 0, 100, 100}, [4]int32{0, 0, 2646, 2646})
	b.Record(uint32(record.EMRRestoreDC), func(r *emftest.Builder) {
		r.I32(-1)
	})
	b.EOF()
	_, err = ConvertBytes(b.Data(), &trackingPlayer{}, nil)
	if !errors.Is(err, playback.ErrInvalidRecord) {
		t.Errorf("got error %v, want InvalidRecord", err)
	}
}
