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

// Package svg renders EMF files as SVG images.
//
// The [Player] implements the [emf.Player] interface.  Drawing records are
// converted to SVG elements, using the state of a [playback.Context] for
// the coordinate transformation, the selected pen and brush, the selected
// font and the clipping region.  All coordinates in the output are device
// coordinates.
//
// The rendering is approximate.  Raster operations other than plain
// copying are ignored, and records which cannot be represented in SVG
// are dropped with a warning.
package svg

import (
	"bytes"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/emf"
	"seehuhn.de/go/emf/playback"
	"seehuhn.de/go/emf/record"
)

// Options control the SVG output.
type Options struct {
	// Logger receives diagnostic messages.  If this is nil, no messages
	// are logged.
	Logger *slog.Logger

	// Precision is the maximal number of digits after the decimal point
	// used for coordinates.
	Precision int

	// EmbedImages controls whether bitmaps are included in the output, as
	// PNG data URLs.  If this is false, bitmaps are omitted.
	EmbedImages bool
}

var defaultOptions = &Options{
	Precision:   2,
	EmbedImages: true,
}

// Player converts the records of an EMF file into an SVG image.
type Player struct {
	emf.NopPlayer

	opt    *Options
	logger *slog.Logger

	header *record.Header
	ctx    *playback.Context

	defs bytes.Buffer
	body bytes.Buffer

	nextID   int
	defIDs   map[string]string
	path     pathWriter // the path of the current path bracket
	clipPath string     // the path selected by EMR_SELECTCLIPPATH
	clipRule string     // the fill rule of clipPath
	widened  bool       // EMR_WIDENPATH was applied to the current path
	saved    []clipState

	// figureClosed is set when the last figure of the current path
	// has been closed.
	figureClosed bool

	patterns map[patternKey]string
	dropped  map[record.Type]int
}

type clipState struct {
	path, rule string
}

var (
	_ emf.Player  = (*Player)(nil)
	_ emf.Tracker = (*Player)(nil)
)

// NewPlayer returns a new SVG player.  If opt is nil, default options are
// used.
func NewPlayer(opt *Options) *Player {
	if opt == nil {
		opt = defaultOptions
	}
	logger := opt.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Player{
		opt:     opt,
		logger:  logger,
		defIDs:  make(map[string]string),
		dropped: make(map[record.Type]int),
		path:    pathWriter{prec: opt.Precision},

		patterns: make(map[patternKey]string),
	}
}

// Context implements the [emf.Tracker] interface.
func (p *Player) Context() *playback.Context {
	return p.ctx
}

// Header implements the [emf.Player] interface.
func (p *Player) Header(h *record.Header) error {
	p.header = h
	p.ctx = playback.New(h)
	return nil
}

// Generate implements the [emf.Player] interface.  It returns the complete
// SVG document.
func (p *Player) Generate() ([]byte, error) {
	if p.header == nil {
		return nil, playback.Errorf(playback.FailedGenerate, "no EMR_HEADER record")
	}

	var types []record.Type
	for tp := range p.dropped {
		types = append(types, tp)
	}
	slices.Sort(types)
	for _, tp := range types {
		p.logger.Warn("records not rendered", "type", tp, "count", p.dropped[tp])
	}

	b := p.header.Bounds
	vx, vy := min(b.Left, b.Right), min(b.Top, b.Bottom)
	vw := abs32(b.Right-b.Left) + 1
	vh := abs32(b.Bottom-b.Top) + 1

	width, height := strconv.Itoa(int(vw)), strconv.Itoa(int(vh))
	f := p.header.Frame
	if fw, fh := abs32(f.Right-f.Left), abs32(f.Bottom-f.Top); fw > 0 && fh > 0 {
		// The frame is given in units of 0.01 mm.
		width = p.num(float64(fw)/100) + "mm"
		height = p.num(float64(fh)/100) + "mm"
	}

	out := &bytes.Buffer{}
	fmt.Fprintf(out, `<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="%s" height="%s" viewBox="%d %d %d %d">`+"\n",
		width, height, vx, vy, vw, vh)
	if desc := p.header.DescriptionParts(); len(desc) > 0 {
		out.WriteString("<title>")
		out.WriteString(escape(strings.Join(desc, " - ")))
		out.WriteString("</title>\n")
	}
	if p.defs.Len() > 0 {
		out.WriteString("<defs>\n")
		out.Write(p.defs.Bytes())
		out.WriteString("</defs>\n")
	}
	out.Write(p.body.Bytes())
	out.WriteString("</svg>\n")
	return out.Bytes(), nil
}

// drop records that a record could not be rendered.
func (p *Player) drop(tp record.Type, reason string) {
	if p.dropped[tp] == 0 {
		p.logger.Warn("cannot render record", "type", tp, "reason", reason)
	}
	p.dropped[tp]++
}

// define adds an element to the <defs> section, unless an identical
// element has been added before, and returns its id.  The element is
// given as a format string, where %[1]s stands for the id.
func (p *Player) define(prefix, format string, a ...any) string {
	key := prefix + fmt.Sprintf(format, append([]any{""}, a...)...)
	if id, ok := p.defIDs[key]; ok {
		return id
	}
	p.nextID++
	id := prefix + strconv.Itoa(p.nextID)
	p.defIDs[key] = id
	fmt.Fprintf(&p.defs, format, append([]any{id}, a...)...)
	p.defs.WriteByte('\n')
	return id
}

// num formats a coordinate.
func (p *Player) num(x float64) string {
	return formatNum(x, p.opt.Precision)
}

func formatNum(x float64, prec int) string {
	s := strconv.FormatFloat(x, 'f', prec, 64)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

func abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}
