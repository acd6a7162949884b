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
	"log/slog"
	"strconv"

	"seehuhn.de/go/emf/parser"
)

// Convert decodes a WMF file and returns an SVG image with the bounds of
// the metafile.  The drawing records are not rendered.
//
// If logger is nil, no log messages are written.
func Convert(data []byte, logger *slog.Logger) ([]byte, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	m, err := Decode(data)
	if err != nil {
		return nil, err
	}
	if !m.ChecksumOK {
		logger.Warn("wrong checksum in placeable header")
	}
	for _, rec := range m.Records {
		logger.Debug("WMF record", "record", rec)
	}

	bounds, ok := m.Bounds()
	if !ok {
		return nil, parser.Unexpected("WMF file without image bounds")
	}
	width := float64(bounds.Right - bounds.Left)
	height := float64(bounds.Bottom - bounds.Top)
	if width < 0 {
		width = -width
	}
	if height < 0 {
		height = -height
	}

	unit := ""
	w, h := width, height
	if m.Placeable != nil && m.Placeable.Inch > 0 {
		unit = "pt"
		w = width * 72 / float64(m.Placeable.Inch)
		h = height * 72 / float64(m.Placeable.Inch)
	}

	logger.Info("WMF records are not rendered",
		"records", len(m.Records),
		"version", m.Header.Version)

	buf := &bytes.Buffer{}
	buf.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" width="`)
	buf.WriteString(format(w) + unit)
	buf.WriteString(`" height="`)
	buf.WriteString(format(h) + unit)
	buf.WriteString(`" viewBox="`)
	buf.WriteString(strconv.Itoa(int(min(bounds.Left, bounds.Right))) + " ")
	buf.WriteString(strconv.Itoa(int(min(bounds.Top, bounds.Bottom))) + " ")
	buf.WriteString(format(width) + " " + format(height))
	buf.WriteString("\"/>\n")
	return buf.Bytes(), nil
}

func format(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
