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

package gdi

import (
	"fmt"

	"seehuhn.de/go/emf/parser"
)

// ColorRef is an RGB color.
type ColorRef struct {
	Red, Green, Blue uint8
	Reserved         uint8
}

// ReadColorRef decodes a ColorRef (4 bytes).
func ReadColorRef(b *parser.Body) ColorRef {
	return ColorRef{
		Red:      b.U8(),
		Green:    b.U8(),
		Blue:     b.U8(),
		Reserved: b.U8(),
	}
}

// RGB returns a ColorRef with the given components.
func RGB(r, g, b uint8) ColorRef {
	return ColorRef{Red: r, Green: g, Blue: b}
}

// Hex returns the color in the form "#rrggbb".
func (c ColorRef) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.Red, c.Green, c.Blue)
}

// Commonly used colors.
var (
	Black = RGB(0, 0, 0)
	White = RGB(255, 255, 255)
)

// PaletteEntry is an entry in a logical palette.
type PaletteEntry struct {
	Reserved         uint8
	Blue, Green, Red uint8
}

// ReadPaletteEntry decodes a LogPaletteEntry (4 bytes).
func ReadPaletteEntry(b *parser.Body) PaletteEntry {
	return PaletteEntry{
		Reserved: b.U8(),
		Blue:     b.U8(),
		Green:    b.U8(),
		Red:      b.U8(),
	}
}

// Color returns the palette entry as a ColorRef.
func (e PaletteEntry) Color() ColorRef {
	return RGB(e.Red, e.Green, e.Blue)
}

// ReadPaletteEntries decodes n palette entries.
func ReadPaletteEntries(b *parser.Body, n uint32) []PaletteEntry {
	k := b.Count(n, 4)
	res := make([]PaletteEntry, k)
	for i := range res {
		res[i] = ReadPaletteEntry(b)
	}
	return res
}

// LogPaletteVersion is the only allowed version number for LogPalette.
const LogPaletteVersion = 0x0300

// MaxPaletteEntries is the largest number of entries a logical palette
// can have.
const MaxPaletteEntries = 1024

// LogPalette is a logical color palette.
type LogPalette struct {
	Entries []PaletteEntry
}

// ReadLogPalette decodes a LogPalette.
func ReadLogPalette(b *parser.Body) *LogPalette {
	version := b.U16()
	n := b.U16()
	if b.Err() == nil && version != LogPaletteVersion {
		b.Failf("LogPalette version %#04x", version)
	}
	return &LogPalette{Entries: ReadPaletteEntries(b, uint32(n))}
}

// SystemPalette returns the entries of the DEFAULT_PALETTE stock object,
// the 20 reserved system colors.
func SystemPalette() *LogPalette {
	colors := []ColorRef{
		RGB(0x00, 0x00, 0x00), RGB(0x80, 0x00, 0x00), RGB(0x00, 0x80, 0x00),
		RGB(0x80, 0x80, 0x00), RGB(0x00, 0x00, 0x80), RGB(0x80, 0x00, 0x80),
		RGB(0x00, 0x80, 0x80), RGB(0xC0, 0xC0, 0xC0), RGB(0xC0, 0xDC, 0xC0),
		RGB(0xA6, 0xCA, 0xF0), RGB(0xFF, 0xFB, 0xF0), RGB(0xA0, 0xA0, 0xA4),
		RGB(0x80, 0x80, 0x80), RGB(0xFF, 0x00, 0x00), RGB(0x00, 0xFF, 0x00),
		RGB(0xFF, 0xFF, 0x00), RGB(0x00, 0x00, 0xFF), RGB(0xFF, 0x00, 0xFF),
		RGB(0x00, 0xFF, 0xFF), RGB(0xFF, 0xFF, 0xFF),
	}
	res := &LogPalette{Entries: make([]PaletteEntry, len(colors))}
	for i, c := range colors {
		res.Entries[i] = PaletteEntry{Red: c.Red, Green: c.Green, Blue: c.Blue}
	}
	return res
}

// ColorAdjustment holds the color adjustment values which are used when
// bitmaps are stretched in halftone mode.
type ColorAdjustment struct {
	Values          ColorAdjustmentFlags
	IlluminantIndex Illuminant
	RedGamma        uint16
	GreenGamma      uint16
	BlueGamma       uint16
	ReferenceBlack  uint16
	ReferenceWhite  uint16
	Contrast        int16
	Brightness      int16
	Colorfulness    int16
	RedGreenTint    int16
}

// ColorAdjustmentFlags modify the behaviour of a ColorAdjustment.
type ColorAdjustmentFlags uint16

// Possible flags for ColorAdjustmentFlags.
const (
	CANegative  ColorAdjustmentFlags = 0x0001
	CALogFilter ColorAdjustmentFlags = 0x0002
)

// Illuminant is the type of standard light source under which an image
// is viewed.
type Illuminant uint16

// These are the possible values for Illuminant.
const (
	IlluminantDeviceDefault Illuminant = 0x0000
	IlluminantTungsten      Illuminant = 0x0001
	IlluminantB             Illuminant = 0x0002
	IlluminantDaylight      Illuminant = 0x0003
	IlluminantD50           Illuminant = 0x0004
	IlluminantD55           Illuminant = 0x0005
	IlluminantD65           Illuminant = 0x0006
	IlluminantD75           Illuminant = 0x0007
	IlluminantFluorescent   Illuminant = 0x0008
)

// colorAdjustmentSize is the value of the Size field of a ColorAdjustment.
const colorAdjustmentSize = 0x0018

// DefaultColorAdjustment is the color adjustment of a new device context.
var DefaultColorAdjustment = ColorAdjustment{
	RedGamma:       10000,
	GreenGamma:     10000,
	BlueGamma:      10000,
	ReferenceBlack: 0,
	ReferenceWhite: 10000,
}

// ReadColorAdjustment decodes a ColorAdjustment (24 bytes) and checks that
// all fields are within their allowed ranges.
func ReadColorAdjustment(b *parser.Body) ColorAdjustment {
	size := b.U16()
	ca := ColorAdjustment{
		Values:          ColorAdjustmentFlags(b.U16()),
		IlluminantIndex: Illuminant(b.U16()),
		RedGamma:        b.U16(),
		GreenGamma:      b.U16(),
		BlueGamma:       b.U16(),
		ReferenceBlack:  b.U16(),
		ReferenceWhite:  b.U16(),
		Contrast:        b.I16(),
		Brightness:      b.I16(),
		Colorfulness:    b.I16(),
		RedGreenTint:    b.I16(),
	}
	if b.Err() != nil {
		return ca
	}

	if size != colorAdjustmentSize {
		b.Failf("ColorAdjustment size %d", size)
	}
	if ca.Values&^(CANegative|CALogFilter) != 0 {
		b.Fail(parser.EnumValue("ColorAdjustment flags", ca.Values))
	}
	if ca.IlluminantIndex > IlluminantFluorescent {
		b.Fail(parser.EnumValue("Illuminant", ca.IlluminantIndex))
	}
	for _, gamma := range []uint16{ca.RedGamma, ca.GreenGamma, ca.BlueGamma} {
		if gamma < 2500 || gamma > 65000 {
			b.Failf("gamma %d outside [2500, 65000]", gamma)
		}
	}
	if ca.ReferenceBlack > 4000 {
		b.Failf("reference black %d exceeds 4000", ca.ReferenceBlack)
	}
	if ca.ReferenceWhite < 6000 || ca.ReferenceWhite > 10000 {
		b.Failf("reference white %d outside [6000, 10000]", ca.ReferenceWhite)
	}
	named := []struct {
		name string
		val  int16
	}{
		{"contrast", ca.Contrast},
		{"brightness", ca.Brightness},
		{"colorfulness", ca.Colorfulness},
		{"red-green tint", ca.RedGreenTint},
	}
	for _, v := range named {
		if v.val < -100 || v.val > 100 {
			b.Failf("%s %d outside [-100, 100]", v.name, v.val)
		}
	}
	return ca
}
