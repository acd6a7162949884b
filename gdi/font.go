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
	"seehuhn.de/go/emf/parser"
)

// Sizes of the font structures, in bytes.
const (
	LogFontSize       = 92
	LogFontExSize     = LogFontSize + 128 + 64 + 64
	LogFontPanoseSize = 320

	// MaxDesignAxes is the maximum number of axes in a DesignVector.
	MaxDesignAxes = 16

	// MaxDesignVectorSize is the size of a DesignVector with
	// MaxDesignAxes axes.
	MaxDesignVectorSize = 8 + 4*MaxDesignAxes
)

// Font weights.
const (
	FWDontCare   = 0
	FWThin       = 100
	FWExtraLight = 200
	FWLight      = 300
	FWNormal     = 400
	FWMedium     = 500
	FWSemiBold   = 600
	FWBold       = 700
	FWExtraBold  = 800
	FWHeavy      = 900
)

// LogFont describes the basic attributes of a logical font.
type LogFont struct {
	// Height is the height of the font in logical units.  Positive values
	// give the cell height, negative values the character height.
	Height int32

	Width       int32
	Escapement  int32 // tenths of degrees
	Orientation int32 // tenths of degrees
	Weight      int32

	Italic    bool
	Underline bool
	StrikeOut bool

	CharSet        uint8
	OutPrecision   uint8
	ClipPrecision  uint8
	Quality        uint8
	PitchAndFamily uint8

	FaceName string
}

// ReadLogFont decodes a LogFont (92 bytes).
func ReadLogFont(b *parser.Body) LogFont {
	lf := LogFont{
		Height:         b.I32(),
		Width:          b.I32(),
		Escapement:     b.I32(),
		Orientation:    b.I32(),
		Weight:         b.I32(),
		Italic:         b.U8() != 0,
		Underline:      b.U8() != 0,
		StrikeOut:      b.U8() != 0,
		CharSet:        b.U8(),
		OutPrecision:   b.U8(),
		ClipPrecision:  b.U8(),
		Quality:        b.U8(),
		PitchAndFamily: b.U8(),
	}
	lf.FaceName = readUTF16Field(b, 64)
	if b.Err() == nil && (lf.Weight < 0 || lf.Weight > 1000) {
		b.Failf("font weight %d outside [0, 1000]", lf.Weight)
	}
	return lf
}

// LogFontEx extends LogFont with names for the full font, style and script.
type LogFontEx struct {
	LogFont
	FullName string
	Style    string
	Script   string
}

// ReadLogFontEx decodes a LogFontEx (348 bytes).
func ReadLogFontEx(b *parser.Body) LogFontEx {
	return LogFontEx{
		LogFont:  ReadLogFont(b),
		FullName: readUTF16Field(b, 128),
		Style:    readUTF16Field(b, 64),
		Script:   readUTF16Field(b, 64),
	}
}

// designVectorSignature identifies a DesignVector.
const designVectorSignature = 0x08007664

// DesignVector holds the values of the axes of a multiple master font.
type DesignVector struct {
	Values []int32
}

// ReadDesignVector decodes a DesignVector (8 bytes plus 4 bytes per axis).
func ReadDesignVector(b *parser.Body) DesignVector {
	signature := b.U32()
	n := b.U32()
	if b.Err() != nil {
		return DesignVector{}
	}
	if signature != designVectorSignature {
		b.Failf("DesignVector signature %#08x", signature)
		return DesignVector{}
	}
	if n > MaxDesignAxes {
		b.Failf("DesignVector has %d axes (max %d)", n, MaxDesignAxes)
		return DesignVector{}
	}
	k := b.Count(n, 4)
	res := DesignVector{Values: make([]int32, k)}
	for i := range res.Values {
		res.Values[i] = b.I32()
	}
	return res
}

// LogFontExDv is a LogFontEx with a design vector.
type LogFontExDv struct {
	LogFontEx
	DesignVector DesignVector
}

// ReadLogFontExDv decodes a LogFontExDv.
func ReadLogFontExDv(b *parser.Body) *LogFontExDv {
	return &LogFontExDv{
		LogFontEx:    ReadLogFontEx(b),
		DesignVector: ReadDesignVector(b),
	}
}

// Panose describes the visual characteristics of a font.
type Panose struct {
	FamilyType      uint8
	SerifStyle      uint8
	Weight          uint8
	Proportion      uint8
	Contrast        uint8
	StrokeVariation uint8
	ArmStyle        uint8
	Letterform      uint8
	Midline         uint8
	XHeight         uint8
}

// ReadPanose decodes a Panose structure (10 bytes).
func ReadPanose(b *parser.Body) Panose {
	return Panose{
		FamilyType:      b.U8(),
		SerifStyle:      b.U8(),
		Weight:          b.U8(),
		Proportion:      b.U8(),
		Contrast:        b.U8(),
		StrokeVariation: b.U8(),
		ArmStyle:        b.U8(),
		Letterform:      b.U8(),
		Midline:         b.U8(),
		XHeight:         b.U8(),
	}
}

// LogFontPanose is a LogFont with PANOSE information.
type LogFontPanose struct {
	LogFont
	FullName  string
	Style     string
	Version   uint32
	StyleSize uint32
	Match     uint32
	VendorID  uint32
	Culture   uint32
	Panose    Panose
}

// ReadLogFontPanose decodes a LogFontPanose (320 bytes).
func ReadLogFontPanose(b *parser.Body) *LogFontPanose {
	lf := &LogFontPanose{
		LogFont:   ReadLogFont(b),
		FullName:  readUTF16Field(b, 128),
		Style:     readUTF16Field(b, 64),
		Version:   b.U32(),
		StyleSize: b.U32(),
		Match:     b.U32(),
	}
	b.Skip(4) // reserved
	lf.VendorID = b.U32()
	lf.Culture = b.U32()
	lf.Panose = ReadPanose(b)
	b.Skip(2) // padding
	if b.Err() == nil && lf.Culture != 0 {
		b.Failf("LogFontPanose culture %d", lf.Culture)
	}
	return lf
}

// UniversalFontID identifies a physical font.
type UniversalFontID struct {
	Checksum uint32
	Index    uint32
}

// ReadUniversalFontID decodes a UniversalFontId (8 bytes).
func ReadUniversalFontID(b *parser.Body) UniversalFontID {
	return UniversalFontID{Checksum: b.U32(), Index: b.U32()}
}

// readUTF16Field decodes a fixed-size, null-terminated UTF-16 field.
func readUTF16Field(b *parser.Body, size int) string {
	buf := b.Bytes(size)
	if b.Err() != nil {
		return ""
	}
	s, err := parser.NullTerminatedUTF16LE(buf)
	if err != nil {
		b.Fail(err)
	}
	return s
}
