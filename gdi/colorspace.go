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

// CIEXYZ is a color in the CIE XYZ color space, using 2.30 fixed point
// values.
type CIEXYZ struct {
	X, Y, Z int32
}

// CIEXYZTriple holds the endpoints of the red, green and blue primaries.
type CIEXYZTriple struct {
	Red, Green, Blue CIEXYZ
}

func readCIEXYZ(b *parser.Body) CIEXYZ {
	return CIEXYZ{X: b.I32(), Y: b.I32(), Z: b.I32()}
}

// LogicalColorSpaceType identifies a color space.
type LogicalColorSpaceType uint32

// These are the possible values for LogicalColorSpaceType.
const (
	LCSCalibratedRGB     LogicalColorSpaceType = 0x00000000
	LCSsRGB              LogicalColorSpaceType = 0x73524742 // "sRGB"
	LCSWindowsColorSpace LogicalColorSpaceType = 0x57696E20 // "Win "
	LCSProfileLinked     LogicalColorSpaceType = 0x4C494E4B // "LINK"
	LCSProfileEmbedded   LogicalColorSpaceType = 0x4D424544 // "MBED"
)

// IsValid reports whether t is a defined color space type.
func (t LogicalColorSpaceType) IsValid() bool {
	switch t {
	case LCSCalibratedRGB, LCSsRGB, LCSWindowsColorSpace,
		LCSProfileLinked, LCSProfileEmbedded:
		return true
	}
	return false
}

// GamutMappingIntent is the rendering intent of a color space.
type GamutMappingIntent uint32

// These are the possible values for GamutMappingIntent.
const (
	LCSGMBusiness        GamutMappingIntent = 0x00000001
	LCSGMGraphics        GamutMappingIntent = 0x00000002
	LCSGMImages          GamutMappingIntent = 0x00000004
	LCSGMAbsColorimetric GamutMappingIntent = 0x00000008
)

// IsValid reports whether i is a defined intent.
func (i GamutMappingIntent) IsValid() bool {
	switch i {
	case LCSGMBusiness, LCSGMGraphics, LCSGMImages, LCSGMAbsColorimetric:
		return true
	}
	return false
}

const (
	logColorSpaceSignature = 0x50534F43 // "PSOC"
	logColorSpaceVersion   = 0x00000400
)

// LogColorSpace describes a logical color space.
type LogColorSpace struct {
	Type       LogicalColorSpaceType
	Intent     GamutMappingIntent
	Endpoints  CIEXYZTriple
	GammaRed   uint32
	GammaGreen uint32
	GammaBlue  uint32

	// Filename names a color profile.  In the ASCII variant this is
	// decoded using the Windows-1252 code page.
	Filename string
}

func readLogColorSpaceCommon(b *parser.Body) LogColorSpace {
	signature := b.U32()
	version := b.U32()
	b.U32() // size, not used
	cs := LogColorSpace{
		Type:   ReadEnum[LogicalColorSpaceType](b, "LogicalColorSpaceType"),
		Intent: ReadEnum[GamutMappingIntent](b, "GamutMappingIntent"),
		Endpoints: CIEXYZTriple{
			Red:   readCIEXYZ(b),
			Green: readCIEXYZ(b),
			Blue:  readCIEXYZ(b),
		},
		GammaRed:   b.U32(),
		GammaGreen: b.U32(),
		GammaBlue:  b.U32(),
	}
	if b.Err() != nil {
		return cs
	}
	if signature != logColorSpaceSignature {
		b.Failf("LogColorSpace signature %#08x", signature)
	}
	if version != logColorSpaceVersion {
		b.Failf("LogColorSpace version %#x", version)
	}
	return cs
}

// LogColorSpaceSize and LogColorSpaceWSize are the encoded sizes of the
// ASCII and Unicode variants.
const (
	LogColorSpaceSize  = 20 + 36 + 12 + 260
	LogColorSpaceWSize = 20 + 36 + 12 + 520
)

// ReadLogColorSpace decodes the ASCII variant (328 bytes).
func ReadLogColorSpace(b *parser.Body) *LogColorSpace {
	cs := readLogColorSpaceCommon(b)
	name := b.Bytes(260)
	cs.Filename = parser.NullTerminatedANSI(name)
	return &cs
}

// ReadLogColorSpaceW decodes the Unicode variant (588 bytes).
func ReadLogColorSpaceW(b *parser.Body) *LogColorSpace {
	cs := readLogColorSpaceCommon(b)
	cs.Filename = readUTF16Field(b, 520)
	return &cs
}
