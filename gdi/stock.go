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

import "strconv"

// StockObject identifies one of the predefined graphics objects.  Stock
// objects are referenced by object indices with the high bit set.
type StockObject uint32

// These are the stock objects defined for EMF files.
const (
	WhiteBrush        StockObject = 0x80000000
	LtGrayBrush       StockObject = 0x80000001
	GrayBrush         StockObject = 0x80000002
	DkGrayBrush       StockObject = 0x80000003
	BlackBrush        StockObject = 0x80000004
	NullBrush         StockObject = 0x80000005
	WhitePen          StockObject = 0x80000006
	BlackPen          StockObject = 0x80000007
	NullPen           StockObject = 0x80000008
	OEMFixedFont      StockObject = 0x8000000A
	ANSIFixedFont     StockObject = 0x8000000B
	ANSIVarFont       StockObject = 0x8000000C
	SystemFont        StockObject = 0x8000000D
	DeviceDefaultFont StockObject = 0x8000000E
	DefaultPalette    StockObject = 0x8000000F
	SystemFixedFont   StockObject = 0x80000010
	DefaultGUIFont    StockObject = 0x80000011
	DCBrush           StockObject = 0x80000012
	DCPen             StockObject = 0x80000013
)

// StockFlag is set in object indices which refer to stock objects.
const StockFlag = 0x80000000

// IsStock reports whether the object index refers to a stock object.
func IsStock(index uint32) bool {
	return index&StockFlag != 0
}

// IsValid reports whether s is a defined stock object.
func (s StockObject) IsValid() bool {
	return s >= WhiteBrush && s <= DCPen && s != 0x80000009
}

var stockNames = map[StockObject]string{
	WhiteBrush:        "WHITE_BRUSH",
	LtGrayBrush:       "LTGRAY_BRUSH",
	GrayBrush:         "GRAY_BRUSH",
	DkGrayBrush:       "DKGRAY_BRUSH",
	BlackBrush:        "BLACK_BRUSH",
	NullBrush:         "NULL_BRUSH",
	WhitePen:          "WHITE_PEN",
	BlackPen:          "BLACK_PEN",
	NullPen:           "NULL_PEN",
	OEMFixedFont:      "OEM_FIXED_FONT",
	ANSIFixedFont:     "ANSI_FIXED_FONT",
	ANSIVarFont:       "ANSI_VAR_FONT",
	SystemFont:        "SYSTEM_FONT",
	DeviceDefaultFont: "DEVICE_DEFAULT_FONT",
	DefaultPalette:    "DEFAULT_PALETTE",
	SystemFixedFont:   "SYSTEM_FIXED_FONT",
	DefaultGUIFont:    "DEFAULT_GUI_FONT",
	DCBrush:           "DC_BRUSH",
	DCPen:             "DC_PEN",
}

func (s StockObject) String() string {
	if name, ok := stockNames[s]; ok {
		return name
	}
	return "StockObject(" + strconv.FormatUint(uint64(s), 16) + ")"
}
