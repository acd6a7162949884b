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
	"seehuhn.de/go/emf/gdi"
)

// Default colors of the DC brush and the DC pen.
var (
	DefaultDCBrushColor = gdi.White
	DefaultDCPenColor   = gdi.Black
)

// FromStock returns the graphics object for a stock object.
//
// The DCBrush and DCPen stock objects depend on the current colors of the
// device context brush and pen, which are given by dcBrush and dcPen.
func FromStock(id gdi.StockObject, dcBrush, dcPen gdi.ColorRef) (GraphicsObject, error) {
	switch id {
	case gdi.WhiteBrush:
		return solidBrush(gdi.RGB(0xFF, 0xFF, 0xFF)), nil
	case gdi.LtGrayBrush:
		return solidBrush(gdi.RGB(0xC0, 0xC0, 0xC0)), nil
	case gdi.GrayBrush:
		return solidBrush(gdi.RGB(0x80, 0x80, 0x80)), nil
	case gdi.DkGrayBrush:
		return solidBrush(gdi.RGB(0x40, 0x40, 0x40)), nil
	case gdi.BlackBrush:
		return solidBrush(gdi.RGB(0, 0, 0)), nil
	case gdi.NullBrush:
		return &Brush{}, nil
	case gdi.DCBrush:
		return solidBrush(dcBrush), nil

	case gdi.WhitePen:
		return solidPen(gdi.RGB(0xFF, 0xFF, 0xFF)), nil
	case gdi.BlackPen:
		return solidPen(gdi.RGB(0, 0, 0)), nil
	case gdi.NullPen:
		return &Pen{Pen: &gdi.LogPenEx{Style: gdi.PSNull}}, nil
	case gdi.DCPen:
		return solidPen(dcPen), nil

	case gdi.OEMFixedFont:
		return stockFont("Terminal", 12, 8, gdi.FWNormal, charSetOEM, fixedPitch|familyModern), nil
	case gdi.ANSIFixedFont:
		return stockFont("Courier", 12, 9, gdi.FWNormal, charSetANSI, fixedPitch|familyModern), nil
	case gdi.ANSIVarFont:
		return stockFont("MS Sans Serif", 12, 9, gdi.FWNormal, charSetANSI, variablePitch|familySwiss), nil
	case gdi.SystemFont, gdi.DeviceDefaultFont:
		return stockFont("System", 16, 7, gdi.FWBold, charSetANSI, variablePitch|familySwiss), nil
	case gdi.SystemFixedFont:
		return stockFont("Fixedsys", 15, 8, gdi.FWNormal, charSetANSI, fixedPitch|familyModern), nil
	case gdi.DefaultGUIFont:
		return stockFont("MS Shell Dlg", -11, 0, gdi.FWNormal, charSetANSI, variablePitch|familySwiss), nil

	case gdi.DefaultPalette:
		return &Palette{Palette: gdi.SystemPalette()}, nil
	}
	return nil, Errorf(InvalidRecord, "unknown stock object %#08x", uint32(id))
}

// Character sets and pitch and family values for the stock fonts.
const (
	charSetANSI = 0x00
	charSetOEM  = 0xFF

	fixedPitch    = 0x01
	variablePitch = 0x02
	familySwiss   = 0x20
	familyModern  = 0x30
)

func solidBrush(c gdi.ColorRef) *Brush {
	return &Brush{Brush: gdi.SolidBrush{Color: c}}
}

func solidPen(c gdi.ColorRef) *Pen {
	return &Pen{Pen: &gdi.LogPenEx{
		Style: gdi.PSSolid,
		Width: 1,
		Brush: gdi.SolidBrush{Color: c},
	}}
}

func stockFont(name string, height, width, weight int32, charSet, pitch uint8) *Font {
	return &Font{LogFont: gdi.LogFont{
		Height:         height,
		Width:          width,
		Weight:         weight,
		CharSet:        charSet,
		PitchAndFamily: pitch,
		FaceName:       name,
	}}
}
