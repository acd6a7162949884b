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
	"strings"

	"seehuhn.de/go/emf/parser"
)

// PixelFormatFlags describe the properties of a pixel buffer.
type PixelFormatFlags uint32

// These are the flags defined for PixelFormatFlags.
const (
	PFDDoubleBuffer         PixelFormatFlags = 0x00000001
	PFDStereo               PixelFormatFlags = 0x00000002
	PFDDrawToWindow         PixelFormatFlags = 0x00000004
	PFDDrawToBitmap         PixelFormatFlags = 0x00000008
	PFDSupportGDI           PixelFormatFlags = 0x00000010
	PFDSupportOpenGL        PixelFormatFlags = 0x00000020
	PFDGenericFormat        PixelFormatFlags = 0x00000040
	PFDNeedPalette          PixelFormatFlags = 0x00000080
	PFDNeedSystemPalette    PixelFormatFlags = 0x00000100
	PFDSwapExchange         PixelFormatFlags = 0x00000200
	PFDSwapCopy             PixelFormatFlags = 0x00000400
	PFDSwapLayerBuffers     PixelFormatFlags = 0x00000800
	PFDGenericAccelerated   PixelFormatFlags = 0x00001000
	PFDSupportDirectDraw    PixelFormatFlags = 0x00002000
	PFDDirect3DAccelerated  PixelFormatFlags = 0x00004000
	PFDSupportComposition   PixelFormatFlags = 0x00008000
	PFDDepthDontCare        PixelFormatFlags = 0x20000000
	PFDDoubleBufferDontCare PixelFormatFlags = 0x40000000
	PFDStereoDontCare       PixelFormatFlags = 0x80000000
)

var pixelFormatFlagNames = []struct {
	flag PixelFormatFlags
	name string
}{
	{PFDDoubleBuffer, "PFD_DOUBLEBUFFER"},
	{PFDStereo, "PFD_STEREO"},
	{PFDDrawToWindow, "PFD_DRAW_TO_WINDOW"},
	{PFDDrawToBitmap, "PFD_DRAW_TO_BITMAP"},
	{PFDSupportGDI, "PFD_SUPPORT_GDI"},
	{PFDSupportOpenGL, "PFD_SUPPORT_OPENGL"},
	{PFDGenericFormat, "PFD_GENERIC_FORMAT"},
	{PFDNeedPalette, "PFD_NEED_PALETTE"},
	{PFDNeedSystemPalette, "PFD_NEED_SYSTEM_PALETTE"},
	{PFDSwapExchange, "PFD_SWAP_EXCHANGE"},
	{PFDSwapCopy, "PFD_SWAP_COPY"},
	{PFDSwapLayerBuffers, "PFD_SWAP_LAYER_BUFFERS"},
	{PFDGenericAccelerated, "PFD_GENERIC_ACCELERATED"},
	{PFDSupportDirectDraw, "PFD_SUPPORT_DIRECTDRAW"},
	{PFDDirect3DAccelerated, "PFD_DIRECT3D_ACCELERATED"},
	{PFDSupportComposition, "PFD_SUPPORT_COMPOSITION"},
	{PFDDepthDontCare, "PFD_DEPTH_DONTCARE"},
	{PFDDoubleBufferDontCare, "PFD_DOUBLEBUFFER_DONTCARE"},
	{PFDStereoDontCare, "PFD_STEREO_DONTCARE"},
}

// String returns the names of the flags which are set, separated by "|".
func (f PixelFormatFlags) String() string {
	var parts []string
	for _, n := range pixelFormatFlagNames {
		if f&n.flag != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// PixelType is the type of the pixel data.
type PixelType uint8

// These are the possible values for PixelType.
const (
	PFDTypeRGBA       PixelType = 0x00
	PFDTypeColorIndex PixelType = 0x01
)

// PixelFormatDescriptor describes the pixel format of an OpenGL drawing
// surface.
type PixelFormatDescriptor struct {
	Flags          PixelFormatFlags
	PixelType      PixelType
	ColorBits      uint8
	RedBits        uint8
	RedShift       uint8
	GreenBits      uint8
	GreenShift     uint8
	BlueBits       uint8
	BlueShift      uint8
	AlphaBits      uint8
	AlphaShift     uint8
	AccumBits      uint8
	AccumRedBits   uint8
	AccumGreenBits uint8
	AccumBlueBits  uint8
	AccumAlphaBits uint8
	DepthBits      uint8
	StencilBits    uint8
	AuxBuffers     uint8
	LayerType      uint8
	LayerMask      uint32
	VisibleMask    uint32
	DamageMask     uint32
}

// PixelFormatDescriptorSize is the size of an encoded
// PixelFormatDescriptor.
const PixelFormatDescriptorSize = 40

// ReadPixelFormatDescriptor decodes a PixelFormatDescriptor (40 bytes).
func ReadPixelFormatDescriptor(b *parser.Body) *PixelFormatDescriptor {
	size := b.U16()
	version := b.U16()
	pfd := &PixelFormatDescriptor{
		Flags:          PixelFormatFlags(b.U32()),
		PixelType:      PixelType(b.U8()),
		ColorBits:      b.U8(),
		RedBits:        b.U8(),
		RedShift:       b.U8(),
		GreenBits:      b.U8(),
		GreenShift:     b.U8(),
		BlueBits:       b.U8(),
		BlueShift:      b.U8(),
		AlphaBits:      b.U8(),
		AlphaShift:     b.U8(),
		AccumBits:      b.U8(),
		AccumRedBits:   b.U8(),
		AccumGreenBits: b.U8(),
		AccumBlueBits:  b.U8(),
		AccumAlphaBits: b.U8(),
		DepthBits:      b.U8(),
		StencilBits:    b.U8(),
		AuxBuffers:     b.U8(),
		LayerType:      b.U8(),
	}
	b.Skip(1) // reserved
	pfd.LayerMask = b.U32()
	pfd.VisibleMask = b.U32()
	pfd.DamageMask = b.U32()

	if b.Err() != nil {
		return nil
	}
	if size != PixelFormatDescriptorSize {
		b.Failf("PixelFormatDescriptor size %d", size)
	}
	if version != 1 {
		b.Failf("PixelFormatDescriptor version %d", version)
	}
	if pfd.PixelType > PFDTypeColorIndex {
		b.Fail(parser.EnumValue("PixelType", pfd.PixelType))
	}
	return pfd
}
