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

package record

import (
	"strings"

	"seehuhn.de/go/emf/gdi"
	"seehuhn.de/go/emf/parser"
)

// Signature is the value of the RecordSignature field of EMR_HEADER.
const Signature = 0x464D4520 // " EMF"

// Version is the only supported metafile format version.
const Version = 0x00010000

const (
	headerSize     = 88
	headerExt1Size = 100
	headerExt2Size = 108
)

// Header is the EMR_HEADER record.  It is the first record of every EMF
// file.
type Header struct {
	// Bounds is the bounding rectangle of the image, in device units.
	Bounds gdi.RectL

	// Frame is the size of the image, in units of 0.01 mm.
	Frame gdi.RectL

	Version uint32

	// Bytes is the size of the metafile in bytes.
	Bytes uint32

	// Records is the number of records in the metafile.
	Records uint32

	// Handles is the number of entries in the object table, including
	// index 0.
	Handles uint16

	// Description is the optional description string.  It normally holds
	// the name of the application and the name of the picture, separated by
	// a null character.
	Description string

	PalEntries  uint32
	Device      gdi.SizeL // pixels
	Millimeters gdi.SizeL

	// These fields are only present in headers with extensions.
	HasExtension1 bool
	PixelFormat   *gdi.PixelFormatDescriptor
	OpenGL        bool
	HasExtension2 bool
	Micrometers   gdi.SizeL
}

// RecordType implements the [Record] interface.
func (*Header) RecordType() Type { return EMRHeader }

// DescriptionParts returns the non-empty null-separated parts of the
// description string.
func (h *Header) DescriptionParts() []string {
	var res []string
	for _, s := range strings.Split(h.Description, "\x00") {
		if s != "" {
			res = append(res, s)
		}
	}
	return res
}

func decodeHeader(tp Type, b *parser.Body) Record {
	if !minSize(tp, b, headerSize) {
		return nil
	}
	h := &Header{
		Bounds: gdi.ReadRectL(b),
		Frame:  gdi.ReadRectL(b),
	}
	signature := b.U32()
	h.Version = b.U32()
	h.Bytes = b.U32()
	h.Records = b.U32()
	h.Handles = b.U16()
	reserved := b.U16()
	nDescription := b.U32()
	offDescription := b.U32()
	h.PalEntries = b.U32()
	h.Device = gdi.ReadSizeL(b)
	h.Millimeters = gdi.ReadSizeL(b)
	if b.Err() != nil {
		return nil
	}

	switch {
	case signature != Signature:
		b.Failf("invalid EMF signature %#08x", signature)
	case h.Version != Version:
		b.Fail(parser.Unsupported("EMF version %#08x", h.Version))
	case reserved != 0:
		b.Failf("reserved header field is %d", reserved)
	case h.Handles == 0:
		b.Failf("object table has no entries")
	}
	if b.Err() != nil {
		return nil
	}

	declared := b.Size().Declared()
	var cbPixelFormat, offPixelFormat uint32
	if declared >= headerExt1Size &&
		(nDescription == 0 || offDescription >= headerExt1Size) {
		h.HasExtension1 = true
		cbPixelFormat = b.U32()
		offPixelFormat = b.U32()
		h.OpenGL = b.U32() != 0

		if declared >= headerExt2Size &&
			(nDescription == 0 || offDescription >= headerExt2Size) &&
			(cbPixelFormat == 0 || offPixelFormat >= headerExt2Size) {
			h.HasExtension2 = true
			h.Micrometers = gdi.ReadSizeL(b)
		}
	}

	bufs := readBuffers(b,
		buffer{offDescription, 2 * nDescription},
		buffer{offPixelFormat, cbPixelFormat})
	if b.Err() != nil {
		return nil
	}
	if bufs[0] != nil {
		desc, err := parser.UTF16LEToString(bufs[0])
		if err != nil {
			b.Fail(err)
			return nil
		}
		h.Description = desc
	}
	if bufs[1] != nil {
		if len(bufs[1]) != gdi.PixelFormatDescriptorSize {
			b.Failf("pixel format descriptor has %d bytes", len(bufs[1]))
			return nil
		}
		sub := parser.NewBody(parser.NewReader(bufs[1]), 0,
			parser.NewSize(gdi.PixelFormatDescriptorSize))
		h.PixelFormat = gdi.ReadPixelFormatDescriptor(sub)
		if sub.Err() != nil {
			b.Fail(sub.Err())
			return nil
		}
	}
	return h
}

// EOF is the EMR_EOF record.  It is the last record of every EMF file.
type EOF struct {
	// Palette holds the palette entries of the metafile, if any.
	Palette []gdi.PaletteEntry
}

// RecordType implements the [Record] interface.
func (*EOF) RecordType() Type { return EMREOF }

func decodeEOF(tp Type, b *parser.Body) Record {
	if !minSize(tp, b, 20) {
		return nil
	}
	nPalEntries := b.U32()
	offPalEntries := b.U32()
	rec := &EOF{}
	if nPalEntries > 0 {
		b.SkipTo(offPalEntries)
		rec.Palette = gdi.ReadPaletteEntries(b, nPalEntries)
	}

	// The SizeLast field is located at the end of the record.
	declared := b.Size().Declared()
	b.SkipTo(declared - 4)
	sizeLast := b.U32()
	if b.Err() != nil {
		return nil
	}
	if sizeLast != declared {
		b.Failf("EMR_EOF SizeLast is %d, record size is %d", sizeLast, declared)
		return nil
	}
	return rec
}
