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
	"seehuhn.de/go/emf/gdi"
	"seehuhn.de/go/emf/parser"
)

// Comment identifiers, stored in the first four bytes of the comment data.
const (
	CommentEMFPlus = 0x2B464D45 // "EMF+"
	CommentSpool   = 0x4C4F5053 // "SPOL"
	CommentPublic  = 0x43494447 // "GDIC"
)

// PublicCommentType is the type of a public comment.
type PublicCommentType uint32

// These are the public comment types.
const (
	CommentBeginGroup      PublicCommentType = 0x00000002
	CommentEndGroup        PublicCommentType = 0x00000003
	CommentUnicodeString   PublicCommentType = 0x00000040
	CommentUnicodeEnd      PublicCommentType = 0x00000080
	CommentMultiFormats    PublicCommentType = 0x40000004
	CommentWindowsMetafile PublicCommentType = 0x80000001
)

// IsValid reports whether t is a defined public comment type.
func (t PublicCommentType) IsValid() bool {
	switch t {
	case CommentBeginGroup, CommentEndGroup, CommentUnicodeString,
		CommentUnicodeEnd, CommentMultiFormats, CommentWindowsMetafile:
		return true
	}
	return false
}

// Comment is the EMR_COMMENT record.
type Comment struct {
	// Identifier is the first four bytes of the data, or 0 if there are
	// fewer than four bytes of data.
	Identifier uint32

	// Data is the complete comment data, including the identifier.
	Data []byte

	// The following fields are only set for public comments.
	PublicType PublicCommentType
	Group      *CommentGroup // CommentBeginGroup
	Formats    []EmrFormat   // CommentMultiFormats
	WMF        *CommentWMF   // CommentWindowsMetafile
}

// RecordType implements the [Record] interface.
func (*Comment) RecordType() Type { return EMRComment }

// IsEMFPlus reports whether the comment contains EMF+ records.
func (r *Comment) IsEMFPlus() bool {
	return r.Identifier == CommentEMFPlus
}

// CommentGroup is the payload of a BEGINGROUP public comment.
type CommentGroup struct {
	Bounds      gdi.RectL
	Description string
}

// EmrFormat is one of the formats in a MULTIFORMATS public comment.
type EmrFormat struct {
	Signature uint32 // " EMF" or "EPS"
	Version   uint32
	Data      []byte
}

// CommentWMF is the payload of a WINDOWS_METAFILE public comment.
type CommentWMF struct {
	Version  uint16
	Checksum uint32
	Flags    uint32
	Metafile []byte
}

func decodeComment(tp Type, b *parser.Body) Record {
	if !minSize(tp, b, 12) {
		return nil
	}
	size := b.U32()
	rec := &Comment{Data: b.Bytes(b.Count(size, 1))}
	if b.Err() != nil {
		return nil
	}
	if len(rec.Data) < 4 {
		return rec
	}

	sub := parser.NewBody(parser.NewReader(rec.Data), 0,
		parser.NewSize(uint32(len(rec.Data))))
	rec.Identifier = sub.U32()
	if rec.Identifier != CommentPublic {
		return rec
	}
	rec.PublicType = gdi.ReadEnum[PublicCommentType](sub, "PublicCommentType")
	switch rec.PublicType {
	case CommentBeginGroup:
		g := &CommentGroup{Bounds: gdi.ReadRectL(sub)}
		n := sub.U32()
		buf := sub.Bytes(sub.Count(n, 2))
		if sub.Err() == nil {
			desc, err := parser.NullTerminatedUTF16LE(buf)
			sub.Fail(err)
			g.Description = desc
		}
		rec.Group = g
	case CommentMultiFormats:
		gdi.ReadRectL(sub) // output rectangle, in logical units
		n := sub.U32()
		k := sub.Count(n, 16)
		type span struct{ size, offset uint32 }
		spans := make([]span, k)
		rec.Formats = make([]EmrFormat, k)
		for i := range rec.Formats {
			rec.Formats[i].Signature = sub.U32()
			rec.Formats[i].Version = sub.U32()
			spans[i].size = sub.U32()
			spans[i].offset = sub.U32()
		}
		for i, s := range spans {
			if sub.Err() != nil {
				break
			}
			if uint64(s.offset)+uint64(s.size) > uint64(len(rec.Data)) {
				sub.Failf("comment format data [%d, %d) outside comment",
					s.offset, uint64(s.offset)+uint64(s.size))
				break
			}
			rec.Formats[i].Data = rec.Data[s.offset : s.offset+s.size]
		}
	case CommentWindowsMetafile:
		w := &CommentWMF{Version: sub.U16()}
		sub.Skip(2) // reserved
		w.Checksum = sub.U32()
		w.Flags = sub.U32()
		n := sub.U32()
		w.Metafile = sub.Bytes(sub.Count(n, 1))
		rec.WMF = w
	}
	if sub.Err() != nil {
		b.Fail(sub.Err())
		return nil
	}
	return rec
}

// Escape holds the records EMR_DRAWESCAPE and EMR_EXTESCAPE.
type Escape struct {
	Type   Type
	Escape uint32
	Data   []byte

	// EPS is set for the ENCAPSULATED_POSTSCRIPT escape.
	EPS *gdi.EpsData
}

// RecordType implements the [Record] interface.
func (r *Escape) RecordType() Type { return r.Type }

func decodeEscape(tp Type, b *parser.Body) Record {
	if !accepts(tp, b, escapeTypes) || !minSize(tp, b, 16) {
		return nil
	}
	rec := &Escape{Type: tp, Escape: b.U32()}
	n := b.U32()
	rec.Data = b.Bytes(b.Count(n, 1))
	if b.Err() != nil {
		return nil
	}
	if rec.Escape == gdi.EscapeEncapsulatedPostScript && len(rec.Data) > 0 {
		sub := parser.NewBody(parser.NewReader(rec.Data), 0, parser.NewSize(n))
		rec.EPS = gdi.ReadEpsData(sub, n)
		if sub.Err() != nil {
			b.Fail(sub.Err())
			return nil
		}
	}
	return rec
}

// NamedEscape is the EMR_NAMEDESCAPE record.
type NamedEscape struct {
	Escape uint32
	Driver string
	Data   []byte
}

// RecordType implements the [Record] interface.
func (*NamedEscape) RecordType() Type { return EMRNamedEscape }

func decodeNamedEscape(tp Type, b *parser.Body) Record {
	if !minSize(tp, b, 20) {
		return nil
	}
	rec := &NamedEscape{Escape: b.U32()}
	cbDriver := b.U32()
	cbData := b.U32()
	if b.Err() == nil && uint64(cbDriver)+uint64(cbData) > uint64(b.Remaining()) {
		b.Failf("named escape of %d+%d bytes exceeds the record size", cbDriver, cbData)
		return nil
	}
	driver := b.Bytes(int(cbDriver))
	rec.Data = b.Bytes(int(cbData))
	if b.Err() != nil {
		return nil
	}
	rec.Driver = decodeName(b, true, driver)
	return rec
}

// GLSRecord is the EMR_GLSRECORD record, which holds an OpenGL function.
type GLSRecord struct {
	Data []byte
}

// RecordType implements the [Record] interface.
func (*GLSRecord) RecordType() Type { return EMRGLSRecord }

func decodeGLSRecord(tp Type, b *parser.Body) Record {
	if !minSize(tp, b, 12) {
		return nil
	}
	n := b.U32()
	return &GLSRecord{Data: b.Bytes(b.Count(n, 1))}
}

// GLSBoundedRecord is the EMR_GLSBOUNDEDRECORD record.
type GLSBoundedRecord struct {
	Bounds gdi.RectL
	Data   []byte
}

// RecordType implements the [Record] interface.
func (*GLSBoundedRecord) RecordType() Type { return EMRGLSBoundedRecord }

func decodeGLSBoundedRecord(tp Type, b *parser.Body) Record {
	if !minSize(tp, b, 28) {
		return nil
	}
	rec := &GLSBoundedRecord{Bounds: gdi.ReadRectL(b)}
	n := b.U32()
	rec.Data = b.Bytes(b.Count(n, 1))
	return rec
}
