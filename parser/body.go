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

package parser

// Body reads the fields of a single record.
//
// Every value read through a Body is accounted for in the record's [Size].
// After the first error, all further reads return zero values and consume
// nothing; the error is reported by [Body.Err] and [Body.Finish].
type Body struct {
	r     *Reader
	size  *Size
	start int64
	err   error
}

// NewBody returns a Body for a record which starts at the given position
// in r.  The bytes already consumed (normally the eight header bytes)
// must be recorded in size.
func NewBody(r *Reader, start int64, size *Size) *Body {
	return &Body{r: r, size: size, start: start}
}

// Start returns the offset of the first byte of the record.
func (b *Body) Start() int64 {
	return b.start
}

// Size returns the size accounting of the record.
func (b *Body) Size() *Size {
	return b.size
}

// Consumed returns the number of record bytes consumed so far.
func (b *Body) Consumed() uint32 {
	return b.size.Consumed()
}

// Remaining returns the number of record bytes not yet consumed.
// If an error occurred, 0 is returned.
func (b *Body) Remaining() uint32 {
	n, err := b.size.Remaining()
	if err != nil {
		b.Fail(err)
		return 0
	}
	return n
}

// Err returns the first error which occurred while reading the record.
func (b *Body) Err() error {
	return b.err
}

// Fail records an error.  Only the first error is kept.
func (b *Body) Fail(err error) {
	if b.err != nil || err == nil {
		return
	}
	b.err = WithPos(err, b.r.Pos())
}

// Failf records an UnexpectedPattern error.
func (b *Body) Failf(format string, a ...any) {
	if b.err != nil {
		return
	}
	b.Fail(Unexpected(format, a...))
}

func (b *Body) check(err error, n int) bool {
	if err != nil {
		b.Fail(FailedRead(err))
		return false
	}
	b.size.Consume(n)
	return true
}

// U8 reads a uint8 value.
func (b *Body) U8() uint8 {
	if b.err != nil {
		return 0
	}
	x, err := b.r.ReadUInt8()
	if !b.check(err, 1) {
		return 0
	}
	return x
}

// U16 reads a uint16 value.
func (b *Body) U16() uint16 {
	if b.err != nil {
		return 0
	}
	x, err := b.r.ReadUInt16()
	if !b.check(err, 2) {
		return 0
	}
	return x
}

// I16 reads an int16 value.
func (b *Body) I16() int16 {
	return int16(b.U16())
}

// U32 reads a uint32 value.
func (b *Body) U32() uint32 {
	if b.err != nil {
		return 0
	}
	x, err := b.r.ReadUInt32()
	if !b.check(err, 4) {
		return 0
	}
	return x
}

// I32 reads an int32 value.
func (b *Body) I32() int32 {
	return int32(b.U32())
}

// F32 reads a float32 value.
func (b *Body) F32() float32 {
	if b.err != nil {
		return 0
	}
	x, err := b.r.ReadFloat32()
	if !b.check(err, 4) {
		return 0
	}
	return x
}

// Bytes reads n bytes.  For n == 0 an empty slice is returned.
func (b *Body) Bytes(n int) []byte {
	if b.err != nil {
		return nil
	}
	buf, err := b.r.ReadVariable(n)
	if !b.check(err, n) {
		return nil
	}
	return buf
}

// Skip discards n bytes.
func (b *Body) Skip(n int) {
	if b.err != nil || n == 0 {
		return
	}
	err := b.r.Skip(n)
	b.check(err, n)
}

// SkipTo discards the undefined space between the bytes consumed so far and
// the given offset, measured from the start of the record.
func (b *Body) SkipTo(offset uint32) {
	if b.err != nil {
		return
	}
	consumed := b.size.Consumed()
	if offset < consumed {
		b.Failf("offset %d points into already decoded data (%d bytes consumed)",
			offset, consumed)
		return
	}
	b.Skip(int(offset - consumed))
}

// Payload reads an offset-addressed buffer of length n.  A zero length means
// that the buffer is absent, in which case the offset is ignored.
func (b *Body) Payload(offset, n uint32) []byte {
	if n == 0 || b.err != nil {
		return nil
	}
	if uint64(offset)+uint64(n) > uint64(b.size.Declared()) {
		b.Failf("buffer [%d, %d) exceeds record size %d",
			offset, uint64(offset)+uint64(n), b.size.Declared())
		return nil
	}
	b.SkipTo(offset)
	return b.Bytes(int(n))
}

// Count validates that n elements of elemSize bytes each fit into the rest
// of the record.  It returns n as an int, or 0 if the check fails.
func (b *Body) Count(n uint32, elemSize int) int {
	if b.err != nil {
		return 0
	}
	if uint64(n)*uint64(elemSize) > uint64(b.Remaining()) {
		b.Failf("%d elements of %d bytes exceed the record size", n, elemSize)
		return 0
	}
	return int(n)
}

// Finish discards all remaining bytes of the record, so that the reader
// is positioned at the start of the next record.
func (b *Body) Finish() error {
	if b.err != nil {
		return b.err
	}
	b.Skip(int(b.Remaining()))
	return b.err
}
