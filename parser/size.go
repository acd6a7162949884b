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

// Size tracks the number of bytes of a record which have been consumed.
//
// Consume does not check the upper bound.  Overshooting the declared size
// is reported by Remaining.
type Size struct {
	declared uint32
	consumed uint32
}

// NewSize returns a new Size for a record of the given declared length.
func NewSize(declared uint32) *Size {
	return &Size{declared: declared}
}

// Consume records that n bytes have been read.
func (s *Size) Consume(n int) {
	s.consumed += uint32(n)
}

// Declared returns the declared byte length of the record.
func (s *Size) Declared() uint32 {
	return s.declared
}

// Consumed returns the number of bytes consumed so far.
func (s *Size) Consumed() uint32 {
	return s.consumed
}

// Remaining returns the number of declared but not yet consumed bytes.
// If more bytes have been consumed than were declared, an UnexpectedPattern
// error is returned.
func (s *Size) Remaining() (uint32, error) {
	if s.consumed > s.declared {
		return 0, Unexpected("consumed %d bytes, but record size is %d",
			s.consumed, s.declared)
	}
	return s.declared - s.consumed, nil
}
