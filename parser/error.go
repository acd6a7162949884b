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

import (
	"errors"
	"fmt"
	"strconv"
)

// ReadError indicates that fewer bytes were available than requested.
type ReadError struct {
	Pos  int64
	Want int
	Have int
}

func (err *ReadError) Error() string {
	return "read " + strconv.Itoa(err.Want) + " bytes at offset " +
		strconv.FormatInt(err.Pos, 10) + ": only " + strconv.Itoa(err.Have) +
		" bytes available"
}

// ErrorKind classifies a [ParseError].
type ErrorKind int

// These are the possible values for ErrorKind.
const (
	// FailedReadBuffer means that the underlying buffer was too short.
	FailedReadBuffer ErrorKind = iota + 1

	// NotSupported means that a value was recognised but cannot be handled,
	// for example a brush style which is forbidden in this context.
	NotSupported

	// UnexpectedEnumValue means that a tag was outside its enumeration.
	UnexpectedEnumValue

	// UnexpectedPattern means that a structural invariant was violated.
	UnexpectedPattern
)

func (k ErrorKind) String() string {
	switch k {
	case FailedReadBuffer:
		return "failed to read buffer"
	case NotSupported:
		return "not supported"
	case UnexpectedEnumValue:
		return "unexpected enum value"
	case UnexpectedPattern:
		return "unexpected pattern"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Sentinel errors which can be used with [errors.Is] to test for the kind of
// a [ParseError].
var (
	ErrFailedReadBuffer    = errors.New("failed to read buffer")
	ErrNotSupported        = errors.New("not supported")
	ErrUnexpectedEnumValue = errors.New("unexpected enum value")
	ErrUnexpectedPattern   = errors.New("unexpected pattern")
)

// ParseError indicates that an EMF record could not be decoded.
type ParseError struct {
	Kind ErrorKind
	Pos  int64 // offset into the input, or -1 if unknown
	Msg  string
	Err  error
}

func (err *ParseError) Error() string {
	msg := err.Kind.String()
	if err.Msg != "" {
		msg += ": " + err.Msg
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	if err.Pos >= 0 {
		msg += " (at byte " + strconv.FormatInt(err.Pos, 10) + ")"
	}
	return msg
}

func (err *ParseError) Unwrap() error {
	return err.Err
}

// Is reports whether target is the sentinel error for the kind of err.
func (err *ParseError) Is(target error) bool {
	switch target {
	case ErrFailedReadBuffer:
		return err.Kind == FailedReadBuffer
	case ErrNotSupported:
		return err.Kind == NotSupported
	case ErrUnexpectedEnumValue:
		return err.Kind == UnexpectedEnumValue
	case ErrUnexpectedPattern:
		return err.Kind == UnexpectedPattern
	}
	return false
}

// Unexpected returns a new UnexpectedPattern error.
func Unexpected(format string, a ...any) error {
	return &ParseError{
		Kind: UnexpectedPattern,
		Pos:  -1,
		Msg:  fmt.Sprintf(format, a...),
	}
}

// Unsupported returns a new NotSupported error.
func Unsupported(format string, a ...any) error {
	return &ParseError{
		Kind: NotSupported,
		Pos:  -1,
		Msg:  fmt.Sprintf(format, a...),
	}
}

// EnumValue returns a new UnexpectedEnumValue error for the given
// enumeration name and value.
func EnumValue(name string, value any) error {
	return &ParseError{
		Kind: UnexpectedEnumValue,
		Pos:  -1,
		Msg:  fmt.Sprintf("%s %#x", name, value),
	}
}

// FailedRead converts a [ReadError] into a ParseError of kind
// FailedReadBuffer.  Other errors are returned unchanged.
func FailedRead(err error) error {
	var re *ReadError
	if errors.As(err, &re) {
		return &ParseError{
			Kind: FailedReadBuffer,
			Pos:  re.Pos,
			Err:  re,
		}
	}
	return err
}

// WithPos records the input position in err, if err is a ParseError without
// position information.
func WithPos(err error, pos int64) error {
	var pe *ParseError
	if errors.As(err, &pe) && pe.Pos < 0 {
		pe.Pos = pos
	}
	return err
}
