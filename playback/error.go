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
	"errors"
	"fmt"
	"strconv"
)

// ErrorKind classifies a [PlayError].
type ErrorKind int

// These are the possible values for ErrorKind.
const (
	// FailedGenerate means that the output could not be produced.
	FailedGenerate ErrorKind = iota + 1

	// InvalidBrush means that a brush could not be used.
	InvalidBrush

	// InvalidRecord means that a record is inconsistent with the current
	// state, for example an object index beyond the end of the object
	// table.
	InvalidRecord

	// UnexpectedGraphicsObject means that an object table slot holds a
	// different kind of object than the record requires.
	UnexpectedGraphicsObject

	// Unknown is used for all other playback errors.
	Unknown
)

func (k ErrorKind) String() string {
	switch k {
	case FailedGenerate:
		return "failed to generate output"
	case InvalidBrush:
		return "invalid brush"
	case InvalidRecord:
		return "invalid record"
	case UnexpectedGraphicsObject:
		return "unexpected graphics object"
	case Unknown:
		return "unknown playback error"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Sentinel errors which can be used with [errors.Is] to test for the kind of
// a [PlayError].
var (
	ErrFailedGenerate           = errors.New("failed to generate output")
	ErrInvalidBrush             = errors.New("invalid brush")
	ErrInvalidRecord            = errors.New("invalid record")
	ErrUnexpectedGraphicsObject = errors.New("unexpected graphics object")
	ErrUnknown                  = errors.New("unknown playback error")
)

// PlayError indicates that a decoded record could not be played back.
type PlayError struct {
	Kind ErrorKind
	Msg  string
}

func (err *PlayError) Error() string {
	if err.Msg == "" {
		return err.Kind.String()
	}
	return err.Kind.String() + ": " + err.Msg
}

// Is reports whether target is the sentinel error for the kind of err.
func (err *PlayError) Is(target error) bool {
	switch target {
	case ErrFailedGenerate:
		return err.Kind == FailedGenerate
	case ErrInvalidBrush:
		return err.Kind == InvalidBrush
	case ErrInvalidRecord:
		return err.Kind == InvalidRecord
	case ErrUnexpectedGraphicsObject:
		return err.Kind == UnexpectedGraphicsObject
	case ErrUnknown:
		return err.Kind == Unknown
	}
	return false
}

// Errorf returns a new PlayError of the given kind.
func Errorf(kind ErrorKind, format string, a ...any) error {
	return &PlayError{Kind: kind, Msg: fmt.Sprintf(format, a...)}
}
