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

package emf

import (
	"strconv"
)

// Stages of a conversion, as reported in [ConvertError].
const (
	StageIO       = "io"
	StageParse    = "parse"
	StagePlay     = "play"
	StageGenerate = "generate"
	StageWMF      = "wmf"
)

// ConvertError is returned when a metafile cannot be converted.
//
// The underlying error is a [parser.ParseError] for the "parse" and "wmf"
// stages, and a [playback.PlayError] or an error returned by the
// [Player] for the "play" and "generate" stages.
type ConvertError struct {
	Stage string

	// Offset is the position of the record which caused the error, or -1
	// if the error is not associated with a record.
	Offset int64

	Err error
}

func (err *ConvertError) Error() string {
	msg := "cannot convert metafile"
	if err.Stage != "" {
		msg += " (" + err.Stage + ")"
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	if err.Offset >= 0 && err.Stage != StageParse && err.Stage != StageWMF {
		msg += " (record at byte " + strconv.FormatInt(err.Offset, 10) + ")"
	}
	return msg
}

func (err *ConvertError) Unwrap() error {
	return err.Err
}
