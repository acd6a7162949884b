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

// Package emf reads Enhanced Metafiles (EMF) and plays them back.
//
// An EMF file is a sequence of records.  The first record is always
// EMR_HEADER, the last record is always EMR_EOF.  [Convert] decodes the
// records one by one and passes them to the corresponding method of a
// [Player], which typically renders the image into a different format:
//
//	p := svg.NewPlayer(nil)
//	out, err := emf.Convert(r, p, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Players which need to know the state of the device context, for example
// the current transformation or the selected pen, implement the [Tracker]
// interface.  The records are then applied to a [playback.Context] after
// the player has seen them.
//
// Input which does not start with an EMR_HEADER record is assumed to be a
// Windows Metafile (WMF) and is passed to a fallback converter instead.
//
// The sub-packages implement the individual layers: [parser] reads binary
// data, [gdi] decodes shared data structures, [record] decodes individual
// records and [playback] tracks the state of the device context.
package emf
