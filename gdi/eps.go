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
	"seehuhn.de/go/emf/parser"
)

// EscapeEncapsulatedPostScript is the escape function which carries an
// EpsData object.
const EscapeEncapsulatedPostScript = 4116

// EpsData is an embedded EPS document, together with the parallelogram
// it is mapped to.
type EpsData struct {
	// Points holds the upper-left, upper-right and lower-left corners of
	// the output parallelogram.
	Points [3]PointXY28_4

	// PostScript is the EPS program.  It is not interpreted.
	PostScript []byte
}

const epsDataHeaderSize = 32

// ReadEpsData decodes an EpsData object which occupies size bytes.
func ReadEpsData(b *parser.Body, size uint32) *EpsData {
	sizeData := b.U32()
	version := b.U32()
	eps := &EpsData{}
	for i := range eps.Points {
		eps.Points[i] = PointXY28_4{X: b.I32(), Y: b.I32()}
	}
	if b.Err() != nil {
		return nil
	}
	if version != 1 {
		b.Failf("EpsData version %d", version)
		return nil
	}
	if sizeData < epsDataHeaderSize || sizeData > size {
		b.Failf("EpsData size %d (buffer has %d bytes)", sizeData, size)
		return nil
	}
	eps.PostScript = b.Bytes(int(sizeData - epsDataHeaderSize))
	return eps
}
