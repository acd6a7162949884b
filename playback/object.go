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
	"fmt"

	"seehuhn.de/go/emf/gdi"
)

// GraphicsObject is an entry in the object table.
type GraphicsObject interface {
	// Kind returns a short, human readable name for the object type.
	Kind() string
}

// Empty marks an unused slot in the object table.
type Empty struct{}

// Kind implements the [GraphicsObject] interface.
func (Empty) Kind() string { return "empty" }

// Self is stored in slot 0 of the object table, which refers to the
// metafile itself.
type Self struct{}

// Kind implements the [GraphicsObject] interface.
func (Self) Kind() string { return "self" }

// Bitmap is a bitmap object.
type Bitmap struct {
	DIB *gdi.DIB
}

// Kind implements the [GraphicsObject] interface.
func (*Bitmap) Kind() string { return "bitmap" }

// Brush is a logical brush.  A nil Brush field is the null brush.
type Brush struct {
	Brush gdi.Brush
}

// Kind implements the [GraphicsObject] interface.
func (*Brush) Kind() string { return "brush" }

// Pen is a logical pen.
type Pen struct {
	Pen *gdi.LogPenEx
}

// Kind implements the [GraphicsObject] interface.
func (*Pen) Kind() string { return "pen" }

// Font is a logical font.
type Font struct {
	LogFont gdi.LogFont

	// Panose is set for fonts created from a LogFontPanose structure.
	Panose *gdi.Panose
}

// Kind implements the [GraphicsObject] interface.
func (*Font) Kind() string { return "font" }

// FontDV is a logical font with a design vector for multiple master fonts.
type FontDV struct {
	Font *gdi.LogFontExDv
}

// Kind implements the [GraphicsObject] interface.
func (*FontDV) Kind() string { return "font with design vector" }

// Palette is a logical palette.
type Palette struct {
	Palette *gdi.LogPalette
}

// Kind implements the [GraphicsObject] interface.
func (*Palette) Kind() string { return "palette" }

// ColorSpace is a logical color space.
type ColorSpace struct {
	Space *gdi.LogColorSpace

	// Wide is set for color spaces created by EMR_CREATECOLORSPACEW.
	Wide bool

	// Profile holds the embedded color profile, if any.
	Profile []byte
}

// Kind implements the [GraphicsObject] interface.
func (*ColorSpace) Kind() string { return "color space" }

// ObjectTable holds the graphics objects created by a metafile.
//
// Slot 0 refers to the metafile itself.  The remaining slots are filled by
// the object creation records and emptied again by EMR_DELETEOBJECT.
type ObjectTable struct {
	slots []GraphicsObject
}

// NewObjectTable allocates a table with n usable slots, numbered 1, ..., n.
func NewObjectTable(n int) *ObjectTable {
	slots := make([]GraphicsObject, n+1)
	slots[0] = Self{}
	for i := 1; i <= n; i++ {
		slots[i] = Empty{}
	}
	return &ObjectTable{slots: slots}
}

// Len returns the number of slots, including slot 0.
func (t *ObjectTable) Len() int {
	return len(t.slots)
}

// Contains reports whether idx is a valid, non-zero slot index.
func (t *ObjectTable) Contains(idx uint32) bool {
	return idx > 0 && uint64(idx) < uint64(len(t.slots))
}

// Get returns the object in slot idx.
// The function panics if idx is out of range.
func (t *ObjectTable) Get(idx uint32) GraphicsObject {
	return t.slots[idx]
}

// Set stores obj in slot idx.  Slot 0 is reserved and is never
// overwritten.  The function panics if idx is out of range.
func (t *ObjectTable) Set(idx uint32, obj GraphicsObject) {
	if idx == 0 {
		return
	}
	t.slots[idx] = obj
}

// Delete empties slot idx.  The table never shrinks.
func (t *ObjectTable) Delete(idx uint32) {
	t.Set(idx, Empty{})
}

// lookup returns the object in slot idx, converted to type T.
func lookup[T GraphicsObject](t *ObjectTable, idx uint32) (T, error) {
	var zero T
	if !t.Contains(idx) {
		return zero, Errorf(InvalidRecord,
			"object index %d outside table of size %d", idx, t.Len())
	}
	obj, ok := t.slots[idx].(T)
	if !ok {
		return zero, Errorf(UnexpectedGraphicsObject,
			"slot %d holds %s, not %s", idx, t.slots[idx].Kind(), zero.Kind())
	}
	return obj, nil
}

// store puts obj into slot idx, after checking the index.
func (t *ObjectTable) store(idx uint32, obj GraphicsObject) error {
	if !t.Contains(idx) {
		return Errorf(InvalidRecord,
			"cannot create %s at index %d, table size is %d", obj.Kind(), idx, t.Len())
	}
	t.slots[idx] = obj
	return nil
}

func (t *ObjectTable) String() string {
	used := 0
	for _, obj := range t.slots[1:] {
		if _, isEmpty := obj.(Empty); !isEmpty {
			used++
		}
	}
	return fmt.Sprintf("object table (%d of %d slots used)", used, len(t.slots)-1)
}
