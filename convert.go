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
	"encoding/binary"
	"errors"
	"io"
	"log/slog"

	"seehuhn.de/go/emf/parser"
	"seehuhn.de/go/emf/playback"
	"seehuhn.de/go/emf/record"
	"seehuhn.de/go/emf/wmf"
)

// Fallback converts input which is not in EMF format.
type Fallback func(data []byte, logger *slog.Logger) ([]byte, error)

// Options can be used to control the conversion of a metafile.
// A nil *Options is valid and selects the default values.
type Options struct {
	// Logger receives diagnostic messages.  If this is nil, no messages
	// are logged.
	Logger *slog.Logger

	// Fallback is used when the input does not start with an EMR_HEADER
	// record.  The default is [wmf.Convert].
	Fallback Fallback
}

func (opt *Options) logger() *slog.Logger {
	if opt == nil || opt.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return opt.Logger
}

func (opt *Options) fallback() Fallback {
	if opt == nil || opt.Fallback == nil {
		return wmf.Convert
	}
	return opt.Fallback
}

// Tracker is implemented by players which keep a playback device context.
// After a record has been passed to the player, it is applied to the
// context returned by Context.  Context may return nil before the header
// record has been played.
type Tracker interface {
	Context() *playback.Context
}

// IsEMF reports whether data starts with the record type of EMR_HEADER.
func IsEMF(data []byte) bool {
	return len(data) >= 4 &&
		record.Type(binary.LittleEndian.Uint32(data)) == record.EMRHeader
}

// Convert reads a metafile from r and plays all records on p.  The output
// of p.Generate is returned.
//
// Input which is not in EMF format is passed to the fallback converter
// given in opt.  In this case p is not used.
func Convert(r io.Reader, p Player, opt *Options) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ConvertError{Stage: StageIO, Offset: -1, Err: err}
	}
	return ConvertBytes(data, p, opt)
}

// ConvertBytes is like [Convert], but reads the metafile from a byte slice.
func ConvertBytes(data []byte, p Player, opt *Options) ([]byte, error) {
	logger := opt.logger()

	if !IsEMF(data) {
		logger.Debug("not an EMF file, trying WMF", "size", len(data))
		out, err := opt.fallback()(data, logger)
		if err != nil {
			return nil, &ConvertError{Stage: StageWMF, Offset: -1, Err: err}
		}
		return out, nil
	}

	d, err := NewDecoder(data, logger)
	if err != nil {
		return nil, &ConvertError{Stage: StageParse, Offset: 0, Err: err}
	}

	tracker, _ := p.(Tracker)
	play := func(rec record.Record) error {
		err := Play(p, rec)
		if err == nil && tracker != nil {
			if ctx := tracker.Context(); ctx != nil {
				err = ctx.Apply(rec)
			}
		}
		if err != nil {
			return &ConvertError{Stage: StagePlay, Offset: d.Offset(), Err: err}
		}
		return nil
	}

	if err := play(d.Header()); err != nil {
		return nil, err
	}
	for {
		rec, err := d.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, &ConvertError{Stage: StageParse, Offset: d.Offset(), Err: err}
		}
		if err := play(rec); err != nil {
			return nil, err
		}
	}

	out, err := p.Generate()
	if err != nil {
		if !errors.Is(err, playback.ErrFailedGenerate) {
			err = &wrappedGenerateError{err}
		}
		return nil, &ConvertError{Stage: StageGenerate, Offset: -1, Err: err}
	}
	return out, nil
}

// wrappedGenerateError marks errors returned by Player.Generate, so that
// they can be matched against [playback.ErrFailedGenerate].
type wrappedGenerateError struct {
	err error
}

func (e *wrappedGenerateError) Error() string {
	return e.err.Error()
}

func (e *wrappedGenerateError) Unwrap() error {
	return e.err
}

func (e *wrappedGenerateError) Is(target error) bool {
	return target == playback.ErrFailedGenerate
}

// Decoder reads the records of an EMF file one by one.
type Decoder struct {
	r      *parser.Reader
	logger *slog.Logger
	header *record.Header
	offset int64
	done   bool
}

// NewDecoder checks that data starts with a valid EMR_HEADER record and
// returns a Decoder for the remaining records.
func NewDecoder(data []byte, logger *slog.Logger) (*Decoder, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if !IsEMF(data) {
		return nil, parser.WithPos(parser.Unexpected("not an EMF file"), 0)
	}

	d := &Decoder{
		r:      parser.NewReader(data),
		logger: logger,
	}
	rec, err := d.read()
	if err != nil {
		return nil, err
	}
	h, ok := rec.(*record.Header)
	if !ok {
		return nil, parser.WithPos(parser.Unexpected("first record is %s", rec.RecordType()), d.offset)
	}
	d.header = h
	logger.Debug("EMF header",
		"bounds", d.header.Bounds,
		"records", d.header.Records,
		"handles", d.header.Handles,
		"description", d.header.DescriptionParts())
	return d, nil
}

// Header returns the EMR_HEADER record.
func (d *Decoder) Header() *record.Header {
	return d.header
}

// Offset returns the position of the most recently read record.
func (d *Decoder) Offset() int64 {
	return d.offset
}

// Pos returns the current position in the input.  After the EMR_EOF
// record has been read, this is the end of the record.
func (d *Decoder) Pos() int64 {
	return d.r.Pos()
}

// Next returns the next record.  After the EMR_EOF record has been
// returned, Next returns [io.EOF].
func (d *Decoder) Next() (record.Record, error) {
	if d.done {
		return nil, io.EOF
	}
	rec, err := d.read()
	if err != nil {
		return nil, err
	}
	if rec.RecordType() == record.EMREOF {
		d.done = true
		if n := d.r.Len(); n > 0 {
			d.logger.Debug("ignoring data after EMR_EOF", "bytes", n)
		}
	}
	return rec, nil
}

func (d *Decoder) read() (record.Record, error) {
	for {
		start := d.r.Pos()
		d.offset = start
		if d.r.Len() == 0 {
			return nil, parser.WithPos(parser.Unexpected("missing EMR_EOF record"), start)
		}

		code, err := d.r.ReadUInt32()
		if err != nil {
			return nil, parser.FailedRead(err)
		}
		size, err := d.r.ReadUInt32()
		if err != nil {
			return nil, parser.FailedRead(err)
		}
		if size == 0 {
			d.logger.Debug("skipping empty record", "code", code, "offset", start)
			continue
		}
		if size < record.HeaderSize || size%4 != 0 {
			return nil, parser.WithPos(parser.Unexpected("invalid record size %d", size), start)
		}
		tp, err := record.ParseType(code)
		if err != nil {
			return nil, parser.WithPos(err, start)
		}
		if int64(size) > int64(d.r.Len())+record.HeaderSize {
			return nil, parser.WithPos(
				parser.Unexpected("%s record of %d bytes extends beyond the end of the input", tp, size),
				start)
		}
		if tp.IsReserved() {
			d.logger.Info("skipping reserved record", "type", tp, "size", size, "offset", start)
			if err := d.r.Skip(int(size - record.HeaderSize)); err != nil {
				return nil, parser.FailedRead(err)
			}
			continue
		}

		d.logger.Debug("record", "type", tp, "size", size, "offset", start)
		sz := parser.NewSize(size)
		sz.Consume(record.HeaderSize)
		rec, err := record.Decode(tp, parser.NewBody(d.r, start, sz))
		if err != nil {
			return nil, parser.WithPos(err, start)
		}
		return rec, nil
	}
}
