/*
 * reader.go, part of gomcnp.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package ptrac

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/sync/errgroup"

	mcnp "github.com/rmera/gomcnp"
)

// Reader reads the histories of a PTRAC file, one at a time.
type Reader struct {
	filename string
	f        *os.File
	dec      io.ReadCloser
	lines    *lineReader
	header   *Header
	opts     Options
	readable bool
}

// *zstd.Decoder's Close doesn't return an error, so it isn't an io.ReadCloser.
type zstdql struct {
	*zstd.Decoder
}

func (z zstdql) Close() error {
	z.Decoder.Close()
	return nil
}

// Open opens a PTRAC file and reads its header. Files ending in .zst and .gz
// are decompressed on the fly.
func Open(name string, o Options) (*Reader, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, &Error{message: err.Error(), filename: name, deco: []string{"Open"}, critical: true, err: err}
	}
	var dec io.ReadCloser
	in := bufio.NewReader(f)
	lname := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lname, ".zst"):
		var d *zstd.Decoder
		if d, err = zstd.NewReader(in); err == nil {
			dec = zstdql{d}
		}
	case strings.HasSuffix(lname, ".gz"):
		dec, err = gzip.NewReader(in)
	default:
		dec = io.NopCloser(in)
	}
	if err != nil {
		f.Close()
		return nil, &Error{message: "can't decompress: " + err.Error(), filename: name, deco: []string{"Open"}, critical: true, err: err}
	}
	R, err := newReader(dec, name, o)
	if err != nil {
		dec.Close()
		f.Close()
		return nil, errDecorate(err, "Open")
	}
	R.f = f
	return R, nil
}

// NewReader reads the header of the PTRAC data in r and returns a Reader for its histories.
func NewReader(r io.Reader, o Options) (*Reader, error) {
	R, err := newReader(io.NopCloser(r), "", o)
	if err != nil {
		return nil, errDecorate(err, "NewReader")
	}
	return R, nil
}

func newReader(r io.ReadCloser, name string, o Options) (*Reader, error) {
	R := &Reader{filename: name, dec: r, opts: o}
	R.lines = &lineReader{src: NewLineSource(r)}
	var err error
	R.header, err = decodeHeader(R.lines)
	if err != nil {
		return nil, R.error(err, "newReader")
	}
	R.readable = true
	o.logger().Debug("PTRAC header read", "file", name, "code", R.header.CodeName, "version", R.header.CodeVersion, "title", R.header.Title)
	return R, nil
}

// Header returns the header of the file.
func (R *Reader) Header() *Header {
	return R.header
}

// Readable returns true if the Reader can still give histories.
func (R *Reader) Readable() bool {
	return R.readable
}

// NextRaw returns the lines of the next history, without decoding them. At the
// end of the file it returns an error that satisfies mcnp.LastRecordError and
// errors.Is(err, io.EOF).
func (R *Reader) NextRaw() (*RawHistory, error) {
	if !R.readable {
		return nil, &Error{message: "reader not readable", filename: R.filename, deco: []string{"NextRaw"}, critical: true}
	}
	s, err := R.lines.next()
	if err == io.EOF {
		R.readable = false
		return nil, newlastHistoryError(R.filename, "NextRaw")
	}
	if err != nil {
		return nil, R.error(err, "NextRaw")
	}
	raw := &RawHistory{Line: R.lines.n, ILine: s}
	_, code, _, err := R.header.iLine(s)
	if err != nil {
		return nil, R.error(atLine(err, raw.Line), "NextRaw")
	}
	c, err := CategoryOf(code)
	if err != nil {
		return nil, R.error(atLine(err, raw.Line), "NextRaw")
	}
	for c != CategoryFinal {
		j, err := R.lines.mustNext("J line")
		if err != nil {
			return nil, R.error(err, "NextRaw")
		}
		p, err := R.lines.mustNext("P line")
		if err != nil {
			return nil, R.error(err, "NextRaw")
		}
		raw.Events = append(raw.Events, [2]string{j, p})
		jvals, vals, err := readEventLines(j, p)
		if err != nil {
			return nil, R.error(atLine(err, R.lines.n-1), "NextRaw")
		}
		code, err = nextCode(R.header, c, jvals, vals)
		if err != nil {
			return nil, R.error(atLine(err, R.lines.n-1), "NextRaw")
		}
		//framing is lost with an unknown code, so this is always fatal.
		if c, err = CategoryOf(code); err != nil {
			return nil, R.error(atLine(err, R.lines.n-1), "NextRaw")
		}
	}
	return raw, nil
}

// Next reads and decodes the next history. At the end of the file it returns
// an error that satisfies mcnp.LastRecordError and errors.Is(err, io.EOF).
func (R *Reader) Next() (*History, error) {
	raw, err := R.NextRaw()
	if err != nil {
		return nil, errDecorate(err, "Next")
	}
	h, err := decodeRaw(R.header, raw, R.opts)
	if err != nil {
		return nil, R.error(err, "Next")
	}
	return h, nil
}

// Close releases the file. The Reader can't be used after this call.
func (R *Reader) Close() error {
	R.readable = false
	var err error
	if R.dec != nil {
		err = R.dec.Close()
	}
	if R.f != nil {
		if err2 := R.f.Close(); err == nil {
			err = err2
		}
	}
	return err
}

func (R *Reader) error(err error, caller string) error {
	var e *Error
	if errors.As(err, &e) {
		e.Decorate(caller)
		return e
	}
	return &Error{message: err.Error(), filename: R.filename, deco: []string{caller}, critical: true, err: err}
}

// DecodeAll reads the remaining histories of R. The histories are delimited
// in the calling goroutine and decoded by up to workers goroutines (runtime.NumCPU()
// if workers is not positive). They are returned in file order. If several histories
// fail, the error for the first one in the file is returned.
func DecodeAll(ctx context.Context, R *Reader, workers int) ([]*History, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	type slot struct {
		h   *History
		err error
	}
	var slots []*slot
	parent := ctx
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	var readErr error
	for ctx.Err() == nil {
		raw, err := R.NextRaw()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			readErr = err
			break
		}
		s := new(slot)
		slots = append(slots, s)
		g.Go(func() error {
			h, err := decodeRaw(R.header, raw, R.opts)
			if err != nil {
				s.err = R.error(err, "DecodeAll")
				return s.err
			}
			s.h = h
			return nil
		})
	}
	//any error from the group is also in its slot.
	g.Wait()
	ret := make([]*History, len(slots))
	for i, s := range slots {
		if s.err != nil {
			return nil, s.err
		}
		ret[i] = s.h
	}
	if readErr != nil {
		return nil, errDecorate(readErr, "DecodeAll")
	}
	if err := parent.Err(); err != nil {
		return nil, err
	}
	return ret, nil
}

// Ptrac is a whole PTRAC file.
type Ptrac struct {
	Header    *Header
	Histories []*History
}

// ToArguments returns the dictionary form of the file.
func (P *Ptrac) ToArguments() map[string]any {
	hs := make([]map[string]any, len(P.Histories))
	for i, h := range P.Histories {
		hs[i] = h.ToArguments()
	}
	return map[string]any{"header": P.Header.ToArguments(), "histories": hs}
}

// Events returns the number of events in all the histories.
func (P *Ptrac) Events() int {
	n := 0
	for _, h := range P.Histories {
		n += h.Len()
	}
	return n
}

// ReadAll reads the whole PTRAC data in r.
func ReadAll(r io.Reader, o Options) (*Ptrac, error) {
	R, err := NewReader(r, o)
	if err != nil {
		return nil, errDecorate(err, "ReadAll")
	}
	return readAll(R)
}

// ReadFile reads a whole PTRAC file, see Open.
func ReadFile(name string, o Options) (*Ptrac, error) {
	R, err := Open(name, o)
	if err != nil {
		return nil, errDecorate(err, "ReadFile")
	}
	defer R.Close()
	return readAll(R)
}

func readAll(R *Reader) (*Ptrac, error) {
	P := &Ptrac{Header: R.Header()}
	for {
		h, err := R.Next()
		if err != nil {
			if _, ok := err.(mcnp.LastRecordError); ok {
				break
			}
			return nil, errDecorate(err, "readAll")
		}
		P.Histories = append(P.Histories, h)
	}
	return P, nil
}

//Errors

// errDecorate decorates err with the caller's name, if err implements mcnp.Error.
func errDecorate(err error, caller string) error {
	return mcnp.ErrDecorate(err, caller)
}

// Error is the error returned when a PTRAC file can't be read. It fulfills
// mcnp.RecordError. The underlying *mcnp.CardError, if any, is available through
// errors.As, so errors.Is(err, mcnp.ErrTruncated) and the like work.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
	err      error
}

func (err *Error) Error() string {
	name := err.filename
	if name == "" {
		name = "<stream>"
	}
	ret := fmt.Sprintf("ptrac file %s error: %s", name, err.message)
	if len(err.deco) > 0 {
		ret += " [" + strings.Join(err.deco, " < ") + "]"
	}
	return ret
}

// Decorate adds new information to the error.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func (err *Error) Unwrap() error { return err.err }

// FileName returns the file the error is associated with.
func (err *Error) FileName() string { return err.filename }

// Format returns "ptrac".
func (err *Error) Format() string { return "ptrac" }

// Critical returns true if the error is critical, false otherwise.
func (err *Error) Critical() bool { return err.critical }

// lastHistoryError implements mcnp.LastRecordError.
type lastHistoryError struct {
	deco     []string
	fileName string
}

// NormalLastRecordTermination does nothing.
func (E *lastHistoryError) NormalLastRecordTermination() {}

func (E *lastHistoryError) FileName() string { return E.fileName }

func (E *lastHistoryError) Error() string { return "EOF" }

func (E *lastHistoryError) Critical() bool { return false }

func (E *lastHistoryError) Format() string { return "ptrac" }

func (E *lastHistoryError) Unwrap() error { return io.EOF }

func (E *lastHistoryError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newlastHistoryError(filename string, caller string) *lastHistoryError {
	return &lastHistoryError{fileName: filename, deco: []string{caller}}
}
