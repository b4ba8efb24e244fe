/*
 * format.go, part of gomcnp.
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
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	mcnp "github.com/rmera/gomcnp"
)

// Value is one field read with a FORTRAN edit descriptor. Present is false for
// blank fields, and for fields past the end of a short record.
type Value struct {
	Present bool
	Int     int64   //set for I fields
	Float   float64 //set for I, E and F fields
	Str     string  //set for A fields
}

type descriptor struct {
	verb     byte //'x', 'i', 'e', 'f' or 'a'
	width    int
	decimals int
}

// Format is a FORTRAN format specification such as "(1x,30i4)". Only the nX, rIw,
// rEw.d, rFw.d and rAw edit descriptors are supported, which is all PTRAC files need.
// A Format can be shared by several goroutines.
type Format struct {
	src   string
	descs []descriptor
}

var descRe = regexp.MustCompile(`^(\d*)([xiefad])(\d*)(?:\.(\d+))?$`)

// ParseFormat reads a format specification. The enclosing parentheses are optional.
func ParseFormat(spec string) (*Format, error) {
	s := strings.ToLower(strings.TrimSpace(spec))
	s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	F := &Format{src: spec}
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		m := descRe.FindStringSubmatch(item)
		if m == nil {
			return nil, mcnp.Errorf(mcnp.ErrInvalidFormat, item, "unsupported edit descriptor in %s", spec)
		}
		repeat := 1
		if m[1] != "" {
			repeat, _ = strconv.Atoi(m[1])
		}
		verb := m[2][0]
		if verb == 'd' {
			verb = 'e'
		}
		if verb == 'x' {
			if m[3] != "" || m[4] != "" {
				return nil, mcnp.Errorf(mcnp.ErrInvalidFormat, item, "X takes no width in %s", spec)
			}
			F.descs = append(F.descs, descriptor{verb: 'x', width: repeat})
			continue
		}
		if m[3] == "" {
			return nil, mcnp.Errorf(mcnp.ErrInvalidFormat, item, "missing field width in %s", spec)
		}
		d := descriptor{verb: verb}
		d.width, _ = strconv.Atoi(m[3])
		if m[4] != "" {
			if verb == 'i' || verb == 'a' {
				return nil, mcnp.Errorf(mcnp.ErrInvalidFormat, item, "decimals given for an %c field in %s", verb, spec)
			}
			d.decimals, _ = strconv.Atoi(m[4])
		}
		for i := 0; i < repeat; i++ {
			F.descs = append(F.descs, d)
		}
	}
	return F, nil
}

// MustParseFormat is like ParseFormat but panics if spec can't be read.
func MustParseFormat(spec string) *Format {
	F, err := ParseFormat(spec)
	if err != nil {
		panic(err.Error())
	}
	return F
}

// Len returns the number of values a record read with F has.
func (F *Format) Len() int {
	n := 0
	for _, d := range F.descs {
		if d.verb != 'x' {
			n++
		}
	}
	return n
}

// Width returns the number of columns the format spans.
func (F *Format) Width() int {
	w := 0
	for _, d := range F.descs {
		w += d.width
	}
	return w
}

func (F *Format) String() string {
	return F.src
}

// Read reads one record. It returns one Value per I, E, F or A descriptor.
// Text past the last descriptor is ignored.
func (F *Format) Read(line string) ([]Value, error) {
	line = strings.TrimRight(line, "\r\n")
	ret := make([]Value, 0, len(F.descs))
	pos := 0
	for _, d := range F.descs {
		start := pos
		pos += d.width
		if d.verb == 'x' {
			continue
		}
		if start >= len(line) {
			ret = append(ret, Value{})
			continue
		}
		field := line[start:min(pos, len(line))]
		v, err := d.read(field)
		if err != nil {
			return nil, err
		}
		ret = append(ret, v)
	}
	return ret, nil
}

// Present returns the values of the record that are present, in order.
func Present(vals []Value) []Value {
	ret := make([]Value, 0, len(vals))
	for _, v := range vals {
		if v.Present {
			ret = append(ret, v)
		}
	}
	return ret
}

func (d descriptor) read(field string) (Value, error) {
	if d.verb == 'a' {
		return Value{Present: true, Str: field}, nil
	}
	s := strings.TrimSpace(field)
	if s == "" {
		return Value{}, nil
	}
	switch d.verb {
	case 'i':
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Value{}, mcnp.Errorf(mcnp.ErrInvalidFormat, s, "not an I%d field", d.width)
		}
		return Value{Present: true, Int: i, Float: float64(i)}, nil
	default:
		r, err := mcnp.CastReal(s)
		if err != nil || !r.Valid {
			return Value{}, mcnp.Errorf(mcnp.ErrInvalidFormat, s, "not an %c%d.%d field", d.verb-'a'+'A', d.width, d.decimals)
		}
		f := r.Value
		//without a decimal point the last d digits of the mantissa are decimals
		if !strings.Contains(s, ".") && d.decimals > 0 {
			f /= math.Pow10(d.decimals)
		}
		return Value{Present: true, Float: f, Int: int64(f)}, nil
	}
}

func (v Value) String() string {
	if !v.Present {
		return "<blank>"
	}
	if v.Str != "" {
		return v.Str
	}
	return fmt.Sprint(v.Float)
}
