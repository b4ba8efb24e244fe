/*
 * fortran.go, part of gomcnp.
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

package mcnp

import (
	"regexp"
	"strconv"
	"strings"
)

// Real is a floating-point value read from an MCNP card. Valid is false
// when the value was not given, i.e. for the "j" placeholder.
type Real struct {
	Value float64
	Valid bool
}

// Integer is an integer value read from an MCNP card. Valid is false
// when the value was not given.
type Integer struct {
	Value int64
	Valid bool
}

// R returns a valid Real with value v.
func R(v float64) Real { return Real{Value: v, Valid: true} }

// I returns a valid Integer with value v.
func I(v int64) Integer { return Integer{Value: v, Valid: true} }

// Absent is the Real for a value that was not given.
var Absent = Real{}

// NoInteger is the Integer for a value that was not given.
var NoInteger = Integer{}

// FORTRAN allows dropping the exponent letter when the exponent is signed, as in 1.5-3,
// and uses d for double-precision exponents.
var realRe = regexp.MustCompile(`^([+-]?(?:\d+\.?\d*|\.\d+))(?:[ed]([+-]?\d+)|([+-]\d+))?$`)

var integerRe = regexp.MustCompile(`^[+-]?\d+$`)

// IsPlaceholder returns true if tok is the "j" placeholder, which means "default / not given".
func IsPlaceholder(tok string) bool {
	return strings.EqualFold(tok, "j")
}

// CastReal reads a FORTRAN-style real number from tok.
func CastReal(tok string) (Real, error) {
	if IsPlaceholder(tok) {
		return Absent, nil
	}
	m := realRe.FindStringSubmatch(strings.ToLower(tok))
	if m == nil {
		return Absent, Errorf(ErrInvalidNumber, tok, "not a real number")
	}
	num := m[1]
	if exp := m[2] + m[3]; exp != "" {
		num += "e" + exp
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Absent, Errorf(ErrInvalidNumber, tok, "%s", err.Error())
	}
	return R(v), nil
}

// CastInteger reads an integer from tok.
func CastInteger(tok string) (Integer, error) {
	if IsPlaceholder(tok) {
		return NoInteger, nil
	}
	if !integerRe.MatchString(tok) {
		return NoInteger, Errorf(ErrInvalidNumber, tok, "not an integer")
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return NoInteger, Errorf(ErrInvalidNumber, tok, "%s", err.Error())
	}
	return I(v), nil
}

// IsInteger returns true if tok can be read as an integer (the placeholder is not an integer).
func IsInteger(tok string) bool {
	return integerRe.MatchString(tok)
}

// FormatReal returns the shortest text that reads back as r, or "j" if r is not valid.
func FormatReal(r Real) string {
	if !r.Valid {
		return "j"
	}
	return strconv.FormatFloat(r.Value, 'g', -1, 64)
}

// FormatInteger returns the text for i, or "j" if i is not valid.
func FormatInteger(i Integer) string {
	if !i.Valid {
		return "j"
	}
	return strconv.FormatInt(i.Value, 10)
}

var (
	repeatRe      = regexp.MustCompile(`^(\d*)([jri])$`)
	multiplyRe    = regexp.MustCompile(`^(.+)m$`)
	errNoPrevious = "shortcut needs a previous value"
)

// ExpandShortcuts expands the MCNP shorthand for number lists: nJ (n placeholders),
// nR (repeat the previous value n times), nI (n linear interpolates between the
// neighbours) and xM (previous value times x). A missing n means 1.
func ExpandShortcuts(toks []string) ([]string, error) {
	ret := make([]string, 0, len(toks))
	for i := 0; i < len(toks); i++ {
		low := strings.ToLower(toks[i])
		if m := repeatRe.FindStringSubmatch(low); m != nil {
			n := 1
			if m[1] != "" {
				var err error
				n, err = strconv.Atoi(m[1])
				if err != nil {
					return nil, Errorf(ErrInvalidNumber, toks[i], "%s", err.Error())
				}
			}
			switch m[2] {
			case "j":
				for k := 0; k < n; k++ {
					ret = append(ret, "j")
				}
			case "r":
				if len(ret) == 0 {
					return nil, Errorf(ErrInvalidParameter, toks[i], "%s", errNoPrevious)
				}
				prev := ret[len(ret)-1]
				for k := 0; k < n; k++ {
					ret = append(ret, prev)
				}
			case "i":
				if len(ret) == 0 || i+1 >= len(toks) {
					return nil, Errorf(ErrInvalidParameter, toks[i], "interpolation needs values on both sides")
				}
				a, err := CastReal(ret[len(ret)-1])
				if err != nil {
					return nil, err
				}
				b, err := CastReal(toks[i+1])
				if err != nil {
					return nil, err
				}
				if !a.Valid || !b.Valid {
					return nil, Errorf(ErrInvalidParameter, toks[i], "can't interpolate placeholders")
				}
				step := (b.Value - a.Value) / float64(n+1)
				for k := 1; k <= n; k++ {
					ret = append(ret, FormatReal(R(a.Value+float64(k)*step)))
				}
			}
			continue
		}
		if m := multiplyRe.FindStringSubmatch(low); m != nil {
			if len(ret) == 0 {
				return nil, Errorf(ErrInvalidParameter, toks[i], "%s", errNoPrevious)
			}
			x, err := CastReal(m[1])
			if err != nil || !x.Valid {
				return nil, Errorf(ErrInvalidNumber, toks[i], "bad multiplier")
			}
			p, err := CastReal(ret[len(ret)-1])
			if err != nil || !p.Valid {
				return nil, Errorf(ErrInvalidParameter, toks[i], "can't multiply a placeholder")
			}
			ret = append(ret, FormatReal(R(p.Value*x.Value)))
			continue
		}
		ret = append(ret, toks[i])
	}
	return ret, nil
}
