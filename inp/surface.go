/*
 * surface.go, part of gomcnp.
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

package inp

import (
	"errors"
	"fmt"
	"strings"

	mcnp "github.com/rmera/gomcnp"
)

const (
	MinSurfaceNumber     = 1
	MaxSurfaceNumber     = 99_999_999
	MinTransformPeriodic = -99_999_999
	MaxTransformPeriodic = 999
)

// Surface is one surface card. A Surface can't be modified after it is created.
type Surface struct {
	number        int64
	kind          Kind
	transform     mcnp.Integer
	periodic      mcnp.Integer
	reflecting    bool
	whiteboundary bool
	params        []mcnp.Real
	shape         Shape
	line          int
	comment       string
}

// Option sets one of the optional properties of a surface created with New.
type Option func(*Surface)

// WithReflecting makes the surface reflecting (the "*" prefix).
func WithReflecting() Option {
	return func(S *Surface) { S.reflecting = true }
}

// WithWhiteBoundary makes the surface a white boundary (the "+" prefix).
func WithWhiteBoundary() Option {
	return func(S *Surface) { S.whiteboundary = true }
}

// WithComment sets the inline comment of the surface.
func WithComment(c string) Option {
	return func(S *Surface) { S.comment = c }
}

// WithLine sets the line of the input where the surface card starts.
func WithLine(line int) Option {
	return func(S *Surface) { S.line = line }
}

// New returns a new surface with the given number, transform (positive) or periodic (negative) surface,
// kind and parameters. Use a non-valid transformPeriodic when there is neither. Absent optional parameter
// groups can be left out of params, or given as non-valid values. For the general planes either plane kind
// can be given, the number of parameters decides which one is built.
func New(number int64, transformPeriodic mcnp.Integer, kind Kind, params []mcnp.Real, opts ...Option) (*Surface, error) {
	S := new(Surface)
	for _, o := range opts {
		o(S)
	}
	if number < MinSurfaceNumber || number > MaxSurfaceNumber {
		return nil, mcnp.Errorf(mcnp.ErrInvalidSurfaceNumber, fmt.Sprint(number), "").AtLine(S.line)
	}
	S.number = number
	if transformPeriodic.Valid {
		t := transformPeriodic.Value
		if t < MinTransformPeriodic || t > MaxTransformPeriodic {
			return nil, mcnp.Errorf(mcnp.ErrInvalidTransformPeriodic, fmt.Sprint(t), "").AtLine(S.line)
		}
		if t > 0 {
			S.transform = transformPeriodic
		} else if t < 0 {
			S.periodic = transformPeriodic
		}
	}
	if S.reflecting && S.whiteboundary {
		return nil, mcnp.Errorf(mcnp.ErrInvalidBoundary, "", "surface %d", number).AtLine(S.line)
	}
	if _, ok := kinds[kind]; !ok {
		return nil, mcnp.Errorf(mcnp.ErrUnknownMnemonic, kind.String(), "").AtLine(S.line)
	}
	if kind == KindPlaneGeneralEquation || kind == KindPlaneGeneralPoint {
		var err error
		if kind, err = ResolveKind("p", len(params)); err != nil {
			return nil, atLine(err, S.line)
		}
	}
	if err := validate(kind, params); err != nil {
		return nil, atLine(err, S.line)
	}
	S.kind = kind
	//absent trailing values are dropped, so all the surfaces with the same
	//geometry have the same parameters.
	n := len(params)
	for n > 0 && !params[n-1].Valid {
		n--
	}
	S.params = make([]mcnp.Real, n)
	copy(S.params, params)
	vals := make([]float64, n)
	for i, v := range S.params {
		vals[i] = v.Value
	}
	S.shape = makeShape(kind, vals, n)
	return S, nil
}

// Parse reads a surface card. The card must have its continuation lines already joined.
func Parse(card string) (*Surface, error) {
	return ParseLine(card, 0)
}

// ParseLine reads a surface card that starts at the given line of the input.
func ParseLine(card string, line int) (*Surface, error) {
	S, err := parse(card, line)
	if err != nil {
		return nil, mcnp.ErrDecorate(err, "ParseLine")
	}
	return S, nil
}

func parse(card string, line int) (*Surface, error) {
	T, err := mcnp.NewTokens(card)
	if err != nil {
		return nil, err
	}
	T.SetLine(line)
	opts := []Option{WithLine(line)}
	if c := T.Comment(); c != "" {
		opts = append(opts, WithComment(c))
	}
	first, err := T.PopL()
	if err != nil {
		return nil, err
	}
	switch first[0] {
	case '+':
		opts = append(opts, WithWhiteBoundary())
		first = first[1:]
	case '*':
		opts = append(opts, WithReflecting())
		first = first[1:]
	}
	//a prefix followed by a blank, as in "* 2 px 1"
	if first == "" {
		if first, err = T.PopL(); err != nil {
			return nil, err
		}
	}
	number, err := mcnp.CastInteger(first)
	if err != nil {
		return nil, atLine(err, line)
	}
	if !number.Valid {
		return nil, mcnp.Errorf(mcnp.ErrInvalidSurfaceNumber, first, "the surface number is mandatory").AtLine(line)
	}
	tp := mcnp.NoInteger
	next, err := T.PeekL()
	if err != nil {
		return nil, err
	}
	if mcnp.IsInteger(next) {
		T.PopL()
		if tp, err = mcnp.CastInteger(next); err != nil {
			return nil, atLine(err, line)
		}
	}
	mnemonic, err := T.PopL()
	if err != nil {
		return nil, err
	}
	if _, err := LookupMnemonic(mnemonic); err != nil {
		return nil, atLine(err, line)
	}
	toks, err := mcnp.ExpandShortcuts(T.Rest())
	if err != nil {
		return nil, atLine(err, line)
	}
	params := make([]mcnp.Real, 0, len(toks))
	for _, t := range toks {
		r, err := mcnp.CastReal(t)
		if err != nil {
			return nil, atLine(err, line)
		}
		params = append(params, r)
	}
	kind, err := ResolveKind(mnemonic, len(params))
	if err != nil {
		return nil, atLine(err, line)
	}
	return New(number.Value, tp, kind, params, opts...)
}

// atLine sets the line of err, if err is a *mcnp.CardError without one.
func atLine(err error, line int) error {
	var ce *mcnp.CardError
	if errors.As(err, &ce) {
		ce.AtLine(line)
	}
	return err
}

// Number returns the surface number.
func (S *Surface) Number() int64 { return S.number }

// Kind returns the kind of the surface.
func (S *Surface) Kind() Kind { return S.kind }

// Mnemonic returns the mnemonic of the surface kind.
func (S *Surface) Mnemonic() string { return S.kind.Mnemonic() }

// Transform returns the transformation number, if any.
func (S *Surface) Transform() mcnp.Integer { return S.transform }

// Periodic returns the number of the periodic surface, as a negative integer, if any.
func (S *Surface) Periodic() mcnp.Integer { return S.periodic }

// TransformPeriodic returns the transform/periodic field as it appears in the card.
func (S *Surface) TransformPeriodic() mcnp.Integer {
	if S.transform.Valid {
		return S.transform
	}
	return S.periodic
}

func (S *Surface) IsReflecting() bool    { return S.reflecting }
func (S *Surface) IsWhiteBoundary() bool { return S.whiteboundary }

// Line returns the input line where the card starts, or 0 if not known.
func (S *Surface) Line() int { return S.line }

// Comment returns the inline comment.
func (S *Surface) Comment() string { return S.comment }

// Shape returns the typed payload for the surface.
func (S *Surface) Shape() Shape { return S.shape }

// Parameters returns a copy of the parameters of the surface. Absent trailing
// groups are not included.
func (S *Surface) Parameters() []mcnp.Real {
	ret := make([]mcnp.Real, len(S.params))
	copy(ret, S.params)
	return ret
}

// Parameter returns the parameter with the given name. The second value is false
// if the kind has no such parameter or it was not given.
func (S *Surface) Parameter(name string) (float64, bool) {
	i := kinds[S.kind].schema.index(name)
	if i < 0 || i >= len(S.params) || !S.params[i].Valid {
		return 0, false
	}
	return S.params[i].Value, true
}

// Equal returns true if S and o describe the same surface. Line numbers
// are not compared.
func (S *Surface) Equal(o *Surface) bool {
	if S.number != o.number || S.kind != o.kind || S.transform != o.transform || S.periodic != o.periodic ||
		S.reflecting != o.reflecting || S.whiteboundary != o.whiteboundary || S.comment != o.comment ||
		len(S.params) != len(o.params) {
		return false
	}
	for i, v := range S.params {
		if v != o.params[i] {
			return false
		}
	}
	return true
}

func (S *Surface) String() string {
	return S.card()
}

func (S *Surface) card() string {
	fields := make([]string, 0, len(S.params)+4)
	prefix := ""
	if S.reflecting {
		prefix = "*"
	} else if S.whiteboundary {
		prefix = "+"
	}
	fields = append(fields, fmt.Sprintf("%s%d", prefix, S.number))
	if tp := S.TransformPeriodic(); tp.Valid {
		fields = append(fields, mcnp.FormatInteger(tp))
	}
	fields = append(fields, S.kind.Mnemonic())
	for _, v := range S.params {
		fields = append(fields, mcnp.FormatReal(v))
	}
	ret := strings.Join(fields, " ")
	if S.comment != "" {
		ret += " $ " + S.comment
	}
	return ret
}

// ToMCNP returns the surface as an MCNP card, wrapped at 80 columns.
func (S *Surface) ToMCNP() string {
	return S.ToMCNPWidth(mcnp.DefaultWidth)
}

// ToMCNPWidth returns the surface as an MCNP card wrapped at width columns.
func (S *Surface) ToMCNPWidth(width int) string {
	return mcnp.WrapCard(S.card(), width)
}

// ToArguments returns the dictionary form of the surface. The keys follow the MCNP manual:
// "j" is the number, "+" and "*" the white-boundary and reflecting flags, "n" the
// transform/periodic number (nil if absent), "A" the mnemonic and "list" the parameters,
// with nil for absent values.
func (S *Surface) ToArguments() map[string]any {
	list := make([]any, len(S.params))
	for i, v := range S.params {
		if v.Valid {
			list[i] = v.Value
		}
	}
	var n any
	if tp := S.TransformPeriodic(); tp.Valid {
		n = tp.Value
	}
	ret := map[string]any{
		"j":    S.number,
		"+":    S.whiteboundary,
		"*":    S.reflecting,
		"n":    n,
		"A":    S.kind.Mnemonic(),
		"list": list,
	}
	if S.comment != "" {
		ret["comment"] = S.comment
	}
	return ret
}
