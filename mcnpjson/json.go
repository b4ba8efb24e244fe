/*
 * json.go, part of gomcnp.
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

package mcnpjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	mcnp "github.com/rmera/gomcnp"
	"github.com/rmera/gomcnp/inp"
	"github.com/rmera/gomcnp/ptrac"
)

// Formats supported by Encode and DecodeSurfaces.
const (
	JSON = "json"
	YAML = "yaml"
)

// An easily JSON-serializable error type.
type Error struct {
	deco      []string
	IsError   bool //If this is false (no error) all the other fields will be at their zero-values.
	InInput   bool //was it while reading the input?
	InProcess bool
	InOutput  bool   //was it in preparing the output?
	Code      string //the error code, for input errors
	Line      int    //the line of the input, if known
	Function  string //which go function gave the error
	Message   string //the error itself
}

// Error implements the error interface.
func (J *Error) Error() string {
	return J.Message
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

// Marshal serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - "))
	}
	return ret
}

// NewError takes an error and some additional info to create a json-marshal-ble error.
// where is "input", "output" or anything else for errors while processing.
func NewError(where, function string, err error) *Error {
	jerr := &Error{IsError: true, Function: function, Message: err.Error()}
	switch where {
	case "input":
		jerr.InInput = true
	case "output":
		jerr.InOutput = true
	default:
		jerr.InProcess = true
	}
	var ce *mcnp.CardError
	if errors.As(err, &ce) {
		jerr.Code = ce.Code.Error()
		jerr.Line = ce.Line
	}
	return jerr
}

// SurfaceArguments returns the dictionary form of S.
func SurfaceArguments(S *inp.Surface) map[string]any {
	return S.ToArguments()
}

// HeaderArguments returns the dictionary form of a PTRAC header.
func HeaderArguments(H *ptrac.Header) map[string]any {
	return H.ToArguments()
}

// HistoryArguments returns the dictionary form of a PTRAC history, with its events.
func HistoryArguments(h *ptrac.History) map[string]any {
	return h.ToArguments()
}

// EventArguments returns the dictionary form of a PTRAC event.
func EventArguments(e ptrac.Event) map[string]any {
	return e.ToArguments()
}

// Arguments returns the dictionary form of v, which can be anything with a ToArguments
// method, inp.Surfaces, a slice of *ptrac.History or a slice of ptrac.Event.
func Arguments(v any) (any, error) {
	switch t := v.(type) {
	case mcnp.Arguer:
		return t.ToArguments(), nil
	case inp.Surfaces:
		return t.ToArguments(), nil
	case []*inp.Surface:
		return inp.Surfaces(t).ToArguments(), nil
	case []*ptrac.History:
		ret := make([]map[string]any, len(t))
		for i, h := range t {
			ret[i] = h.ToArguments()
		}
		return ret, nil
	case []ptrac.Event:
		ret := make([]map[string]any, len(t))
		for i, e := range t {
			ret[i] = e.ToArguments()
		}
		return ret, nil
	case map[string]any, []map[string]any:
		return t, nil
	}
	return nil, NewError("output", "Arguments", fmt.Errorf("no dictionary form for %T", v))
}

// Encode writes the dictionary form of v (see Arguments) to w in the given format.
func Encode(w io.Writer, v any, format string) error {
	args, err := Arguments(v)
	if err != nil {
		return errDecorate(err, "Encode")
	}
	switch strings.ToLower(format) {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(args); err != nil {
			return NewError("output", "Encode", err)
		}
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(args); err != nil {
			return NewError("output", "Encode", err)
		}
		if err := enc.Close(); err != nil {
			return NewError("output", "Encode", err)
		}
	default:
		return NewError("output", "Encode", fmt.Errorf("unknown format %q", format))
	}
	return nil
}

// DecodeSurface builds a surface from its dictionary form. Numbers can be
// any of the numeric types encoding/json and yaml.v3 produce.
func DecodeSurface(m map[string]any) (*inp.Surface, error) {
	number, ok := toInt(m["j"])
	if !ok {
		return nil, NewError("input", "DecodeSurface", fmt.Errorf("surface number missing or not an integer: %v", m["j"]))
	}
	var tp mcnp.Integer
	if m["n"] != nil {
		n, ok := toInt(m["n"])
		if !ok {
			return nil, NewError("input", "DecodeSurface", fmt.Errorf("transform/periodic number is not an integer: %v", m["n"]))
		}
		tp = mcnp.I(n)
	}
	mnemonic, _ := m["A"].(string)
	list, _ := m["list"].([]any)
	params := make([]mcnp.Real, len(list))
	for i, v := range list {
		if v == nil {
			continue
		}
		f, ok := toFloat(v)
		if !ok {
			return nil, NewError("input", "DecodeSurface", fmt.Errorf("parameter %d is not a number: %v", i+1, v))
		}
		params[i] = mcnp.R(f)
	}
	kind, err := inp.ResolveKind(mnemonic, len(params))
	if err != nil {
		return nil, NewError("input", "DecodeSurface", err)
	}
	var opts []inp.Option
	if b, _ := m["*"].(bool); b {
		opts = append(opts, inp.WithReflecting())
	}
	if b, _ := m["+"].(bool); b {
		opts = append(opts, inp.WithWhiteBoundary())
	}
	if c, _ := m["comment"].(string); c != "" {
		opts = append(opts, inp.WithComment(c))
	}
	S, err := inp.New(number, tp, kind, params, opts...)
	if err != nil {
		return nil, NewError("input", "DecodeSurface", err)
	}
	return S, nil
}

// DecodeSurfaces reads a list of surfaces in dictionary form, in the given format.
func DecodeSurfaces(r io.Reader, format string) (inp.Surfaces, error) {
	var list []map[string]any
	var err error
	switch strings.ToLower(format) {
	case JSON:
		err = json.NewDecoder(r).Decode(&list)
	case YAML:
		err = yaml.NewDecoder(r).Decode(&list)
	default:
		err = fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return nil, NewError("input", "DecodeSurfaces", err)
	}
	ret := make(inp.Surfaces, 0, len(list))
	for _, m := range list {
		S, err := DecodeSurface(m)
		if err != nil {
			return nil, errDecorate(err, "DecodeSurfaces")
		}
		ret = append(ret, S)
	}
	return ret, nil
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	}
	return 0, false
}

func toInt(v any) (int64, bool) {
	switch t := v.(type) {
	case int:
		return int64(t), true
	case int64:
		return t, true
	}
	f, ok := toFloat(v)
	if !ok || f != float64(int64(f)) {
		return 0, false
	}
	return int64(f), true
}

func errDecorate(err error, caller string) error {
	return mcnp.ErrDecorate(err, caller)
}
