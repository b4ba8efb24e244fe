/*
 * errors.go, part of gomcnp.
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
	"errors"
	"fmt"
	"strings"
)

// Class separates errors in malformed text from errors in well-formed
// text that breaks a rule of the format.
type Class int

const (
	SyntaxError Class = iota
	SemanticError
)

func (c Class) String() string {
	if c == SyntaxError {
		return "syntax error"
	}
	return "semantic error"
}

// Code identifies the rule that a piece of input broke. Codes are errors themselves,
// so errors.Is(err, mcnp.ErrTooFewParameters) works on any error returned by this library.
type Code int

const (
	ErrTooFewEntries Code = iota + 1
	ErrInvalidNumber
	ErrTooFewParameters
	ErrTooManyParameters
	ErrInvalidSurfaceNumber
	ErrInvalidTransformPeriodic
	ErrInvalidParameter
	ErrUnknownMnemonic
	ErrInvalidBoundary
	ErrInvalidTitle
	ErrDuplicateSurface
	ErrMissingBlock
	ErrInvalidFormat
	ErrTruncated
	ErrUnknownFieldID
	ErrUnknownKeyword
	ErrLayoutOverflow
	ErrUndeclaredField
	ErrUnknownEventCode
	ErrUnrecognizedCode
)

var codeinfo = map[Code]struct {
	msg   string
	class Class
}{
	ErrTooFewEntries:            {"premature end of input", SyntaxError},
	ErrInvalidNumber:            {"unparseable number", SyntaxError},
	ErrTooFewParameters:         {"too few parameters", SyntaxError},
	ErrTooManyParameters:        {"too many parameters", SemanticError},
	ErrInvalidSurfaceNumber:     {"surface number out of [1, 99999999]", SemanticError},
	ErrInvalidTransformPeriodic: {"transform/periodic number out of [-99999999, 999]", SemanticError},
	ErrInvalidParameter:         {"invalid or missing parameter", SemanticError},
	ErrUnknownMnemonic:          {"unknown surface mnemonic", SemanticError},
	ErrInvalidBoundary:          {"surface can't be both reflecting and white-boundary", SemanticError},
	ErrInvalidTitle:             {"invalid title", SemanticError},
	ErrDuplicateSurface:         {"duplicate surface number", SemanticError},
	ErrMissingBlock:             {"missing block", SyntaxError},
	ErrInvalidFormat:            {"ill-formed fixed-format record", SyntaxError},
	ErrTruncated:                {"truncated file", SyntaxError},
	ErrUnknownFieldID:           {"unknown field identifier", SemanticError},
	ErrUnknownKeyword:           {"unknown keyword", SemanticError},
	ErrLayoutOverflow:           {"more field identifiers than declared", SemanticError},
	ErrUndeclaredField:          {"value not declared by the header layout", SemanticError},
	ErrUnknownEventCode:         {"unknown event code", SemanticError},
	ErrUnrecognizedCode:         {"unrecognized lookup code", SemanticError},
}

func (c Code) Error() string {
	if i, ok := codeinfo[c]; ok {
		return i.msg
	}
	return fmt.Sprintf("error code %d", int(c))
}

// Class returns the class of errors the code belongs to.
func (c Code) Class() Class {
	return codeinfo[c].class
}

// CardError is the error returned when a card or a record can't be read.
// It carries the code of the rule that failed, the offending token and the
// line, when they are known.
type CardError struct {
	Code    Code
	Token   string
	Line    int //0 if not known
	message string
	deco    []string
}

// Errorf returns a new *CardError with the given code and token, and a message
// built from format and a.
func Errorf(code Code, token string, format string, a ...any) *CardError {
	return &CardError{Code: code, Token: token, message: fmt.Sprintf(format, a...)}
}

func (err *CardError) Error() string {
	ret := fmt.Sprintf("%s: %s", err.Code.Class(), err.Code.Error())
	if err.message != "" {
		ret += ": " + err.message
	}
	if err.Token != "" {
		ret += fmt.Sprintf(" (token %q)", err.Token)
	}
	if err.Line > 0 {
		ret += fmt.Sprintf(" at line %d", err.Line)
	}
	if len(err.deco) > 0 {
		ret += " [" + strings.Join(err.deco, " < ") + "]"
	}
	return ret
}

// Class returns SyntaxError or SemanticError.
func (err *CardError) Class() Class {
	return err.Code.Class()
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *CardError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Is reports whether target is the code of the error, or a *CardError with the same code.
func (err *CardError) Is(target error) bool {
	switch t := target.(type) {
	case Code:
		return t == err.Code
	case *CardError:
		return t.Code == err.Code
	}
	return false
}

// AtLine sets the line number of the error, if it was not set already, and returns the error.
func (err *CardError) AtLine(line int) *CardError {
	if err.Line == 0 {
		err.Line = line
	}
	return err
}

// CodeOf returns the code of the first *CardError in err's chain, or 0 if there is none.
func CodeOf(err error) Code {
	var ce *CardError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return 0
}

// ErrDecorate decorates err with the name of the caller, if err implements Error.
// Other errors are returned unchanged.
func ErrDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var e Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}
