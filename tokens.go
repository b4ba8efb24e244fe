/*
 * tokens.go, part of gomcnp.
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
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer for one card. Everything after the first "$" is an inline comment.
var cardLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: `Comment`, Pattern: `\$[^\n]*`},
		{Name: `Whitespace`, Pattern: `[ \t\r\n]+`},
		{Name: `Word`, Pattern: `[^\s$]+`},
	},
})

// Tokens is a double-ended queue with the whitespace-separated tokens
// of one card, plus the inline comment of the card, if any.
type Tokens struct {
	deque   []string
	comment string
	line    int
}

// NewTokens splits card in tokens, separating the inline comment.
func NewTokens(card string) (*Tokens, error) {
	lex, err := cardLexer.LexString("", card)
	if err != nil {
		return nil, Errorf(ErrInvalidNumber, "", "can't tokenize card: %s", err.Error())
	}
	symbols := cardLexer.Symbols()
	T := new(Tokens)
	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, Errorf(ErrInvalidNumber, "", "can't tokenize card: %s", err.Error())
		}
		if tok.EOF() {
			break
		}
		switch tok.Type {
		case symbols["Word"]:
			T.deque = append(T.deque, tok.Value)
		case symbols["Comment"]:
			T.comment = strings.TrimSpace(strings.TrimPrefix(tok.Value, "$"))
		}
	}
	return T, nil
}

// SetLine sets the line number reported in the errors from T.
func (T *Tokens) SetLine(line int) {
	T.line = line
}

// Len returns the number of tokens left.
func (T *Tokens) Len() int {
	return len(T.deque)
}

// Comment returns the inline comment of the card, without the "$".
func (T *Tokens) Comment() string {
	return T.comment
}

// PopL removes and returns the leftmost token. It returns an error if there
// are no tokens left.
func (T *Tokens) PopL() (string, error) {
	if len(T.deque) == 0 {
		return "", Errorf(ErrTooFewEntries, "", "no tokens left").AtLine(T.line)
	}
	ret := T.deque[0]
	T.deque = T.deque[1:]
	return ret, nil
}

// PeekL returns the leftmost token without removing it.
func (T *Tokens) PeekL() (string, error) {
	if len(T.deque) == 0 {
		return "", Errorf(ErrTooFewEntries, "", "no tokens left").AtLine(T.line)
	}
	return T.deque[0], nil
}

// PushL puts tok back at the left of the queue.
func (T *Tokens) PushL(tok string) {
	T.deque = append([]string{tok}, T.deque...)
}

// Rest removes and returns all the tokens left.
func (T *Tokens) Rest() []string {
	ret := T.deque
	T.deque = nil
	return ret
}
