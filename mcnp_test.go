/*
 * mcnp_test.go, part of gomcnp.
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
	"testing"
)

func TestCastReal(Te *testing.T) {
	cases := []struct {
		tok   string
		val   float64
		valid bool
	}{
		{"5", 5, true},
		{"-3.5", -3.5, true},
		{"1e3", 1000, true},
		{"1.5D-3", 0.0015, true},
		{"2.0+3", 2000, true},
		{"-1.0-2", -0.01, true},
		{".5", 0.5, true},
		{"j", 0, false},
		{"J", 0, false},
	}
	for _, c := range cases {
		r, err := CastReal(c.tok)
		if err != nil {
			Te.Errorf("CastReal(%q): %v", c.tok, err)
			continue
		}
		if r.Valid != c.valid || (c.valid && r.Value != c.val) {
			Te.Errorf("CastReal(%q) = %v, expected %v (valid %v)", c.tok, r, c.val, c.valid)
		}
	}
	for _, bad := range []string{"px", "1..2", "e5", "1e", "--1"} {
		_, err := CastReal(bad)
		if !errors.Is(err, ErrInvalidNumber) {
			Te.Errorf("CastReal(%q) should fail with ErrInvalidNumber, got %v", bad, err)
		}
	}
}

func TestCastInteger(Te *testing.T) {
	i, err := CastInteger("-12")
	if err != nil || !i.Valid || i.Value != -12 {
		Te.Errorf("CastInteger(-12) = %v, %v", i, err)
	}
	i, err = CastInteger("j")
	if err != nil || i.Valid {
		Te.Errorf("CastInteger(j) should give a not-valid integer, got %v, %v", i, err)
	}
	if _, err = CastInteger("1.5"); CodeOf(err) != ErrInvalidNumber {
		Te.Errorf("CastInteger(1.5) should fail, got %v", err)
	}
	if IsInteger("px") || !IsInteger("+7") {
		Te.Error("IsInteger is confused")
	}
}

func TestExpandShortcuts(Te *testing.T) {
	cases := map[string]string{
		"1 2j 4":  "1 j j 4",
		"1 2r":    "1 1 1",
		"1 3i 5":  "1 2 3 4 5",
		"2 3m":    "2 6",
		"1 j 3":   "1 j 3",
		"0.5 1i 1": "0.5 0.75 1",
	}
	for in, expected := range cases {
		out, err := ExpandShortcuts(strings.Fields(in))
		if err != nil {
			Te.Errorf("ExpandShortcuts(%q): %v", in, err)
			continue
		}
		if got := strings.Join(out, " "); got != expected {
			Te.Errorf("ExpandShortcuts(%q) = %q, expected %q", in, got, expected)
		}
	}
	if _, err := ExpandShortcuts([]string{"2r"}); CodeOf(err) != ErrInvalidParameter {
		Te.Errorf("a leading repeat should fail, got %v", err)
	}
}

func TestTokens(Te *testing.T) {
	T, err := NewTokens("*2 1 PX 3.0 $ boundary ")
	if err != nil {
		Te.Fatal(err)
	}
	if T.Len() != 4 {
		Te.Errorf("expected 4 tokens, got %d", T.Len())
	}
	if T.Comment() != "boundary" {
		Te.Errorf("wrong comment %q", T.Comment())
	}
	first, _ := T.PopL()
	if first != "*2" {
		Te.Errorf("wrong first token %q", first)
	}
	T.PushL("2")
	p, _ := T.PeekL()
	if p != "2" {
		Te.Errorf("PushL/PeekL mismatch: %q", p)
	}
	fmt.Println("Rest of tokens:", T.Rest())
	T.SetLine(7)
	_, err = T.PopL()
	var ce *CardError
	if !errors.As(err, &ce) || ce.Code != ErrTooFewEntries || ce.Line != 7 || ce.Class() != SyntaxError {
		Te.Errorf("popping an empty queue should be a syntax error at line 7, got %v", err)
	}
}

func TestCards(Te *testing.T) {
	block := `c a comment
1 so 5.0 $ first
2 s 1 2
     3 4 $ cont
C another comment
3 rpp 0 1 0 1 &
  0 1
4 px 1.0`
	cards := Cards(block, 10)
	for _, c := range cards {
		fmt.Printf("%d: %s\n", c.Line, c.Text)
	}
	expected := []Card{
		{"1 so 5.0 $ first", 11},
		{"2 s 1 2 3 4 $ cont", 12},
		{"3 rpp 0 1 0 1 0 1", 15},
		{"4 px 1.0", 17},
	}
	if len(cards) != len(expected) {
		Te.Fatalf("expected %d cards, got %d", len(expected), len(cards))
	}
	for i, c := range cards {
		if c != expected[i] {
			Te.Errorf("card %d is %v, expected %v", i, c, expected[i])
		}
	}
}

func TestWrapCard(Te *testing.T) {
	card := "1 gq 1.123456789 2.123456789 3.123456789 4.123456789 5.123456789 6.123456789 7.123456789 8.123456789 9.123456789 10.12345678 $ long one"
	w := WrapCard(card, 40)
	fmt.Println(w)
	for _, l := range strings.Split(w, "\n") {
		if content, _ := SplitComment(l); len(strings.TrimRight(content, " ")) > 40 {
			Te.Errorf("line too long: %q", l)
		}
	}
	back := Cards(w, 1)
	if len(back) != 1 {
		Te.Fatalf("wrapped card reads back as %d cards", len(back))
	}
	if back[0].Text != card {
		Te.Errorf("wrapped card reads back as %q", back[0].Text)
	}
}

func TestErrorDecorate(Te *testing.T) {
	err := Errorf(ErrUnknownMnemonic, "zz", "no such kind")
	ErrDecorate(err, "Parse")
	ErrDecorate(err, "ParseDeck")
	if d := err.Decorate(""); len(d) != 2 || d[0] != "Parse" {
		Te.Errorf("wrong decoration %v", d)
	}
	wrapped := fmt.Errorf("reading deck: %w", err)
	if !errors.Is(wrapped, ErrUnknownMnemonic) || errors.Is(wrapped, ErrInvalidParameter) {
		Te.Error("errors.Is doesn't follow the codes")
	}
	if ErrUnknownMnemonic.Class() != SemanticError {
		Te.Error("unknown mnemonics should be semantic errors")
	}
	fmt.Println(wrapped)
}
