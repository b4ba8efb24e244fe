/*
 * cards.go, part of gomcnp.
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
	"strings"
)

// DefaultWidth is the number of columns of an MCNP input line.
const DefaultWidth = 80

// continuation lines start with at least this many blanks.
const contIndent = "     "

// Card is one logical card: a line of MCNP input with all its continuation
// lines joined to it.
type Card struct {
	Text string
	Line int //line of the first physical line of the card, starting from 1
}

// comment cards have a "c" in the first 5 columns, followed by a blank or by nothing.
var commentRe = regexp.MustCompile(`^ {0,4}[cC]( |$)`)

// IsCommentLine returns true if line is a full-line comment.
func IsCommentLine(line string) bool {
	return commentRe.MatchString(line)
}

// SplitComment returns the text of s before the first "$" and the (trimmed) text after it.
func SplitComment(s string) (string, string) {
	i := strings.IndexByte(s, '$')
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i+1:])
}

func normalizeLine(l string) string {
	l = strings.TrimRight(l, "\r")
	return strings.ReplaceAll(l, "\t", " ")
}

// Cards splits a block of MCNP input in cards. It drops comment lines and
// joins continuation lines, which are lines that start with 5 or more blanks, or that
// follow a line ending in "&". The inline comments of the joined lines are gathered
// at the end of the card. firstLine is the line number of the first line of block.
func Cards(block string, firstLine int) []Card {
	var ret []Card
	var text, comments []string
	start := 0
	cont := false
	flush := func() {
		if text == nil {
			return
		}
		c := strings.Join(text, " ")
		if len(comments) > 0 {
			c += " $ " + strings.Join(comments, " ")
		}
		ret = append(ret, Card{Text: c, Line: start})
		text, comments = nil, nil
	}
	for i, l := range strings.Split(block, "\n") {
		l = normalizeLine(l)
		if IsCommentLine(l) {
			continue
		}
		if strings.TrimSpace(l) == "" {
			flush()
			cont = false
			continue
		}
		content, comment := SplitComment(l)
		if !cont && !strings.HasPrefix(l, contIndent) {
			flush()
		}
		if text == nil {
			start = firstLine + i
		}
		content = strings.TrimSpace(content)
		cont = strings.HasSuffix(content, "&")
		content = strings.TrimSpace(strings.TrimSuffix(content, "&"))
		if content != "" || text == nil {
			text = append(text, content)
		}
		if comment != "" {
			comments = append(comments, comment)
		}
	}
	flush()
	return ret
}

// WrapCard writes card in lines of at most width columns (DefaultWidth if width
// is not positive), using blank-indented continuation lines. The inline comment, if any, goes
// at the end of the last line.
func WrapCard(card string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	content, comment := SplitComment(card)
	words := strings.Fields(content)
	if comment != "" {
		words = append(words, "$ "+comment)
	}
	var b strings.Builder
	linelen := 0
	for i, w := range words {
		switch {
		case i == 0:
			b.WriteString(w)
			linelen = len(w)
		case linelen+1+len(w) > width && !strings.HasPrefix(w, "$"):
			b.WriteString("\n" + contIndent + w)
			linelen = len(contIndent) + len(w)
		default:
			b.WriteString(" " + w)
			linelen += 1 + len(w)
		}
	}
	return b.String()
}
