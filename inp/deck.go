/*
 * deck.go, part of gomcnp.
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
	"context"
	"strings"

	mcnp "github.com/rmera/gomcnp"
)

const maxTitle = 80

// Deck is an INP deck: an optional message block, the title and the cell,
// surface and data blocks. Cell and data cards are kept as cards, with their
// continuation lines joined. Anything after the data block is kept verbatim in Other.
type Deck struct {
	Message  string
	Title    string
	Cells    []mcnp.Card
	Surfaces Surfaces
	Data     []mcnp.Card
	Other    string
}

// block returns the lines from start up to the next blank line, and the index
// of that blank line (or len(lines)).
func block(lines []string, start int) ([]string, int) {
	i := start
	for i < len(lines) && strings.TrimSpace(lines[i]) != "" {
		i++
	}
	return lines[start:i], i
}

// ParseDeck reads a whole INP deck. The surface cards are read concurrently, see ParseCards.
func ParseDeck(ctx context.Context, src string, workers int) (*Deck, error) {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	lines := strings.Split(src, "\n")
	D := new(Deck)
	i := 0
	if len(lines) > 0 && strings.HasPrefix(strings.ToLower(strings.TrimSpace(lines[0])), "message:") {
		var msg []string
		msg, i = block(lines, 0)
		D.Message = strings.Join(msg, "\n")
		i++
	}
	if i >= len(lines) || strings.TrimSpace(lines[i]) == "" {
		return nil, mcnp.Errorf(mcnp.ErrMissingBlock, "", "title").AtLine(i + 1)
	}
	D.Title = strings.TrimRight(lines[i], " \r")
	i++
	cells, end := block(lines, i)
	if end+1 >= len(lines) {
		return nil, mcnp.Errorf(mcnp.ErrMissingBlock, "", "surface block").AtLine(end + 1)
	}
	D.Cells = mcnp.Cards(strings.Join(cells, "\n"), i+1)
	i = end + 1
	surfaces, end := block(lines, i)
	var err error
	D.Surfaces, err = ParseSurfaces(ctx, strings.Join(surfaces, "\n"), i+1, workers)
	if err != nil {
		return nil, mcnp.ErrDecorate(err, "ParseDeck")
	}
	i = end + 1
	if i < len(lines) {
		data, end := block(lines, i)
		D.Data = mcnp.Cards(strings.Join(data, "\n"), i+1)
		if end+1 < len(lines) {
			D.Other = strings.TrimRight(strings.Join(lines[end+1:], "\n"), "\n")
		}
	}
	return D, nil
}

// ToMCNP writes the deck as MCNP input. It fails if the title is empty or too long.
func (D *Deck) ToMCNP() (string, error) {
	if strings.TrimSpace(D.Title) == "" {
		return "", mcnp.Errorf(mcnp.ErrInvalidTitle, "", "empty title")
	}
	if len(D.Title) > maxTitle {
		return "", mcnp.Errorf(mcnp.ErrInvalidTitle, "", "title longer than %d characters", maxTitle)
	}
	var b strings.Builder
	if D.Message != "" {
		b.WriteString(D.Message + "\n\n")
	}
	b.WriteString(D.Title + "\n")
	for _, c := range D.Cells {
		b.WriteString(mcnp.WrapCard(c.Text, mcnp.DefaultWidth) + "\n")
	}
	b.WriteString("\n")
	if len(D.Surfaces) > 0 {
		b.WriteString(D.Surfaces.ToMCNP() + "\n")
	}
	b.WriteString("\n")
	for _, c := range D.Data {
		b.WriteString(mcnp.WrapCard(c.Text, mcnp.DefaultWidth) + "\n")
	}
	if D.Other != "" {
		b.WriteString("\n" + D.Other + "\n")
	}
	return b.String(), nil
}

func cardTexts(c []mcnp.Card) []string {
	ret := make([]string, len(c))
	for i, v := range c {
		ret[i] = v.Text
	}
	return ret
}

// ToArguments returns the dictionary form of the deck.
func (D *Deck) ToArguments() map[string]any {
	return map[string]any{
		"message":  D.Message,
		"title":    D.Title,
		"cells":    cardTexts(D.Cells),
		"surfaces": D.Surfaces.ToArguments(),
		"data":     cardTexts(D.Data),
		"other":    D.Other,
	}
}
