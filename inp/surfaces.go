/*
 * surfaces.go, part of gomcnp.
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
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	mcnp "github.com/rmera/gomcnp"
)

// Surfaces is the surface block of an INP deck.
type Surfaces []*Surface

// ParseSurfaces reads a surface block. firstLine is the line number of the first
// line of block in the input. The cards are parsed concurrently by up to workers
// goroutines (runtime.NumCPU() if workers is not positive). The surfaces are returned
// in input order. If several cards are wrong, the error for the first one is returned.
func ParseSurfaces(ctx context.Context, block string, firstLine, workers int) (Surfaces, error) {
	S, err := ParseCards(ctx, mcnp.Cards(block, firstLine), workers)
	if err != nil {
		return nil, mcnp.ErrDecorate(err, "ParseSurfaces")
	}
	return S, nil
}

// ParseCards reads the given surface cards, as ParseSurfaces does.
func ParseCards(ctx context.Context, cards []mcnp.Card, workers int) (Surfaces, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	ret := make(Surfaces, len(cards))
	errs := make([]error, len(cards))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, c := range cards {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ret[i], errs[i] = ParseLine(c.Text, c.Line)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	if err := ret.checkUnique(); err != nil {
		return nil, err
	}
	return ret, nil
}

func (S Surfaces) checkUnique() error {
	seen := make(map[int64]int, len(S))
	for _, s := range S {
		if l, ok := seen[s.number]; ok {
			return mcnp.Errorf(mcnp.ErrDuplicateSurface, mcnp.FormatInteger(mcnp.I(s.number)), "first defined at line %d", l).AtLine(s.line)
		}
		seen[s.number] = s.line
	}
	return nil
}

// Get returns the surface with the given number, or nil.
func (S Surfaces) Get(number int64) *Surface {
	for _, s := range S {
		if s.number == number {
			return s
		}
	}
	return nil
}

// Numbers returns the sorted surface numbers.
func (S Surfaces) Numbers() []int64 {
	ret := make([]int64, len(S))
	for i, s := range S {
		ret[i] = s.number
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i] < ret[j] })
	return ret
}

// ToMCNP returns the block as MCNP input, one card per line (plus continuation lines).
func (S Surfaces) ToMCNP() string {
	return S.ToMCNPWidth(mcnp.DefaultWidth)
}

// ToMCNPWidth is ToMCNP, wrapping lines at width columns.
func (S Surfaces) ToMCNPWidth(width int) string {
	lines := make([]string, len(S))
	for i, s := range S {
		lines[i] = s.ToMCNPWidth(width)
	}
	return strings.Join(lines, "\n")
}

// ToArguments returns the dictionary form of each surface.
func (S Surfaces) ToArguments() []map[string]any {
	ret := make([]map[string]any, len(S))
	for i, s := range S {
		ret[i] = s.ToArguments()
	}
	return ret
}
