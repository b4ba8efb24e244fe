/*
 * energy.go, part of gomcnp.
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

package spectrum

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/rmera/gomcnp/ptrac"
)

// LogDividers returns n+1 dividers for n bins, evenly spaced in log scale between lo and hi.
func LogDividers(lo, hi float64, n int) ([]float64, error) {
	if n < 1 || lo <= 0 || hi <= lo {
		return nil, fmt.Errorf("gomcnp/spectrum: can't make %d logarithmic bins between %g and %g", n, lo, hi)
	}
	return floats.LogSpan(make([]float64, n+1), lo, hi), nil
}

// LinearDividers returns n+1 dividers for n bins of the same width between lo and hi.
func LinearDividers(lo, hi float64, n int) ([]float64, error) {
	if n < 1 || hi <= lo {
		return nil, fmt.Errorf("gomcnp/spectrum: can't make %d bins between %g and %g", n, lo, hi)
	}
	return floats.Span(make([]float64, n+1), lo, hi), nil
}

// energies returns the energies of the events of category cat in hs.
func energies(hs []*ptrac.History, cat ptrac.Category) []float64 {
	var ret []float64
	for _, h := range hs {
		for i := 0; i < h.Len(); i++ {
			e := h.Event(i)
			if e.Category == cat && e.Energy.Valid {
				ret = append(ret, e.Energy.Value)
			}
		}
	}
	return ret
}

// FromHistories returns the histogram of the energies of the events of category cat
// in hs. Events without an energy are not counted. The ID of the histogram is cat.
func FromHistories(hs []*ptrac.History, cat ptrac.Category, dividers []float64) (*Data, error) {
	return NewData(dividers, energies(hs, cat), int(cat))
}

// Categories are the rows of the matrix returned by ByParticle.
var Categories = []ptrac.Category{
	ptrac.CategorySource,
	ptrac.CategoryBank,
	ptrac.CategorySurface,
	ptrac.CategoryCollision,
	ptrac.CategoryTermination,
}

// Particles are the columns of the matrix returned by ByParticle.
var Particles = []string{"neutron", "photon", "other"}

func particleColumn(p ptrac.Code) int {
	switch {
	case p.Known && p.Value == ptrac.ParticleNeutron:
		return 0
	case p.Known && p.Value == ptrac.ParticlePhoton:
		return 1
	}
	return 2
}

// ByParticle returns the energy spectra of hs, with one row per event category
// (see Categories) and one column per particle type (see Particles).
func ByParticle(hs []*ptrac.History, dividers []float64) (*Matrix, error) {
	M, err := NewMatrix(len(Categories), len(Particles), dividers)
	if err != nil {
		return nil, err
	}
	row := make(map[ptrac.Category]int, len(Categories))
	for i, c := range Categories {
		row[c] = i
	}
	for _, h := range hs {
		for i := 0; i < h.Len(); i++ {
			e := h.Event(i)
			r, ok := row[e.Category]
			if !ok || !e.Energy.Valid {
				continue
			}
			M.AddData(r, particleColumn(e.Particle), e.Energy.Value)
		}
	}
	return M, nil
}
