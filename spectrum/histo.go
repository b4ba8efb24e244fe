/*
 * histo.go, part of gomcnp.
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
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Data is a histogram. Values outside [dividers[0], dividers[len-1]) are not counted
// in any bin, but they are counted in the total.
type Data struct {
	id         int
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

type jsonData struct {
	ID         int       `json:"id"`
	Normalized bool      `json:"normalized"`
	Total      int       `json:"total"`
	Dividers   []float64 `json:"dividers"`
	Histo      []float64 `json:"histo"`
}

func (D *Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonData{
		ID:         D.id,
		Normalized: D.normalized,
		Total:      D.total,
		Dividers:   D.dividers,
		Histo:      D.histo,
	})
}

func (D *Data) UnmarshalJSON(b []byte) error {
	var a jsonData
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	if len(a.Dividers) > 0 && len(a.Histo) != len(a.Dividers)-1 {
		return fmt.Errorf("gomcnp/spectrum: %d bins for %d dividers", len(a.Histo), len(a.Dividers))
	}
	D.id = a.ID
	D.normalized = a.Normalized
	D.total = a.Total
	D.dividers = a.Dividers
	D.histo = a.Histo
	return nil
}

// NewData returns a histogram with the given dividers, filled with rawdata, which can be nil.
// The ID is set to ID[0], if given, or to -1.
func NewData(dividers []float64, rawdata []float64, ID ...int) (*Data, error) {
	if err := checkDividers(dividers); err != nil {
		return nil, err
	}
	d := &Data{id: -1}
	d.dividers = append([]float64(nil), dividers...)
	d.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		d.ReHisto(rawdata)
	}
	if len(ID) > 0 {
		d.id = ID[0]
	}
	return d, nil
}

func checkDividers(dividers []float64) error {
	if len(dividers) < 2 {
		return fmt.Errorf("gomcnp/spectrum: at least 2 dividers needed, got %d", len(dividers))
	}
	if !sort.Float64sAreSorted(dividers) {
		return fmt.Errorf("gomcnp/spectrum: dividers not sorted")
	}
	return nil
}

// ID returns the ID of the histogram.
func (D *Data) ID() int {
	return D.id
}

// Total returns the number of data points added, including those out of range.
func (D *Data) Total() int {
	return D.total
}

// String returns a 3-line representation of the histogram.
func (D *Data) String() string {
	ret := fmt.Sprintf("ID: %d, Normalized: %v, TotalData: %d\n", D.id, D.normalized, D.total)
	d := make([]string, 0, len(D.histo))
	h := make([]string, 0, len(D.histo))
	for i, v := range D.histo {
		d = append(d, fmt.Sprintf("%.3g-%.3g", D.dividers[i], D.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return ret + fmt.Sprintf("%s\n%s", strings.Join(d, " "), strings.Join(h, " "))
}

// AddData adds the given points to the histogram.
func (D *Data) AddData(point ...float64) {
	norma := D.normalized
	if norma {
		D.UnNormalize()
	}
	last := len(D.dividers) - 1
	for _, v := range point {
		//the bin with dividers[j] <= v < dividers[j+1]
		j := sort.SearchFloat64s(D.dividers, v)
		if j < len(D.dividers) && D.dividers[j] == v {
			j++
		}
		j--
		if j >= 0 && j < last {
			D.histo[j]++
		}
	}
	D.total += len(point)
	if norma {
		D.Normalize()
	}
}

// Normalized returns true if the histogram is normalized.
func (D *Data) Normalized() bool {
	return D.normalized
}

// Normalize divides each bin by the total number of points.
func (D *Data) Normalize() {
	D.normaunnorma(true)
}

// UnNormalize reverts Normalize.
func (D *Data) UnNormalize() {
	D.normaunnorma(false)
}

func (D *Data) normaunnorma(normalize bool) {
	if D.total <= 0 || D.normalized == normalize {
		return
	}
	n := float64(D.total)
	if normalize {
		n = 1 / n
	}
	D.normalized = normalize
	floats.Scale(n, D.histo)
}

// Dividers returns a copy of the dividers of the histogram.
func (D *Data) Dividers() []float64 {
	return append([]float64(nil), D.dividers...)
}

// Copy returns a copy of the bins of the histogram.
func (D *Data) Copy() []float64 {
	return append([]float64(nil), D.histo...)
}

// View returns the bins of the histogram. Changes to the slice change the histogram.
func (D *Data) View() []float64 {
	return D.histo
}

// Add sets the receiver to the sum of a and b, which must have the same dividers.
func (D *Data) Add(a, b *Data) error {
	if !floats.Equal(a.dividers, b.dividers) {
		return fmt.Errorf("gomcnp/spectrum: dividers must match in added histograms")
	}
	D.dividers = a.Dividers()
	D.histo = make([]float64, len(a.histo))
	floats.AddTo(D.histo, a.histo, b.histo)
	D.total = a.total + b.total
	D.normalized = false
	return nil
}

// Sum returns the sum of the bins.
func (D *Data) Sum() float64 {
	return floats.Sum(D.histo)
}

// ReHisto replaces the contents of the histogram with rawdata. rawdata is not modified.
func (D *Data) ReHisto(rawdata []float64) {
	D.total = len(rawdata)
	D.normalized = false
	data := append([]float64(nil), rawdata...)
	sort.Float64s(data)
	//stat.Histogram panics with values out of range, so they are removed here.
	maxi := sort.SearchFloat64s(data, D.dividers[len(D.dividers)-1])
	mini := sort.SearchFloat64s(data, D.dividers[0])
	data = data[mini:maxi]
	D.histo = stat.Histogram(nil, D.dividers, data, nil)
}
