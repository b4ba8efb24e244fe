/*
 * matrix.go, part of gomcnp.
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
	"strings"
)

// Matrix is a row-major matrix of histograms that share their dividers.
type Matrix struct {
	rows, cols int
	d          []*Data
	dividers   []float64
}

// NewMatrix returns a rows x cols matrix of empty histograms with the given dividers.
func NewMatrix(rows, cols int, dividers []float64) (*Matrix, error) {
	if err := checkDividers(dividers); err != nil {
		return nil, err
	}
	M := &Matrix{rows: rows, cols: cols, d: make([]*Data, rows*cols), dividers: append([]float64(nil), dividers...)}
	for i := range M.d {
		M.d[i], _ = NewData(M.dividers, nil, i)
	}
	return M, nil
}

func (M *Matrix) Dims() (int, int) {
	return M.rows, M.cols
}

// Dividers returns a copy of the dividers of the histograms.
func (M *Matrix) Dividers() []float64 {
	return append([]float64(nil), M.dividers...)
}

func (M *Matrix) String() string {
	ret := fmt.Sprintf("rows:%d cols:%d | Data:\n", M.rows, M.cols)
	t := make([]string, 0, len(M.d))
	for _, v := range M.d {
		t = append(t, v.String())
	}
	return ret + strings.Join(t, "\n\n")
}

func (M *Matrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Rows     int       `json:"rows"`
		Cols     int       `json:"cols"`
		D        []*Data   `json:"data"`
		Dividers []float64 `json:"dividers"`
	}{
		Rows:     M.rows,
		Cols:     M.cols,
		D:        M.d,
		Dividers: M.dividers,
	})
}

// rc2i returns the index in M.d of the given row and column. It panics if they are out of range.
func (M *Matrix) rc2i(r, c int) int {
	if r < 0 || r >= M.rows || c < 0 || c >= M.cols {
		panic(fmt.Sprintf("gomcnp/spectrum: element %d,%d out of range in a %dx%d matrix", r, c, M.rows, M.cols))
	}
	return M.cols*r + c
}

// View returns the histogram in the r,c position.
func (M *Matrix) View(r, c int) *Data {
	return M.d[M.rc2i(r, c)]
}

// AddData adds one or more points to the histogram in the r,c position.
func (M *Matrix) AddData(r, c int, point ...float64) {
	M.d[M.rc2i(r, c)].AddData(point...)
}

// NormalizeAll normalizes all the histograms in the matrix.
func (M *Matrix) NormalizeAll() {
	for _, v := range M.d {
		v.Normalize()
	}
}

// FromAll applies f to each histogram in the matrix and returns the results.
func (M *Matrix) FromAll(f func(D *Data) (float64, error)) ([][]float64, error) {
	r := make([][]float64, M.rows)
	var err error
	for i := 0; i < M.rows; i++ {
		r[i] = make([]float64, M.cols)
		for j := 0; j < M.cols; j++ {
			r[i][j], err = f(M.d[M.rc2i(i, j)])
			if err != nil {
				return nil, fmt.Errorf("gomcnp/spectrum: error at %d, %d: %w", i, j, err)
			}
		}
	}
	return r, nil
}
