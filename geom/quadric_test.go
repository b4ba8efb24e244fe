/*
 * quadric_test.go, part of gomcnp.
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

package geom

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/rmera/gomcnp/inp"
)

func quadric(Te *testing.T, card string) Quadric {
	Te.Helper()
	S, err := inp.Parse(card)
	if err != nil {
		Te.Fatalf("%s: %v", card, err)
	}
	q, err := ToQuadric(S)
	if err != nil {
		Te.Fatalf("%s: %v", card, err)
	}
	return q
}

func TestSense(Te *testing.T) {
	cases := []struct {
		card  string
		p     r3.Vec
		sense int
	}{
		{"1 so 2", r3.Vec{}, -1},
		{"1 so 2", r3.Vec{X: 3}, 1},
		{"1 so 2", r3.Vec{Y: 2}, 0},
		{"2 s 1 1 1 1", r3.Vec{X: 1, Y: 1, Z: 1.5}, -1},
		{"3 sy 4 1", r3.Vec{Y: 4.5}, -1},
		{"3 sy 4 1", r3.Vec{}, 1},
		{"4 pz 5", r3.Vec{Z: 6}, 1},
		{"4 pz 5", r3.Vec{Z: 4}, -1},
		{"5 p 1 1 1 3", r3.Vec{}, -1},
		{"5 p 1 1 1 3", r3.Vec{X: 1, Y: 1, Z: 1}, 0},
		{"6 p 1 0 0 0 1 0 0 0 1", r3.Vec{}, -1},
		{"6 p 1 0 0 0 1 0 0 0 1", r3.Vec{X: 1, Y: 1, Z: 1}, 1},
		{"7 p -1 0 0 0 -1 0 0 0 -1", r3.Vec{}, -1},
		{"8 cz 1", r3.Vec{X: 0.5, Z: 100}, -1},
		{"8 cz 1", r3.Vec{X: 2}, 1},
		{"9 c/x 1 2 3", r3.Vec{X: 5, Y: 1, Z: 2}, -1},
		{"9 c/x 1 2 3", r3.Vec{Y: 1, Z: 5}, 0},
		{"10 kz 0 1 1", r3.Vec{X: 1, Z: 2}, -1},
		{"10 kz 0 1 1", r3.Vec{X: 2, Z: 1}, 1},
		{"11 k/y 1 2 3 0.25 -1", r3.Vec{X: 1, Y: 4, Z: 3}, -1},
		{"12 sq 1 4 9 0 0 0 -36 0 0 0", r3.Vec{X: 5.9}, -1},
		{"12 sq 1 4 9 0 0 0 -36 0 0 0", r3.Vec{X: 6.1}, 1},
		{"13 gq 1 1 1 0 0 0 0 0 0 -1", r3.Vec{}, -1},
	}
	for _, c := range cases {
		q := quadric(Te, c.card)
		if s := q.Sense(c.p); s != c.sense {
			Te.Errorf("%s: sense of %v is %d, expected %d (%s = %g)", c.card, c.p, s, c.sense, q, q.Eval(c.p))
		}
	}
}

func TestSpecialQuadric(Te *testing.T) {
	q := quadric(Te, "1 sq 1 2 3 4 5 6 7 0.5 -1 2")
	A, B, C, D, E, F, G := 1.0, 2.0, 3.0, 4.0, 5.0, 6.0, 7.0
	x0, y0, z0 := 0.5, -1.0, 2.0
	for _, p := range []r3.Vec{{}, {X: 1, Y: 2, Z: 3}, {X: -4, Y: 0.3, Z: 10}} {
		dx, dy, dz := p.X-x0, p.Y-y0, p.Z-z0
		expected := A*dx*dx + B*dy*dy + C*dz*dz + 2*D*dx + 2*E*dy + 2*F*dz + G
		if v := q.Eval(p); math.Abs(v-expected) > 1e-9 {
			Te.Errorf("sq at %v is %g, expected %g", p, v, expected)
		}
	}
}

func TestMatrix(Te *testing.T) {
	q := quadric(Te, "1 gq 1 2 3 4 5 6 7 8 9 10")
	M := q.Matrix()
	p := r3.Vec{X: 0.5, Y: -2, Z: 3}
	h := mat.NewVecDense(4, []float64{p.X, p.Y, p.Z, 1})
	v := mat.Inner(h, M, h)
	if math.Abs(v-q.Eval(p)) > 1e-9 {
		Te.Errorf("homogeneous form gives %g, Eval gives %g", v, q.Eval(p))
	}
	fmt.Println(mat.Formatted(M))
}

func TestClassify(Te *testing.T) {
	cases := map[string]string{
		"1 so 2":                       "sphere",
		"2 sx 3 1":                     "sphere",
		"3 pz 5":                       "plane",
		"4 p 1 0 0 0 1 0 0 0 1":        "plane",
		"5 cz 1":                       "cylinder",
		"6 c/y 1 1 2":                  "cylinder",
		"7 kz 0 1 1":                   "cone",
		"8 k/x 1 2 3 0.5 1":            "cone",
		"9 sq 1 4 9 0 0 0 -36 0 0 0":   "ellipsoid",
		"10 gq 1 1 -1 0 0 0 0 0 0 -1":  "hyperboloid",
		"11 gq 1 1 0 0 0 0 0 0 -1 0":   "elliptic paraboloid",
		"12 gq 1 -1 0 0 0 0 0 0 -1 0":  "hyperbolic paraboloid",
		"13 gq 1 0 0 0 0 0 0 0 0 -1":   "plane pair",
		"14 gq 1 1 1 0 0 0 0 0 0 1":    "empty",
		"15 gq 1 0 0 0 0 0 0 -1 0 0":   "parabolic cylinder",
		"16 gq 1 -1 0 0 0 0 0 0 0 -1":  "hyperbolic cylinder",
		"17 gq 1 1 2 2 0 0 0 0 0 -1":   "cylinder",
		"18 gq 1 1 1 0 0 0 -2 -2 -2 3": "point",
	}
	for card, expected := range cases {
		c, err := quadric(Te, card).Classify()
		if err != nil {
			Te.Errorf("%s: %v", card, err)
			continue
		}
		if c != expected {
			Te.Errorf("%s classified as %s, expected %s", card, c, expected)
		}
	}
}

func TestNotQuadric(Te *testing.T) {
	for _, card := range []string{"1 rpp -1 1 -1 1 -1 1", "2 tz 0 0 0 5 1 1", "3 x 1 2 3 4", "4 sph 0 0 0 1"} {
		S, err := inp.Parse(card)
		if err != nil {
			Te.Fatalf("%s: %v", card, err)
		}
		if _, err = ToQuadric(S); !errors.Is(err, ErrNotQuadric) {
			Te.Errorf("%s converted to a quadric: %v", card, err)
		}
	}
	S, err := inp.Parse("1 p 0 0 0 1 1 1 2 2 2")
	if err != nil {
		Te.Fatal(err)
	}
	if _, err = ToQuadric(S); err == nil {
		Te.Errorf("plane through collinear points accepted")
	}
}
