/*
 * quadric.go, part of gomcnp.
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

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	mcnp "github.com/rmera/gomcnp"
	"github.com/rmera/gomcnp/inp"
)

// ErrNotQuadric is returned for surfaces that can't be written as a single quadric:
// macrobodies, tori and the axisymmetric surfaces defined by points.
var ErrNotQuadric = errors.New("geom: surface is not a quadric")

// Tolerance is the absolute value under which Sense considers a point to be on the surface.
var Tolerance = 1e-10

// Quadric is the surface Ax²+By²+Cz²+Dxy+Eyz+Fzx+Gx+Hy+Jz+K = 0. Points where the
// left side is negative have negative sense.
type Quadric struct {
	A, B, C, D, E, F, G, H, J, K float64
}

// ToQuadric returns the quadric form of S, in the coordinates of the surface. The
// transformation of the surface, if any, is not applied.
// Both sheets of a cone are included.
func ToQuadric(S *inp.Surface) (Quadric, error) {
	var q Quadric
	switch s := S.Shape().(type) {
	case inp.PlaneGeneralEquation:
		q = Quadric{G: s.A, H: s.B, J: s.C, K: -s.D}
	case inp.PlaneGeneralPoint:
		n := r3.Cross(r3.Sub(s.P2, s.P1), r3.Sub(s.P3, s.P1))
		if r3.Norm(n) == 0 {
			return q, mcnp.Errorf(mcnp.ErrInvalidParameter, S.String(), "the three points of the plane are collinear")
		}
		q = Quadric{G: n.X, H: n.Y, J: n.Z, K: -r3.Dot(n, s.P1)}
		//the origin has negative sense, or, for planes through it, the point (0,0,+inf), then (0,+inf,0), then (+inf,0,0).
		flip := q.K > 0
		if q.K == 0 {
			for _, c := range []float64{q.J, q.H, q.G} {
				if c != 0 {
					flip = c < 0
					break
				}
			}
		}
		if flip {
			q = q.Scale(-1)
		}
	case inp.AxisPlane:
		q = linear(s.Axis, 1)
		q.K = -s.D
	case inp.SphereOrigin:
		q = sphere(r3.Vec{}, s.R)
	case inp.SphereGeneral:
		q = sphere(s.Center, s.R)
	case inp.AxisSphere:
		q = sphere(onAxis(s.Axis, s.C), s.R)
	case inp.ParallelCylinder:
		var c r3.Vec
		u, v := others(s.Axis)
		set(&c, u, s.U)
		set(&c, v, s.V)
		q = cone(s.Axis, c, 0, s.R)
	case inp.AxisCylinder:
		q = cone(s.Axis, r3.Vec{}, 0, s.R)
	case inp.ParallelCone:
		q = cone(s.Axis, s.Apex, s.TSquared, 0)
	case inp.AxisCone:
		q = cone(s.Axis, onAxis(s.Axis, s.C), s.TSquared, 0)
	case inp.QuadraticSpecial:
		c := s.Center
		q = Quadric{
			A: s.A, B: s.B, C: s.C,
			G: 2*s.D - 2*s.A*c.X,
			H: 2*s.E - 2*s.B*c.Y,
			J: 2*s.F - 2*s.C*c.Z,
			K: s.A*c.X*c.X + s.B*c.Y*c.Y + s.C*c.Z*c.Z - 2*s.D*c.X - 2*s.E*c.Y - 2*s.F*c.Z + s.G,
		}
	case inp.QuadraticGeneral:
		q = Quadric(s)
	default:
		return q, fmt.Errorf("%w: %s", ErrNotQuadric, S.Kind())
	}
	return q, nil
}

// coef returns the squared and the linear coefficients of the quadric for the given axis.
func (q *Quadric) coef(a inp.Axis) (*float64, *float64) {
	switch a {
	case inp.Y:
		return &q.B, &q.H
	case inp.Z:
		return &q.C, &q.J
	}
	return &q.A, &q.G
}

func linear(a inp.Axis, c float64) Quadric {
	var q Quadric
	_, l := q.coef(a)
	*l = c
	return q
}

func onAxis(a inp.Axis, c float64) r3.Vec {
	var v r3.Vec
	set(&v, a, c)
	return v
}

func set(v *r3.Vec, a inp.Axis, c float64) {
	switch a {
	case inp.X:
		v.X = c
	case inp.Y:
		v.Y = c
	default:
		v.Z = c
	}
}

func get(v r3.Vec, a inp.Axis) float64 {
	switch a {
	case inp.X:
		return v.X
	case inp.Y:
		return v.Y
	}
	return v.Z
}

// others returns the two axes other than a, in order.
func others(a inp.Axis) (inp.Axis, inp.Axis) {
	switch a {
	case inp.X:
		return inp.Y, inp.Z
	case inp.Y:
		return inp.X, inp.Z
	}
	return inp.X, inp.Y
}

func sphere(c r3.Vec, r float64) Quadric {
	return Quadric{
		A: 1, B: 1, C: 1,
		G: -2 * c.X, H: -2 * c.Y, J: -2 * c.Z,
		K: r3.Dot(c, c) - r*r,
	}
}

// cone returns (u-pu)²+(v-pv)²-t²(a-pa)²-r² where a is the given axis and u, v the
// other two. A cylinder is a cone with t² = 0.
func cone(a inp.Axis, p r3.Vec, t2, r float64) Quadric {
	var q Quadric
	u, v := others(a)
	for _, ax := range []inp.Axis{u, v} {
		sq, l := q.coef(ax)
		c := get(p, ax)
		*sq = 1
		*l = -2 * c
		q.K += c * c
	}
	sq, l := q.coef(a)
	c := get(p, a)
	*sq = -t2
	*l = 2 * t2 * c
	q.K += -t2*c*c - r*r
	return q
}

// Scale returns the quadric with all its coefficients multiplied by f.
func (q Quadric) Scale(f float64) Quadric {
	return Quadric{q.A * f, q.B * f, q.C * f, q.D * f, q.E * f, q.F * f, q.G * f, q.H * f, q.J * f, q.K * f}
}

// Eval returns the value of the quadric at p.
func (q Quadric) Eval(p r3.Vec) float64 {
	x, y, z := p.X, p.Y, p.Z
	return q.A*x*x + q.B*y*y + q.C*z*z + q.D*x*y + q.E*y*z + q.F*z*x + q.G*x + q.H*y + q.J*z + q.K
}

// Sense returns -1 or +1 for the sense of p with respect to the surface, and 0
// if p is on the surface.
func (q Quadric) Sense(p r3.Vec) int {
	v := q.Eval(p)
	switch {
	case math.Abs(v) <= Tolerance:
		return 0
	case v < 0:
		return -1
	}
	return 1
}

// Matrix returns the 4x4 symmetric matrix M such that [x y z 1] M [x y z 1]ᵀ is
// the value of the quadric at (x, y, z).
func (q Quadric) Matrix() *mat.SymDense {
	return mat.NewSymDense(4, []float64{
		q.A, q.D / 2, q.F / 2, q.G / 2,
		q.D / 2, q.B, q.E / 2, q.H / 2,
		q.F / 2, q.E / 2, q.C, q.J / 2,
		q.G / 2, q.H / 2, q.J / 2, q.K,
	})
}

func (q Quadric) String() string {
	return fmt.Sprintf("%gx² %+gy² %+gz² %+gxy %+gyz %+gzx %+gx %+gy %+gz %+g", q.A, q.B, q.C, q.D, q.E, q.F, q.G, q.H, q.J, q.K)
}

func (q Quadric) scale() float64 {
	m := 1.0
	for _, v := range []float64{q.A, q.B, q.C, q.D, q.E, q.F, q.G, q.H, q.J, q.K} {
		m = math.Max(m, math.Abs(v))
	}
	return m
}

// Classify names the kind of quadric q is, from the eigenvalues of its quadratic part
// and the constant left after completing the squares. The names are "sphere",
// "ellipsoid", "cone", "hyperboloid", "cylinder", "elliptic paraboloid",
// "hyperbolic paraboloid", "hyperbolic cylinder", "parabolic cylinder", "plane",
// "plane pair", "point", "line", "empty" and "degenerate".
func (q Quadric) Classify() (string, error) {
	tol := 1e-9 * q.scale()
	Q := mat.NewSymDense(3, []float64{
		q.A, q.D / 2, q.F / 2,
		q.D / 2, q.B, q.E / 2,
		q.F / 2, q.E / 2, q.C,
	})
	var eig mat.EigenSym
	if ok := eig.Factorize(Q, true); !ok {
		return "", fmt.Errorf("geom: can't diagonalize the quadric %s", q)
	}
	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)
	//the linear part in the eigenvector basis
	var lin mat.VecDense
	lin.MulVec(vecs.T(), mat.NewVecDense(3, []float64{q.G, q.H, q.J}))
	k := q.K
	var nz []float64
	parabolic := false
	for i, l := range vals {
		b := lin.AtVec(i)
		if math.Abs(l) <= tol {
			if math.Abs(b) > tol {
				parabolic = true
			}
			continue
		}
		nz = append(nz, l)
		k -= b * b / (4 * l)
	}
	pos := 0
	for _, l := range nz {
		if l > 0 {
			pos++
		}
	}
	same := pos == len(nz) || pos == 0
	sign := 1.0
	if pos == 0 {
		sign = -1
	}
	zero := math.Abs(k) <= tol
	switch len(nz) {
	case 3:
		switch {
		case !same && zero:
			return "cone", nil
		case !same:
			return "hyperboloid", nil
		case zero:
			return "point", nil
		case k*sign > 0:
			return "empty", nil
		case math.Abs(nz[0]-nz[2]) <= tol:
			return "sphere", nil
		}
		return "ellipsoid", nil
	case 2:
		switch {
		case parabolic && same:
			return "elliptic paraboloid", nil
		case parabolic:
			return "hyperbolic paraboloid", nil
		case !same && zero:
			return "plane pair", nil
		case !same:
			return "hyperbolic cylinder", nil
		case zero:
			return "line", nil
		case k*sign > 0:
			return "empty", nil
		}
		return "cylinder", nil
	case 1:
		switch {
		case parabolic:
			return "parabolic cylinder", nil
		case zero:
			return "plane", nil
		case k*sign < 0:
			return "plane pair", nil
		}
		return "empty", nil
	}
	if parabolic {
		return "plane", nil
	}
	return "degenerate", nil
}
