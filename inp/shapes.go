/*
 * shapes.go, part of gomcnp.
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
	"gonum.org/v1/gonum/spatial/r3"
)

// Axis is one of the cartesian axes.
type Axis int

const (
	X Axis = iota
	Y
	Z
)

func (a Axis) String() string {
	return [...]string{"x", "y", "z"}[a]
}

// Shape is the typed payload of a surface. There is one implementation per
// geometric form; forms that only differ on the axis they refer to share an
// implementation, with an Axis field. The set of implementations is closed.
type Shape interface {
	Kind() Kind
	shape()
}

func axisKind(a Axis, x, y, z Kind) Kind {
	return [...]Kind{x, y, z}[a]
}

// PlaneGeneralPoint is the plane through three points.
type PlaneGeneralPoint struct{ P1, P2, P3 r3.Vec }

// PlaneGeneralEquation is the plane Ax+By+Cz-D=0.
type PlaneGeneralEquation struct{ A, B, C, D float64 }

// AxisPlane is the plane normal to an axis, at D.
type AxisPlane struct {
	Axis Axis
	D    float64
}

// SphereOrigin is the sphere centered at the origin.
type SphereOrigin struct{ R float64 }

// SphereGeneral is the sphere centered at Center.
type SphereGeneral struct {
	Center r3.Vec
	R      float64
}

// AxisSphere is the sphere centered on an axis, at C.
type AxisSphere struct {
	Axis Axis
	C, R float64
}

// ParallelCylinder is the cylinder parallel to an axis. U and V are the
// coordinates of the cylinder axis in the other two cartesian axes, in order.
type ParallelCylinder struct {
	Axis    Axis
	U, V, R float64
}

// AxisCylinder is the cylinder on an axis.
type AxisCylinder struct {
	Axis Axis
	R    float64
}

// ParallelCone is the cone parallel to an axis, with apex Apex. Sheet is +1 or -1
// to select one sheet of the cone, 0 for both.
type ParallelCone struct {
	Axis     Axis
	Apex     r3.Vec
	TSquared float64
	Sheet    float64
}

// AxisCone is the cone on an axis, with apex at C.
type AxisCone struct {
	Axis        Axis
	C, TSquared float64
	Sheet       float64
}

// QuadraticSpecial is the quadric A(x-x0)²+B(y-y0)²+C(z-z0)²+2D(x-x0)+2E(y-y0)+2F(z-z0)+G=0
// with axes parallel to the cartesian ones.
type QuadraticSpecial struct {
	A, B, C, D, E, F, G float64
	Center              r3.Vec
}

// QuadraticGeneral is the quadric Ax²+By²+Cz²+Dxy+Eyz+Fzx+Gx+Hy+Jz+K=0.
type QuadraticGeneral struct{ A, B, C, D, E, F, G, H, J, K float64 }

// Torus is the elliptical torus with its axis parallel to a cartesian axis.
// A is the major radius, B and C the semi-axes of the ellipse, along and normal
// to the torus axis.
type Torus struct {
	Axis    Axis
	Center  r3.Vec
	A, B, C float64
}

// AxisymmetricSurface is the surface symmetric around an axis defined by one, two
// or three (coordinate, radius) points.
type AxisymmetricSurface struct {
	Axis   Axis
	Points [][2]float64
}

// Box is the box with a corner at V and edges A1, A2 and A3.
// A3 is nil for an infinite box.
type Box struct {
	V, A1, A2 r3.Vec
	A3        *r3.Vec
}

// Parallelepiped is the rectangular parallelepiped with faces normal to the axes.
type Parallelepiped struct{ Min, Max r3.Vec }

// Sphere is the sphere macrobody.
type Sphere struct {
	V r3.Vec
	R float64
}

// CylinderCircular is the right circular cylinder with base center V, height vector H and radius R.
type CylinderCircular struct {
	V, H r3.Vec
	R    float64
}

// HexagonalPrism is the right hexagonal prism. With only R given, the prism is
// regular and R is the vector from the axis to the center of the first facet. S and T are
// the vectors to the second and third facets, nil for a regular prism.
type HexagonalPrism struct {
	V, H, R r3.Vec
	S, T    *r3.Vec
}

// CylinderElliptical is the right elliptical cylinder. V1 is the major axis vector.
// If V2 is nil, MinorRadius is the length of the minor axis.
type CylinderElliptical struct {
	V, H, V1    r3.Vec
	V2          *r3.Vec
	MinorRadius float64
}

// ConeTruncated is the truncated right angle cone.
type ConeTruncated struct {
	V, H   r3.Vec
	R1, R2 float64
}

// Ellipsoid is the ellipsoid with foci V1 and V2 if Rm > 0, or with center V1 and
// major axis vector V2 when Rm < 0. Rm is the length of the major (or minor) radius.
type Ellipsoid struct {
	V1, V2 r3.Vec
	Rm     float64
}

// Wedge is the right angle wedge with vertex V and sides V1, V2 and height V3.
type Wedge struct{ V, V1, V2, V3 r3.Vec }

// Polyhedron is the arbitrary polyhedron with 8 corners and 6 facets, each facet
// given as a 4-digit number listing its corners.
type Polyhedron struct {
	Corners [8]r3.Vec
	Facets  [6]int
}

func (PlaneGeneralPoint) Kind() Kind    { return KindPlaneGeneralPoint }
func (PlaneGeneralEquation) Kind() Kind { return KindPlaneGeneralEquation }
func (s AxisPlane) Kind() Kind {
	return axisKind(s.Axis, KindPlaneNormalX, KindPlaneNormalY, KindPlaneNormalZ)
}
func (SphereOrigin) Kind() Kind  { return KindSphereOrigin }
func (SphereGeneral) Kind() Kind { return KindSphereGeneral }
func (s AxisSphere) Kind() Kind {
	return axisKind(s.Axis, KindSphereNormalX, KindSphereNormalY, KindSphereNormalZ)
}
func (s ParallelCylinder) Kind() Kind {
	return axisKind(s.Axis, KindCylinderParallelX, KindCylinderParallelY, KindCylinderParallelZ)
}
func (s AxisCylinder) Kind() Kind {
	return axisKind(s.Axis, KindCylinderOnX, KindCylinderOnY, KindCylinderOnZ)
}
func (s ParallelCone) Kind() Kind {
	return axisKind(s.Axis, KindConeParallelX, KindConeParallelY, KindConeParallelZ)
}
func (s AxisCone) Kind() Kind {
	return axisKind(s.Axis, KindConeOnX, KindConeOnY, KindConeOnZ)
}
func (QuadraticSpecial) Kind() Kind { return KindQuadraticSpecial }
func (QuadraticGeneral) Kind() Kind { return KindQuadraticGeneral }
func (s Torus) Kind() Kind {
	return axisKind(s.Axis, KindTorusParallelX, KindTorusParallelY, KindTorusParallelZ)
}
func (s AxisymmetricSurface) Kind() Kind {
	return axisKind(s.Axis, KindSurfaceX, KindSurfaceY, KindSurfaceZ)
}
func (Box) Kind() Kind                { return KindBox }
func (Parallelepiped) Kind() Kind     { return KindParallelepiped }
func (Sphere) Kind() Kind             { return KindSphere }
func (CylinderCircular) Kind() Kind   { return KindCylinderCircular }
func (HexagonalPrism) Kind() Kind     { return KindHexagonalPrism }
func (CylinderElliptical) Kind() Kind { return KindCylinderElliptical }
func (ConeTruncated) Kind() Kind      { return KindConeTruncated }
func (Ellipsoid) Kind() Kind          { return KindEllipsoid }
func (Wedge) Kind() Kind              { return KindWedge }
func (Polyhedron) Kind() Kind         { return KindPolyhedron }

func (PlaneGeneralPoint) shape()    {}
func (PlaneGeneralEquation) shape() {}
func (AxisPlane) shape()            {}
func (SphereOrigin) shape()         {}
func (SphereGeneral) shape()        {}
func (AxisSphere) shape()           {}
func (ParallelCylinder) shape()     {}
func (AxisCylinder) shape()         {}
func (ParallelCone) shape()         {}
func (AxisCone) shape()             {}
func (QuadraticSpecial) shape()     {}
func (QuadraticGeneral) shape()     {}
func (Torus) shape()                {}
func (AxisymmetricSurface) shape()  {}
func (Box) shape()                  {}
func (Parallelepiped) shape()       {}
func (Sphere) shape()               {}
func (CylinderCircular) shape()     {}
func (HexagonalPrism) shape()       {}
func (CylinderElliptical) shape()   {}
func (ConeTruncated) shape()        {}
func (Ellipsoid) shape()            {}
func (Wedge) shape()                {}
func (Polyhedron) shape()           {}

// axisOf returns the axis of the kinds that come in x, y and z variants.
func axisOf(k, x, y, z Kind) Axis {
	switch k {
	case y:
		return Y
	case z:
		return Z
	}
	return X
}

// makeShape builds the payload for a surface of kind k. params must have been
// validated against the schema of k.
func makeShape(k Kind, params []float64, n int) Shape {
	p := func(i int) float64 {
		if i < len(params) {
			return params[i]
		}
		return 0
	}
	v := func(i int) r3.Vec { return r3.Vec{X: p(i), Y: p(i + 1), Z: p(i + 2)} }
	pv := func(i int) *r3.Vec {
		if i+2 >= n {
			return nil
		}
		ret := v(i)
		return &ret
	}
	switch k {
	case KindPlaneGeneralPoint:
		return PlaneGeneralPoint{v(0), v(3), v(6)}
	case KindPlaneGeneralEquation:
		return PlaneGeneralEquation{p(0), p(1), p(2), p(3)}
	case KindPlaneNormalX, KindPlaneNormalY, KindPlaneNormalZ:
		return AxisPlane{axisOf(k, KindPlaneNormalX, KindPlaneNormalY, KindPlaneNormalZ), p(0)}
	case KindSphereOrigin:
		return SphereOrigin{p(0)}
	case KindSphereGeneral:
		return SphereGeneral{v(0), p(3)}
	case KindSphereNormalX, KindSphereNormalY, KindSphereNormalZ:
		return AxisSphere{axisOf(k, KindSphereNormalX, KindSphereNormalY, KindSphereNormalZ), p(0), p(1)}
	case KindCylinderParallelX, KindCylinderParallelY, KindCylinderParallelZ:
		return ParallelCylinder{axisOf(k, KindCylinderParallelX, KindCylinderParallelY, KindCylinderParallelZ), p(0), p(1), p(2)}
	case KindCylinderOnX, KindCylinderOnY, KindCylinderOnZ:
		return AxisCylinder{axisOf(k, KindCylinderOnX, KindCylinderOnY, KindCylinderOnZ), p(0)}
	case KindConeParallelX, KindConeParallelY, KindConeParallelZ:
		return ParallelCone{axisOf(k, KindConeParallelX, KindConeParallelY, KindConeParallelZ), v(0), p(3), p(4)}
	case KindConeOnX, KindConeOnY, KindConeOnZ:
		return AxisCone{axisOf(k, KindConeOnX, KindConeOnY, KindConeOnZ), p(0), p(1), p(2)}
	case KindQuadraticSpecial:
		return QuadraticSpecial{p(0), p(1), p(2), p(3), p(4), p(5), p(6), v(7)}
	case KindQuadraticGeneral:
		return QuadraticGeneral{p(0), p(1), p(2), p(3), p(4), p(5), p(6), p(7), p(8), p(9)}
	case KindTorusParallelX, KindTorusParallelY, KindTorusParallelZ:
		return Torus{axisOf(k, KindTorusParallelX, KindTorusParallelY, KindTorusParallelZ), v(0), p(3), p(4), p(5)}
	case KindSurfaceX, KindSurfaceY, KindSurfaceZ:
		s := AxisymmetricSurface{Axis: axisOf(k, KindSurfaceX, KindSurfaceY, KindSurfaceZ)}
		for i := 0; i+1 < n; i += 2 {
			s.Points = append(s.Points, [2]float64{p(i), p(i + 1)})
		}
		return s
	case KindBox:
		return Box{v(0), v(3), v(6), pv(9)}
	case KindParallelepiped:
		return Parallelepiped{r3.Vec{X: p(0), Y: p(2), Z: p(4)}, r3.Vec{X: p(1), Y: p(3), Z: p(5)}}
	case KindSphere:
		return Sphere{v(0), p(3)}
	case KindCylinderCircular:
		return CylinderCircular{v(0), v(3), p(6)}
	case KindHexagonalPrism:
		return HexagonalPrism{v(0), v(3), v(6), pv(9), pv(12)}
	case KindCylinderElliptical:
		c := CylinderElliptical{V: v(0), H: v(3), V1: v(6)}
		if n > 10 {
			c.V2 = pv(9)
		} else {
			c.MinorRadius = p(9)
		}
		return c
	case KindConeTruncated:
		return ConeTruncated{v(0), v(3), p(6), p(7)}
	case KindEllipsoid:
		return Ellipsoid{v(0), v(3), p(6)}
	case KindWedge:
		return Wedge{v(0), v(3), v(6), v(9)}
	case KindPolyhedron:
		var ret Polyhedron
		for i := range ret.Corners {
			ret.Corners[i] = v(3 * i)
		}
		for i := range ret.Facets {
			ret.Facets[i] = int(p(24 + i))
		}
		return ret
	}
	return nil
}
