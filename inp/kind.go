/*
 * kind.go, part of gomcnp.
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
	"strings"

	mcnp "github.com/rmera/gomcnp"
)

// Kind is the geometric kind of a surface.
type Kind int

const (
	KindPlaneGeneralPoint Kind = iota + 1
	KindPlaneGeneralEquation
	KindPlaneNormalX
	KindPlaneNormalY
	KindPlaneNormalZ
	KindSphereOrigin
	KindSphereGeneral
	KindSphereNormalX
	KindSphereNormalY
	KindSphereNormalZ
	KindCylinderParallelX
	KindCylinderParallelY
	KindCylinderParallelZ
	KindCylinderOnX
	KindCylinderOnY
	KindCylinderOnZ
	KindConeParallelX
	KindConeParallelY
	KindConeParallelZ
	KindConeOnX
	KindConeOnY
	KindConeOnZ
	KindQuadraticSpecial
	KindQuadraticGeneral
	KindTorusParallelX
	KindTorusParallelY
	KindTorusParallelZ
	KindSurfaceX
	KindSurfaceY
	KindSurfaceZ
	KindBox
	KindParallelepiped
	KindSphere
	KindCylinderCircular
	KindHexagonalPrism
	KindCylinderElliptical
	KindConeTruncated
	KindEllipsoid
	KindWedge
	KindPolyhedron
)

type kindInfo struct {
	mnemonic string
	name     string
	macro    bool
	schema   schema
}

// the two general planes share the "p" mnemonic, and are told apart by their number of parameters.
var kinds = map[Kind]kindInfo{
	KindPlaneGeneralPoint:    {"p", "PlaneGeneralPoint", false, req("x1", "y1", "z1", "x2", "y2", "z2", "x3", "y3", "z3")},
	KindPlaneGeneralEquation: {"p", "PlaneGeneralEquation", false, req("a", "b", "c", "d")},
	KindPlaneNormalX:         {"px", "PlaneNormalX", false, req("d")},
	KindPlaneNormalY:         {"py", "PlaneNormalY", false, req("d")},
	KindPlaneNormalZ:         {"pz", "PlaneNormalZ", false, req("d")},
	KindSphereOrigin:         {"so", "SphereOrigin", false, req("r")},
	KindSphereGeneral:        {"s", "SphereGeneral", false, req("x", "y", "z", "r")},
	KindSphereNormalX:        {"sx", "SphereNormalX", false, req("x", "r")},
	KindSphereNormalY:        {"sy", "SphereNormalY", false, req("y", "r")},
	KindSphereNormalZ:        {"sz", "SphereNormalZ", false, req("z", "r")},
	KindCylinderParallelX:    {"c/x", "CylinderParallelX", false, req("y", "z", "r")},
	KindCylinderParallelY:    {"c/y", "CylinderParallelY", false, req("x", "z", "r")},
	KindCylinderParallelZ:    {"c/z", "CylinderParallelZ", false, req("x", "y", "r")},
	KindCylinderOnX:          {"cx", "CylinderOnX", false, req("r")},
	KindCylinderOnY:          {"cy", "CylinderOnY", false, req("r")},
	KindCylinderOnZ:          {"cz", "CylinderOnZ", false, req("r")},
	KindConeParallelX:        {"k/x", "ConeParallelX", false, req("x", "y", "z", "t_squared", "plusminus_1")},
	KindConeParallelY:        {"k/y", "ConeParallelY", false, req("x", "y", "z", "t_squared", "plusminus_1")},
	KindConeParallelZ:        {"k/z", "ConeParallelZ", false, req("x", "y", "z", "t_squared", "plusminus_1")},
	KindConeOnX:              {"kx", "ConeOnX", false, req("x", "t_squared", "plusminus_1")},
	KindConeOnY:              {"ky", "ConeOnY", false, req("y", "t_squared", "plusminus_1")},
	KindConeOnZ:              {"kz", "ConeOnZ", false, req("z", "t_squared", "plusminus_1")},
	KindQuadraticSpecial:     {"sq", "QuadraticSpecial", false, req("a", "b", "c", "d", "e", "f", "g", "x", "y", "z")},
	KindQuadraticGeneral:     {"gq", "QuadraticGeneral", false, req("a", "b", "c", "d", "e", "f", "g", "h", "j", "k")},
	KindTorusParallelX:       {"tx", "TorusParallelX", false, req("x", "y", "z", "a", "b", "c")},
	KindTorusParallelY:       {"ty", "TorusParallelY", false, req("x", "y", "z", "a", "b", "c")},
	KindTorusParallelZ:       {"tz", "TorusParallelZ", false, req("x", "y", "z", "a", "b", "c")},
	KindSurfaceX:             {"x", "SurfaceX", false, req("x1", "r1").opt("x2", "r2").opt("x3", "r3")},
	KindSurfaceY:             {"y", "SurfaceY", false, req("y1", "r1").opt("y2", "r2").opt("y3", "r3")},
	KindSurfaceZ:             {"z", "SurfaceZ", false, req("z1", "r1").opt("z2", "r2").opt("z3", "r3")},
	KindBox: {"box", "Box", true, req("vx", "vy", "vz", "a1x", "a1y", "a1z", "a2x", "a2y", "a2z").
		opt("a3x", "a3y", "a3z")},
	KindParallelepiped:   {"rpp", "Parallelepiped", true, req("xmin", "xmax", "ymin", "ymax", "zmin", "zmax")},
	KindSphere:           {"sph", "Sphere", true, req("vx", "vy", "vz", "r")},
	KindCylinderCircular: {"rcc", "CylinderCircular", true, req("vx", "vy", "vz", "hx", "hy", "hz", "r")},
	KindHexagonalPrism: {"rhp", "HexagonalPrism", true, req("vx", "vy", "vz", "hx", "hy", "hz", "r1", "r2", "r3").
		opt("s1", "s2", "s3", "t1", "t2", "t3")},
	KindCylinderElliptical: {"rec", "CylinderElliptical", true, req("vx", "vy", "vz", "hx", "hy", "hz", "v1x", "v1y", "v1z", "v2x").
		opt("v2y", "v2z")},
	KindConeTruncated: {"trc", "ConeTruncated", true, req("vx", "vy", "vz", "hx", "hy", "hz", "r1", "r2")},
	KindEllipsoid:     {"ell", "Ellipsoid", true, req("v1x", "v1y", "v1z", "v2x", "v2y", "v2z", "rm")},
	KindWedge: {"wed", "Wedge", true, req("vx", "vy", "vz", "v1x", "v1y", "v1z", "v2x", "v2y", "v2z",
		"v3x", "v3y", "v3z")},
	KindPolyhedron: {"arb", "Polyhedron", true, req("ax", "ay", "az", "bx", "by", "bz", "cx", "cy", "cz", "dx", "dy", "dz",
		"ex", "ey", "ez", "fx", "fy", "fz", "gx", "gy", "gz", "hx", "hy", "hz", "n1", "n2", "n3", "n4", "n5", "n6")},
}

var mnemonics map[string]Kind

func init() {
	mnemonics = make(map[string]Kind, len(kinds)+1)
	for k, v := range kinds {
		if k == KindPlaneGeneralPoint {
			continue
		}
		mnemonics[v.mnemonic] = k
	}
	mnemonics["hex"] = KindHexagonalPrism
}

// LookupMnemonic returns the Kind for a mnemonic. The case of tok is ignored.
// For "p" it returns KindPlaneGeneralEquation, use ResolveKind to pick the right
// plane once the number of parameters is known.
func LookupMnemonic(tok string) (Kind, error) {
	k, ok := mnemonics[strings.ToLower(tok)]
	if !ok {
		return 0, mcnp.Errorf(mcnp.ErrUnknownMnemonic, tok, "no surface kind for mnemonic")
	}
	return k, nil
}

// ResolveKind returns the Kind for mnemonic, given the number of parameters in the card.
// The general plane takes 4 parameters (equation form) or 9 (three points). Any other
// number of parameters for "p" is an error.
func ResolveKind(mnemonic string, nparams int) (Kind, error) {
	k, err := LookupMnemonic(mnemonic)
	if err != nil {
		return 0, err
	}
	if k != KindPlaneGeneralEquation {
		return k, nil
	}
	switch {
	case nparams == 4:
		return KindPlaneGeneralEquation, nil
	case nparams == 9:
		return KindPlaneGeneralPoint, nil
	case nparams < 9:
		return 0, mcnp.Errorf(mcnp.ErrTooFewParameters, mnemonic, "general planes take 4 or 9 parameters, got %d", nparams)
	default:
		return 0, mcnp.Errorf(mcnp.ErrTooManyParameters, mnemonic, "general planes take 4 or 9 parameters, got %d", nparams)
	}
}

// Kinds returns all the surface kinds.
func Kinds() []Kind {
	ret := make([]Kind, 0, len(kinds))
	for k := KindPlaneGeneralPoint; k <= KindPolyhedron; k++ {
		ret = append(ret, k)
	}
	return ret
}

// Mnemonic returns the mnemonic used for k in MCNP cards.
func (k Kind) Mnemonic() string {
	return kinds[k].mnemonic
}

func (k Kind) String() string {
	if i, ok := kinds[k]; ok {
		return i.name
	}
	return "UnknownKind"
}

// IsMacrobody returns true for the macrobodies.
func (k Kind) IsMacrobody() bool {
	return kinds[k].macro
}

// Arity returns the minimum and maximum number of parameters for k.
func (k Kind) Arity() (int, int) {
	s := kinds[k].schema
	return s.required(), len(s)
}

// ParameterNames returns the names of the parameters of k, in order.
func (k Kind) ParameterNames() []string {
	s := kinds[k].schema
	ret := make([]string, len(s))
	for i, v := range s {
		ret[i] = v.name
	}
	return ret
}
