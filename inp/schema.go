/*
 * schema.go, part of gomcnp.
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
	mcnp "github.com/rmera/gomcnp"
)

// param is one positional parameter of a surface kind. Group 0 is
// required, parameters with the same group > 0 form an optional trailing group
// that must be given complete or not at all.
type param struct {
	name  string
	group int
}

type schema []param

func req(names ...string) schema {
	s := make(schema, 0, len(names))
	for _, n := range names {
		s = append(s, param{name: n})
	}
	return s
}

// opt appends a new optional group to s.
func (s schema) opt(names ...string) schema {
	g := s.groups() + 1
	ret := make(schema, len(s), len(s)+len(names))
	copy(ret, s)
	for _, n := range names {
		ret = append(ret, param{name: n, group: g})
	}
	return ret
}

func (s schema) groups() int {
	g := 0
	for _, v := range s {
		if v.group > g {
			g = v.group
		}
	}
	return g
}

func (s schema) required() int {
	n := 0
	for _, v := range s {
		if v.group == 0 {
			n++
		}
	}
	return n
}

// index returns the position of the parameter called name, or -1.
func (s schema) index(name string) int {
	for i, v := range s {
		if v.name == name {
			return i
		}
	}
	return -1
}

// validate checks params against the schema of k.
func validate(k Kind, params []mcnp.Real) error {
	s := kinds[k].schema
	lo, hi := s.required(), len(s)
	if len(params) < lo {
		return mcnp.Errorf(mcnp.ErrTooFewParameters, k.Mnemonic(), "%s takes at least %d parameters, got %d", k, lo, len(params))
	}
	if len(params) > hi {
		return mcnp.Errorf(mcnp.ErrTooManyParameters, k.Mnemonic(), "%s takes at most %d parameters, got %d", k, hi, len(params))
	}
	//given[g] and complete[g] for each optional group g.
	ng := s.groups()
	given := make([]bool, ng+1)
	complete := make([]bool, ng+1)
	for g := 1; g <= ng; g++ {
		complete[g] = true
	}
	for i, p := range s {
		present := i < len(params) && params[i].Valid
		if p.group == 0 {
			if !present {
				return mcnp.Errorf(mcnp.ErrInvalidParameter, mcnp.FormatReal(paramAt(params, i)), "%s: required parameter %s not given", k, p.name)
			}
			continue
		}
		given[p.group] = given[p.group] || present
		complete[p.group] = complete[p.group] && present
	}
	for g := 1; g <= ng; g++ {
		if given[g] && !complete[g] {
			return mcnp.Errorf(mcnp.ErrInvalidParameter, "", "%s: optional parameter group %d is incomplete", k, g)
		}
		if given[g] && g > 1 && !given[g-1] {
			return mcnp.Errorf(mcnp.ErrInvalidParameter, "", "%s: optional parameter group %d given without group %d", k, g, g-1)
		}
	}
	return checkValues(k, s, params)
}

func paramAt(params []mcnp.Real, i int) mcnp.Real {
	if i < len(params) {
		return params[i]
	}
	return mcnp.Absent
}

// checkValues applies the rules on parameter values that some kinds have.
func checkValues(k Kind, s schema, params []mcnp.Real) error {
	switch k {
	case KindEllipsoid:
		if params[s.index("rm")].Value == 0 {
			return mcnp.Errorf(mcnp.ErrInvalidParameter, "0", "%s: rm can't be 0", k)
		}
	case KindPolyhedron:
		for i := s.index("n1"); i < len(params); i++ {
			v := params[i].Value
			if v != float64(int64(v)) {
				return mcnp.Errorf(mcnp.ErrInvalidParameter, mcnp.FormatReal(params[i]), "%s: facet %s must be an integer", k, s[i].name)
			}
		}
	}
	return nil
}
