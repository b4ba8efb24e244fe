/*
 * event.go, part of gomcnp.
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

package ptrac

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"

	mcnp "github.com/rmera/gomcnp"
)

// Event codes, as found in the I line and in the next event type field.
const (
	CodeSource      = 1000
	CodeBank        = 2000 //a bank event is 2000+k or -(2000+k), k being the bank type
	CodeSurface     = 3000
	CodeCollision   = 4000
	CodeTermination = 5000
	CodeFinal       = 9000
)

// CategoryOf returns the category announced by an event code.
func CategoryOf(code int64) (Category, error) {
	switch code {
	case CodeSource:
		return CategorySource, nil
	case CodeSurface:
		return CategorySurface, nil
	case CodeCollision:
		return CategoryCollision, nil
	case CodeTermination:
		return CategoryTermination, nil
	case CodeFinal:
		return CategoryFinal, nil
	}
	if a := abs(code); a > CodeBank && a < CodeSurface {
		return CategoryBank, nil
	}
	return 0, mcnp.Errorf(mcnp.ErrUnknownEventCode, strconv.FormatInt(code, 10), "")
}

func abs(i int64) int64 {
	if i < 0 {
		return -i
	}
	return i
}

// Code is a value resolved against one of the closed PTRAC tables. Known is
// false for values the table doesn't have, which only happens when decoding
// in Lenient mode. The zero Code means that the value was not in the record.
type Code struct {
	Value int64
	Label string
	Known bool
}

const unrecognized = "unrecognized"

// Present returns true if the value was in the record.
func (c Code) Present() bool { return c.Label != "" }

func (c Code) String() string {
	if !c.Present() {
		return ""
	}
	if !c.Known {
		return fmt.Sprintf("%s (%d)", unrecognized, c.Value)
	}
	return c.Label
}

// Particle types (IPT).
const (
	ParticleNeutron = 1
	ParticlePhoton  = 2
)

var particles = map[int64]string{
	ParticleNeutron: "neutron",
	ParticlePhoton:  "photon",
}

type bankType struct {
	label string
	extra bool //the event carries NTYN and NXS
}

var bankTypes = map[int64]bankType{
	1:  {"DXTRAN Track", true},
	2:  {"Energy Split", false},
	3:  {"Weight-Window Surface Split", false},
	4:  {"Weight-Window Collision Split", true},
	5:  {"Forced Collision-Uncollided Part", false},
	6:  {"Importance Split", false},
	7:  {"Neutron from Neutron (n,xn) (n,f) and Secondary Particles from Library Protons", true},
	8:  {"Photon from Neutron", true},
	9:  {"Photon from Double Fluorescence", true},
	10: {"Photon from Annihilation", false},
	11: {"Electron from Photoelectric", true},
	12: {"Electron from Compton", true},
	13: {"Electron from Pair Production", true},
	14: {"Auger Electron from Photon/X-ray", true},
	15: {"Positron from Pair Production", false},
	16: {"Bremsstrahlung from Electron", true},
	17: {"Knock-on Electron", false},
	18: {"X-rays from Electron", false},
	19: {"Photon from Neutron - Multigroup", true},
	20: {"Neutron (n,f) - Multigroup", true},
	21: {"Neutron (n,xn) k- Multigroup", true},
	22: {"Photo from Photon - Multigroup", true},
	23: {"Adjoint Weight Split - Multigroup", false},
	24: {"Weight-Window Pseudo-Collision Split", false},
	25: {"Secondary Particles from Photonuclear", true},
	26: {"DXTRAN annihilation photon from pulse-height tally variance reduction", true},
	30: {"Light Ions from Neutrons", true},
	31: {"Light Ions from Protons", true},
	32: {"Library Neutrons from Model Neutrons", false},
	33: {"Secondary Particles from Inelastic Nuclear Interactions", false},
	34: {"Secondary Particles from Elastic Nuclear Interactions", false},
}

// termination codes up to 10 mean the same for every particle.
var terminations = map[int64]string{
	1:  "Escape",
	2:  "Energy cutoff",
	3:  "Time cutoff",
	4:  "Weight window",
	5:  "Cell importance",
	6:  "Weight cutoff",
	7:  "Energy importance",
	8:  "DXTRAN",
	9:  "Forced collision",
	10: "Exponential transform",
}

var neutronTerminations = map[int64]string{
	11: "Downscattering",
	12: "Capture",
	13: "Loss to (x,xn)",
	14: "Loss to fission",
	15: "Nuclear Interactions",
	16: "Particle decay",
	17: "Tabular boundary",
}

var photonTerminations = map[int64]string{
	11: "Compton scatter",
	12: "Capture",
	13: "Pair production",
	14: "Photonuclear",
}

func lookupParticle(v int64) (Code, bool) {
	l, ok := particles[v]
	return Code{v, l, ok}, ok
}

func lookupBank(code int64) (Code, bool, bool) {
	k := abs(code) - CodeBank
	b, ok := bankTypes[k]
	return Code{k, b.label, ok}, b.extra, ok
}

func lookupTermination(v int64, particle Code) (Code, bool) {
	if l, ok := terminations[v]; ok {
		return Code{v, l, true}, true
	}
	var l string
	var ok bool
	switch {
	case particle.Known && particle.Value == ParticleNeutron:
		l, ok = neutronTerminations[v]
	case particle.Known && particle.Value == ParticlePhoton:
		l, ok = photonTerminations[v]
	}
	return Code{v, l, ok}, ok
}

// lookupReaction resolves NTYN. Events with no particle type use the neutron table.
func lookupReaction(v int64, particle Code) (Code, bool) {
	var l string
	if particle.Known && particle.Value == ParticlePhoton {
		switch v {
		case 1:
			l = "Incoherent scatter"
		case 2:
			l = "Coherent scatter"
		case 3:
			l = "Fluorescence"
		case 4, 5:
			l = "Pair production"
		}
	} else {
		switch {
		case v == 1:
			l = "Inelastic S(alpha, beta)"
		case v == 2:
			l = "Elastic S(alpha, beta)"
		case v == -99:
			l = "Elastic scatter/Inelastic scatter"
		case v > 5:
			l = "ENDF Reaction ID"
		}
	}
	return Code{v, l, l != ""}, l != ""
}

// Event is one event of a particle history. Values not in the record are
// left as their zero (non-valid) values.
type Event struct {
	Category    Category
	Code        int64 //the event code that announced this event
	Bank        Code  //bank events only
	Particle    Code
	Termination Code
	Reaction    Code //NTYN, for collisions and the bank events that carry it
	Cell        mcnp.Integer
	Material    mcnp.Integer
	Surface     mcnp.Integer
	Source      mcnp.Integer
	Node        mcnp.Integer
	Branch      mcnp.Integer
	NCP         mcnp.Integer
	NXS         mcnp.Integer
	Angle       mcnp.Real
	Energy      mcnp.Real
	Weight      mcnp.Real
	Time        mcnp.Real
	Position    *r3.Vec //nil unless the three coordinates are in the record
	Direction   *r3.Vec
	Next        Category
	NextCode    int64
	Fields      map[FieldID]float64 //every value in the record
	Extra       map[FieldID]float64 //values with no attribute of their own
	Warnings    []string
}

// Mode tells the decoder what to do with values missing from the lookup tables.
type Mode int

const (
	// Lenient records the value as an unrecognized Code, logs a warning and goes on.
	Lenient Mode = iota
	// Strict fails with mcnp.ErrUnrecognizedCode.
	Strict
)

// Options control the decoding of histories.
type Options struct {
	Mode   Mode
	Logger *slog.Logger //nil discards the warnings
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

// unrecognizedCode handles a value that is not in the table named what.
func (o Options) unrecognizedCode(E *Event, what string, v int64) (Code, error) {
	if o.Mode == Strict {
		return Code{}, mcnp.Errorf(mcnp.ErrUnrecognizedCode, strconv.FormatInt(v, 10), "%s", what)
	}
	w := fmt.Sprintf("unrecognized %s %d", what, v)
	E.Warnings = append(E.Warnings, w)
	o.logger().Warn("unrecognized PTRAC code", "table", what, "value", v, "category", E.Category.String())
	return Code{Value: v, Label: unrecognized, Known: false}, nil
}

// nextCode finds the next event code among the values of a record of category c:
// the value of the next event type field or, if the layout doesn't declare one, the last
// value in the J line.
func nextCode(H *Header, c Category, jvals []float64, vals []float64) (int64, error) {
	if i := H.index(c, FieldNextEventType); i >= 0 && i < len(vals) {
		return int64(math.Round(vals[i])), nil
	}
	if len(jvals) == 0 {
		return 0, mcnp.Errorf(mcnp.ErrInvalidFormat, "", "%s event without a next event code", c)
	}
	return int64(math.Round(jvals[len(jvals)-1])), nil
}

// readEventLines reads the J and P lines of an event and returns the present
// values in the J line, and in both lines.
func readEventLines(j, p string) ([]float64, []float64, error) {
	jv, err := jFormat.Read(j)
	if err != nil {
		return nil, nil, err
	}
	pv, err := pFormat.Read(p)
	if err != nil {
		return nil, nil, err
	}
	jvals := floats(Present(jv))
	return jvals, append(append([]float64(nil), jvals...), floats(Present(pv))...), nil
}

func floats(v []Value) []float64 {
	ret := make([]float64, len(v))
	for i, val := range v {
		ret[i] = val.Float
	}
	return ret
}

func integer(v float64) mcnp.Integer {
	return mcnp.I(int64(math.Round(v)))
}

// decodeEvent builds an event of category c, announced by code, from the values of its J and P lines.
func decodeEvent(H *Header, c Category, code int64, jvals, vals []float64, o Options) (Event, error) {
	E := Event{Category: c, Code: code}
	layout := H.Layout[c]
	if len(vals) > len(layout) {
		return Event{}, mcnp.Errorf(mcnp.ErrUndeclaredField, "", "%d values in a %s event, %d declared", len(vals), c, len(layout))
	}
	next, err := nextCode(H, c, jvals, vals)
	if err != nil {
		return Event{}, err
	}
	if E.Next, err = CategoryOf(next); err != nil {
		return Event{}, err
	}
	E.NextCode = next
	d := make(map[FieldID]float64, len(vals))
	for i, v := range vals {
		d[layout[i]] = v
	}
	E.Fields = make(map[FieldID]float64, len(d))
	for k, v := range d {
		E.Fields[k] = v
	}
	pop := func(f FieldID) (float64, bool) {
		v, ok := d[f]
		delete(d, f)
		return v, ok
	}
	extra := c == CategoryCollision
	if c == CategoryBank {
		var ok bool
		if E.Bank, extra, ok = lookupBank(code); !ok {
			if E.Bank, err = o.unrecognizedCode(&E, "bank event type", abs(code)-CodeBank); err != nil {
				return Event{}, err
			}
		}
	}
	if v, ok := pop(FieldParticle); ok {
		var known bool
		if E.Particle, known = lookupParticle(int64(math.Round(v))); !known {
			if E.Particle, err = o.unrecognizedCode(&E, "particle type", int64(math.Round(v))); err != nil {
				return Event{}, err
			}
		}
	}
	if extra {
		if v, ok := pop(FieldNTYN); ok {
			var known bool
			if E.Reaction, known = lookupReaction(int64(math.Round(v)), E.Particle); !known {
				if E.Reaction, err = o.unrecognizedCode(&E, "reaction type", int64(math.Round(v))); err != nil {
					return Event{}, err
				}
			}
		}
		if v, ok := pop(FieldNXS); ok {
			E.NXS = integer(v)
		}
	}
	if v, ok := pop(FieldTermination); ok {
		var known bool
		if E.Termination, known = lookupTermination(int64(math.Round(v)), E.Particle); !known {
			what := "termination type"
			if E.Particle.Known {
				what = E.Particle.Label + " termination type"
			}
			if E.Termination, err = o.unrecognizedCode(&E, what, int64(math.Round(v))); err != nil {
				return Event{}, err
			}
		}
	}
	ints := []struct {
		f   FieldID
		dst *mcnp.Integer
	}{
		{FieldCell, &E.Cell},
		{FieldMaterial, &E.Material},
		{FieldSurface, &E.Surface},
		{FieldSource, &E.Source},
		{FieldNode, &E.Node},
		{FieldBranch, &E.Branch},
		{FieldNCP, &E.NCP},
	}
	for _, v := range ints {
		if val, ok := pop(v.f); ok {
			*v.dst = integer(val)
		}
	}
	reals := []struct {
		f   FieldID
		dst *mcnp.Real
	}{
		{FieldAngle, &E.Angle},
		{FieldEnergy, &E.Energy},
		{FieldWeight, &E.Weight},
		{FieldTime, &E.Time},
	}
	for _, v := range reals {
		if val, ok := pop(v.f); ok {
			*v.dst = mcnp.R(val)
		}
	}
	E.Position = vec(pop, FieldX, FieldY, FieldZ)
	E.Direction = vec(pop, FieldU, FieldV, FieldW)
	pop(FieldNextEventType)
	if len(d) > 0 {
		E.Extra = d
	}
	return E, nil
}

// vec returns the vector with the three given components, or nil if any of them is missing.
// The components are removed from the record either way.
func vec(pop func(FieldID) (float64, bool), x, y, z FieldID) *r3.Vec {
	vx, okx := pop(x)
	vy, oky := pop(y)
	vz, okz := pop(z)
	if !okx || !oky || !okz {
		return nil
	}
	return &r3.Vec{X: vx, Y: vy, Z: vz}
}

func (E Event) String() string {
	return fmt.Sprintf("%s event (next: %s)", E.Category, E.Next)
}

// ToArguments returns the dictionary form of the event. Only the values in the record are included.
func (E Event) ToArguments() map[string]any {
	ret := map[string]any{
		"type": E.Category.String(),
		"next": E.Next.String(),
	}
	codes := []struct {
		key string
		c   Code
	}{
		{"bank", E.Bank},
		{"particle type", E.Particle},
		{"termination type", E.Termination},
		{"ntyn", E.Reaction},
	}
	for _, v := range codes {
		if v.c.Present() {
			ret[v.key] = map[string]any{"value": v.c.Value, "label": v.c.String(), "known": v.c.Known}
		}
	}
	ints := []struct {
		key string
		i   mcnp.Integer
	}{
		{"cell number", E.Cell},
		{"material", E.Material},
		{"surface number", E.Surface},
		{"source", E.Source},
		{"node", E.Node},
		{"branch number", E.Branch},
		{"ncp", E.NCP},
		{"nxs", E.NXS},
	}
	for _, v := range ints {
		if v.i.Valid {
			ret[v.key] = v.i.Value
		}
	}
	reals := []struct {
		key string
		r   mcnp.Real
	}{
		{"angle with surface normal", E.Angle},
		{"energy", E.Energy},
		{"weight", E.Weight},
		{"time", E.Time},
	}
	for _, v := range reals {
		if v.r.Valid {
			ret[v.key] = v.r.Value
		}
	}
	if E.Position != nil {
		ret["loc"] = []float64{E.Position.X, E.Position.Y, E.Position.Z}
	}
	if E.Direction != nil {
		ret["dir"] = []float64{E.Direction.X, E.Direction.Y, E.Direction.Z}
	}
	if len(E.Extra) > 0 {
		misc := make(map[string]float64, len(E.Extra))
		for k, v := range E.Extra {
			misc[k.String()] = v
		}
		ret["misc"] = misc
	}
	if len(E.Warnings) > 0 {
		ret["warnings"] = append([]string(nil), E.Warnings...)
	}
	return ret
}
