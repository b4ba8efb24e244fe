/*
 * history.go, part of gomcnp.
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
	"math"
	"strings"

	mcnp "github.com/rmera/gomcnp"
)

// History is the sequence of events of one source particle.
type History struct {
	ID        int64 //NPS
	First     Category
	FirstCode int64
	Aux       map[FieldID]float64 //the rest of the I line
	events    []Event
}

// Events returns a copy of the events of the history.
func (H *History) Events() []Event {
	return append([]Event(nil), H.events...)
}

// Len returns the number of events in the history.
func (H *History) Len() int {
	return len(H.events)
}

// Event returns the i-th event of the history.
func (H *History) Event(i int) Event {
	return H.events[i]
}

func (H *History) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Event for particle %d\n", H.ID)
	for _, e := range H.events {
		b.WriteString("  --------\n")
		fmt.Fprintf(&b, "  %s\n", e)
	}
	return b.String()
}

// ToArguments returns the dictionary form of the history.
func (H *History) ToArguments() map[string]any {
	aux := make(map[string]float64, len(H.Aux))
	for k, v := range H.Aux {
		aux[k.String()] = v
	}
	events := make([]map[string]any, len(H.events))
	for i, e := range H.events {
		events[i] = e.ToArguments()
	}
	return map[string]any{
		"nps":    H.ID,
		"first":  H.First.String(),
		"aux":    aux,
		"events": events,
	}
}

// RawHistory holds the lines of one history: the I line and a J line and a P line
// per event. Raw histories are produced serially by Reader.NextRaw and can then be
// decoded independently of each other.
type RawHistory struct {
	Line   int //the line of the input where the history starts
	ILine  string
	Events [][2]string
}

// iLine reads the I line. It returns the NPS, the first event code and the rest of the values.
func (H *Header) iLine(s string) (int64, int64, map[FieldID]float64, error) {
	vals, err := H.iformat.Read(s)
	if err != nil {
		return 0, 0, nil, err
	}
	if len(vals) < 2 || !vals[0].Present || !vals[1].Present {
		return 0, 0, nil, mcnp.Errorf(mcnp.ErrInvalidFormat, strings.TrimSpace(s), "an I line needs the NPS and the first event type")
	}
	layout := H.Layout[CategoryNPS]
	aux := make(map[FieldID]float64)
	for i, v := range vals[2:] {
		if v.Present && i+2 < len(layout) {
			aux[layout[i+2]] = v.Float
		}
	}
	return int64(math.Round(vals[0].Float)), int64(math.Round(vals[1].Float)), aux, nil
}

// DecodeRaw decodes a raw history. It only reads H and raw, so several raw
// histories can be decoded at the same time.
func DecodeRaw(H *Header, raw *RawHistory, o Options) (*History, error) {
	h, err := decodeRaw(H, raw, o)
	if err != nil {
		return nil, mcnp.ErrDecorate(err, "DecodeRaw")
	}
	return h, nil
}

func decodeRaw(H *Header, raw *RawHistory, o Options) (*History, error) {
	id, code, aux, err := H.iLine(raw.ILine)
	if err != nil {
		return nil, atLine(err, raw.Line)
	}
	c, err := CategoryOf(code)
	if err != nil {
		return nil, atLine(err, raw.Line)
	}
	h := &History{ID: id, First: c, FirstCode: code, Aux: aux, events: make([]Event, 0, len(raw.Events))}
	for i, lines := range raw.Events {
		line := raw.Line + 1 + 2*i
		if c == CategoryFinal {
			return nil, mcnp.Errorf(mcnp.ErrInvalidFormat, "", "event after the end of history %d", id).AtLine(line)
		}
		jvals, vals, err := readEventLines(lines[0], lines[1])
		if err != nil {
			return nil, atLine(err, line)
		}
		e, err := decodeEvent(H, c, code, jvals, vals, o)
		if err != nil {
			return nil, atLine(err, line)
		}
		h.events = append(h.events, e)
		c, code = e.Next, e.NextCode
	}
	if c != CategoryFinal {
		return nil, mcnp.Errorf(mcnp.ErrTruncated, "", "history %d doesn't reach its final event", id).AtLine(raw.Line + 1 + 2*len(raw.Events))
	}
	return h, nil
}
