/*
 * header.go, part of gomcnp.
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
	"bufio"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	mcnp "github.com/rmera/gomcnp"
)

var (
	identFormat   = MustParseFormat("(a4,a5,a32,a9,a9)")
	keywordFormat = MustParseFormat("(1x,10e12.4)")
	countsFormat  = MustParseFormat("(1x,20i5)")
	idFormat      = MustParseFormat("(1x,30i4)")
	jFormat       = MustParseFormat("(1x,8e10.0)")
	pFormat       = MustParseFormat("(1x,9e13.5)")
)

// the counts line has the NPS count and two counts per event category.
const minCounts = 11

// LineSource gives the lines of a PTRAC file one at a time, without the line
// terminator. It returns io.EOF after the last line.
type LineSource interface {
	Line() (string, error)
}

type readerSource struct {
	r *bufio.Reader
}

// NewLineSource returns a LineSource that reads the lines of r.
func NewLineSource(r io.Reader) LineSource {
	return &readerSource{bufio.NewReader(r)}
}

func (s *readerSource) Line() (string, error) {
	l, err := s.r.ReadString('\n')
	if err == io.EOF && l != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(l, "\r\n"), nil
}

// lineReader counts the lines it reads and can give back one line.
type lineReader struct {
	src  LineSource
	n    int
	back *string
}

func (l *lineReader) next() (string, error) {
	if l.back != nil {
		s := *l.back
		l.back = nil
		l.n++
		return s, nil
	}
	s, err := l.src.Line()
	if err != nil {
		return "", err
	}
	l.n++
	return s, nil
}

func (l *lineReader) unread(s string) {
	l.back = &s
	l.n--
}

// mustNext reads a line that has to be there. what names the record, for the error message.
func (l *lineReader) mustNext(what string) (string, error) {
	s, err := l.next()
	if err == io.EOF {
		return "", mcnp.Errorf(mcnp.ErrTruncated, "", "end of input while reading the %s", what).AtLine(l.n + 1)
	}
	return s, err
}

// Header is the preamble of a PTRAC file. It should not be modified after DecodeHeader returns it.
type Header struct {
	CodeName    string
	CodeVersion string
	LoadDate    string
	RunDate     string
	RunTime     string
	Title       string
	Particles   string //the second-to-last word of the title line
	Hash        string //the last word of the title line
	Keywords    map[Keyword][]float64
	Counts      []int
	Layout      map[Category][]FieldID

	iformat *Format
}

// DecodeHeader reads the header of a PTRAC file from lines.
func DecodeHeader(lines LineSource) (*Header, error) {
	H, err := decodeHeader(&lineReader{src: lines})
	if err != nil {
		return nil, mcnp.ErrDecorate(err, "DecodeHeader")
	}
	return H, nil
}

func decodeHeader(l *lineReader) (*Header, error) {
	H := &Header{Keywords: make(map[Keyword][]float64), Layout: make(map[Category][]FieldID)}
	s, err := l.mustNext("first header line")
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(s) != "-1" {
		return nil, mcnp.Errorf(mcnp.ErrInvalidFormat, strings.TrimSpace(s), "a PTRAC file starts with -1").AtLine(l.n)
	}
	if s, err = l.mustNext("code identification"); err != nil {
		return nil, err
	}
	ident, err := identFormat.Read(s)
	if err != nil {
		return nil, atLine(err, l.n)
	}
	strs := make([]string, len(ident))
	for i, v := range ident {
		strs[i] = strings.TrimSpace(v.Str)
	}
	H.CodeName, H.CodeVersion, H.LoadDate, H.RunDate, H.RunTime = strs[0], strs[1], strs[2], strs[3], strs[4]
	if s, err = l.mustNext("title"); err != nil {
		return nil, err
	}
	H.Title = strings.TrimSpace(s)
	if f := strings.Fields(s); len(f) >= 2 {
		H.Particles, H.Hash = f[len(f)-2], f[len(f)-1]
	}
	if err = H.readKeywords(l); err != nil {
		return nil, err
	}
	if err = H.readLayout(l); err != nil {
		return nil, err
	}
	//the I line has the NPS fields: all integers but the last one.
	H.iformat, err = ParseFormat(fmt.Sprintf("(1x,%di10,e13.5)", H.Counts[0]-1))
	if err != nil {
		return nil, err
	}
	return H, nil
}

// isCountsLine returns true if all the words in s are integers. The keyword
// lines are written with an E descriptor, so they always have a decimal point.
func isCountsLine(s string) bool {
	f := strings.Fields(s)
	if len(f) == 0 {
		return false
	}
	for _, v := range f {
		if !mcnp.IsInteger(v) {
			return false
		}
	}
	return true
}

// readKeywords reads the keyword block: the number of keywords m, then, for each
// keyword, the number of values n followed by the n values. The block can span any
// number of lines, and ends where the counts line begins.
func (H *Header) readKeywords(l *lineReader) error {
	var K []float64
	first := l.n + 1
	for {
		s, err := l.mustNext("keyword block")
		if err != nil {
			return err
		}
		if isCountsLine(s) {
			l.unread(s)
			break
		}
		vals, err := keywordFormat.Read(s)
		if err != nil {
			return atLine(err, l.n)
		}
		for _, v := range Present(vals) {
			K = append(K, v.Float)
		}
	}
	if len(K) == 0 {
		return mcnp.Errorf(mcnp.ErrMissingBlock, "", "keyword block").AtLine(first)
	}
	m := int(math.Round(K[0]))
	pos := 1
	for idx := 1; idx <= m; idx++ {
		if pos >= len(K) {
			return mcnp.Errorf(mcnp.ErrTruncated, "", "keyword block has %d of %d keywords", idx-1, m).AtLine(first)
		}
		n := int(math.Round(K[pos]))
		if n < 0 || pos+1+n > len(K) {
			return mcnp.Errorf(mcnp.ErrTruncated, "", "keyword %d needs %d values", idx, n).AtLine(first)
		}
		kw, err := parseKeyword(idx)
		if err != nil {
			return atLine(err, first)
		}
		if n > 0 {
			H.Keywords[kw] = append([]float64(nil), K[pos+1:pos+1+n]...)
		}
		pos += 1 + n
	}
	return nil
}

// readLayout reads the counts line and the run of field identifiers, and splits
// the identifiers among the event categories.
func (H *Header) readLayout(l *lineReader) error {
	s, err := l.mustNext("counts line")
	if err != nil {
		return err
	}
	vals, err := countsFormat.Read(s)
	if err != nil {
		return atLine(err, l.n)
	}
	for _, v := range Present(vals) {
		H.Counts = append(H.Counts, int(v.Int))
	}
	N := H.Counts
	if len(N) < minCounts {
		return mcnp.Errorf(mcnp.ErrInvalidFormat, "", "the counts line has %d values, at least %d needed", len(N), minCounts).AtLine(l.n)
	}
	for _, v := range N[:minCounts] {
		if v < 0 {
			return mcnp.Errorf(mcnp.ErrInvalidFormat, fmt.Sprint(v), "negative field count").AtLine(l.n)
		}
	}
	if N[0] < 2 {
		return mcnp.Errorf(mcnp.ErrInvalidFormat, fmt.Sprint(N[0]), "the NPS line needs at least 2 fields").AtLine(l.n)
	}
	//bounds[i] is where the identifiers for categories[i] end.
	var bounds [len(categories)]int
	bounds[0] = N[0]
	for i := 1; i < len(categories); i++ {
		bounds[i] = bounds[i-1] + N[2*i-1] + N[2*i]
	}
	need := bounds[len(bounds)-1]
	ids := make([]int64, 0, need)
	for len(ids) < need {
		s, err := l.mustNext("field identifiers")
		if err != nil {
			return err
		}
		vals, err := idFormat.Read(s)
		if err != nil {
			return atLine(err, l.n)
		}
		p := Present(vals)
		if len(p) == 0 {
			return mcnp.Errorf(mcnp.ErrInvalidFormat, "", "empty line in the field identifiers").AtLine(l.n)
		}
		for _, v := range p {
			ids = append(ids, v.Int)
		}
		if len(ids) > need {
			return mcnp.Errorf(mcnp.ErrLayoutOverflow, "", "%d identifiers read, %d declared", len(ids), need).AtLine(l.n)
		}
	}
	start := 0
	for i, c := range categories {
		layout := make([]FieldID, 0, bounds[i]-start)
		for _, id := range ids[start:bounds[i]] {
			f, err := ParseFieldID(id)
			if err != nil {
				return atLine(err, l.n)
			}
			layout = append(layout, f)
		}
		H.Layout[c] = layout
		start = bounds[i]
	}
	return nil
}

// Fields returns a copy of the layout of the given category.
func (H *Header) Fields(c Category) []FieldID {
	return append([]FieldID(nil), H.Layout[c]...)
}

// index returns the position of f in the layout of c, or -1.
func (H *Header) index(c Category, f FieldID) int {
	for i, v := range H.Layout[c] {
		if v == f {
			return i
		}
	}
	return -1
}

func (H *Header) sortedKeywords() []Keyword {
	ret := make([]Keyword, 0, len(H.Keywords))
	for k := range H.Keywords {
		ret = append(ret, k)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i] < ret[j] })
	return ret
}

func (H *Header) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Program:%s ; Version:(%s , %s) ; Current Date:%s %s\n", H.CodeName, H.CodeVersion, H.LoadDate, H.RunDate, H.RunTime)
	b.WriteString(H.Title + "\n")
	for _, k := range H.sortedKeywords() {
		fmt.Fprintf(&b, "  %s %v\n", k, H.Keywords[k])
	}
	for _, c := range categories {
		fmt.Fprintf(&b, "   IDS: %s %v\n", c, H.Layout[c])
	}
	return b.String()
}

// ToArguments returns the dictionary form of the header.
func (H *Header) ToArguments() map[string]any {
	kw := make(map[string]any, len(H.Keywords))
	for k, v := range H.Keywords {
		kw[k.String()] = v
	}
	ids := make(map[string]any, len(categories))
	for _, c := range categories {
		names := make([]string, len(H.Layout[c]))
		for i, f := range H.Layout[c] {
			names[i] = f.String()
		}
		ids[c.String()] = names
	}
	return map[string]any{
		"program":       H.CodeName,
		"version":       H.CodeVersion,
		"program_date":  H.LoadDate,
		"run_date":      H.RunDate,
		"run_time":      H.RunTime,
		"title":         H.Title,
		"num_particles": H.Particles,
		"shorthash":     H.Hash,
		"keywords":      kw,
		"N":             append([]int(nil), H.Counts...),
		"IDS":           ids,
	}
}

// atLine sets the line of err, if it is a *mcnp.CardError without one.
func atLine(err error, line int) error {
	if ce, ok := err.(*mcnp.CardError); ok {
		ce.AtLine(line)
	}
	return err
}
