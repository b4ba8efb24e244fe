package spectrum

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rmera/gomcnp/ptrac"
)

// ptracText returns a small PTRAC file where every event has the next event type,
// the particle type and the energy.
func ptracText() string {
	lines := []string{"-1", fmt.Sprintf("%-4s%5s%32s%9s%9s", "mcnp", "6", "05/08/23", "10/19/26", "12:00:00"), "spectrum 2 abcdef", fmt.Sprintf(" %12.4E", 0.0)}
	counts := " "
	for _, n := range []int{2, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1} {
		counts += fmt.Sprintf("%5d", n)
	}
	ids := " "
	for _, n := range []int{1, 2, 7, 16, 26, 7, 16, 26, 7, 16, 26, 7, 16, 26, 7, 16, 26} {
		ids += fmt.Sprintf("%4d", n)
	}
	lines = append(lines, counts, ids)
	event := func(next, ipt int, erg float64) []string {
		return []string{fmt.Sprintf(" %10d%10d", next, ipt), fmt.Sprintf(" %13.5E", erg)}
	}
	lines = append(lines, fmt.Sprintf(" %10d%13.5E", 1, 1000.0))
	lines = append(lines, event(4000, 1, 1.5)...)
	lines = append(lines, event(5000, 1, 0.5)...)
	lines = append(lines, event(9000, 1, 0.2)...)
	lines = append(lines, fmt.Sprintf(" %10d%13.5E", 2, 1000.0))
	lines = append(lines, event(5000, 2, 3)...)
	lines = append(lines, event(9000, 2, 2.5)...)
	return strings.Join(lines, "\n") + "\n"
}

func histories(Te *testing.T) []*ptrac.History {
	Te.Helper()
	P, err := ptrac.ReadAll(strings.NewReader(ptracText()), ptrac.Options{Mode: ptrac.Strict})
	if err != nil {
		Te.Fatal(err)
	}
	return P.Histories
}

func TestData(Te *testing.T) {
	D, err := NewData([]float64{0, 1, 2}, nil, 3)
	if err != nil {
		Te.Fatal(err)
	}
	D.AddData(0, 1, 2, -1, 1.5)
	fmt.Println(D)
	if h := D.View(); h[0] != 1 || h[1] != 2 || D.Total() != 5 || D.ID() != 3 {
		Te.Errorf("wrong histogram %v, total %d", h, D.Total())
	}
	D.Normalize()
	if math.Abs(D.Sum()-0.6) > 1e-12 || !D.Normalized() {
		Te.Errorf("wrong normalized sum %g", D.Sum())
	}
	D.AddData(0.5)
	if h := D.View(); math.Abs(h[0]-2.0/6) > 1e-12 {
		Te.Errorf("adding to a normalized histogram gives %v", h)
	}
	D.UnNormalize()
	raw := []float64{1.5, 0.2, 7, 0.1}
	E, _ := NewData([]float64{0, 1, 2}, raw)
	if h := E.View(); h[0] != 2 || h[1] != 1 || E.Total() != 4 || raw[0] != 1.5 {
		Te.Errorf("wrong histogram from raw data %v, raw data %v", h, raw)
	}
	S := new(Data)
	if err := S.Add(D, E); err != nil {
		Te.Fatal(err)
	}
	if h := S.View(); math.Abs(h[0]-4) > 1e-9 || math.Abs(h[1]-3) > 1e-9 {
		Te.Errorf("wrong sum %v", h)
	}
	F, _ := NewData([]float64{0, 2}, nil)
	if err := S.Add(D, F); err == nil {
		Te.Errorf("histograms with different dividers added")
	}
	if _, err := NewData([]float64{2, 1}, nil); err == nil {
		Te.Errorf("unsorted dividers accepted")
	}
	j, err := json.Marshal(E)
	if err != nil {
		Te.Fatal(err)
	}
	E2 := new(Data)
	if err := json.Unmarshal(j, E2); err != nil || E2.Sum() != E.Sum() {
		Te.Errorf("JSON round trip failed: %s %v", j, err)
	}
}

func TestDividers(Te *testing.T) {
	d, err := LogDividers(1e-3, 10, 4)
	if err != nil {
		Te.Fatal(err)
	}
	for i, v := range []float64{1e-3, 1e-2, 1e-1, 1, 10} {
		if math.Abs(d[i]-v)/v > 1e-9 {
			Te.Errorf("log divider %d is %g, expected %g", i, d[i], v)
		}
	}
	if _, err = LogDividers(0, 10, 4); err == nil {
		Te.Errorf("log dividers from 0 accepted")
	}
	d, _ = LinearDividers(0, 4, 4)
	if len(d) != 5 || d[2] != 2 {
		Te.Errorf("wrong linear dividers %v", d)
	}
}

func TestSpectra(Te *testing.T) {
	hs := histories(Te)
	div, _ := LinearDividers(0, 4, 4)
	D, err := FromHistories(hs, ptrac.CategorySource, div)
	if err != nil {
		Te.Fatal(err)
	}
	if h := D.View(); h[1] != 1 || h[3] != 1 || D.Sum() != 2 || D.ID() != int(ptrac.CategorySource) {
		Te.Errorf("wrong source spectrum %v", D)
	}
	M, err := ByParticle(hs, div)
	if err != nil {
		Te.Fatal(err)
	}
	if r, c := M.Dims(); r != len(Categories) || c != len(Particles) {
		Te.Fatalf("wrong dims %d %d", r, c)
	}
	if M.View(0, 0).View()[1] != 1 || M.View(0, 1).View()[3] != 1 || M.View(3, 0).View()[0] != 1 || M.View(4, 1).Sum() != 1 {
		Te.Errorf("wrong spectra\n%s", M)
	}
	sums, err := M.FromAll(func(D *Data) (float64, error) { return D.Sum(), nil })
	if err != nil {
		Te.Fatal(err)
	}
	total := 0.0
	for _, r := range sums {
		for _, v := range r {
			total += v
		}
	}
	if total != 5 {
		Te.Errorf("%g events in the spectra, expected 5", total)
	}
}

func TestPlot(Te *testing.T) {
	div, _ := LinearDividers(0, 4, 8)
	D, err := FromHistories(histories(Te), ptrac.CategoryTermination, div)
	if err != nil {
		Te.Fatal(err)
	}
	name := filepath.Join(Te.TempDir(), "termination.png")
	if err := Plot(D, "Termination energies", name); err != nil {
		Te.Fatal(err)
	}
	if st, err := os.Stat(name); err != nil || st.Size() == 0 {
		Te.Errorf("plot not written: %v", err)
	}
}
