package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/rmera/gomcnp/ptrac"
)

func ptracText() string {
	lines := []string{"-1", fmt.Sprintf("%-4s%5s%32s%9s%9s", "mcnp", "6", "05/08/23", "10/19/26", "12:00:00"), "store test 2 feed01", fmt.Sprintf(" %12.4E", 0.0)}
	counts := " "
	for _, n := range []int{2, 2, 4, 2, 4, 2, 4, 2, 4, 2, 4} {
		counts += fmt.Sprintf("%5d", n)
	}
	ids := " "
	for _, n := range []int{1, 2, 7, 16, 20, 21, 22, 26, 7, 16, 20, 21, 22, 26, 7, 16, 20, 21, 22, 26, 7, 16, 20, 21, 22, 26, 7, 16, 20, 21, 22, 26} {
		ids += fmt.Sprintf("%4d", n)
	}
	lines = append(lines, counts, ids[:1+30*4], " "+ids[1+30*4:])
	event := func(next, ipt int, x, erg float64) []string {
		return []string{fmt.Sprintf(" %10d%10d", next, ipt), fmt.Sprintf(" %13.5E%13.5E%13.5E%13.5E", x, 0.0, 0.0, erg)}
	}
	lines = append(lines, fmt.Sprintf(" %10d%13.5E", 1, 1000.0))
	lines = append(lines, event(4000, 1, 0, 1.5)...)
	lines = append(lines, event(5000, 1, 1, 0.5)...)
	lines = append(lines, event(9000, 1, 2, 0.2)...)
	lines = append(lines, fmt.Sprintf(" %10d%13.5E", 2, 1000.0))
	lines = append(lines, event(5000, 2, 0, 3)...)
	lines = append(lines, event(9000, 2, 5, 2.5)...)
	return strings.Join(lines, "\n") + "\n"
}

func TestStore(t *testing.T) {
	ctx := context.Background()
	P, err := ptrac.ReadAll(strings.NewReader(ptracText()), ptrac.Options{Mode: ptrac.Strict})
	if err != nil {
		t.Fatalf("read ptrac: %v", err)
	}
	path := filepath.Join(t.TempDir(), "runs.sqlite")
	s, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()
	id, err := s.SaveRun(ctx, P)
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if id == uuid.Nil {
		t.Fatalf("nil run id")
	}
	expected := map[ptrac.Category]int{
		ptrac.CategorySource:      2,
		ptrac.CategoryCollision:   1,
		ptrac.CategoryTermination: 2,
		ptrac.CategorySurface:     0,
	}
	for c, n := range expected {
		got, err := s.CountEvents(ctx, id, c)
		if err != nil {
			t.Fatalf("CountEvents: %v", err)
		}
		if got != n {
			t.Errorf("%d %s events, expected %d", got, c, n)
		}
	}
	e, err := s.Energies(ctx, id, ptrac.CategorySource)
	if err != nil {
		t.Fatalf("Energies: %v", err)
	}
	if len(e) != 2 || e[0] != 1.5 || e[1] != 3 {
		t.Errorf("wrong source energies %v", e)
	}
	runs, err := s.Runs(ctx)
	if err != nil {
		t.Fatalf("Runs: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != id || runs[0].Histories != 2 || runs[0].Title != "store test 2 feed01" {
		t.Errorf("wrong runs %+v", runs)
	}
	if err := s.DeleteRun(ctx, id); err != nil {
		t.Fatalf("DeleteRun: %v", err)
	}
	if n, _ := s.CountEvents(ctx, id, ptrac.CategorySource); n != 0 {
		t.Errorf("%d events left after deleting the run", n)
	}
	if err := s.DeleteRun(ctx, id); err == nil {
		t.Errorf("deleting a missing run should fail")
	}
}

func TestReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "runs.sqlite")
	P, err := ptrac.ReadAll(strings.NewReader(ptracText()), ptrac.Options{})
	if err != nil {
		t.Fatalf("read ptrac: %v", err)
	}
	s, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	id, err := s.SaveRun(ctx, P)
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	s.Close()
	s, err = Open(ctx, path)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	defer s.Close()
	if n, err := s.CountEvents(ctx, id, ptrac.CategoryTermination); err != nil || n != 2 {
		t.Errorf("%d termination events after reopening: %v", n, err)
	}
}
