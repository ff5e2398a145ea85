package ui

import (
	"testing"

	"lifeterm/pkg/life"
)

func TestStatusText(t *testing.T) {
	st := Status{Generation: 12, Population: 25, Cells: 100}
	if got, want := st.Text(), "gen 12  alive 25 (25.0%)  running"; got != want {
		t.Fatalf("Text() = %q, want %q", got, want)
	}

	st.State = life.State{Status: life.Oscillating, Period: 2}
	st.Paused = true
	if got, want := st.Text(), "gen 12  alive 25 (25.0%)  oscillating (period 2)  [paused]"; got != want {
		t.Fatalf("Text() = %q, want %q", got, want)
	}

	if got := (Status{}).Text(); got != "gen 0  alive 0 (0.0%)  running" {
		t.Fatalf("empty Text() = %q", got)
	}
}
