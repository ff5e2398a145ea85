package life

import (
	"errors"
	"testing"
)

// patternSeed feeds cells from a parsed pattern in row-major order.
func patternSeed(t *testing.T, text string) (SeedFunc, int, int) {
	t.Helper()
	g := mustParse(t, text)
	cells := g.cells
	i := 0
	return func() bool {
		v := cells[i]
		i++
		return v
	}, g.w, g.h
}

func TestNewRejectsInvalidDimension(t *testing.T) {
	if _, err := New(0, 3, nil); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("err = %v, want ErrInvalidDimension", err)
	}
}

func TestStepBlinkerExample(t *testing.T) {
	seed, w, h := patternSeed(t, "010\n010\n010")
	sim, err := New(w, h, seed)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	first, st := sim.Step()
	if first.Index() != 1 || st.Status != Running {
		t.Fatalf("step 1: index %d state %v", first.Index(), st)
	}
	if got, want := first.String(), "---\n###\n---\n"; got != want {
		t.Fatalf("step 1 = %q, want %q", got, want)
	}
	second, st := sim.Step()
	if got, want := second.String(), "-#-\n-#-\n-#-\n"; got != want {
		t.Fatalf("step 2 = %q, want %q", got, want)
	}
	if st.Status != Oscillating || st.Period != 2 {
		t.Fatalf("step 2 state = %v, want period 2", st)
	}
}

func TestStepStabilizes(t *testing.T) {
	// An L-tromino grows into a block after one step.
	seed, w, h := patternSeed(t, `
		----
		-##-
		-#--
		----`)
	sim, _ := New(w, h, seed)
	if _, st := sim.Step(); st.Status != Running {
		t.Fatalf("step 1 = %v, want running", st)
	}
	if _, st := sim.Step(); st.Status != SteadyState {
		t.Fatalf("step 2 = %v, want steady state", st)
	}
}

func TestSnapshotsAreIndependent(t *testing.T) {
	seed, w, h := patternSeed(t, "-#-\n-#-\n-#-")
	sim, _ := New(w, h, seed)
	g0 := sim.Current()
	if err := sim.Set(0, 0, true); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if alive, _ := g0.Alive(0, 0); alive {
		t.Fatal("snapshot observed a later edit to the live grid")
	}
	cells := g0.Cells()
	cells[1] = false
	if alive, _ := g0.Alive(0, 1); !alive {
		t.Fatal("Cells() must return a copy")
	}
}

func TestRunYieldsInitialThenStops(t *testing.T) {
	seed, w, h := patternSeed(t, "-#-\n-#-\n-#-")
	sim, _ := New(w, h, seed)
	var indices []int
	var last State
	for g, st := range sim.Run(0, true) {
		indices = append(indices, g.Index())
		last = st
	}
	if len(indices) != 3 || indices[0] != 0 || indices[2] != 2 {
		t.Fatalf("indices = %v, want [0 1 2]", indices)
	}
	if last.Status != Oscillating || last.Period != 2 {
		t.Fatalf("last state = %v", last)
	}
}

func TestRunHonoursMaxGenerations(t *testing.T) {
	seed, w, h := patternSeed(t, "-#-\n-#-\n-#-")
	sim, _ := New(w, h, seed)
	n := 0
	for range sim.Run(5, false) {
		n++
	}
	if n != 6 || sim.Index() != 5 {
		t.Fatalf("yielded %d items ending at %d, want 6 ending at 5", n, sim.Index())
	}
}

func TestRunStopsWhenConsumerBreaks(t *testing.T) {
	sim, _ := New(4, 4, func() bool { return true })
	for g := range sim.Run(0, false) {
		if g.Index() == 3 {
			break
		}
	}
	if sim.Index() != 3 {
		t.Fatalf("simulation advanced past the consumer: index %d", sim.Index())
	}
}

func TestResetRestartsFromZero(t *testing.T) {
	sim, _ := New(3, 3, nil, WithEdges(Toroidal), WithHistory(3))
	sim.Step()
	sim.Step()
	if err := sim.Reset(func() bool { return true }); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if sim.Index() != 0 || sim.Current().Population() != 9 {
		t.Fatalf("after Reset index %d population %d", sim.Index(), sim.Current().Population())
	}
	if sim.grid.Edges() != Toroidal {
		t.Fatal("Reset must keep the edge policy")
	}
	// A full torus dies at once; the dead board then holds steady.
	if _, st := sim.Step(); st.Status != Running {
		t.Fatalf("step 1 = %v", st)
	}
	if _, st := sim.Step(); st.Status != SteadyState {
		t.Fatalf("step 2 = %v", st)
	}
}

func TestSetOutOfBounds(t *testing.T) {
	sim, _ := New(2, 2, nil)
	if err := sim.Set(2, 0, true); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("err = %v, want ErrOutOfBounds", err)
	}
}

func TestSetRestartsHistory(t *testing.T) {
	sim, _ := New(4, 4, nil)
	if _, st := sim.Step(); st.Status != SteadyState {
		t.Fatalf("dead board step 1 = %v, want steady state", st)
	}
	for _, rc := range [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}} {
		if err := sim.Set(rc[0], rc[1], true); err != nil {
			t.Fatalf("Set(%d,%d): %v", rc[0], rc[1], err)
		}
	}
	gen, st := sim.Step()
	if gen.Index() != 2 || gen.Population() != 4 || st.Status != SteadyState {
		t.Fatalf("block after edit: index %d population %d state %v", gen.Index(), gen.Population(), st)
	}
}

func TestStepAfterSetIgnoresEarlierGenerations(t *testing.T) {
	seed, w, h := patternSeed(t, `
		-------
		-------
		---#---
		---#---
		---#---
		-------
		-------`)
	sim, _ := New(w, h, seed)
	if _, st := sim.Step(); st.Status != Running {
		t.Fatalf("step 1 = %v, want running", st)
	}
	// A lone corner cell dies without touching the blinker, so the next
	// board repeats generation 0. Only the edited board may count as history.
	if err := sim.Set(0, 0, true); err != nil {
		t.Fatalf("Set: %v", err)
	}
	gen, st := sim.Step()
	if gen.Population() != 3 {
		t.Fatalf("population %d, want the blinker alone", gen.Population())
	}
	if st.Status != Running {
		t.Fatalf("step after edit = %v, want running", st)
	}
	if _, st := sim.Step(); st.Status != Running {
		t.Fatalf("second step after edit = %v, want running", st)
	}
	if _, st := sim.Step(); st.Status != Oscillating || st.Period != 2 {
		t.Fatalf("blinker after edit = %v, want period 2", st)
	}
}
