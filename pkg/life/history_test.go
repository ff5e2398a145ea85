package life

import "testing"

func gen(t *testing.T, index int, text string) Generation {
	t.Helper()
	return snapshot(index, mustParse(t, text))
}

func TestHistoryFirstRecordRuns(t *testing.T) {
	h := NewHistory(4)
	if st := h.Record(gen(t, 0, "##\n##")); st.Status != Running {
		t.Fatalf("first record = %v, want running", st)
	}
}

func TestHistorySteadyState(t *testing.T) {
	h := NewHistory(4)
	steps := []string{"#-\n--", "##\n--", "##\n#-", "##\n##", "##\n##"}
	for i, s := range steps {
		st := h.Record(gen(t, i, s))
		if i < 4 && st.Status != Running {
			t.Fatalf("step %d = %v, want running", i, st)
		}
		if i == 4 && st.Status != SteadyState {
			t.Fatalf("step %d = %v, want steady state", i, st)
		}
	}
}

func TestHistoryPeriodTwo(t *testing.T) {
	h := NewHistory(DefaultHistory)
	a, b := "-#-\n-#-\n-#-", "---\n###\n---"
	if st := h.Record(gen(t, 0, a)); st.Done() {
		t.Fatalf("record 0 = %v", st)
	}
	if st := h.Record(gen(t, 1, b)); st.Done() {
		t.Fatalf("record 1 = %v", st)
	}
	st := h.Record(gen(t, 2, a))
	if st.Status != Oscillating || st.Period != 2 {
		t.Fatalf("record 2 = %v, want oscillating period 2", st)
	}
	if st.String() != "oscillating (period 2)" {
		t.Fatalf("String() = %q", st.String())
	}
}

func TestHistoryEvictsOldest(t *testing.T) {
	h := NewHistory(2)
	patterns := []string{"#--", "-#-", "--#", "#--"}
	var st State
	for i, p := range patterns {
		st = h.Record(gen(t, i, p))
	}
	// "#--" repeats at distance 3, beyond a capacity of 2.
	if st.Status != Running {
		t.Fatalf("period 3 detected with capacity 2: %v", st)
	}
	if h.Len() != 3 {
		t.Fatalf("Len() = %d, want capacity+1 = 3", h.Len())
	}

	h = NewHistory(3)
	for i, p := range patterns {
		st = h.Record(gen(t, i, p))
	}
	if st.Status != Oscillating || st.Period != 3 {
		t.Fatalf("capacity 3 = %v, want period 3", st)
	}
}

func TestHistoryCapacityFloor(t *testing.T) {
	h := NewHistory(0)
	if h.Capacity() != 1 {
		t.Fatalf("Capacity() = %d, want 1", h.Capacity())
	}
	h.Record(gen(t, 0, "#"))
	if st := h.Record(gen(t, 1, "#")); st.Status != SteadyState {
		t.Fatalf("capacity 1 must still catch steady state, got %v", st)
	}
	h.Reset()
	if h.Len() != 0 {
		t.Fatalf("Len() after Reset = %d", h.Len())
	}
}
