package life

import "fmt"

// DefaultHistory is the longest oscillation period detected by default.
const DefaultHistory = 10

// Status classifies the result of recording a generation.
type Status uint8

const (
	// Running means the newest generation matches nothing in the window.
	Running Status = iota
	// SteadyState means the newest generation equals the one before it.
	SteadyState
	// Oscillating means the newest generation repeats an earlier one.
	Oscillating
)

// State is the termination verdict for a generation. Period is set only when
// Status is Oscillating.
type State struct {
	Status Status
	Period int
}

// Done reports whether the simulation stopped changing or started repeating.
func (s State) Done() bool { return s.Status != Running }

func (s State) String() string {
	switch s.Status {
	case SteadyState:
		return "steady state"
	case Oscillating:
		return fmt.Sprintf("oscillating (period %d)", s.Period)
	default:
		return "running"
	}
}

// History keeps the most recent generations in a FIFO window. It detects
// repeats with a period up to its capacity; longer cycles go unnoticed.
type History struct {
	capacity int
	window   []Generation
}

// NewHistory returns a detector for periods up to capacity. Values below 1 are
// raised to 1, which still detects steady states.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{capacity: capacity, window: make([]Generation, 0, capacity+1)}
}

// Capacity returns the largest period the window can detect.
func (h *History) Capacity() int { return h.capacity }

// Len returns the number of retained generations.
func (h *History) Len() int { return len(h.window) }

// Reset drops every retained generation.
func (h *History) Reset() { h.window = h.window[:0] }

// Record appends gen and compares it with earlier generations, nearest first.
func (h *History) Record(gen Generation) State {
	if len(h.window) == h.capacity+1 {
		copy(h.window, h.window[1:])
		h.window = h.window[:h.capacity]
	}
	h.window = append(h.window, gen)

	newest := len(h.window) - 1
	for d := 1; d <= newest; d++ {
		if !h.window[newest-d].SameCells(gen) {
			continue
		}
		if d == 1 {
			return State{Status: SteadyState}
		}
		return State{Status: Oscillating, Period: d}
	}
	return State{Status: Running}
}
