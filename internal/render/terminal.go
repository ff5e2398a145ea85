package render

import (
	"bytes"
	"fmt"
	"io"

	"lifeterm/pkg/life"
)

const (
	clearScreen = "\x1b[2J\x1b[H"
	cursorHome  = "\x1b[H"
	cellAlive   = "# "
	cellDead    = "- "
)

// Terminal draws generations to an ANSI terminal. Each frame is assembled in
// memory and written in one call to avoid tearing.
type Terminal struct {
	out     io.Writer
	buf     bytes.Buffer
	started bool
}

// NewTerminal returns a Terminal writing to out.
func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

// Frame draws gen over the previous frame. The first frame clears the screen.
func (t *Terminal) Frame(gen life.Generation) error {
	t.buf.Reset()
	if t.started {
		t.buf.WriteString(cursorHome)
	} else {
		t.buf.WriteString(clearScreen)
		t.started = true
	}
	w := gen.Width()
	t.buf.Grow(gen.Height() * (2*w + 1))
	for i, alive := range gen.Cells() {
		if alive {
			t.buf.WriteString(cellAlive)
		} else {
			t.buf.WriteString(cellDead)
		}
		if (i+1)%w == 0 {
			t.buf.WriteByte('\n')
		}
	}
	fmt.Fprintf(&t.buf, "Generation: %d\n", gen.Index())
	_, err := t.out.Write(t.buf.Bytes())
	return err
}

// Verdict reports why the run ended.
func (t *Terminal) Verdict(gen life.Generation, state life.State) error {
	_, err := io.WriteString(t.out, Verdict(gen, state)+"\n")
	return err
}

// Verdict describes a terminal state in one line.
func Verdict(gen life.Generation, state life.State) string {
	switch state.Status {
	case life.SteadyState:
		return fmt.Sprintf("Steady state detected. Terminating at generation %d.", gen.Index())
	case life.Oscillating:
		return fmt.Sprintf("Oscillation with period %d detected. Terminating at generation %d.", state.Period, gen.Index())
	default:
		return fmt.Sprintf("Stopped at generation %d.", gen.Index())
	}
}
