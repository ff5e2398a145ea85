// Package ui draws the status line shown under the board in the GUI.
package ui

import (
	"fmt"

	"lifeterm/pkg/life"
)

// Height is the pixel height reserved below the board for the status line.
const Height = 20

// Status is what the status line shows for one frame.
type Status struct {
	Generation int
	Population int
	Cells      int
	State      life.State
	Paused     bool
}

// Text formats the status line.
func (s Status) Text() string {
	pct := 0.0
	if s.Cells > 0 {
		pct = 100 * float64(s.Population) / float64(s.Cells)
	}
	line := fmt.Sprintf("gen %d  alive %d (%.1f%%)  %s", s.Generation, s.Population, pct, s.State)
	if s.Paused {
		line += "  [paused]"
	}
	return line
}
