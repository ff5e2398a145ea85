// Package life implements Conway's Game of Life on a finite grid with
// steady-state and oscillation detection.
package life

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrInvalidDimension reports a grid created with a non-positive width or height.
	ErrInvalidDimension = errors.New("life: grid dimensions must be positive")
	// ErrOutOfBounds reports a cell access outside the grid.
	ErrOutOfBounds = errors.New("life: cell out of bounds")
)

// SeedFunc supplies the initial state of one cell. Grids call it once per cell
// in row-major order.
type SeedFunc func() bool

// Edges selects how neighbours beyond the grid border are counted.
type Edges uint8

const (
	// Bounded treats cells outside the grid as dead.
	Bounded Edges = iota
	// Toroidal wraps coordinates to the opposite edge.
	Toroidal
)

func (e Edges) String() string {
	if e == Toroidal {
		return "toroidal"
	}
	return "bounded"
}

// GridOption configures a Grid at construction.
type GridOption func(*Grid)

// WithGridEdges sets the neighbour policy of a grid.
func WithGridEdges(e Edges) GridOption {
	return func(g *Grid) { g.edges = e }
}

// Grid stores a fixed-size board of cells in row-major order.
type Grid struct {
	w, h  int
	edges Edges
	cells []bool
}

// NewGrid allocates a width x height grid and fills it from seed. A nil seed
// leaves every cell dead.
func NewGrid(width, height int, seed SeedFunc, opts ...GridOption) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, width, height)
	}
	if width > math.MaxInt/height {
		return nil, fmt.Errorf("%w: %dx%d overflows the cell count", ErrInvalidDimension, width, height)
	}
	g := &Grid{w: width, h: height, cells: make([]bool, width*height)}
	for _, opt := range opts {
		opt(g)
	}
	if seed != nil {
		for i := range g.cells {
			g.cells[i] = seed()
		}
	}
	return g, nil
}

// ParseGrid builds a grid from rows of text where '#', '1', 'O' and '*' mark
// live cells and any other rune a dead one. Blank lines and spaces are ignored.
func ParseGrid(text string, opts ...GridOption) (*Grid, error) {
	var rows [][]bool
	for _, line := range strings.Split(text, "\n") {
		line = strings.ReplaceAll(strings.TrimSpace(line), " ", "")
		if line == "" {
			continue
		}
		row := make([]bool, 0, len(line))
		for _, r := range line {
			row = append(row, r == '#' || r == '1' || r == 'O' || r == '*')
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimension, len(rows), len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty pattern", ErrInvalidDimension)
	}
	g, err := NewGrid(len(rows[0]), len(rows), nil, opts...)
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		copy(g.cells[r*g.w:], row)
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Edges returns the neighbour policy.
func (g *Grid) Edges() Edges { return g.edges }

func (g *Grid) inside(row, col int) bool {
	return row >= 0 && row < g.h && col >= 0 && col < g.w
}

// Alive reports whether the cell at (row, col) is alive.
func (g *Grid) Alive(row, col int) (bool, error) {
	if !g.inside(row, col) {
		return false, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, row, col, g.w, g.h)
	}
	return g.cells[row*g.w+col], nil
}

// Set updates the cell at (row, col).
func (g *Grid) Set(row, col int, alive bool) error {
	if !g.inside(row, col) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, row, col, g.w, g.h)
	}
	g.cells[row*g.w+col] = alive
	return nil
}

// Neighbors counts the live cells among the eight around (row, col).
func (g *Grid) Neighbors(row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if g.edges == Toroidal {
				r = (r%g.h + g.h) % g.h
				c = (c%g.w + g.w) % g.w
			} else if !g.inside(r, c) {
				continue
			}
			if g.cells[r*g.w+c] {
				n++
			}
		}
	}
	return n
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.w != other.w || g.h != other.h {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)
	return &Grid{w: g.w, h: g.h, edges: g.edges, cells: cells}
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// Rows copies the board into a fresh [][]bool.
func (g *Grid) Rows() [][]bool {
	rows := make([][]bool, g.h)
	for r := range rows {
		rows[r] = make([]bool, g.w)
		copy(rows[r], g.cells[r*g.w:(r+1)*g.w])
	}
	return rows
}

// String renders the grid one row per line using '#' for live cells and '-'
// for dead ones.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.h * (g.w + 1))
	for i, c := range g.cells {
		if c {
			b.WriteByte('#')
		} else {
			b.WriteByte('-')
		}
		if (i+1)%g.w == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
