package life

// Generation is a read-only snapshot of the board at a given index.
type Generation struct {
	index int
	grid  *Grid
}

func snapshot(index int, g *Grid) Generation {
	return Generation{index: index, grid: g.Clone()}
}

// Index returns the generation number, starting at 0.
func (g Generation) Index() int { return g.index }

// Width returns the number of columns.
func (g Generation) Width() int { return g.grid.w }

// Height returns the number of rows.
func (g Generation) Height() int { return g.grid.h }

// Alive reports whether the cell at (row, col) was alive.
func (g Generation) Alive(row, col int) (bool, error) { return g.grid.Alive(row, col) }

// Population counts live cells.
func (g Generation) Population() int { return g.grid.Population() }

// Cells returns a row-major copy of the cell states.
func (g Generation) Cells() []bool {
	cells := make([]bool, len(g.grid.cells))
	copy(cells, g.grid.cells)
	return cells
}

// SameCells reports whether both snapshots hold identical boards, ignoring
// their indices.
func (g Generation) SameCells(other Generation) bool { return g.grid.Equal(other.grid) }

func (g Generation) String() string { return g.grid.String() }
