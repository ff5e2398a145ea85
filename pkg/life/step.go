package life

// Rule applies B3/S23: a live cell survives with two or three neighbours and a
// dead cell is born with exactly three.
func Rule(alive bool, neighbors int) bool {
	return (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3)
}

// Next computes the following generation into a new grid. g is not modified.
func Next(g *Grid) *Grid {
	next := &Grid{w: g.w, h: g.h, edges: g.edges, cells: make([]bool, len(g.cells))}
	for row := 0; row < g.h; row++ {
		for col := 0; col < g.w; col++ {
			idx := row*g.w + col
			next.cells[idx] = Rule(g.cells[idx], g.Neighbors(row, col))
		}
	}
	return next
}
