package board

// Size is the number of cells along each side of the grid.
const Size = 20

// Grid is the square coordinate space the snake lives in.
type Grid struct {
	N int
}

// Default returns the standard Size×Size grid.
func Default() Grid {
	return Grid{N: Size}
}

// InBounds checks whether c lies on the grid.
func (g Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.N && c.Y >= 0 && c.Y < g.N
}

// Area is the number of cells on the grid.
func (g Grid) Area() int {
	return g.N * g.N
}

// Center is the cell a new snake starts on.
func (g Grid) Center() Cell {
	return Cell{X: g.N / 2, Y: g.N / 2}
}

// Cells lists every cell on the grid, row by row.
func (g Grid) Cells() []Cell {
	cells := make([]Cell, 0, g.Area())
	for y := 0; y < g.N; y++ {
		for x := 0; x < g.N; x++ {
			cells = append(cells, Cell{X: x, Y: y})
		}
	}
	return cells
}
