// Package board holds the value types of the snake grid: cells, headings,
// the grid itself and the snake body.
package board

import "fmt"

// Cell is a single square on the grid.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the cell one step from c in the direction of h.
func (c Cell) Add(h Heading) Cell {
	return Cell{X: c.X + h.X, Y: c.Y + h.Y}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}
