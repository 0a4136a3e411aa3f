package rules

import (
	"math/rand"

	"github.com/battlesnakeio/snake/board"
)

// FoodSpawner picks the cell the next food item appears on.
type FoodSpawner interface {
	// Spawn returns a cell that is not in occupied. ok is false when every
	// cell of the grid is occupied.
	Spawn(occupied []board.Cell) (cell board.Cell, ok bool)
}

// RandomSpawner draws cells uniformly at random, retrying on occupied cells.
type RandomSpawner struct {
	Grid board.Grid
	Rand *rand.Rand
	// MaxAttempts bounds the random draws before falling back to a scan of
	// the free cells. Zero means 4 draws per grid cell.
	MaxAttempts int
}

// NewRandomSpawner returns a spawner over grid using src for randomness.
func NewRandomSpawner(grid board.Grid, src rand.Source) *RandomSpawner {
	return &RandomSpawner{
		Grid: grid,
		Rand: rand.New(src),
	}
}

// Spawn implements FoodSpawner.
func (rs *RandomSpawner) Spawn(occupied []board.Cell) (board.Cell, bool) {
	taken := make(map[board.Cell]struct{}, len(occupied))
	for _, c := range occupied {
		taken[c] = struct{}{}
	}

	attempts := rs.MaxAttempts
	if attempts <= 0 {
		attempts = 4 * rs.Grid.Area()
	}
	for i := 0; i < attempts; i++ {
		c := board.Cell{X: rs.Rand.Intn(rs.Grid.N), Y: rs.Rand.Intn(rs.Grid.N)}
		if _, ok := taken[c]; !ok {
			return c, true
		}
	}

	// Crowded board, pick among what is left so the choice stays uniform.
	open := getUnoccupiedCells(rs.Grid, taken)
	if len(open) == 0 {
		return board.Cell{}, false
	}
	return open[rs.Rand.Intn(len(open))], true
}

func getUnoccupiedCells(grid board.Grid, taken map[board.Cell]struct{}) []board.Cell {
	candidates := make([]board.Cell, 0, grid.Area())
	for _, c := range grid.Cells() {
		if _, ok := taken[c]; !ok {
			candidates = append(candidates, c)
		}
	}
	return candidates
}
