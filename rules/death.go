package rules

import "github.com/battlesnakeio/snake/board"

// checkForDeath looks at the cell the head is about to enter and returns the
// death cause, or "" when the move is safe. The whole current body counts,
// including the tail that would move out of the way on this tick.
func checkForDeath(grid board.Grid, snake board.Snake, next board.Cell) string {
	if deathByOutOfBounds(grid, next) {
		return DeathCauseWallCollision
	}
	if deathByBodyCollision(snake, next) {
		return DeathCauseSnakeSelfCollision
	}
	return ""
}

func deathByOutOfBounds(grid board.Grid, head board.Cell) bool {
	return !grid.InBounds(head)
}

func deathByBodyCollision(snake board.Snake, head board.Cell) bool {
	return snake.Contains(head)
}
