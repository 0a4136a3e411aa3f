package rules

const (
	// DeathCauseWallCollision is when a snake runs off the board
	DeathCauseWallCollision = "wall-collision"
	// DeathCauseSnakeSelfCollision is when the head moves onto the snake's own body
	DeathCauseSnakeSelfCollision = "self-collision"
	// DeathCauseBoardFull is when the snake covers every cell and no food can
	// be placed
	DeathCauseBoardFull = "board-full"
)

// Death records how and when a round ended.
type Death struct {
	Turn  int    `json:"turn"`
	Cause string `json:"cause"`
}
