package rules

import "github.com/battlesnakeio/snake/board"

// GameState is everything a client needs to draw a round.
type GameState struct {
	RoundID   string        `json:"roundId"`
	Status    Status        `json:"status"`
	Turn      int           `json:"turn"`
	Snake     board.Snake   `json:"snake"`
	Food      board.Cell    `json:"food"`
	Heading   board.Heading `json:"heading"`
	GameOver  bool          `json:"gameOver"`
	Score     int           `json:"score"`
	HighScore int           `json:"highScore"`
	Death     *Death        `json:"death,omitempty"`
}

// Clone returns a deep copy of the state.
func (gs GameState) Clone() GameState {
	out := gs
	out.Snake = gs.Snake.Clone()
	if gs.Death != nil {
		d := *gs.Death
		out.Death = &d
	}
	return out
}

// Head returns the head cell of the snake.
func (gs GameState) Head() board.Cell {
	h, _ := gs.Snake.Head()
	return h
}
