package rules

// Status is the phase of a round.
type Status string

const (
	// StatusIdle is a fresh round waiting for the player to start it.
	StatusIdle Status = "idle"
	// StatusRunning is a round the ticker is advancing.
	StatusRunning Status = "running"
	// StatusGameOver is a finished round, only a restart leaves it.
	StatusGameOver Status = "game-over"
)
