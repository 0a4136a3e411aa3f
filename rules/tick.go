package rules

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// Outcome describes what a single tick did to the round.
type Outcome int

const (
	// OutcomeNone means the tick changed nothing: the round is not running
	// or the snake has no heading yet.
	OutcomeNone Outcome = iota
	// OutcomeMoved means the snake advanced one cell.
	OutcomeMoved
	// OutcomeAte means the snake advanced onto the food and grew.
	OutcomeAte
	// OutcomeDied means the round ended on this tick.
	OutcomeDied
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeDied:
		return "died"
	}
	return "none"
}

// Tick advances a running round by one step.
//
//  1. no heading yet: nothing happens
//  2. the head moves one cell along the heading
//  3. off the grid or onto the body: game over, high score persisted
//  4. onto the food: the snake keeps its tail, scores and new food spawns
//  5. otherwise the tail is dropped
func (s *Simulation) Tick(ctx context.Context) Outcome {
	s.mu.Lock()
	outcome, persist := s.advance()
	state := s.state
	s.mu.Unlock()

	fields := log.Fields{
		"RoundID": state.RoundID,
		"Turn":    state.Turn,
	}
	switch outcome {
	case OutcomeAte:
		fields["Score"] = state.Score
		fields["Food"] = state.Food.String()
		log.WithFields(fields).Info("snake ate")
	case OutcomeDied:
		fields["Score"] = state.Score
		fields["Cause"] = state.Death.Cause
		log.WithFields(fields).Info("round over")
	}

	if persist {
		s.persistHighScore(ctx, state.HighScore)
	}
	return outcome
}

// advance applies one tick to s.state. Callers hold s.mu. persist reports
// whether the high score beat the stored one and needs writing.
func (s *Simulation) advance() (outcome Outcome, persist bool) {
	st := &s.state
	if st.Status != StatusRunning || st.Heading.IsNone() {
		return OutcomeNone, false
	}

	head, ok := st.Snake.Head()
	if !ok {
		return OutcomeNone, false
	}
	next := head.Add(st.Heading)
	st.Turn++

	if cause := checkForDeath(s.grid, st.Snake, next); cause != "" {
		return OutcomeDied, s.endRound(cause)
	}

	grown := st.Snake.Grow(next)
	if next != st.Food {
		st.Snake = grown.DropTail()
		return OutcomeMoved, false
	}

	st.Snake = grown
	st.Score++
	food, ok := s.spawner.Spawn(st.Snake)
	if !ok {
		// Nowhere left to put food, the snake covers the whole grid.
		return OutcomeDied, s.endRound(DeathCauseBoardFull)
	}
	st.Food = food
	return OutcomeAte, false
}

// endRound latches game over and folds the score into the high score.
func (s *Simulation) endRound(cause string) bool {
	st := &s.state
	st.Status = StatusGameOver
	st.GameOver = true
	st.Death = &Death{Turn: st.Turn, Cause: cause}
	if st.Score > st.HighScore {
		st.HighScore = st.Score
	}
	return st.HighScore > s.stored
}

func (s *Simulation) persistHighScore(ctx context.Context, score int) {
	if err := s.store.Set(ctx, s.key, score); err != nil {
		log.WithError(err).WithField("key", s.key).Error("unable to save high score")
		return
	}

	s.mu.Lock()
	if score > s.stored {
		s.stored = score
	}
	s.mu.Unlock()
}
