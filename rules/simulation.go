package rules

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/battlesnakeio/snake/board"
	"github.com/battlesnakeio/snake/highscore"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

// ScoreStore persists the high score between rounds and processes.
type ScoreStore interface {
	Get(ctx context.Context, key string) (int, error)
	Set(ctx context.Context, key string, score int) error
}

// Config holds the collaborators of a Simulation. Zero fields get defaults.
type Config struct {
	Grid    board.Grid
	Store   ScoreStore
	Key     string
	Spawner FoodSpawner
}

// Simulation owns the state of a single player game and is the only thing
// allowed to change it. All methods are safe for concurrent use; callers
// still serialise ticks and input through one loop so that the order of
// events is well defined.
type Simulation struct {
	mu      sync.Mutex
	grid    board.Grid
	store   ScoreStore
	key     string
	spawner FoodSpawner

	state GameState
	// stored is the best score known to be in the store.
	stored int
}

// NewSimulation creates an idle round, reading the high score from the store.
func NewSimulation(ctx context.Context, cfg Config) *Simulation {
	if cfg.Grid.N == 0 {
		cfg.Grid = board.Default()
	}
	if cfg.Store == nil {
		cfg.Store = highscore.InMemStore()
	}
	if cfg.Key == "" {
		cfg.Key = highscore.DefaultKey
	}
	if cfg.Spawner == nil {
		cfg.Spawner = NewRandomSpawner(cfg.Grid, rand.NewSource(time.Now().UnixNano()))
	}

	s := &Simulation{
		grid:    cfg.Grid,
		store:   cfg.Store,
		key:     cfg.Key,
		spawner: cfg.Spawner,
	}
	s.stored = s.loadHighScore(ctx)
	s.state = s.initialState(s.stored)
	return s
}

// Grid returns the grid the simulation runs on.
func (s *Simulation) Grid() board.Grid {
	return s.grid
}

func (s *Simulation) loadHighScore(ctx context.Context) int {
	score, err := s.store.Get(ctx, s.key)
	if err == highscore.ErrNotFound {
		return 0
	}
	if err != nil {
		log.WithError(err).WithField("key", s.key).Warn("unable to read high score, using 0")
		return 0
	}
	if score < 0 {
		return 0
	}
	return score
}

func (s *Simulation) initialState(highScore int) GameState {
	snake := board.Snake{s.grid.Center()}
	food, _ := s.spawner.Spawn(snake)
	return GameState{
		RoundID:   uuid.NewV4().String(),
		Status:    StatusIdle,
		Snake:     snake,
		Food:      food,
		Heading:   board.None,
		HighScore: highScore,
	}
}

// Snapshot returns a copy of the current state that later ticks will not
// modify.
func (s *Simulation) Snapshot() GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Status returns the phase of the current round.
func (s *Simulation) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Status
}

// Start sets an idle round running, heading right. The snake does not move
// until the next tick. Returns false when the round was not idle.
func (s *Simulation) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Status != StatusIdle {
		return false
	}
	s.state.Status = StatusRunning
	s.state.Heading = board.Right
	log.WithField("RoundID", s.state.RoundID).Info("round started")
	return true
}

// Restart throws a finished or not yet started round away and sets up a
// fresh idle one. The high score carries over. A running round is left
// alone; Restart reports whether it reset.
func (s *Simulation) Restart(ctx context.Context) bool {
	if s.Status() == StatusRunning {
		return false
	}
	// Another process may have beaten our score since we last looked.
	stored := s.loadHighScore(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Status == StatusRunning {
		return false
	}
	high := s.state.HighScore
	if stored > high {
		high = stored
	}
	if stored > s.stored {
		s.stored = stored
	}
	s.state = s.initialState(high)
	log.WithField("RoundID", s.state.RoundID).Info("round reset")
	return true
}

// Turn asks the snake to travel in h from the next tick on. Reversing onto
// the current heading, None, and any input outside a running round are
// ignored. Returns whether the heading changed.
func (s *Simulation) Turn(h board.Heading) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Status != StatusRunning {
		return false
	}
	if !validHeading(h) || h == s.state.Heading || s.state.Heading.Reverses(h) {
		return false
	}
	s.state.Heading = h
	return true
}

func validHeading(h board.Heading) bool {
	switch h {
	case board.Up, board.Down, board.Left, board.Right:
		return true
	}
	return false
}
