// Package highscore persists the best score across rounds and processes. The
// game only ever needs one integer under one key, but stores are keyed so a
// single backend can be shared between installs.
package highscore

import (
	"context"
	"errors"
	"sync"
)

// DefaultKey is the well-known key the high score is kept under.
const DefaultKey = "snakeHighScore"

var (
	// ErrNotFound is returned when no score has been stored under a key.
	ErrNotFound = errors.New("highscore: score not found")
	// ErrNegativeScore is returned when a caller tries to store a score
	// below zero.
	ErrNegativeScore = errors.New("highscore: score must not be negative")
)

// Store is the interface to the backend store.
type Store interface {
	Get(ctx context.Context, key string) (int, error)
	Set(ctx context.Context, key string, score int) error
}

// InMemStore returns an in memory implementation of the Store interface.
func InMemStore() Store {
	return &inmem{
		scores: map[string]int{},
	}
}

type inmem struct {
	scores map[string]int
	lock   sync.Mutex
}

func (in *inmem) Get(ctx context.Context, key string) (int, error) {
	in.lock.Lock()
	defer in.lock.Unlock()

	if s, ok := in.scores[key]; ok {
		return s, nil
	}
	return 0, ErrNotFound
}

func (in *inmem) Set(ctx context.Context, key string, score int) error {
	if score < 0 {
		return ErrNegativeScore
	}

	in.lock.Lock()
	defer in.lock.Unlock()

	in.scores[key] = score
	return nil
}
