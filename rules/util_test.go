package rules

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/battlesnakeio/snake/board"
	"github.com/battlesnakeio/snake/highscore"
	"github.com/stretchr/testify/require"
)

// scriptedSpawner hands out cells in order, skipping occupied ones, and
// falls back to the first free cell on the grid once the script runs out.
type scriptedSpawner struct {
	grid  board.Grid
	cells []board.Cell
}

func (ss *scriptedSpawner) Spawn(occupied []board.Cell) (board.Cell, bool) {
	taken := board.Snake(occupied)
	for len(ss.cells) > 0 {
		c := ss.cells[0]
		ss.cells = ss.cells[1:]
		if !taken.Contains(c) {
			return c, true
		}
	}
	for _, c := range ss.grid.Cells() {
		if !taken.Contains(c) {
			return c, true
		}
	}
	return board.Cell{}, false
}

// recordingStore is an in memory store that counts writes and can be told
// to fail.
type recordingStore struct {
	mu      sync.Mutex
	inner   highscore.Store
	sets    []int
	failGet error
	failSet error
}

func newRecordingStore() *recordingStore {
	return &recordingStore{inner: highscore.InMemStore()}
}

func (rs *recordingStore) Get(ctx context.Context, key string) (int, error) {
	if rs.failGet != nil {
		return 0, rs.failGet
	}
	return rs.inner.Get(ctx, key)
}

func (rs *recordingStore) Set(ctx context.Context, key string, score int) error {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if rs.failSet != nil {
		return rs.failSet
	}
	rs.sets = append(rs.sets, score)
	return rs.inner.Set(ctx, key, score)
}

var errStoreDown = errors.New("store down")

// runningSimulation builds a simulation already in the running state with
// the given body, heading and food.
func runningSimulation(t *testing.T, store ScoreStore, snake board.Snake, heading board.Heading, food board.Cell) *Simulation {
	t.Helper()
	if store == nil {
		store = newRecordingStore()
	}
	s := NewSimulation(context.Background(), Config{
		Store:   store,
		Spawner: &scriptedSpawner{grid: board.Default()},
	})
	require.True(t, s.Start())
	s.state.Snake = snake
	s.state.Heading = heading
	s.state.Food = food
	s.state.Score = len(snake) - 1
	return s
}

func requireConsistent(t *testing.T, st GameState) {
	t.Helper()
	require.False(t, st.Snake.Contains(st.Food), "food %s inside snake %v", st.Food, st.Snake)
	if !st.GameOver {
		require.False(t, st.Snake.HasDuplicates(), "snake %v has duplicates", st.Snake)
	}
	require.Equal(t, len(st.Snake)-1, st.Score)
	require.Equal(t, st.Status == StatusGameOver, st.GameOver)
	if st.GameOver {
		require.True(t, st.HighScore >= st.Score)
	}
}
