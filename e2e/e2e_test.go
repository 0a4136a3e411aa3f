package e2e

import (
	"context"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/battlesnakeio/snake/api"
	"github.com/battlesnakeio/snake/board"
	"github.com/battlesnakeio/snake/highscore"
	"github.com/battlesnakeio/snake/highscore/sqlstore"
	"github.com/battlesnakeio/snake/input"
	"github.com/battlesnakeio/snake/rules"
	"github.com/battlesnakeio/snake/session"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

func newClient(url string) *client {
	return &client{
		apiURL: url,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

// pathSpawner drops the first meals on the snake's way, then anywhere free.
type pathSpawner struct {
	grid  board.Grid
	cells []board.Cell
}

func (ps *pathSpawner) Spawn(occupied []board.Cell) (board.Cell, bool) {
	taken := board.Snake(occupied)
	for len(ps.cells) > 0 {
		c := ps.cells[0]
		ps.cells = ps.cells[1:]
		if !taken.Contains(c) {
			return c, true
		}
	}
	for _, c := range ps.grid.Cells() {
		if !taken.Contains(c) {
			return c, true
		}
	}
	return board.Cell{}, false
}

func waitForStatus(t *testing.T, c *client, cond func(rules.GameState) bool) rules.GameState {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		st, err := c.gameStatus()
		require.NoError(t, err)
		if cond(st) {
			return st
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("timed out waiting for status")
	return rules.GameState{}
}

func TestGameRoundTrip(t *testing.T) {
	dir, err := ioutil.TempDir("", "snake-e2e")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	dsn := filepath.Join(dir, "scores.db")
	store, err := sqlstore.New(sqlstore.DriverSQLite, dsn)
	require.NoError(t, err)
	defer store.Close()

	grid := board.Default()
	sim := rules.NewSimulation(context.Background(), rules.Config{
		Grid:  grid,
		Store: highscore.InstrumentStore(store),
		Spawner: &pathSpawner{grid: grid, cells: []board.Cell{
			{X: 12, Y: 10},
			{X: 15, Y: 10},
		}},
	})
	sess := session.New(sim, 2*time.Millisecond)

	srv := httptest.NewServer(api.New("", sess, grid, nil).Handler())
	defer srv.Close()
	c := newClient(srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- sess.Run(ctx) }()

	st := waitForStatus(t, c, func(st rules.GameState) bool { return true })
	require.Equal(t, rules.StatusIdle, st.Status)

	// Heading right from the centre eats both meals and runs into the wall.
	require.True(t, sess.Send(input.Start))
	st = waitForStatus(t, c, func(st rules.GameState) bool { return st.GameOver })
	require.Equal(t, 2, st.Score, spew.Sdump(st))
	require.Equal(t, rules.DeathCauseWallCollision, st.Death.Cause)

	high, err := c.highScore()
	require.NoError(t, err)
	require.Equal(t, 2, high)

	// The store is written just after the round ends.
	require.Eventually(t, func() bool {
		stored, err := store.Get(context.Background(), highscore.DefaultKey)
		return err == nil && stored == 2
	}, 5*time.Second, 5*time.Millisecond)

	require.True(t, sess.Send(input.Restart))
	st = waitForStatus(t, c, func(st rules.GameState) bool { return st.Status == rules.StatusIdle })
	require.Equal(t, 2, st.HighScore)
	require.Zero(t, st.Score)

	require.True(t, sess.Send(input.Quit))
	require.NoError(t, <-done)
}
