// Package testsuite runs the same contract tests against every high score
// backend.
package testsuite

import (
	"context"
	"sync"
	"testing"

	"github.com/battlesnakeio/snake/highscore"
	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/require"
)

func testStoreMissing(t *testing.T, s highscore.Store) {
	key := uuid.NewV4().String()

	score, err := s.Get(context.Background(), key)
	require.Equal(t, highscore.ErrNotFound, err)
	require.Zero(t, score)
}

func testStoreSetGet(t *testing.T, s highscore.Store) {
	key := uuid.NewV4().String()
	ctx := context.Background()

	err := s.Set(ctx, key, 7)
	require.NoError(t, err)

	score, err := s.Get(ctx, key)
	require.NoError(t, err)
	require.Equal(t, 7, score)

	// Overwrite, lower values are allowed, the caller decides what is best.
	err = s.Set(ctx, key, 3)
	require.NoError(t, err)
	score, err = s.Get(ctx, key)
	require.NoError(t, err)
	require.Equal(t, 3, score)

	// Zero is a real score, not an absent one.
	err = s.Set(ctx, key, 0)
	require.NoError(t, err)
	score, err = s.Get(ctx, key)
	require.NoError(t, err)
	require.Equal(t, 0, score)
}

func testStoreKeysIndependent(t *testing.T, s highscore.Store) {
	a := uuid.NewV4().String()
	b := uuid.NewV4().String()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, a, 11))
	require.NoError(t, s.Set(ctx, b, 22))

	score, err := s.Get(ctx, a)
	require.NoError(t, err)
	require.Equal(t, 11, score)
	score, err = s.Get(ctx, b)
	require.NoError(t, err)
	require.Equal(t, 22, score)
}

func testStoreNegative(t *testing.T, s highscore.Store) {
	key := uuid.NewV4().String()

	err := s.Set(context.Background(), key, -1)
	require.Equal(t, highscore.ErrNegativeScore, err)

	_, err = s.Get(context.Background(), key)
	require.Equal(t, highscore.ErrNotFound, err)
}

func testStoreConcurrent(t *testing.T, s highscore.Store) {
	key := uuid.NewV4().String()
	ctx := context.Background()

	wg := sync.WaitGroup{}
	for i := 1; i <= 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			require.NoError(t, s.Set(ctx, key, i))
		}(i)
	}
	wg.Wait()

	score, err := s.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, score >= 1 && score <= 10, "score %d", score)
}

// Suite will run the test suite against the given store, calling reset
// between every test.
func Suite(t *testing.T, s highscore.Store, reset func()) {
	tests := []struct {
		name string
		fn   func(*testing.T, highscore.Store)
	}{
		{"Missing", testStoreMissing},
		{"SetGet", testStoreSetGet},
		{"KeysIndependent", testStoreKeysIndependent},
		{"Negative", testStoreNegative},
		{"Concurrent", testStoreConcurrent},
	}
	for _, test := range tests {
		reset()
		t.Run(test.name, func(t *testing.T) {
			test.fn(t, s)
		})
	}
}
