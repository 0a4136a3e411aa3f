// Package redisstore keeps high scores in redis, one string key per score.
package redisstore

import (
	"context"
	"strconv"

	"github.com/battlesnakeio/snake/highscore"
	"github.com/go-redis/redis"
	"github.com/pkg/errors"
)

// KeyPrefix namespaces score keys inside a shared redis.
const KeyPrefix = "snake:"

// Store is a redis backed highscore.Store.
type Store struct {
	client *redis.Client
}

// NewStore connects to the redis at connectURL (redis://[:password@]host:port/db)
// and checks it answers before returning.
func NewStore(connectURL string) (*Store, error) {
	o, err := redis.ParseURL(connectURL)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse redis URL")
	}

	client := redis.NewClient(o)

	if err = client.Ping().Err(); err != nil {
		client.Close()
		return nil, errors.Wrap(err, "unable to connect")
	}

	return &Store{client: client}, nil
}

// Close closes the underlying redis client.
func (rs *Store) Close() error {
	return rs.client.Close()
}

// Get fetches the score stored under key.
func (rs *Store) Get(ctx context.Context, key string) (int, error) {
	val, err := rs.client.WithContext(ctx).Get(KeyPrefix + key).Result()
	if err == redis.Nil {
		return 0, highscore.ErrNotFound
	}
	if err != nil {
		return 0, errors.Wrap(err, "unable to get score")
	}
	score, err := strconv.Atoi(val)
	if err != nil {
		return 0, errors.Wrapf(err, "corrupt score %q", val)
	}
	return score, nil
}

// Set stores score under key, with no expiry.
func (rs *Store) Set(ctx context.Context, key string, score int) error {
	if score < 0 {
		return highscore.ErrNegativeScore
	}
	err := rs.client.WithContext(ctx).Set(KeyPrefix+key, strconv.Itoa(score), 0).Err()
	return errors.Wrap(err, "unable to set score")
}
