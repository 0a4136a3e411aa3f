// Package sqlstore keeps high scores in a SQL database. Postgres (lib/pq) and
// SQLite (modernc.org/sqlite) are supported.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"  // Import pq driver.
	_ "modernc.org/sqlite" // Import sqlite driver.

	"github.com/battlesnakeio/snake/config"
	"github.com/battlesnakeio/snake/highscore"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Supported drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const migrations = `
CREATE TABLE IF NOT EXISTS high_scores (
	name VARCHAR(255) PRIMARY KEY,
	score INTEGER NOT NULL,
	updated TIMESTAMP NOT NULL
);
`

// New returns a new store using the named driver, creating the schema when
// it is missing.
func New(driver, dsn string) (*Store, error) {
	if driver != DriverPostgres && driver != DriverSQLite {
		return nil, fmt.Errorf("sqlstore: unsupported driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open database")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if driver == DriverSQLite {
		// SQLite serialises writers anyway; one connection avoids busy errors.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(config.MaxOpenConns)
		db.SetMaxIdleConns(config.MaxIdleConns)
	}

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "unable to connect")
	}

	if _, err = db.ExecContext(ctx, migrations); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "unable to migrate")
	}
	return &Store{db: db, driver: driver}, nil
}

// Store represents an SQL store.
type Store struct {
	db     *sql.DB
	driver string
}

// Close closes the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// rebind rewrites postgres style placeholders for drivers that want '?'.
func (s *Store) rebind(query string) string {
	if s.driver != DriverSQLite {
		return query
	}
	for i := 9; i >= 1; i-- {
		query = strings.Replace(query, fmt.Sprintf("$%d", i), "?", -1)
	}
	return query
}

// Get fetches the score stored under key.
func (s *Store) Get(ctx context.Context, key string) (int, error) {
	r := s.db.QueryRowContext(ctx, s.rebind(`SELECT score FROM high_scores WHERE name=$1`), key)

	var score int
	if err := r.Scan(&score); err != nil {
		if err == sql.ErrNoRows {
			return 0, highscore.ErrNotFound
		}
		return 0, errors.Wrap(err, "unable to read score")
	}
	return score, nil
}

// Set inserts or replaces the score stored under key.
func (s *Store) Set(ctx context.Context, key string, score int) error {
	if score < 0 {
		return highscore.ErrNegativeScore
	}

	_, err := s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO high_scores (name, score, updated) VALUES ($1, $2, $3)
		ON CONFLICT (name)
		DO UPDATE SET score=excluded.score, updated=excluded.updated`),
		key, score, time.Now().UTC(),
	)
	if err != nil {
		log.WithError(err).WithField("driver", s.driver).Error("score write failed")
		return errors.Wrap(err, "unable to write score")
	}
	return nil
}
