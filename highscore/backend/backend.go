// Package backend opens a high score store by name, the way the command
// line and config file refer to them.
package backend

import (
	"io"
	"os"
	"path/filepath"

	"github.com/battlesnakeio/snake/highscore"
	"github.com/battlesnakeio/snake/highscore/filestore"
	"github.com/battlesnakeio/snake/highscore/redisstore"
	"github.com/battlesnakeio/snake/highscore/sqlstore"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Names of the supported backends.
const (
	InMem    = "inmem"
	File     = "file"
	Redis    = "redis"
	Postgres = "postgres"
	SQLite   = "sqlite"
)

// SQLiteFile is the database file used when the sqlite backend gets no
// arguments.
const SQLiteFile = "highscore.db"

// Open builds the named backend from args, wrapped with metrics. The
// returned func releases it.
//
//	inmem     args ignored
//	file      directory, ~/.snake when empty
//	redis     redis URL
//	postgres  lib/pq connection string
//	sqlite    database path, ~/.snake/highscore.db when empty
func Open(name, args string) (highscore.Store, func(), error) {
	var (
		store highscore.Store
		err   error
	)
	switch name {
	case InMem:
		store = highscore.InMemStore()
	case File:
		if args == "" {
			args = filestore.DefaultDir()
		}
		store = filestore.New(args)
	case Redis:
		store, err = redisstore.NewStore(args)
	case Postgres:
		store, err = sqlstore.New(sqlstore.DriverPostgres, args)
	case SQLite:
		if args == "" {
			args, err = defaultSQLitePath()
			if err != nil {
				return nil, nil, err
			}
		}
		store, err = sqlstore.New(sqlstore.DriverSQLite, args)
	default:
		return nil, nil, errors.Errorf("invalid backend %q", name)
	}
	if err != nil {
		return nil, nil, errors.Wrapf(err, "unable to start up %s backend", name)
	}

	store = highscore.InstrumentStore(store)
	release := func() {
		if c, ok := store.(io.Closer); ok {
			if err := c.Close(); err != nil {
				log.WithError(err).Error("unable to close store")
			}
		}
	}
	log.WithField("backend", name).Debug("high score store ready")
	return store, release, nil
}

func defaultSQLitePath() (string, error) {
	dir := filestore.DefaultDir()
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", errors.Wrap(err, "unable to create data directory")
	}
	return filepath.Join(dir, SQLiteFile), nil
}
