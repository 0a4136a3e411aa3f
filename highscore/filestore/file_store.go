// Package filestore keeps high scores in a small JSON document on disk.
package filestore

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"os"
	"os/user"
	"path/filepath"
	"sync"

	"github.com/battlesnakeio/snake/highscore"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// FileName is the name of the score document inside the store directory.
const FileName = "highscore.json"

// DefaultDir is where scores are kept when no directory is given.
func DefaultDir() string {
	return filepath.Join(homeDir(), ".snake")
}

func homeDir() string {
	usr, err := user.Current()
	if err != nil {
		return "."
	}
	return usr.HomeDir
}

// New returns a file based store implementation rooted at directory.
func New(directory string) highscore.Store {
	if directory == "" {
		directory = DefaultDir()
	}
	return &fileStore{
		path: filepath.Join(directory, FileName),
	}
}

type document struct {
	Scores map[string]int `json:"scores"`
}

type fileStore struct {
	path string
	lock sync.Mutex
}

// Replaced in tests.
var (
	readFile  = ioutil.ReadFile
	writeFile = atomicWriteFile
)

// errCorrupt marks a score file that was read but could not be decoded.
var errCorrupt = errors.New("corrupt score file")

func (fs *fileStore) load() (document, error) {
	doc := document{Scores: map[string]int{}}
	data, err := readFile(fs.path)
	if os.IsNotExist(err) {
		return doc, nil
	}
	if err != nil {
		return doc, errors.Wrap(err, "unable to read score file")
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		log.WithError(err).WithField("path", fs.path).Debug("unable to decode score file")
		return document{Scores: map[string]int{}}, errCorrupt
	}
	if doc.Scores == nil {
		doc.Scores = map[string]int{}
	}
	return doc, nil
}

func (fs *fileStore) Get(ctx context.Context, key string) (int, error) {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	doc, err := fs.load()
	if err != nil {
		return 0, err
	}
	score, ok := doc.Scores[key]
	if !ok {
		return 0, highscore.ErrNotFound
	}
	return score, nil
}

func (fs *fileStore) Set(ctx context.Context, key string, score int) error {
	if score < 0 {
		return highscore.ErrNegativeScore
	}

	fs.lock.Lock()
	defer fs.lock.Unlock()

	doc, err := fs.load()
	switch {
	case err == errCorrupt:
		// Only a document we could read but not decode is replaced.
		log.WithField("path", fs.path).Warn("replacing corrupt score file")
	case err != nil:
		return err
	}
	doc.Scores[key] = score

	data, err := json.MarshalIndent(&doc, "", "  ")
	if err != nil {
		return err
	}
	return writeFile(fs.path, data)
}

// atomicWriteFile writes through a temp file in the same directory and
// renames it over path.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0775); err != nil {
		return errors.Wrap(err, "unable to create score directory")
	}
	tmp, err := ioutil.TempFile(dir, ".highscore-*")
	if err != nil {
		return errors.Wrap(err, "unable to create temp score file")
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Wrap(err, "unable to write score file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
