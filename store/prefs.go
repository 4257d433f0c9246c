package store

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/quave/internal/osutil"
)

const prefsBucket = "prefs"

const openTimeout = 1 * time.Second

// Prefs is a key/value preference store backed by BoltDB. The database is
// opened for the duration of each call so that short-lived commands and a
// long-running watcher can share it.
type Prefs struct {
	path string
}

// NewPrefs returns a preference store for the database at path, creating
// the database and its bucket if necessary.
func NewPrefs(path string) (*Prefs, error) {
	if err := os.MkdirAll(filepath.Dir(path), osutil.DirPermission); err != nil {
		return nil, err
	}

	p := &Prefs{path: path}

	err := p.update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(prefsBucket))
		return err
	})
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Get returns the value stored under key, or an empty string when unset.
func (p *Prefs) Get(key string) (string, error) {
	var value string

	db, err := openDB(p.path)
	if err != nil {
		return "", err
	}

	defer db.Close()

	err = db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(prefsBucket))
		if b == nil {
			return nil
		}

		value = string(b.Get([]byte(key)))

		return nil
	})

	return value, err
}

// Set stores value under key.
func (p *Prefs) Set(key, value string) error {
	return p.update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(prefsBucket))
		if err != nil {
			return err
		}

		return b.Put([]byte(key), []byte(value))
	})
}

func (p *Prefs) update(fn func(tx *bolt.Tx) error) error {
	db, err := openDB(p.path)
	if err != nil {
		return err
	}

	defer db.Close()

	return db.Update(fn)
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	db, err := bolt.Open(
		pathToDB,
		osutil.FilePermission,
		&bolt.Options{Timeout: openTimeout},
	)
	if err != nil {
		// a lock held past the timeout means another process has the file
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errAlreadyRunning
		}

		return nil, err
	}

	return db, nil
}
