package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ayoisaiah/quave/internal/models"
	"github.com/ayoisaiah/quave/internal/osutil"
)

// File stores the timer record as a JSON document at a fixed path.
type File struct {
	path string
}

// NewFile returns a File store for the given path. The file is created on
// the first Save.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the location of the state file.
func (f *File) Path() string {
	return f.path
}

// Load reads the timer record. A missing, unreadable or corrupt file yields
// a nil record and no error: it simply means there is no active timer.
func (f *File) Load() (*models.TimerRecord, error) {
	b, err := os.ReadFile(f.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("unable to read timer state",
				slog.String("path", f.path),
				slog.Any("error", err),
			)
		}

		return nil, nil
	}

	var rec *models.TimerRecord

	err = json.Unmarshal(b, &rec)
	if err != nil {
		slog.Warn("discarding corrupt timer state",
			slog.String("path", f.path),
			slog.Any("error", err),
		)

		return nil, nil
	}

	if rec != nil {
		rec.LastNegativeMinuteAlert = 0
	}

	return rec, nil
}

// Save replaces the stored record. The new content is written to a
// temporary file and renamed into place so that a failed write leaves the
// previous record intact.
func (f *File) Save(rec *models.TimerRecord) (err error) {
	b, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)

	if err = os.MkdirAll(dir, osutil.DirPermission); err != nil {
		return errWriteState.Fmt(f.path).Wrap(err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*")
	if err != nil {
		return errWriteState.Fmt(f.path).Wrap(err)
	}

	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(b); err != nil {
		_ = tmp.Close()
		return errWriteState.Fmt(f.path).Wrap(err)
	}

	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return errWriteState.Fmt(f.path).Wrap(err)
	}

	if err = tmp.Close(); err != nil {
		return errWriteState.Fmt(f.path).Wrap(err)
	}

	if err = os.Rename(tmp.Name(), f.path); err != nil {
		return errWriteState.Fmt(f.path).Wrap(err)
	}

	return nil
}

// Delete removes the stored record. Deleting a missing record succeeds.
func (f *File) Delete() error {
	err := os.Remove(f.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}
