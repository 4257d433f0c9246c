package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/quave/internal/models"
)

func sampleRecord() *models.TimerRecord {
	return &models.TimerRecord{
		Name:            "20 min Timer",
		StartTime:       time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC).UnixMilli(),
		DurationSeconds: 1200,
		IsActive:        true,
	}
}

func TestFileLoadMissing(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "timer.json"))

	rec, err := f.Load()

	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestFileRoundTrip(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "nested", "timer.json"))

	want := sampleRecord()

	require.NoError(t, f.Save(want))

	got, err := f.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFileSaveOverwrites(t *testing.T) {
	dir := t.TempDir()
	f := NewFile(filepath.Join(dir, "timer.json"))

	first := sampleRecord()
	first.SoundsPlayed = 4
	first.IsOverdue = true

	require.NoError(t, f.Save(first))

	second := sampleRecord()
	second.Name = "5 min Timer"
	second.DurationSeconds = 300

	require.NoError(t, f.Save(second))

	got, err := f.Load()
	require.NoError(t, err)
	assert.Equal(t, second, got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestFileLoadCorrupt(t *testing.T) {
	cases := map[string]string{
		"garbage":   "{not json",
		"truncated": `{"name": "20 min Timer", "startTime": 17`,
		"null":      "null",
		"wrongtype": `{"duration": "twenty"}`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "timer.json")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

			rec, err := NewFile(path).Load()

			require.NoError(t, err)
			assert.Nil(t, rec)
		})
	}
}

func TestFileLoadIgnoresLegacyCounter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timer.json")
	content := `{
  "startTime": 1760000000000,
  "duration": 600,
  "isActive": true,
  "isFinished": true,
  "isOverdue": true,
  "lastNegativeMinuteAlert": 3,
  "soundsPlayed": 2,
  "name": "10 min Timer"
}`

	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	rec, err := NewFile(path).Load()
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.Equal(t, 0, rec.LastNegativeMinuteAlert)
	assert.Equal(t, 2, rec.SoundsPlayed)
	assert.Equal(t, 600, rec.DurationSeconds)
	assert.Equal(t, int64(1760000000000), rec.StartTime)
}

func TestFileDeleteIsIdempotent(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "timer.json"))

	require.NoError(t, f.Save(sampleRecord()))
	require.NoError(t, f.Delete())
	require.NoError(t, f.Delete())

	rec, err := f.Load()
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestFileSaveFailureKeepsPrevious(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "timer.json")
	f := NewFile(path)

	prev := sampleRecord()
	require.NoError(t, f.Save(prev))

	// a directory in place of the parent makes every write fail
	blocked := NewFile(filepath.Join(path, "child.json"))
	require.Error(t, blocked.Save(sampleRecord()))

	got, err := f.Load()
	require.NoError(t, err)
	assert.Equal(t, prev, got)
}
