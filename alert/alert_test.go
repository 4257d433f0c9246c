package alert

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/quave/internal/config"
	"github.com/ayoisaiah/quave/internal/osutil"
)

type fakeStrategy struct {
	err    error
	name   string
	calls  *[]string
	panics bool
}

func (f fakeStrategy) Name() string {
	return f.name
}

func (f fakeStrategy) Alert(_ context.Context, _ string) error {
	*f.calls = append(*f.calls, f.name)

	if f.panics {
		panic("speaker exploded")
	}

	return f.err
}

func TestDispatchFallsThrough(t *testing.T) {
	var calls []string

	d := NewDispatcher(
		fakeStrategy{name: "primary", err: errors.New("no player"), calls: &calls},
		fakeStrategy{name: "secondary", panics: true, calls: &calls},
		fakeStrategy{name: "tertiary", calls: &calls},
		fakeStrategy{name: "never", calls: &calls},
	)

	got := d.Dispatch(context.Background(), "done")

	assert.Equal(t, "tertiary", got)
	assert.Equal(t, []string{"primary", "secondary", "tertiary"}, calls)
}

func TestDispatchStopsAtFirstSuccess(t *testing.T) {
	var calls []string

	d := NewDispatcher(
		fakeStrategy{name: "primary", calls: &calls},
		fakeStrategy{name: "secondary", calls: &calls},
	)

	assert.Equal(t, "primary", d.Dispatch(context.Background(), "done"))
	assert.Equal(t, []string{"primary"}, calls)
}

func TestDispatchAllFail(t *testing.T) {
	var calls []string

	d := NewDispatcher(
		fakeStrategy{name: "primary", err: errors.New("nope"), calls: &calls},
	)

	assert.Empty(t, d.Dispatch(context.Background(), "done"))
}

func TestConsoleAlwaysSucceeds(t *testing.T) {
	var buf bytes.Buffer

	d := NewDispatcher(
		NewCommand(""),
		NewSoundFile(""),
		NewConsole(&buf),
	)

	got := d.Dispatch(context.Background(), "20 min Timer finished!")

	assert.Equal(t, "console", got)
	assert.Contains(t, buf.String(), "20 min Timer finished!")
}

func TestCommand(t *testing.T) {
	if runtime.GOOS == osutil.Windows {
		t.Skip("relies on POSIX utilities")
	}

	ctx := context.Background()

	require.NoError(t, NewCommand("true").Alert(ctx, ""))

	err := NewCommand("false").Alert(ctx, "")
	assert.ErrorIs(t, err, errCommandFailed)

	err = NewCommand("quave-missing-player --loud").Alert(ctx, "")
	assert.ErrorIs(t, err, errCommandFailed)

	err = NewCommand(`afplay "unterminated`).Alert(ctx, "")
	assert.ErrorIs(t, err, errParseCommand)

	assert.ErrorIs(t, NewCommand("   ").Alert(ctx, ""), errNoCommand)
}

func TestSoundFileRejectsUnknownFormat(t *testing.T) {
	err := NewSoundFile("/tmp/alarm.aiff").Alert(context.Background(), "")
	assert.ErrorIs(t, err, errInvalidSoundFormat)

	err = NewSoundFile(filepath.Join(t.TempDir(), "missing.ogg")).
		Alert(context.Background(), "")
	assert.ErrorIs(t, err, errUnknownSound)
}

func TestSounds(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"bell10.ogg", "bell2.ogg", "chime.wav", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}

	require.NoError(t, os.Mkdir(filepath.Join(dir, "extra.mp3"), 0o755))

	names, err := Sounds(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"bell2", "bell10", "chime"}, names)

	names, err = Sounds(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestResolveSound(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chime.wav"), nil, 0o600))

	assert.Equal(t, filepath.Join(dir, "chime.wav"), ResolveSound("chime", dir))
	assert.Equal(t, filepath.Join(dir, "gong.ogg"), ResolveSound("gong", dir))
	assert.Equal(t, "/music/alarm.mp3", ResolveSound("/music/alarm.mp3", dir))
	assert.Equal(t, "alarm.mp3", ResolveSound("alarm.mp3", dir))
	assert.Empty(t, ResolveSound("", dir))
}

func TestFromConfig(t *testing.T) {
	cfg := &config.AlertConfig{
		SoundCmd:  "afplay /System/Library/Sounds/Glass.aiff",
		SoundFile: "chime",
		Tone:      true,
		Notify:    true,
	}

	d := FromConfig(cfg, t.TempDir(), &bytes.Buffer{})

	assert.Equal(t, []string{
		"sound command",
		"sound file",
		"tone",
		"bell",
		"notification",
		"console",
	}, d.Strategies())

	minimal := FromConfig(&config.AlertConfig{}, "", &bytes.Buffer{})

	assert.Equal(t, []string{"console"}, minimal.Strategies())
}
