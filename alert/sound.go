package alert

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
	"github.com/maruel/natural"

	"github.com/ayoisaiah/quave/internal/config"
	"github.com/ayoisaiah/quave/internal/pathutil"
)

const (
	sampleRate beep.SampleRate = 44100
	bufferSize                 = 10
	resampleQuality            = 4
)

// SupportedExts lists the sound file formats that can be decoded.
var SupportedExts = config.SoundExts

var (
	speakerOnce sync.Once
	speakerErr  error
)

func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(
			sampleRate,
			sampleRate.N(time.Second/bufferSize),
		)
	})

	return speakerErr
}

// play blocks until the streamer is drained or ctx is done.
func play(ctx context.Context, s beep.Streamer) error {
	if err := initSpeaker(); err != nil {
		return err
	}

	done := make(chan struct{})

	speaker.Play(beep.Seq(s, beep.Callback(func() {
		close(done)
	})))

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		speaker.Clear()
		return ctx.Err()
	}
}

// SoundFile plays an audio file through the speaker.
type SoundFile struct {
	path string
}

func NewSoundFile(path string) *SoundFile {
	return &SoundFile{path: path}
}

func (s *SoundFile) Name() string {
	return "sound file"
}

func (s *SoundFile) Alert(ctx context.Context, _ string) error {
	if s.path == "" {
		return errNoSoundFile
	}

	stream, format, err := decode(s.path)
	if err != nil {
		return err
	}

	defer stream.Close()

	var streamer beep.Streamer = stream

	if format.SampleRate != sampleRate {
		streamer = beep.Resample(
			resampleQuality,
			format.SampleRate,
			sampleRate,
			stream,
		)
	}

	return play(ctx, streamer)
}

// decode returns an audio stream for the specified sound file.
func decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(SupportedExts, ext) {
		return nil, format, errInvalidSoundFormat.Fmt(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, format, errUnknownSound.Fmt(path).Wrap(err)
	}

	switch ext {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	}

	if err != nil {
		_ = f.Close()
		return nil, format, err
	}

	return stream, format, nil
}

// Tone plays a short series of synthesized beeps.
type Tone struct {
	freq   float64
	count  int
	length time.Duration
	gap    time.Duration
}

// NewTone returns three 880Hz beeps.
func NewTone() *Tone {
	return &Tone{
		freq:   880,
		count:  3,
		length: 250 * time.Millisecond,
		gap:    150 * time.Millisecond,
	}
}

func (t *Tone) Name() string {
	return "tone"
}

func (t *Tone) Alert(ctx context.Context, _ string) error {
	sine, err := generators.SineTone(sampleRate, t.freq)
	if err != nil {
		return err
	}

	seq := make([]beep.Streamer, 0, t.count*2)

	for range t.count {
		seq = append(seq,
			beep.Take(sampleRate.N(t.length), sine),
			beep.Silence(sampleRate.N(t.gap)),
		)
	}

	quieter := &effects.Volume{
		Streamer: beep.Seq(seq...),
		Base:     2,
		Volume:   -1,
	}

	return play(ctx, quieter)
}

// ResolveSound maps a bare sound name such as "chime" to a file in dir.
// Paths and names with an extension are returned unchanged.
func ResolveSound(sound, dir string) string {
	if sound == "" || filepath.Ext(sound) != "" || strings.ContainsRune(sound, os.PathSeparator) {
		return sound
	}

	for _, ext := range SupportedExts {
		p := filepath.Join(dir, sound+ext)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return filepath.Join(dir, sound+".ogg")
}

// Sounds lists the names of the sound files in dir in natural order.
func Sounds(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, err
	}

	var names []string

	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(e.Name()))
		if slices.Contains(SupportedExts, ext) {
			names = append(names, pathutil.StripExtension(e.Name()))
		}
	}

	sort.Sort(natural.StringSlice(names))

	return names, nil
}
