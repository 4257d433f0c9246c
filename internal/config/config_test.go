package config

import (
	"flag"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/quave/internal/testutil"
)

// defaultConfig returns a new Config instance with default values.
func defaultConfig() *Config {
	return &Config{
		Timer: TimerConfig{
			DefaultMinutes: 20,
			PollInterval:   10 * time.Second,
			Presets:        []int{1, 5, 10, 15, 20, 25, 30, 45, 60},
			CustomPresets:  []int{90, 120, 180, 240},
		},
		Alert: AlertConfig{
			SoundCmd:  DefaultSoundCmd(runtime.GOOS),
			SoundFile: "chime",
			Title:     "Quave Timer",
			Tone:      true,
			Notify:    true,
		},
		Display: DisplayConfig{
			DarkTheme: true,
		},
	}
}

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "quave", "config.yml")

	cfg, err := New(WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, defaultConfig(), cfg)
	assert.FileExists(t, configPath)

	// the written defaults must load back to the same config
	reloaded, err := New(WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, cfg, reloaded)
}

func TestViperReadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := testutil.CopyFile("testdata/modified_config.yml", configPath)
	require.NoError(t, err)

	cfg, err := New(WithViperConfig(configPath))
	require.NoError(t, err)

	want := &Config{
		Timer: TimerConfig{
			DefaultMinutes: 25,
			PollInterval:   5 * time.Second,
			Presets:        []int{5, 25, 50},
			CustomPresets:  []int{90},
		},
		Alert: AlertConfig{
			SoundCmd:  "aplay /usr/share/sounds/alsa/Front_Center.wav",
			SoundFile: "chime",
			Title:     "Break time",
			Tone:      false,
			Notify:    true,
		},
		Display: DisplayConfig{
			DarkTheme:      false,
			TwentyFourHour: true,
		},
	}

	assert.Equal(t, want, cfg)
	assert.Equal(t, "15:04:05", cfg.TimeFormat())
}

func TestViperInvalidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := testutil.CopyFile("testdata/invalid_config.yml", configPath)
	require.NoError(t, err)

	_, err = New(WithViperConfig(configPath))
	require.Error(t, err)
	assert.ErrorIs(t, err, errConfigValidation)
	assert.ErrorIs(t, err, errInvalidDefaultMinutes)
}

func TestViperUnreadableConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("timer: [unclosed"), 0o600))

	_, err := New(WithViperConfig(configPath))
	assert.ErrorIs(t, err, errReadConfig)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		mutate func(c *Config)
		want   error
		name   string
	}{
		{
			name:   "defaults are valid",
			mutate: func(_ *Config) {},
		},
		{
			name:   "zero default minutes",
			mutate: func(c *Config) { c.Timer.DefaultMinutes = 0 },
			want:   errInvalidDefaultMinutes,
		},
		{
			name:   "poll interval too short",
			mutate: func(c *Config) { c.Timer.PollInterval = 100 * time.Millisecond },
			want:   errInvalidPollInterval,
		},
		{
			name:   "poll interval too long",
			mutate: func(c *Config) { c.Timer.PollInterval = time.Hour },
			want:   errInvalidPollInterval,
		},
		{
			name:   "preset out of range",
			mutate: func(c *Config) { c.Timer.CustomPresets = []int{1000} },
			want:   errInvalidPreset,
		},
		{
			name:   "unsupported sound format",
			mutate: func(c *Config) { c.Alert.SoundFile = "/tmp/alarm.aiff" },
			want:   errInvalidSoundFormat,
		},
		{
			name:   "unbalanced quotes in sound command",
			mutate: func(c *Config) { c.Alert.SoundCmd = `afplay "Glass.aiff` },
			want:   errInvalidSoundCmd,
		},
		{
			name:   "bare sound name",
			mutate: func(c *Config) { c.Alert.SoundFile = "chime" },
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCLIConfig(t *testing.T) {
	f := flag.NewFlagSet("quave", flag.ContinueOnError)
	f.String("poll-interval", "", "")
	f.String("sound-cmd", "", "")
	f.String("sound-file", "", "")
	f.Int("default", 0, "")
	f.Bool("disable-notification", false, "")
	f.Bool("no-tone", false, "")
	f.Bool("debug", false, "")

	require.NoError(t, f.Parse([]string{
		"--poll-interval", "30",
		"--sound-cmd", "off",
		"--default", "45",
		"--disable-notification",
		"--debug",
	}))

	ctx := cli.NewContext(&cli.App{}, f, nil)

	cfg := defaultConfig()

	require.NoError(t, WithCLIConfig(ctx)(cfg))

	assert.Equal(t, 30*time.Second, cfg.Timer.PollInterval)
	assert.Equal(t, 45, cfg.Timer.DefaultMinutes)
	assert.Empty(t, cfg.Alert.SoundCmd)
	assert.False(t, cfg.Alert.Notify)
	assert.True(t, cfg.Alert.Tone)
	assert.True(t, cfg.System.Debug)
}

func TestCLIConfigInvalidInterval(t *testing.T) {
	cfg := defaultConfig()

	err := applyCLIOptions(cfg, CLIOptions{PollInterval: "soon"})
	assert.ErrorIs(t, err, errInvalidCLIDuration)
}
