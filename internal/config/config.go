// Package config loads quave's settings from the config file and
// command-line flags
package config

import (
	"fmt"
	"io"
	"os"
	"time"
)

type (
	// Config holds all configuration settings
	Config struct {
		Timer   TimerConfig   `mapstructure:"timer"`
		Alert   AlertConfig   `mapstructure:"alert"`
		Display DisplayConfig `mapstructure:"display"`
		System  SystemConfig  `mapstructure:"-"`
	}

	// TimerConfig holds countdown settings
	TimerConfig struct {
		Presets        []int         `mapstructure:"presets"`
		CustomPresets  []int         `mapstructure:"custom_presets"`
		DefaultMinutes int           `mapstructure:"default_minutes"`
		PollInterval   time.Duration `mapstructure:"poll_interval"`
	}

	// AlertConfig holds settings for the expiry alert
	AlertConfig struct {
		SoundCmd  string `mapstructure:"sound_cmd"`
		SoundFile string `mapstructure:"sound_file"`
		Title     string `mapstructure:"title"`
		Tone      bool   `mapstructure:"tone"`
		Notify    bool   `mapstructure:"notify"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme      bool `mapstructure:"dark_theme"`
		TwentyFourHour bool `mapstructure:"twenty_four_hour"`
	}

	// SystemConfig holds file locations and runtime switches that are not
	// read from the config file
	SystemConfig struct {
		ConfigPath string
		StatePath  string
		PrefsPath  string
		LogPath    string
		SoundDir   string
		Debug      bool
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v1.0.0"

// SoundExts lists the supported alert sound formats.
var SoundExts = []string{".mp3", ".ogg", ".flac", ".wav"}

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config, applies options in order and validates the
// result.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// WithSystemConfig sets file locations and runtime switches.
func WithSystemConfig(sys SystemConfig) Option {
	return func(c *Config) error {
		c.System = sys
		return nil
	}
}

// TimeFormat returns the clock format for displayed end times.
func (c *Config) TimeFormat() string {
	if c.Display.TwentyFourHour {
		return "15:04:05"
	}

	return "03:04:05 PM"
}

func (c *Config) String() string {
	return fmt.Sprintf("%+v", *c)
}
