package config

import (
	"time"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	PollInterval  string
	SoundCmd      string
	SoundFile     string
	DefaultMins   int
	DisableNotify bool
	DisableTone   bool
	Debug         bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
// Only flags that were explicitly set override the config file.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			PollInterval:  ctx.String("poll-interval"),
			SoundCmd:      ctx.String("sound-cmd"),
			SoundFile:     ctx.String("sound-file"),
			DefaultMins:   ctx.Int("default"),
			DisableNotify: ctx.Bool("disable-notification"),
			DisableTone:   ctx.Bool("no-tone"),
			Debug:         ctx.Bool("debug"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if opts.PollInterval != "" {
		d, err := parseDuration(opts.PollInterval)
		if err != nil {
			return errInvalidCLIDuration.Fmt("poll-interval", err)
		}

		c.Timer.PollInterval = d
	}

	if opts.DefaultMins != 0 {
		c.Timer.DefaultMinutes = opts.DefaultMins
	}

	if opts.SoundCmd != "" {
		if opts.SoundCmd == "off" {
			c.Alert.SoundCmd = ""
		} else {
			c.Alert.SoundCmd = opts.SoundCmd
		}
	}

	if opts.SoundFile != "" {
		if opts.SoundFile == "off" {
			c.Alert.SoundFile = ""
		} else {
			c.Alert.SoundFile = opts.SoundFile
		}
	}

	if opts.DisableNotify {
		c.Alert.Notify = false
	}

	if opts.DisableTone {
		c.Alert.Tone = false
	}

	if opts.Debug {
		c.System.Debug = true
	}

	return nil
}

// parseDuration accepts Go duration strings and bare numbers of seconds.
func parseDuration(s string) (time.Duration, error) {
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	secs, err := time.ParseDuration(s + "s")
	if err != nil {
		return 0, err
	}

	return secs, nil
}
