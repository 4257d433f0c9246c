package config

import (
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"
)

var (
	// Accepted range for durations entered by the user.
	minMinutes = 1
	maxMinutes = 999

	minPollInterval = 1 * time.Second
	maxPollInterval = 5 * time.Minute
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateTimer(); err != nil {
		return err
	}

	return c.validateAlert()
}

func (c *Config) validateTimer() error {
	t := c.Timer

	if t.DefaultMinutes < minMinutes || t.DefaultMinutes > maxMinutes {
		return errInvalidDefaultMinutes.Fmt(minMinutes, maxMinutes, t.DefaultMinutes)
	}

	if t.PollInterval < minPollInterval || t.PollInterval > maxPollInterval {
		return errInvalidPollInterval.Fmt(minPollInterval, maxPollInterval, t.PollInterval)
	}

	for _, p := range slices.Concat(t.Presets, t.CustomPresets) {
		if p < minMinutes || p > maxMinutes {
			return errInvalidPreset.Fmt(minMinutes, maxMinutes, p)
		}
	}

	return nil
}

func (c *Config) validateAlert() error {
	a := c.Alert

	if a.SoundCmd != "" {
		if _, err := shellquote.Split(a.SoundCmd); err != nil {
			return errInvalidSoundCmd.Fmt(a.SoundCmd).Wrap(err)
		}
	}

	// bare names are looked up in the sound directory
	ext := strings.ToLower(filepath.Ext(a.SoundFile))
	if ext != "" && !slices.Contains(SoundExts, ext) {
		return errInvalidSoundFormat.Fmt(a.SoundFile)
	}

	return nil
}
