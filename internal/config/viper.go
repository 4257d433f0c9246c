package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/quave/internal/osutil"
)

// viper keys for each setting in the config file.
const (
	keyDefaultMinutes = "timer.default_minutes"
	keyPollInterval   = "timer.poll_interval"
	keyPresets        = "timer.presets"
	keyCustomPresets  = "timer.custom_presets"
	keySoundCmd       = "alert.sound_cmd"
	keySoundFile      = "alert.sound_file"
	keyAlertTitle     = "alert.title"
	keyTone           = "alert.tone"
	keyNotify         = "alert.notify"
	keyDarkTheme      = "display.dark_theme"
	keyTwentyFourHour = "display.twenty_four_hour"
)

// defaultSoundFile is the bundled chime installed into the sound directory.
const defaultSoundFile = "chime"

var (
	defaultPresets       = []int{1, 5, 10, 15, 20, 25, 30, 45, 60}
	defaultCustomPresets = []int{90, 120, 180, 240}
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. A missing file is created with the defaults.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		err = os.MkdirAll(filepath.Dir(configPath), osutil.DirPermission)
		if err != nil {
			return errWriteConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper registers the default value of every setting.
func setupViper(v *viper.Viper) {
	v.SetDefault(keyDefaultMinutes, 20)
	v.SetDefault(keyPollInterval, "10s")
	v.SetDefault(keyPresets, defaultPresets)
	v.SetDefault(keyCustomPresets, defaultCustomPresets)
	v.SetDefault(keySoundCmd, DefaultSoundCmd(runtime.GOOS))
	v.SetDefault(keySoundFile, defaultSoundFile)
	v.SetDefault(keyAlertTitle, "Quave Timer")
	v.SetDefault(keyTone, true)
	v.SetDefault(keyNotify, true)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHour, false)
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errDecodeConfig.Wrap(err)
	}

	return nil
}

// DefaultSoundCmd returns the command that plays the platform's system
// alert sound.
func DefaultSoundCmd(goos string) string {
	switch goos {
	case osutil.Darwin:
		return "afplay /System/Library/Sounds/Glass.aiff"
	case osutil.Windows:
		return `powershell -NoProfile -Command "[System.Media.SystemSounds]::Exclamation.Play(); Start-Sleep -Milliseconds 800"`
	default:
		return "paplay /usr/share/sounds/freedesktop/stereo/complete.oga"
	}
}
