package config

import "github.com/ayoisaiah/quave/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errDecodeConfig = &apperr.Error{
		Message: "decoding config file failed",
	}

	errInvalidDefaultMinutes = &apperr.Error{
		Message: "default duration must be between %d and %d minutes, got %d",
	}

	errInvalidPollInterval = &apperr.Error{
		Message: "poll interval must be between %v and %v, got %v",
	}

	errInvalidPreset = &apperr.Error{
		Message: "preset durations must be between %d and %d minutes, got %d",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}

	errInvalidSoundCmd = &apperr.Error{
		Message: "unable to parse sound command %q",
	}

	errInvalidCLIDuration = &apperr.Error{
		Message: "invalid value for --%s: %v",
	}
)
