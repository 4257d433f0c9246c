package alert

import "github.com/ayoisaiah/quave/internal/apperr"

var (
	errNoCommand = &apperr.Error{
		Message: "no sound command configured",
	}

	errParseCommand = &apperr.Error{
		Message: "unable to parse sound command",
	}

	errCommandFailed = &apperr.Error{
		Message: "sound command %q failed",
	}

	errNoSoundFile = &apperr.Error{
		Message: "no sound file configured",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}

	errUnknownSound = &apperr.Error{
		Message: "unknown sound: %s",
	}

	errStrategyPanic = &apperr.Error{
		Message: "alert strategy panicked: %v",
	}
)
