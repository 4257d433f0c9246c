package app

import "github.com/ayoisaiah/quave/internal/apperr"

var (
	errParseUntil = &apperr.Error{
		Message: "unable to understand --until value %q",
	}

	errUntilPast = &apperr.Error{
		Message: "--until must be at least one minute in the future",
	}

	errOpenPrefs = &apperr.Error{
		Message: "unable to open the preferences database",
	}

	errCreateScheduler = &apperr.Error{
		Message: "unable to create the poll scheduler",
	}

	errScheduleTick = &apperr.Error{
		Message: "unable to schedule the timer poll",
	}

	errPromptFailed = &apperr.Error{
		Message: "prompt failed",
	}
)
