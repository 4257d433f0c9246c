package tui

import "github.com/ayoisaiah/quave/internal/apperr"

var (
	errWatchState = &apperr.Error{
		Message: "unable to watch %s for changes",
	}

	errWatcher = &apperr.Error{
		Message: "state file watcher failed",
	}
)
