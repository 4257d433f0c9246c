// Package store persists the timer record and the user's preferences
package store

import (
	"github.com/ayoisaiah/quave/internal/apperr"
)

var (
	errAlreadyRunning = &apperr.Error{
		Message: "is quave already running? the preferences database is locked by another process",
	}

	errWriteState = &apperr.Error{
		Message: "writing timer state to %s failed",
	}
)
