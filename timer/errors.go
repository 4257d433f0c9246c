package timer

import (
	"errors"

	"github.com/ayoisaiah/quave/internal/apperr"
)

const (
	MinMinutes = 1
	MaxMinutes = 999
)

var (
	errInvalidMinutes = &apperr.Error{
		Message: "please enter a valid number between %d and %d",
	}

	errSaveTimer = &apperr.Error{
		Message: "unable to save timer state",
	}

	errLoadTimer = &apperr.Error{
		Message: "unable to load timer state",
	}

	errDeleteTimer = &apperr.Error{
		Message: "unable to delete timer state",
	}
)

// IsInvalidMinutes reports whether err was caused by an out-of-range or
// non-numeric duration.
func IsInvalidMinutes(err error) bool {
	return errors.Is(err, errInvalidMinutes)
}
