// Package timer implements the countdown state machine: remaining-time
// derivation, expiry and overdue detection, and the repeated-alert cadence.
// The engine functions are pure and take the current time as an argument;
// Service binds them to storage, preferences and the alert dispatcher.
package timer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ayoisaiah/quave/internal/models"
	"github.com/ayoisaiah/quave/internal/timeutil"
)

const (
	secondsInAMinute = 60

	// CustomName labels timers started from the custom presets.
	CustomName = "Custom Timer"
)

// RemainingSeconds returns the whole seconds left before the timer expires.
// The result goes negative once the timer is overdue and is never clamped.
func RemainingSeconds(rec *models.TimerRecord, now time.Time) int {
	elapsedMs := now.UnixMilli() - rec.StartTime

	elapsed := elapsedMs / 1000
	// floor division for clocks that moved backwards
	if elapsedMs < 0 && elapsedMs%1000 != 0 {
		elapsed--
	}

	return rec.DurationSeconds - int(elapsed)
}

// FormatDuration renders seconds as "{m}m {s}s", or "{s}s" below a minute,
// prefixed with "-" for negative values.
func FormatDuration(seconds int) string {
	var sign string

	abs := seconds
	if seconds < 0 {
		sign = "-"
		abs = -seconds
	}

	minutes := abs / secondsInAMinute
	secs := abs % secondsInAMinute

	if minutes >= 1 {
		return fmt.Sprintf("%s%dm %ds", sign, minutes, secs)
	}

	return fmt.Sprintf("%s%ds", sign, secs)
}

// ExpectedAlertCount is the number of alerts that should have fired for the
// given remaining time: one at expiry and one more per overdue minute.
func ExpectedAlertCount(remaining int) int {
	if remaining > 0 {
		return 0
	}

	return -remaining/secondsInAMinute + 1
}

// EvaluateTick decides whether an alert is due at now. When it is, the
// returned record carries the bumped alert counter and the finished/overdue
// flags, and must be persisted by the caller before alerting.
func EvaluateTick(
	rec models.TimerRecord,
	now time.Time,
) (models.TimerRecord, bool) {
	remaining := RemainingSeconds(&rec, now)
	if remaining > 0 {
		return rec, false
	}

	expected := ExpectedAlertCount(remaining)
	if expected <= rec.SoundsPlayed {
		return rec, false
	}

	rec.SoundsPlayed = expected
	rec.IsFinished = true
	rec.IsOverdue = true

	return rec, true
}

// New creates a fresh record for a countdown of the given minutes.
// Fractional minutes are converted to whole seconds.
func New(minutes float64, now time.Time) models.TimerRecord {
	return fromSeconds(
		timeutil.Round(minutes*secondsInAMinute),
		Name(minutes),
		now,
	)
}

// NewCustom is like New but labels the record as a custom timer.
func NewCustom(minutes float64, now time.Time) models.TimerRecord {
	return fromSeconds(timeutil.Round(minutes*secondsInAMinute), CustomName, now)
}

// Restart returns a new run of rec starting at now with the same duration
// and name. Counters and flags return to their initial values.
func Restart(rec models.TimerRecord, now time.Time) models.TimerRecord {
	return fromSeconds(rec.DurationSeconds, rec.Name, now)
}

// Name derives the display label from a minute value, e.g. "20 min Timer".
func Name(minutes float64) string {
	return timeutil.FormatMinutes(minutes) + " min Timer"
}

func fromSeconds(seconds int, name string, now time.Time) models.TimerRecord {
	return models.TimerRecord{
		Name:            name,
		StartTime:       now.UnixMilli(),
		DurationSeconds: seconds,
		IsActive:        true,
	}
}

// ResolveMinutes picks the duration for a start request that carries no
// explicit minutes: the last used value when it amounts to at least one
// second, otherwise the configured default.
func ResolveMinutes(lastUsed string, defaultMinutes int) float64 {
	lastUsed = strings.TrimSpace(lastUsed)

	if lastUsed != "" && lastUsed != "0" {
		m, err := strconv.ParseFloat(lastUsed, 64)
		// values that round to zero seconds would expire on creation
		if err == nil && !math.IsNaN(m) && !math.IsInf(m, 1) &&
			timeutil.Round(m*secondsInAMinute) >= 1 {
			return m
		}
	}

	return float64(defaultMinutes)
}

// ParseCustomMinutes validates free-form user input for a custom duration.
func ParseCustomMinutes(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, errInvalidMinutes.Fmt(MinMinutes, MaxMinutes)
	}

	if err := ValidateMinutes(n); err != nil {
		return 0, err
	}

	return n, nil
}

// ValidateMinutes enforces the accepted range for user-supplied durations.
func ValidateMinutes(n int) error {
	if n < MinMinutes || n > MaxMinutes {
		return errInvalidMinutes.Fmt(MinMinutes, MaxMinutes)
	}

	return nil
}
