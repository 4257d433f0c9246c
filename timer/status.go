package timer

import (
	"fmt"

	"github.com/ayoisaiah/quave/internal/models"
)

const idleTooltip = "Quave Timer"

// Status is a snapshot of the timer as seen by a single tick.
type Status struct {
	Record    *models.TimerRecord `json:"timer,omitempty"`
	AlertedBy string              `json:"alerted_by,omitempty"`
	Remaining int                 `json:"remaining"`
	Alerted   bool                `json:"alerted"`
}

// Active reports whether a timer is running (including overdue timers).
func (s Status) Active() bool {
	return s.Record != nil
}

// Overdue reports whether the countdown has passed zero.
func (s Status) Overdue() bool {
	return s.Active() && s.Remaining <= 0
}

// Title is the short countdown shown in a menu or status bar. It is empty
// when no timer is running.
func (s Status) Title() string {
	if !s.Active() {
		return ""
	}

	return FormatDuration(s.Remaining)
}

// Tooltip is the longer description of the timer state.
func (s Status) Tooltip() string {
	if !s.Active() {
		return idleTooltip
	}

	if s.Overdue() {
		return fmt.Sprintf(
			"%s - overdue by %s",
			s.Record.Name,
			FormatDuration(-s.Remaining),
		)
	}

	return fmt.Sprintf("%s - %s remaining", s.Record.Name, s.Title())
}

// Progress returns the elapsed fraction of the countdown in [0, 1].
func (s Status) Progress() float64 {
	if !s.Active() || s.Record.DurationSeconds <= 0 {
		return 0
	}

	p := 1 - float64(s.Remaining)/float64(s.Record.DurationSeconds)

	return min(max(p, 0), 1)
}

// AlertMessage is the text of the alert due at this status.
func (s Status) AlertMessage() string {
	if !s.Active() {
		return ""
	}

	return alertMessage(s.Record, s.Remaining)
}

// alertMessage is the text handed to the alert dispatcher.
func alertMessage(rec *models.TimerRecord, remaining int) string {
	if rec.SoundsPlayed <= 1 {
		return rec.Name + " finished!"
	}

	return fmt.Sprintf("%s is overdue by %s", rec.Name, FormatDuration(-remaining))
}
