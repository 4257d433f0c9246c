package models

import (
	"time"
)

// TimerRecord is the persisted state of the single countdown timer. The JSON
// keys match the state file written by earlier releases.
type TimerRecord struct {
	Name string `json:"name"`
	// StartTime is the wall-clock start of the current run in epoch
	// milliseconds
	StartTime int64 `json:"startTime"`
	// DurationSeconds is fixed when the record is created
	DurationSeconds int  `json:"duration"`
	SoundsPlayed    int  `json:"soundsPlayed"`
	IsActive        bool `json:"isActive"`
	IsFinished      bool `json:"isFinished"`
	IsOverdue       bool `json:"isOverdue"`
	// Deprecated: superseded by SoundsPlayed. Always written as zero and
	// ignored on read.
	LastNegativeMinuteAlert int `json:"lastNegativeMinuteAlert"`
}

// StartedAt returns the start time as a time.Time.
func (r *TimerRecord) StartedAt() time.Time {
	return time.UnixMilli(r.StartTime)
}

// Duration returns the total countdown length.
func (r *TimerRecord) Duration() time.Duration {
	return time.Duration(r.DurationSeconds) * time.Second
}
