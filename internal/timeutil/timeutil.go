// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

const minutesInAnHour = 60

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	hrs = int(math.Floor(float64(val) / float64(minutesInAnHour)))
	mins = val % minutesInAnHour

	return
}

// FormatMinutes renders a minute value without trailing zeros (20, 1.5).
func FormatMinutes(m float64) string {
	return strconv.FormatFloat(m, 'f', -1, 64)
}

// MinutesLabel returns a human label for a preset such as "5 minutes" or
// "1.5 hours".
func MinutesLabel(val int) string {
	if val == 1 {
		return "1 minute"
	}

	if val <= minutesInAnHour {
		return fmt.Sprintf("%d minutes", val)
	}

	hrs := FormatMinutes(float64(val) / minutesInAnHour)

	return strings.TrimSpace(hrs + " hours")
}

// FromStr parses a natural-language point in time ("5pm", "in 20 minutes")
// relative to now. Times without a date resolve to the future.
func FromStr(s string, now time.Time) (time.Time, error) {
	cfg := &dateparser.Configuration{
		CurrentTime:         now,
		PreferredDateSource: dateparser.Future,
	}

	d, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, err
	}

	return d.Time, nil
}

// MinutesUntil returns the number of whole minutes from now until t,
// rounded up so that the countdown never finishes early.
func MinutesUntil(now, t time.Time) int {
	return int(math.Ceil(t.Sub(now).Minutes()))
}
