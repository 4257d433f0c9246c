package ui

import (
	"github.com/pterm/pterm"
)

// DarkTheme selects the light variants of each colour.
var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// Countdown colours a formatted countdown according to how much time is
// left: green while running, yellow in the final minute, red once overdue.
func Countdown(remaining int, text string) string {
	switch {
	case remaining <= 0:
		return Red(text)
	case remaining <= 60:
		return Yellow(text)
	default:
		return Green(text)
	}
}
