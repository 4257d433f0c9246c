package app

import (
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/quave/internal/timeutil"
	"github.com/ayoisaiah/quave/timer"
)

// otherOption is the select value that leads to the custom duration input.
const otherOption = 0

// selectPreset asks the user to pick one of the presets.
func selectPreset(presets []int, custom bool) (int, error) {
	title := "Start a timer"
	if custom {
		title = "Start a custom timer"
	}

	options := make([]huh.Option[int], 0, len(presets)+1)

	for _, p := range presets {
		options = append(options, huh.NewOption(timeutil.MinutesLabel(p), p))
	}

	options = append(options, huh.NewOption("Other...", otherOption))

	var minutes int

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(title).
				Options(options...).
				Value(&minutes),
		),
	)

	if err := form.Run(); err != nil {
		return 0, err
	}

	return minutes, nil
}

// promptCustomMinutes reads a custom duration. The form refuses values
// outside the accepted range.
func promptCustomMinutes() (string, error) {
	var input string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Custom duration").
				Description("Minutes, from 1 to 999").
				Placeholder("20").
				Validate(validateCustomMinutes).
				Value(&input),
		),
	)

	if err := form.Run(); err != nil {
		return "", err
	}

	return input, nil
}

func validateCustomMinutes(s string) error {
	_, err := timer.ParseCustomMinutes(s)
	return err
}
