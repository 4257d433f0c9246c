package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Write debug-level entries to the log file",
	}

	defaultMinutesFlag = &cli.IntFlag{
		Name:    "default",
		Aliases: []string{"D"},
		Usage:   "Duration in minutes used when no last-used value exists (default: 20)",
	}

	pollIntervalFlag = &cli.StringFlag{
		Name:    "poll-interval",
		Aliases: []string{"p"},
		Usage:   "How often watch and daemon check the timer, e.g. 10s or 10 (default: 10s)",
	}

	soundCmdFlag = &cli.StringFlag{
		Name:    "sound-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Command that plays the alert sound. Disable by setting to 'off'",
	}

	soundFileFlag = &cli.StringFlag{
		Name:  "sound-file",
		Usage: "Audio file (mp3, ogg, flac, wav) or sound name played when the command fails. Disable by setting to 'off'",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the desktop notification that appears when the timer expires",
	}

	noToneFlag = &cli.BoolFlag{
		Name:  "no-tone",
		Usage: "Disable the synthesized beep fallback",
	}

	untilFlag = &cli.StringFlag{
		Name:    "until",
		Aliases: []string{"u"},
		Usage:   "Run the timer until a point in time (e.g. '5pm', 'in 2 hours')",
	}

	customFlag = &cli.BoolFlag{
		Name:    "custom",
		Aliases: []string{"c"},
		Usage:   "Label the timer as a custom timer, or pick from the custom presets",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	peekFlag = &cli.BoolFlag{
		Name:  "peek",
		Usage: "Show the timer without polling it, so no alert fires",
	}

	nowFlag = &cli.BoolFlag{
		Name:  "now",
		Usage: "Fire the alert immediately instead of starting a short timer",
	}
)
