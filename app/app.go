// Package app defines the quave command-line interface
package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/quave/internal/config"
	"github.com/ayoisaiah/quave/internal/pathutil"
	"github.com/ayoisaiah/quave/internal/static"
)

const (
	envNoColor      = "NO_COLOR"
	envQuaveNoColor = "QUAVE_NO_COLOR"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the quave app instance.
func Get() *cli.App {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	quaveApp := &cli.App{
		Name: "quave",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Quave is a single countdown timer for the command-line. The timer 
		survives restarts and keeps alerting once per minute after it runs out 
		until it is stopped.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:      "start",
				Usage:     "Start a timer for the given minutes, or the last used duration",
				ArgsUsage: "[minutes]",
				Flags:     []cli.Flag{untilFlag, customFlag},
				Action:    startAction,
			},
			{
				Name:   "stop",
				Usage:  "Stop the timer",
				Action: stopAction,
			},
			{
				Name:   "restart",
				Usage:  "Start the current timer again from the beginning",
				Action: restartAction,
			},
			{
				Name:   "change",
				Usage:  "Pick a preset or enter a custom duration",
				Flags:  []cli.Flag{customFlag},
				Action: changeAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the timer",
				Flags:  []cli.Flag{jsonFlag, peekFlag},
				Action: statusAction,
			},
			{
				Name:   "watch",
				Usage:  "Show a live countdown",
				Action: watchAction,
			},
			{
				Name:   "daemon",
				Usage:  "Poll the timer in the background and fire alerts",
				Action: daemonAction,
			},
			{
				Name:   "test-alert",
				Usage:  "Start a five second timer to try the alert",
				Flags:  []cli.Flag{nowFlag},
				Action: testAlertAction,
			},
			{
				Name:   "presets",
				Usage:  "List the preset durations",
				Action: presetsAction,
			},
			{
				Name:   "sounds",
				Usage:  "List the alert sounds in the sound directory",
				Action: soundsAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			defaultMinutesFlag,
			pollIntervalFlag,
			soundCmdFlag,
			soundFileFlag,
			disableNotificationFlag,
			noToneFlag,
			noColorFlag,
			debugFlag,
		},
		Action: watchAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return quaveApp
}

func beforeAction(ctx *cli.Context) error {
	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/quave/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if QUAVE_NO_COLOR is set
	if _, exists := os.LookupEnv(envQuaveNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	if err := pathutil.Initialize(); err != nil {
		return err
	}

	if err := static.Install(pathutil.DataDir()); err != nil {
		return err
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	if logCloser == nil {
		return nil
	}

	slog.InfoContext(ctx.Context, "exiting quave")

	return logCloser.Close()
}
