// Package report prints the outcome of timer commands to the terminal
package report

import (
	"io"
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/quave/internal/models"
	"github.com/ayoisaiah/quave/internal/osutil"
	"github.com/ayoisaiah/quave/internal/ui"
)

const noActiveTimerMsg = "no timer is running"

func TimerStarted(w io.Writer, rec *models.TimerRecord, until string) {
	pterm.Success.WithWriter(w).Printfln(
		"%s started, ends at %s",
		rec.Name,
		ui.Highlight(until),
	)
}

func TimerRestarted(w io.Writer, rec *models.TimerRecord, until string) {
	pterm.Success.WithWriter(w).Printfln(
		"%s restarted, ends at %s",
		rec.Name,
		ui.Highlight(until),
	)
}

func TimerStopped(w io.Writer) {
	pterm.Success.WithWriter(w).Println("timer stopped")
}

func NoActiveTimer(w io.Writer) {
	pterm.Info.WithWriter(w).Println(noActiveTimerMsg)
}

// AlertDispatched reports which alert mechanism handled a test alert.
func AlertDispatched(w io.Writer, mechanism string) {
	if mechanism == "" {
		pterm.Warning.WithWriter(w).Println("no alert mechanism succeeded")
		return
	}

	pterm.Success.WithWriter(w).Printfln("alert delivered via %s", mechanism)
}

func Error(err error) {
	pterm.Error.Println(err)
}

func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(int(osutil.ExitError))
}
