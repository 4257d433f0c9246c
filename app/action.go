package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/quave/alert"
	"github.com/ayoisaiah/quave/internal/config"
	"github.com/ayoisaiah/quave/internal/models"
	"github.com/ayoisaiah/quave/internal/timeutil"
	"github.com/ayoisaiah/quave/internal/ui"
	"github.com/ayoisaiah/quave/report"
	"github.com/ayoisaiah/quave/timer"
	"github.com/ayoisaiah/quave/tui"
)

const (
	testTimerSeconds = 5
	testTimerName    = "Test Timer"
	testAlertMessage = "Quave test alert"
)

// statusOutput is the JSON shape printed by `status --json`.
type statusOutput struct {
	timer.Status
	Title    string  `json:"title"`
	Tooltip  string  `json:"tooltip"`
	Progress float64 `json:"progress"`
}

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// startAction handles the start command. Without arguments the last used
// duration (or the default) is started.
func startAction(ctx *cli.Context) error {
	d, err := load(ctx, config.Stderr)
	if err != nil {
		return err
	}

	return d.start(
		ctx.Context,
		ctx.Args().First(),
		ctx.String("until"),
		ctx.Bool("custom"),
	)
}

func (d *deps) start(
	ctx context.Context,
	arg, until string,
	custom bool,
) error {
	minutes, err := d.requestedMinutes(arg, until)
	if err != nil {
		return err
	}

	var rec models.TimerRecord

	if minutes == 0 {
		rec, err = d.svc.Start(ctx, 0)
	} else {
		rec, err = d.svc.StartPreset(ctx, minutes, custom)
	}

	if err != nil {
		return err
	}

	report.TimerStarted(d.out, &rec, d.endTime(&rec))

	return nil
}

// requestedMinutes validates the duration given on the command line. Zero
// means none was given.
func (d *deps) requestedMinutes(arg, until string) (int, error) {
	if until != "" {
		now := d.clock.Now()

		t, err := timeutil.FromStr(until, now)
		if err != nil {
			return 0, errParseUntil.Fmt(until).Wrap(err)
		}

		minutes := timeutil.MinutesUntil(now, t)
		if minutes < timer.MinMinutes {
			return 0, errUntilPast
		}

		return minutes, timer.ValidateMinutes(minutes)
	}

	if arg == "" {
		return 0, nil
	}

	return timer.ParseCustomMinutes(arg)
}

// stopAction handles the stop command.
func stopAction(ctx *cli.Context) error {
	d, err := load(ctx, config.Stderr)
	if err != nil {
		return err
	}

	return d.stop(ctx.Context)
}

func (d *deps) stop(ctx context.Context) error {
	existed, err := d.svc.Stop(ctx)
	if err != nil {
		return err
	}

	if !existed {
		report.NoActiveTimer(d.out)
		return nil
	}

	report.TimerStopped(d.out)

	return nil
}

// restartAction handles the restart command.
func restartAction(ctx *cli.Context) error {
	d, err := load(ctx, config.Stderr)
	if err != nil {
		return err
	}

	return d.restart(ctx.Context)
}

func (d *deps) restart(ctx context.Context) error {
	rec, err := d.svc.Restart(ctx)
	if err != nil {
		return err
	}

	report.TimerRestarted(d.out, &rec, d.endTime(&rec))

	return nil
}

// changeAction lets the user pick a preset, or type a custom duration.
func changeAction(ctx *cli.Context) error {
	d, err := load(ctx, config.Stderr)
	if err != nil {
		return err
	}

	custom := ctx.Bool("custom")

	presets := d.cfg.Timer.Presets
	if custom {
		presets = d.cfg.Timer.CustomPresets
	}

	minutes, err := selectPreset(presets, custom)
	if err != nil {
		return errPromptFailed.Wrap(err)
	}

	var rec models.TimerRecord

	if minutes == otherOption {
		input, err := promptCustomMinutes()
		if err != nil {
			return errPromptFailed.Wrap(err)
		}

		rec, err = d.svc.StartCustom(ctx.Context, input)
		if err != nil {
			return err
		}
	} else {
		rec, err = d.svc.StartPreset(ctx.Context, minutes, custom)
		if err != nil {
			return err
		}
	}

	report.TimerStarted(d.out, &rec, d.endTime(&rec))

	return nil
}

// statusAction runs a single tick and prints the result. Status bar
// integrations call it on an interval.
func statusAction(ctx *cli.Context) error {
	d, err := load(ctx, config.Stderr)
	if err != nil {
		return err
	}

	return d.status(ctx.Context, ctx.Bool("json"), ctx.Bool("peek"))
}

func (d *deps) status(ctx context.Context, asJSON, peek bool) error {
	poll := d.svc.Tick
	if peek {
		poll = func(context.Context) (timer.Status, error) {
			return d.svc.Current()
		}
	}

	st, err := poll(ctx)
	if err != nil {
		return err
	}

	if asJSON {
		b, err := json.Marshal(statusOutput{
			Status:   st,
			Title:    st.Title(),
			Tooltip:  st.Tooltip(),
			Progress: st.Progress(),
		})
		if err != nil {
			return err
		}

		fmt.Fprintln(d.out, string(b))

		return nil
	}

	if !st.Active() {
		fmt.Fprintln(d.out, st.Tooltip())
		return nil
	}

	fmt.Fprintf(
		d.out,
		"%s  %s\n",
		ui.Countdown(st.Remaining, st.Title()),
		st.Tooltip(),
	)

	return nil
}

// watchAction opens the interactive countdown view.
func watchAction(ctx *cli.Context) error {
	// the view shows alerts itself; console output would garble it
	d, err := load(ctx, io.Discard)
	if err != nil {
		return err
	}

	m, err := tui.New(ctx.Context, d.svc, tui.Options{
		StatePath:    d.cfg.System.StatePath,
		PollInterval: d.cfg.Timer.PollInterval,
		TimeFormat:   d.cfg.TimeFormat(),
		DarkTheme:    d.cfg.Display.DarkTheme,
	})
	if err != nil {
		return err
	}

	defer m.Close()

	_, err = tea.NewProgram(m).Run()

	return err
}

// daemonAction polls the timer in the background until interrupted.
func daemonAction(ctx *cli.Context) error {
	d, err := load(ctx, config.Stderr)
	if err != nil {
		return err
	}

	sigCtx, stop := signal.NotifyContext(
		ctx.Context,
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	return d.runDaemon(sigCtx)
}

// testAlertAction starts a five second timer so that the whole alert path
// can be observed, or fires the alert chain directly with --now.
func testAlertAction(ctx *cli.Context) error {
	d, err := load(ctx, config.Stderr)
	if err != nil {
		return err
	}

	return d.testAlert(ctx.Context, ctx.Bool("now"))
}

func (d *deps) testAlert(ctx context.Context, now bool) error {
	if now {
		report.AlertDispatched(d.out, d.alerter.Dispatch(ctx, testAlertMessage))
		return nil
	}

	rec, err := d.svc.StartSeconds(ctx, testTimerSeconds, testTimerName)
	if err != nil {
		return err
	}

	report.TimerStarted(d.out, &rec, d.endTime(&rec))

	return nil
}

// presetsAction prints the preset durations offered by the change command.
func presetsAction(ctx *cli.Context) error {
	d, err := load(ctx, config.Stderr)
	if err != nil {
		return err
	}

	d.printPresets()

	return nil
}

func (d *deps) printPresets() {
	data := [][]string{{"#", "MINUTES", "H:MM", "LABEL", "MENU"}}

	add := func(presets []int, menu string) {
		for _, p := range presets {
			hrs, mins := timeutil.MinsToHoursAndMins(p)

			data = append(data, []string{
				strconv.Itoa(len(data)),
				strconv.Itoa(p),
				fmt.Sprintf("%d:%02d", hrs, mins),
				timeutil.MinutesLabel(p),
				menu,
			})
		}
	}

	add(d.cfg.Timer.Presets, "presets")
	add(d.cfg.Timer.CustomPresets, timer.CustomName)

	ui.PrintTable(data, d.out)
}

// soundsAction lists the alert sounds available in the sound directory.
func soundsAction(ctx *cli.Context) error {
	d, err := load(ctx, config.Stderr)
	if err != nil {
		return err
	}

	return d.printSounds()
}

func (d *deps) printSounds() error {
	sounds, err := alert.Sounds(d.cfg.System.SoundDir)
	if err != nil {
		return err
	}

	if len(sounds) == 0 {
		pterm.Info.WithWriter(d.out).Printfln(
			"no sounds found in %s",
			d.cfg.System.SoundDir,
		)

		return nil
	}

	for _, s := range sounds {
		fmt.Fprintln(d.out, s)
	}

	return nil
}

// editConfigAction opens the config file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	d, err := load(ctx, config.Stderr)
	if err != nil {
		return err
	}

	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, d.cfg.System.ConfigPath)

	cmd.Stderr = config.Stderr
	cmd.Stdin = config.Stdin
	cmd.Stdout = config.Stdout

	return cmd.Run()
}
