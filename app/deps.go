package app

import (
	"io"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/quave/alert"
	"github.com/ayoisaiah/quave/internal/clock"
	"github.com/ayoisaiah/quave/internal/config"
	"github.com/ayoisaiah/quave/internal/models"
	"github.com/ayoisaiah/quave/internal/pathutil"
	"github.com/ayoisaiah/quave/internal/ui"
	"github.com/ayoisaiah/quave/store"
	"github.com/ayoisaiah/quave/timer"
)

// deps bundles everything a command needs to operate the timer.
type deps struct {
	cfg     *config.Config
	svc     *timer.Service
	alerter timer.Alerter
	clock   clock.Clock
	out     io.Writer
}

// load reads the configuration, starts the log file and opens the timer
// state and preferences. Console alerts are written to console so that they
// never mix with command output.
func load(ctx *cli.Context, console io.Writer) (*deps, error) {
	sys := config.SystemConfig{
		ConfigPath: pathutil.ConfigFilePath(),
		StatePath:  pathutil.StateFilePath(),
		PrefsPath:  pathutil.PrefsFilePath(),
		LogPath:    pathutil.LogFilePath(),
		SoundDir:   pathutil.SoundDir(),
		Debug:      ctx.Bool("debug"),
	}

	cfg, err := config.New(
		config.WithSystemConfig(sys),
		config.WithViperConfig(sys.ConfigPath),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return nil, err
	}

	setupLogger(cfg.System.LogPath, cfg.System.Debug)

	prefs, err := store.NewPrefs(cfg.System.PrefsPath)
	if err != nil {
		return nil, errOpenPrefs.Wrap(err)
	}

	return wire(
		cfg,
		store.NewFile(cfg.System.StatePath),
		prefs,
		clock.Real{},
		console,
	), nil
}

// wire builds the default alert chain and the service. Command output goes
// to config.Stdout.
func wire(
	cfg *config.Config,
	st timer.Store,
	prefs timer.Prefs,
	c clock.Clock,
	console io.Writer,
) *deps {
	dispatcher := alert.FromConfig(&cfg.Alert, cfg.System.SoundDir, console)

	return newDeps(cfg, st, prefs, dispatcher, c, config.Stdout)
}

func newDeps(
	cfg *config.Config,
	st timer.Store,
	prefs timer.Prefs,
	alerter timer.Alerter,
	c clock.Clock,
	out io.Writer,
) *deps {
	ui.DarkTheme = cfg.Display.DarkTheme

	svc := timer.NewService(
		st,
		prefs,
		alerter,
		timer.WithClock(c),
		timer.WithDefaultMinutes(cfg.Timer.DefaultMinutes),
	)

	return &deps{
		cfg:     cfg,
		svc:     svc,
		alerter: alerter,
		clock:   c,
		out:     out,
	}
}

// endTime formats the wall-clock time at which rec reaches zero.
func (d *deps) endTime(rec *models.TimerRecord) string {
	return rec.StartedAt().Add(rec.Duration()).Format(d.cfg.TimeFormat())
}
