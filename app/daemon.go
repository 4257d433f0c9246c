package app

import (
	"context"
	"log/slog"

	"github.com/go-co-op/gocron/v2"
)

// runDaemon ticks the timer every poll interval until ctx is cancelled.
func (d *deps) runDaemon(ctx context.Context) error {
	s, err := gocron.NewScheduler()
	if err != nil {
		return errCreateScheduler.Wrap(err)
	}

	_, err = s.NewJob(
		gocron.DurationJob(d.cfg.Timer.PollInterval),
		gocron.NewTask(func() {
			d.tick(ctx)
		}),
		gocron.WithName("timer-tick"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		_ = s.Shutdown()
		return errScheduleTick.Wrap(err)
	}

	slog.InfoContext(ctx, "daemon started",
		slog.Duration("poll_interval", d.cfg.Timer.PollInterval),
	)

	s.Start()

	<-ctx.Done()

	slog.InfoContext(ctx, "daemon stopping")

	return s.Shutdown()
}

// tick runs one poll. Failures are logged and the next poll proceeds.
func (d *deps) tick(ctx context.Context) {
	st, err := d.svc.Tick(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "timer tick failed", slog.Any("error", err))
		return
	}

	slog.DebugContext(ctx, "timer tick",
		slog.Bool("active", st.Active()),
		slog.Int("remaining", st.Remaining),
		slog.Bool("alerted", st.Alerted),
	)
}
