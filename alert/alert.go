// Package alert fires the timer's expiry alert. Alert mechanisms are tried
// in order until one of them succeeds; failures are logged and never
// returned to the caller.
package alert

import (
	"context"
	"io"
	"log/slog"

	"github.com/ayoisaiah/quave/internal/config"
)

// Strategy is a single alert mechanism.
type Strategy interface {
	Name() string
	Alert(ctx context.Context, msg string) error
}

// Dispatcher tries each strategy in turn.
type Dispatcher struct {
	strategies []Strategy
}

// NewDispatcher returns a Dispatcher that tries strategies in the given order.
func NewDispatcher(strategies ...Strategy) *Dispatcher {
	return &Dispatcher{
		strategies: strategies,
	}
}

// Strategies returns the names of the configured strategies in order.
func (d *Dispatcher) Strategies() []string {
	names := make([]string, len(d.strategies))

	for i, s := range d.strategies {
		names[i] = s.Name()
	}

	return names
}

// Dispatch fires the alert and returns the name of the strategy that
// succeeded, or an empty string if all of them failed.
func (d *Dispatcher) Dispatch(ctx context.Context, msg string) string {
	for _, s := range d.strategies {
		err := try(ctx, s, msg)
		if err == nil {
			return s.Name()
		}

		slog.WarnContext(ctx, "alert mechanism failed",
			slog.String("mechanism", s.Name()),
			slog.Any("error", err),
		)
	}

	return ""
}

func try(ctx context.Context, s Strategy, msg string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errStrategyPanic.Fmt(r)
		}
	}()

	return s.Alert(ctx, msg)
}

// FromConfig builds the default chain: sound command, sound file, tone,
// terminal bell, desktop notification and finally a console message.
func FromConfig(cfg *config.AlertConfig, soundDir string, w io.Writer) *Dispatcher {
	var chain []Strategy

	if cfg.SoundCmd != "" {
		chain = append(chain, NewCommand(cfg.SoundCmd))
	}

	if cfg.SoundFile != "" {
		chain = append(chain, NewSoundFile(ResolveSound(cfg.SoundFile, soundDir)))
	}

	if cfg.Tone {
		chain = append(chain, NewTone(), Bell{})
	}

	if cfg.Notify {
		chain = append(chain, NewNotification(cfg.Title))
	}

	chain = append(chain, NewConsole(w))

	return NewDispatcher(chain...)
}
