package timer

import (
	"context"
	"log/slog"

	"github.com/ayoisaiah/quave/internal/clock"
	"github.com/ayoisaiah/quave/internal/models"
	"github.com/ayoisaiah/quave/internal/timeutil"
)

// LastUsedKey is the preference key holding the most recently started
// duration in minutes.
const LastUsedKey = "lastUsedTime"

const defaultMinutes = 20

type (
	// Store persists the single timer record. Load returns nil when there is
	// no usable record.
	Store interface {
		Load() (*models.TimerRecord, error)
		Save(rec *models.TimerRecord) error
		Delete() error
	}

	// Prefs is a string key/value preference store.
	Prefs interface {
		Get(key string) (string, error)
		Set(key, value string) error
	}

	// Alerter fires the expiry alert and reports which mechanism succeeded.
	Alerter interface {
		Dispatch(ctx context.Context, msg string) string
	}

	// Option configures a Service.
	Option func(*Service)
)

// Service runs the timer engine against persistent state. Calls are
// expected to be serialized by the host.
type Service struct {
	store          Store
	prefs          Prefs
	alerter        Alerter
	clock          clock.Clock
	defaultMinutes int
}

// WithClock overrides the wall clock.
func WithClock(c clock.Clock) Option {
	return func(s *Service) {
		s.clock = c
	}
}

// WithDefaultMinutes sets the fallback duration used when no last-used value
// is available.
func WithDefaultMinutes(m int) Option {
	return func(s *Service) {
		if m > 0 {
			s.defaultMinutes = m
		}
	}
}

// NewService returns a Service backed by the given collaborators.
func NewService(
	store Store,
	prefs Prefs,
	alerter Alerter,
	opts ...Option,
) *Service {
	s := &Service{
		store:          store,
		prefs:          prefs,
		alerter:        alerter,
		clock:          clock.Real{},
		defaultMinutes: defaultMinutes,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start replaces any existing timer with a new one. A non-positive minutes
// value selects the last used duration, or the default.
func (s *Service) Start(ctx context.Context, minutes float64) (models.TimerRecord, error) {
	if minutes <= 0 {
		minutes = s.resolveMinutes()
	}

	return s.begin(ctx, New(minutes, s.clock.Now()), timeutil.FormatMinutes(minutes))
}

// StartCustom validates free-form input before starting a timer. Nothing is
// persisted when the input is rejected.
func (s *Service) StartCustom(ctx context.Context, input string) (models.TimerRecord, error) {
	n, err := ParseCustomMinutes(input)
	if err != nil {
		return models.TimerRecord{}, err
	}

	return s.StartPreset(ctx, n, false)
}

// StartPreset starts a timer from a preset list. Presets from the custom
// list are labelled as custom timers.
func (s *Service) StartPreset(
	ctx context.Context,
	minutes int,
	custom bool,
) (models.TimerRecord, error) {
	if minutes <= 0 {
		return models.TimerRecord{}, errInvalidMinutes.Fmt(MinMinutes, MaxMinutes)
	}

	now := s.clock.Now()

	rec := New(float64(minutes), now)
	if custom {
		rec = NewCustom(float64(minutes), now)
	}

	return s.begin(ctx, rec, timeutil.FormatMinutes(float64(minutes)))
}

// StartSeconds starts a short timer without touching the last used
// duration. It backs the alert test mode.
func (s *Service) StartSeconds(
	ctx context.Context,
	seconds int,
	name string,
) (models.TimerRecord, error) {
	rec := fromSeconds(seconds, name, s.clock.Now())

	return s.begin(ctx, rec, "")
}

func (s *Service) begin(
	ctx context.Context,
	rec models.TimerRecord,
	remember string,
) (models.TimerRecord, error) {
	if err := s.store.Save(&rec); err != nil {
		return models.TimerRecord{}, errSaveTimer.Wrap(err)
	}

	slog.InfoContext(ctx, "timer started",
		slog.String("name", rec.Name),
		slog.Int("duration", rec.DurationSeconds),
	)

	if remember == "" {
		return rec, nil
	}

	if err := s.prefs.Set(LastUsedKey, remember); err != nil {
		slog.WarnContext(ctx, "unable to remember duration",
			slog.String("minutes", remember),
			slog.Any("error", err),
		)
	}

	return rec, nil
}

// Stop deletes the timer. It reports whether an active timer existed.
func (s *Service) Stop(ctx context.Context) (bool, error) {
	rec, err := s.store.Load()
	if err != nil {
		return false, errLoadTimer.Wrap(err)
	}

	if err := s.store.Delete(); err != nil {
		return false, errDeleteTimer.Wrap(err)
	}

	existed := rec != nil && rec.IsActive

	if existed {
		slog.InfoContext(ctx, "timer stopped", slog.String("name", rec.Name))
	}

	return existed, nil
}

// Restart begins a new run of the current timer, or starts a timer with the
// default duration when none exists.
func (s *Service) Restart(ctx context.Context) (models.TimerRecord, error) {
	rec, err := s.store.Load()
	if err != nil {
		return models.TimerRecord{}, errLoadTimer.Wrap(err)
	}

	if rec == nil {
		return s.StartPreset(ctx, s.defaultMinutes, false)
	}

	restarted := Restart(*rec, s.clock.Now())

	if err := s.store.Save(&restarted); err != nil {
		return models.TimerRecord{}, errSaveTimer.Wrap(err)
	}

	slog.InfoContext(ctx, "timer restarted", slog.String("name", restarted.Name))

	return restarted, nil
}

// Current returns the timer status without modifying any state.
func (s *Service) Current() (Status, error) {
	rec, err := s.store.Load()
	if err != nil {
		return Status{}, errLoadTimer.Wrap(err)
	}

	if rec == nil || !rec.IsActive {
		return Status{}, nil
	}

	return Status{
		Record:    rec,
		Remaining: RemainingSeconds(rec, s.clock.Now()),
	}, nil
}

// Tick is the periodic poll: it evaluates the stored timer at the current
// time, persists any alert bookkeeping and fires the alert when one is due.
// Without a timer it does nothing.
func (s *Service) Tick(ctx context.Context) (Status, error) {
	rec, err := s.store.Load()
	if err != nil {
		return Status{}, errLoadTimer.Wrap(err)
	}

	if rec == nil {
		return Status{}, nil
	}

	if !rec.IsActive {
		if err := s.store.Delete(); err != nil {
			return Status{}, errDeleteTimer.Wrap(err)
		}

		return Status{}, nil
	}

	now := s.clock.Now()

	updated, shouldAlert := EvaluateTick(*rec, now)

	status := Status{
		Record:    &updated,
		Remaining: RemainingSeconds(&updated, now),
	}

	if !shouldAlert {
		return status, nil
	}

	// persist before alerting: each count increment alerts at most once
	if err := s.store.Save(&updated); err != nil {
		status.Record = rec

		return status, errSaveTimer.Wrap(err)
	}

	status.Alerted = true
	status.AlertedBy = s.alerter.Dispatch(ctx, status.AlertMessage())

	slog.InfoContext(ctx, "timer alert",
		slog.String("name", updated.Name),
		slog.Int("remaining", status.Remaining),
		slog.Int("sounds_played", updated.SoundsPlayed),
		slog.String("mechanism", status.AlertedBy),
	)

	return status, nil
}

// DefaultMinutes is the configured fallback duration.
func (s *Service) DefaultMinutes() int {
	return s.defaultMinutes
}

func (s *Service) resolveMinutes() float64 {
	lastUsed, err := s.prefs.Get(LastUsedKey)
	if err != nil {
		slog.Warn("unable to read last used duration", slog.Any("error", err))
	}

	return ResolveMinutes(lastUsed, s.defaultMinutes)
}
