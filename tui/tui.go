// Package tui renders a live countdown of the persisted timer
package tui

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"
	"github.com/fsnotify/fsnotify"

	"github.com/ayoisaiah/quave/internal/models"
	"github.com/ayoisaiah/quave/internal/osutil"
	"github.com/ayoisaiah/quave/timer"
)

const stateChangeOps = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename

// Service is the subset of the timer service driven by the view.
type Service interface {
	Tick(ctx context.Context) (timer.Status, error)
	Start(ctx context.Context, minutes float64) (models.TimerRecord, error)
	Stop(ctx context.Context) (bool, error)
	Restart(ctx context.Context) (models.TimerRecord, error)
}

// Options configures the view.
type Options struct {
	// StatePath is watched so that changes made by other commands show up
	// before the next poll. Leave empty to rely on polling alone.
	StatePath    string
	TimeFormat   string
	PollInterval time.Duration
	DarkTheme    bool
}

type (
	tickMsg         time.Time
	stateChangedMsg struct{}
	watchErrMsg     struct{ err error }

	statusMsg struct {
		err      error
		status   timer.Status
		fromTick bool
	}
)

// Model is the bubbletea model of the watch view.
type Model struct {
	ctx      context.Context
	svc      Service
	watcher  *fsnotify.Watcher
	status   timer.Status
	styles   styles
	opts     Options
	notice   string
	alert    string
	help     help.Model
	progress progress.Model
	mu       sync.Mutex
}

// New returns a Model polling svc at opts.PollInterval.
func New(ctx context.Context, svc Service, opts Options) (*Model, error) {
	m := &Model{
		ctx:      ctx,
		svc:      svc,
		opts:     opts,
		styles:   newStyles(opts.DarkTheme),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient()),
	}

	if opts.StatePath == "" {
		return m, nil
	}

	dir := filepath.Dir(opts.StatePath)

	if err := os.MkdirAll(dir, osutil.DirPermission); err != nil {
		return nil, errWatchState.Fmt(dir).Wrap(err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errWatchState.Fmt(dir).Wrap(err)
	}

	// the state file is replaced on every save, so watch its directory
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, errWatchState.Fmt(dir).Wrap(err)
	}

	m.watcher = w

	return m, nil
}

// Close stops watching the state file.
func (m *Model) Close() error {
	if m.watcher == nil {
		return nil
	}

	return m.watcher.Close()
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return tickMsg(time.Now()) },
		m.waitForChange(),
	)
}

func (m *Model) scheduleTick() tea.Cmd {
	return tea.Tick(m.opts.PollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// waitForChange blocks until the state file is written, created or removed.
func (m *Model) waitForChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}

	name := filepath.Base(m.opts.StatePath)

	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-m.watcher.Events:
				if !ok {
					return nil
				}

				if filepath.Base(ev.Name) != name || ev.Op&stateChangeOps == 0 {
					continue
				}

				return stateChangedMsg{}

			case err, ok := <-m.watcher.Errors:
				if !ok {
					return nil
				}

				return watchErrMsg{err: err}
			}
		}
	}
}

// poll returns a command that runs one tick of the timer, after action
// when one is given. Alerts play inside the command so the view stays
// responsive; mu keeps service calls in order.
func (m *Model) poll(action func() error, fromTick bool) tea.Cmd {
	return func() tea.Msg {
		m.mu.Lock()
		defer m.mu.Unlock()

		if action != nil {
			if err := action(); err != nil {
				return statusMsg{err: err, fromTick: fromTick}
			}
		}

		st, err := m.svc.Tick(m.ctx)

		return statusMsg{status: st, err: err, fromTick: fromTick}
	}
}

// applyStatus records a poll result. A failure is shown until the next
// successful poll.
func (m *Model) applyStatus(msg statusMsg) {
	if msg.err != nil {
		slog.ErrorContext(m.ctx, "timer update failed", slog.Any("error", msg.err))

		m.notice = msg.err.Error()

		if msg.status.Active() {
			m.status = msg.status
		}

		return
	}

	m.notice = ""
	m.status = msg.status

	switch {
	case !m.status.Overdue():
		m.alert = ""
	case m.status.Alerted:
		m.alert = m.status.AlertMessage()
	}
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.start):
		return m, m.poll(func() error {
			_, err := m.svc.Start(m.ctx, 0)
			return err
		}, false)

	case key.Matches(msg, defaultKeymap.stop):
		return m, m.poll(func() error {
			_, err := m.svc.Stop(m.ctx)
			return err
		}, false)

	case key.Matches(msg, defaultKeymap.restart):
		return m, m.poll(func() error {
			_, err := m.svc.Restart(m.ctx)
			return err
		}, false)

	case key.Matches(msg, defaultKeymap.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if slog.Default().Enabled(m.ctx, slog.LevelDebug) {
		slog.DebugContext(m.ctx, spew.Sdump(msg))
	}

	switch msg := msg.(type) {
	case tickMsg:
		return m, m.poll(nil, true)

	case statusMsg:
		m.applyStatus(msg)

		// only the tick chain schedules the next tick
		if msg.fromTick {
			return m, m.scheduleTick()
		}

		return m, nil

	case stateChangedMsg:
		return m, tea.Batch(m.poll(nil, false), m.waitForChange())

	case watchErrMsg:
		m.notice = errWatcher.Wrap(msg.err).Error()

		return m, m.waitForChange()

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.progress.Width = min(msg.Width-padding*2-4, maxWidth)

		return m, nil
	}

	return m, nil
}

// Status returns the most recently polled timer status.
func (m *Model) Status() timer.Status {
	return m.status
}

func (m *Model) timerView() string {
	var s strings.Builder

	rec := m.status.Record

	s.WriteString(m.styles.title.Render(rec.Name))
	s.WriteString(" ")

	end := rec.StartedAt().Add(rec.Duration()).Format(m.opts.TimeFormat)

	if m.status.Overdue() {
		s.WriteString(m.styles.hint.Render("ended at " + end))
	} else {
		s.WriteString(m.styles.hint.Render("until " + end))
	}

	s.WriteString("\n\n")

	countdown := m.styles.countdown
	if m.status.Overdue() {
		countdown = m.styles.overdue
	}

	s.WriteString(countdown.Render(m.status.Tooltip()))
	s.WriteString("\n\n")
	s.WriteString(m.progress.ViewAs(m.status.Progress()))

	return s.String()
}

func (m *Model) idleView() string {
	return m.styles.hint.Render("No timer running")
}

func (m *Model) View() string {
	var s strings.Builder

	if m.status.Active() {
		s.WriteString(m.timerView())
	} else {
		s.WriteString(m.idleView())
	}

	if m.alert != "" {
		s.WriteString("\n\n" + m.styles.overdue.Render(m.alert))
	}

	if m.notice != "" {
		s.WriteString("\n\n" + m.styles.notice.Render(m.notice))
	}

	s.WriteString("\n\n" + m.help.ShortHelpView([]key.Binding{
		defaultKeymap.start,
		defaultKeymap.stop,
		defaultKeymap.restart,
		defaultKeymap.quit,
	}))

	return m.styles.base.Render(s.String())
}
