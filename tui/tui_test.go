package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/quave/internal/clock"
	"github.com/ayoisaiah/quave/store"
	"github.com/ayoisaiah/quave/timer"
)

var epoch = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

type silentAlerter struct {
	count int
}

func (a *silentAlerter) Dispatch(_ context.Context, _ string) string {
	a.count++
	return "test"
}

type fixture struct {
	mem    *store.Memory
	clock  *clock.Fake
	alerts *silentAlerter
	model  *Model
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		mem:    store.NewMemory(),
		clock:  clock.NewFake(epoch),
		alerts: &silentAlerter{},
	}

	svc := timer.NewService(
		f.mem,
		f.mem,
		f.alerts,
		timer.WithClock(f.clock),
		timer.WithDefaultMinutes(20),
	)

	m, err := New(context.Background(), svc, Options{
		PollInterval: time.Second,
		TimeFormat:   "15:04:05",
	})
	require.NoError(t, err)

	f.model = m

	return f
}

func keyPress(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

// send delivers msg and runs the commands it returns, feeding status
// results back into the model. The command left over after that, such as
// the next scheduled tick, is returned without being run.
func (f *fixture) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()

	_, cmd := f.model.Update(msg)

	return f.settle(cmd)
}

func (f *fixture) settle(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}

	switch msg := cmd().(type) {
	case statusMsg:
		_, next := f.model.Update(msg)
		return next

	case tea.BatchMsg:
		var last tea.Cmd

		for _, c := range msg {
			if next := f.settle(c); next != nil {
				last = next
			}
		}

		return last
	}

	return nil
}

func TestIdleView(t *testing.T) {
	f := newFixture(t)

	cmd := f.send(t, tickMsg(epoch))

	assert.NotNil(t, cmd, "tick must schedule the next poll")
	assert.False(t, f.model.Status().Active())
	assert.Contains(t, f.model.View(), "No timer running")
}

func TestStartKey(t *testing.T) {
	f := newFixture(t)

	f.send(t, keyPress("s"))

	st := f.model.Status()
	require.True(t, st.Active())
	assert.Equal(t, "20 min Timer", st.Record.Name)

	f.clock.Advance(61 * time.Second)
	f.send(t, tickMsg(f.clock.Now()))

	view := f.model.View()
	assert.Contains(t, view, "20 min Timer - 18m 59s remaining")
	assert.Contains(t, view, "until "+epoch.Add(20*time.Minute).Local().Format("15:04:05"))
}

func TestStopKey(t *testing.T) {
	f := newFixture(t)

	f.send(t, keyPress("s"))
	f.send(t, keyPress("x"))

	assert.False(t, f.model.Status().Active())

	rec, err := f.mem.Load()
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestRestartKey(t *testing.T) {
	f := newFixture(t)

	f.send(t, keyPress("s"))

	f.clock.Advance(5 * time.Minute)
	f.send(t, keyPress("r"))

	st := f.model.Status()
	require.True(t, st.Active())
	assert.Equal(t, 1200, st.Remaining)
}

func TestOverdueAlertsOncePerMinute(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.mem.Set(timer.LastUsedKey, "1"))
	f.send(t, keyPress("s"))

	f.clock.Advance(time.Minute)
	f.send(t, tickMsg(f.clock.Now()))
	f.send(t, tickMsg(f.clock.Now()))

	assert.Equal(t, 1, f.alerts.count)
	assert.Contains(t, f.model.View(), "overdue by 0s")
	assert.Contains(t, f.model.View(), "ended at "+epoch.Add(time.Minute).Local().Format("15:04:05"))

	f.clock.Advance(time.Minute)
	f.send(t, stateChangedMsg{})

	assert.Equal(t, 2, f.alerts.count)
}

func TestTickFailureShowsNotice(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.mem.Set(timer.LastUsedKey, "1"))
	f.send(t, keyPress("s"))

	f.mem.SaveErr = errors.New("disk full")
	f.clock.Advance(2 * time.Minute)

	cmd := f.send(t, tickMsg(f.clock.Now()))

	assert.NotNil(t, cmd, "polling continues after a failure")
	assert.Contains(t, f.model.View(), "disk full")
	assert.Zero(t, f.alerts.count)

	f.mem.SaveErr = nil
	f.send(t, tickMsg(f.clock.Now()))

	assert.NotContains(t, f.model.View(), "disk full")
	assert.Equal(t, 1, f.alerts.count)
}

func TestAlertShownInView(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.mem.Set(timer.LastUsedKey, "1"))
	f.send(t, keyPress("s"))

	f.clock.Advance(61 * time.Second)
	f.send(t, tickMsg(f.clock.Now()))

	assert.Contains(t, f.model.View(), "1 min Timer finished!")

	f.send(t, keyPress("r"))

	assert.NotContains(t, f.model.View(), "finished!")
}

type blockingAlerter struct {
	started chan struct{}
	release chan struct{}
}

func (a *blockingAlerter) Dispatch(_ context.Context, _ string) string {
	close(a.started)
	<-a.release

	return "test"
}

func TestInputDuringAlert(t *testing.T) {
	mem := store.NewMemory()
	fake := clock.NewFake(epoch)
	alerter := &blockingAlerter{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}

	svc := timer.NewService(mem, mem, alerter, timer.WithClock(fake))

	m, err := New(context.Background(), svc, Options{
		PollInterval: time.Second,
		TimeFormat:   "15:04:05",
	})
	require.NoError(t, err)

	_, err = svc.Start(context.Background(), 1)
	require.NoError(t, err)

	fake.Advance(time.Minute)

	_, tickCmd := m.Update(tickMsg(fake.Now()))
	require.NotNil(t, tickCmd)

	msgs := make(chan tea.Msg, 1)

	go func() {
		msgs <- tickCmd()
	}()

	select {
	case <-alerter.started:
	case <-time.After(5 * time.Second):
		t.Fatal("alert never started")
	}

	// the model keeps handling keys and rendering while the alert plays
	_, stopCmd := m.Update(keyPress("x"))
	require.NotNil(t, stopCmd)
	assert.NotEmpty(t, m.View())

	close(alerter.release)

	select {
	case msg := <-msgs:
		m.Update(msg)
	case <-time.After(5 * time.Second):
		t.Fatal("tick did not finish")
	}

	assert.True(t, m.Status().Alerted)
	assert.Contains(t, m.View(), "1 min Timer finished!")

	m.Update(stopCmd())

	assert.False(t, m.Status().Active())
	assert.NotContains(t, m.View(), "finished!")
}

func TestQuitKey(t *testing.T) {
	f := newFixture(t)

	_, cmd := f.model.Update(keyPress("q"))
	require.NotNil(t, cmd)

	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestWatchStateFile(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "timer.json")

	svc := timer.NewService(store.NewMemory(), store.NewMemory(), &silentAlerter{})

	m, err := New(context.Background(), svc, Options{
		StatePath:    statePath,
		PollInterval: time.Second,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = m.Close()
	})

	msgs := make(chan tea.Msg, 1)

	go func() {
		msgs <- m.waitForChange()()
	}()

	// unrelated files in the directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(statePath), "other"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(statePath, []byte("{}"), 0o600))

	select {
	case msg := <-msgs:
		assert.Equal(t, stateChangedMsg{}, msg)
	case <-time.After(5 * time.Second):
		t.Fatal("no state change reported")
	}
}
