package alert

import (
	"context"
	"fmt"
	"io"

	"github.com/gen2brain/beeep"
	"github.com/pterm/pterm"
)

const defaultTitle = "Quave Timer"

// Bell sounds the system beep.
type Bell struct{}

func (Bell) Name() string {
	return "bell"
}

func (Bell) Alert(_ context.Context, _ string) error {
	return beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
}

// Notification shows a desktop notification.
type Notification struct {
	title string
	icon  string
}

func NewNotification(title string) *Notification {
	if title == "" {
		title = defaultTitle
	}

	return &Notification{title: title}
}

func (n *Notification) Name() string {
	return "notification"
}

func (n *Notification) Alert(_ context.Context, msg string) error {
	return beeep.Notify(n.title, msg, n.icon)
}

// Console writes the alert to the terminal. It is the last resort and
// always succeeds.
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Name() string {
	return "console"
}

func (c *Console) Alert(_ context.Context, msg string) error {
	// terminal bell
	fmt.Fprint(c.w, "\a")

	pterm.Warning.WithWriter(c.w).Println(msg)

	return nil
}
