package alert

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"
)

const commandTimeout = 10 * time.Second

// Command plays a system sound by running an external player.
type Command struct {
	cmdline string
	timeout time.Duration
}

// NewCommand returns a strategy that runs cmdline, e.g.
// "afplay /System/Library/Sounds/Glass.aiff".
func NewCommand(cmdline string) *Command {
	return &Command{
		cmdline: cmdline,
		timeout: commandTimeout,
	}
}

func (c *Command) Name() string {
	return "sound command"
}

func (c *Command) Alert(ctx context.Context, _ string) error {
	if strings.TrimSpace(c.cmdline) == "" {
		return errNoCommand
	}

	cmdSlice, err := shellquote.Split(c.cmdline)
	if err != nil {
		return errParseCommand.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return errNoCommand
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.CommandContext(ctx, name, args...)

	if err := cmd.Run(); err != nil {
		return errCommandFailed.Fmt(name).Wrap(err)
	}

	return nil
}
