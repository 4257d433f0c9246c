package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommands(t *testing.T) {
	quaveApp := Get()

	var names []string
	for _, cmd := range quaveApp.Commands {
		names = append(names, cmd.Name)
	}

	assert.Equal(t, []string{
		"start",
		"stop",
		"restart",
		"change",
		"status",
		"watch",
		"daemon",
		"test-alert",
		"presets",
		"sounds",
		"edit-config",
	}, names)

	assert.Contains(t, helpText(), "QUAVE_NO_COLOR")
}

func TestFirstNonEmptyString(t *testing.T) {
	assert.Equal(t, "vim", firstNonEmptyString("", "vim", "nano"))
	assert.Empty(t, firstNonEmptyString("", ""))
}
