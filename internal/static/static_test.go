package static

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstall(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Install(dir))

	chime := filepath.Join(dir, "sounds", "chime.wav")
	assert.FileExists(t, chime)

	// existing files are kept
	require.NoError(t, os.WriteFile(chime, []byte("custom"), 0o600))
	require.NoError(t, Install(dir))

	b, err := os.ReadFile(chime)
	require.NoError(t, err)
	assert.Equal(t, "custom", string(b))
}
