// Package static embeds the bundled alert sounds and installs them into the
// data directory
package static

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ayoisaiah/quave/internal/osutil"
)

const (
	filesDir = "files"
)

//go:embed files/*
var embeddedFiles embed.FS

// Install copies the embedded files into dataDir. Files that already exist
// are left untouched so that user replacements survive upgrades.
func Install(dataDir string) error {
	return fs.WalkDir(
		embeddedFiles,
		filesDir,
		func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			// embed paths always use forward slashes
			stripped := strings.TrimPrefix(path, filesDir+"/")

			destPath := filepath.Join(dataDir, filepath.FromSlash(stripped))

			if _, err := os.Stat(destPath); !os.IsNotExist(err) {
				return err
			}

			b, err := embeddedFiles.ReadFile(path)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(filepath.Dir(destPath), osutil.DirPermission); err != nil {
				return err
			}

			return os.WriteFile(destPath, b, osutil.FilePermission)
		},
	)
}
