// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

// Paths holds all application path configurations.
type Paths struct {
	appDir         string
	configFileName string
	stateFileName  string
	prefsFileName  string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	stateFilePath  string
	prefsFilePath  string
	logFilePath    string
	soundDir       string
	dataDir        string
}

var (
	paths *Paths
	once  sync.Once
)

// Initialize must be called once at program startup.
func Initialize() error {
	var initErr error

	once.Do(func() {
		paths = &Paths{
			appDir:         "quave",
			configFileName: "config.yml",
			stateFileName:  "timer.json",
			prefsFileName:  "prefs.db",
			logFileName:    "quave.log",
		}

		paths.applyEnvironmentOverrides()
		initErr = paths.computePaths()
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func Dir() string {
	return Must().appDir
}

func ConfigFilePath() string {
	return Must().configFilePath
}

// StateFilePath is the location of the persisted timer record.
func StateFilePath() string {
	return Must().stateFilePath
}

// PrefsFilePath is the location of the preferences database.
func PrefsFilePath() string {
	return Must().prefsFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

// DataDir holds the state file, preferences, logs and sounds.
func DataDir() string {
	return Must().dataDir
}

// SoundDir is where user-supplied alert sounds are looked up.
func SoundDir() string {
	return Must().soundDir
}

func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv("QUAVE_ENV"))
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.stateFileName = fmt.Sprintf("timer_%s.json", env)
		p.prefsFileName = fmt.Sprintf("prefs_%s.db", env)
		p.logFileName = fmt.Sprintf("quave_%s.log", env)
	}
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.appDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return err
	}

	dataDir, err := xdg.DataFile(p.appDir)
	if err != nil {
		return err
	}

	p.dataDir = dataDir

	p.stateFilePath = filepath.Join(dataDir, p.stateFileName)

	p.prefsFilePath = filepath.Join(dataDir, p.prefsFileName)

	p.logFilePath = filepath.Join(dataDir, "log", p.logFileName)

	p.soundDir = filepath.Join(dataDir, "sounds")

	return nil
}

// StripExtension returns the input file name without its extension.
func StripExtension(fileName string) string {
	return fileName[:len(fileName)-len(filepath.Ext(fileName))]
}
