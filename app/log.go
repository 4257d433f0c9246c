package app

import (
	"io"
	"log/slog"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logMaxSizeMB  = 5
	logMaxBackups = 3
	logMaxAgeDays = 28
)

var (
	logCloser io.Closer
	logOnce   sync.Once
)

// setupLogger installs the file logger as the default slog logger.
func setupLogger(path string, debug bool) {
	logOnce.Do(func() {
		logger, closer := newLogger(path, debug)

		slog.SetDefault(logger)

		logCloser = closer
	})
}

// newLogger returns a JSON logger writing to a rotating file at path.
func newLogger(path string, debug bool) (*slog.Logger, io.Closer) {
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    logMaxSizeMB,
		MaxBackups: logMaxBackups,
		MaxAge:     logMaxAgeDays,
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})

	return slog.New(h), w
}
