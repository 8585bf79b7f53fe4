// Package logger wraps go-logging with a single leveled stderr backend.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"
)

const module = "bookreview"

var logger = logging.MustGetLogger(module)

// InitLogger installs a stderr backend filtered at the given level.
func InitLogger(level logging.Level) {
	initWithWriter(os.Stderr, level)
}

func initWithWriter(w io.Writer, level logging.Level) {
	backend := logging.NewLogBackend(w, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(
		`%{time:2006/01/02 15:04:05} %{level:.4s} - %{message}`,
	))
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(level, module)
	logger.SetBackend(leveled)
}

// ParseLevel maps a config string to a go-logging level, defaulting to INFO.
func ParseLevel(s string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "warn":
		return logging.WARNING
	case "":
		return logging.INFO
	}
	level, err := logging.LogLevel(s)
	if err != nil {
		return logging.INFO
	}
	return level
}

func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

func Info(args ...any) {
	logger.Info(args...)
}

func Infof(format string, args ...any) {
	logger.Infof(format, args...)
}

func Warning(args ...any) {
	logger.Warning(args...)
}

func Warningf(format string, args ...any) {
	logger.Warningf(format, args...)
}

func Errorf(format string, args ...any) {
	logger.Errorf(format, args...)
}

// Fatalf logs at CRITICAL and exits with status 1.
func Fatalf(format string, args ...any) {
	logger.Fatalf(format, args...)
}
