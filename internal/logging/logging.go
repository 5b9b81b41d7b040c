// Package logging writes structured logs to a file under the XDG state directory.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

var (
	// Logger is the process logger. It discards everything until Init is called.
	Logger  = zerolog.Nop()
	logFile *os.File
)

// timestampHook adds timestamp at the end of each log event
type timestampHook struct{}

func (h timestampHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	e.Time("ts", time.Now())
}

// DefaultPath returns $XDG_STATE_HOME/albumdesk/albumdesk.log, creating the directory.
func DefaultPath() (string, error) {
	return xdg.StateFile("albumdesk/albumdesk.log")
}

// ParseLevel maps a config level name to a zerolog level. "off" disables logging.
func ParseLevel(name string) (zerolog.Level, error) {
	switch strings.ToLower(name) {
	case "off":
		return zerolog.Disabled, nil
	case "":
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return lvl, nil
}

// Init opens the log file at path (DefaultPath when empty) and sets Logger
// to write there at the given level.
func Init(path, level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	if lvl == zerolog.Disabled {
		Logger = zerolog.Nop()
		return nil
	}

	if path == "" {
		if path, err = DefaultPath(); err != nil {
			return fmt.Errorf("failed to resolve log path: %w", err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	// #nosec G304 - the log path comes from the user's config
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	Close()
	logFile = f
	Logger = New(f, lvl)
	return nil
}

// New returns a logger writing JSON lines to w, used by Init and by tests.
func New(w io.Writer, lvl zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(lvl).Hook(timestampHook{})
}

// Close closes the log file
func Close() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// Debug returns a debug level event
func Debug() *zerolog.Event {
	return Logger.Debug()
}

// Info returns an info level event
func Info() *zerolog.Event {
	return Logger.Info()
}

// Warn returns a warn level event
func Warn() *zerolog.Event {
	return Logger.Warn()
}

// Error returns an error level event
func Error() *zerolog.Event {
	return Logger.Error()
}
