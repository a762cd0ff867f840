// Package logger holds the process-wide zerolog logger used by widgetctl.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// L is the global logger instance. It discards all output until Init enables it.
var L = zerolog.Nop()

// logFile is the file opened for Options.LogDir, if any.
var logFile *os.File

const (
	logPrefix     = "widgetctl-"
	logSuffix     = ".log"
	dateLayout    = "2006-01-02"
	retentionDays = 30
)

// Options configures the logger initialization.
type Options struct {
	Enabled bool      // If false, all logging is discarded
	Level   string    // zerolog level name. Default: "info"
	Output  io.Writer // Destination when LogDir is empty. Default: os.Stderr
	Console bool      // Human-readable output instead of JSON lines
	LogDir  string    // Write JSON lines to a dated file in this directory
}

// Init configures logging. Call from main before any log calls.
func Init(opts Options) error {
	Close()
	if !opts.Enabled {
		L = zerolog.Nop()
		return nil
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return fmt.Errorf("log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	var out io.Writer
	switch {
	case opts.LogDir != "":
		f, err := openLogFile(opts.LogDir, time.Now())
		if err != nil {
			return err
		}
		logFile = f
		out = f
	case opts.Output != nil:
		out = opts.Output
	default:
		out = os.Stderr
	}
	if opts.Console && opts.LogDir == "" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	L = zerolog.New(out).Level(level).With().Timestamp().Logger()
	return nil
}

// Close releases the log file opened by Init and resets L to discard.
func Close() error {
	L = zerolog.Nop()
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(component string) zerolog.Logger {
	return L.With().Str("component", component).Logger()
}

func openLogFile(dir string, now time.Time) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	// best-effort
	cleanOldLogs(dir, now)

	name := filepath.Join(dir, logPrefix+now.Format(dateLayout)+logSuffix)
	return os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

// cleanOldLogs removes log files older than retentionDays.
func cleanOldLogs(dir string, now time.Time) {
	cutoff := now.AddDate(0, 0, -retentionDays)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, logPrefix) || !strings.HasSuffix(name, logSuffix) {
			continue
		}

		// widgetctl-2024-01-05.log
		dateStr := strings.TrimPrefix(strings.TrimSuffix(name, logSuffix), logPrefix)
		logDate, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			continue
		}

		if logDate.Before(cutoff) {
			os.Remove(filepath.Join(dir, name))
		}
	}
}
