// Package logging configures the global zerolog logger with two sinks:
// a console writer on stderr and a rotating file. The TUI owns the
// terminal while it runs, so the file sink is what keeps a usable
// record of reconciliations and rollbacks.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls the sinks.
type Options struct {
	// Level is a zerolog level name ("debug", "info", ...). Unknown or
	// empty means info.
	Level string
	// Dir is where the rotating log file lives. Empty picks a per-user
	// state directory.
	Dir string
	// ConsoleQuiet drops the stderr sink. Set while the TUI is active.
	ConsoleQuiet bool
}

// Init installs the global logger. It returns the resolved log file
// path, or an empty string when the file sink could not be set up (the
// console sink still works in that case).
func Init(opts Options) string {
	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var sinks []io.Writer
	if !opts.ConsoleQuiet {
		isTerminal := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
		sinks = append(sinks, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
			NoColor:    !isTerminal,
		})
	}

	logPath := ""
	dir := opts.Dir
	if dir == "" {
		dir = defaultLogDir()
	}
	if dir != "" && os.MkdirAll(dir, 0o755) == nil {
		logPath = filepath.Join(dir, "kairos.log")
		sinks = append(sinks, &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    8, // megabytes
			MaxBackups: 4,
			MaxAge:     90, // days
			Compress:   true,
		})
	}

	if len(sinks) == 0 {
		sinks = append(sinks, io.Discard)
	}
	log.Logger = zerolog.New(zerolog.MultiLevelWriter(sinks...)).
		With().
		Timestamp().
		Logger()
	return logPath
}

func defaultLogDir() string {
	if state := os.Getenv("XDG_STATE_HOME"); state != "" {
		return filepath.Join(state, "kairos")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state", "kairos")
}
