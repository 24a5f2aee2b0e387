// Package logging configures the zerolog logger. The terminal belongs to the
// timer UI, so logs only ever go to a file, and only in debug mode.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Config captures options for configuring the logger.
type Config struct {
	Debug bool   // write logs at all
	File  string // optional explicit log file path
	Level string // optional level ("debug", "info", ...), default debug
}

var (
	mu   sync.RWMutex
	base = zerolog.Nop()
)

// Initialize sets up the package logger. Without Debug everything is
// discarded. The returned closer releases the log file and is never nil.
func Initialize(cfg Config) (io.Closer, error) {
	if !cfg.Debug {
		setBase(zerolog.Nop())
		return nopCloser{}, nil
	}

	path := cfg.File
	if path == "" {
		dir, err := getLogDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get log directory: %w", err)
		}
		path = filepath.Join(dir, uuid.New().String()+".log")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	level := zerolog.DebugLevel
	if cfg.Level != "" {
		if parsed, err := zerolog.ParseLevel(cfg.Level); err == nil {
			level = parsed
		}
	}
	zerolog.TimeFieldFormat = time.RFC3339

	l := zerolog.New(f).Level(level).With().Timestamp().Str("service", "pomodoro").Logger()
	setBase(l)
	l.Info().Str("log_file", path).Msg("debug logging initialized")

	return f, nil
}

// Base returns the configured logger.
func Base() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(component string) zerolog.Logger {
	return Base().With().Str("component", component).Logger()
}

func setBase(l zerolog.Logger) {
	mu.Lock()
	base = l
	mu.Unlock()
}

// getLogDir returns the OS-specific log directory.
func getLogDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Logs", "pomodoro"), nil
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(homeDir, "AppData", "Local")
		}
		return filepath.Join(localAppData, "pomodoro", "logs"), nil
	default:
		stateHome := os.Getenv("XDG_STATE_HOME")
		if stateHome == "" {
			stateHome = filepath.Join(homeDir, ".local", "state")
		}
		return filepath.Join(stateHome, "pomodoro"), nil
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
