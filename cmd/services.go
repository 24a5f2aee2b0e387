package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/xvierd/pomodoro/internal/adapters/clock"
	"github.com/xvierd/pomodoro/internal/adapters/notification"
	"github.com/xvierd/pomodoro/internal/config"
	"github.com/xvierd/pomodoro/internal/logging"
	"github.com/xvierd/pomodoro/internal/services"
)

// appDeps groups all service-layer dependencies initialized at startup.
type appDeps struct {
	config     *config.Config
	notifier   *notification.Notifier
	ticks      *clock.Ticker
	controller *services.TimerController
	logCloser  io.Closer
	log        zerolog.Logger
}

// app holds all initialized service dependencies.
// Populated by initializeServices() and accessible to all commands.
var app appDeps

// initializeServices loads configuration, applies flag overrides and wires
// the controller to its tick source and alerter.
func initializeServices(cmd *cobra.Command) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)
	app.config = cfg

	app.logCloser, err = logging.Initialize(logging.Config{
		Debug: cfg.Log.Debug,
		File:  cfg.Log.File,
		Level: cfg.Log.Level,
	})
	if err != nil {
		return err
	}
	app.log = logging.WithComponent("cmd")

	app.notifier = notification.New(&cfg.Notifications)
	app.ticks = clock.NewTicker()
	app.controller = services.NewTimerController(app.ticks, app.notifier, cfg.Durations())
	app.controller.SetLogger(logging.WithComponent("controller"))

	app.log.Debug().
		Int("focus_minutes", cfg.FocusMinutes).
		Int("break_minutes", cfg.BreakMinutes).
		Bool("notifications", cfg.Notifications.Enabled).
		Msg("services initialized")
	return nil
}

// applyFlags overrides config values with flags the user actually passed,
// then clamps the durations again.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("focus") {
		cfg.FocusMinutes = focusMinutes
	}
	if flags.Changed("break") {
		cfg.BreakMinutes = breakMinutes
	}
	if flags.Changed("no-sound") && noSound {
		cfg.Notifications.Sound = false
	}
	if flags.Changed("debug") {
		cfg.Log.Debug = debugMode
	}

	d := cfg.Durations()
	cfg.FocusMinutes = d.FocusMinutes()
	cfg.BreakMinutes = d.BreakMinutes()
}

// cleanupServices stops the timer and closes the log file.
func cleanupServices() error {
	if app.controller != nil {
		app.controller.Stop()
	}
	if app.logCloser != nil {
		if err := app.logCloser.Close(); err != nil {
			return fmt.Errorf("failed to close log file: %w", err)
		}
	}
	return nil
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
