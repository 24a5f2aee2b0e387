// Package ports defines the interfaces between the timer core and the
// infrastructure that drives it (tick source, alert output, terminal UI).
package ports

import (
	"context"
	"time"

	"github.com/xvierd/pomodoro/internal/domain"
)

// TickHandle is a running periodic timer.
type TickHandle interface {
	// Stop halts the timer. No tick starts after Stop returns. Safe to call twice.
	Stop()
}

// TickSource creates periodic timers.
// This is a driven port (implemented by adapters).
type TickSource interface {
	// Every calls fn once per interval until the returned handle is stopped.
	Every(interval time.Duration, fn func()) TickHandle
}

// Alerter signals the user that a session switched to the next interval.
// This is a driven port (implemented by adapters).
type Alerter interface {
	// Alert is fire-and-forget from the controller's point of view; a
	// returned error is logged and otherwise ignored.
	Alert(next domain.Label) error
}

// Controller is the timer state machine as seen by the UI collaborators.
// This is a driving port (implemented by the services layer).
type Controller interface {
	// Toggle starts, pauses or resumes the timer.
	Toggle()

	// Stop pauses the timer and discards the session.
	Stop()

	// Tick advances the running session by one second.
	Tick()

	// AdjustFocus changes the focus duration by one step while idle.
	AdjustFocus(increase bool)

	// AdjustBreak changes the break duration by one step while idle.
	AdjustBreak(increase bool)

	// Snapshot returns the current read-only state.
	Snapshot() domain.Snapshot

	// OnChange registers a function called after every state change and
	// returns a function that unregisters it.
	OnChange(fn func(domain.Snapshot)) (unsubscribe func())
}

// TimerCommand represents a user action on the widget.
type TimerCommand string

const (
	// CmdToggle starts, pauses or resumes the timer.
	CmdToggle TimerCommand = "toggle"

	// CmdStop discards the current session.
	CmdStop TimerCommand = "stop"

	// CmdFocusUp increases the focus duration.
	CmdFocusUp TimerCommand = "focus_up"

	// CmdFocusDown decreases the focus duration.
	CmdFocusDown TimerCommand = "focus_down"

	// CmdBreakUp increases the break duration.
	CmdBreakUp TimerCommand = "break_up"

	// CmdBreakDown decreases the break duration.
	CmdBreakDown TimerCommand = "break_down"

	// CmdQuit exits the application.
	CmdQuit TimerCommand = "quit"
)

// Dispatch applies cmd to c. It returns false for commands the controller
// does not handle (CmdQuit).
func Dispatch(c Controller, cmd TimerCommand) bool {
	switch cmd {
	case CmdToggle:
		c.Toggle()
	case CmdStop:
		c.Stop()
	case CmdFocusUp:
		c.AdjustFocus(true)
	case CmdFocusDown:
		c.AdjustFocus(false)
	case CmdBreakUp:
		c.AdjustBreak(true)
	case CmdBreakDown:
		c.AdjustBreak(false)
	default:
		return false
	}
	return true
}

// Timer is the interactive widget.
// This is a driving port (called by the application layer).
type Timer interface {
	// Run starts the interface and blocks until the user quits or ctx ends.
	Run(ctx context.Context) error

	// Stop gracefully stops the interface.
	Stop()
}
