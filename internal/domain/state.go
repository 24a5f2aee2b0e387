package domain

import "fmt"

// Snapshot is the read-only view of the timer handed to the display and the
// duration editor. Session is nil when no session has been started.
type Snapshot struct {
	Session      *Session
	FocusMinutes int
	BreakMinutes int
	IsRunning    bool
}

// HasSession returns true if a session exists, running or paused.
func (s Snapshot) HasSession() bool {
	return s.Session != nil
}

// CanEditDurations reports whether the duration editor is enabled. Durations
// are only editable when the timer is fully idle.
func (s Snapshot) CanEditDurations() bool {
	return s.Session == nil
}

// CanStop reports whether there is anything for stop to discard.
func (s Snapshot) CanStop() bool {
	return s.Session != nil
}

// IsPaused returns true when a session exists but the countdown is frozen.
func (s Snapshot) IsPaused() bool {
	return s.Session != nil && !s.IsRunning
}

// TotalMinutes returns the full length of the current session's interval.
func (s Snapshot) TotalMinutes() int {
	if s.Session == nil {
		return 0
	}
	if s.Session.IsBreak() {
		return s.BreakMinutes
	}
	return s.FocusMinutes
}

// Percent returns how much of the current interval has elapsed, 0 to 100.
func (s Snapshot) Percent() float64 {
	total := s.TotalMinutes() * 60
	if s.Session == nil || total <= 0 {
		return 0
	}
	pct := (1 - float64(s.Session.TimeRemaining)/float64(total)) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// Title returns e.g. "Focusing for 25:00 minutes". Empty without a session.
func (s Snapshot) Title() string {
	if s.Session == nil {
		return ""
	}
	return fmt.Sprintf("%s for %s minutes", s.Session.Label, MinutesToDuration(s.TotalMinutes()))
}

// Subtitle returns e.g. "24:59 remaining". Empty without a session.
func (s Snapshot) Subtitle() string {
	if s.Session == nil {
		return ""
	}
	return fmt.Sprintf("%s remaining", SecondsToDuration(s.Session.TimeRemaining))
}
