// Package domain contains the core entities of the Pomodoro timer: the session
// record, the adjustable focus/break durations and the pure transition
// functions that advance a session. Nothing in here knows about clocks,
// terminals or sound.
package domain

// Label identifies which interval a session is counting down.
type Label string

const (
	LabelFocusing Label = "Focusing"
	LabelOnBreak  Label = "On Break"
)

// String returns the human-readable label.
func (l Label) String() string {
	return string(l)
}

// Next returns the label that follows l when its countdown runs out.
func (l Label) Next() Label {
	if l == LabelFocusing {
		return LabelOnBreak
	}
	return LabelFocusing
}

// Session is the countdown currently owned by the timer controller.
// TimeRemaining is in seconds and never negative.
type Session struct {
	Label         Label
	TimeRemaining int
}

// NewFocusSession creates the session that starts a timer from idle.
func NewFocusSession(d Durations) Session {
	return Session{
		Label:         LabelFocusing,
		TimeRemaining: d.FocusSeconds(),
	}
}

// IsBreak returns true for the rest interval.
func (s Session) IsBreak() bool {
	return s.Label == LabelOnBreak
}

// Expired reports whether the next tick will switch to the other interval.
func (s Session) Expired() bool {
	return s.TimeRemaining <= 0
}

// NextTick returns s advanced by one second.
func NextTick(s Session) Session {
	remaining := s.TimeRemaining - 1
	if remaining < 0 {
		remaining = 0
	}
	s.TimeRemaining = remaining
	return s
}

// NextSession returns the session that replaces s once its countdown has
// reached zero: Focusing becomes On Break and vice versa, each starting from
// its full duration.
func NextSession(s Session, d Durations) Session {
	next := s.Label.Next()
	return Session{
		Label:         next,
		TimeRemaining: d.SecondsFor(next),
	}
}
