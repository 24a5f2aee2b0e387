package domain

// Bounds for the user-adjustable durations, in minutes.
const (
	MinFocusMinutes  = 5
	MaxFocusMinutes  = 60
	FocusStepMinutes = 5

	MinBreakMinutes  = 1
	MaxBreakMinutes  = 15
	BreakStepMinutes = 1

	DefaultFocusMinutes = 25
	DefaultBreakMinutes = 5
)

// Durations holds the focus and break lengths. The fields are unexported so
// every value in circulation has passed through the clamping constructors.
type Durations struct {
	focusMinutes int
	breakMinutes int
}

// DefaultDurations returns the classic 25/5 split.
func DefaultDurations() Durations {
	return Durations{
		focusMinutes: DefaultFocusMinutes,
		breakMinutes: DefaultBreakMinutes,
	}
}

// NewDurations builds Durations from arbitrary input. Focus is clamped to
// [5, 60] and snapped down onto the 5 minute grid; break is clamped to [1, 15].
func NewDurations(focusMinutes, breakMinutes int) Durations {
	focus := clamp(focusMinutes, MinFocusMinutes, MaxFocusMinutes)
	focus -= (focus - MinFocusMinutes) % FocusStepMinutes
	return Durations{
		focusMinutes: focus,
		breakMinutes: clamp(breakMinutes, MinBreakMinutes, MaxBreakMinutes),
	}
}

// FocusMinutes returns the focus length in minutes.
func (d Durations) FocusMinutes() int {
	return d.focusMinutes
}

// BreakMinutes returns the break length in minutes.
func (d Durations) BreakMinutes() int {
	return d.breakMinutes
}

// FocusSeconds returns the focus length in seconds.
func (d Durations) FocusSeconds() int {
	return d.focusMinutes * 60
}

// BreakSeconds returns the break length in seconds.
func (d Durations) BreakSeconds() int {
	return d.breakMinutes * 60
}

// SecondsFor returns the full length of the interval with the given label.
func (d Durations) SecondsFor(l Label) int {
	if l == LabelOnBreak {
		return d.BreakSeconds()
	}
	return d.FocusSeconds()
}

// MinutesFor returns the length in minutes of the interval with the given label.
func (d Durations) MinutesFor(l Label) int {
	if l == LabelOnBreak {
		return d.breakMinutes
	}
	return d.focusMinutes
}

// AdjustFocus moves the focus length one step up or down, staying in bounds.
func (d Durations) AdjustFocus(increase bool) Durations {
	if increase {
		d.focusMinutes = min(d.focusMinutes+FocusStepMinutes, MaxFocusMinutes)
	} else {
		d.focusMinutes = max(d.focusMinutes-FocusStepMinutes, MinFocusMinutes)
	}
	return d
}

// AdjustBreak moves the break length one step up or down, staying in bounds.
func (d Durations) AdjustBreak(increase bool) Durations {
	if increase {
		d.breakMinutes = min(d.breakMinutes+BreakStepMinutes, MaxBreakMinutes)
	} else {
		d.breakMinutes = max(d.breakMinutes-BreakStepMinutes, MinBreakMinutes)
	}
	return d
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
