package domain

import "testing"

func TestDefaultDurations(t *testing.T) {
	d := DefaultDurations()
	if d.FocusMinutes() != 25 {
		t.Errorf("FocusMinutes = %d, want 25", d.FocusMinutes())
	}
	if d.BreakMinutes() != 5 {
		t.Errorf("BreakMinutes = %d, want 5", d.BreakMinutes())
	}
}

func TestNewDurations_Clamps(t *testing.T) {
	tests := []struct {
		name              string
		focus, brk        int
		wantFocus, wantBr int
	}{
		{"in range", 25, 5, 25, 5},
		{"focus too low", 0, 5, 5, 5},
		{"focus too high", 90, 5, 60, 5},
		{"focus off grid snaps down", 27, 5, 25, 5},
		{"break too low", 25, -3, 25, 1},
		{"break too high", 25, 40, 25, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDurations(tt.focus, tt.brk)
			if d.FocusMinutes() != tt.wantFocus || d.BreakMinutes() != tt.wantBr {
				t.Errorf("NewDurations(%d, %d) = %d/%d, want %d/%d",
					tt.focus, tt.brk, d.FocusMinutes(), d.BreakMinutes(), tt.wantFocus, tt.wantBr)
			}
		})
	}
}

func TestDurations_AdjustFocus_StaysInBounds(t *testing.T) {
	for focus := MinFocusMinutes; focus <= MaxFocusMinutes; focus += FocusStepMinutes {
		d := NewDurations(focus, DefaultBreakMinutes)

		up := d.AdjustFocus(true).FocusMinutes()
		wantUp := min(focus+FocusStepMinutes, MaxFocusMinutes)
		if up != wantUp {
			t.Errorf("focus %d: increase = %d, want %d", focus, up, wantUp)
		}

		down := d.AdjustFocus(false).FocusMinutes()
		wantDown := max(focus-FocusStepMinutes, MinFocusMinutes)
		if down != wantDown {
			t.Errorf("focus %d: decrease = %d, want %d", focus, down, wantDown)
		}

		if d.AdjustFocus(true).BreakMinutes() != DefaultBreakMinutes {
			t.Errorf("focus %d: adjusting focus changed break", focus)
		}
	}
}

func TestDurations_AdjustBreak_StaysInBounds(t *testing.T) {
	for brk := MinBreakMinutes; brk <= MaxBreakMinutes; brk++ {
		d := NewDurations(DefaultFocusMinutes, brk)

		up := d.AdjustBreak(true).BreakMinutes()
		if up != min(brk+1, MaxBreakMinutes) {
			t.Errorf("break %d: increase = %d", brk, up)
		}

		down := d.AdjustBreak(false).BreakMinutes()
		if down != max(brk-1, MinBreakMinutes) {
			t.Errorf("break %d: decrease = %d", brk, down)
		}
	}
}

func TestDurations_AtBounds(t *testing.T) {
	top := NewDurations(MaxFocusMinutes, MaxBreakMinutes)
	if got := top.AdjustFocus(true); got != top {
		t.Errorf("increasing focus at max changed durations to %+v", got)
	}
	if got := top.AdjustBreak(true); got != top {
		t.Errorf("increasing break at max changed durations to %+v", got)
	}

	bottom := NewDurations(MinFocusMinutes, MinBreakMinutes)
	if got := bottom.AdjustFocus(false); got != bottom {
		t.Errorf("decreasing focus at min changed durations to %+v", got)
	}
	if got := bottom.AdjustBreak(false); got != bottom {
		t.Errorf("decreasing break at min changed durations to %+v", got)
	}
}

func TestDurations_SecondsFor(t *testing.T) {
	d := NewDurations(50, 10)
	if got := d.SecondsFor(LabelFocusing); got != 3000 {
		t.Errorf("SecondsFor(Focusing) = %d, want 3000", got)
	}
	if got := d.SecondsFor(LabelOnBreak); got != 600 {
		t.Errorf("SecondsFor(OnBreak) = %d, want 600", got)
	}
	if got := d.MinutesFor(LabelOnBreak); got != 10 {
		t.Errorf("MinutesFor(OnBreak) = %d, want 10", got)
	}
}
