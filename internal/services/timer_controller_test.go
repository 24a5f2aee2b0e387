package services

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xvierd/pomodoro/internal/adapters/clock"
	"github.com/xvierd/pomodoro/internal/domain"
)

// recordingAlerter records every alert it receives.
type recordingAlerter struct {
	mu     sync.Mutex
	labels []domain.Label
	err    error
}

func (a *recordingAlerter) Alert(next domain.Label) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.labels = append(a.labels, next)
	return a.err
}

func (a *recordingAlerter) got() []domain.Label {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]domain.Label(nil), a.labels...)
}

// newTestController returns a controller whose alerts run synchronously.
func newTestController(focus, brk int) (*TimerController, *clock.Manual, *recordingAlerter) {
	ticks := clock.NewManual()
	alerter := &recordingAlerter{}
	c := NewTimerController(ticks, alerter, domain.NewDurations(focus, brk))
	c.goAlert = func(f func()) { f() }
	return c, ticks, alerter
}

func TestTimerController_InitialState(t *testing.T) {
	c, ticks, _ := newTestController(25, 5)

	snap := c.Snapshot()
	assert.Nil(t, snap.Session)
	assert.False(t, snap.IsRunning)
	assert.Equal(t, 25, snap.FocusMinutes)
	assert.Equal(t, 5, snap.BreakMinutes)
	assert.Equal(t, 0, ticks.Active())
}

func TestTimerController_ToggleFromIdleStartsFocus(t *testing.T) {
	c, ticks, _ := newTestController(25, 5)

	c.Toggle()

	snap := c.Snapshot()
	require.NotNil(t, snap.Session)
	assert.Equal(t, domain.Session{Label: domain.LabelFocusing, TimeRemaining: 1500}, *snap.Session)
	assert.True(t, snap.IsRunning)
	assert.Equal(t, 1, ticks.Active())
}

func TestTimerController_PauseAndResume(t *testing.T) {
	c, ticks, _ := newTestController(25, 5)
	c.Toggle()
	ticks.Advance(10)

	c.Toggle()
	paused := c.Snapshot()
	require.NotNil(t, paused.Session)
	assert.False(t, paused.IsRunning)
	assert.Equal(t, 1490, paused.Session.TimeRemaining)
	assert.Equal(t, 0, ticks.Active(), "pausing must stop the tick source")

	ticks.Advance(5)
	c.Tick()
	assert.Equal(t, 1490, c.Snapshot().Session.TimeRemaining, "countdown is frozen while paused")

	c.Toggle()
	resumed := c.Snapshot()
	assert.True(t, resumed.IsRunning)
	assert.Equal(t, domain.LabelFocusing, resumed.Session.Label)
	assert.Equal(t, 1490, resumed.Session.TimeRemaining)
	assert.Equal(t, 1, ticks.Active())
	assert.Equal(t, 2, ticks.Started())

	ticks.Advance(1)
	assert.Equal(t, 1489, c.Snapshot().Session.TimeRemaining)
}

func TestTimerController_Tick(t *testing.T) {
	tests := []struct {
		name      string
		start     domain.Session
		want      domain.Session
		wantAlert []domain.Label
	}{
		{
			name:  "counts down",
			start: domain.Session{Label: domain.LabelFocusing, TimeRemaining: 42},
			want:  domain.Session{Label: domain.LabelFocusing, TimeRemaining: 41},
		},
		{
			name:      "focus at zero switches to break",
			start:     domain.Session{Label: domain.LabelFocusing, TimeRemaining: 0},
			want:      domain.Session{Label: domain.LabelOnBreak, TimeRemaining: 300},
			wantAlert: []domain.Label{domain.LabelOnBreak},
		},
		{
			name:      "break at zero switches to focus",
			start:     domain.Session{Label: domain.LabelOnBreak, TimeRemaining: 0},
			want:      domain.Session{Label: domain.LabelFocusing, TimeRemaining: 1500},
			wantAlert: []domain.Label{domain.LabelFocusing},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, alerter := newTestController(25, 5)
			c.Toggle()
			s := tt.start
			c.session = &s

			c.Tick()

			snap := c.Snapshot()
			require.NotNil(t, snap.Session)
			assert.Equal(t, tt.want, *snap.Session)
			assert.Equal(t, tt.wantAlert, alerter.got())
		})
	}
}

func TestTimerController_TickWithoutSession(t *testing.T) {
	c, _, alerter := newTestController(25, 5)

	c.Tick()

	assert.Nil(t, c.Snapshot().Session)
	assert.Empty(t, alerter.got())
}

func TestTimerController_Stop(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c *TimerController)
	}{
		{"idle", func(c *TimerController) {}},
		{"running", func(c *TimerController) { c.Toggle() }},
		{"paused", func(c *TimerController) { c.Toggle(); c.Toggle() }},
		{"on break", func(c *TimerController) {
			c.Toggle()
			c.session = &domain.Session{Label: domain.LabelOnBreak, TimeRemaining: 12}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ticks, _ := newTestController(25, 5)
			tt.setup(c)

			c.Stop()
			c.Stop()

			snap := c.Snapshot()
			assert.Nil(t, snap.Session)
			assert.False(t, snap.IsRunning)
			assert.Equal(t, 0, ticks.Active())
		})
	}
}

func TestTimerController_StopThenToggleStartsFresh(t *testing.T) {
	c, ticks, _ := newTestController(25, 5)
	c.Toggle()
	ticks.Advance(100)
	c.Stop()

	c.Toggle()

	assert.Equal(t, 1500, c.Snapshot().Session.TimeRemaining)
	assert.Equal(t, 1, ticks.Active())
}

func TestTimerController_AdjustWhileIdle(t *testing.T) {
	c, _, _ := newTestController(25, 5)

	c.AdjustFocus(true)
	c.AdjustBreak(false)

	snap := c.Snapshot()
	assert.Equal(t, 30, snap.FocusMinutes)
	assert.Equal(t, 4, snap.BreakMinutes)

	c.Toggle()
	assert.Equal(t, 1800, c.Snapshot().Session.TimeRemaining)
}

func TestTimerController_AdjustClampsAtBounds(t *testing.T) {
	c, _, _ := newTestController(60, 15)
	c.AdjustFocus(true)
	c.AdjustBreak(true)
	assert.Equal(t, domain.NewDurations(60, 15), c.Durations())

	c, _, _ = newTestController(5, 1)
	c.AdjustFocus(false)
	c.AdjustBreak(false)
	assert.Equal(t, domain.NewDurations(5, 1), c.Durations())
}

func TestTimerController_AdjustIgnoredWithSession(t *testing.T) {
	c, _, _ := newTestController(25, 5)
	c.Toggle()

	c.AdjustFocus(true)
	c.AdjustBreak(true)
	assert.Equal(t, domain.NewDurations(25, 5), c.Durations())

	c.Toggle() // paused, session still exists
	c.AdjustFocus(false)
	c.AdjustBreak(false)
	assert.Equal(t, domain.NewDurations(25, 5), c.Durations())

	c.Stop()
	c.AdjustFocus(false)
	assert.Equal(t, 20, c.Durations().FocusMinutes())
}

func TestTimerController_StaleTickDropped(t *testing.T) {
	c, _, _ := newTestController(25, 5)
	c.Toggle()
	staleGen := c.gen

	c.Toggle()
	c.Toggle()
	c.onTick(staleGen)

	assert.Equal(t, 1500, c.Snapshot().Session.TimeRemaining)
}

func TestTimerController_OnChange(t *testing.T) {
	c, ticks, _ := newTestController(25, 5)

	var snaps []domain.Snapshot
	c.OnChange(func(s domain.Snapshot) { snaps = append(snaps, s) })

	c.AdjustFocus(true)
	c.Toggle()
	ticks.Advance(2)
	c.Toggle()
	c.Stop()

	require.Len(t, snaps, 6)
	assert.Equal(t, 30, snaps[0].FocusMinutes)
	assert.True(t, snaps[1].IsRunning)
	assert.Equal(t, 1798, snaps[3].Session.TimeRemaining)
	assert.False(t, snaps[4].IsRunning)
	assert.Nil(t, snaps[5].Session)
}

func TestTimerController_OnChangeUnsubscribe(t *testing.T) {
	c, _, _ := newTestController(25, 5)

	var first, second int
	unsubscribe := c.OnChange(func(domain.Snapshot) { first++ })
	c.OnChange(func(domain.Snapshot) { second++ })

	c.Toggle()
	unsubscribe()
	unsubscribe()
	c.Toggle()

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestTimerController_UnsubscribeDuringNotify(t *testing.T) {
	c, _, _ := newTestController(25, 5)

	var calls int
	var unsubscribe func()
	unsubscribe = c.OnChange(func(domain.Snapshot) {
		calls++
		unsubscribe()
	})
	c.OnChange(func(domain.Snapshot) { calls++ })

	c.Toggle()
	assert.Equal(t, 2, calls)

	c.Toggle()
	assert.Equal(t, 3, calls)
}

func TestTimerController_ListenerMayReadSnapshot(t *testing.T) {
	c, _, _ := newTestController(25, 5)

	var seen domain.Snapshot
	c.OnChange(func(domain.Snapshot) { seen = c.Snapshot() })
	c.Toggle()

	assert.True(t, seen.IsRunning)
}

func TestTimerController_AlertFailureIsSwallowed(t *testing.T) {
	c, _, alerter := newTestController(25, 5)
	alerter.err = errors.New("no audio device")
	c.Toggle()
	c.session = &domain.Session{Label: domain.LabelFocusing, TimeRemaining: 0}

	c.Tick()

	snap := c.Snapshot()
	assert.Equal(t, domain.LabelOnBreak, snap.Session.Label)
	assert.True(t, snap.IsRunning)
}

func TestTimerController_AlertIsAsynchronous(t *testing.T) {
	ticks := clock.NewManual()
	block := make(chan struct{})
	done := make(chan domain.Label, 1)
	alerter := alerterFunc(func(l domain.Label) error {
		<-block
		done <- l
		return nil
	})
	c := NewTimerController(ticks, alerter, domain.NewDurations(5, 1))
	c.Toggle()
	c.session = &domain.Session{Label: domain.LabelOnBreak, TimeRemaining: 0}

	c.Tick() // must not wait for the blocked alerter
	assert.Equal(t, domain.LabelFocusing, c.Snapshot().Session.Label)

	close(block)
	assert.Equal(t, domain.LabelFocusing, <-done)
}

type alerterFunc func(domain.Label) error

func (f alerterFunc) Alert(l domain.Label) error { return f(l) }

// TestTimerController_FullCycle walks a 25/5 timer through a whole focus
// interval, a pause and a stop.
func TestTimerController_FullCycle(t *testing.T) {
	c, ticks, alerter := newTestController(25, 5)

	c.Toggle()
	require.Equal(t, 1500, c.Snapshot().Session.TimeRemaining)

	ticks.Advance(1500)
	snap := c.Snapshot()
	assert.Equal(t, domain.LabelFocusing, snap.Session.Label)
	assert.Equal(t, 0, snap.Session.TimeRemaining)
	assert.Empty(t, alerter.got(), "reaching zero alone does not alert")

	ticks.Advance(1)
	snap = c.Snapshot()
	assert.Equal(t, domain.Session{Label: domain.LabelOnBreak, TimeRemaining: 300}, *snap.Session)
	assert.Equal(t, []domain.Label{domain.LabelOnBreak}, alerter.got())

	ticks.Advance(10)
	c.Toggle()
	frozen := c.Snapshot()
	assert.False(t, frozen.IsRunning)
	assert.Equal(t, domain.LabelOnBreak, frozen.Session.Label)
	assert.Equal(t, 290, frozen.Session.TimeRemaining)

	ticks.Advance(50)
	assert.Equal(t, 290, c.Snapshot().Session.TimeRemaining)

	c.Toggle()
	ticks.Advance(1)
	assert.Equal(t, 289, c.Snapshot().Session.TimeRemaining)

	c.Stop()
	assert.Nil(t, c.Snapshot().Session)
	assert.Len(t, alerter.got(), 1)
}
