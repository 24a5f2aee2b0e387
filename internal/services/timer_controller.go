// Package services contains the timer controller, the only stateful piece of
// the application.
package services

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/xvierd/pomodoro/internal/domain"
	"github.com/xvierd/pomodoro/internal/ports"
)

// TickInterval is the wall-clock length of one tick.
const TickInterval = time.Second

// TimerController owns the run/pause flag, the session and the durations.
// All operations are serialised by mu, so ticks and user input never
// interleave.
type TimerController struct {
	mu        sync.Mutex
	durations domain.Durations
	session   *domain.Session
	running   bool

	ticks    ports.TickSource
	handle   ports.TickHandle
	gen      uint64
	interval time.Duration

	alerter   ports.Alerter
	goAlert   func(func())
	listeners []listener
	nextID    uint64
	log       zerolog.Logger
}

// NewTimerController creates an idle, paused controller.
func NewTimerController(ticks ports.TickSource, alerter ports.Alerter, durations domain.Durations) *TimerController {
	return &TimerController{
		durations: durations,
		ticks:     ticks,
		interval:  TickInterval,
		alerter:   alerter,
		goAlert:   func(f func()) { go f() },
		log:       zerolog.Nop(),
	}
}

// SetLogger sets the logger used for state transitions.
func (c *TimerController) SetLogger(l zerolog.Logger) {
	c.mu.Lock()
	c.log = l
	c.mu.Unlock()
}

// SetTickInterval changes the wall-clock length of a tick. It applies the
// next time the countdown starts.
func (c *TimerController) SetTickInterval(d time.Duration) {
	c.mu.Lock()
	c.interval = d
	c.mu.Unlock()
}

type listener struct {
	id uint64
	fn func(domain.Snapshot)
}

// OnChange registers fn to be called with a fresh snapshot after every state
// change. Callbacks run outside the controller lock. The returned function
// removes fn; calling it more than once is harmless.
func (c *TimerController) OnChange(fn func(domain.Snapshot)) func() {
	c.mu.Lock()
	c.nextID++
	id := c.nextID
	c.listeners = append(c.listeners, listener{id: id, fn: fn})
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		// Copy so a notification already iterating the old slice is unaffected.
		kept := make([]listener, 0, len(c.listeners))
		for _, l := range c.listeners {
			if l.id != id {
				kept = append(kept, l)
			}
		}
		c.listeners = kept
	}
}

// Toggle starts a focus session from idle, resumes a paused session, or
// pauses a running one.
func (c *TimerController) Toggle() {
	c.mu.Lock()
	if c.running {
		c.running = false
		c.stopTicking()
		c.log.Debug().Str("label", c.session.Label.String()).Int("remaining", c.session.TimeRemaining).Msg("paused")
	} else {
		if c.session == nil {
			s := domain.NewFocusSession(c.durations)
			c.session = &s
			c.log.Debug().Int("remaining", s.TimeRemaining).Msg("session created")
		} else {
			c.log.Debug().Str("label", c.session.Label.String()).Int("remaining", c.session.TimeRemaining).Msg("resumed")
		}
		c.running = true
		c.startTicking()
	}
	c.unlockAndNotify()
}

// Stop pauses the timer and discards the session. Calling it while idle is a no-op.
func (c *TimerController) Stop() {
	c.mu.Lock()
	if c.session == nil && !c.running {
		c.mu.Unlock()
		return
	}
	c.running = false
	c.session = nil
	c.stopTicking()
	c.log.Debug().Msg("stopped")
	c.unlockAndNotify()
}

// Tick advances the session by one second, or switches to the next interval
// when the countdown is already at zero. It does nothing while paused or idle.
func (c *TimerController) Tick() {
	c.mu.Lock()
	if !c.advance() {
		c.mu.Unlock()
		return
	}
	c.unlockAndNotify()
}

// AdjustFocus changes the focus duration by one step. Ignored while a session exists.
func (c *TimerController) AdjustFocus(increase bool) {
	c.adjust("focus", func(d domain.Durations) domain.Durations { return d.AdjustFocus(increase) })
}

// AdjustBreak changes the break duration by one step. Ignored while a session exists.
func (c *TimerController) AdjustBreak(increase bool) {
	c.adjust("break", func(d domain.Durations) domain.Durations { return d.AdjustBreak(increase) })
}

// Snapshot returns a copy of the current state.
func (c *TimerController) Snapshot() domain.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// Durations returns the current durations.
func (c *TimerController) Durations() domain.Durations {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.durations
}

func (c *TimerController) adjust(which string, apply func(domain.Durations) domain.Durations) {
	c.mu.Lock()
	if c.session != nil {
		c.log.Debug().Str("duration", which).Msg("adjustment ignored: session active")
		c.mu.Unlock()
		return
	}
	c.durations = apply(c.durations)
	c.log.Debug().
		Int("focus_minutes", c.durations.FocusMinutes()).
		Int("break_minutes", c.durations.BreakMinutes()).
		Msg("durations adjusted")
	c.unlockAndNotify()
}

// advance applies one tick. Caller holds mu. Returns false if nothing changed.
func (c *TimerController) advance() bool {
	if !c.running || c.session == nil {
		return false
	}

	if !c.session.Expired() {
		next := domain.NextTick(*c.session)
		c.session = &next
		return true
	}

	from := c.session.Label
	next := domain.NextSession(*c.session, c.durations)
	c.session = &next
	c.log.Debug().
		Str("from", from.String()).
		Str("to", next.Label.String()).
		Int("remaining", next.TimeRemaining).
		Msg("session transition")
	c.alert(next.Label)
	return true
}

// alert fires the alerter without waiting for it. Caller holds mu.
func (c *TimerController) alert(next domain.Label) {
	if c.alerter == nil {
		return
	}
	alerter, log := c.alerter, c.log
	c.goAlert(func() {
		if err := alerter.Alert(next); err != nil {
			log.Warn().Err(err).Str("label", next.String()).Msg("alert failed")
		}
	})
}

// startTicking replaces any tick handle with a fresh one. Caller holds mu.
func (c *TimerController) startTicking() {
	c.stopTicking()
	if c.ticks == nil {
		return
	}
	c.gen++
	gen := c.gen
	c.handle = c.ticks.Every(c.interval, func() { c.onTick(gen) })
}

// stopTicking stops and drops the tick handle. Caller holds mu.
func (c *TimerController) stopTicking() {
	if c.handle == nil {
		return
	}
	c.handle.Stop()
	c.handle = nil
	c.gen++
}

// onTick is the tick source callback. Ticks from a stopped handle that were
// already in flight carry a stale generation and are dropped.
func (c *TimerController) onTick(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || !c.advance() {
		c.mu.Unlock()
		return
	}
	c.unlockAndNotify()
}

func (c *TimerController) snapshot() domain.Snapshot {
	snap := domain.Snapshot{
		FocusMinutes: c.durations.FocusMinutes(),
		BreakMinutes: c.durations.BreakMinutes(),
		IsRunning:    c.running,
	}
	if c.session != nil {
		s := *c.session
		snap.Session = &s
	}
	return snap
}

// unlockAndNotify releases mu and hands a snapshot to every listener.
func (c *TimerController) unlockAndNotify() {
	snap := c.snapshot()
	listeners := c.listeners
	c.mu.Unlock()

	for _, l := range listeners {
		l.fn(snap)
	}
}

// Ensure TimerController implements ports.Controller.
var _ ports.Controller = (*TimerController)(nil)
