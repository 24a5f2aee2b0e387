// Package clock provides tick sources for the timer controller: a real one
// backed by time.Ticker and a manual one driven step by step.
package clock

import (
	"sync"
	"time"

	"github.com/xvierd/pomodoro/internal/ports"
)

// Ticker implements ports.TickSource using the standard time package.
type Ticker struct{}

// NewTicker creates a new Ticker.
func NewTicker() *Ticker {
	return &Ticker{}
}

// Every starts a goroutine that calls fn once per interval until the handle
// is stopped.
func (t *Ticker) Every(interval time.Duration, fn func()) ports.TickHandle {
	h := &tickerHandle{
		ticker: time.NewTicker(interval),
		done:   make(chan struct{}),
	}
	go h.run(fn)
	return h
}

// tickerHandle wraps a time.Ticker and the goroutine draining it.
type tickerHandle struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (h *tickerHandle) run(fn func()) {
	for {
		select {
		case <-h.done:
			return
		case <-h.ticker.C:
			// Both cases may be ready at once; a stop wins.
			select {
			case <-h.done:
				return
			default:
			}
			fn()
		}
	}
}

// Stop implements ports.TickHandle. It does not wait for a callback that is
// already running, so it is safe to call from inside one.
func (h *tickerHandle) Stop() {
	h.once.Do(func() {
		h.ticker.Stop()
		close(h.done)
	})
}

// Ensure Ticker implements ports.TickSource.
var _ ports.TickSource = (*Ticker)(nil)
