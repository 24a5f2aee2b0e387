package clock

import (
	"sync"
	"time"

	"github.com/xvierd/pomodoro/internal/ports"
)

// Manual is a tick source that only ticks when Advance is called. It lets the
// controller be driven deterministically.
type Manual struct {
	mu      sync.Mutex
	handles []*manualHandle
	started int
}

// NewManual creates a new Manual tick source.
func NewManual() *Manual {
	return &Manual{}
}

// Every implements ports.TickSource. The interval is ignored.
func (m *Manual) Every(_ time.Duration, fn func()) ports.TickHandle {
	m.mu.Lock()
	defer m.mu.Unlock()
	h := &manualHandle{fn: fn}
	m.handles = append(m.handles, h)
	m.started++
	return h
}

// Advance delivers n ticks to every active handle.
func (m *Manual) Advance(n int) {
	for i := 0; i < n; i++ {
		for _, h := range m.active() {
			h.fire()
		}
	}
}

// Active returns the number of handles that have not been stopped.
func (m *Manual) Active() int {
	return len(m.active())
}

// Started returns how many handles were ever created.
func (m *Manual) Started() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.started
}

func (m *Manual) active() []*manualHandle {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*manualHandle
	for _, h := range m.handles {
		if !h.isStopped() {
			out = append(out, h)
		}
	}
	return out
}

type manualHandle struct {
	mu      sync.Mutex
	fn      func()
	stopped bool
}

func (h *manualHandle) Stop() {
	h.mu.Lock()
	h.stopped = true
	h.mu.Unlock()
}

func (h *manualHandle) isStopped() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stopped
}

func (h *manualHandle) fire() {
	if h.isStopped() {
		return
	}
	h.fn()
}

// Ensure Manual implements ports.TickSource.
var _ ports.TickSource = (*Manual)(nil)
