package tui

import (
	"context"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xvierd/pomodoro/internal/config"
	"github.com/xvierd/pomodoro/internal/domain"
	"github.com/xvierd/pomodoro/internal/ports"
)

// Timer implements the ports.Timer interface using Bubbletea.
type Timer struct {
	ctrl    ports.Controller
	theme   *config.ThemeConfig
	inline  bool
	opts    []tea.ProgramOption
	program *tea.Program
	cancel  context.CancelFunc
	mu      sync.Mutex
	wg      sync.WaitGroup
}

// NewTimer creates a new TUI timer adapter driving ctrl.
func NewTimer(ctrl ports.Controller, theme *config.ThemeConfig) *Timer {
	return &Timer{ctrl: ctrl, theme: theme}
}

// SetInline switches between the full-screen and the compact view.
func (t *Timer) SetInline(inline bool) {
	t.inline = inline
}

// Run starts the timer interface and blocks until completion. The running
// session, if any, is stopped on exit and the change listener is removed, so
// Run may be called again on the same controller.
func (t *Timer) Run(ctx context.Context) error {
	m := NewModel(t.ctrl, t.theme)
	m.inline = t.inline

	opts := t.opts
	if !t.inline {
		opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	}

	t.mu.Lock()
	t.program = tea.NewProgram(m, opts...)
	program := t.program
	ctx, t.cancel = context.WithCancel(ctx)
	cancel := t.cancel
	t.mu.Unlock()
	defer cancel()

	// Notifications may arrive from inside Update, so Send must not block
	// the controller.
	unsubscribe := t.ctrl.OnChange(func(domain.Snapshot) {
		go program.Send(changedMsg{})
	})

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		<-ctx.Done()
		program.Quit()
	}()

	_, err := program.Run()

	cancel()
	t.wg.Wait()
	unsubscribe()
	t.ctrl.Stop()

	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// Stop gracefully stops the timer interface.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		t.cancel()
	}
	if t.program != nil {
		t.program.Quit()
	}
}

var _ ports.Timer = (*Timer)(nil)
