// Package notification provides the audible alert fired when a session
// switches between focus and break.
package notification

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gen2brain/beeep"
	"github.com/xvierd/pomodoro/internal/config"
	"github.com/xvierd/pomodoro/internal/domain"
	"github.com/xvierd/pomodoro/internal/ports"
)

// Notifier implements ports.Alerter with a beep and a desktop notification.
type Notifier struct {
	cfg    *config.NotificationConfig
	beep   func() error
	notify func(title, message string) error
	bell   io.Writer
}

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{
		cfg: cfg,
		beep: func() error {
			return beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
		},
		notify: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
		bell: os.Stderr,
	}
}

// Alert beeps (falling back to the terminal bell) when sound is on and shows a
// desktop notification naming the session that just started when
// notifications are enabled. Both are best effort.
func (n *Notifier) Alert(next domain.Label) error {
	if n.cfg == nil {
		return nil
	}

	var errs []error
	if n.cfg.Sound {
		if err := n.beep(); err != nil {
			if _, bellErr := io.WriteString(n.bell, "\a"); bellErr != nil {
				errs = append(errs, fmt.Errorf("beep failed: %w", err))
			}
		}
	}

	if n.IsEnabled() {
		title, message := alertText(next)
		if err := n.notify(title, message); err != nil {
			errs = append(errs, fmt.Errorf("notification failed: %w", err))
		}
	}

	return errors.Join(errs...)
}

// IsEnabled returns true if desktop notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}

func alertText(next domain.Label) (title, message string) {
	if next == domain.LabelOnBreak {
		return "☕ Time for a break", "Focus interval complete. Step away for a bit."
	}
	return "🍅 Back to focus", "Break is over. Ready to focus?"
}

// Ensure Notifier implements ports.Alerter.
var _ ports.Alerter = (*Notifier)(nil)
