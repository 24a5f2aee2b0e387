package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/xvierd/pomodoro/internal/domain"
)

// getTerminalWidth returns the current terminal width, defaulting to 80.
func getTerminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w < 40 {
		return 80
	}
	return w
}

// inlineView renders a compact view that fits in a few terminal lines
// instead of taking over the screen.
func (m Model) inlineView() string {
	snap := m.ctrl.Snapshot()
	width := m.width
	if width == 0 {
		width = getTerminalWidth()
	}

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	var b strings.Builder
	if !snap.HasSession() {
		fmt.Fprintf(&b, "%s %s  %s\n",
			m.theme.IconApp,
			fmt.Sprintf("Focus %s", domain.MinutesToDuration(snap.FocusMinutes)),
			dim.Render(fmt.Sprintf("Break %s", domain.MinutesToDuration(snap.BreakMinutes))),
		)
	} else {
		label := lipgloss.NewStyle().Bold(true).Foreground(labelColor(m.theme, snap))
		clock := lipgloss.NewStyle().Bold(true).Foreground(timerColor(m.theme, snap))
		state := ""
		if snap.IsPaused() {
			state = "  " + m.pausedBadge()
		}
		fmt.Fprintf(&b, "%s %s  %s%s\n",
			m.theme.IconApp,
			label.Render(snap.Session.Label.String()),
			clock.Render(domain.SecondsToDuration(snap.Session.TimeRemaining)),
			state,
		)
		b.WriteString(m.progressView(snap, width-16))
		b.WriteString("\n")
	}
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	return b.String()
}
