package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/pomodoro/internal/domain"
)

// timeSettersView renders the focus and break duration editors. They are
// dimmed while a session exists since adjustments are ignored then.
func (m Model) timeSettersView(snap domain.Snapshot) string {
	focus := m.setterLine("Focus Duration", snap.FocusMinutes, "-", "+", snap.CanEditDurations())
	brk := m.setterLine("Break Duration", snap.BreakMinutes, "[", "]", snap.CanEditDurations())
	return lipgloss.JoinVertical(lipgloss.Left, focus, brk)
}

func (m Model) setterLine(name string, minutes int, down, up string, enabled bool) string {
	text := fmt.Sprintf("%s: %s", name, domain.MinutesToDuration(minutes))
	hint := fmt.Sprintf("  %s / %s", down, up)

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorTitle))
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))
	if !enabled {
		dim := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorDisabled))
		return dim.Render(text)
	}
	return labelStyle.Render(text) + hintStyle.Render(hint)
}

// controlsView renders the play/pause and stop controls.
func (m Model) controlsView(snap domain.Snapshot) string {
	active := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(labelColor(m.theme, snap))
	disabled := active.
		Foreground(lipgloss.Color(m.theme.ColorDisabled)).
		BorderForeground(lipgloss.Color(m.theme.ColorDisabled))

	play := active.Render(playLabel(snap))
	stop := disabled.Render("■ Stop")
	if snap.CanStop() {
		stop = active.Render("■ Stop")
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, play, " ", stop)
}

// playLabel names what the play/pause control does next.
func playLabel(snap domain.Snapshot) string {
	if snap.IsRunning {
		return "⏸ Pause"
	}
	if snap.IsPaused() {
		return "▶ Resume"
	}
	return "▶ Start"
}
