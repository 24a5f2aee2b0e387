package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/pomodoro/internal/domain"
)

const (
	maxProgressWidth = 60
	minProgressWidth = 10
)

// sessionView renders the active session: title, countdown, subtitle and
// progress bar. It renders nothing while idle.
func (m Model) sessionView(snap domain.Snapshot) string {
	if !snap.HasSession() {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(labelColor(m.theme, snap))
	subtitleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorTitle))

	lines := []string{
		titleStyle.Render(snap.Title()),
		"",
		renderBigTime(domain.SecondsToDuration(snap.Session.TimeRemaining), timerColor(m.theme, snap), m.width),
		"",
		subtitleStyle.Render(snap.Subtitle()),
		m.progressView(snap, m.width-10),
	}
	if snap.IsPaused() {
		lines = append(lines, m.pausedBadge())
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

// progressView renders the elapsed fraction of the current interval.
func (m Model) progressView(snap domain.Snapshot, width int) string {
	start, end := gradient(m.theme, snap)
	bar := progress.New(
		progress.WithGradient(start, end),
		progress.WithWidth(clampWidth(width)),
	)
	return bar.ViewAs(snap.Percent() / 100)
}

func (m Model) pausedBadge() string {
	style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorPaused))
	return style.Render(strings.TrimSpace(m.theme.IconPaused + " Paused"))
}

func clampWidth(w int) int {
	return max(minProgressWidth, min(w, maxProgressWidth))
}
