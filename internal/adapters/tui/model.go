package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/pomodoro/internal/config"
	"github.com/xvierd/pomodoro/internal/ports"
)

// changedMsg tells the program the controller state changed and the view
// should be redrawn. The model always reads a fresh snapshot in View.
type changedMsg struct{}

// Model is the bubbletea model for the timer widget. It holds no timer state
// of its own; every key press is forwarded to the controller.
type Model struct {
	ctrl     ports.Controller
	keys     keyMap
	help     help.Model
	theme    config.ThemeConfig
	width    int
	height   int
	inline   bool
	quitting bool
}

// NewModel creates a model driving ctrl.
func NewModel(ctrl ports.Controller, theme *config.ThemeConfig) Model {
	resolved := resolveTheme(theme)
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(resolved.ColorHelp)).Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(resolved.ColorHelp))
	h.Styles.FullKey = h.Styles.ShortKey
	h.Styles.FullDesc = h.Styles.ShortDesc

	m := Model{
		ctrl:  ctrl,
		keys:  newKeyMap(),
		help:  h,
		theme: resolved,
	}
	m.keys.syncWith(ctrl.Snapshot())
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case changedMsg:
		m.keys.syncWith(m.ctrl.Snapshot())
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.keys.syncWith(m.ctrl.Snapshot())

	if msg.String() == "?" {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	cmd, ok := m.keys.command(msg)
	if !ok {
		return m, nil
	}
	if !ports.Dispatch(m.ctrl, cmd) {
		m.quitting = true
		return m, tea.Quit
	}
	m.keys.syncWith(m.ctrl.Snapshot())
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.inline {
		return m.inlineView()
	}
	if m.width == 0 {
		return "Loading..."
	}

	snap := m.ctrl.Snapshot()

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n\n")
	b.WriteString(m.timeSettersView(snap))
	b.WriteString("\n\n")
	b.WriteString(m.controlsView(snap))
	if body := m.sessionView(snap); body != "" {
		b.WriteString("\n\n")
		b.WriteString(body)
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

func (m Model) headerView() string {
	style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle))
	return style.Render(m.theme.IconApp + " Pomodoro")
}
