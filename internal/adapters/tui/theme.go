package tui

import (
	"reflect"

	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/pomodoro/internal/config"
	"github.com/xvierd/pomodoro/internal/domain"
)

// resolveTheme fills any empty string fields in the given ThemeConfig with defaults.
// If theme is nil, returns the full default theme.
func resolveTheme(theme *config.ThemeConfig) config.ThemeConfig {
	defaults := config.DefaultThemeConfig()
	if theme == nil {
		return defaults
	}
	resolved := *theme
	rv := reflect.ValueOf(&resolved).Elem()
	dv := reflect.ValueOf(defaults)
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.String && f.String() == "" {
			f.SetString(dv.Field(i).String())
		}
	}
	return resolved
}

// labelColor returns the accent color for the session's interval.
func labelColor(theme config.ThemeConfig, snap domain.Snapshot) lipgloss.Color {
	if snap.Session != nil && snap.Session.IsBreak() {
		return lipgloss.Color(theme.ColorBreak)
	}
	return lipgloss.Color(theme.ColorFocus)
}

// timerColor is labelColor, greyed out while paused.
func timerColor(theme config.ThemeConfig, snap domain.Snapshot) lipgloss.Color {
	if snap.IsPaused() {
		return lipgloss.Color(theme.ColorPaused)
	}
	return labelColor(theme, snap)
}

// gradient returns the progress bar colors for the snapshot.
func gradient(theme config.ThemeConfig, snap domain.Snapshot) (string, string) {
	switch {
	case snap.IsPaused():
		return theme.PausedGradientStart, theme.PausedGradientEnd
	case snap.Session != nil && snap.Session.IsBreak():
		return theme.BreakGradientStart, theme.BreakGradientEnd
	default:
		return theme.FocusGradientStart, theme.FocusGradientEnd
	}
}
