package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// glyphs holds a 3-row rendering of every character that can appear in an
// MM:SS countdown.
var glyphs = map[rune][3]string{
	'0': {"╭─╮", "│ │", "╰─╯"},
	'1': {" ╷ ", " │ ", " ╵ "},
	'2': {"╶─╮", "╭─╯", "╰─╴"},
	'3': {"╶─╮", " ─┤", "╶─╯"},
	'4': {"╷ ╷", "╰─┤", "  ╵"},
	'5': {"╭─╴", "╰─╮", "╶─╯"},
	'6': {"╭─╴", "├─╮", "╰─╯"},
	'7': {"╶─╮", "  │", "  ╵"},
	'8': {"╭─╮", "├─┤", "╰─╯"},
	'9': {"╭─╮", "╰─┤", "╶─╯"},
	':': {" ", "·", "·"},
}

// minBigTimeWidth is the narrowest terminal that gets the large countdown.
const minBigTimeWidth = 30

// renderBigTime renders a countdown such as "24:59" in large box-drawing
// digits, or as a single bold line on narrow terminals.
func renderBigTime(timeStr string, color lipgloss.Color, width int) string {
	style := lipgloss.NewStyle().Bold(true).Foreground(color)
	if width < minBigTimeWidth {
		return style.Render(timeStr)
	}

	var rows [3][]string
	for _, ch := range timeStr {
		glyph, ok := glyphs[ch]
		if !ok {
			continue
		}
		for i := range rows {
			rows[i] = append(rows[i], glyph[i])
		}
	}

	lines := make([]string, len(rows))
	for i, parts := range rows {
		lines[i] = style.Render(strings.Join(parts, " "))
	}
	return strings.Join(lines, "\n")
}
