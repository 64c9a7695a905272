package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Bullet is the default prefix for user messages
const Bullet = "⏺ "

// RenderMessage renders a single-line user message in the given color.
// Long messages are truncated to fit the terminal width.
func RenderMessage(text string, color lipgloss.AdaptiveColor, prefix string, width int) string {
	if text == "" {
		return ""
	}
	if prefix == "" {
		prefix = Bullet
	}

	// Max length = terminal width - prefix (2) - margin (5)
	maxMessageLength := width - 7
	if maxMessageLength < 20 {
		maxMessageLength = 20
	}
	if runes := []rune(text); len(runes) > maxMessageLength {
		text = string(runes[:maxMessageLength-1]) + "…"
	}

	return lipgloss.NewStyle().Foreground(color).Render(prefix + text)
}

// RenderAlert renders the notification box: the message followed by a
// dismissal hint, both centered inside a rounded border.
func RenderAlert(theme *Theme, message, hint string) string {
	lines := []string{theme.Alert.Message.Render(message)}
	if hint = strings.TrimSpace(hint); hint != "" {
		lines = append(lines, "", theme.Alert.Hint.Render(hint))
	}
	body := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return theme.Alert.Box.Render(body)
}
