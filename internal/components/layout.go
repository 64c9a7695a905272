package components

import (
	"github.com/charmbracelet/lipgloss"
)

var helpStyle = lipgloss.NewStyle().Padding(0, 1)

// Layout stacks the header, editor, user message and key help
type Layout struct {
	width  int
	height int
}

// NewLayout creates a layout for the given terminal size
func NewLayout(width, height int) *Layout {
	return &Layout{
		width:  width,
		height: height,
	}
}

// SetSize updates the terminal size
func (l *Layout) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// CalculateBodyHeight returns the available height for the editor
func (l *Layout) CalculateBodyHeight() int {
	bodyHeight := l.height - LayoutReservedLines
	if bodyHeight < MinBodyHeight {
		bodyHeight = MinBodyHeight
	}
	return bodyHeight
}

// Render builds the full layout
func (l *Layout) Render(header, body, message, help string) string {
	sections := []string{}

	if header != "" {
		sections = append(sections, header, "")
	}

	sections = append(sections, body)

	// Message line is always reserved so the editor does not jump
	sections = append(sections, message)

	if help != "" {
		sections = append(sections, helpStyle.Render(help))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
