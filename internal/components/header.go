package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/clipcopy/internal/types"
	"github.com/renato0307/clipcopy/internal/ui"
)

// Header shows the app name, the clipboard backend and the theme
type Header struct {
	appName string
	backend string
	width   int
	theme   *ui.Theme
}

// NewHeader creates the header from the application context
func NewHeader(ctx *types.AppContext, appName string) *Header {
	return &Header{
		appName: appName,
		backend: ctx.Backend,
		theme:   ctx.Theme,
	}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// View renders the header
func (h *Header) View() string {
	title := h.theme.AppTitle.Render(h.appName)
	info := h.theme.Header.Render(fmt.Sprintf("backend: %s │ theme: %s", h.backend, h.theme.Name))

	gap := h.width - lipgloss.Width(title) - lipgloss.Width(info)
	if gap < 1 {
		return lipgloss.JoinHorizontal(lipgloss.Top, title, " ", info)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, title, lipgloss.NewStyle().Width(gap).Render(""), info)
}
