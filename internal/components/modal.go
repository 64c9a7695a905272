package components

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/clipcopy/internal/keyboard"
	"github.com/renato0307/clipcopy/internal/ui"
)

// Modal is the interactive notifier: a centered alert box that captures all
// input until the user dismisses it. Alerts raised while one is showing are
// queued and shown in order, one per call.
type Modal struct {
	queue   []string
	width   int
	height  int
	theme   *ui.Theme
	dismiss key.Binding
	help    help.Model
}

// NewModal creates a new modal notifier
func NewModal(theme *ui.Theme, keys *keyboard.Keys) *Modal {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Primary)
	h.Styles.ShortDesc = theme.Alert.Hint

	return &Modal{
		width:   80,
		height:  24,
		theme:   theme,
		dismiss: keys.DismissBinding(),
		help:    h,
	}
}

// Alert queues a notification. It must be called from the update loop.
func (m *Modal) Alert(message string) {
	m.queue = append(m.queue, message)
}

// Visible returns true while a notification is waiting for dismissal
func (m *Modal) Visible() bool {
	return len(m.queue) > 0
}

// Message returns the notification currently shown
func (m *Modal) Message() string {
	if !m.Visible() {
		return ""
	}
	return m.queue[0]
}

// Queued returns how many notifications are waiting, including the visible one
func (m *Modal) Queued() int {
	return len(m.queue)
}

// SetSize sets the area the modal is centered in
func (m *Modal) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// HandleKey closes the visible notification on the dismiss keys and reports
// whether it did. Every other key is swallowed.
func (m *Modal) HandleKey(msg tea.KeyMsg) bool {
	if !m.Visible() || !key.Matches(msg, m.dismiss) {
		return false
	}
	m.queue = m.queue[1:]
	return true
}

// View renders the visible notification centered in the modal area
func (m *Modal) View() string {
	if !m.Visible() {
		return ""
	}

	box := ui.RenderAlert(m.theme, m.Message(), m.help.ShortHelpView([]key.Binding{m.dismiss}))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
