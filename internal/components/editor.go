package components

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/clipcopy/internal/ui"
)

// EditorPlaceholder is shown while the editor is empty
const EditorPlaceholder = "Type or paste the text to copy…"

// Editor holds the text that will be copied
type Editor struct {
	textarea textarea.Model
	theme    *ui.Theme
}

// NewEditor creates a focused, unbounded text editor
func NewEditor(theme *ui.Theme) *Editor {
	ta := textarea.New()
	ta.Placeholder = EditorPlaceholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Prompt = "┃ "
	ta.FocusedStyle.Prompt = lipgloss.NewStyle().Foreground(theme.Primary)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(theme.Dimmed)
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.Focus()

	return &Editor{
		textarea: ta,
		theme:    theme,
	}
}

// Value returns the current text, exactly as entered
func (e *Editor) Value() string {
	return e.textarea.Value()
}

// SetValue replaces the editor contents
func (e *Editor) SetValue(s string) {
	e.textarea.SetValue(s)
}

// Reset clears the editor
func (e *Editor) Reset() {
	e.textarea.Reset()
}

// SetSize sets the editor dimensions
func (e *Editor) SetSize(width, height int) {
	e.textarea.SetWidth(width)
	e.textarea.SetHeight(height)
}

// Update forwards input to the textarea
func (e *Editor) Update(msg tea.Msg) (*Editor, tea.Cmd) {
	var cmd tea.Cmd
	e.textarea, cmd = e.textarea.Update(msg)
	return e, cmd
}

// View renders the editor
func (e *Editor) View() string {
	return e.textarea.View()
}
