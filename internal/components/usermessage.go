package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/clipcopy/internal/types"
	"github.com/renato0307/clipcopy/internal/ui"
)

// UserMessage manages and displays user-facing status messages (success, errors, info, loading).
// Rendering is delegated to ui.RenderMessage.
type UserMessage struct {
	message     string
	messageType types.MessageType
	width       int
	theme       *ui.Theme
	spinner     spinner.Model
}

// NewUserMessage creates a new user message component
func NewUserMessage(theme *ui.Theme) *UserMessage {
	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: []string{"✽", "✻", "✶", "·", "✢"},
		FPS:    time.Second / 6,
	}
	s.Style = lipgloss.NewStyle()

	return &UserMessage{
		theme:   theme,
		spinner: s,
	}
}

// SetMessage sets the message text and type
func (um *UserMessage) SetMessage(msg string, msgType types.MessageType) {
	um.message = msg
	um.messageType = msgType
}

// Message returns the current message text
func (um *UserMessage) Message() string {
	return um.message
}

// GetSpinnerCmd returns the spinner tick command if showing loading message
func (um *UserMessage) GetSpinnerCmd() tea.Cmd {
	if um.messageType == types.MessageTypeLoading {
		return um.spinner.Tick
	}
	return nil
}

// ClearMessage clears the current message
func (um *UserMessage) ClearMessage() {
	um.message = ""
	um.messageType = types.MessageTypeInfo
}

// IsLoadingMessage returns true if the current message is a loading message
func (um *UserMessage) IsLoadingMessage() bool {
	return um.message != "" && um.messageType == types.MessageTypeLoading
}

// SetWidth sets the component width
func (um *UserMessage) SetWidth(width int) {
	um.width = width
}

// GetHeight returns the height (always 1 line to reserve space)
func (um *UserMessage) GetHeight() int {
	return 1
}

// Update handles spinner updates for loading messages
func (um *UserMessage) Update(msg tea.Msg) (*UserMessage, tea.Cmd) {
	if um.messageType == types.MessageTypeLoading {
		var cmd tea.Cmd
		um.spinner, cmd = um.spinner.Update(msg)
		return um, cmd
	}
	return um, nil
}

// View renders the user message
func (um *UserMessage) View() string {
	if um.message == "" {
		// Render empty line to reserve space
		return lipgloss.NewStyle().Width(um.width).Render("")
	}

	var prefix string
	if um.messageType == types.MessageTypeLoading {
		prefix = um.spinner.View() + " "
	}

	return ui.RenderMessage(um.message, um.color(), prefix, um.width)
}

func (um *UserMessage) color() lipgloss.AdaptiveColor {
	if um.messageType == types.MessageTypeLoading {
		return um.theme.MessageLoading
	}
	return um.theme.MessageInfo
}
