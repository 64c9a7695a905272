package messages

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/clipcopy/internal/types"
)

// UI layer helpers - return tea.Cmd with a StatusMsg

// InfoCmd returns a tea.Cmd that produces an info status message.
//
// Example:
//
//	return messages.InfoCmd("Editor cleared")
func InfoCmd(format string, args ...any) tea.Cmd {
	msg := fmt.Sprintf(format, args...)
	return func() tea.Msg {
		return types.InfoMsg(msg)
	}
}

// WrapError wraps an error with additional context using fmt.Errorf.
// Preserves the error chain for debugging with %w.
//
// Example:
//
//	data, err := os.ReadFile(path)
//	if err != nil {
//	    return messages.WrapError(err, "failed to read config %s", path)
//	}
func WrapError(err error, format string, args ...any) error {
	context := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", context, err)
}
