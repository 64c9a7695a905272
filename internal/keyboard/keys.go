package keyboard

import "github.com/charmbracelet/bubbles/key"

// Keys holds all keyboard shortcut configurations for clipcopy
type Keys struct {
	// Editor
	Copy  string // Copy the editor contents
	Clear string // Clear the editor

	// Alert
	Dismiss    string // Close the notification
	DismissAlt string // Alternate close key

	// Global
	Quit string // Quit application
}

// Default returns the default keyboard configuration
func Default() *Keys {
	return &Keys{
		Copy:  "ctrl+y",
		Clear: "ctrl+l",

		Dismiss:    "enter",
		DismissAlt: "esc",

		Quit: "ctrl+c",
	}
}

// GetKeys returns the current keyboard configuration
func GetKeys() *Keys {
	return Default()
}

// CopyBinding returns the help-aware binding for Copy
func (k *Keys) CopyBinding() key.Binding {
	return key.NewBinding(key.WithKeys(k.Copy), key.WithHelp(k.Copy, "copy"))
}

// ClearBinding returns the help-aware binding for Clear
func (k *Keys) ClearBinding() key.Binding {
	return key.NewBinding(key.WithKeys(k.Clear), key.WithHelp(k.Clear, "clear"))
}

// QuitBinding returns the help-aware binding for Quit
func (k *Keys) QuitBinding() key.Binding {
	return key.NewBinding(key.WithKeys(k.Quit), key.WithHelp(k.Quit, "quit"))
}

// DismissBinding returns the help-aware binding for closing an alert
func (k *Keys) DismissBinding() key.Binding {
	return key.NewBinding(key.WithKeys(k.Dismiss, k.DismissAlt), key.WithHelp(k.Dismiss, "dismiss"))
}

// EditorHelp lists the bindings shown under the editor
func (k *Keys) EditorHelp() []key.Binding {
	return []key.Binding{k.CopyBinding(), k.ClearBinding(), k.QuitBinding()}
}
