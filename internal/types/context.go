package types

import (
	"github.com/renato0307/clipcopy/internal/copier"
	"github.com/renato0307/clipcopy/internal/keyboard"
	"github.com/renato0307/clipcopy/internal/ui"
)

// AppContext holds app-wide configuration and dependencies
type AppContext struct {
	Theme   *ui.Theme
	Keys    *keyboard.Keys
	Copier  *copier.Copier
	Backend string // Clipboard backend name shown in the header
}

// NewAppContext creates a new application context
func NewAppContext(
	theme *ui.Theme,
	keys *keyboard.Keys,
	c *copier.Copier,
	backend string,
) *AppContext {
	return &AppContext{
		Theme:   theme,
		Keys:    keys,
		Copier:  c,
		Backend: backend,
	}
}
