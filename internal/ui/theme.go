package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// DefaultTheme is used when no theme name matches
const DefaultTheme = "charm"

// Theme defines the color scheme and styles for the TUI
type Theme struct {
	Name string

	// Core colors
	Primary    lipgloss.AdaptiveColor
	Secondary  lipgloss.AdaptiveColor
	Accent     lipgloss.AdaptiveColor
	Foreground lipgloss.AdaptiveColor
	Muted      lipgloss.AdaptiveColor
	Error      lipgloss.AdaptiveColor
	Success    lipgloss.AdaptiveColor
	Warning    lipgloss.AdaptiveColor

	// UI element colors
	Border     lipgloss.AdaptiveColor // Separator lines, borders
	Dimmed     lipgloss.AdaptiveColor // Very subtle text (shortcuts)
	Background lipgloss.AdaptiveColor // Background for overlays

	// Message colors used by RenderMessage
	MessageInfo    lipgloss.AdaptiveColor
	MessageLoading lipgloss.AdaptiveColor

	// Component styles
	AppTitle  lipgloss.Style
	Header    lipgloss.Style
	StatusBar lipgloss.Style
	Alert     AlertStyles
}

// AlertStyles defines the look of the modal notification box
type AlertStyles struct {
	Box     lipgloss.Style
	Message lipgloss.Style
	Hint    lipgloss.Style
}

// palette is the raw color set a theme is built from
type palette struct {
	primary, secondary, accent, foreground, muted lipgloss.AdaptiveColor
	errorColor, success, warning                  lipgloss.AdaptiveColor
	border, background                            lipgloss.AdaptiveColor
}

func adaptive(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var palettes = map[string]palette{
	"charm": {
		primary:    adaptive("#5A56E0", "#7571F9"),
		secondary:  adaptive("#02BA84", "#02BF87"),
		accent:     adaptive("#F780E2", "#F780E2"),
		foreground: adaptive("235", "252"),
		muted:      adaptive("243", "243"),
		errorColor: adaptive("#FF4672", "#ED567A"),
		success:    adaptive("#02BA84", "#02BF87"),
		warning:    adaptive("#FFAA00", "#FFAA00"),
		border:     adaptive("240", "240"),
		background: adaptive("254", "235"),
	},
	"dracula": {
		primary:    adaptive("#bd93f9", "#bd93f9"),
		secondary:  adaptive("#8be9fd", "#8be9fd"),
		accent:     adaptive("#ff79c6", "#ff79c6"),
		foreground: adaptive("#282a36", "#f8f8f2"),
		muted:      adaptive("#6272a4", "#6272a4"),
		errorColor: adaptive("#ff5555", "#ff5555"),
		success:    adaptive("#50fa7b", "#50fa7b"),
		warning:    adaptive("#f1fa8c", "#f1fa8c"),
		border:     adaptive("61", "61"),
		background: adaptive("#f8f8f2", "#282a36"),
	},
	"catppuccin": {
		primary:    adaptive("#8839ef", "#cba6f7"),
		secondary:  adaptive("#179299", "#89dceb"),
		accent:     adaptive("#ea76cb", "#f5c2e7"),
		foreground: adaptive("#4c4f69", "#cdd6f4"),
		muted:      adaptive("#9ca0b0", "#7f849c"),
		errorColor: adaptive("#d20f39", "#f38ba8"),
		success:    adaptive("#40a02b", "#a6e3a1"),
		warning:    adaptive("#df8e1d", "#f9e2af"),
		border:     adaptive("#9ca0b0", "#45475a"),
		background: adaptive("#eff1f5", "#1e1e2e"),
	},
	"nord": {
		primary:    adaptive("#5e81ac", "#88c0d0"),
		secondary:  adaptive("#81a1c1", "#81a1c1"),
		accent:     adaptive("#b48ead", "#b48ead"),
		foreground: adaptive("#2e3440", "#eceff4"),
		muted:      adaptive("#4c566a", "#4c566a"),
		errorColor: adaptive("#bf616a", "#bf616a"),
		success:    adaptive("#a3be8c", "#a3be8c"),
		warning:    adaptive("#ebcb8b", "#ebcb8b"),
		border:     adaptive("#d8dee9", "#3b4252"),
		background: adaptive("#eceff4", "#2e3440"),
	},
	"gruvbox": {
		primary:    adaptive("#af3a03", "#fe8019"),
		secondary:  adaptive("#79740e", "#b8bb26"),
		accent:     adaptive("#b16286", "#d3869b"),
		foreground: adaptive("#3c3836", "#ebdbb2"),
		muted:      adaptive("#7c6f64", "#928374"),
		errorColor: adaptive("#9d0006", "#fb4934"),
		success:    adaptive("#79740e", "#b8bb26"),
		warning:    adaptive("#b57614", "#fabd2f"),
		border:     adaptive("#d5c4a1", "#504945"),
		background: adaptive("#fbf1c7", "#282828"),
	},
	"tokyo-night": {
		primary:    adaptive("#7aa2f7", "#7aa2f7"),
		secondary:  adaptive("#2ac3de", "#2ac3de"),
		accent:     adaptive("#bb9af7", "#bb9af7"),
		foreground: adaptive("#1a1b26", "#c0caf5"),
		muted:      adaptive("#565f89", "#565f89"),
		errorColor: adaptive("#f7768e", "#f7768e"),
		success:    adaptive("#9ece6a", "#9ece6a"),
		warning:    adaptive("#e0af68", "#e0af68"),
		border:     adaptive("#a9b1d6", "#292e42"),
		background: adaptive("#d5d6db", "#1a1b26"),
	},
}

func newTheme(name string, p palette) *Theme {
	t := &Theme{
		Name:       name,
		Primary:    p.primary,
		Secondary:  p.secondary,
		Accent:     p.accent,
		Foreground: p.foreground,
		Muted:      p.muted,
		Error:      p.errorColor,
		Success:    p.success,
		Warning:    p.warning,
		Border:     p.border,
		Dimmed:     p.muted,
		Background: p.background,

		MessageInfo:    p.primary,
		MessageLoading: p.accent,
	}

	t.AppTitle = lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	t.Header = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(t.Dimmed)

	t.Alert.Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Success).
		Padding(1, 3)

	t.Alert.Message = lipgloss.NewStyle().
		Foreground(t.Foreground).
		Bold(true)

	t.Alert.Hint = lipgloss.NewStyle().
		Foreground(t.Dimmed)

	return t
}

// ThemeCharm returns the default Charm theme
func ThemeCharm() *Theme {
	return GetTheme("charm")
}

// GetTheme returns a theme by exact name, defaulting to Charm
func GetTheme(name string) *Theme {
	p, ok := palettes[name]
	if !ok {
		name = DefaultTheme
		p = palettes[DefaultTheme]
	}
	return newTheme(name, p)
}

// ResolveTheme returns the theme whose name best matches name, so
// "tokyo" or "drac" pick tokyo-night and dracula. Falls back to Charm
// when nothing matches.
func ResolveTheme(name string) *Theme {
	if _, ok := palettes[name]; ok || name == "" {
		return GetTheme(name)
	}

	matches := fuzzy.Find(name, AvailableThemes())
	if len(matches) == 0 {
		return GetTheme(DefaultTheme)
	}
	return GetTheme(matches[0].Str)
}

// AvailableThemes returns a list of available theme names
func AvailableThemes() []string {
	return []string{"charm", "dracula", "catppuccin", "nord", "gruvbox", "tokyo-night"}
}
