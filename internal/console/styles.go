package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	// Light Mode Colors
	LightForeground = lipgloss.Color("#101F38") // Dark Blue
	LightPrimary    = lipgloss.Color("#101F38")
	LightAccent     = lipgloss.Color("#8BC34A") // Lime Green
	LightMuted      = lipgloss.Color("#6b7280")

	// Dark Mode Colors
	DarkForeground = lipgloss.Color("#f2f2f2")
	DarkPrimary    = lipgloss.Color("#8BC34A") // Lime Green (flipped)
	DarkAccent     = lipgloss.Color("#2196F3")
	DarkMuted      = lipgloss.Color("#9aa5b8")

	// Semantic Colors (same in both modes)
	Destructive = lipgloss.Color("#e53935") // Red
	Success     = lipgloss.Color("#8BC34A") // Lime Green
	Warning     = lipgloss.Color("#FFC107") // Yellow
)

// Theme holds the current color scheme
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		IsDark:     true,
	}
}

// ThemeByName maps the ui.theme config value to a Theme; anything but "light" is dark.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}

// Styles holds the styled text roles used by the exercises.
type Styles struct {
	Theme Theme

	Title   lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style
	Prompt  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Divider lipgloss.Style
}

// NewStyles builds styles bound to w, so a non-terminal writer gets plain text.
func NewStyles(w io.Writer, theme Theme) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Theme: theme,

		Title: r.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Body: r.NewStyle().
			Foreground(theme.Foreground),

		Muted: r.NewStyle().
			Foreground(theme.Muted),

		Prompt: r.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		Success: r.NewStyle().
			Foreground(Success),

		Warning: r.NewStyle().
			Foreground(Warning),

		Error: r.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Divider: r.NewStyle().
			Foreground(theme.Muted),
	}
}
