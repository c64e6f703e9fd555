package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Warning lipgloss.Color
}

var (
	ThemeDeepSpace = Theme{
		Name:    "deepspace",
		Primary: lipgloss.Color("#9ecbff"),
		Accent:  lipgloss.Color("#ffb86c"),
		Text:    lipgloss.Color("#e6e6e6"),
		Muted:   lipgloss.Color("#5c6370"),
		Warning: lipgloss.Color("#ff6b6b"),
	}

	ThemePhosphor = Theme{
		Name:    "phosphor",
		Primary: lipgloss.Color("#33ff66"),
		Accent:  lipgloss.Color("#ccff99"),
		Text:    lipgloss.Color("#22cc44"),
		Muted:   lipgloss.Color("#115522"),
		Warning: lipgloss.Color("#ffff00"),
	}

	ThemeMono = Theme{
		Name:    "mono",
		Primary: lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#bbbbbb"),
		Text:    lipgloss.Color("#dddddd"),
		Muted:   lipgloss.Color("#777777"),
		Warning: lipgloss.Color("#ffffff"),
	}

	Themes = []Theme{ThemeDeepSpace, ThemePhosphor, ThemeMono}
)

// GetTheme returns a theme by name, falling back to the first theme.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// next returns the theme after t, wrapping around.
func (t Theme) next() Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
