package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme of the TUI.
type Theme struct {
	Name       string
	TitleStart lipgloss.Color
	TitleEnd   lipgloss.Color
	Canvas     lipgloss.Color
	Border     lipgloss.Color
	Label      lipgloss.Color
	Value      lipgloss.Color
	Active     lipgloss.Color
	Muted      lipgloss.Color
	Graph      lipgloss.Color
}

var (
	ThemeNebula = Theme{
		Name:       "nebula",
		TitleStart: lipgloss.Color("#fff4d6"),
		TitleEnd:   lipgloss.Color("#3a5bff"),
		Canvas:     lipgloss.Color("#b8c4ff"),
		Border:     lipgloss.Color("#444466"),
		Label:      lipgloss.Color("#888899"),
		Value:      lipgloss.Color("#e0e6ff"),
		Active:     lipgloss.Color("#ff9ff3"),
		Muted:      lipgloss.Color("#555570"),
		Graph:      lipgloss.Color("#4d80ff"),
	}

	ThemePhosphor = Theme{
		Name:       "phosphor",
		TitleStart: lipgloss.Color("#88ff88"),
		TitleEnd:   lipgloss.Color("#005500"),
		Canvas:     lipgloss.Color("#00ff00"),
		Border:     lipgloss.Color("#005500"),
		Label:      lipgloss.Color("#00aa00"),
		Value:      lipgloss.Color("#88ff88"),
		Active:     lipgloss.Color("#ffff00"),
		Muted:      lipgloss.Color("#005500"),
		Graph:      lipgloss.Color("#00cc00"),
	}

	ThemeEmber = Theme{
		Name:       "ember",
		TitleStart: lipgloss.Color("#feca57"),
		TitleEnd:   lipgloss.Color("#ff4757"),
		Canvas:     lipgloss.Color("#ff9f6b"),
		Border:     lipgloss.Color("#8b6b8c"),
		Label:      lipgloss.Color("#8b6b8c"),
		Value:      lipgloss.Color("#fff5f5"),
		Active:     lipgloss.Color("#ffc048"),
		Muted:      lipgloss.Color("#5a4050"),
		Graph:      lipgloss.Color("#ff6b6b"),
	}

	ThemeMono = Theme{
		Name:       "mono",
		TitleStart: lipgloss.Color("#ffffff"),
		TitleEnd:   lipgloss.Color("#666666"),
		Canvas:     lipgloss.Color("#dddddd"),
		Border:     lipgloss.Color("#444444"),
		Label:      lipgloss.Color("#888888"),
		Value:      lipgloss.Color("#ffffff"),
		Active:     lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#444444"),
		Graph:      lipgloss.Color("#aaaaaa"),
	}

	Themes = []Theme{
		ThemeNebula,
		ThemePhosphor,
		ThemeEmber,
		ThemeMono,
	}
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

// NextTheme returns the theme after the named one, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
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
