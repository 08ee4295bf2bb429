package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the neutral colors around the aura palette.
type Theme struct {
	Name    string
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Faint   lipgloss.Color
	Ring    lipgloss.Color
	Accent  lipgloss.Color
	Live    lipgloss.Color
	Warning lipgloss.Color
}

var (
	ThemeMidnight = Theme{
		Name:    "midnight",
		Text:    lipgloss.Color("#f2f2f2"),
		Muted:   lipgloss.Color("#8a8a8a"),
		Faint:   lipgloss.Color("#4a4a4a"),
		Ring:    lipgloss.Color("#303036"),
		Accent:  lipgloss.Color("#ffffff"),
		Live:    lipgloss.Color("#22c55e"),
		Warning: lipgloss.Color("#ffaa00"),
	}

	ThemeMono = Theme{
		Name:    "mono",
		Text:    lipgloss.Color("255"),
		Muted:   lipgloss.Color("245"),
		Faint:   lipgloss.Color("240"),
		Ring:    lipgloss.Color("238"),
		Accent:  lipgloss.Color("231"),
		Live:    lipgloss.Color("82"),
		Warning: lipgloss.Color("220"),
	}

	CurrentTheme = ThemeMidnight

	Themes = []Theme{ThemeMidnight, ThemeMono}
)

// GetTheme returns a theme by name, falling back to midnight.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeMidnight
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

func (t Theme) TextStyle() lipgloss.Style  { return lipgloss.NewStyle().Foreground(t.Text) }
func (t Theme) MutedStyle() lipgloss.Style { return lipgloss.NewStyle().Foreground(t.Muted) }
func (t Theme) FaintStyle() lipgloss.Style { return lipgloss.NewStyle().Foreground(t.Faint) }
func (t Theme) RingStyle() lipgloss.Style  { return lipgloss.NewStyle().Foreground(t.Ring) }
func (t Theme) LiveStyle() lipgloss.Style  { return lipgloss.NewStyle().Foreground(t.Live) }
func (t Theme) WarnStyle() lipgloss.Style  { return lipgloss.NewStyle().Foreground(t.Warning) }
