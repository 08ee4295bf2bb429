package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Overlay panel for the soul detail card.
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(1, 3)

	// Full-screen oracle and ritual cards.
	Veil = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		Padding(2, 4).
		Align(lipgloss.Center)

	Label = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#777777"))

	Heading = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffffff"))

	Quote = lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color("#e6e6e6"))

	ButtonOn = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#ffffff")).
			Padding(0, 2)

	ButtonOff = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#444444")).
			Padding(0, 2)

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#555555")).
		Italic(true)
)

// AuraStyle colors text with an aura hex value.
func AuraStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

// Swatch renders a filled dot in the aura color; selected swatches are ringed.
func Swatch(hex string, selected bool) string {
	if selected {
		return AuraStyle(hex).Bold(true).Render("(●)")
	}
	return AuraStyle(hex).Faint(true).Render(" ● ")
}

// GradientText fades text between two hex colors, one rune at a time.
func GradientText(text string, startColor, endColor lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	sr, sg, sb := parseHex(string(startColor))
	er, eg, eb := parseHex(string(endColor))

	var result strings.Builder
	for i, c := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		r := int(float64(sr) + t*float64(er-sr))
		g := int(float64(sg) + t*float64(eg-sg))
		b := int(float64(sb) + t*float64(eb-sb))
		result.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(r, g, b))).Render(string(c)))
	}
	return result.String()
}

// Meter renders a fill bar for fraction in [0,1].
func Meter(fraction float64, width int, fill lipgloss.Style) string {
	filled := int(fraction * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return fill.Render(strings.Repeat("━", filled)) + CurrentTheme.RingStyle().Render(strings.Repeat("─", width-filled))
}

func Separator(width int) string {
	if width < 8 {
		width = 8
	}
	mid := width / 2
	return CurrentTheme.FaintStyle().Render(strings.Repeat("─", mid-2) + " ◇ " + strings.Repeat("─", width-mid-2))
}

// Spaced puts a space between letters, the way headings are set.
func Spaced(s string) string {
	return strings.Join(strings.Split(strings.ToUpper(s), ""), " ")
}

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	return parseHexByte(hex[1:3]), parseHexByte(hex[3:5]), parseHexByte(hex[5:7])
}

func parseHexByte(s string) int {
	var val int
	for _, c := range s {
		val *= 16
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'a' && c <= 'f':
			val += int(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += int(c - 'A' + 10)
		}
	}
	return val
}

func hexColor(r, g, b int) string {
	return "#" + hexByte(r) + hexByte(g) + hexByte(b)
}

func hexByte(v int) string {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	const hex = "0123456789abcdef"
	return string(hex[v/16]) + string(hex[v%16])
}
