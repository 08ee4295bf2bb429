package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/aura24/internal/app"
	"github.com/san-kum/aura24/internal/models"
	"github.com/san-kum/aura24/internal/viz"
)

// finalMinute is when the ritual clock turns to the warning color.
const finalMinute = 60

var sectionTitles = [sectionCount]string{"Aura Color", "Symbol", "Intent", "Mood"}

func (m model) View() string {
	switch m.machine.Phase() {
	case app.PhaseLocked:
		return m.viewLocked()
	case app.PhaseOnboarding:
		return m.viewOnboarding()
	case app.PhaseDiscovery:
		if _, ok := m.machine.Oracle(); ok {
			return m.viewOracle()
		}
		return m.viewDiscovery()
	case app.PhaseSharedRitual:
		return m.viewRitual()
	case app.PhaseExpired:
		return m.viewExpired()
	}
	return ""
}

func (m model) center(s string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s)
}

func (m model) viewLocked() string {
	t := viz.CurrentTheme
	var b strings.Builder
	b.WriteString(viz.GradientText("24H", lipgloss.Color("#FF3366"), lipgloss.Color("#BF00FF")) + "\n\n")
	b.WriteString(viz.Heading.Render("Not Yet") + "\n\n")
	b.WriteString(t.MutedStyle().Render("The presence only opens around the event.") + "\n")
	b.WriteString(t.FaintStyle().Render("Come back when the night begins.") + "\n\n")
	b.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.Quit}))
	return m.center(b.String())
}

func (m model) viewOnboarding() string {
	t := viz.CurrentTheme
	p := m.machine.Profile()

	var b strings.Builder
	b.WriteString(viz.GradientText("24H", lipgloss.Color(p.AuraColor), lipgloss.Color("#ffffff")) + "\n")
	b.WriteString(t.MutedStyle().Render("The Ephemeral Valentine") + "\n\n")

	rows := [sectionCount]string{
		m.auraRow(p),
		m.symbolRow(p),
		choiceRow(string(p.Intent), intentStrings()),
		choiceRow(string(p.Mood), moodStrings()),
	}
	for i, row := range rows {
		title := viz.Label.Render(viz.Spaced(strings.ToUpper(sectionTitles[i])))
		marker := "  "
		if section(i) == m.section {
			marker = viz.AuraStyle(p.AuraColor).Render("▸ ")
			title = viz.Heading.Render(viz.Spaced(strings.ToUpper(sectionTitles[i])))
		}
		b.WriteString(marker + title + "\n")
		b.WriteString("  " + row + "\n\n")
	}

	b.WriteString(viz.ButtonOn.Render("Activate Presence") + "\n\n")
	b.WriteString(m.help.ShortHelpView(m.keys.onboardingHelp()))
	return m.center(b.String())
}

func (m model) auraRow(p models.Profile) string {
	parts := make([]string, len(models.AuraPalette))
	for i, a := range models.AuraPalette {
		parts[i] = viz.Swatch(a.Hex, a.Hex == p.AuraColor)
	}
	name := ""
	if a, ok := models.AuraByHex(p.AuraColor); ok {
		name = viz.Label.Render(a.Name)
	}
	return strings.Join(parts, " ") + "  " + name
}

func (m model) symbolRow(p models.Profile) string {
	parts := make([]string, len(models.Symbols))
	for i, s := range models.Symbols {
		if s.ID == p.Symbol {
			parts[i] = viz.AuraStyle(p.AuraColor).Bold(true).Render("[" + s.Glyph + "]")
		} else {
			parts[i] = viz.CurrentTheme.FaintStyle().Render(" " + s.Glyph + " ")
		}
	}
	return strings.Join(parts, "")
}

func choiceRow(current string, options []string) string {
	parts := make([]string, len(options))
	for i, o := range options {
		if o == current {
			parts[i] = viz.ButtonOn.Render(o)
		} else {
			parts[i] = viz.ButtonOff.Render(o)
		}
	}
	return strings.Join(parts, "")
}

func intentStrings() []string {
	out := make([]string, len(models.Intents))
	for i, v := range models.Intents {
		out[i] = string(v)
	}
	return out
}

func moodStrings() []string {
	out := make([]string, len(models.Moods))
	for i, v := range models.Moods {
		out[i] = string(v)
	}
	return out
}

func (m model) hud() string {
	t := viz.CurrentTheme
	left := viz.Label.Render("EXPIRES IN ") + t.TextStyle().Bold(true).Render(m.machine.Display())
	right := viz.Label.Render("STATUS ") + t.LiveStyle().Render("● ACTIVE")
	return left + "    " + right
}

// radarSize keeps the radar round: one braille cell is 2x4 dots.
func (m model) radarSize() (w, h int) {
	h = m.height - 8
	if h > 20 {
		h = 20
	}
	if h < 8 {
		h = 8
	}
	return h * 2, h
}

func (m model) viewDiscovery() string {
	t := viz.CurrentTheme
	souls := m.machine.Souls()
	sel, selected := m.machine.Selected()

	w, h := m.radarSize()
	cursorID := ""
	if selected {
		cursorID = sel.ID
	} else if m.soulCursor < len(souls) {
		cursorID = souls[m.soulCursor].ID
	}
	lines, _ := viz.RenderRadar(viz.RadarView{
		User:     m.machine.Profile(),
		Souls:    souls,
		Selected: cursorID,
		Width:    w,
		Height:   h,
	})
	radar := strings.Join(lines, "\n")

	var side strings.Builder
	switch {
	case selected:
		side.WriteString(m.viewDetail(sel))
	case m.machine.Searching():
		side.WriteString(m.spinner.View() + " " + t.MutedStyle().Render("Sensing Nearby Auras...") + "\n")
		if len(souls) > 0 {
			side.WriteString("\n" + m.soulList(souls))
		}
	case len(souls) == 0:
		side.WriteString(t.FaintStyle().Render("No auras nearby.") + "\n")
	default:
		side.WriteString(m.soulList(souls))
	}

	var b strings.Builder
	b.WriteString(m.hud() + "\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, radar, "   ", side.String()) + "\n\n")
	b.WriteString(m.help.ShortHelpView(m.keys.discoveryHelp(selected, m.machine.CanConnect(), m.machine.CanEnterRitual())))
	return b.String()
}

func (m model) soulList(souls []models.Soul) string {
	t := viz.CurrentTheme
	var b strings.Builder
	b.WriteString(viz.Label.Render(viz.Spaced("NEARBY")) + "\n\n")
	for i, s := range souls {
		cursor := "  "
		if i == m.soulCursor {
			cursor = t.TextStyle().Render("▸ ")
		}
		glyph := viz.AuraStyle(s.AuraColor).Render(models.Glyph(s.Symbol))
		line := fmt.Sprintf("%d %s  %3d%%  ~%.1fm", i+1, glyph, s.Affinity, s.Distance)
		if s.Reachable() {
			b.WriteString(cursor + t.TextStyle().Render(line) + "\n")
		} else {
			b.WriteString(cursor + t.MutedStyle().Render(line) + "\n")
		}
	}
	return b.String()
}

func (m model) viewDetail(s models.Soul) string {
	t := viz.CurrentTheme
	aura := viz.AuraStyle(s.AuraColor)

	var b strings.Builder
	b.WriteString(aura.Bold(true).Render(models.Glyph(s.Symbol)) + "  " + viz.Heading.Render(fmt.Sprintf("%d%% Affinity", s.Affinity)) + "\n")
	b.WriteString(viz.Meter(float64(s.Affinity)/models.MaxAffinity, 20, aura) + "\n\n")
	b.WriteString(viz.Label.Render(fmt.Sprintf("Proximity: ~%.1fm", s.Distance)) + "\n")
	if s.Resonant() {
		b.WriteString(t.LiveStyle().Render("Synchronized Motion Detected") + "\n")
	}
	b.WriteString("\n")

	switch {
	case m.machine.Connecting():
		b.WriteString(m.spinner.View() + " " + t.MutedStyle().Render("Reaching out...") + "\n")
	case m.machine.CanConnect():
		b.WriteString(viz.ButtonOn.Render("Connect Presence") + "\n")
	default:
		b.WriteString(viz.ButtonOff.Render("Move Closer to Unlock") + "\n")
	}
	b.WriteString(viz.ButtonOff.Render("Dissolve Preview") + "\n")
	return viz.Panel.BorderForeground(lipgloss.Color(s.AuraColor)).Render(b.String())
}

func (m model) viewOracle() string {
	t := viz.CurrentTheme
	p, _ := m.machine.Oracle()
	sel, _ := m.machine.Selected()

	var b strings.Builder
	b.WriteString(viz.Label.Render(viz.Spaced("THE ORACLE SPEAKS")) + "\n")
	b.WriteString(viz.Separator(32) + "\n\n")
	b.WriteString(viz.Quote.Width(48).Render("\""+p.Phrase+"\"") + "\n\n")
	if m.machine.CanEnterRitual() {
		b.WriteString(viz.ButtonOn.Render("Parallel Universe Mode") + "\n")
	}
	b.WriteString(viz.ButtonOff.Render("Fade to Background") + "\n\n")
	b.WriteString(t.FaintStyle().Render(m.machine.Display()))

	card := viz.Veil.BorderForeground(lipgloss.Color(sel.AuraColor)).Render(b.String())
	hint := m.help.ShortHelpView(m.keys.discoveryHelp(true, false, m.machine.CanEnterRitual()))
	return m.center(card + "\n\n" + hint)
}

func (m model) viewRitual() string {
	t := viz.CurrentTheme
	timer := m.machine.RitualTimer()

	timerStyle := viz.Heading
	if timer.SecondsLeft() < finalMinute {
		timerStyle = t.WarnStyle().Bold(true)
	}

	var b strings.Builder
	b.WriteString(timerStyle.Render(timer.String()) + "\n")
	b.WriteString(viz.Label.Render(viz.Spaced("TIME REMAINING")) + "\n")
	b.WriteString(viz.Separator(32) + "\n\n")

	if r, ok := m.machine.Ritual(); ok {
		b.WriteString(viz.GradientText(r.Title, lipgloss.Color(m.machine.Profile().AuraColor), lipgloss.Color("#ffffff")) + "\n\n")
		b.WriteString(viz.Quote.Width(52).Render(r.Instructions) + "\n\n")
	} else {
		b.WriteString(m.spinner.View() + " " + t.MutedStyle().Render("Entering Parallel Universe...") + "\n\n")
	}

	b.WriteString(viz.ButtonOff.Render("Dissolve Connection") + "\n")
	b.WriteString(t.FaintStyle().Render("No records will remain.") + "\n\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ritualHelp()))
	return m.center(viz.Veil.Render(b.String()))
}

func (m model) viewExpired() string {
	t := viz.CurrentTheme
	var b strings.Builder
	b.WriteString(viz.Heading.Render("The Cycle Has Ended") + "\n\n")
	b.WriteString(viz.Quote.Render("Some connections are meant to exist only once.") + "\n\n")
	b.WriteString(t.FaintStyle().Render("All traces have been deleted. See you next year.") + "\n\n")
	b.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.Quit}))
	return m.center(b.String())
}
