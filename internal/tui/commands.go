package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/aura24/internal/app"
	"github.com/san-kum/aura24/internal/clock"
	"github.com/san-kum/aura24/internal/models"
)

// countdownMsg drives the run countdown once per second.
type countdownMsg time.Time

// scanDueMsg fires when the sensing delay of a scan is over.
type scanDueMsg struct{ token app.Token }

type oracleMsg struct {
	token  app.Token
	prompt models.OraclePrompt
}

type ritualMsg struct {
	token  app.Token
	ritual models.Ritual
}

// ritualTickMsg belongs to the shared ritual entered at epoch.
type ritualTickMsg struct{ epoch uint64 }

func countdownTick() tea.Cmd {
	return tea.Tick(clock.TickInterval, func(t time.Time) tea.Msg { return countdownMsg(t) })
}

func scanAfter(delay time.Duration, tok app.Token) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return scanDueMsg{token: tok} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg { return scanDueMsg{token: tok} })
}

func ritualTick(epoch uint64) tea.Cmd {
	return tea.Tick(clock.TickInterval, func(time.Time) tea.Msg { return ritualTickMsg{epoch: epoch} })
}

func (m model) fetchOracle(ctx context.Context, tok app.Token) tea.Cmd {
	o := m.oracle
	return func() tea.Msg {
		return oracleMsg{token: tok, prompt: o.FetchOraclePrompt(ctx)}
	}
}

func (m model) fetchRitual(ctx context.Context, tok app.Token) tea.Cmd {
	o := m.oracle
	return func() tea.Msg {
		return ritualMsg{token: tok, ritual: o.FetchRitual(ctx)}
	}
}
