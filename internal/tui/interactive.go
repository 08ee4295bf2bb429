package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/san-kum/aura24/internal/app"
	"github.com/san-kum/aura24/internal/models"
	"github.com/san-kum/aura24/internal/oracle"
	"github.com/san-kum/aura24/internal/sim"
)

type section int

const (
	sectionAura section = iota
	sectionSymbol
	sectionIntent
	sectionMood
	sectionCount
)

// scope carries the context of the requests started in one epoch. It is
// cancelled as soon as the machine leaves that epoch or the selection goes.
type scope struct {
	ctx    context.Context
	cancel context.CancelFunc
	epoch  uint64
}

type model struct {
	machine *app.Machine
	sim     *sim.Simulator
	oracle  *oracle.Oracle
	now     func() time.Time
	log     *zap.Logger

	scope *scope

	section    section
	soulCursor int

	spinner  spinner.Model
	spinning bool
	keys     keyMap
	help     help.Model

	width  int
	height int
}

type Option func(*model)

// WithClock replaces the wall clock used for the countdown.
func WithClock(now func() time.Time) Option {
	return func(m *model) { m.now = now }
}

func WithLogger(l *zap.Logger) Option {
	return func(m *model) {
		if l != nil {
			m.log = l
		}
	}
}

func New(machine *app.Machine, s *sim.Simulator, o *oracle.Oracle, opts ...Option) *model {
	sp := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	m := &model{
		machine: machine,
		sim:     s,
		oracle:  o,
		now:     time.Now,
		log:     zap.NewNop(),
		spinner: sp,
		keys:    defaultKeys(),
		help:    help.New(),
		width:   80,
		height:  24,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run blocks until the user quits.
func Run(m *model) error {
	final, err := tea.NewProgram(*m, tea.WithAltScreen()).Run()
	if fm, ok := final.(model); ok {
		fm.cancelScope()
	}
	return err
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg { return countdownMsg(m.now()) }
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case countdownMsg:
		if m.machine.Tick(m.now()) {
			m.cancelScope()
			m.log.Info("cycle ended", zap.String("display", m.machine.Display()))
		}
		if m.machine.CountdownRunning() {
			return m, countdownTick()
		}
		return m, nil
	case scanDueMsg:
		batch := m.sim.Simulate()
		if m.machine.CompleteScan(msg.token, batch) {
			m.soulCursor = 0
			m.log.Debug("scan landed", zap.Uint64("token", uint64(msg.token)), zap.Int("souls", len(batch)))
		} else {
			m.log.Debug("stale scan dropped", zap.Uint64("token", uint64(msg.token)))
		}
		return m, nil
	case oracleMsg:
		if !m.machine.CompleteOracle(msg.token, msg.prompt) {
			m.log.Debug("stale oracle prompt dropped", zap.Uint64("token", uint64(msg.token)))
		}
		return m, nil
	case ritualMsg:
		if !m.machine.CompleteRitual(msg.token, msg.ritual) {
			m.log.Debug("stale ritual dropped", zap.Uint64("token", uint64(msg.token)))
		}
		return m, nil
	case ritualTickMsg:
		if msg.epoch != m.machine.Epoch() {
			return m, nil
		}
		if m.machine.TickRitual() {
			return m, ritualTick(msg.epoch)
		}
		return m, nil
	case spinner.TickMsg:
		if !m.busy() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// busy is true while something is loading behind a spinner.
func (m model) busy() bool {
	switch m.machine.Phase() {
	case app.PhaseDiscovery:
		return m.machine.Searching() || m.machine.Connecting()
	case app.PhaseSharedRitual:
		_, ok := m.machine.Ritual()
		return !ok
	}
	return false
}

func (m *model) spin() tea.Cmd {
	if m.spinning {
		return nil
	}
	m.spinning = true
	return m.spinner.Tick
}

func (m *model) scopeContext() context.Context {
	if m.scope != nil && m.scope.epoch == m.machine.Epoch() {
		return m.scope.ctx
	}
	m.cancelScope()
	ctx, cancel := context.WithCancel(context.Background())
	m.scope = &scope{ctx: ctx, cancel: cancel, epoch: m.machine.Epoch()}
	return ctx
}

func (m *model) cancelScope() {
	if m.scope != nil {
		m.scope.cancel()
		m.scope = nil
	}
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.cancelScope()
		return m, tea.Quit
	}
	switch m.machine.Phase() {
	case app.PhaseOnboarding:
		return m.onboardingKey(msg)
	case app.PhaseDiscovery:
		return m.discoveryKey(msg)
	case app.PhaseSharedRitual:
		return m.ritualKey(msg)
	}
	return m, nil
}

func (m model) onboardingKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.section = (m.section + sectionCount - 1) % sectionCount
	case key.Matches(msg, m.keys.Down):
		m.section = (m.section + 1) % sectionCount
	case key.Matches(msg, m.keys.Left):
		m.cycle(-1)
	case key.Matches(msg, m.keys.Right):
		m.cycle(1)
	case key.Matches(msg, m.keys.Activate):
		tok, ok := m.machine.Activate()
		if !ok {
			return m, nil
		}
		p := m.machine.Profile()
		m.log.Info("presence activated",
			zap.String("aura", p.AuraColor),
			zap.String("symbol", p.Symbol),
			zap.String("intent", string(p.Intent)),
			zap.String("mood", string(p.Mood)))
		m.soulCursor = 0
		cmd := tea.Batch(scanAfter(m.sim.Delay(), tok), m.spin())
		return m, cmd
	}
	return m, nil
}

// cycle moves the choice of the focused section by step, wrapping around.
func (m *model) cycle(step int) {
	p := m.machine.Profile()
	switch m.section {
	case sectionAura:
		i := wrap(auraIndex(p.AuraColor)+step, len(models.AuraPalette))
		_ = m.machine.SetAura(models.AuraPalette[i].Hex)
	case sectionSymbol:
		i := wrap(symbolIndex(p.Symbol)+step, len(models.Symbols))
		_ = m.machine.SetSymbol(models.Symbols[i].ID)
	case sectionIntent:
		i := wrap(intentIndex(p.Intent)+step, len(models.Intents))
		_ = m.machine.SetIntent(models.Intents[i])
	case sectionMood:
		i := wrap(moodIndex(p.Mood)+step, len(models.Moods))
		_ = m.machine.SetMood(models.Moods[i])
	}
}

func (m model) discoveryKey(msg tea.KeyMsg) (model, tea.Cmd) {
	_, selected := m.machine.Selected()
	souls := m.machine.Souls()

	switch {
	case key.Matches(msg, m.keys.Connect):
		tok, ok := m.machine.Connect()
		if !ok {
			return m, nil
		}
		s, _ := m.machine.Selected()
		m.log.Debug("connecting", zap.String("soul", s.ID), zap.Uint64("token", uint64(tok)))
		cmd := tea.Batch(m.fetchOracle(m.scopeContext(), tok), m.spin())
		return m, cmd
	case key.Matches(msg, m.keys.Ritual):
		tok, ok := m.machine.EnterRitual()
		if !ok {
			return m, nil
		}
		cmd := tea.Batch(m.fetchRitual(m.scopeContext(), tok), ritualTick(m.machine.Epoch()), m.spin())
		return m, cmd
	case key.Matches(msg, m.keys.Dismiss):
		if m.machine.Dismiss() {
			m.cancelScope()
		}
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		tok, ok := m.machine.Refresh()
		if !ok {
			return m, nil
		}
		cmd := tea.Batch(scanAfter(m.sim.Delay(), tok), m.spin())
		return m, cmd
	case key.Matches(msg, m.keys.Identity):
		if m.machine.ResetIdentity() {
			m.cancelScope()
			m.section = sectionAura
		}
		return m, nil
	}

	if selected || len(souls) == 0 {
		return m, nil
	}

	switch msg.String() {
	case "left", "h", "shift+tab":
		m.soulCursor = wrap(m.soulCursor-1, len(souls))
	case "right", "l", "tab":
		m.soulCursor = wrap(m.soulCursor+1, len(souls))
	case "1", "2", "3", "4":
		i := int(msg.String()[0] - '1')
		if i < len(souls) {
			m.soulCursor = i
			m.machine.Select(souls[i].ID)
		}
	case "enter":
		if m.soulCursor < len(souls) {
			m.machine.Select(souls[m.soulCursor].ID)
		}
	}
	return m, nil
}

func (m model) ritualKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Dismiss), msg.String() == "enter":
		if m.machine.LeaveRitual() {
			m.cancelScope()
			m.soulCursor = 0
		}
	case key.Matches(msg, m.keys.Identity):
		if m.machine.ResetIdentity() {
			m.cancelScope()
			m.section = sectionAura
		}
	}
	return m, nil
}

func wrap(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}

func auraIndex(hex string) int {
	for i, a := range models.AuraPalette {
		if a.Hex == hex {
			return i
		}
	}
	return 0
}

func symbolIndex(id string) int {
	for i, s := range models.Symbols {
		if s.ID == id {
			return i
		}
	}
	return 0
}

func intentIndex(in models.Intent) int {
	for i, v := range models.Intents {
		if v == in {
			return i
		}
	}
	return 0
}

func moodIndex(mood models.Mood) int {
	for i, v := range models.Moods {
		if v == mood {
			return i
		}
	}
	return 0
}
