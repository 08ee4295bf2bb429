// Package app is the application state machine. It owns every piece of mutable
// state of a run and is driven only through intent methods; the UI reads it and
// forwards user actions and timer results to it from a single goroutine.
package app

import (
	"errors"
	"time"

	"github.com/san-kum/aura24/internal/clock"
	"github.com/san-kum/aura24/internal/models"
)

// ErrWrongPhase is returned by profile edits outside onboarding.
var ErrWrongPhase = errors.New("app: not allowed in this phase")

type Machine struct {
	phase   Phase
	profile models.Profile

	souls     []models.Soul
	selected  *models.Soul
	oracle    *models.OraclePrompt
	ritual    *models.Ritual
	searching bool

	scanToken   Token
	oracleToken Token
	ritualToken Token
	lastToken   Token

	// epoch changes on every phase transition; timers owned by a phase
	// carry the epoch they were started in.
	epoch uint64

	countdown   clock.Countdown
	display     string
	expired     bool
	ritualTimer clock.RitualTimer

	onTransition func(from, to Phase)
}

type Option func(*Machine)

// StartLocked makes the run open on the locked screen.
func StartLocked() Option {
	return func(m *Machine) { m.phase = PhaseLocked }
}

// OnTransition registers a hook called after every phase change.
func OnTransition(fn func(from, to Phase)) Option {
	return func(m *Machine) { m.onTransition = fn }
}

func New(countdown clock.Countdown, opts ...Option) *Machine {
	m := &Machine{
		phase:     PhaseOnboarding,
		profile:   models.DefaultProfile(),
		countdown: countdown,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Machine) Phase() Phase            { return m.phase }
func (m *Machine) Profile() models.Profile { return m.profile }
func (m *Machine) Searching() bool         { return m.searching }
func (m *Machine) Connecting() bool        { return m.oracleToken != 0 }
func (m *Machine) Epoch() uint64           { return m.epoch }
func (m *Machine) Display() string         { return m.display }

func (m *Machine) Souls() []models.Soul {
	out := make([]models.Soul, len(m.souls))
	copy(out, m.souls)
	return out
}

func (m *Machine) Selected() (models.Soul, bool) {
	if m.selected == nil {
		return models.Soul{}, false
	}
	return *m.selected, true
}

func (m *Machine) Oracle() (models.OraclePrompt, bool) {
	if m.oracle == nil {
		return models.OraclePrompt{}, false
	}
	return *m.oracle, true
}

func (m *Machine) Ritual() (models.Ritual, bool) {
	if m.ritual == nil {
		return models.Ritual{}, false
	}
	return *m.ritual, true
}

func (m *Machine) RitualTimer() clock.RitualTimer { return m.ritualTimer }

// Countdown keeps ticking until the run reaches a terminal phase.
func (m *Machine) CountdownRunning() bool { return !m.phase.Terminal() }

func (m *Machine) SetAura(hex string) error {
	if m.phase != PhaseOnboarding {
		return ErrWrongPhase
	}
	return m.profile.SetAura(hex)
}

func (m *Machine) SetSymbol(id string) error {
	if m.phase != PhaseOnboarding {
		return ErrWrongPhase
	}
	return m.profile.SetSymbol(id)
}

func (m *Machine) SetIntent(i models.Intent) error {
	if m.phase != PhaseOnboarding {
		return ErrWrongPhase
	}
	return m.profile.SetIntent(i)
}

func (m *Machine) SetMood(mood models.Mood) error {
	if m.phase != PhaseOnboarding {
		return ErrWrongPhase
	}
	return m.profile.SetMood(mood)
}

// Activate confirms the profile and starts discovery with a first scan.
func (m *Machine) Activate() (Token, bool) {
	if m.phase != PhaseOnboarding {
		return 0, false
	}
	m.transition(PhaseDiscovery)
	return m.startScan(), true
}

func (m *Machine) CanRefresh() bool {
	return m.phase == PhaseDiscovery && !m.searching && m.selected == nil
}

// Refresh starts a new scan; the current batch stays visible until it lands.
func (m *Machine) Refresh() (Token, bool) {
	if !m.CanRefresh() {
		return 0, false
	}
	return m.startScan(), true
}

func (m *Machine) startScan() Token {
	m.searching = true
	m.scanToken = m.nextToken()
	return m.scanToken
}

// CompleteScan swaps in a whole batch. Stale or unexpected results are dropped.
func (m *Machine) CompleteScan(tok Token, batch []models.Soul) bool {
	if m.phase != PhaseDiscovery || !m.searching || tok != m.scanToken {
		return false
	}
	souls := make([]models.Soul, len(batch))
	copy(souls, batch)
	m.souls = souls
	m.searching = false
	m.scanToken = 0
	return true
}

// Select opens the detail overlay for a soul of the current batch.
func (m *Machine) Select(id string) bool {
	if m.phase != PhaseDiscovery || m.oracle != nil || m.Connecting() {
		return false
	}
	for i := range m.souls {
		if m.souls[i].ID == id {
			s := m.souls[i]
			m.selected = &s
			return true
		}
	}
	return false
}

// Dismiss clears the selection together with any prompt or pending connect.
func (m *Machine) Dismiss() bool {
	if m.phase != PhaseDiscovery || m.selected == nil {
		return false
	}
	m.clearSelection()
	return true
}

// CanConnect is true only while a soul within the proximity gate is selected
// and no prompt has been requested yet.
func (m *Machine) CanConnect() bool {
	return m.phase == PhaseDiscovery &&
		m.selected != nil &&
		m.oracle == nil &&
		!m.Connecting() &&
		m.selected.Reachable()
}

// Connect asks for an oracle prompt.
func (m *Machine) Connect() (Token, bool) {
	if !m.CanConnect() {
		return 0, false
	}
	m.oracleToken = m.nextToken()
	return m.oracleToken, true
}

func (m *Machine) CompleteOracle(tok Token, p models.OraclePrompt) bool {
	if m.phase != PhaseDiscovery || m.selected == nil || tok == 0 || tok != m.oracleToken {
		return false
	}
	m.oracle = &p
	m.oracleToken = 0
	return true
}

func (m *Machine) CanEnterRitual() bool {
	return m.phase == PhaseDiscovery &&
		m.selected != nil &&
		m.oracle != nil &&
		m.selected.Resonant()
}

// EnterRitual moves to the shared ritual and asks for its instructions.
func (m *Machine) EnterRitual() (Token, bool) {
	if !m.CanEnterRitual() {
		return 0, false
	}
	m.transition(PhaseSharedRitual)
	m.ritual = nil
	m.ritualTimer = clock.NewRitualTimer(clock.RitualDuration)
	m.ritualToken = m.nextToken()
	return m.ritualToken, true
}

func (m *Machine) CompleteRitual(tok Token, r models.Ritual) bool {
	if m.phase != PhaseSharedRitual || tok == 0 || tok != m.ritualToken {
		return false
	}
	m.ritual = &r
	m.ritualToken = 0
	return true
}

// TickRitual advances the ritual timer. It reports whether the timer should
// keep ticking.
func (m *Machine) TickRitual() bool {
	if m.phase != PhaseSharedRitual {
		return false
	}
	return m.ritualTimer.Tick()
}

// LeaveRitual returns to discovery with a clean selection. The batch of souls
// is kept.
func (m *Machine) LeaveRitual() bool {
	if m.phase != PhaseSharedRitual {
		return false
	}
	m.ritual = nil
	m.ritualToken = 0
	m.clearSelection()
	m.transition(PhaseDiscovery)
	return true
}

// ResetIdentity goes back to profile editing. The countdown keeps running.
func (m *Machine) ResetIdentity() bool {
	if m.phase != PhaseDiscovery && m.phase != PhaseSharedRitual {
		return false
	}
	m.clearRun()
	m.transition(PhaseOnboarding)
	return true
}

// Tick refreshes the countdown display and fires expiry the first time the
// cutoff has been reached. It returns true only on that first time.
func (m *Machine) Tick(now time.Time) bool {
	m.display = m.countdown.Format(now)
	if m.expired || m.phase.Terminal() || !m.countdown.Expired(now) {
		return false
	}
	m.expired = true
	m.display = clock.ZeroDisplay
	m.clearRun()
	m.transition(PhaseExpired)
	return true
}

func (m *Machine) clearSelection() {
	m.selected = nil
	m.oracle = nil
	m.oracleToken = 0
}

func (m *Machine) clearRun() {
	m.clearSelection()
	m.souls = nil
	m.searching = false
	m.scanToken = 0
	m.ritual = nil
	m.ritualToken = 0
}

func (m *Machine) transition(to Phase) {
	from := m.phase
	m.phase = to
	m.epoch++
	if m.onTransition != nil {
		m.onTransition(from, to)
	}
}

func (m *Machine) nextToken() Token {
	m.lastToken++
	return m.lastToken
}
