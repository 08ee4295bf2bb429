package app

// Phase is the top-level screen of a run.
type Phase int

const (
	// PhaseLocked is shown outside the activation window. It is terminal.
	PhaseLocked Phase = iota
	PhaseOnboarding
	PhaseDiscovery
	PhaseSharedRitual
	// PhaseExpired follows the cutoff. It is terminal.
	PhaseExpired
)

func (p Phase) String() string {
	switch p {
	case PhaseLocked:
		return "locked"
	case PhaseOnboarding:
		return "onboarding"
	case PhaseDiscovery:
		return "discovery"
	case PhaseSharedRitual:
		return "shared_ritual"
	case PhaseExpired:
		return "expired"
	}
	return "unknown"
}

func (p Phase) Terminal() bool {
	return p == PhaseLocked || p == PhaseExpired
}

// Token identifies one outstanding scan or generator request. Results carrying
// any other token are stale and dropped. The zero token is never issued.
type Token uint64
