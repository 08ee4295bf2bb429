package models

const (
	// BatchSize is the number of souls sensed per scan.
	BatchSize = 4

	// ProximityGate is the farthest distance, in simulated meters, at which connect is offered.
	ProximityGate = 5.0

	// ResonanceThreshold is the lowest affinity that unlocks the shared ritual.
	ResonanceThreshold = 75

	MinDistance = 2.0
	MaxDistance = 22.0
	MaxAffinity = 100
	MaxBearing  = 360.0
)

// Soul is a simulated nearby user. Souls are values and never change after a scan.
type Soul struct {
	ID        string
	AuraColor string
	Symbol    string
	Distance  float64 // simulated meters
	Affinity  int     // 0-99
	Bearing   float64 // degrees
}

func (s Soul) Reachable() bool { return s.Distance <= ProximityGate }

func (s Soul) Resonant() bool { return s.Affinity >= ResonanceThreshold }

type OraclePrompt struct {
	Phrase string `json:"phrase"`
}

type Ritual struct {
	Title        string `json:"title"`
	Instructions string `json:"instructions"`
}

var FallbackOracle = OraclePrompt{
	Phrase: "Tell each other about a dream you never shared.",
}

var FallbackRitual = Ritual{
	Title:        "Silent Synchronization",
	Instructions: "Walk together for 4 minutes without speaking, focusing solely on the rhythm of each other's footsteps.",
}
