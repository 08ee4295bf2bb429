package models

import "errors"

var (
	ErrUnknownAura   = errors.New("models: unknown aura color")
	ErrUnknownSymbol = errors.New("models: unknown symbol")
	ErrUnknownIntent = errors.New("models: unknown intent")
	ErrUnknownMood   = errors.New("models: unknown mood")
)

// LocalID is the id of the only profile that ever exists.
const LocalID = "me"

type Intent string

const (
	IntentFlirt      Intent = "Flirt"
	IntentConnection Intent = "Emotional Connection"
	IntentExperience Intent = "Shared Experience"
	IntentFriendship Intent = "Friendship"
)

var Intents = []Intent{IntentFlirt, IntentConnection, IntentExperience, IntentFriendship}

type Mood string

const (
	MoodRomantic      Mood = "Romantic"
	MoodSpontaneous   Mood = "Spontaneous"
	MoodIntrospective Mood = "Introspective"
	MoodBold          Mood = "Bold"
)

var Moods = []Mood{MoodRomantic, MoodSpontaneous, MoodIntrospective, MoodBold}

// Profile is the local user's chosen identity. It is mutated only during onboarding.
type Profile struct {
	ID        string
	AuraColor string
	Symbol    string
	Intent    Intent
	Mood      Mood
}

func DefaultProfile() Profile {
	return Profile{
		ID:        LocalID,
		AuraColor: AuraPalette[0].Hex,
		Symbol:    Symbols[0].ID,
		Intent:    IntentConnection,
		Mood:      MoodSpontaneous,
	}
}

func (p *Profile) SetAura(hex string) error {
	if _, ok := AuraByHex(hex); !ok {
		return ErrUnknownAura
	}
	p.AuraColor = hex
	return nil
}

func (p *Profile) SetSymbol(id string) error {
	if _, ok := SymbolByID(id); !ok {
		return ErrUnknownSymbol
	}
	p.Symbol = id
	return nil
}

func (p *Profile) SetIntent(i Intent) error {
	for _, known := range Intents {
		if known == i {
			p.Intent = i
			return nil
		}
	}
	return ErrUnknownIntent
}

func (p *Profile) SetMood(m Mood) error {
	for _, known := range Moods {
		if known == m {
			p.Mood = m
			return nil
		}
	}
	return ErrUnknownMood
}
