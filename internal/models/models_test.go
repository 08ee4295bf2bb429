package models

import (
	"errors"
	"testing"
)

func TestDefaultProfile(t *testing.T) {
	p := DefaultProfile()

	if p.ID != "me" {
		t.Errorf("expected id me, got %s", p.ID)
	}
	if p.AuraColor != "#FF3366" {
		t.Errorf("expected first aura, got %s", p.AuraColor)
	}
	if p.Symbol != "heart" {
		t.Errorf("expected heart, got %s", p.Symbol)
	}
	if p.Intent != IntentConnection || p.Mood != MoodSpontaneous {
		t.Errorf("unexpected defaults: %v %v", p.Intent, p.Mood)
	}
}

func TestDomainSizes(t *testing.T) {
	if len(AuraPalette) != 6 {
		t.Errorf("expected 6 auras, got %d", len(AuraPalette))
	}
	if len(Symbols) != 9 {
		t.Errorf("expected 9 symbols, got %d", len(Symbols))
	}
	if len(Intents) != 4 || len(Moods) != 4 {
		t.Errorf("expected 4 intents and moods, got %d %d", len(Intents), len(Moods))
	}
}

func TestProfileSetters(t *testing.T) {
	p := DefaultProfile()

	if err := p.SetAura("#BF00FF"); err != nil {
		t.Fatalf("SetAura: %v", err)
	}
	if err := p.SetAura("#000000"); !errors.Is(err, ErrUnknownAura) {
		t.Errorf("expected ErrUnknownAura, got %v", err)
	}
	if p.AuraColor != "#BF00FF" {
		t.Errorf("rejected aura must not change profile, got %s", p.AuraColor)
	}

	if err := p.SetSymbol("moon"); err != nil {
		t.Fatalf("SetSymbol: %v", err)
	}
	if err := p.SetSymbol("skull"); !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("expected ErrUnknownSymbol, got %v", err)
	}
	if err := p.SetIntent(IntentFlirt); err != nil {
		t.Fatalf("SetIntent: %v", err)
	}
	if err := p.SetIntent("Revenge"); !errors.Is(err, ErrUnknownIntent) {
		t.Errorf("expected ErrUnknownIntent, got %v", err)
	}
	if err := p.SetMood(MoodBold); err != nil {
		t.Fatalf("SetMood: %v", err)
	}
	if err := p.SetMood("Grumpy"); !errors.Is(err, ErrUnknownMood) {
		t.Errorf("expected ErrUnknownMood, got %v", err)
	}
}

func TestSoulGates(t *testing.T) {
	tests := []struct {
		name      string
		soul      Soul
		reachable bool
		resonant  bool
	}{
		{"close and resonant", Soul{Distance: 3, Affinity: 80}, true, true},
		{"exactly at gate", Soul{Distance: 5, Affinity: 75}, true, true},
		{"just beyond gate", Soul{Distance: 5.0001, Affinity: 74}, false, false},
		{"far", Soul{Distance: 21.9, Affinity: 99}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.soul.Reachable(); got != tt.reachable {
				t.Errorf("Reachable() = %v, want %v", got, tt.reachable)
			}
			if got := tt.soul.Resonant(); got != tt.resonant {
				t.Errorf("Resonant() = %v, want %v", got, tt.resonant)
			}
		})
	}
}

func TestGlyph(t *testing.T) {
	if Glyph("heart") != "♥" {
		t.Errorf("unexpected heart glyph %q", Glyph("heart"))
	}
	if Glyph("nope") != "?" {
		t.Errorf("unknown symbol should render as ?")
	}
}
