package models

// Aura is one of the fixed identity colors.
type Aura struct {
	Hex  string
	Name string
}

var AuraPalette = []Aura{
	{Hex: "#FF3366", Name: "Rose"},
	{Hex: "#00F5FF", Name: "Cyan"},
	{Hex: "#FFD700", Name: "Gold"},
	{Hex: "#BF00FF", Name: "Electric Purple"},
	{Hex: "#00FF7F", Name: "Spring Green"},
	{Hex: "#FF4500", Name: "Orange Red"},
}

// Symbol is a personal icon. Glyph is what the terminal draws for it.
type Symbol struct {
	ID    string
	Glyph string
}

var Symbols = []Symbol{
	{ID: "heart", Glyph: "♥"},
	{ID: "moon", Glyph: "☾"},
	{ID: "sun", Glyph: "☼"},
	{ID: "star", Glyph: "★"},
	{ID: "zap", Glyph: "ϟ"},
	{ID: "anchor", Glyph: "⚲"},
	{ID: "compass", Glyph: "✧"},
	{ID: "wind", Glyph: "≋"},
	{ID: "droplet", Glyph: "◆"},
}

func AuraByHex(hex string) (Aura, bool) {
	for _, a := range AuraPalette {
		if a.Hex == hex {
			return a, true
		}
	}
	return Aura{}, false
}

func SymbolByID(id string) (Symbol, bool) {
	for _, s := range Symbols {
		if s.ID == id {
			return s, true
		}
	}
	return Symbol{}, false
}

// Glyph returns the glyph for a symbol id, or "?" if the id is unknown.
func Glyph(id string) string {
	if s, ok := SymbolByID(id); ok {
		return s.Glyph
	}
	return "?"
}
