package viz

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/aura24/internal/models"
)

func TestProject(t *testing.T) {
	tests := []struct {
		name             string
		distance, bearng float64
		x, y             float64
	}{
		{"east", 10, 0, 20, 0},
		{"south", 10, 90, 0, 20},
		{"west", 5, 180, -10, 0},
		{"north", 3, 270, 0, -6},
		{"clamped", 40, 0, 45, 0},
		{"boundary", 22.5, 90, 0, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := Project(tt.distance, tt.bearng)
			if math.Abs(x-tt.x) > 1e-9 || math.Abs(y-tt.y) > 1e-9 {
				t.Errorf("Project(%v, %v) = (%v, %v), want (%v, %v)", tt.distance, tt.bearng, x, y, tt.x, tt.y)
			}
		})
	}
}

func TestProjectBoundedAndDeterministic(t *testing.T) {
	for d := 0.0; d < 200; d += 0.7 {
		for b := 0.0; b < 360; b += 11.3 {
			x, y := Project(d, b)
			if r := math.Hypot(x, y); r > MaxRadius+1e-9 {
				t.Fatalf("radius %f exceeds %f for d=%f b=%f", r, MaxRadius, d, b)
			}
			x2, y2 := Project(d, b)
			if x != x2 || y != y2 {
				t.Fatalf("projection not deterministic for d=%f b=%f", d, b)
			}
		}
	}
}

func TestRenderRadarPlacesEverySoul(t *testing.T) {
	souls := []models.Soul{
		{ID: "soul-0", AuraColor: "#FF3366", Symbol: "moon", Distance: 3, Bearing: 0},
		{ID: "soul-1", AuraColor: "#00F5FF", Symbol: "star", Distance: 10, Bearing: 90},
		{ID: "soul-2", AuraColor: "#FFD700", Symbol: "sun", Distance: 21, Bearing: 180},
		{ID: "soul-3", AuraColor: "#BF00FF", Symbol: "wind", Distance: 15, Bearing: 300},
	}

	lines, markers := RenderRadar(RadarView{
		User:     models.DefaultProfile(),
		Souls:    souls,
		Selected: "soul-1",
		Width:    40,
		Height:   20,
	})

	if len(lines) != 20 {
		t.Fatalf("expected 20 lines, got %d", len(lines))
	}
	if len(markers) != len(souls) {
		t.Fatalf("expected %d markers, got %d", len(souls), len(markers))
	}

	// soul-0 sits east of center, soul-2 west of it.
	if markers[0].Col <= 20 || markers[2].Col >= 20 {
		t.Errorf("unexpected columns: east=%d west=%d", markers[0].Col, markers[2].Col)
	}
	// soul-1 sits below center.
	if markers[1].Row <= 10 {
		t.Errorf("expected south marker below center, got row %d", markers[1].Row)
	}
}

func TestRenderRadarKeepsCollidingSouls(t *testing.T) {
	souls := []models.Soul{
		{ID: "a", AuraColor: "#FF3366", Symbol: "moon", Distance: 21, Bearing: 10},
		{ID: "b", AuraColor: "#00F5FF", Symbol: "star", Distance: 21.1, Bearing: 10.2},
	}

	lines, markers := RenderRadar(RadarView{User: models.DefaultProfile(), Souls: souls, Width: 40, Height: 20})

	if len(markers) != 2 {
		t.Fatalf("expected 2 markers, got %d", len(markers))
	}
	if markers[0].Col == markers[1].Col && markers[0].Row == markers[1].Row {
		t.Errorf("both souls share cell (%d, %d)", markers[0].Col, markers[0].Row)
	}
	out := strings.Join(lines, "\n")
	for _, glyph := range []string{models.Glyph("moon"), models.Glyph("star")} {
		if !strings.Contains(out, glyph) {
			t.Errorf("glyph %s missing from radar", glyph)
		}
	}
}

func TestPlaceGlyphNear(t *testing.T) {
	c := NewCanvas(3, 1)

	tests := []struct {
		glyph   string
		col, ok int
	}{
		{"A", 1, 1},
		{"B", 2, 1},
		{"C", 0, 1},
		{"D", 0, 0},
	}
	for _, tt := range tests {
		col, _, ok := c.PlaceGlyphNear(2, 0, tt.glyph)
		if ok != (tt.ok == 1) || (ok && col != tt.col) {
			t.Errorf("%s: got col=%d ok=%v, want col=%d ok=%v", tt.glyph, col, ok, tt.col, tt.ok == 1)
		}
	}
	if got := c.String(); !strings.Contains(got, "CAB") {
		t.Errorf("unexpected row %q", got)
	}
}

func TestCanvasCircleAndGlyphs(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawCircle(10, 10, 6)

	if !c.IsSet(16, 10) || !c.IsSet(4, 10) {
		t.Error("circle should pass through its east and west points")
	}
	if c.IsSet(10, 10) {
		t.Error("circle center should stay empty")
	}

	col, row, ok := c.PlaceGlyph(10, 10, "X")
	if !ok || col != 5 || row != 2 {
		t.Errorf("PlaceGlyph = (%d, %d, %v)", col, row, ok)
	}
	if _, _, ok := c.PlaceGlyph(100, 0, "Y"); ok {
		t.Error("off-canvas glyph accepted")
	}
	if !strings.Contains(c.String(), "X") {
		t.Error("glyph missing from output")
	}

	c.Clear()
	if strings.Contains(c.String(), "X") || c.IsSet(16, 10) {
		t.Error("Clear left content behind")
	}
}

func TestGetTheme(t *testing.T) {
	if GetTheme("mono").Name != "mono" {
		t.Error("expected mono theme")
	}
	if GetTheme("neon").Name != "midnight" {
		t.Error("unknown theme should fall back to midnight")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names out of sync")
	}
}
