package viz

import (
	"math"

	"github.com/san-kum/aura24/internal/models"
)

const (
	// MaxRadius keeps far souls inside the visible field.
	MaxRadius = 45.0

	// FieldRadius is the half-extent of the display plane.
	FieldRadius = 50.0

	distanceScale = 2.0
)

// Ring radii in plane units: 90%, 60% and 30% of the field.
var Rings = []float64{45, 30, 15}

// Project maps a soul's distance and bearing onto the display plane.
// The result is always within MaxRadius of the origin.
func Project(distance, bearing float64) (x, y float64) {
	angle := bearing * math.Pi / 180
	radius := math.Min(distance*distanceScale, MaxRadius)
	return math.Cos(angle) * radius, math.Sin(angle) * radius
}

// Marker is where a soul landed on the rendered radar, in cell coordinates.
type Marker struct {
	ID       string
	Col, Row int
}

// RadarView is the input to RenderRadar.
type RadarView struct {
	User     models.Profile
	Souls    []models.Soul
	Selected string
	Width    int // cells
	Height   int // cells
}

// PlaneScale is the number of canvas pixels per plane unit.
func PlaneScale(c *Canvas) float64 {
	return math.Min(float64(c.PixelWidth()/2), float64(c.PixelHeight()/2)) / FieldRadius
}

// RingCanvas is an empty radar: the range rings around the canvas center.
func RingCanvas(w, h int) *Canvas {
	c := NewCanvas(w, h)
	cx, cy := c.PixelWidth()/2, c.PixelHeight()/2
	scale := PlaneScale(c)
	for _, r := range Rings {
		c.DrawCircle(cx, cy, r*scale)
	}
	return c
}

// RenderRadar draws rings, the user at the center and every soul at its
// projected position. Souls are projected on every render.
func RenderRadar(v RadarView) ([]string, []Marker) {
	c := RingCanvas(v.Width, v.Height)
	cx, cy := c.PixelWidth()/2, c.PixelHeight()/2
	scale := PlaneScale(c)

	c.PlaceGlyph(cx, cy, AuraStyle(v.User.AuraColor).Bold(true).Render(models.Glyph(v.User.Symbol)))

	markers := make([]Marker, 0, len(v.Souls))
	for _, s := range v.Souls {
		x, y := Project(s.Distance, s.Bearing)
		px := cx + int(math.Round(x*scale))
		py := cy + int(math.Round(y*scale))

		style := AuraStyle(s.AuraColor)
		if s.ID == v.Selected {
			style = style.Reverse(true)
		}
		col, row, ok := c.PlaceGlyphNear(px, py, style.Render(models.Glyph(s.Symbol)))
		if !ok {
			continue
		}
		markers = append(markers, Marker{ID: s.ID, Col: col, Row: row})
	}

	ring := CurrentTheme.RingStyle()
	return c.Lines(func(s string) string { return ring.Render(s) }), markers
}
