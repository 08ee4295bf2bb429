package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/aura24/internal/models"
	"github.com/san-kum/aura24/internal/viz"
)

const (
	background = "#0a0a0a"
	ringColor  = "#3a3a3a"
)

// CanvasToSVG converts every lit braille sub-pixel of canvas to a dot. Each
// sub-pixel becomes a scale x scale square of the image.
func CanvasToSVG(canvas *viz.Canvas, scale float64, color string) string {
	if canvas == nil {
		return ""
	}
	var sb strings.Builder
	header(&sb, canvas, scale)
	dots(&sb, canvas, scale, color)
	sb.WriteString("</svg>")
	return sb.String()
}

// RadarSVG renders a scan the way the terminal radar shows it: dotted rings,
// the user at the center and each soul in its aura color, labelled with its
// affinity.
func RadarSVG(user models.Profile, souls []models.Soul, cells int, scale float64) string {
	if cells < 4 {
		cells = 4
	}
	canvas := viz.RingCanvas(cells*2, cells)
	cx := float64(canvas.PixelWidth()/2) * scale
	cy := float64(canvas.PixelHeight()/2) * scale
	k := viz.PlaneScale(canvas) * scale

	var sb strings.Builder
	sb.WriteString(strings.TrimSuffix(CanvasToSVG(canvas, scale, ringColor), "</svg>"))

	fmt.Fprintf(&sb, "<circle class=\"user\" cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" fill=\"%s\"/>\n",
		cx, cy, scale*2.5, user.AuraColor)

	sb.WriteString("<g font-family=\"monospace\" font-size=\"" + fmt.Sprintf("%.0f", scale*3) + "\">\n")
	for _, s := range souls {
		x, y := viz.Project(s.Distance, s.Bearing)
		px, py := cx+x*k, cy+y*k
		opacity := 0.45
		if s.Reachable() {
			opacity = 1
		}
		fmt.Fprintf(&sb, "<circle class=\"soul\" id=\"%s\" cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" fill=\"%s\" fill-opacity=\"%.2f\"/>\n",
			s.ID, px, py, scale*2, s.AuraColor, opacity)
		fmt.Fprintf(&sb, "<text x=\"%.1f\" y=\"%.1f\" fill=\"%s\">%d%%</text>\n",
			px+scale*3, py+scale, s.AuraColor, s.Affinity)
	}
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// WriteFile writes an svg document to path.
func WriteFile(path, svg string) error {
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

func header(sb *strings.Builder, canvas *viz.Canvas, scale float64) {
	width := float64(canvas.PixelWidth()) * scale
	height := float64(canvas.PixelHeight()) * scale
	fmt.Fprintf(sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background)
}

func dots(sb *strings.Builder, canvas *viz.Canvas, scale float64, color string) {
	r := scale * 0.4
	fmt.Fprintf(sb, "<g fill=\"%s\">\n", color)
	for y := 0; y < canvas.PixelHeight(); y++ {
		for x := 0; x < canvas.PixelWidth(); x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			fmt.Fprintf(sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n",
				float64(x)*scale+scale/2, float64(y)*scale+scale/2, r)
		}
	}
	sb.WriteString("</g>\n")
}
