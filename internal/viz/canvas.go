package viz

import (
	"math"
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Canvas is a braille pixel grid. Each cell holds 2x4 sub-pixels, so a canvas of
// Width x Height cells addresses (Width*2) x (Height*4) pixels. Cells can also
// carry a pre-rendered glyph that replaces the braille pattern when drawn.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	glyphs        map[[2]int]string
}

func NewCanvas(w, h int) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		glyphs: make(map[[2]int]string),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// PixelWidth and PixelHeight are the canvas size in sub-pixels.
func (c *Canvas) PixelWidth() int  { return c.Width * 2 }
func (c *Canvas) PixelHeight() int { return c.Height * 4 }

// Set lights the sub-pixel at (x, y). Out of range pixels are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// IsSet reports whether the sub-pixel at (x, y) is lit.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return false
	}
	return c.Grid[row][col]&rune(pixelMap[y%4][x%2]) != 0
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
	for k := range c.glyphs {
		delete(c.glyphs, k)
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawCircle traces a ring of radius r around (cx, cy), sampling enough points
// that neighbouring dots touch.
func (c *Canvas) DrawCircle(cx, cy int, r float64) {
	if r <= 0 {
		c.Set(cx, cy)
		return
	}
	steps := int(2*math.Pi*r) + 8
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		c.Set(cx+int(math.Round(math.Cos(a)*r)), cy+int(math.Round(math.Sin(a)*r)))
	}
}

// PlaceGlyph puts an already styled glyph into the cell containing pixel (x, y).
// It returns the cell coordinates, or ok=false when the pixel is off canvas.
func (c *Canvas) PlaceGlyph(x, y int, glyph string) (col, row int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col, row = x/2, y/4
	if col >= c.Width || row >= c.Height {
		return 0, 0, false
	}
	c.glyphs[[2]int{col, row}] = glyph
	return col, row, true
}

// HasGlyph reports whether the cell already carries a glyph.
func (c *Canvas) HasGlyph(col, row int) bool {
	_, ok := c.glyphs[[2]int{col, row}]
	return ok
}

// neighbours are tried in order when a cell is taken: sides first, then
// corners, then one cell further out.
var neighbours = [][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{2, 0}, {-2, 0}, {0, 2}, {0, -2},
}

// PlaceGlyphNear is PlaceGlyph that never overwrites another glyph. A taken
// cell moves the glyph to the nearest free neighbour; ok=false when there is
// none on canvas.
func (c *Canvas) PlaceGlyphNear(x, y int, glyph string) (col, row int, ok bool) {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return 0, 0, false
	}
	col, row = x/2, y/4
	if !c.HasGlyph(col, row) {
		c.glyphs[[2]int{col, row}] = glyph
		return col, row, true
	}
	for _, d := range neighbours {
		nc, nr := col+d[0], row+d[1]
		if nc < 0 || nr < 0 || nc >= c.Width || nr >= c.Height || c.HasGlyph(nc, nr) {
			continue
		}
		c.glyphs[[2]int{nc, nr}] = glyph
		return nc, nr, true
	}
	return 0, 0, false
}

// Lines renders each row, styling the braille dots with style when non-nil.
func (c *Canvas) Lines(style func(string) string) []string {
	lines := make([]string, c.Height)
	for r, row := range c.Grid {
		var b strings.Builder
		var run strings.Builder
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if style != nil {
				b.WriteString(style(run.String()))
			} else {
				b.WriteString(run.String())
			}
			run.Reset()
		}
		for col, cell := range row {
			if g, ok := c.glyphs[[2]int{col, r}]; ok {
				flush()
				b.WriteString(g)
				continue
			}
			run.WriteRune(cell)
		}
		flush()
		lines[r] = b.String()
	}
	return lines
}

func (c *Canvas) String() string {
	return strings.Join(c.Lines(nil), "\n") + "\n"
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
