package timetable

import "errors"

// DefaultPalette is the color sequence given to placed sections.
var DefaultPalette = []string{
	"#f8b195", "#f67280", "#c06c84", "#6c5b7b", "#355c7d",
	"#99b898", "#feceab", "#ff847c", "#e84a5f", "#2a363b",
}

// ColorCycle hands out palette colors in order, wrapping around.
type ColorCycle struct {
	palette []string
	count   int
}

// NewColorCycle creates a cycle over palette.
func NewColorCycle(palette []string) (*ColorCycle, error) {
	if len(palette) == 0 {
		return nil, errors.New("palette is empty")
	}
	return &ColorCycle{palette: append([]string(nil), palette...)}, nil
}

// Peek returns the color the next call to Next will return.
func (c *ColorCycle) Peek() string {
	return c.palette[c.count%len(c.palette)]
}

// Next returns palette[count mod len] and advances the counter.
func (c *ColorCycle) Next() string {
	color := c.Peek()
	c.count++
	return color
}

// Count returns how many colors have been handed out since the last reset.
func (c *ColorCycle) Count() int {
	return c.count
}

// Reset rewinds the cycle to the first color.
func (c *ColorCycle) Reset() {
	c.count = 0
}

// Palette returns a copy of the palette.
func (c *ColorCycle) Palette() []string {
	return append([]string(nil), c.palette...)
}
