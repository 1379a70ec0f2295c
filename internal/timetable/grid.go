package timetable

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvariantViolation reports a caller bug: the engine was asked to do
// something that would corrupt the grid. The grid is left untouched.
var ErrInvariantViolation = errors.New("timetable invariant violation")

// Cell is the occupancy state of one coordinate.
type Cell struct {
	Occupied bool
	Section  *Section // Owning section when occupied
	Color    string   // Display color when occupied
}

// Grid maps every valid coordinate of a layout to its occupancy.
// The zero state of a new grid is all free.
type Grid struct {
	layout *Layout
	cells  []Cell // Indexed by Layout.index; interval cells stay free
}

// NewGrid creates a grid with every coordinate free.
func NewGrid(layout *Layout) *Grid {
	return &Grid{
		layout: layout,
		cells:  make([]Cell, len(layout.days)*len(layout.rows)),
	}
}

// Layout returns the grid layout.
func (g *Grid) Layout() *Layout {
	return g.layout
}

// IsOccupied reports whether c is occupied. Invalid coordinates are never occupied.
func (g *Grid) IsOccupied(c Coordinate) bool {
	idx, ok := g.layout.index(c)
	return ok && g.cells[idx].Occupied
}

// At returns the cell at c.
func (g *Grid) At(c Coordinate) (Cell, bool) {
	idx, ok := g.layout.index(c)
	if !ok {
		return Cell{}, false
	}
	return g.cells[idx], true
}

// Occupy marks c as owned by s with the given color.
// Occupying an already occupied coordinate is an invariant violation.
func (g *Grid) Occupy(c Coordinate, s *Section, color string) error {
	idx, ok := g.layout.index(c)
	if !ok {
		return fmt.Errorf("%w: %s", ErrInvalidCoordinate, c)
	}
	if g.cells[idx].Occupied {
		return fmt.Errorf("%w: %s is already occupied", ErrInvariantViolation, c)
	}
	g.cells[idx] = Cell{Occupied: true, Section: s, Color: color}
	return nil
}

// Free returns c to the free state.
func (g *Grid) Free(c Coordinate) error {
	idx, ok := g.layout.index(c)
	if !ok {
		return fmt.Errorf("%w: %s", ErrInvalidCoordinate, c)
	}
	g.cells[idx] = Cell{}
	return nil
}

// ForEachValidCoordinate calls fn with every selectable coordinate and its cell.
func (g *Grid) ForEachValidCoordinate(fn func(Coordinate, Cell)) {
	g.layout.ForEachValidCoordinate(func(c Coordinate) {
		idx, _ := g.layout.index(c)
		fn(c, g.cells[idx])
	})
}

// Occupied returns every occupied coordinate.
func (g *Grid) Occupied() []Coordinate {
	var out []Coordinate
	g.ForEachValidCoordinate(func(c Coordinate, cell Cell) {
		if cell.Occupied {
			out = append(out, c)
		}
	})
	return out
}

// clone creates a copy of the grid. Sections are shared.
func (g *Grid) clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{layout: g.layout, cells: cells}
}

// String renders the grid for debugging: one line per slot, '.' free,
// first letter of the owning section's short name when occupied.
func (g *Grid) String() string {
	var sb strings.Builder
	for _, slot := range g.layout.Slots() {
		sb.WriteString(slot)
		sb.WriteByte(' ')
		for _, day := range g.layout.days {
			cell, _ := g.At(Coordinate{Day: day, Slot: slot})
			switch {
			case !cell.Occupied:
				sb.WriteByte('.')
			case cell.Section != nil && cell.Section.Name != "":
				sb.WriteByte(cell.Section.Name[0])
			default:
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
