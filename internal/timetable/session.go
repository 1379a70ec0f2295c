package timetable

import (
	"errors"
	"fmt"
	"sync"
)

// ErrDuplicateSection reports an attempt to place a section ID twice.
var ErrDuplicateSection = errors.New("section is already placed")

// PlacementResult describes a committed placement.
type PlacementResult struct {
	Section *Section
	Color   string
	Cells   []Coordinate // Newly occupied coordinates, in block order
}

// Session owns one timetable: grid, selection, and color cycle.
// All mutations go through Place and Reset.
type Session struct {
	mu        sync.RWMutex
	layout    *Layout
	grid      *Grid
	selection *Selection
	colors    *ColorCycle
}

// NewSession creates an empty session. A nil layout means DefaultLayout,
// an empty palette means DefaultPalette.
func NewSession(layout *Layout, palette []string) (*Session, error) {
	if layout == nil {
		layout = DefaultLayout()
	}
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	colors, err := NewColorCycle(palette)
	if err != nil {
		return nil, err
	}
	return &Session{
		layout:    layout,
		grid:      NewGrid(layout),
		selection: NewSelection(),
		colors:    colors,
	}, nil
}

// Layout returns the session layout.
func (s *Session) Layout() *Layout {
	return s.layout
}

// IsOccupied reports whether c is occupied right now.
func (s *Session) IsOccupied(c Coordinate) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grid.IsOccupied(c)
}

// CanPlace runs the conflict check against the current grid.
func (s *Session) CanPlace(sec *Section) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return CanPlace(sec, s.grid)
}

// Place commits sec to the grid. The section is re-validated against the
// current grid; any failure is an invariant violation and nothing changes.
// All blocks become occupied together or none do.
func (s *Session) Place(sec *Section) (PlacementResult, error) {
	if sec == nil {
		return PlacementResult{}, fmt.Errorf("%w: nil section", ErrInvariantViolation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := sec.Validate(s.layout); err != nil {
		return PlacementResult{}, fmt.Errorf("%w: %w", ErrInvariantViolation, err)
	}
	if s.selection.Contains(sec.ID) {
		return PlacementResult{}, fmt.Errorf("%w: %w: %d", ErrInvariantViolation, ErrDuplicateSection, sec.ID)
	}
	if err := CanPlace(sec, s.grid); err != nil {
		return PlacementResult{}, fmt.Errorf("%w: %w", ErrInvariantViolation, err)
	}

	// Build the next grid off to the side and swap it in once complete.
	color := s.colors.Peek()
	next := s.grid.clone()
	for _, b := range sec.Blocks {
		if err := next.Occupy(b, sec, color); err != nil {
			return PlacementResult{}, err
		}
	}

	s.grid = next
	s.colors.Next()
	s.selection.add(sec)

	return PlacementResult{
		Section: sec,
		Color:   color,
		Cells:   append([]Coordinate(nil), sec.Blocks...),
	}, nil
}

// Reset frees every coordinate, empties the selection, and rewinds the
// color cycle. Resetting an empty session is a no-op.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid = NewGrid(s.layout)
	s.selection.clear()
	s.colors.Reset()
}

// Grid returns the current grid. The returned grid is never mutated by
// later placements; callers must treat it as read-only.
func (s *Session) Grid() *Grid {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grid
}

// Selected returns the placed sections in placement order.
func (s *Session) Selected() []*Section {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection.Sections()
}

// SelectedByID returns the placed section with id.
func (s *Session) SelectedByID(id int64) (*Section, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection.Get(id)
}

// NextColor returns the color the next placement will receive.
func (s *Session) NextColor() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.colors.Peek()
}

// Cells projects every valid coordinate into display form.
func (s *Session) Cells() []CellView {
	g := s.Grid()
	out := make([]CellView, 0, g.layout.Size())
	g.ForEachValidCoordinate(func(c Coordinate, cell Cell) {
		out = append(out, viewOf(c, cell))
	})
	return out
}

// CellsAt projects the given coordinates into display form.
func (s *Session) CellsAt(coords []Coordinate) []CellView {
	g := s.Grid()
	out := make([]CellView, 0, len(coords))
	for _, c := range coords {
		cell, _ := g.At(c)
		out = append(out, viewOf(c, cell))
	}
	return out
}
