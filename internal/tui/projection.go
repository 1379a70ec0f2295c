package tui

import (
	"maps"
	"sync"

	"github.com/javiermolinar/horario/internal/timetable"
)

// gridProjection is the display's copy of the grid. It only ever changes
// through the controller's sink notifications and is what View draws.
type gridProjection struct {
	mu      sync.RWMutex
	cells   map[timetable.Coordinate]timetable.CellView
	failure string
}

func newGridProjection() *gridProjection {
	return &gridProjection{cells: make(map[timetable.Coordinate]timetable.CellView)}
}

// Update implements timetable.Sink.
func (p *gridProjection) Update(cells []timetable.CellView) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, c := range cells {
		if !c.Occupied {
			delete(p.cells, c.Coordinate)
			continue
		}
		p.cells[c.Coordinate] = c
	}
	LogProjection("update", len(cells))
}

// Clear implements timetable.Sink.
func (p *gridProjection) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cells = make(map[timetable.Coordinate]timetable.CellView)
	p.failure = ""
	LogProjection("clear", 0)
}

// LookupFailed implements timetable.Sink.
func (p *gridProjection) LookupFailed(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failure = message
	LogProjection("lookup_failed", 0)
}

// Cell returns the projected view of c.
func (p *gridProjection) Cell(c timetable.Coordinate) (timetable.CellView, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	v, ok := p.cells[c]
	return v, ok
}

// Snapshot copies the occupied cells for one frame.
func (p *gridProjection) Snapshot() map[timetable.Coordinate]timetable.CellView {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return maps.Clone(p.cells)
}

// Len returns the number of occupied cells.
func (p *gridProjection) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.cells)
}

// Colors maps each displayed section to its color.
func (p *gridProjection) Colors() map[int64]string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make(map[int64]string)
	for _, c := range p.cells {
		out[c.SectionID] = c.Color
	}
	return out
}

// TakeFailure returns and clears the last lookup failure message.
func (p *gridProjection) TakeFailure() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	msg := p.failure
	p.failure = ""
	return msg
}

// Sync replaces the projection with a full snapshot.
func (p *gridProjection) Sync(cells []timetable.CellView) {
	p.mu.Lock()
	p.cells = make(map[timetable.Coordinate]timetable.CellView, len(cells))
	p.mu.Unlock()
	p.Update(cells)
}
