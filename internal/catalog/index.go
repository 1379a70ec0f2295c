package catalog

import (
	"context"

	"github.com/javiermolinar/horario/internal/timetable"
)

// Finder answers "which sections meet at this coordinate".
type Finder interface {
	FindSections(ctx context.Context, c timetable.Coordinate) ([]timetable.Section, error)
}

// Index is an in-memory Finder over a loaded catalog.
type Index struct {
	sections []timetable.Section
	byCoord  map[timetable.Coordinate][]int
}

// NewIndex indexes sections by block.
func NewIndex(sections []timetable.Section) *Index {
	idx := &Index{
		sections: sections,
		byCoord:  make(map[timetable.Coordinate][]int),
	}
	for i, s := range sections {
		for _, b := range s.Blocks {
			idx.byCoord[b] = append(idx.byCoord[b], i)
		}
	}
	return idx
}

// Len returns the number of indexed sections.
func (idx *Index) Len() int {
	return len(idx.sections)
}

// Sections returns every indexed section.
func (idx *Index) Sections() []timetable.Section {
	return idx.sections
}

// FindSections returns the sections with a block at c, in catalog order.
func (idx *Index) FindSections(_ context.Context, c timetable.Coordinate) ([]timetable.Section, error) {
	positions := idx.byCoord[c]
	out := make([]timetable.Section, 0, len(positions))
	for _, p := range positions {
		out = append(out, cloneSection(idx.sections[p]))
	}
	return out, nil
}

// cloneSection copies s so callers cannot alias the index's block slices.
func cloneSection(s timetable.Section) timetable.Section {
	s.Blocks = append([]timetable.Coordinate(nil), s.Blocks...)
	return s
}
