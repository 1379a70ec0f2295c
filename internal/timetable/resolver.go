package timetable

import (
	"errors"
	"fmt"
)

// ErrConflict is matched by every *ConflictError.
var ErrConflict = errors.New("schedule conflict")

// ConflictError reports the first block of a candidate that is already taken.
type ConflictError struct {
	Candidate  *Section
	Coordinate Coordinate
	Owner      *Section // Section currently holding Coordinate
}

func (e *ConflictError) Error() string {
	if e.Owner != nil {
		return fmt.Sprintf("schedule conflict: %s at %s %s overlaps %s",
			e.Candidate.ShortName(), e.Coordinate.Day, e.Coordinate.Slot, e.Owner.ShortName())
	}
	return fmt.Sprintf("schedule conflict: %s at %s %s", e.Candidate.ShortName(), e.Coordinate.Day, e.Coordinate.Slot)
}

// Is makes errors.Is(err, ErrConflict) hold.
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// CanPlace checks the section's blocks in order against the grid and
// returns a *ConflictError for the first occupied one, or nil to accept.
// Later blocks are not inspected after the first conflict.
func CanPlace(s *Section, g *Grid) error {
	for _, b := range s.Blocks {
		cell, ok := g.At(b)
		if !ok || !cell.Occupied {
			continue
		}
		return &ConflictError{Candidate: s, Coordinate: b, Owner: cell.Section}
	}
	return nil
}
