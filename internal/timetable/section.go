package timetable

import (
	"errors"
	"fmt"
	"strings"
)

// Section errors.
var (
	ErrEmptySection   = errors.New("section has no blocks")
	ErrDuplicateBlock = errors.New("section lists a block twice")
)

// shortNameSeparator splits a full course name into code and title.
const shortNameSeparator = " - "

// Section is one offering of a course with a fixed weekly schedule.
type Section struct {
	ID         int64        `json:"id"`
	Name       string       `json:"name"`
	Label      string       `json:"section"`
	Instructor string       `json:"instructor"`
	Code       string       `json:"code,omitempty"`
	Schedule   string       `json:"schedule"`
	Location   string       `json:"location"`
	Blocks     []Coordinate `json:"blocks"`
}

// ShortName returns the display name up to the first " - ".
func (s *Section) ShortName() string {
	name, _, _ := strings.Cut(s.Name, shortNameSeparator)
	return strings.TrimSpace(name)
}

// Title returns "Name (Label)".
func (s *Section) Title() string {
	if s.Label == "" {
		return s.Name
	}
	return fmt.Sprintf("%s (%s)", s.Name, s.Label)
}

// Covers reports whether one of the section's blocks is c.
func (s *Section) Covers(c Coordinate) bool {
	for _, b := range s.Blocks {
		if b == c {
			return true
		}
	}
	return false
}

// Validate checks the section's blocks against a layout.
func (s *Section) Validate(layout *Layout) error {
	if len(s.Blocks) == 0 {
		return fmt.Errorf("%w: section %d", ErrEmptySection, s.ID)
	}
	seen := make(map[Coordinate]bool, len(s.Blocks))
	for _, b := range s.Blocks {
		if !layout.Valid(b) {
			return fmt.Errorf("%w: section %d block %s", ErrInvalidCoordinate, s.ID, b)
		}
		if seen[b] {
			return fmt.Errorf("%w: section %d block %s", ErrDuplicateBlock, s.ID, b)
		}
		seen[b] = true
	}
	return nil
}
