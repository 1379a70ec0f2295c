// Package timetable holds the weekly grid model and the rules for placing
// course sections on it.
package timetable

import (
	"errors"
	"fmt"
	"strings"
)

// Layout errors.
var (
	ErrInvalidCoordinate = errors.New("invalid grid coordinate")
	ErrInvalidBlock      = errors.New("invalid block token")
)

// blockSeparator joins day and slot in a block token ("Monday_07:00").
const blockSeparator = "_"

// DefaultDays are the six weekday columns of the grid.
var DefaultDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// DefaultRows are the time rows of the grid, morning to night.
// Interval rows mark the breaks between shifts.
var DefaultRows = []Row{
	{Label: "07:00"}, {Label: "07:55"}, {Label: "08:50"}, {Label: "09:45"}, {Label: "10:40"}, {Label: "11:35"},
	{Label: "12:25", Interval: true},
	{Label: "13:00"}, {Label: "13:55"}, {Label: "14:50"}, {Label: "15:45"}, {Label: "16:40"}, {Label: "17:35"},
	{Label: "18:25", Interval: true},
	{Label: "18:30"}, {Label: "19:25"}, {Label: "20:20"}, {Label: "21:15"},
}

// Coordinate addresses one cell of the weekly grid.
type Coordinate struct {
	Day  string
	Slot string
}

// String returns the block token for the coordinate.
func (c Coordinate) String() string {
	return c.Day + blockSeparator + c.Slot
}

// MarshalText encodes the coordinate as a block token.
func (c Coordinate) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a block token.
func (c *Coordinate) UnmarshalText(b []byte) error {
	parsed, err := ParseBlock(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseBlock parses a "Day_HH:MM" block token.
func ParseBlock(token string) (Coordinate, error) {
	day, slot, ok := strings.Cut(token, blockSeparator)
	if !ok || day == "" || slot == "" {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidBlock, token)
	}
	return Coordinate{Day: day, Slot: slot}, nil
}

// Row is one time row of the grid.
type Row struct {
	Label    string
	Interval bool // Break marker spanning the whole row, never selectable
}

// Layout is the fixed set of days and time rows of a grid.
type Layout struct {
	days     []string
	rows     []Row
	dayIndex map[string]int
	rowIndex map[string]int
	slots    []int // row indices of selectable rows, in order
}

// NewLayout creates a layout. Day and row labels must be unique.
func NewLayout(days []string, rows []Row) (*Layout, error) {
	if len(days) == 0 {
		return nil, errors.New("layout needs at least one day")
	}
	l := &Layout{
		days:     append([]string(nil), days...),
		rows:     append([]Row(nil), rows...),
		dayIndex: make(map[string]int, len(days)),
		rowIndex: make(map[string]int, len(rows)),
	}
	for i, d := range days {
		if _, dup := l.dayIndex[d]; dup || d == "" {
			return nil, fmt.Errorf("invalid or duplicate day %q", d)
		}
		l.dayIndex[d] = i
	}
	for i, r := range rows {
		if _, dup := l.rowIndex[r.Label]; dup || r.Label == "" {
			return nil, fmt.Errorf("invalid or duplicate row %q", r.Label)
		}
		l.rowIndex[r.Label] = i
		if !r.Interval {
			l.slots = append(l.slots, i)
		}
	}
	if len(l.slots) == 0 {
		return nil, errors.New("layout needs at least one selectable row")
	}
	return l, nil
}

// DefaultLayout returns the Monday-Saturday layout with three shifts.
func DefaultLayout() *Layout {
	l, err := NewLayout(DefaultDays, DefaultRows)
	if err != nil {
		panic(err)
	}
	return l
}

// Days returns the day labels in column order.
func (l *Layout) Days() []string {
	return append([]string(nil), l.days...)
}

// Rows returns every row, including interval markers.
func (l *Layout) Rows() []Row {
	return append([]Row(nil), l.rows...)
}

// Slots returns the selectable slot labels in order.
func (l *Layout) Slots() []string {
	out := make([]string, len(l.slots))
	for i, r := range l.slots {
		out[i] = l.rows[r].Label
	}
	return out
}

// Valid reports whether c is a selectable coordinate of the layout.
func (l *Layout) Valid(c Coordinate) bool {
	_, ok := l.index(c)
	return ok
}

// IsInterval reports whether the slot label is an interval marker.
func (l *Layout) IsInterval(slot string) bool {
	r, ok := l.rowIndex[slot]
	return ok && l.rows[r].Interval
}

// Size returns the number of selectable coordinates.
func (l *Layout) Size() int {
	return len(l.days) * len(l.slots)
}

// index maps a coordinate to its flat cell index.
func (l *Layout) index(c Coordinate) (int, bool) {
	d, ok := l.dayIndex[c.Day]
	if !ok {
		return 0, false
	}
	r, ok := l.rowIndex[c.Slot]
	if !ok || l.rows[r].Interval {
		return 0, false
	}
	return d*len(l.rows) + r, true
}

// ForEachValidCoordinate calls fn for every selectable coordinate,
// row by row, days left to right. Interval rows are skipped.
func (l *Layout) ForEachValidCoordinate(fn func(Coordinate)) {
	for _, r := range l.slots {
		for _, d := range l.days {
			fn(Coordinate{Day: d, Slot: l.rows[r].Label})
		}
	}
}
