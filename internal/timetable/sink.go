package timetable

// RetryMessage is shown in place of candidates when a lookup fails.
const RetryMessage = "Could not load sections. Try again."

// EmptyMessage is shown when no section is offered at a coordinate.
const EmptyMessage = "No sections offered at this time."

// CellView is what a display needs to draw one coordinate.
type CellView struct {
	Coordinate Coordinate
	Occupied   bool
	ShortName  string // Owning section's short name when occupied
	Color      string // Assigned color when occupied
	SectionID  int64
}

func viewOf(c Coordinate, cell Cell) CellView {
	v := CellView{Coordinate: c, Occupied: cell.Occupied}
	if cell.Occupied {
		v.Color = cell.Color
		if cell.Section != nil {
			v.ShortName = cell.Section.ShortName()
			v.SectionID = cell.Section.ID
		}
	}
	return v
}

// Sink receives grid state changes. It is a projection of the session and
// is never consulted for occupancy.
type Sink interface {
	// Update reports the new state of the listed coordinates.
	Update(cells []CellView)
	// Clear reports that every coordinate is free again.
	Clear()
	// LookupFailed reports a failed candidate lookup.
	LookupFailed(message string)
}

// NopSink discards every notification.
type NopSink struct{}

func (NopSink) Update([]CellView)   {}
func (NopSink) Clear()              {}
func (NopSink) LookupFailed(string) {}
