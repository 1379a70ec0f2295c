package timetable

// Selection is the set of placed sections keyed by ID, in placement order.
type Selection struct {
	byID  map[int64]*Section
	order []int64
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{byID: make(map[int64]*Section)}
}

// Contains reports whether a section with id is placed.
func (s *Selection) Contains(id int64) bool {
	_, ok := s.byID[id]
	return ok
}

// Get returns the placed section with id.
func (s *Selection) Get(id int64) (*Section, bool) {
	sec, ok := s.byID[id]
	return sec, ok
}

// Len returns the number of placed sections.
func (s *Selection) Len() int {
	return len(s.order)
}

// Sections returns the placed sections in placement order.
func (s *Selection) Sections() []*Section {
	out := make([]*Section, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

func (s *Selection) add(sec *Section) {
	s.byID[sec.ID] = sec
	s.order = append(s.order, sec.ID)
}

func (s *Selection) clear() {
	s.byID = make(map[int64]*Section)
	s.order = nil
}
