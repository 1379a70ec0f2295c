package timetable

import (
	"context"
	"errors"
	"fmt"
)

// Controller errors.
var (
	ErrAlreadyOccupied = errors.New("slot is already occupied")
	ErrLookupFailure   = errors.New("section lookup failed")
)

// Lookup fetches the sections offered at a coordinate.
// An empty result is valid; failures should wrap ErrLookupFailure.
type Lookup interface {
	FetchCandidates(ctx context.Context, day, slot string) ([]Section, error)
}

// Controller drives one session through user interactions:
// open a slot, choose a candidate, reset.
type Controller struct {
	session *Session
	lookup  Lookup
	sink    Sink
}

// NewController creates a controller. A nil sink discards notifications.
func NewController(session *Session, lookup Lookup, sink Sink) *Controller {
	if sink == nil {
		sink = NopSink{}
	}
	return &Controller{session: session, lookup: lookup, sink: sink}
}

// Session returns the controlled session.
func (c *Controller) Session() *Session {
	return c.session
}

// Check is the synchronous pre-fetch test for a clicked coordinate.
func (c *Controller) Check(coord Coordinate) error {
	if !c.session.Layout().Valid(coord) {
		return fmt.Errorf("%w: %s", ErrInvalidCoordinate, coord)
	}
	if c.session.IsOccupied(coord) {
		return fmt.Errorf("%w: %s %s", ErrAlreadyOccupied, coord.Day, coord.Slot)
	}
	return nil
}

// Fetch queries the lookup for candidates at coord. It does not touch the
// session or the sink, so it may run off the control thread.
func (c *Controller) Fetch(ctx context.Context, coord Coordinate) ([]Section, error) {
	if c.lookup == nil {
		return nil, fmt.Errorf("%w: no lookup configured", ErrLookupFailure)
	}
	sections, err := c.lookup.FetchCandidates(ctx, coord.Day, coord.Slot)
	if err != nil {
		if errors.Is(err, ErrLookupFailure) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrLookupFailure, err)
	}
	return sections, nil
}

// Open checks coord and fetches its candidates. An occupied coordinate is
// rejected without calling the lookup. A failed lookup is reported to the
// sink and leaves the session unchanged.
func (c *Controller) Open(ctx context.Context, coord Coordinate) ([]Section, error) {
	if err := c.Check(coord); err != nil {
		return nil, err
	}
	return c.Resolve(c.Fetch(ctx, coord))
}

// Resolve completes a fetch started with Fetch. A failure is reported to
// the sink; the session is not touched either way.
func (c *Controller) Resolve(sections []Section, err error) ([]Section, error) {
	if err != nil {
		c.sink.LookupFailed(RetryMessage)
		return nil, err
	}
	if sections == nil {
		sections = []Section{}
	}
	return sections, nil
}

// Choose places the chosen candidate. The conflict check runs against the
// grid as it is now, not as it was when the candidates were fetched.
// A conflict returns a *ConflictError and a section already on the grid
// returns ErrDuplicateSection; neither changes anything.
func (c *Controller) Choose(sec *Section) (PlacementResult, error) {
	if sec == nil {
		return PlacementResult{}, fmt.Errorf("%w: nil section", ErrInvariantViolation)
	}
	if err := sec.Validate(c.session.Layout()); err != nil {
		return PlacementResult{}, err
	}
	if _, ok := c.session.SelectedByID(sec.ID); ok {
		return PlacementResult{}, fmt.Errorf("%w: %d", ErrDuplicateSection, sec.ID)
	}
	if err := c.session.CanPlace(sec); err != nil {
		return PlacementResult{}, err
	}
	res, err := c.session.Place(sec)
	if err != nil {
		return PlacementResult{}, err
	}
	c.sink.Update(c.session.CellsAt(res.Cells))
	return res, nil
}

// Reset clears the session and tells the sink to clear every cell.
func (c *Controller) Reset() {
	c.session.Reset()
	c.sink.Clear()
}
