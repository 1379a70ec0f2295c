// Package lookup provides the section lookup clients used by the timetable
// controller.
package lookup

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/javiermolinar/horario/internal/catalog"
	"github.com/javiermolinar/horario/internal/timetable"
)

const (
	ModeLocal = "local"
	ModeHTTP  = "http"
)

// StoreClient answers lookups from a local catalog.
type StoreClient struct {
	finder catalog.Finder
}

// NewStoreClient creates a lookup over finder.
func NewStoreClient(finder catalog.Finder) *StoreClient {
	return &StoreClient{finder: finder}
}

// FetchCandidates returns the catalog sections meeting at (day, slot).
func (c *StoreClient) FetchCandidates(ctx context.Context, day, slot string) ([]timetable.Section, error) {
	sections, err := c.finder.FindSections(ctx, timetable.Coordinate{Day: day, Slot: slot})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", timetable.ErrLookupFailure, err)
	}
	return sections, nil
}

// Options configures NewClient.
type Options struct {
	Mode    string
	BaseURL string
	Timeout time.Duration
	Finder  catalog.Finder // Required for local mode
}

// NewClient creates a lookup for the configured mode.
func NewClient(opts Options) (timetable.Lookup, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Mode)) {
	case "", ModeLocal:
		if opts.Finder == nil {
			return nil, fmt.Errorf("local lookup needs a catalog")
		}
		return NewStoreClient(opts.Finder), nil
	case ModeHTTP:
		return NewHTTPClient(opts.BaseURL, opts.Timeout)
	default:
		return nil, fmt.Errorf("unsupported lookup mode: %s", opts.Mode)
	}
}
