package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/javiermolinar/horario/internal/timetable"
)

const (
	// SectionsPath is the query endpoint served by internal/server.
	SectionsPath = "/api/sections"

	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 4 << 20
)

// HTTPClient fetches candidates from a remote query endpoint.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPClient creates a client for the endpoint at baseURL.
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("lookup base URL is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parsing lookup base URL: %w", err)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// FetchCandidates queries the endpoint for sections at (day, slot).
// Transport, status, and decode errors all wrap timetable.ErrLookupFailure.
func (c *HTTPClient) FetchCandidates(ctx context.Context, day, slot string) ([]timetable.Section, error) {
	q := url.Values{}
	q.Set("day", day)
	q.Set("slot", slot)
	endpoint := c.baseURL + SectionsPath + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %w", timetable.ErrLookupFailure, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", timetable.ErrLookupFailure, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d: %s", timetable.ErrLookupFailure, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var sections []timetable.Section
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&sections); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %w", timetable.ErrLookupFailure, err)
	}
	if sections == nil {
		sections = []timetable.Section{}
	}
	return sections, nil
}
