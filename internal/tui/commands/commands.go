// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/horario/internal/config"
	"github.com/javiermolinar/horario/internal/llm"
	"github.com/javiermolinar/horario/internal/summary"
	"github.com/javiermolinar/horario/internal/timetable"
)

// insightTimeout bounds one LLM review.
const insightTimeout = 90 * time.Second

// CandidatesMsg carries the outcome of a candidate lookup for Coord.
type CandidatesMsg struct {
	Coord    timetable.Coordinate
	Sections []timetable.Section
	Err      error
}

// InsightMsg is sent when the LLM review of the timetable is ready.
type InsightMsg struct {
	Insight string
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// Fetcher queries candidates for a coordinate. *timetable.Controller implements it.
type Fetcher interface {
	Fetch(ctx context.Context, coord timetable.Coordinate) ([]timetable.Section, error)
}

// FetchCandidates runs the lookup for coord off the update loop.
// The result is handed back unresolved; the model settles it on receipt.
func FetchCandidates(f Fetcher, coord timetable.Coordinate, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		sections, err := f.Fetch(ctx, coord)
		return CandidatesMsg{Coord: coord, Sections: sections, Err: err}
	}
}

// ClientFactory builds an LLM client from configuration.
type ClientFactory func(cfg config.LLMConfig) (llm.Client, error)

// Insight asks the configured LLM to review the timetable summary.
// The summary itself is not modified.
func Insight(cfg *config.Config, s *summary.Summary) tea.Cmd {
	return InsightWith(llm.NewClient, cfg, s)
}

// InsightWith is Insight with an explicit client factory.
func InsightWith(newClient ClientFactory, cfg *config.Config, s *summary.Summary) tea.Cmd {
	return func() tea.Msg {
		if s == nil || s.Empty() {
			return StatusMsgCmd{Msg: "Nothing to review yet"}
		}
		client, err := newClient(cfg.LLM)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("creating LLM client: %w", err)}
		}

		ctx, cancel := context.WithTimeout(context.Background(), insightTimeout)
		defer cancel()

		reviewed := *s
		if err := summary.WithInsight(ctx, client, &reviewed); err != nil {
			return ErrMsg{Err: err}
		}
		return InsightMsg{Insight: reviewed.Insight}
	}
}

// CopyText copies text to the system clipboard.
func CopyText(text, done string) tea.Cmd {
	return copyWith(clipboard.WriteAll, text, done)
}

func copyWith(write func(string) error, text, done string) tea.Cmd {
	return func() tea.Msg {
		if err := write(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying to clipboard: %w", err)}
		}
		return StatusMsgCmd{Msg: done}
	}
}
