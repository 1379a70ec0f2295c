package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const reviewerSystemPrompt = `You review weekly class timetables for university students. Output ONLY JSON - no markdown, no extra text. Be concise.`

const reviewPromptTemplate = `Review this weekly timetable and answer with EXACTLY this JSON shape:

{"theme": "2-4 word summary of the week", "notes": ["short observation", "..."]}

Look for:
- days with many consecutive classes and no break
- days with a single isolated class
- classes late at night followed by early classes the next morning
- free days

Timetable:
%s

Rules:
- At most 4 notes, each under 70 characters
- Mention days and times from the data
- Plain text inside the strings, no markdown`

// Review is the reviewer's structured answer.
type Review struct {
	Theme string   `json:"theme"`
	Notes []string `json:"notes"`
}

// String formats the review for display.
func (r *Review) String() string {
	var sb strings.Builder
	if r.Theme != "" {
		fmt.Fprintf(&sb, "THEME: %s\n", r.Theme)
	}
	for _, n := range r.Notes {
		fmt.Fprintf(&sb, "➜  %s\n", n)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Reviewer asks an LLM for observations about a timetable.
type Reviewer struct {
	client Client
}

// NewReviewer creates a reviewer backed by client.
func NewReviewer(client Client) *Reviewer {
	return &Reviewer{client: client}
}

// Review sends the timetable text and returns the parsed answer.
func (r *Reviewer) Review(ctx context.Context, timetable string) (*Review, error) {
	if strings.TrimSpace(timetable) == "" {
		return nil, errors.New("nothing to review: timetable is empty")
	}

	var review Review
	err := CompleteJSON(ctx, r.client, []Message{
		{Role: RoleSystem, Content: reviewerSystemPrompt},
		{Role: RoleUser, Content: fmt.Sprintf(reviewPromptTemplate, timetable)},
	}, &review)
	if err != nil {
		return nil, fmt.Errorf("reviewing timetable: %w", err)
	}
	return &review, nil
}
