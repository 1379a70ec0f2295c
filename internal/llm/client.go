// Package llm talks to chat models and turns their answers into timetable reviews.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Chat roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ErrNoChoices is returned when a backend answers without any choice.
var ErrNoChoices = errors.New("llm returned no choices")

// Message is one chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is a single chat completion.
type Request struct {
	Messages []Message
	// JSON asks for a JSON-only answer on backends that support it.
	JSON bool
}

// Client sends a chat completion and returns the reply text.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// CompleteJSON runs messages in JSON mode and decodes the reply into result.
// Replies wrapped in markdown fences or prose are tolerated.
func CompleteJSON(ctx context.Context, c Client, messages []Message, result any) error {
	reply, err := c.Complete(ctx, Request{Messages: messages, JSON: true})
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(extractJSON(reply)), result); err != nil {
		return fmt.Errorf("parsing JSON reply: %w (reply: %s)", err, reply)
	}
	return nil
}

// extractJSON pulls a JSON document out of a reply.
func extractJSON(s string) string {
	for _, fence := range []string{"```json", "```"} {
		idx := strings.Index(s, fence)
		if idx == -1 {
			continue
		}
		body := strings.TrimLeft(s[idx+len(fence):], "\r\n")
		if end := strings.Index(body, "```"); end != -1 {
			return strings.TrimRight(body[:end], "\r\n")
		}
	}

	// First balanced object or array.
	for i := 0; i < len(s); i++ {
		if s[i] != '{' && s[i] != '[' {
			continue
		}
		depth := 0
		for j := i; j < len(s); j++ {
			switch s[j] {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
				if depth == 0 {
					return s[i : j+1]
				}
			}
		}
	}

	return s
}
