package llm

import (
	"cmp"
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

const defaultOllamaBaseURL = "http://localhost:11434"

var ollamaRoles = map[string]llms.ChatMessageType{
	RoleSystem:    llms.ChatMessageTypeSystem,
	RoleUser:      llms.ChatMessageTypeHuman,
	RoleAssistant: llms.ChatMessageTypeAI,
}

// OllamaClient runs completions on an Ollama server through langchaingo.
type OllamaClient struct {
	llm     *ollama.LLM
	model   string
	baseURL string
}

func newOllamaClient(model, baseURL string) (*OllamaClient, error) {
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("%s: %w", ProviderOllama, ErrModelRequired)
	}
	baseURL = cmp.Or(baseURL, defaultOllamaBaseURL)

	backend, err := ollama.New(ollama.WithModel(model), ollama.WithServerURL(baseURL))
	if err != nil {
		return nil, fmt.Errorf("creating ollama client: %w", err)
	}
	return &OllamaClient{llm: backend, model: model, baseURL: baseURL}, nil
}

// Complete implements Client.
func (c *OllamaClient) Complete(ctx context.Context, req Request) (string, error) {
	opts := []llms.CallOption{llms.WithModel(c.model)}
	if req.JSON {
		opts = append(opts, llms.WithJSONMode())
	}
	resp, err := c.llm.GenerateContent(ctx, ollamaMessages(req.Messages), opts...)
	if err != nil {
		return "", fmt.Errorf("%s chat: %w", ProviderOllama, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%s: %w", ProviderOllama, ErrNoChoices)
	}
	return resp.Choices[0].Content, nil
}

func ollamaMessages(messages []Message) []llms.MessageContent {
	out := make([]llms.MessageContent, len(messages))
	for i, msg := range messages {
		role, ok := ollamaRoles[strings.ToLower(msg.Role)]
		if !ok {
			role = llms.ChatMessageTypeHuman
		}
		out[i] = llms.TextParts(role, msg.Content)
	}
	return out
}
