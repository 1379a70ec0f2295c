package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/openai/openai-go/option"
)

const (
	copilotTokenURL = "https://api.github.com/copilot_internal/v2/token"
	copilotBaseURL  = "https://api.githubcopilot.com"
	copilotAgent    = "Horario/1.0"

	// DefaultModel is used when the config names no model.
	DefaultModel = "gpt-4o"
)

// newCopilotClient trades the GitHub token for a Copilot session token and
// points an OpenAI client at Copilot.
func newCopilotClient(model string) (*OpenAIClient, error) {
	if model == "" {
		model = DefaultModel
	}
	githubToken, err := GitHubToken()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	session, err := exchangeCopilotToken(ctx, http.DefaultClient, copilotTokenURL, githubToken)
	if err != nil {
		return nil, fmt.Errorf("copilot token exchange: %w", err)
	}

	return newOpenAIClient(ProviderCopilot, model, copilotBaseURL,
		option.WithAPIKey(session),
		option.WithHeader("Editor-Version", copilotAgent),
		option.WithHeader("Editor-Plugin-Version", copilotAgent),
		option.WithHeader("Copilot-Integration-Id", "vscode-chat"),
	), nil
}

// exchangeCopilotToken returns the short-lived bearer token Copilot expects.
func exchangeCopilotToken(ctx context.Context, client *http.Client, url, githubToken string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Token "+githubToken)
	req.Header.Set("User-Agent", copilotAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("status %d: %s", resp.StatusCode, body)
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decoding token: %w", err)
	}
	if payload.Token == "" {
		return "", errors.New("response carried no token")
	}
	return payload.Token, nil
}
