package llm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/javiermolinar/horario/internal/config"
)

const (
	ProviderCopilot  = "copilot"
	ProviderOllama   = "ollama"
	ProviderLMStudio = "lmstudio"
)

var (
	// ErrUnsupportedProvider is returned for an unknown [llm] provider.
	ErrUnsupportedProvider = errors.New("unsupported LLM provider")
	// ErrModelRequired is returned by local providers configured without a model.
	ErrModelRequired = errors.New("model is required")
)

// providers maps accepted spellings to provider names. Empty means Copilot.
var providers = map[string]string{
	"":          ProviderCopilot,
	"copilot":   ProviderCopilot,
	"ollama":    ProviderOllama,
	"lmstudio":  ProviderLMStudio,
	"lm-studio": ProviderLMStudio,
	"llmstudio": ProviderLMStudio,
}

// NewClient builds the client described by the [llm] config section.
// An empty base URL selects the provider's local default.
func NewClient(cfg config.LLMConfig) (Client, error) {
	provider, ok := providers[strings.ToLower(strings.TrimSpace(cfg.Provider))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProvider, cfg.Provider)
	}
	switch provider {
	case ProviderOllama:
		return newOllamaClient(cfg.Model, cfg.BaseURL)
	case ProviderLMStudio:
		return newLMStudioClient(cfg.Model, cfg.BaseURL)
	default:
		return newCopilotClient(cfg.Model)
	}
}
