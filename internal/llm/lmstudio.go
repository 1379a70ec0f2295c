package llm

import (
	"cmp"
	"fmt"
	"os"
	"strings"

	"github.com/openai/openai-go/option"
)

const defaultLMStudioBaseURL = "http://localhost:1234/v1"

// newLMStudioClient targets a local LM Studio server. LM Studio ignores the
// API key, but the OpenAI client insists on one.
func newLMStudioClient(model, baseURL string) (*OpenAIClient, error) {
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("%s: %w", ProviderLMStudio, ErrModelRequired)
	}
	key := cmp.Or(os.Getenv("LMSTUDIO_API_KEY"), os.Getenv("OPENAI_API_KEY"), "lm-studio")
	return newOpenAIClient(ProviderLMStudio, model, cmp.Or(baseURL, defaultLMStudioBaseURL), option.WithAPIKey(key)), nil
}
