package coach

import "context"

// Prompt is one request to a text-generation service.
type Prompt struct {
	System string
	User   string
}

// LLMClient abstracts the generative-text service so it can be swapped or
// mocked. Implementations return the raw free-text reply.
type LLMClient interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// LLMSettings carries endpoint configuration for concrete clients.
type LLMSettings struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}
