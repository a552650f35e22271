package coach

import (
	"context"
	"errors"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
)

// SearchLLM implements LLMClient over the responses API with the built-in
// web-search tool enabled. Used for the reading-recommendation call.
type SearchLLM struct {
	Model string
	Opts  []option.RequestOption
}

func NewSearchLLMFromConfig(cfg *LLMSettings) (*SearchLLM, error) {
	if cfg == nil {
		return nil, errors.New("search llm config is nil")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("search llm api key missing")
	}
	if cfg.Model == "" {
		return nil, errors.New("search llm model is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &SearchLLM{Model: cfg.Model, Opts: opts}, nil
}

func (s *SearchLLM) Complete(ctx context.Context, prompt Prompt) (string, error) {
	client := openai.NewClient(s.Opts...)

	resp, err := client.Responses.New(ctx, responses.ResponseNewParams{
		Model:        shared.ResponsesModel(s.Model),
		Instructions: openai.String(prompt.System),
		Input:        responses.ResponseNewParamsInputUnion{OfString: openai.String(prompt.User)},
		Tools: []responses.ToolUnionParam{{
			OfWebSearchPreview: &responses.WebSearchToolParam{
				Type: responses.WebSearchToolTypeWebSearchPreview,
			},
		}},
	})
	if err != nil {
		return "", err
	}
	out := resp.OutputText()
	if out == "" {
		return "", errors.New("openai: empty response output")
	}
	return out, nil
}
