package evaluator

import (
	"context"
	"log"

	"github.com/prompt-trainer/backend/internal/config"
)

// LLMClient is the transport every external evaluator backend
// satisfies. Implementations send exactly one request: the caller owns
// the timeout via ctx and never retries, since a deterministic local
// fallback is always available.
type LLMClient interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// newClient selects a backend from configuration.
func newClient(cfg config.Evaluator) LLMClient {
	switch cfg.Provider {
	case "anthropic":
		log.Println("External evaluator using Anthropic API:", cfg.Model)
		return NewAPIClient(cfg.Model)
	case "mock":
		log.Println("External evaluator using mock data")
		return NewMockClient()
	default:
		log.Printf("External evaluator using Ollama at %s (model %s)", cfg.BaseURL, cfg.Model)
		return NewOllamaClient(cfg.BaseURL, cfg.Model)
	}
}

// ── MockClient — Local Development ─────────────────────────

type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return `{
		"label": "ok",
		"score": 58,
		"summary": "[Mock] Decent prompt with room to tighten scope and format.",
		"subscores": [
			{"name": "Role", "score": 2, "comment": "[Mock] No explicit persona."},
			{"name": "Goal", "score": 3, "comment": "[Mock] Goal partly inferable."},
			{"name": "Context", "score": 3, "comment": "[Mock] Some background present."},
			{"name": "Constraints", "score": 2, "comment": "[Mock] Length and tone unspecified."}
		],
		"feedback": ["[Mock] Add an output format.", "[Mock] Name the audience."],
		"suggestions": [{"title": "Set format", "text": "[Mock] Ask for bullets and a word limit."}],
		"improved_prompt": "[Mock] Explain the topic in 5 bullets for a beginner."
	}`, nil
}
