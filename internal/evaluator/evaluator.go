// Package evaluator arbitrates between the optional external
// LLM-backed evaluator and the local rubric pipeline, normalizing
// both into one response shape. External failures are soft by design:
// the caller always receives a complete evaluation and cannot tell
// which path produced it.
package evaluator

import (
	"context"
	"log"
	"time"

	"github.com/prompt-trainer/backend/internal/config"
	"github.com/prompt-trainer/backend/internal/models"
	"github.com/prompt-trainer/backend/internal/scoring"
)

// Evaluator is the public entry point for prompt evaluation.
type Evaluator struct {
	engine  *scoring.Engine
	client  LLMClient // nil when external evaluation is disabled
	timeout time.Duration
}

// New builds an Evaluator. With cfg.Enabled false it runs the local
// pipeline only.
func New(engine *scoring.Engine, cfg config.Evaluator) *Evaluator {
	e := &Evaluator{engine: engine, timeout: cfg.Timeout}
	if cfg.Enabled {
		e.client = newClient(cfg)
	}
	return e
}

// NewWithClient wires an explicit transport; used by tests.
func NewWithClient(engine *scoring.Engine, client LLMClient, timeout time.Duration) *Evaluator {
	return &Evaluator{engine: engine, client: client, timeout: timeout}
}

func (e *Evaluator) RubricVersion() string {
	return e.engine.RubricVersion()
}

// Evaluate returns exactly one outcome per call. The external path is
// tried first when configured; any failure there falls through to the
// deterministic local pipeline.
func (e *Evaluator) Evaluate(ctx context.Context, prompt, goal string) models.EvaluationResponse {
	if e.client != nil {
		if resp, ok := e.tryExternal(ctx, prompt, goal); ok {
			return resp
		}
	}
	return e.engine.Evaluate(prompt, goal)
}

// tryExternal sends one bounded request and coerces the reply. Every
// failure class collapses to ok=false; nothing here reaches the
// caller as an error.
func (e *Evaluator) tryExternal(ctx context.Context, prompt, goal string) (models.EvaluationResponse, bool) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	raw, err := e.client.Generate(ctx, systemRubric, buildUserPrompt(prompt, goal))
	if err != nil {
		log.Printf("External evaluation failed, using local rubric: %v", err)
		return models.EvaluationResponse{}, false
	}

	resp, err := CoerceResponse(raw)
	if err != nil {
		log.Printf("External evaluation returned unusable payload, using local rubric: %v", err)
		return models.EvaluationResponse{}, false
	}
	return resp, true
}
