package ai

import (
	"context"
	"errors"
)

// ErrMissingCredentials is returned when a provider is asked to generate
// without the secrets it needs. Callers must treat this as a configuration
// error, not a data error.
var ErrMissingCredentials = errors.New("ai: missing provider credentials")

// ErrUpstream marks an explicit error reported inside a provider response
// envelope. It is never retried here; the caller decides.
var ErrUpstream = errors.New("ai: upstream provider error")

// LLMProvider defines the contract for interacting with AI models.
// This interface allows for swapping different AI providers (Hunyuan, Gemini, etc.).
type LLMProvider interface {
	// Generate sends a system prompt and a user prompt to the model and
	// returns the raw completion text. The caller owns parsing that text;
	// providers never interpret it.
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
