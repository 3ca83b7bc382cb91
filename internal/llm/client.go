// Package llm provides the text-generation client used to produce lesson plans.
package llm

import (
	"context"
	"errors"
)

var (
	// ErrMissingAPIKey is returned when no API credential is configured at call time.
	ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not configured")
	// ErrEmptyResponse is returned when the API call succeeds but carries no usable text.
	ErrEmptyResponse = errors.New("model returned an empty response")
)

// TextGenerator is the interface all text-generation clients must implement
type TextGenerator interface {
	// Generate sends the prompt to the model and returns the raw response text.
	Generate(ctx context.Context, prompt string) (string, error)

	// Model returns the model identifier used for generation.
	Model() string
}
