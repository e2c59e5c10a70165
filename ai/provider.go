// Package ai defines the interface for model completion providers
// and a placeholder implementation.
//
// Design decisions:
//   - Provider is an interface so we can swap backends (OpenAI, Anthropic,
//     Gemini, Ollama, in-warehouse) without changing pipeline code.
//   - All methods accept context for cancellation (async-friendly).
//   - The placeholder provider returns canned responses for development.
package ai

import (
	"context"
	"fmt"
)

// Provider is the interface all completion backends must implement.
type Provider interface {
	// Complete sends a system message and a user message and returns
	// the literal generated text, including any embedded fenced code.
	Complete(ctx context.Context, system, user string) (string, error)

	// Name returns the provider name for display.
	Name() string
}

// InvocationError indicates the external model call failed
// (transport, quota, or service error).
type InvocationError struct {
	Provider string
	Err      error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("model invocation failed (%s): %v", e.Provider, e.Err)
}

func (e *InvocationError) Unwrap() error { return e.Err }
