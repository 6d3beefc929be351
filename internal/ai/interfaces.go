package ai

import (
	"context"
)

// Generator is the outbound generative-text gateway.
type Generator interface {
	// Generate sends the prompt (prefixed with the system instruction when
	// one is given) and returns the raw text reply.
	Generate(ctx context.Context, prompt, systemInstruction string) (string, error)

	// TestConnection probes the remote service; it reports false on any
	// failure instead of returning an error.
	TestConnection(ctx context.Context) bool
}
