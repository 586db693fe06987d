package llm

import "context"

// Engine sends a composed instruction to a generative-text service and returns
// the raw textual response. Any failure is recoverable for the caller.
type Engine interface {
	Name() string
	// Configured reports whether the engine has its credential. Checked
	// before any model call so a deployment problem is not mistaken for a
	// recoverable model failure.
	Configured() bool
	Generate(ctx context.Context, prompt string) (string, error)
}
