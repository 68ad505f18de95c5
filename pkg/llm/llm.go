package llm

import "context"

// CompletionModel is a minimal abstraction for chat-based LLMs used by the
// domain. It intentionally hides concrete providers to preserve dependency
// direction.
type CompletionModel interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
