package driven

import "context"

// LLMService invokes the generative capability for answer synthesis.
//
// Implementations classify retryable upstream failures (timeout, rate
// limit, 5xx) by wrapping domain.ErrTransientUpstream; authentication
// and invalid-request failures are terminal and never retried.
type LLMService interface {
	// Chat sends a conversation and returns the assistant's reply.
	Chat(ctx context.Context, messages []ChatMessage, opts ChatOptions) (string, error)

	// ModelName returns the generation model in use.
	ModelName() string

	// Close releases resources.
	Close() error
}

// ChatMessage represents a single message in a conversation.
type ChatMessage struct {
	// Role is one of "system", "user", or "assistant".
	Role string

	// Content is the message text.
	Content string
}

// ChatOptions configures generation behaviour.
type ChatOptions struct {
	// Temperature controls randomness (0.0 = deterministic).
	Temperature float64

	// TopP is the nucleus sampling bound.
	TopP float64
}
