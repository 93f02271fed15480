package driven

import "context"

// EmbeddingService generates vector embeddings from text.
//
// Embedding-space consistency is a hard invariant: index and query
// embeddings must come from the same service instance, else similarity
// scores are meaningless. Wiring enforces this by sharing one instance
// between ingestion and retrieval.
//
// Implementations classify retryable upstream failures (timeout, rate
// limit, 5xx) by wrapping domain.ErrTransientUpstream.
type EmbeddingService interface {
	// Embed generates an embedding for a single text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts in one
	// upstream call where the provider allows. The result has the
	// same length and order as the input.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the embedding vector size.
	Dimensions() int

	// ModelName returns the embedding model in use.
	ModelName() string

	// Close releases resources.
	Close() error
}
