package driving

import (
	"context"

	"github.com/helix-tools/askbase/internal/core/domain"
)

// AnswerService answers natural-language questions against the
// indexed corpus, maintaining conversation state across turns.
type AnswerService interface {
	// Ask runs the full question pipeline: resolve conversation,
	// retrieve context, assemble the prompt, generate, persist.
	//
	// Recoverable generation failures return a result with
	// Success=false and the question recorded; hard failures
	// (validation, unknown conversation, retrieval, storage) return
	// an error.
	Ask(ctx context.Context, req domain.AskRequest) (*domain.AskResult, error)
}

// Retriever returns ranked relevant chunks for a query with provenance.
type Retriever interface {
	// Retrieve embeds the query and returns the topK most similar
	// chunks by descending score. topK must be positive; asking for
	// more chunks than exist returns all available. An empty corpus
	// yields an empty result, not an error. When documentIDs is
	// non-empty, retrieval is restricted to those documents.
	Retrieve(ctx context.Context, query string, topK int, documentIDs []string) ([]domain.RetrievedChunk, error)
}
