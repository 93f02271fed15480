package driven

import (
	"context"
	"time"

	"github.com/helix-tools/askbase/internal/core/domain"
)

// VectorIndex provides semantic similarity search over chunk embeddings.
//
// Mutations are strictly visible: an entry added before Add returns is
// found by subsequent searches, and a deleted entry is never returned
// after Delete returns.
type VectorIndex interface {
	// Add inserts entries into the index.
	Add(ctx context.Context, entries []IndexEntry) error

	// DeleteByDocument removes every entry derived from a document.
	DeleteByDocument(ctx context.Context, documentID string) error

	// Search returns the k nearest entries to the query vector by
	// cosine similarity, ordered by descending score with ties broken
	// by earlier document creation time, then chunk position. When
	// documentIDs is non-empty, only those documents are searched.
	// An empty index yields an empty result, not an error.
	Search(ctx context.Context, query []float32, k int, documentIDs []string) ([]domain.RetrievedChunk, error)

	// Len returns the number of indexed entries.
	Len() int

	// Close releases resources.
	Close() error
}

// IndexEntry maps a chunk to its embedding plus the provenance needed
// on the hot retrieval path without touching the document store.
type IndexEntry struct {
	// ChunkID is the indexed chunk.
	ChunkID string

	// DocumentID is the owning document.
	DocumentID string

	// DocumentName is the owning document's display name.
	DocumentName string

	// DocumentCreatedAt orders equal-score hits deterministically.
	DocumentCreatedAt time.Time

	// Position is the chunk's ordinal position within the document.
	Position int

	// Content is the chunk text.
	Content string

	// Embedding is the chunk's vector representation.
	Embedding []float32
}
