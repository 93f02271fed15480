package driven

import (
	"context"

	"github.com/helix-tools/askbase/internal/core/domain"
)

// DocumentStore persists documents and their derived chunks.
// Backed by SQLite for durable storage.
type DocumentStore interface {
	// SaveDocument stores or updates a document record.
	SaveDocument(ctx context.Context, doc *domain.Document) error

	// GetDocument retrieves a document by ID, including content.
	// Returns domain.ErrNotFound if the ID is absent.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// ListDocuments returns contentless summaries of every document,
	// newest first.
	ListDocuments(ctx context.Context) ([]domain.DocumentSummary, error)

	// DeleteDocument removes a document record.
	// Returns domain.ErrNotFound if the ID is absent.
	DeleteDocument(ctx context.Context, id string) error

	// SaveChunks stores chunks (with embeddings) for a document.
	SaveChunks(ctx context.Context, chunks []domain.Chunk) error

	// GetChunks retrieves a document's chunks ordered by position.
	GetChunks(ctx context.Context, documentID string) ([]domain.Chunk, error)

	// DeleteChunks removes all chunks derived from a document.
	DeleteChunks(ctx context.Context, documentID string) error
}
