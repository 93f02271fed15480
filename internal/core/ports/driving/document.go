package driving

import (
	"context"

	"github.com/helix-tools/askbase/internal/core/domain"
)

// IngestService turns raw content into an indexed document.
type IngestService interface {
	// Upload stores a document, chunks it, embeds the chunks in
	// batches and indexes them. Chunks whose embedding fails are
	// reported in the result; the rest of the document is indexed.
	Upload(ctx context.Context, name, content, fileType string) (*domain.UploadResult, error)

	// UploadFromPath reads a local file and uploads it, deriving the
	// name and type tag from the path.
	UploadFromPath(ctx context.Context, path string) (*domain.UploadResult, error)
}

// DocumentService manages stored documents.
type DocumentService interface {
	// List returns contentless summaries of all documents.
	List(ctx context.Context) ([]domain.DocumentSummary, error)

	// Get retrieves a document by ID, including content.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// Delete removes a document, its chunks and its index entries.
	// The index is retracted first so it never references a chunk the
	// store has already dropped.
	Delete(ctx context.Context, id string) error
}
