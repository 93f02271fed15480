package domain

import "time"

// Document is an uploaded knowledge-base document.
// Documents are immutable once created; the only mutation is deletion,
// which cascades to the derived chunks and index entries.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// Name is the human-readable display name (usually the file name).
	Name string

	// Content is the full raw text content.
	Content string

	// FileType is an optional type tag (e.g. "txt", "md", "pdf").
	FileType string

	// FileSize is the content size in bytes.
	FileSize int64

	// CreatedAt is when the document was uploaded.
	CreatedAt time.Time

	// UpdatedAt is when the document record was last written.
	UpdatedAt time.Time
}

// DocumentSummary is a contentless projection of a Document.
// Listing returns summaries so the cost stays flat regardless of
// how large the stored documents are.
type DocumentSummary struct {
	ID        string
	Name      string
	FileType  string
	FileSize  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Summary returns the contentless projection of the document.
func (d *Document) Summary() DocumentSummary {
	return DocumentSummary{
		ID:        d.ID,
		Name:      d.Name,
		FileType:  d.FileType,
		FileSize:  d.FileSize,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// Chunk is the unit of retrieval: a bounded span of a document's text.
// Chunks are created and destroyed only as a side effect of their owning
// document's lifecycle; a chunk never outlives its document.
type Chunk struct {
	// ID is the unique identifier for the chunk.
	ID string

	// DocumentID links back to the owning Document.
	DocumentID string

	// Content is the text span of this chunk.
	Content string

	// Position is the ordinal position within the document.
	Position int

	// Embedding is the vector representation used for similarity search.
	// It may be nil for chunks whose embedding call failed.
	Embedding []float32
}
