package services

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/helix-tools/askbase/internal/core/domain"
	"github.com/helix-tools/askbase/internal/core/ports/driven"
	"github.com/helix-tools/askbase/internal/core/ports/driving"
	"github.com/helix-tools/askbase/internal/logger"
)

// Ensure DocumentService implements the interfaces.
var (
	_ driving.DocumentService = (*DocumentService)(nil)
	_ driving.IngestService   = (*DocumentService)(nil)
)

// DocumentService manages the document lifecycle: upload, chunking,
// embedding, indexing, listing and deletion. Mutations of the same
// document are serialized through a per-document lock so a delete can
// never interleave with that document's indexing.
type DocumentService struct {
	docStore         driven.DocumentStore
	vectorIndex      driven.VectorIndex
	embeddingService driven.EmbeddingService
	fileReader       driven.FileReader
	settings         driving.SettingsService

	// embedLimiter throttles upstream embedding calls.
	embedLimiter *rate.Limiter

	docLocks *keyedMutex
}

// NewDocumentService creates a new document service.
// The fileReader parameter is optional (can be nil); path-based uploads
// then fail with domain.ErrInvalidInput.
func NewDocumentService(
	docStore driven.DocumentStore,
	vectorIndex driven.VectorIndex,
	embeddingService driven.EmbeddingService,
	fileReader driven.FileReader,
	settings driving.SettingsService,
) *DocumentService {
	return &DocumentService{
		docStore:         docStore,
		vectorIndex:      vectorIndex,
		embeddingService: embeddingService,
		fileReader:       fileReader,
		settings:         settings,
		embedLimiter:     rate.NewLimiter(rate.Limit(2), 1),
		docLocks:         newKeyedMutex(),
	}
}

// List returns contentless summaries of all documents, newest first.
func (s *DocumentService) List(ctx context.Context) ([]domain.DocumentSummary, error) {
	summaries, err := s.docStore.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return summaries, nil
}

// Get retrieves a document by ID, including content.
func (s *DocumentService) Get(ctx context.Context, id string) (*domain.Document, error) {
	doc, err := s.docStore.GetDocument(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get document %s: %w", id, err)
	}
	return doc, nil
}

// Delete removes a document, its chunks and its index entries.
// The index is retracted first so a concurrent search can never return
// a chunk the store has already dropped.
func (s *DocumentService) Delete(ctx context.Context, id string) error {
	unlock := s.docLocks.Lock(id)
	defer unlock()

	// Existence check up front so callers get ErrNotFound before any
	// partial teardown.
	if _, err := s.docStore.GetDocument(ctx, id); err != nil {
		return fmt.Errorf("get document %s: %w", id, err)
	}

	logger.Section("Document Deletion")
	logger.Debug("Deleting document %s", id)

	if err := s.vectorIndex.DeleteByDocument(ctx, id); err != nil {
		return fmt.Errorf("retract index entries for %s: %w", id, err)
	}
	if err := s.docStore.DeleteChunks(ctx, id); err != nil {
		return fmt.Errorf("delete chunks for %s: %w", id, err)
	}
	if err := s.docStore.DeleteDocument(ctx, id); err != nil {
		return fmt.Errorf("delete document %s: %w", id, err)
	}

	logger.Info("Deleted document %s", id)
	return nil
}
