package services

import (
	"context"
	"fmt"

	"github.com/helix-tools/askbase/internal/core/domain"
	"github.com/helix-tools/askbase/internal/core/ports/driven"
	"github.com/helix-tools/askbase/internal/core/ports/driving"
	"github.com/helix-tools/askbase/internal/logger"
)

// Ensure RetrievalService implements the interface.
var _ driving.Retriever = (*RetrievalService)(nil)

// RetrievalService embeds queries and searches the vector index.
type RetrievalService struct {
	vectorIndex      driven.VectorIndex
	embeddingService driven.EmbeddingService
}

// NewRetrievalService creates a new retrieval service.
func NewRetrievalService(
	vectorIndex driven.VectorIndex,
	embeddingService driven.EmbeddingService,
) *RetrievalService {
	return &RetrievalService{
		vectorIndex:      vectorIndex,
		embeddingService: embeddingService,
	}
}

// Retrieve embeds the query and returns the topK most similar chunks.
func (s *RetrievalService) Retrieve(
	ctx context.Context, query string, topK int, documentIDs []string,
) ([]domain.RetrievedChunk, error) {
	if topK <= 0 {
		return nil, fmt.Errorf("%w: topK must be positive, got %d", domain.ErrInvalidInput, topK)
	}

	// An empty corpus yields an empty result without touching the
	// embedding provider.
	if s.vectorIndex.Len() == 0 {
		logger.Debug("Retrieve: index is empty, skipping embedding call")
		return []domain.RetrievedChunk{}, nil
	}

	if s.embeddingService == nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRetrieval, domain.ErrCredentialsRequired)
	}

	logger.Debug("Retrieve: query=%q, topK=%d", query, topK)

	embedding, err := s.embeddingService.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: embed query: %w", domain.ErrRetrieval, err)
	}

	hits, err := s.vectorIndex.Search(ctx, embedding, topK, documentIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: search index: %w", domain.ErrRetrieval, err)
	}

	logger.Debug("Retrieve: %d hits", len(hits))
	return hits, nil
}
