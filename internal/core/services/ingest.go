package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/helix-tools/askbase/internal/chunker"
	"github.com/helix-tools/askbase/internal/core/domain"
	"github.com/helix-tools/askbase/internal/core/ports/driven"
	"github.com/helix-tools/askbase/internal/logger"
)

// Upload stores a document, chunks it, embeds the chunks in batches and
// indexes them. Chunks whose embedding fails after retries are reported
// in the result and skipped; the rest of the document is indexed.
func (s *DocumentService) Upload(
	ctx context.Context, name, content, fileType string,
) (*domain.UploadResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: document name must not be empty", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: document content must not be empty", domain.ErrInvalidInput)
	}

	if s.embeddingService == nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrEmbeddingUnavailable, domain.ErrCredentialsRequired)
	}

	cfg, err := s.settings.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if int64(len(content)) > cfg.MaxUploadBytes {
		return nil, fmt.Errorf("%w: document exceeds upload limit of %d bytes",
			domain.ErrInvalidInput, cfg.MaxUploadBytes)
	}

	logger.Section("Document Upload")
	logger.Debug("Uploading %q (%d bytes, type=%s)", name, len(content), fileType)

	now := time.Now()
	doc := &domain.Document{
		ID:        uuid.NewString(),
		Name:      name,
		Content:   content,
		FileType:  fileType,
		FileSize:  int64(len(content)),
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Holding the document lock for the whole upload keeps a concurrent
	// delete from interleaving with indexing.
	unlock := s.docLocks.Lock(doc.ID)
	defer unlock()

	if err := s.docStore.SaveDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("%w: save document: %w", domain.ErrStorage, err)
	}

	splitter := chunker.New(
		chunker.WithChunkSize(cfg.ChunkSize),
		chunker.WithOverlap(cfg.ChunkOverlap),
	)
	pieces := splitter.Split(content)
	logger.Debug("Split into %d chunks", len(pieces))

	chunks, failed := s.embedPieces(ctx, doc.ID, pieces, cfg.EmbedBatchSize, cfg.MaxAttempts)

	if err := s.docStore.SaveChunks(ctx, chunks); err != nil {
		return nil, fmt.Errorf("%w: save chunks: %w", domain.ErrStorage, err)
	}

	entries := indexEntries(doc, chunks)
	if len(entries) > 0 {
		if err := s.vectorIndex.Add(ctx, entries); err != nil {
			return nil, fmt.Errorf("index chunks: %w", err)
		}
	}

	indexed := len(entries)
	logger.Info("Uploaded %q: %d chunks indexed, %d failed", name, indexed, len(failed))

	message := fmt.Sprintf("uploaded %q: %d chunks indexed", name, indexed)
	if len(failed) > 0 {
		message = fmt.Sprintf("uploaded %q: %d chunks indexed, %d chunks failed embedding",
			name, indexed, len(failed))
	}

	return &domain.UploadResult{
		Success:         true,
		Message:         message,
		DocumentID:      doc.ID,
		ChunkCount:      indexed,
		FailedPositions: failed,
	}, nil
}

// UploadFromPath reads a local file and uploads it, deriving the name
// and type tag from the path.
func (s *DocumentService) UploadFromPath(ctx context.Context, path string) (*domain.UploadResult, error) {
	if s.fileReader == nil {
		return nil, fmt.Errorf("%w: file uploads are not available", domain.ErrInvalidInput)
	}

	info, err := s.fileReader.Info(path)
	if err != nil {
		return nil, fmt.Errorf("inspect %s: %w", path, err)
	}
	content, err := s.fileReader.ReadContent(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return s.Upload(ctx, info.Name, content, info.Type)
}

// RebuildIndex reloads every persisted chunk embedding into the vector
// index. Called once at startup; the index itself is not durable.
func (s *DocumentService) RebuildIndex(ctx context.Context) error {
	summaries, err := s.docStore.ListDocuments(ctx)
	if err != nil {
		return fmt.Errorf("list documents: %w", err)
	}

	total := 0
	for _, summary := range summaries {
		chunks, err := s.docStore.GetChunks(ctx, summary.ID)
		if err != nil {
			return fmt.Errorf("load chunks for %s: %w", summary.ID, err)
		}

		entries := make([]driven.IndexEntry, 0, len(chunks))
		for _, chunk := range chunks {
			if chunk.Embedding == nil {
				continue
			}
			entries = append(entries, driven.IndexEntry{
				ChunkID:           chunk.ID,
				DocumentID:        summary.ID,
				DocumentName:      summary.Name,
				DocumentCreatedAt: summary.CreatedAt,
				Position:          chunk.Position,
				Content:           chunk.Content,
				Embedding:         chunk.Embedding,
			})
		}
		if len(entries) == 0 {
			continue
		}
		if err := s.vectorIndex.Add(ctx, entries); err != nil {
			return fmt.Errorf("index chunks for %s: %w", summary.ID, err)
		}
		total += len(entries)
	}

	logger.Info("Rebuilt index: %d chunks from %d documents", total, len(summaries))
	return nil
}

// embedPieces embeds pieces in batches and returns the resulting chunks
// plus the positions whose embedding failed. Failed chunks carry a nil
// embedding so the text is still retained.
func (s *DocumentService) embedPieces(
	ctx context.Context, documentID string, pieces []chunker.Piece, batchSize, maxAttempts int,
) ([]domain.Chunk, []int) {
	if batchSize <= 0 {
		batchSize = domain.DefaultEmbedBatchSize
	}

	chunks := make([]domain.Chunk, 0, len(pieces))
	var failed []int

	for start := 0; start < len(pieces); start += batchSize {
		end := start + batchSize
		if end > len(pieces) {
			end = len(pieces)
		}
		batch := pieces[start:end]

		texts := make([]string, len(batch))
		for i, p := range batch {
			texts[i] = p.Content
		}

		var embeddings [][]float32
		err := withRetry(ctx, maxAttempts, func() error {
			if err := s.embedLimiter.Wait(ctx); err != nil {
				return err
			}
			var embedErr error
			embeddings, embedErr = s.embeddingService.EmbedBatch(ctx, texts)
			return embedErr
		})

		for i, p := range batch {
			chunk := domain.Chunk{
				ID:         uuid.NewString(),
				DocumentID: documentID,
				Content:    p.Content,
				Position:   p.Position,
			}
			if err == nil && i < len(embeddings) {
				chunk.Embedding = embeddings[i]
			} else {
				failed = append(failed, p.Position)
			}
			chunks = append(chunks, chunk)
		}

		if err != nil {
			logger.Warn("Embedding batch %d-%d failed: %v", start, end-1, err)
		}
	}

	return chunks, failed
}

// indexEntries maps successfully embedded chunks to index entries.
func indexEntries(doc *domain.Document, chunks []domain.Chunk) []driven.IndexEntry {
	entries := make([]driven.IndexEntry, 0, len(chunks))
	for _, chunk := range chunks {
		if chunk.Embedding == nil {
			continue
		}
		entries = append(entries, driven.IndexEntry{
			ChunkID:           chunk.ID,
			DocumentID:        doc.ID,
			DocumentName:      doc.Name,
			DocumentCreatedAt: doc.CreatedAt,
			Position:          chunk.Position,
			Content:           chunk.Content,
			Embedding:         chunk.Embedding,
		})
	}
	return entries
}
