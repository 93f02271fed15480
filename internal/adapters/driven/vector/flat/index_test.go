package flat

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helix-tools/askbase/internal/core/ports/driven"
)

func entry(chunkID, docID string, position int, created time.Time, vec []float32) driven.IndexEntry {
	return driven.IndexEntry{
		ChunkID:           chunkID,
		DocumentID:        docID,
		DocumentName:      docID + ".txt",
		DocumentCreatedAt: created,
		Position:          position,
		Content:           "content of " + chunkID,
		Embedding:         vec,
	}
}

func TestSearch_EmptyIndex(t *testing.T) {
	idx := New()
	results, err := idx.Search(context.Background(), []float32{1, 0}, 5, nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearch_RanksBySimilarity(t *testing.T) {
	idx := New()
	now := time.Now()
	err := idx.Add(context.Background(), []driven.IndexEntry{
		entry("c1", "d1", 0, now, []float32{1, 0}),
		entry("c2", "d1", 1, now, []float32{0, 1}),
		entry("c3", "d1", 2, now, []float32{0.9, 0.1}),
	})
	require.NoError(t, err)

	results, err := idx.Search(context.Background(), []float32{1, 0}, 2, nil)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "c1", results[0].ChunkID)
	assert.Equal(t, "c3", results[1].ChunkID)
	assert.Greater(t, results[0].Score, results[1].Score)
}

func TestSearch_DeterministicTieBreak(t *testing.T) {
	idx := New()
	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)

	// Identical embeddings: scores tie exactly.
	vec := []float32{1, 1}
	err := idx.Add(context.Background(), []driven.IndexEntry{
		entry("new-0", "newer", 0, newer, vec),
		entry("old-1", "older", 1, older, vec),
		entry("old-0", "older", 0, older, vec),
	})
	require.NoError(t, err)

	results, err := idx.Search(context.Background(), vec, 3, nil)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Earlier-created document first, then lower position.
	assert.Equal(t, "old-0", results[0].ChunkID)
	assert.Equal(t, "old-1", results[1].ChunkID)
	assert.Equal(t, "new-0", results[2].ChunkID)
}

func TestSearch_TopKExceedsCorpus(t *testing.T) {
	idx := New()
	err := idx.Add(context.Background(), []driven.IndexEntry{
		entry("c1", "d1", 0, time.Now(), []float32{1, 0}),
	})
	require.NoError(t, err)

	results, err := idx.Search(context.Background(), []float32{1, 0}, 10, nil)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestSearch_DocumentFilter(t *testing.T) {
	idx := New()
	now := time.Now()
	err := idx.Add(context.Background(), []driven.IndexEntry{
		entry("c1", "d1", 0, now, []float32{1, 0}),
		entry("c2", "d2", 0, now, []float32{1, 0}),
	})
	require.NoError(t, err)

	results, err := idx.Search(context.Background(), []float32{1, 0}, 10, []string{"d2"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "c2", results[0].ChunkID)
}

func TestDeleteByDocument_Visibility(t *testing.T) {
	idx := New()
	now := time.Now()
	err := idx.Add(context.Background(), []driven.IndexEntry{
		entry("c1", "d1", 0, now, []float32{1, 0}),
		entry("c2", "d1", 1, now, []float32{1, 0}),
		entry("c3", "d2", 0, now, []float32{1, 0}),
	})
	require.NoError(t, err)
	require.Equal(t, 3, idx.Len())

	require.NoError(t, idx.DeleteByDocument(context.Background(), "d1"))
	assert.Equal(t, 1, idx.Len())

	results, err := idx.Search(context.Background(), []float32{1, 0}, 10, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "c3", results[0].ChunkID)
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, cosineSimilarity([]float32{1, 0}, []float32{1, 0}), 1e-9)
	assert.InDelta(t, 0.0, cosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.Equal(t, 0.0, cosineSimilarity([]float32{1, 0}, []float32{1, 0, 0}))
	assert.Equal(t, 0.0, cosineSimilarity([]float32{0, 0}, []float32{1, 0}))
}
