// Package flat provides an exact in-memory vector index using brute
// force cosine similarity. The corpus of a single desktop knowledge
// base is small enough that a flat scan outperforms maintaining an
// approximate structure, and it keeps mutation visibility trivial.
package flat

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/helix-tools/askbase/internal/core/domain"
	"github.com/helix-tools/askbase/internal/core/ports/driven"
)

// Ensure Index implements the interface.
var _ driven.VectorIndex = (*Index)(nil)

// Index is an in-memory exact cosine-similarity index.
// All mutations take the write lock, so entries added before Add
// returns are visible to every subsequent Search, and deleted entries
// are never returned after DeleteByDocument returns.
type Index struct {
	mu      sync.RWMutex
	entries []driven.IndexEntry
}

// New creates an empty index.
func New() *Index {
	return &Index{}
}

// Add inserts entries into the index.
func (idx *Index) Add(_ context.Context, entries []driven.IndexEntry) error {
	if len(entries) == 0 {
		return nil
	}
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.entries = append(idx.entries, entries...)
	return nil
}

// DeleteByDocument removes every entry derived from a document.
func (idx *Index) DeleteByDocument(_ context.Context, documentID string) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	kept := idx.entries[:0]
	for _, e := range idx.entries {
		if e.DocumentID != documentID {
			kept = append(kept, e)
		}
	}
	// Release references held by the truncated tail.
	for i := len(kept); i < len(idx.entries); i++ {
		idx.entries[i] = driven.IndexEntry{}
	}
	idx.entries = kept
	return nil
}

// Search returns the k most similar entries to the query vector.
// Ordering is deterministic: descending score, then earlier document
// creation time, then chunk position.
func (idx *Index) Search(_ context.Context, query []float32, k int, documentIDs []string) ([]domain.RetrievedChunk, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if len(idx.entries) == 0 || k <= 0 {
		return []domain.RetrievedChunk{}, nil
	}

	var filter map[string]struct{}
	if len(documentIDs) > 0 {
		filter = make(map[string]struct{}, len(documentIDs))
		for _, id := range documentIDs {
			filter[id] = struct{}{}
		}
	}

	type scored struct {
		entry driven.IndexEntry
		score float64
	}
	hits := make([]scored, 0, len(idx.entries))
	for _, e := range idx.entries {
		if filter != nil {
			if _, ok := filter[e.DocumentID]; !ok {
				continue
			}
		}
		hits = append(hits, scored{entry: e, score: cosineSimilarity(e.Embedding, query)})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		a, b := hits[i].entry, hits[j].entry
		if !a.DocumentCreatedAt.Equal(b.DocumentCreatedAt) {
			return a.DocumentCreatedAt.Before(b.DocumentCreatedAt)
		}
		return a.Position < b.Position
	})

	if k > len(hits) {
		k = len(hits)
	}
	results := make([]domain.RetrievedChunk, 0, k)
	for _, h := range hits[:k] {
		results = append(results, domain.RetrievedChunk{
			ChunkID:      h.entry.ChunkID,
			DocumentID:   h.entry.DocumentID,
			DocumentName: h.entry.DocumentName,
			Position:     h.entry.Position,
			Content:      h.entry.Content,
			Score:        h.score,
		})
	}
	return results, nil
}

// Len returns the number of indexed entries.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.entries)
}

// Close releases resources.
func (idx *Index) Close() error {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.entries = nil
	return nil
}

// cosineSimilarity computes the cosine of the angle between two
// vectors. Mismatched or zero-magnitude vectors score 0.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, magA, magB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		magA += float64(a[i]) * float64(a[i])
		magB += float64(b[i]) * float64(b[i])
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}
