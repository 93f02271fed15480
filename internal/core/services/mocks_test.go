package services

import (
	"context"
	"sync"

	"github.com/helix-tools/askbase/internal/core/domain"
	"github.com/helix-tools/askbase/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockEmbeddingService implements driven.EmbeddingService for testing.
type mockEmbeddingService struct {
	mu         sync.Mutex
	embedding  []float32
	embedErr   error
	embedCalls int
	batchCalls int
}

func (m *mockEmbeddingService) Embed(_ context.Context, _ string) ([]float32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.embedCalls++
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	return m.embedding, nil
}

func (m *mockEmbeddingService) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.batchCalls++
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	result := make([][]float32, len(texts))
	for i := range texts {
		result[i] = m.embedding
	}
	return result, nil
}

func (m *mockEmbeddingService) Dimensions() int {
	return len(m.embedding)
}

func (m *mockEmbeddingService) ModelName() string {
	return "mock-embed"
}

func (m *mockEmbeddingService) Close() error {
	return nil
}

// mockLLMService implements driven.LLMService for testing.
type mockLLMService struct {
	mu      sync.Mutex
	reply   string
	chatErr error // returned on every call when set
	calls   int
	prompts [][]driven.ChatMessage
}

func (m *mockLLMService) Chat(
	_ context.Context, messages []driven.ChatMessage, _ driven.ChatOptions,
) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.prompts = append(m.prompts, messages)
	if m.chatErr != nil {
		return "", m.chatErr
	}
	return m.reply, nil
}

func (m *mockLLMService) ModelName() string {
	return "mock-llm"
}

func (m *mockLLMService) Close() error {
	return nil
}

// mockRetriever implements driving.Retriever for testing.
type mockRetriever struct {
	hits []domain.RetrievedChunk
	err  error
}

func (m *mockRetriever) Retrieve(
	_ context.Context, _ string, topK int, _ []string,
) ([]domain.RetrievedChunk, error) {
	if m.err != nil {
		return nil, m.err
	}
	if topK > len(m.hits) {
		return m.hits, nil
	}
	return m.hits[:topK], nil
}

// mockConfigStore implements driven.ConfigStore for testing.
type mockConfigStore struct {
	mu     sync.RWMutex
	values map[string]any
	setErr error
}

func newMockConfigStore() *mockConfigStore {
	return &mockConfigStore{values: make(map[string]any)}
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.values[key].(string); ok {
		return s
	}
	return ""
}

func (m *mockConfigStore) GetInt(key string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	switch v := m.values[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	}
	return 0
}

func (m *mockConfigStore) Set(key string, value any) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *mockConfigStore) Load() error {
	return nil
}

func (m *mockConfigStore) Path() string {
	return "/tmp/mock-config.toml"
}

// mockFileReader implements driven.FileReader for testing.
type mockFileReader struct {
	content string
	info    driven.FileInfo
	readErr error
	infoErr error
}

func (m *mockFileReader) ReadContent(_ string) (string, error) {
	if m.readErr != nil {
		return "", m.readErr
	}
	return m.content, nil
}

func (m *mockFileReader) Info(_ string) (driven.FileInfo, error) {
	if m.infoErr != nil {
		return driven.FileInfo{}, m.infoErr
	}
	return m.info, nil
}
