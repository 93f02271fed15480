package services

import (
	"fmt"
	"strings"

	"github.com/helix-tools/askbase/internal/core/domain"
	"github.com/helix-tools/askbase/internal/core/ports/driven"
	"github.com/helix-tools/askbase/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyAPIKey        = "api.key"
	keyEmbedProvider = "embedding.provider"
	keyEmbedModel    = "embedding.model"
	keyEmbedBaseURL  = "embedding.base_url"
	keyEmbedBatch    = "embedding.batch_size"
	keyLLMProvider   = "llm.provider"
	keyLLMModel      = "llm.model"
	keyLLMBaseURL    = "llm.base_url"
	keyChunkSize     = "chunker.chunk_size"
	keyChunkOverlap  = "chunker.overlap"
	keyTopK          = "retrieval.top_k"
	keyHistoryWindow = "answer.history_window"
	keyMaxAttempts   = "answer.max_attempts"
	keyMaxUpload     = "upload.max_bytes"
)

// SettingsService manages engine configuration and credentials.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get returns the effective settings: persisted values over defaults.
func (s *SettingsService) Get() (*domain.Settings, error) {
	settings := domain.DefaultSettings()

	settings.APIKey = s.configStore.GetString(keyAPIKey)
	settings.Embedding.Provider = s.getString(keyEmbedProvider, settings.Embedding.Provider)
	settings.Embedding.Model = s.getString(keyEmbedModel, settings.Embedding.Model)
	settings.Embedding.BaseURL = s.configStore.GetString(keyEmbedBaseURL)
	settings.LLM.Provider = s.getString(keyLLMProvider, settings.LLM.Provider)
	settings.LLM.Model = s.getString(keyLLMModel, settings.LLM.Model)
	settings.LLM.BaseURL = s.configStore.GetString(keyLLMBaseURL)

	settings.ChunkSize = s.getInt(keyChunkSize, settings.ChunkSize)
	settings.ChunkOverlap = s.getInt(keyChunkOverlap, settings.ChunkOverlap)
	settings.EmbedBatchSize = s.getInt(keyEmbedBatch, settings.EmbedBatchSize)
	settings.TopK = s.getInt(keyTopK, settings.TopK)
	settings.HistoryWindow = s.getInt(keyHistoryWindow, settings.HistoryWindow)
	settings.MaxAttempts = s.getInt(keyMaxAttempts, settings.MaxAttempts)
	if v := s.configStore.GetInt(keyMaxUpload); v > 0 {
		settings.MaxUploadBytes = int64(v)
	}

	return &settings, nil
}

// SetAPIKey stores the upstream API key.
func (s *SettingsService) SetAPIKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("%w: api key must not be empty", domain.ErrInvalidInput)
	}
	if err := s.configStore.Set(keyAPIKey, key); err != nil {
		return fmt.Errorf("save api key: %w", err)
	}
	return nil
}

// APIKeyConfigured reports whether a key has been set.
func (s *SettingsService) APIKeyConfigured() bool {
	return s.configStore.GetString(keyAPIKey) != ""
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}
