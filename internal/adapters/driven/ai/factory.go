// Package ai provides factory functions for creating AI service adapters.
package ai

import (
	"fmt"

	dashscopeembed "github.com/helix-tools/askbase/internal/adapters/driven/embedding/dashscope"
	openaiembed "github.com/helix-tools/askbase/internal/adapters/driven/embedding/openai"
	dashscopellm "github.com/helix-tools/askbase/internal/adapters/driven/llm/dashscope"
	openaillm "github.com/helix-tools/askbase/internal/adapters/driven/llm/openai"
	"github.com/helix-tools/askbase/internal/core/domain"
	"github.com/helix-tools/askbase/internal/core/ports/driven"
)

// CreateEmbeddingService creates the embedding service selected by the
// settings. An unset API key is reported as a credentials error so the
// caller can surface the configuration step to the user.
func CreateEmbeddingService(settings domain.Settings) (driven.EmbeddingService, error) {
	if !settings.APIKeyConfigured() {
		return nil, fmt.Errorf("%w: embedding provider %s needs an API key",
			domain.ErrCredentialsRequired, settings.Embedding.Provider)
	}

	switch settings.Embedding.Provider {
	case domain.ProviderDashScope:
		svc, err := dashscopeembed.NewEmbeddingService(dashscopeembed.Config{
			APIKey:  settings.APIKey,
			BaseURL: settings.Embedding.BaseURL,
			Model:   settings.Embedding.Model,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrEmbeddingUnavailable, err)
		}
		return svc, nil

	case domain.ProviderOpenAI:
		svc, err := openaiembed.NewEmbeddingService(openaiembed.Config{
			APIKey:  settings.APIKey,
			BaseURL: settings.Embedding.BaseURL,
			Model:   settings.Embedding.Model,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrEmbeddingUnavailable, err)
		}
		return svc, nil

	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", settings.Embedding.Provider)
	}
}

// CreateLLMService creates the generation service selected by the settings.
func CreateLLMService(settings domain.Settings) (driven.LLMService, error) {
	if !settings.APIKeyConfigured() {
		return nil, fmt.Errorf("%w: LLM provider %s needs an API key",
			domain.ErrCredentialsRequired, settings.LLM.Provider)
	}

	switch settings.LLM.Provider {
	case domain.ProviderDashScope:
		svc, err := dashscopellm.NewLLMService(dashscopellm.Config{
			APIKey:  settings.APIKey,
			BaseURL: settings.LLM.BaseURL,
			Model:   settings.LLM.Model,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrLLMUnavailable, err)
		}
		return svc, nil

	case domain.ProviderOpenAI:
		svc, err := openaillm.NewLLMService(openaillm.Config{
			APIKey:  settings.APIKey,
			BaseURL: settings.LLM.BaseURL,
			Model:   settings.LLM.Model,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrLLMUnavailable, err)
		}
		return svc, nil

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", settings.LLM.Provider)
	}
}
