package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helix-tools/askbase/internal/core/domain"
)

func TestCreateEmbeddingServiceRequiresAPIKey(t *testing.T) {
	settings := domain.DefaultSettings()

	svc, err := CreateEmbeddingService(settings)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCredentialsRequired)
	assert.Nil(t, svc)
}

func TestCreateLLMServiceRequiresAPIKey(t *testing.T) {
	settings := domain.DefaultSettings()

	svc, err := CreateLLMService(settings)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCredentialsRequired)
	assert.Nil(t, svc)
}

func TestCreateEmbeddingServiceByProvider(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		model    string
	}{
		{name: "dashscope", provider: domain.ProviderDashScope, model: "text-embedding-v2"},
		{name: "openai", provider: domain.ProviderOpenAI, model: "text-embedding-3-small"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := domain.DefaultSettings()
			settings.APIKey = "test-key"
			settings.Embedding.Provider = tt.provider
			settings.Embedding.Model = tt.model

			svc, err := CreateEmbeddingService(settings)

			require.NoError(t, err)
			require.NotNil(t, svc)
			assert.Equal(t, tt.model, svc.ModelName())
			assert.NoError(t, svc.Close())
		})
	}
}

func TestCreateLLMServiceByProvider(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		model    string
	}{
		{name: "dashscope", provider: domain.ProviderDashScope, model: "qwen-turbo"},
		{name: "openai", provider: domain.ProviderOpenAI, model: "gpt-4o-mini"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := domain.DefaultSettings()
			settings.APIKey = "test-key"
			settings.LLM.Provider = tt.provider
			settings.LLM.Model = tt.model

			svc, err := CreateLLMService(settings)

			require.NoError(t, err)
			require.NotNil(t, svc)
			assert.Equal(t, tt.model, svc.ModelName())
			assert.NoError(t, svc.Close())
		})
	}
}

func TestCreateEmbeddingServiceUnknownProvider(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.APIKey = "test-key"
	settings.Embedding.Provider = "cohere"

	svc, err := CreateEmbeddingService(settings)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported embedding provider")
	assert.Nil(t, svc)
}

func TestCreateLLMServiceUnknownProvider(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.APIKey = "test-key"
	settings.LLM.Provider = "mistral"

	svc, err := CreateLLMService(settings)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported LLM provider")
	assert.Nil(t, svc)
}
