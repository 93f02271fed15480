package domain

// Settings holds the tunable engine configuration. Everything the
// boundary contract leaves unobservable (window sizes, top-k, retry
// budget) is configuration with defaults, not a constant.
type Settings struct {
	// APIKey is the upstream API key shared by embedding and
	// generation calls. Unset at startup, set once, readable any time.
	APIKey string

	// Embedding selects and configures the embedding provider.
	Embedding ProviderSettings

	// LLM selects and configures the generation provider.
	LLM ProviderSettings

	// ChunkSize is the chunk window size in runes.
	ChunkSize int

	// ChunkOverlap is the overlap between adjacent windows in runes.
	ChunkOverlap int

	// EmbedBatchSize caps how many chunks are embedded per upstream call.
	EmbedBatchSize int

	// TopK is how many chunks retrieval returns for a question.
	TopK int

	// HistoryWindow is how many trailing messages are replayed into
	// the prompt. Bounds prompt size regardless of conversation length.
	HistoryWindow int

	// MaxAttempts bounds generation retries on transient failures.
	MaxAttempts int

	// MaxUploadBytes caps a single document upload.
	MaxUploadBytes int64
}

// ProviderSettings configures one AI provider endpoint.
type ProviderSettings struct {
	// Provider is the adapter name: "dashscope" or "openai".
	Provider string

	// Model is the provider-specific model name.
	Model string

	// BaseURL overrides the provider's default endpoint.
	BaseURL string
}

// Supported AI provider names.
const (
	ProviderDashScope = "dashscope"
	ProviderOpenAI    = "openai"
)

// Default provider and engine values. Chunking and top-k defaults
// follow the desktop application this engine was extracted from.
const (
	DefaultEmbeddingProvider = ProviderDashScope
	DefaultEmbeddingModel    = "text-embedding-v2"
	DefaultLLMProvider       = ProviderDashScope
	DefaultLLMModel          = "qwen-turbo"
	DefaultChunkSize         = 800
	DefaultChunkOverlap      = 80
	DefaultEmbedBatchSize    = 25
	DefaultTopK              = 3
	DefaultHistoryWindow     = 6
	DefaultMaxAttempts       = 3
	DefaultMaxUploadBytes    = 10 << 20
)

// DefaultSettings returns the engine defaults.
func DefaultSettings() Settings {
	return Settings{
		Embedding: ProviderSettings{
			Provider: DefaultEmbeddingProvider,
			Model:    DefaultEmbeddingModel,
		},
		LLM: ProviderSettings{
			Provider: DefaultLLMProvider,
			Model:    DefaultLLMModel,
		},
		ChunkSize:      DefaultChunkSize,
		ChunkOverlap:   DefaultChunkOverlap,
		EmbedBatchSize: DefaultEmbedBatchSize,
		TopK:           DefaultTopK,
		HistoryWindow:  DefaultHistoryWindow,
		MaxAttempts:    DefaultMaxAttempts,
		MaxUploadBytes: DefaultMaxUploadBytes,
	}
}

// APIKeyConfigured reports whether a key has been set.
func (s *Settings) APIKeyConfigured() bool {
	return s.APIKey != ""
}
