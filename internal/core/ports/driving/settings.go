package driving

import "github.com/helix-tools/askbase/internal/core/domain"

// SettingsService manages engine configuration and credentials.
type SettingsService interface {
	// Get returns the effective settings (persisted values over defaults).
	Get() (*domain.Settings, error)

	// SetAPIKey stores the upstream API key. Empty keys are rejected
	// with domain.ErrInvalidInput.
	SetAPIKey(key string) error

	// APIKeyConfigured reports whether a key has been set.
	APIKeyConfigured() bool
}
