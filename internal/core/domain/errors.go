package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input:
	// an empty question, an oversized upload, an unsupported type.
	// Never retried; surfaced to the caller immediately.
	ErrInvalidInput = errors.New("invalid input")

	// ErrRetrieval indicates the index or embedding subsystem failed
	// while answering a query. A question is never answered without
	// retrieval context, so this aborts the request.
	ErrRetrieval = errors.New("retrieval failed")

	// ErrGeneration indicates a non-transient failure of the generative
	// capability, including missing or invalid credentials.
	ErrGeneration = errors.New("generation failed")

	// ErrTransientUpstream indicates a retryable upstream failure
	// (timeout, rate limit). It is retried internally and only becomes
	// ErrGeneration once the retry budget is exhausted.
	ErrTransientUpstream = errors.New("transient upstream failure")

	// ErrStorage indicates a persistence failure.
	ErrStorage = errors.New("storage failure")

	// ErrCredentialsRequired indicates no API key has been configured.
	// Generation calls cannot succeed until one is set.
	ErrCredentialsRequired = errors.New("API key not configured")

	// ErrEmbeddingUnavailable indicates the embedding service is not
	// configured. Ingestion and retrieval are disabled without it.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrLLMUnavailable indicates the LLM service is not configured.
	ErrLLMUnavailable = errors.New("LLM service unavailable")
)

// IsTransient reports whether err should be retried under the bounded
// retry policy. Classification is explicit so the policy stays
// independently testable.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransientUpstream)
}
