package domain

// RetrievedChunk is one retrieval hit: a chunk with its similarity
// score and enough provenance to attribute the answer without
// re-reading the document store.
type RetrievedChunk struct {
	// ChunkID is the matched chunk.
	ChunkID string

	// DocumentID is the owning document.
	DocumentID string

	// DocumentName is the owning document's display name.
	DocumentName string

	// Position is the chunk's ordinal position within the document.
	Position int

	// Content is the chunk text supplied as answer context.
	Content string

	// Score is the cosine similarity against the question (0-1).
	Score float64
}

// AskRequest is a question posed to the engine.
type AskRequest struct {
	// Question is the natural-language question text.
	Question string

	// ConversationID continues an existing conversation when set.
	// When empty a new conversation is created lazily.
	ConversationID string
}

// AskResult is the engine's reply to an AskRequest.
//
// Success is false for recoverable failures where the question was
// still recorded (e.g. the generative call failed after retries);
// hard failures surface as errors instead.
type AskResult struct {
	Success bool

	// Answer is the generated answer text. Empty when Success is false.
	Answer string

	// Sources lists the cited document IDs in retrieval order, deduplicated.
	Sources []string

	// ConversationID identifies the conversation the turn was appended
	// to, including one created for this request.
	ConversationID string
}

// UploadResult reports the outcome of a document upload.
type UploadResult struct {
	Success bool

	// Message is a human-readable summary of the outcome.
	Message string

	// DocumentID is the new document's ID when the upload succeeded.
	DocumentID string

	// ChunkCount is how many chunks were indexed.
	ChunkCount int

	// FailedPositions lists chunk positions whose embedding failed.
	// The rest of the document is indexed regardless.
	FailedPositions []int
}
