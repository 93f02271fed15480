package driving

import (
	"context"

	"github.com/helix-tools/askbase/internal/core/domain"
)

// ConversationService manages conversations and their history.
type ConversationService interface {
	// List returns all conversations, most recently updated first.
	List(ctx context.Context) ([]domain.Conversation, error)

	// Messages returns a conversation's messages in append order.
	// Fails with domain.ErrNotFound if the conversation is absent.
	Messages(ctx context.Context, conversationID string) ([]domain.Message, error)

	// Delete removes a conversation and cascades to its messages.
	// Fails with domain.ErrNotFound if the conversation is absent.
	Delete(ctx context.Context, conversationID string) error

	// ResolveSources maps a message's source document IDs to display
	// names. References to since-deleted documents are omitted rather
	// than failing the read.
	ResolveSources(ctx context.Context, msg *domain.Message) []SourceRef
}

// SourceRef is a resolved source attribution for display.
type SourceRef struct {
	// DocumentID is the cited document.
	DocumentID string

	// Name is the document's display name.
	Name string
}
