package driven

import (
	"context"

	"github.com/helix-tools/askbase/internal/core/domain"
)

// ConversationStore persists conversations and their message history.
type ConversationStore interface {
	// CreateConversation stores a new conversation.
	CreateConversation(ctx context.Context, conv *domain.Conversation) error

	// GetConversation retrieves a conversation by ID.
	// Returns domain.ErrNotFound if the ID is absent.
	GetConversation(ctx context.Context, id string) (*domain.Conversation, error)

	// ListConversations returns all conversations, most recently
	// updated first.
	ListConversations(ctx context.Context) ([]domain.Conversation, error)

	// DeleteConversation removes a conversation and all its messages.
	// Returns domain.ErrNotFound if the ID is absent.
	DeleteConversation(ctx context.Context, id string) error

	// AppendMessage appends a message to a conversation and bumps the
	// conversation's UpdatedAt. Returns domain.ErrNotFound if the
	// conversation does not exist.
	AppendMessage(ctx context.Context, msg *domain.Message) error

	// ListMessages returns a conversation's messages in append order.
	// Returns domain.ErrNotFound if the conversation does not exist.
	ListMessages(ctx context.Context, conversationID string) ([]domain.Message, error)
}
