package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/helix-tools/askbase/internal/core/domain"
	"github.com/helix-tools/askbase/internal/core/ports/driven"
	"github.com/helix-tools/askbase/internal/core/ports/driving"
	"github.com/helix-tools/askbase/internal/logger"
)

// Ensure ConversationService implements the interface.
var _ driving.ConversationService = (*ConversationService)(nil)

// ConversationService manages conversations and their history.
type ConversationService struct {
	convStore driven.ConversationStore
	docStore  driven.DocumentStore
}

// NewConversationService creates a new conversation service.
func NewConversationService(
	convStore driven.ConversationStore,
	docStore driven.DocumentStore,
) *ConversationService {
	return &ConversationService{
		convStore: convStore,
		docStore:  docStore,
	}
}

// List returns all conversations, most recently updated first.
func (s *ConversationService) List(ctx context.Context) ([]domain.Conversation, error) {
	convs, err := s.convStore.ListConversations(ctx)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	return convs, nil
}

// Messages returns a conversation's messages in append order.
func (s *ConversationService) Messages(ctx context.Context, conversationID string) ([]domain.Message, error) {
	msgs, err := s.convStore.ListMessages(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("list messages for %s: %w", conversationID, err)
	}
	return msgs, nil
}

// Delete removes a conversation and cascades to its messages.
func (s *ConversationService) Delete(ctx context.Context, conversationID string) error {
	if err := s.convStore.DeleteConversation(ctx, conversationID); err != nil {
		return fmt.Errorf("delete conversation %s: %w", conversationID, err)
	}
	logger.Info("Deleted conversation %s", conversationID)
	return nil
}

// ResolveSources maps a message's source document IDs to display names.
// References to since-deleted documents are omitted rather than failing
// the read; source attributions are best effort once a document is gone.
func (s *ConversationService) ResolveSources(ctx context.Context, msg *domain.Message) []driving.SourceRef {
	refs := make([]driving.SourceRef, 0, len(msg.Sources))
	for _, id := range msg.Sources {
		doc, err := s.docStore.GetDocument(ctx, id)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				logger.Warn("Resolve source %s: %v", id, err)
			}
			continue
		}
		refs = append(refs, driving.SourceRef{DocumentID: doc.ID, Name: doc.Name})
	}
	return refs
}
