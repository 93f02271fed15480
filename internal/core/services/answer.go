package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/helix-tools/askbase/internal/core/domain"
	"github.com/helix-tools/askbase/internal/core/ports/driven"
	"github.com/helix-tools/askbase/internal/core/ports/driving"
	"github.com/helix-tools/askbase/internal/logger"
)

// Ensure AnswerService implements the interface.
var _ driving.AnswerService = (*AnswerService)(nil)

// Generation sampling defaults.
const (
	defaultTemperature = 0.7
	defaultTopP        = 0.9
)

// AnswerService runs the question pipeline: resolve the conversation,
// retrieve context, assemble the prompt, generate, persist. Turns of
// the same conversation are serialized so a question and its answer
// always land adjacent in the history.
type AnswerService struct {
	convStore  driven.ConversationStore
	retriever  driving.Retriever
	llmService driven.LLMService
	settings   driving.SettingsService

	convLocks *keyedMutex
}

// NewAnswerService creates a new answer service.
func NewAnswerService(
	convStore driven.ConversationStore,
	retriever driving.Retriever,
	llmService driven.LLMService,
	settings driving.SettingsService,
) *AnswerService {
	return &AnswerService{
		convStore:  convStore,
		retriever:  retriever,
		llmService: llmService,
		settings:   settings,
		convLocks:  newKeyedMutex(),
	}
}

// Ask answers a question against the indexed corpus.
//
// Recoverable generation failures still record the question and return
// Success=false without an error; validation, retrieval and storage
// failures surface as errors and persist nothing.
func (s *AnswerService) Ask(ctx context.Context, req domain.AskRequest) (*domain.AskResult, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return nil, fmt.Errorf("%w: question must not be empty", domain.ErrInvalidInput)
	}
	if s.llmService == nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrLLMUnavailable, domain.ErrCredentialsRequired)
	}

	cfg, err := s.settings.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	logger.Section("Question Pipeline")
	logger.Debug("Question: %q", question)

	// Resolve the conversation. A missing ID means a new conversation,
	// created only when the turn is persisted.
	var conv *domain.Conversation
	isNew := req.ConversationID == ""
	if isNew {
		now := time.Now()
		conv = &domain.Conversation{
			ID:        uuid.NewString(),
			Title:     domain.DeriveTitle(question),
			CreatedAt: now,
			UpdatedAt: now,
		}
		logger.Debug("New conversation %s (%q)", conv.ID, conv.Title)
	} else {
		conv, err = s.convStore.GetConversation(ctx, req.ConversationID)
		if err != nil {
			return nil, fmt.Errorf("resolve conversation %s: %w", req.ConversationID, err)
		}
	}

	unlock := s.convLocks.Lock(conv.ID)
	defer unlock()

	var history []domain.Message
	if !isNew {
		history, err = s.convStore.ListMessages(ctx, conv.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: load history for %s: %w", domain.ErrStorage, conv.ID, err)
		}
		if len(history) > cfg.HistoryWindow {
			history = history[len(history)-cfg.HistoryWindow:]
		}
	}

	hits, err := s.retriever.Retrieve(ctx, question, cfg.TopK, nil)
	if err != nil {
		return nil, err
	}
	sources := sourceIDs(hits)
	logger.Debug("Retrieved %d chunks from %d documents", len(hits), len(sources))

	messages := BuildPrompt(question, hits, history)

	var answer string
	genErr := withRetry(ctx, cfg.MaxAttempts, func() error {
		var chatErr error
		answer, chatErr = s.llmService.Chat(ctx, messages, driven.ChatOptions{
			Temperature: defaultTemperature,
			TopP:        defaultTopP,
		})
		return chatErr
	})

	// Nothing is persisted once the caller has gone away.
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if isNew {
		if err := s.convStore.CreateConversation(ctx, conv); err != nil {
			return nil, fmt.Errorf("%w: create conversation: %w", domain.ErrStorage, err)
		}
	} else {
		// The conversation may have been deleted while generating.
		if _, err := s.convStore.GetConversation(ctx, conv.ID); err != nil {
			return nil, fmt.Errorf("conversation %s: %w", conv.ID, err)
		}
	}

	userMsg := &domain.Message{
		ID:             uuid.NewString(),
		ConversationID: conv.ID,
		Role:           domain.RoleUser,
		Content:        question,
		CreatedAt:      time.Now(),
	}
	if err := s.convStore.AppendMessage(ctx, userMsg); err != nil {
		return nil, fmt.Errorf("%w: append question: %w", domain.ErrStorage, err)
	}

	if genErr != nil {
		logger.Warn("Generation failed, question recorded without answer: %v", genErr)
		return &domain.AskResult{
			Success:        false,
			ConversationID: conv.ID,
		}, nil
	}

	assistantMsg := &domain.Message{
		ID:             uuid.NewString(),
		ConversationID: conv.ID,
		Role:           domain.RoleAssistant,
		Content:        answer,
		Sources:        sources,
		CreatedAt:      time.Now(),
	}
	if err := s.convStore.AppendMessage(ctx, assistantMsg); err != nil {
		return nil, fmt.Errorf("%w: append answer: %w", domain.ErrStorage, err)
	}

	logger.Info("Answered in conversation %s (%d sources)", conv.ID, len(sources))

	return &domain.AskResult{
		Success:        true,
		Answer:         answer,
		Sources:        sources,
		ConversationID: conv.ID,
	}, nil
}
