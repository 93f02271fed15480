package cli

import (
	"context"
	"time"

	"github.com/helix-tools/askbase/internal/core/domain"
	"github.com/helix-tools/askbase/internal/core/ports/driven"
	"github.com/helix-tools/askbase/internal/core/ports/driving"
)

// setupTestServices installs mock services and returns a cleanup func
// that restores the previous ones.
func setupTestServices() func() {
	oldAnswer := answerService
	oldIngest := ingestService
	oldDocument := documentService
	oldConversation := conversationService
	oldSettings := settingsService
	oldReader := fileReader

	answerService = &mockAnswerService{}
	ingestService = &mockIngestService{}
	documentService = &mockDocumentService{}
	conversationService = &mockConversationService{}
	settingsService = &mockSettingsService{}
	fileReader = &mockFileReader{}

	return func() {
		answerService = oldAnswer
		ingestService = oldIngest
		documentService = oldDocument
		conversationService = oldConversation
		settingsService = oldSettings
		fileReader = oldReader
	}
}

type mockAnswerService struct {
	result  *domain.AskResult
	err     error
	lastReq domain.AskRequest
}

func (m *mockAnswerService) Ask(_ context.Context, req domain.AskRequest) (*domain.AskResult, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}
	return &domain.AskResult{
		Success:        true,
		Answer:         "Paris is the capital of France.",
		Sources:        []string{"doc-1"},
		ConversationID: "conv-1",
	}, nil
}

type mockIngestService struct {
	result      *domain.UploadResult
	err         error
	lastName    string
	lastContent string
	lastType    string
	lastPath    string
}

func (m *mockIngestService) Upload(_ context.Context, name, content, fileType string) (*domain.UploadResult, error) {
	m.lastName = name
	m.lastContent = content
	m.lastType = fileType
	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}
	return &domain.UploadResult{Success: true, DocumentID: "doc-1", ChunkCount: 2}, nil
}

func (m *mockIngestService) UploadFromPath(_ context.Context, path string) (*domain.UploadResult, error) {
	m.lastPath = path
	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}
	return &domain.UploadResult{Success: true, DocumentID: "doc-2", ChunkCount: 3}, nil
}

type mockDocumentService struct {
	docs []domain.DocumentSummary
	err  error
}

func (m *mockDocumentService) List(_ context.Context) ([]domain.DocumentSummary, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.docs != nil {
		return m.docs, nil
	}
	return []domain.DocumentSummary{
		{
			ID:        "doc-1",
			Name:      "manual.txt",
			FileType:  "txt",
			FileSize:  1024,
			CreatedAt: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
		},
	}, nil
}

func (m *mockDocumentService) Get(_ context.Context, id string) (*domain.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Document{
		ID:        id,
		Name:      "manual.txt",
		Content:   "document body",
		FileType:  "txt",
		FileSize:  1024,
		CreatedAt: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
	}, nil
}

func (m *mockDocumentService) Delete(_ context.Context, _ string) error {
	return m.err
}

type mockConversationService struct {
	convs    []domain.Conversation
	messages []domain.Message
	err      error
}

func (m *mockConversationService) List(_ context.Context) ([]domain.Conversation, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.convs != nil {
		return m.convs, nil
	}
	return []domain.Conversation{
		{
			ID:        "conv-1",
			Title:     "What is the capital...",
			UpdatedAt: time.Date(2026, 1, 15, 11, 0, 0, 0, time.UTC),
		},
	}, nil
}

func (m *mockConversationService) Messages(_ context.Context, _ string) ([]domain.Message, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.messages != nil {
		return m.messages, nil
	}
	return []domain.Message{
		{ID: "m1", Role: domain.RoleUser, Content: "What is the capital of France?"},
		{
			ID: "m2", Role: domain.RoleAssistant,
			Content: "Paris is the capital of France.",
			Sources: []string{"doc-1"},
		},
	}, nil
}

func (m *mockConversationService) Delete(_ context.Context, _ string) error {
	return m.err
}

func (m *mockConversationService) ResolveSources(_ context.Context, msg *domain.Message) []driving.SourceRef {
	refs := make([]driving.SourceRef, 0, len(msg.Sources))
	for _, id := range msg.Sources {
		refs = append(refs, driving.SourceRef{DocumentID: id, Name: "manual.txt"})
	}
	return refs
}

type mockSettingsService struct {
	settings *domain.Settings
	setErr   error
	lastKey  string
}

func (m *mockSettingsService) Get() (*domain.Settings, error) {
	if m.settings != nil {
		return m.settings, nil
	}
	s := domain.DefaultSettings()
	s.APIKey = "sk-test"
	return &s, nil
}

func (m *mockSettingsService) SetAPIKey(key string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.lastKey = key
	return nil
}

func (m *mockSettingsService) APIKeyConfigured() bool {
	return m.lastKey != ""
}

type mockFileReader struct {
	content string
	info    driven.FileInfo
	err     error
}

func (m *mockFileReader) ReadContent(_ string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	if m.content != "" {
		return m.content, nil
	}
	return "file body", nil
}

func (m *mockFileReader) Info(_ string) (driven.FileInfo, error) {
	if m.err != nil {
		return driven.FileInfo{}, m.err
	}
	if m.info != (driven.FileInfo{}) {
		return m.info, nil
	}
	return driven.FileInfo{Name: "manual.txt", Type: "txt", Size: 42}, nil
}
