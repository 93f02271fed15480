package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helix-tools/askbase/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "askbase-test-*")
	require.NoError(t, err)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		assert.NoError(t, store.Close())
		assert.NoError(t, os.RemoveAll(tempDir))
	}

	return store, cleanup
}

func testDocument(id string, created time.Time) *domain.Document {
	return &domain.Document{
		ID:        id,
		Name:      id + ".txt",
		Content:   "content of " + id,
		FileType:  "txt",
		FileSize:  int64(len("content of " + id)),
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	assert.Equal(t, "askbase.db", filepath.Base(store.Path()))
	_, err := os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestNewStore_MigrationsIdempotent(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "askbase-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening must not re-run applied migrations.
	store, err = NewStore(tempDir)
	require.NoError(t, err)
	assert.NoError(t, store.Close())
}

func TestDocumentStore_SaveAndGet(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	docs := store.DocumentStore()
	ctx := context.Background()

	doc := testDocument("doc-1", time.Now())
	require.NoError(t, docs.SaveDocument(ctx, doc))

	saved, err := docs.GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, doc.Name, saved.Name)
	assert.Equal(t, doc.Content, saved.Content)
	assert.Equal(t, doc.FileType, saved.FileType)
	assert.Equal(t, doc.FileSize, saved.FileSize)
}

func TestDocumentStore_GetDocument_NotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := store.DocumentStore().GetDocument(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentStore_ListDocuments_NewestFirst(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	docs := store.DocumentStore()
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, docs.SaveDocument(ctx, testDocument("doc-a", base)))
	require.NoError(t, docs.SaveDocument(ctx, testDocument("doc-b", base.Add(time.Hour))))

	summaries, err := docs.ListDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "doc-b", summaries[0].ID)
	assert.Equal(t, "doc-a", summaries[1].ID)
}

func TestDocumentStore_DeleteDocument(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	docs := store.DocumentStore()
	ctx := context.Background()

	require.NoError(t, docs.SaveDocument(ctx, testDocument("doc-1", time.Now())))
	require.NoError(t, docs.DeleteDocument(ctx, "doc-1"))

	_, err := docs.GetDocument(ctx, "doc-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, docs.DeleteDocument(ctx, "doc-1"), domain.ErrNotFound)
}

func TestDocumentStore_ChunksRoundTrip(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	docs := store.DocumentStore()
	ctx := context.Background()

	require.NoError(t, docs.SaveDocument(ctx, testDocument("doc-1", time.Now())))

	chunks := []domain.Chunk{
		{ID: "c-1", DocumentID: "doc-1", Content: "second", Position: 1, Embedding: []float32{0.5, -1.25}},
		{ID: "c-0", DocumentID: "doc-1", Content: "first", Position: 0, Embedding: []float32{1, 0}},
		{ID: "c-2", DocumentID: "doc-1", Content: "unembedded", Position: 2, Embedding: nil},
	}
	require.NoError(t, docs.SaveChunks(ctx, chunks))

	saved, err := docs.GetChunks(ctx, "doc-1")
	require.NoError(t, err)
	require.Len(t, saved, 3)

	// Ordered by position, embeddings preserved bit for bit.
	assert.Equal(t, "c-0", saved[0].ID)
	assert.Equal(t, []float32{1, 0}, saved[0].Embedding)
	assert.Equal(t, "c-1", saved[1].ID)
	assert.Equal(t, []float32{0.5, -1.25}, saved[1].Embedding)
	assert.Nil(t, saved[2].Embedding)
}

func TestDocumentStore_DeleteDocument_CascadesToChunks(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	docs := store.DocumentStore()
	ctx := context.Background()

	require.NoError(t, docs.SaveDocument(ctx, testDocument("doc-1", time.Now())))
	require.NoError(t, docs.SaveChunks(ctx, []domain.Chunk{
		{ID: "c-0", DocumentID: "doc-1", Content: "text", Position: 0},
	}))

	require.NoError(t, docs.DeleteDocument(ctx, "doc-1"))

	chunks, err := docs.GetChunks(ctx, "doc-1")
	require.NoError(t, err)
	assert.Empty(t, chunks)
}

func TestDocumentStore_DeleteChunks(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	docs := store.DocumentStore()
	ctx := context.Background()

	require.NoError(t, docs.SaveDocument(ctx, testDocument("doc-1", time.Now())))
	require.NoError(t, docs.SaveChunks(ctx, []domain.Chunk{
		{ID: "c-0", DocumentID: "doc-1", Content: "text", Position: 0},
	}))

	require.NoError(t, docs.DeleteChunks(ctx, "doc-1"))

	chunks, err := docs.GetChunks(ctx, "doc-1")
	require.NoError(t, err)
	assert.Empty(t, chunks)

	// The document itself survives.
	_, err = docs.GetDocument(ctx, "doc-1")
	assert.NoError(t, err)
}

func TestConversationStore_CreateAndGet(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	convs := store.ConversationStore()
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, convs.CreateConversation(ctx, &domain.Conversation{
		ID:        "conv-1",
		Title:     "What is Raft?",
		CreatedAt: now,
		UpdatedAt: now,
	}))

	saved, err := convs.GetConversation(ctx, "conv-1")
	require.NoError(t, err)
	assert.Equal(t, "What is Raft?", saved.Title)
}

func TestConversationStore_GetConversation_NotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := store.ConversationStore().GetConversation(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConversationStore_ListConversations_MostRecentFirst(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	convs := store.ConversationStore()
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, convs.CreateConversation(ctx, &domain.Conversation{
		ID: "conv-old", CreatedAt: base, UpdatedAt: base,
	}))
	require.NoError(t, convs.CreateConversation(ctx, &domain.Conversation{
		ID: "conv-new", CreatedAt: base, UpdatedAt: base.Add(time.Hour),
	}))

	list, err := convs.ListConversations(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "conv-new", list[0].ID)

	// Appending to the old conversation moves it to the front.
	require.NoError(t, convs.AppendMessage(ctx, &domain.Message{
		ID: "msg-1", ConversationID: "conv-old", Role: domain.RoleUser, Content: "hi",
	}))

	list, err = convs.ListConversations(ctx)
	require.NoError(t, err)
	assert.Equal(t, "conv-old", list[0].ID)
}

func TestConversationStore_AppendMessage_UnknownConversation(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	err := store.ConversationStore().AppendMessage(context.Background(), &domain.Message{
		ID: "msg-1", ConversationID: "nonexistent", Role: domain.RoleUser, Content: "hi",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConversationStore_MessagesRoundTrip(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	convs := store.ConversationStore()
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, convs.CreateConversation(ctx, &domain.Conversation{
		ID: "conv-1", CreatedAt: now, UpdatedAt: now,
	}))

	require.NoError(t, convs.AppendMessage(ctx, &domain.Message{
		ID: "msg-1", ConversationID: "conv-1", Role: domain.RoleUser, Content: "question",
	}))
	require.NoError(t, convs.AppendMessage(ctx, &domain.Message{
		ID: "msg-2", ConversationID: "conv-1", Role: domain.RoleAssistant,
		Content: "answer", Sources: []string{"doc-1", "doc-2"},
	}))

	msgs, err := convs.ListMessages(ctx, "conv-1")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, domain.RoleUser, msgs[0].Role)
	assert.Empty(t, msgs[0].Sources)
	assert.Equal(t, domain.RoleAssistant, msgs[1].Role)
	assert.Equal(t, []string{"doc-1", "doc-2"}, msgs[1].Sources)
}

func TestConversationStore_ListMessages_UnknownConversation(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := store.ConversationStore().ListMessages(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConversationStore_DeleteConversation_CascadesToMessages(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	convs := store.ConversationStore()
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, convs.CreateConversation(ctx, &domain.Conversation{
		ID: "conv-1", CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, convs.AppendMessage(ctx, &domain.Message{
		ID: "msg-1", ConversationID: "conv-1", Role: domain.RoleUser, Content: "hi",
	}))

	require.NoError(t, convs.DeleteConversation(ctx, "conv-1"))

	_, err := convs.GetConversation(ctx, "conv-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = convs.ListMessages(ctx, "conv-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, convs.DeleteConversation(ctx, "conv-1"), domain.ErrNotFound)
}

func TestFloat32BlobRoundTrip(t *testing.T) {
	vec := []float32{0, 1, -1, 0.123456, 3.4e38}
	assert.Equal(t, vec, bytesToFloat32Slice(float32SliceToBytes(vec)))
	assert.Nil(t, float32SliceToBytes(nil))
	assert.Nil(t, bytesToFloat32Slice(nil))
}
