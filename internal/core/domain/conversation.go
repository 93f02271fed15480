package domain

import "time"

// Role identifies the author of a message. The set is closed: every
// message is either the user's question or the assistant's answer.
type Role string

const (
	// RoleUser marks a message written by the user.
	RoleUser Role = "user"

	// RoleAssistant marks a message produced by the generative model.
	RoleAssistant Role = "assistant"
)

// Valid reports whether the role is one of the two known variants.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

// Conversation is a multi-turn question/answer session.
// It owns an ordered sequence of Messages; deleting a conversation
// cascades to all of them.
type Conversation struct {
	// ID is the unique identifier for the conversation.
	ID string

	// Title is derived from the first question unless set explicitly.
	Title string

	// CreatedAt is when the conversation was created.
	CreatedAt time.Time

	// UpdatedAt is bumped on every message append.
	UpdatedAt time.Time
}

// maxDerivedTitleRunes bounds titles derived from the first question.
const maxDerivedTitleRunes = 20

// DeriveTitle builds a conversation title from the first question,
// truncated to a small fixed rune budget.
func DeriveTitle(question string) string {
	runes := []rune(question)
	if len(runes) <= maxDerivedTitleRunes {
		return question
	}
	return string(runes[:maxDerivedTitleRunes]) + "..."
}

// Message is a single turn within a conversation.
type Message struct {
	// ID is the unique identifier for the message.
	ID string

	// ConversationID links to the owning Conversation.
	ConversationID string

	// Role is the author: user or assistant.
	Role Role

	// Content is the message text.
	Content string

	// Sources lists the document IDs cited for an assistant answer.
	// It is always empty on user messages. Entries may dangle if the
	// cited document is deleted later; readers resolve them soft.
	Sources []string

	// CreatedAt is when the message was appended.
	CreatedAt time.Time
}
