package services

import (
	"fmt"
	"strings"

	"github.com/helix-tools/askbase/internal/core/domain"
	"github.com/helix-tools/askbase/internal/core/ports/driven"
)

// systemPromptHeader frames the assistant's behaviour and precedes the
// retrieved context blocks.
const systemPromptHeader = `You are a knowledge-base assistant. Answer the question using the
reference material below. If the material does not contain the answer,
say so instead of guessing. Answer in the language of the question.`

// noContextPrompt is used when retrieval found nothing relevant.
const noContextPrompt = `You are a knowledge-base assistant. No reference material matched the
question, so answer from general knowledge and say that the knowledge
base contains nothing relevant.`

// BuildPrompt assembles the chat messages for answer generation: a
// system message carrying the retrieved context, the trailing
// conversation history, then the question. The assembly is a pure
// function of its inputs; identical inputs produce identical messages.
func BuildPrompt(
	question string, chunks []domain.RetrievedChunk, history []domain.Message,
) []driven.ChatMessage {
	messages := make([]driven.ChatMessage, 0, len(history)+2)
	messages = append(messages, driven.ChatMessage{
		Role:    "system",
		Content: systemPrompt(chunks),
	})

	for _, msg := range history {
		messages = append(messages, driven.ChatMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}

	messages = append(messages, driven.ChatMessage{
		Role:    string(domain.RoleUser),
		Content: question,
	})

	return messages
}

// systemPrompt renders the retrieved chunks into a numbered context
// block in retrieval order, each hit attributed to its document.
func systemPrompt(chunks []domain.RetrievedChunk) string {
	if len(chunks) == 0 {
		return noContextPrompt
	}

	var b strings.Builder
	b.WriteString(systemPromptHeader)
	b.WriteString("\n\nReference material:\n")
	for i, chunk := range chunks {
		fmt.Fprintf(&b, "\n[%d] (from %s)\n%s\n", i+1, chunk.DocumentName, chunk.Content)
	}
	return b.String()
}

// sourceIDs extracts the cited document IDs in retrieval order,
// deduplicated.
func sourceIDs(chunks []domain.RetrievedChunk) []string {
	seen := make(map[string]bool, len(chunks))
	ids := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		if seen[chunk.DocumentID] {
			continue
		}
		seen[chunk.DocumentID] = true
		ids = append(ids, chunk.DocumentID)
	}
	return ids
}
