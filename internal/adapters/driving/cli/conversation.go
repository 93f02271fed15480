package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/helix-tools/askbase/internal/core/domain"
)

var conversationCmd = &cobra.Command{
	Use:     "conversation",
	Aliases: []string{"conv"},
	Short:   "Manage conversations",
	Long:    `List conversations, read their messages, or delete them.`,
}

var conversationListCmd = &cobra.Command{
	Use:   "list",
	Short: "List conversations, most recently active first",
	Args:  cobra.NoArgs,
	RunE:  runConversationList,
}

var conversationMessagesCmd = &cobra.Command{
	Use:   "messages [conversation-id]",
	Short: "Show a conversation's messages",
	Args:  cobra.ExactArgs(1),
	RunE:  runConversationMessages,
}

var conversationDeleteCmd = &cobra.Command{
	Use:   "delete [conversation-id]",
	Short: "Delete a conversation and its messages",
	Args:  cobra.ExactArgs(1),
	RunE:  runConversationDelete,
}

func init() {
	conversationCmd.AddCommand(conversationListCmd)
	conversationCmd.AddCommand(conversationMessagesCmd)
	conversationCmd.AddCommand(conversationDeleteCmd)
	rootCmd.AddCommand(conversationCmd)
}

func runConversationList(cmd *cobra.Command, _ []string) error {
	if conversationService == nil {
		return errors.New("conversation service not configured")
	}

	convs, err := conversationService.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list conversations: %w", err)
	}

	if len(convs) == 0 {
		cmd.Println("No conversations yet.")
		return nil
	}

	cmd.Println("Conversations:")
	cmd.Println()
	for i := range convs {
		cmd.Printf("  %s\n", convs[i].ID)
		cmd.Printf("    Title:   %s\n", convs[i].Title)
		cmd.Printf("    Updated: %s\n", convs[i].UpdatedAt.Format("2006-01-02 15:04:05"))
		cmd.Println()
	}

	cmd.Printf("Total: %d conversations\n", len(convs))
	return nil
}

func runConversationMessages(cmd *cobra.Command, args []string) error {
	if conversationService == nil {
		return errors.New("conversation service not configured")
	}

	ctx := context.Background()
	messages, err := conversationService.Messages(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get messages: %w", err)
	}

	if len(messages) == 0 {
		cmd.Println("No messages in this conversation.")
		return nil
	}

	for i := range messages {
		msg := &messages[i]
		label := "You"
		if msg.Role == domain.RoleAssistant {
			label = "Assistant"
		}
		cmd.Printf("[%s] %s\n", label, msg.Content)

		if refs := conversationService.ResolveSources(ctx, msg); len(refs) > 0 {
			cmd.Println("  Sources:")
			for _, ref := range refs {
				cmd.Printf("    - %s\n", ref.Name)
			}
		}
		cmd.Println()
	}

	return nil
}

func runConversationDelete(cmd *cobra.Command, args []string) error {
	if conversationService == nil {
		return errors.New("conversation service not configured")
	}

	if err := conversationService.Delete(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to delete conversation: %w", err)
	}

	cmd.Printf("Conversation %s deleted.\n", args[0])
	return nil
}
