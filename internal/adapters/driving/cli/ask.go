package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/helix-tools/askbase/internal/core/domain"
)

var askConversationID string

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question against the indexed documents",
	Long: `Answers a natural-language question using the most relevant
passages from the uploaded documents. Without --conversation a new
conversation is started; with it, the question continues an existing one
and earlier turns are replayed as context.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askConversationID, "conversation", "c", "",
		"conversation ID to continue")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if answerService == nil {
		return errors.New("answer service not configured")
	}

	result, err := answerService.Ask(context.Background(), domain.AskRequest{
		Question:       args[0],
		ConversationID: askConversationID,
	})
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	if !result.Success {
		cmd.Println("The answer could not be generated. Your question was saved; try again later.")
		cmd.Printf("\nConversation: %s\n", result.ConversationID)
		return nil
	}

	cmd.Println(result.Answer)

	if len(result.Sources) > 0 {
		cmd.Println("\nSources:")
		for _, id := range result.Sources {
			name := id
			if conversationService != nil {
				refs := conversationService.ResolveSources(context.Background(), &domain.Message{
					Sources: []string{id},
				})
				if len(refs) > 0 {
					name = refs[0].Name
				}
			}
			cmd.Printf("  - %s\n", name)
		}
	}

	cmd.Printf("\nConversation: %s\n", result.ConversationID)
	return nil
}
