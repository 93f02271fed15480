package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage engine configuration",
	Long:  `Set credentials and inspect the effective configuration.`,
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key [api-key]",
	Short: "Store the upstream API key",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigSetKey,
}

var configStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigStatus,
}

func init() {
	configCmd.AddCommand(configSetKeyCmd)
	configCmd.AddCommand(configStatusCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigSetKey(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.SetAPIKey(args[0]); err != nil {
		return fmt.Errorf("failed to set API key: %w", err)
	}

	cmd.Println("API key saved.")
	return nil
}

func runConfigStatus(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	keyState := "not configured"
	if settings.APIKeyConfigured() {
		keyState = "configured"
	}

	cmd.Println("Configuration:")
	cmd.Printf("  API key:    %s\n", keyState)
	cmd.Printf("  Embedding:  %s / %s\n", settings.Embedding.Provider, settings.Embedding.Model)
	cmd.Printf("  LLM:        %s / %s\n", settings.LLM.Provider, settings.LLM.Model)
	cmd.Printf("  Chunking:   %d runes, %d overlap\n", settings.ChunkSize, settings.ChunkOverlap)
	cmd.Printf("  Retrieval:  top %d chunks\n", settings.TopK)
	cmd.Printf("  History:    %d messages\n", settings.HistoryWindow)
	return nil
}
