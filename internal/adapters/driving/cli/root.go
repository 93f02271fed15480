// Package cli implements the askbase command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/helix-tools/askbase/internal/core/ports/driven"
	"github.com/helix-tools/askbase/internal/core/ports/driving"
	"github.com/helix-tools/askbase/internal/logger"
)

// version is stamped at build time.
var version = "dev"

// Services are injected via Configure before Execute runs.
var (
	answerService       driving.AnswerService
	ingestService       driving.IngestService
	documentService     driving.DocumentService
	conversationService driving.ConversationService
	settingsService     driving.SettingsService
	fileReader          driven.FileReader
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "askbase",
	Short: "Ask questions against your own documents",
	Long: `askbase is a retrieval-augmented question answering engine.
Upload text documents, then ask questions; answers are generated from
the most relevant passages and cite the documents they came from.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// Services bundles the driving ports the commands depend on.
type Services struct {
	Answer       driving.AnswerService
	Ingest       driving.IngestService
	Document     driving.DocumentService
	Conversation driving.ConversationService
	Settings     driving.SettingsService
	FileReader   driven.FileReader
}

// Configure injects the services used by the commands.
func Configure(s Services) {
	answerService = s.Answer
	ingestService = s.Ingest
	documentService = s.Document
	conversationService = s.Conversation
	settingsService = s.Settings
	fileReader = s.FileReader
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
