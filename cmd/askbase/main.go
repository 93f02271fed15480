// Command askbase is the CLI front end for the question answering engine.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/helix-tools/askbase/internal/adapters/driven/ai"
	configfile "github.com/helix-tools/askbase/internal/adapters/driven/config/file"
	"github.com/helix-tools/askbase/internal/adapters/driven/fs"
	"github.com/helix-tools/askbase/internal/adapters/driven/storage/sqlite"
	"github.com/helix-tools/askbase/internal/adapters/driven/vector/flat"
	"github.com/helix-tools/askbase/internal/adapters/driving/cli"
	"github.com/helix-tools/askbase/internal/core/ports/driven"
	"github.com/helix-tools/askbase/internal/core/services"
	"github.com/helix-tools/askbase/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	store, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer store.Close()

	docStore := store.DocumentStore()
	convStore := store.ConversationStore()
	index := flat.New()
	defer index.Close()

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if settings.APIKey == "" {
		// Environment fallback for keys not persisted in the config file
		settings.APIKey = os.Getenv("ASKBASE_API_KEY")
	}

	var embeddingService driven.EmbeddingService
	var llmService driven.LLMService
	if settings.APIKeyConfigured() {
		embeddingService, err = ai.CreateEmbeddingService(*settings)
		if err != nil {
			logger.Warn("Embedding service unavailable: %v", err)
		}
		llmService, err = ai.CreateLLMService(*settings)
		if err != nil {
			logger.Warn("LLM service unavailable: %v", err)
		}
	} else {
		logger.Debug("No API key configured; ask and upload need 'askbase config set-key'")
	}
	if embeddingService != nil {
		defer embeddingService.Close()
	}
	if llmService != nil {
		defer llmService.Close()
	}

	reader := fs.NewReader()
	documentService := services.NewDocumentService(
		docStore, index, embeddingService, reader, settingsService)

	// The flat index lives in memory; reload persisted embeddings on start.
	if err := documentService.RebuildIndex(context.Background()); err != nil {
		logger.Warn("Index rebuild failed: %v", err)
	}

	retriever := services.NewRetrievalService(index, embeddingService)
	answerService := services.NewAnswerService(convStore, retriever, llmService, settingsService)
	conversationService := services.NewConversationService(convStore, docStore)

	cli.SetVersion(version)
	cli.Configure(cli.Services{
		Answer:       answerService,
		Ingest:       documentService,
		Document:     documentService,
		Conversation: conversationService,
		Settings:     settingsService,
		FileReader:   reader,
	})
	cli.Execute()
	return nil
}
