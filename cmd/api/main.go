package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"time"

	"github.com/tmc/langchaingo/llms/googleai"

	"clauselens/internal/auth"
	"clauselens/internal/config"
	"clauselens/internal/extract"
	"clauselens/internal/http"
	"clauselens/internal/indexer"
	"clauselens/internal/llm"
	"clauselens/internal/rag"
	"clauselens/internal/service"
	"clauselens/internal/storage"
	"clauselens/internal/vectorstore"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	documentRepo := storage.NewDocumentRepo(db)
	chatRepo := storage.NewChatRepo(db)

	ctx := context.Background()

	// Initialize Qdrant vector store
	vectorStore, err := vectorstore.NewQdrantStore(cfg.QdrantURL, cfg.QdrantCollection)
	if err != nil {
		log.Fatalf("Failed to create Qdrant client: %v", err)
	}
	if err := vectorStore.EnsureCollection(ctx, cfg.VectorSize); err != nil {
		log.Fatalf("Failed to ensure Qdrant collection: %v", err)
	}
	slog.Info("Qdrant collection ready", "collection", cfg.QdrantCollection, "vector_size", cfg.VectorSize)

	// One Gemini client serves both generation and embeddings
	geminiClient, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.GeminiAPIKey),
		googleai.WithDefaultModel(cfg.GeminiModel),
		googleai.WithDefaultEmbeddingModel(cfg.EmbeddingModelName),
	)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}

	// Validate embedding vector size (fail-fast)
	embedder := llm.NewEmbedder(geminiClient, cfg.VectorSize)
	if _, err := embedder.EmbedTexts(ctx, []string{"test"}); err != nil {
		log.Fatalf("Failed to validate embedding client: %v", err)
	}
	slog.Info("Embedding client validated", "model", cfg.EmbeddingModelName, "vector_size", cfg.VectorSize)

	// Create indexing pipeline
	chunker := indexer.NewChunker(cfg.ChunkSize, cfg.ChunkOverlap)
	pipeline := indexer.NewPipeline(chunker, embedder, vectorStore)

	// Create LLM client (external service layer)
	llmClient := llm.NewClient(geminiClient)

	// Create RAG engine
	ragEngine := rag.NewEngine(embedder, vectorStore, documentRepo, llmClient)
	slog.Info("RAG engine initialized")

	// Create services
	documentService := service.NewDocumentService(documentRepo, pipeline, extract.New())
	qaService := service.NewQAService(ragEngine, documentRepo, chatRepo, llmClient)

	tokens := auth.NewTokenManager(cfg.AuthSecret, 24*time.Hour)

	// Create router with dependencies
	router := http.NewRouter(&http.Deps{
		Documents: documentService,
		QA:        qaService,
		Tokens:    tokens,
	})

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	slog.Debug("LLM configuration", "model", cfg.GeminiModel, "embedding_model", cfg.EmbeddingModelName)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
