package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/static"
	"github.com/joho/godotenv"

	"github.com/arturoeanton/go-doc-rag/internal/adapter/ai"
	"github.com/arturoeanton/go-doc-rag/internal/adapter/docs"
	"github.com/arturoeanton/go-doc-rag/internal/adapter/store"
	"github.com/arturoeanton/go-doc-rag/internal/handler"
	"github.com/arturoeanton/go-doc-rag/internal/middleware"
	"github.com/arturoeanton/go-doc-rag/internal/service"
	"github.com/arturoeanton/go-doc-rag/pkg/config"
)

func main() {
	// ── Load .env file ───────────────────────────────────────────────────
	_ = godotenv.Load() // silently ignore if .env doesn't exist

	// ── Configuration ────────────────────────────────────────────────────
	cfg := config.Load()

	slog.Info("🚀 Starting Doc RAG",
		"port", cfg.Port,
		"embed_model", cfg.EmbedModel,
		"chat_model", cfg.ChatModel,
		"upload_dir", cfg.UploadDir,
	)

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		slog.Error("failed to create upload directory", "dir", cfg.UploadDir, "error", err)
		os.Exit(1)
	}

	// ── Adapters ─────────────────────────────────────────────────────────
	// The AI provider is built here, after config load, never lazily.
	openAI := ai.NewOpenAIProvider(ai.OpenAIConfig{
		BaseURL:    cfg.OpenAIBaseURL,
		APIKey:     cfg.OpenAIAPIKey,
		EmbedModel: cfg.EmbedModel,
		ChatModel:  cfg.ChatModel,
	})
	memStore := store.NewMemoryStore()
	extractor := docs.NewExtractor()
	splitter := docs.NewSplitter()

	// ── Services ─────────────────────────────────────────────────────────
	retrievalService := service.NewRetrievalService(openAI, memStore)
	qaService := service.NewQAService(openAI, retrievalService)
	documentService := service.NewDocumentService(extractor, splitter)

	// ── Fiber App ────────────────────────────────────────────────────────
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		BodyLimit:    cfg.MaxFileSize,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: []string{cfg.FrontendURL},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
	}))
	app.Use(middleware.AuditMiddleware())

	// Uploaded files are served back for download
	app.Get("/uploads/*", static.New(cfg.UploadDir))

	// Health check
	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// ── Routes ───────────────────────────────────────────────────────────
	api := app.Group("/api")

	uploadHandler := handler.NewUploadHandler(documentService, retrievalService, cfg.UploadDir)
	uploadHandler.Register(api)

	qaHandler := handler.NewQAHandler(qaService, cfg.TopK)
	qaHandler.Register(api)

	collectionHandler := handler.NewCollectionHandler(retrievalService)
	collectionHandler.Register(api)

	// ── Start ────────────────────────────────────────────────────────────
	slog.Info("🌐 Fiber listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
