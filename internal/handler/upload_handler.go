package handler

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/arturoeanton/go-doc-rag/internal/adapter/docs"
	"github.com/arturoeanton/go-doc-rag/internal/domain"
	"github.com/arturoeanton/go-doc-rag/internal/service"
)

// UploadHandler handles document upload and ingestion.
type UploadHandler struct {
	documents *service.DocumentService
	retrieval *service.RetrievalService
	uploadDir string
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(documents *service.DocumentService, retrieval *service.RetrievalService, uploadDir string) *UploadHandler {
	return &UploadHandler{documents: documents, retrieval: retrieval, uploadDir: uploadDir}
}

// Register sets up upload routes.
func (h *UploadHandler) Register(router fiber.Router) {
	router.Post("/upload", h.Upload)
}

// Upload receives a single file (field "document"), extracts and chunks its
// text, and stores the embedded chunks.
func (h *UploadHandler) Upload(c fiber.Ctx) error {
	file, err := c.FormFile("document")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "No file uploaded",
		})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !supportedExtension(ext) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Only PDF and TXT files are allowed",
		})
	}

	documentID := uuid.New().String()
	storedName := fmt.Sprintf("document-%s%s", documentID, ext)
	storedPath := filepath.Join(h.uploadDir, storedName)

	if err := c.SaveFile(file, storedPath); err != nil {
		slog.Error("failed to save upload", "filename", file.Filename, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to save uploaded file",
		})
	}

	_, chunks, err := h.documents.ProcessDocument(c.Context(), storedPath, file.Filename)
	if err != nil {
		slog.Error("document processing failed", "filename", file.Filename, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	meta := domain.DocumentMeta{
		Filename:     storedName,
		OriginalName: file.Filename,
	}
	if err := h.retrieval.AddDocumentChunks(c.Context(), documentID, chunks, meta); err != nil {
		slog.Error("failed to store chunks", "document_id", documentID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"documentId": documentID,
		"filename":   file.Filename,
		"chunks":     len(chunks),
		"message":    fmt.Sprintf("Document processed successfully. Created %d chunks.", len(chunks)),
	})
}

func supportedExtension(ext string) bool {
	for _, allowed := range docs.SupportedExtensions() {
		if ext == allowed {
			return true
		}
	}
	return false
}
