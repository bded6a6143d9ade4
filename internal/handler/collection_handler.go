package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/arturoeanton/go-doc-rag/internal/service"
)

// CollectionHandler exposes vector collection diagnostics and document deletion.
type CollectionHandler struct {
	retrieval *service.RetrievalService
}

// NewCollectionHandler creates a new collection handler.
func NewCollectionHandler(retrieval *service.RetrievalService) *CollectionHandler {
	return &CollectionHandler{retrieval: retrieval}
}

// Register sets up collection routes.
func (h *CollectionHandler) Register(router fiber.Router) {
	router.Get("/collection", h.Info)
	router.Delete("/documents/:id", h.DeleteDocument)
}

// Info returns the current chunk count and collection name.
func (h *CollectionHandler) Info(c fiber.Ctx) error {
	return c.JSON(h.retrieval.CollectionInfo())
}

// DeleteDocument removes all chunks of a document. Unknown ids remove nothing.
func (h *CollectionHandler) DeleteDocument(c fiber.Ctx) error {
	documentID := c.Params("id")
	removed := h.retrieval.DeleteDocument(documentID)

	return c.JSON(fiber.Map{
		"success":       true,
		"documentId":    documentID,
		"chunksRemoved": removed,
	})
}
