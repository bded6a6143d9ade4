package handler

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/arturoeanton/go-doc-rag/internal/domain"
	"github.com/arturoeanton/go-doc-rag/internal/service"
)

// QAHandler handles question answering over uploaded documents.
type QAHandler struct {
	qa   *service.QAService
	topK int
}

// NewQAHandler creates a new QA handler.
func NewQAHandler(qa *service.QAService, topK int) *QAHandler {
	return &QAHandler{qa: qa, topK: topK}
}

// Register sets up QA routes.
func (h *QAHandler) Register(router fiber.Router) {
	router.Post("/qa", h.Ask)
}

// Ask answers a natural-language question using retrieved document chunks.
func (h *QAHandler) Ask(c fiber.Ctx) error {
	var body struct {
		Query string `json:"query"`
	}
	if err := c.Bind().JSON(&body); err != nil || strings.TrimSpace(body.Query) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Query is required and must be a string",
		})
	}

	answer, sources, err := h.qa.Ask(c.Context(), body.Query, h.topK)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if sources == nil {
		// Keep the JSON shape stable: sources is always an array.
		sources = []domain.ScoredChunk{}
	}

	return c.JSON(fiber.Map{
		"answer":  answer,
		"sources": sources,
		"query":   body.Query,
	})
}
