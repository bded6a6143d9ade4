package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/arturoeanton/go-doc-rag/internal/domain"
	"github.com/arturoeanton/go-doc-rag/internal/port"
)

// NoAnswerMessage is returned when no stored chunk is relevant to a query.
const NoAnswerMessage = "I couldn't find any relevant information in the uploaded documents to answer your question."

const qaSystemPromptTemplate = `You are a helpful AI assistant that answers questions based on the provided context from uploaded documents.

Instructions:
- Use only the information provided in the context to answer questions
- If the context doesn't contain enough information to answer the question, say so
- Be concise but thorough in your responses
- Reference the source information when possible

Context:
%s`

// QAService answers questions over uploaded documents: retrieve relevant
// chunks, then condition a chat completion on them.
type QAService struct {
	ai        port.AIProvider
	retrieval *RetrievalService
}

// NewQAService creates a new QA service.
func NewQAService(ai port.AIProvider, retrieval *RetrievalService) *QAService {
	return &QAService{ai: ai, retrieval: retrieval}
}

// Ask retrieves the topK chunks most similar to the query and generates an
// answer from them. When nothing relevant is found it degrades to a canned
// answer without calling the completion API.
func (s *QAService) Ask(ctx context.Context, query string, topK int) (string, []domain.ScoredChunk, error) {
	sources, err := s.retrieval.SearchSimilarChunks(ctx, query, topK)
	if err != nil {
		return "", nil, fmt.Errorf("search similar: %w", err)
	}

	if len(sources) == 0 {
		return NoAnswerMessage, nil, nil
	}

	contextParts := make([]string, len(sources))
	for i, chunk := range sources {
		contextParts[i] = fmt.Sprintf("[%d] %s", i+1, chunk.Content)
	}
	systemPrompt := fmt.Sprintf(qaSystemPromptTemplate, strings.Join(contextParts, "\n\n"))

	answer, err := s.ai.Chat(ctx, systemPrompt, query)
	if err != nil {
		return "", nil, fmt.Errorf("chat: %w", err)
	}

	return answer, sources, nil
}
