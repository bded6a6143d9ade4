package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/arturoeanton/go-doc-rag/internal/adapter/store"
	"github.com/arturoeanton/go-doc-rag/internal/domain"
	"github.com/arturoeanton/go-doc-rag/internal/port"
)

// CollectionName is the fixed label reported by CollectionInfo.
const CollectionName = "rag-documents"

// DefaultTopK is the number of results returned when the caller does not override it.
const DefaultTopK = 5

// RetrievalService is the single point of access to the vector store. It is
// constructed once in main after configuration is loaded and injected into
// the handlers that need it.
type RetrievalService struct {
	ai    port.AIProvider
	store *store.MemoryStore
}

// NewRetrievalService creates a retrieval service over the given provider and store.
func NewRetrievalService(ai port.AIProvider, memStore *store.MemoryStore) *RetrievalService {
	return &RetrievalService{ai: ai, store: memStore}
}

// AddDocumentChunks embeds all chunk texts in one batch call and upserts them
// into the store with positional indices. If the embedding call fails nothing
// is stored: the batch is all-or-nothing.
func (s *RetrievalService) AddDocumentChunks(ctx context.Context, documentID string, chunkTexts []string, meta domain.DocumentMeta) error {
	if len(chunkTexts) == 0 {
		return nil
	}

	vectors, err := s.ai.EmbedBatch(ctx, chunkTexts)
	if err != nil {
		return fmt.Errorf("embed batch: %w", err)
	}
	if len(vectors) != len(chunkTexts) {
		return fmt.Errorf("%w: got %d vectors for %d chunks", port.ErrEmptyEmbedding, len(vectors), len(chunkTexts))
	}

	chunks := make([]domain.Chunk, len(chunkTexts))
	for i, text := range chunkTexts {
		chunks[i] = domain.Chunk{
			ID:      store.ChunkID(documentID, i),
			Content: text,
			Metadata: domain.ChunkMetadata{
				DocumentID:   documentID,
				ChunkIndex:   i,
				Filename:     meta.Filename,
				OriginalName: meta.OriginalName,
				Source:       fmt.Sprintf("%s#chunk-%d", meta.OriginalName, i),
			},
			Embedding: vectors[i],
		}
	}

	s.store.UpsertChunks(documentID, chunks)
	slog.Info("added chunks to vector store", "document_id", documentID, "chunks", len(chunks))
	return nil
}

// SearchSimilarChunks embeds the query and returns the topK most similar
// chunks by cosine similarity. An empty store short-circuits to an empty
// result without calling the embedding provider at all.
func (s *RetrievalService) SearchSimilarChunks(ctx context.Context, query string, topK int) ([]domain.ScoredChunk, error) {
	if topK <= 0 {
		topK = DefaultTopK
	}

	snapshot := s.store.Snapshot()
	if len(snapshot) == 0 {
		return nil, nil
	}

	queryVector, err := s.ai.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	results, err := store.TopK(queryVector, snapshot, topK)
	if err != nil {
		return nil, fmt.Errorf("rank chunks: %w", err)
	}

	slog.Info("similarity search", "query", query, "results", len(results))
	return results, nil
}

// DeleteDocument removes all chunks for a document and returns the count
// removed. Unknown document ids remove nothing; deletion never fails.
func (s *RetrievalService) DeleteDocument(documentID string) int {
	removed := s.store.DeleteByDocument(documentID)
	slog.Info("deleted document from vector store", "document_id", documentID, "chunks_removed", removed)
	return removed
}

// CollectionInfo returns the current chunk count and the collection label.
func (s *RetrievalService) CollectionInfo() domain.CollectionInfo {
	return domain.CollectionInfo{
		Count:          s.store.Size(),
		CollectionName: CollectionName,
	}
}
