package store

import (
	"fmt"
	"math"
	"sort"

	"github.com/arturoeanton/go-doc-rag/internal/domain"
	"github.com/arturoeanton/go-doc-rag/internal/port"
)

// CosineSimilarity calculates the cosine similarity between two vectors.
// Vectors of different lengths are a data-integrity fault and return
// port.ErrDimensionMismatch. A zero-magnitude vector yields 0, not NaN.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", port.ErrDimensionMismatch, len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0, nil
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

// TopK scores every chunk against the query vector and returns the k best,
// sorted by descending similarity. Ties keep insertion order (stable sort).
// If fewer than k chunks exist, all of them are returned.
func TopK(query []float32, chunks []domain.Chunk, k int) ([]domain.ScoredChunk, error) {
	if len(chunks) == 0 {
		return nil, nil
	}

	scored := make([]domain.ScoredChunk, len(chunks))
	for i, chunk := range chunks {
		score, err := CosineSimilarity(query, chunk.Embedding)
		if err != nil {
			return nil, fmt.Errorf("score chunk %s: %w", chunk.ID, err)
		}
		scored[i] = domain.ScoredChunk{
			ID:      chunk.ID,
			Content: chunk.Content,
			Metadata: domain.ScoredChunkMetadata{
				DocumentID: chunk.Metadata.DocumentID,
				ChunkIndex: chunk.Metadata.ChunkIndex,
				StartIndex: 0,
				EndIndex:   len(chunk.Content),
			},
			Score: score,
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if k < 0 {
		k = 0
	}
	if k > len(scored) {
		k = len(scored)
	}
	return scored[:k], nil
}
