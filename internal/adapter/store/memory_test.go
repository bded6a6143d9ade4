package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arturoeanton/go-doc-rag/internal/domain"
)

func makeChunks(documentID string, contents ...string) []domain.Chunk {
	chunks := make([]domain.Chunk, len(contents))
	for i, content := range contents {
		chunks[i] = domain.Chunk{
			ID:      ChunkID(documentID, i),
			Content: content,
			Metadata: domain.ChunkMetadata{
				DocumentID: documentID,
				ChunkIndex: i,
			},
			Embedding: []float32{1, 0},
		}
	}
	return chunks
}

func TestChunkID(t *testing.T) {
	assert.Equal(t, "doc1-chunk-0", ChunkID("doc1", 0))
	assert.Equal(t, "doc1-chunk-12", ChunkID("doc1", 12))
}

func TestMemoryStore_UpsertAndSize(t *testing.T) {
	s := NewMemoryStore()
	assert.Equal(t, 0, s.Size())

	s.UpsertChunks("doc1", makeChunks("doc1", "a", "b", "c"))
	assert.Equal(t, 3, s.Size())

	s.UpsertChunks("doc2", makeChunks("doc2", "d"))
	assert.Equal(t, 4, s.Size())
}

func TestMemoryStore_UpsertReplacesExistingIDs(t *testing.T) {
	s := NewMemoryStore()

	s.UpsertChunks("doc1", makeChunks("doc1", "old-a", "old-b", "old-c"))
	s.UpsertChunks("doc2", makeChunks("doc2", "other"))
	require.Equal(t, 4, s.Size())

	// Re-ingesting doc1 replaces its whole chunk set: new count + other docs
	s.UpsertChunks("doc1", makeChunks("doc1", "new-a", "new-b"))
	assert.Equal(t, 3, s.Size())

	snapshot := s.Snapshot()
	byID := map[string]string{}
	for _, c := range snapshot {
		byID[c.ID] = c.Content
	}
	assert.Equal(t, "new-a", byID["doc1-chunk-0"])
	assert.Equal(t, "new-b", byID["doc1-chunk-1"])
	assert.Equal(t, "other", byID["doc2-chunk-0"])
	assert.NotContains(t, byID, "doc1-chunk-2")
}

func TestMemoryStore_InsertDeleteRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	s.UpsertChunks("doc1", makeChunks("doc1", "a", "b"))
	before := s.Size()

	s.UpsertChunks("doc2", makeChunks("doc2", "x", "y", "z"))
	assert.Equal(t, before+3, s.Size())

	removed := s.DeleteByDocument("doc2")
	assert.Equal(t, 3, removed)
	assert.Equal(t, before, s.Size())

	// doc1 untouched
	for _, c := range s.Snapshot() {
		assert.Equal(t, "doc1", c.Metadata.DocumentID)
	}
}

func TestMemoryStore_DeleteUnknownDocument(t *testing.T) {
	s := NewMemoryStore()
	s.UpsertChunks("doc1", makeChunks("doc1", "a"))

	removed := s.DeleteByDocument("nope")
	assert.Equal(t, 0, removed)
	assert.Equal(t, 1, s.Size())
}

func TestMemoryStore_SnapshotInsertionOrder(t *testing.T) {
	s := NewMemoryStore()
	s.UpsertChunks("doc1", makeChunks("doc1", "a", "b"))
	s.UpsertChunks("doc2", makeChunks("doc2", "c"))

	snapshot := s.Snapshot()
	require.Len(t, snapshot, 3)
	assert.Equal(t, "doc1-chunk-0", snapshot[0].ID)
	assert.Equal(t, "doc1-chunk-1", snapshot[1].ID)
	assert.Equal(t, "doc2-chunk-0", snapshot[2].ID)
}

func TestMemoryStore_SnapshotIsACopy(t *testing.T) {
	s := NewMemoryStore()
	s.UpsertChunks("doc1", makeChunks("doc1", "a"))

	snapshot := s.Snapshot()
	s.DeleteByDocument("doc1")

	require.Len(t, snapshot, 1)
	assert.Equal(t, "a", snapshot[0].Content)
}
