package store

import (
	"fmt"
	"sync"

	"github.com/arturoeanton/go-doc-rag/internal/domain"
)

// MemoryStore holds embedded chunks in process memory, guarded by a RWMutex
// so concurrent HTTP handlers never observe a half-inserted batch. Contents
// live for the lifetime of the process; there is no persistence.
type MemoryStore struct {
	mu        sync.RWMutex
	chunks    map[string]domain.Chunk
	order     []string            // chunk ids in first-insertion order
	docChunks map[string][]string // document id -> chunk ids
}

// NewMemoryStore creates an empty in-memory chunk store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		chunks:    make(map[string]domain.Chunk),
		docChunks: make(map[string][]string),
	}
}

// ChunkID derives the stored id for a chunk from its document and position.
func ChunkID(documentID string, index int) string {
	return fmt.Sprintf("%s-chunk-%d", documentID, index)
}

// UpsertChunks inserts a batch of chunks for a document. Any chunks already
// stored under the same document id are replaced by the batch, so re-ingesting
// a document never produces duplicates or leaves stale chunks behind.
func (s *MemoryStore) UpsertChunks(documentID string, chunks []domain.Chunk) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeDocumentLocked(documentID)

	for _, chunk := range chunks {
		s.chunks[chunk.ID] = chunk
		s.order = append(s.order, chunk.ID)
		s.docChunks[documentID] = append(s.docChunks[documentID], chunk.ID)
	}
}

// DeleteByDocument removes every chunk belonging to the given document and
// returns the number removed. Unknown ids remove nothing.
func (s *MemoryStore) DeleteByDocument(documentID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeDocumentLocked(documentID)
}

// removeDocumentLocked drops all chunks of a document. Caller holds the write lock.
func (s *MemoryStore) removeDocumentLocked(documentID string) int {
	ids := s.docChunks[documentID]
	if len(ids) == 0 {
		return 0
	}

	removed := make(map[string]bool, len(ids))
	for _, id := range ids {
		delete(s.chunks, id)
		removed[id] = true
	}
	delete(s.docChunks, documentID)

	kept := s.order[:0]
	for _, id := range s.order {
		if !removed[id] {
			kept = append(kept, id)
		}
	}
	s.order = kept

	return len(ids)
}

// Size returns the current chunk count.
func (s *MemoryStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.chunks)
}

// Snapshot returns a consistent copy of all stored chunks in insertion order.
// The ranker scores the snapshot outside the lock.
func (s *MemoryStore) Snapshot() []domain.Chunk {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Chunk, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.chunks[id])
	}
	return out
}
