package domain

// ChunkMetadata describes where a stored chunk came from.
type ChunkMetadata struct {
	DocumentID   string `json:"documentId"`
	ChunkIndex   int    `json:"chunkIndex"`
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	Source       string `json:"source"` // display label: {originalName}#chunk-{index}
}

// Chunk is the unit of embedding and retrieval held by the vector store.
type Chunk struct {
	ID        string        `json:"id"`
	Content   string        `json:"content"`
	Metadata  ChunkMetadata `json:"metadata"`
	Embedding []float32     `json:"-"`
}

// ScoredChunkMetadata is the metadata shape returned from search.
// Character offsets are not tracked by the chunker, so StartIndex is
// always 0 and EndIndex is the content length.
type ScoredChunkMetadata struct {
	DocumentID string `json:"documentId"`
	ChunkIndex int    `json:"chunkIndex"`
	StartIndex int    `json:"startIndex"`
	EndIndex   int    `json:"endIndex"`
}

// ScoredChunk is a search result: chunk identity plus a cosine similarity
// score in [-1, 1], higher = more similar. Embeddings are never included.
type ScoredChunk struct {
	ID       string              `json:"id"`
	Content  string              `json:"content"`
	Metadata ScoredChunkMetadata `json:"metadata"`
	Score    float64             `json:"score"`
}

// CollectionInfo reports diagnostics about the vector collection.
type CollectionInfo struct {
	Count          int    `json:"count"`
	CollectionName string `json:"collectionName"`
}

// DocumentMeta carries the upload-layer identity of a processed file.
type DocumentMeta struct {
	Filename     string // stored name on disk
	OriginalName string // name as uploaded by the client
}
