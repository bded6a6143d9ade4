package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arturoeanton/go-doc-rag/internal/adapter/docs"
)

func TestDocumentService_ProcessTXT(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	text := strings.TrimSpace(strings.Repeat("some sentence about cats. ", 100))
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))

	svc := NewDocumentService(docs.NewExtractor(), docs.NewSplitter())
	content, chunks, err := svc.ProcessDocument(context.Background(), path, "notes.txt")
	require.NoError(t, err)

	assert.Equal(t, text, content)
	require.NotEmpty(t, chunks)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), docs.DefaultChunkSize)
	}
}

func TestDocumentService_UnsupportedType(t *testing.T) {
	svc := NewDocumentService(docs.NewExtractor(), docs.NewSplitter())
	_, _, err := svc.ProcessDocument(context.Background(), "/tmp/file.docx", "file.docx")
	assert.Error(t, err)
}
