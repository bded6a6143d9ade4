package service

import (
	"context"
	"fmt"

	"github.com/arturoeanton/go-doc-rag/internal/adapter/docs"
)

// DocumentService extracts text from uploaded files and splits it into
// chunks ready for embedding.
type DocumentService struct {
	extractor *docs.Extractor
	splitter  *docs.Splitter
}

// NewDocumentService creates a document service.
func NewDocumentService(extractor *docs.Extractor, splitter *docs.Splitter) *DocumentService {
	return &DocumentService{extractor: extractor, splitter: splitter}
}

// ProcessDocument extracts the text of the file at path and splits it into
// chunks. filename is the original upload name and decides the extraction
// strategy by extension.
func (s *DocumentService) ProcessDocument(ctx context.Context, path, filename string) (string, []string, error) {
	content, err := s.extractor.Extract(ctx, path, filename)
	if err != nil {
		return "", nil, fmt.Errorf("extract %s: %w", filename, err)
	}

	chunks := s.splitter.Split(content)
	return content, chunks, nil
}
