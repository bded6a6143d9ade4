package docs

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/arturoeanton/go-doc-rag/internal/port"
)

// CommandRunner abstracts external command execution so PDF extraction can be
// tested without a pdftotext binary.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Extractor turns uploaded files into plain text. TXT files are read
// directly; PDF files go through the pdftotext command.
type Extractor struct {
	runner CommandRunner
}

// NewExtractor creates an extractor using the real command runner.
func NewExtractor() *Extractor {
	return &Extractor{runner: execRunner{}}
}

// NewExtractorWithRunner creates an extractor with a custom command runner.
func NewExtractorWithRunner(runner CommandRunner) *Extractor {
	return &Extractor{runner: runner}
}

// SupportedExtensions lists the file extensions the extractor accepts.
func SupportedExtensions() []string {
	return []string{".pdf", ".txt"}
}

// Extract returns the plain-text content of the file at path. The extension
// of filename (the original upload name) decides the extraction strategy.
func (e *Extractor) Extract(ctx context.Context, path, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read txt: %w", err)
		}
		return string(data), nil

	case ".pdf":
		// "-" sends the extracted text to stdout.
		out, err := e.runner.Run(ctx, "pdftotext", path, "-")
		if err != nil {
			return "", fmt.Errorf("pdftotext: %w", err)
		}
		return string(out), nil

	default:
		return "", fmt.Errorf("%w: %s", port.ErrUnsupportedFileType, ext)
	}
}
