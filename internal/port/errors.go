package port

import "errors"

// Sentinel errors used across ports.
var (
	ErrDimensionMismatch   = errors.New("vector dimension mismatch")
	ErrEmptyEmbedding      = errors.New("embedding provider returned no vectors")
	ErrUnsupportedFileType = errors.New("unsupported file type")
)
