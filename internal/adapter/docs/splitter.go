package docs

import "strings"

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = 1000

// DefaultChunkOverlap is the default number of overlapping characters.
const DefaultChunkOverlap = 200

var defaultSeparators = []string{"\n\n", "\n", " ", ""}

// Splitter breaks text into chunks of at most chunkSize characters,
// preferring to split on paragraph, then line, then word boundaries, with
// trailing overlap carried into the next chunk.
type Splitter struct {
	chunkSize  int
	overlap    int
	separators []string
}

// Option configures the splitter.
type Option func(*Splitter)

// WithChunkSize sets the chunk size in characters.
func WithChunkSize(size int) Option {
	return func(s *Splitter) {
		if size > 0 {
			s.chunkSize = size
		}
	}
}

// WithOverlap sets the overlap between chunks in characters.
func WithOverlap(overlap int) Option {
	return func(s *Splitter) {
		if overlap >= 0 {
			s.overlap = overlap
		}
	}
}

// NewSplitter creates a splitter with the given options.
func NewSplitter(opts ...Option) *Splitter {
	s := &Splitter{
		chunkSize:  DefaultChunkSize,
		overlap:    DefaultChunkOverlap,
		separators: defaultSeparators,
	}

	for _, opt := range opts {
		opt(s)
	}

	// Overlap must leave room for new content in every chunk
	if s.overlap >= s.chunkSize {
		s.overlap = s.chunkSize / 4
	}

	return s
}

// Split breaks text into chunks. Empty or whitespace-only input produces no chunks.
func (s *Splitter) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return s.split(text, s.separators)
}

func (s *Splitter) split(text string, separators []string) []string {
	// Pick the first separator present in the text; "" always matches and
	// splits per rune as the last resort.
	sep := separators[len(separators)-1]
	var rest []string
	for i, candidate := range separators {
		if candidate == "" || strings.Contains(text, candidate) {
			sep = candidate
			rest = separators[i+1:]
			break
		}
	}

	parts := strings.Split(text, sep)

	var chunks []string
	var fitting []string

	for _, part := range parts {
		if len(part) <= s.chunkSize {
			fitting = append(fitting, part)
			continue
		}

		// The part is oversized: flush what fits, then recurse on it with
		// the finer-grained separators.
		chunks = append(chunks, s.merge(fitting, sep)...)
		fitting = nil

		if len(rest) == 0 {
			chunks = append(chunks, part)
		} else {
			chunks = append(chunks, s.split(part, rest)...)
		}
	}

	chunks = append(chunks, s.merge(fitting, sep)...)
	return chunks
}

// merge joins consecutive parts into chunks of at most chunkSize characters,
// carrying up to overlap characters of trailing parts into the next chunk.
func (s *Splitter) merge(parts []string, sep string) []string {
	if len(parts) == 0 {
		return nil
	}

	sepLen := len(sep)

	var chunks []string
	var window []string
	total := 0

	emit := func() {
		merged := strings.TrimSpace(strings.Join(window, sep))
		if merged != "" {
			chunks = append(chunks, merged)
		}
	}

	for _, part := range parts {
		partLen := len(part)
		joinLen := 0
		if len(window) > 0 {
			joinLen = sepLen
		}

		if total+partLen+joinLen > s.chunkSize && len(window) > 0 {
			emit()

			// Shrink the window until it fits inside the overlap budget and
			// leaves room for the incoming part.
			for len(window) > 0 && (total > s.overlap || total+partLen+sepLen > s.chunkSize) {
				dropped := len(window[0])
				if len(window) > 1 {
					dropped += sepLen
				}
				total -= dropped
				window = window[1:]
			}
		}

		if len(window) > 0 {
			total += sepLen
		}
		window = append(window, part)
		total += partLen
	}

	emit()
	return chunks
}
