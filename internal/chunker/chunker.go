// Package chunker splits document content into bounded, overlapping
// windows that become the units of retrieval.
package chunker

import "strings"

// DefaultChunkSize is the default window size in runes.
const DefaultChunkSize = 800

// DefaultOverlap is the default overlap between windows in runes.
const DefaultOverlap = 80

// Piece is one window of document content with its stable position.
type Piece struct {
	// Position is the ordinal position within the document.
	Position int

	// Content is the window text.
	Content string
}

// Splitter splits text into paragraph-aware overlapping windows.
// Paragraphs that fit the window budget stay whole; longer paragraphs
// are windowed by rune count with overlap. Nothing is ever dropped: a
// span that cannot be split further is emitted as a single oversized
// piece.
type Splitter struct {
	chunkSize int
	overlap   int
}

// Option configures the splitter.
type Option func(*Splitter)

// WithChunkSize sets the window size in runes.
func WithChunkSize(size int) Option {
	return func(s *Splitter) {
		if size > 0 {
			s.chunkSize = size
		}
	}
}

// WithOverlap sets the overlap between windows in runes.
func WithOverlap(overlap int) Option {
	return func(s *Splitter) {
		if overlap >= 0 {
			s.overlap = overlap
		}
	}
}

// New creates a splitter with the given options.
func New(opts ...Option) *Splitter {
	s := &Splitter{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultOverlap,
	}

	for _, opt := range opts {
		opt(s)
	}

	// Ensure overlap doesn't swallow the window
	if s.overlap >= s.chunkSize {
		s.overlap = s.chunkSize / 4
	}

	return s
}

// Split breaks content into pieces with sequential positions.
// Empty content produces no pieces.
func (s *Splitter) Split(content string) []Piece {
	if strings.TrimSpace(content) == "" {
		return nil
	}

	var pieces []Piece
	position := 0
	for _, para := range splitParagraphs(content) {
		for _, window := range s.window(para) {
			pieces = append(pieces, Piece{Position: position, Content: window})
			position++
		}
	}
	return pieces
}

// splitParagraphs separates content on blank lines, dropping empty spans.
func splitParagraphs(content string) []string {
	raw := strings.Split(content, "\n\n")
	paras := make([]string, 0, len(raw))
	for _, p := range raw {
		if strings.TrimSpace(p) != "" {
			paras = append(paras, p)
		}
	}
	return paras
}

// window slices a paragraph into rune windows of chunkSize with overlap.
// A paragraph within the budget is returned whole.
func (s *Splitter) window(para string) []string {
	runes := []rune(para)
	if len(runes) <= s.chunkSize {
		return []string{para}
	}

	var windows []string
	step := s.chunkSize - s.overlap
	for start := 0; start < len(runes); start += step {
		end := start + s.chunkSize
		if end > len(runes) {
			end = len(runes)
		}
		windows = append(windows, string(runes[start:end]))
		if end >= len(runes) {
			break
		}
	}
	return windows
}
