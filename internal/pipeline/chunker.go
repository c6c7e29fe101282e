// internal/pipeline/chunker.go

// Package pipeline implements the document-to-glossary pipeline: chunking,
// term extraction, aggregation, and definition, driven sequentially with
// per-item failure absorption.
package pipeline

import "glossgen/internal/glossary"

// ChunkOptions controls how a document is split.
type ChunkOptions struct {
	// MaxSize is the chunk length ceiling in characters.
	MaxSize int
	// Overlap is how many characters of the previous chunk are carried into
	// the next one to preserve cross-boundary context. Zero disables overlap.
	Overlap int
}

// boundaryWindowDivisor sets how far back from the size ceiling the splitter
// looks for a paragraph break before settling for a word break: a quarter of
// the chunk size.
const boundaryWindowDivisor = 4

// Split cuts document text into ordered chunks of at most MaxSize characters.
// Cut points prefer paragraph breaks, then word breaks, and only fall back to
// a hard cut inside an unbroken run longer than the ceiling. The primary
// ranges [Start+overlap, End) are contiguous and cover the whole text, so
// joining chunk texts minus the overlap reproduces the document exactly.
// An empty document yields no chunks.
func Split(text string, opts ChunkOptions) []glossary.Chunk {
	if len(text) == 0 {
		return nil
	}
	maxSize := opts.MaxSize
	if maxSize <= 0 {
		maxSize = 1
	}
	overlap := opts.Overlap
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= maxSize {
		overlap = maxSize / 2
	}

	var chunks []glossary.Chunk
	pos := 0
	for pos < len(text) {
		end := cutPoint(text, pos, maxSize)
		start := pos - overlap
		if start < 0 {
			start = 0
		}
		chunks = append(chunks, glossary.Chunk{
			Index: len(chunks),
			Start: start,
			End:   end,
			Text:  text[start:end],
		})
		pos = end
	}
	return chunks
}

// cutPoint picks the end of the chunk whose primary range begins at pos.
func cutPoint(text string, pos, maxSize int) int {
	limit := pos + maxSize
	if limit >= len(text) {
		return len(text)
	}

	window := maxSize / boundaryWindowDivisor
	if window < 1 {
		window = 1
	}

	// Prefer ending just after a paragraph break.
	for i := limit; i >= limit-window && i-2 >= pos; i-- {
		if text[i-2] == '\n' && text[i-1] == '\n' {
			return i
		}
	}
	// Otherwise end after whitespace so no word is cut mid-way.
	for i := limit; i >= limit-window && i-1 >= pos; i-- {
		if isSpace(text[i-1]) {
			return i
		}
	}
	// Unbroken run longer than the window: hard cut at the ceiling.
	return limit
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\n' || b == '\t' || b == '\r'
}
