// internal/glossary/types.go

// Package glossary defines the domain types for the document-to-glossary
// pipeline and the aggregation logic that merges per-chunk candidate terms
// into one ordered, deduplicated, capped term list.
package glossary

import "strings"

// Document is a loaded source document: raw text plus the path it came from.
type Document struct {
	Source string
	Text   string
}

// Chunk is a bounded contiguous slice of document text processed as one
// extraction unit. Index is the chunk's position in document order; Start and
// End are rune-agnostic byte offsets into the document text.
type Chunk struct {
	Index int
	Start int
	End   int
	Text  string
}

// CandidateTerm is a term proposed by the extractor for a single chunk.
// The same term may surface from multiple chunks; the aggregator merges
// those collisions.
type CandidateTerm struct {
	Term       string
	ChunkIndex int
}

// TermEntry is a single glossary entry after aggregation and definition.
type TermEntry struct {
	// Term is the display form: the first-seen original casing.
	Term string `json:"term"`
	// Canonical is the case-folded, trimmed form used for deduplication.
	Canonical string `json:"-"`
	// Definition is audience-tailored prose. Empty until the definer runs;
	// holds a placeholder when the definition call failed.
	Definition string `json:"definition"`
	// ContextNote describes how the term is used in this specific document.
	ContextNote string `json:"context_note,omitempty"`
	// DocLink is an optional documentation URL for the term.
	DocLink string `json:"doc_link,omitempty"`
	// Chunks lists the distinct chunk indices the term was proposed from,
	// in ascending order.
	Chunks []int `json:"chunks"`
}

// Glossary is the final artifact handed to a renderer: the profile it was
// generated for, the source document identifier, and the ordered entries.
// Immutable after construction.
type Glossary struct {
	Level   Level       `json:"level"`
	Source  string      `json:"source"`
	Entries []TermEntry `json:"entries"`
}

// Canonicalize returns the canonical comparison form of a term: lower-cased
// and stripped of surrounding whitespace and punctuation.
func Canonicalize(term string) string {
	trimmed := strings.TrimFunc(term, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '\r', '"', '\'', '`', '.', ',', ';', ':', '(', ')', '[', ']', '{', '}':
			return true
		}
		return false
	})
	return strings.ToLower(trimmed)
}
