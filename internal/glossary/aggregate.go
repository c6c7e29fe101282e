// internal/glossary/aggregate.go
package glossary

import (
	"sort"
	"strings"
)

// Aggregate merges candidate terms from all chunks into the final ordered
// term-entry seed list. Entries are deduplicated on the canonical form, keep
// the first-seen casing for display, and carry the union of originating chunk
// indices as provenance. Ranking is deterministic: terms appearing in more
// distinct chunks rank first, ties break on earliest chunk of first
// appearance, then on canonical term order. The ranked list is truncated to
// maxTerms entries; maxTerms <= 0 means unlimited.
func Aggregate(candidates []CandidateTerm, maxTerms int) []TermEntry {
	type merged struct {
		entry    TermEntry
		chunks   map[int]struct{}
		firstIdx int
	}

	byCanonical := make(map[string]*merged)
	var order []string

	for _, c := range candidates {
		canonical := Canonicalize(c.Term)
		if canonical == "" {
			continue
		}
		m, ok := byCanonical[canonical]
		if !ok {
			m = &merged{
				entry: TermEntry{
					Term:      strings.TrimSpace(c.Term),
					Canonical: canonical,
				},
				chunks:   make(map[int]struct{}),
				firstIdx: c.ChunkIndex,
			}
			byCanonical[canonical] = m
			order = append(order, canonical)
		}
		m.chunks[c.ChunkIndex] = struct{}{}
		if c.ChunkIndex < m.firstIdx {
			m.firstIdx = c.ChunkIndex
		}
	}

	entries := make([]TermEntry, 0, len(order))
	for _, canonical := range order {
		m := byCanonical[canonical]
		chunks := make([]int, 0, len(m.chunks))
		for idx := range m.chunks {
			chunks = append(chunks, idx)
		}
		sort.Ints(chunks)
		m.entry.Chunks = chunks
		entries = append(entries, m.entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if len(a.Chunks) != len(b.Chunks) {
			return len(a.Chunks) > len(b.Chunks)
		}
		if byCanonical[a.Canonical].firstIdx != byCanonical[b.Canonical].firstIdx {
			return byCanonical[a.Canonical].firstIdx < byCanonical[b.Canonical].firstIdx
		}
		return a.Canonical < b.Canonical
	})

	if maxTerms > 0 && len(entries) > maxTerms {
		entries = entries[:maxTerms]
	}
	return entries
}
