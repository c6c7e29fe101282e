// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"

	"glossgen/internal/doclinks"
	"glossgen/internal/glossary"
	"glossgen/internal/logging"
	"glossgen/internal/providers"
)

// Options configures one pipeline run.
type Options struct {
	Profile  glossary.Profile
	MaxTerms int
	Chunk    ChunkOptions
	// Links resolves documentation URLs for defined terms. Nil disables the
	// lookup.
	Links *doclinks.Table
	// Status receives human-readable progress lines. Nil disables reporting.
	Status func(format string, args ...any)
}

// Warning records a per-item failure that was absorbed instead of aborting
// the run.
type Warning struct {
	Stage      string // "extract" or "define"
	ChunkIndex int    // chunk the failure occurred in; -1 for define failures
	Term       string // term affected; empty for extract failures
	Err        error
}

func (w Warning) String() string {
	if w.Stage == "extract" {
		return fmt.Sprintf("extraction failed for chunk %d: %v", w.ChunkIndex, w.Err)
	}
	return fmt.Sprintf("definition failed for term %q: %v", w.Term, w.Err)
}

// Result is the outcome of a run: the glossary plus any absorbed failures.
// Warnings are deliberately not part of the Glossary value so renderers never
// see them.
type Result struct {
	Glossary glossary.Glossary
	Chunks   []glossary.Chunk
	Warnings []Warning
}

// Run executes the full pipeline sequentially: split the document, extract
// candidates per chunk, aggregate into a ranked capped entry list, then
// define each entry. Transient per-item failures become warnings; permanent
// provider failures abort immediately. An empty document or zero extracted
// terms yields an empty glossary and no error.
func Run(ctx context.Context, gen providers.Generator, doc glossary.Document, opts Options) (Result, error) {
	status := opts.Status
	if status == nil {
		status = func(string, ...any) {}
	}

	result := Result{
		Glossary: glossary.Glossary{
			Level:   opts.Profile.Level,
			Source:  doc.Source,
			Entries: []glossary.TermEntry{},
		},
	}

	result.Chunks = Split(doc.Text, opts.Chunk)
	if len(result.Chunks) == 0 {
		logging.LogEvent("document %s is empty, skipping pipeline", doc.Source)
		return result, nil
	}
	status("Split %s into %d chunk(s)", doc.Source, len(result.Chunks))

	var candidates []glossary.CandidateTerm
	for _, chunk := range result.Chunks {
		status("Extracting terms from chunk %d/%d", chunk.Index+1, len(result.Chunks))
		chunkCandidates, err := extractChunk(ctx, gen, chunk, opts.Profile)
		if err != nil {
			if providers.IsPermanent(err) {
				return result, fmt.Errorf("extraction aborted on chunk %d: %w", chunk.Index, err)
			}
			logging.LogEvent("chunk %d extraction absorbed: %v", chunk.Index, err)
			result.Warnings = append(result.Warnings, Warning{
				Stage:      "extract",
				ChunkIndex: chunk.Index,
				Err:        err,
			})
			continue
		}
		candidates = append(candidates, chunkCandidates...)
	}

	entries := glossary.Aggregate(candidates, opts.MaxTerms)
	if len(entries) == 0 {
		logging.LogEvent("no candidate terms for %s", doc.Source)
		return result, nil
	}
	status("Aggregated %d candidate(s) into %d term(s)", len(candidates), len(entries))

	for i := range entries {
		entry := &entries[i]
		status("Defining term %d/%d: %s", i+1, len(entries), entry.Term)
		if err := defineEntry(ctx, gen, entry, doc.Text, opts.Profile); err != nil {
			if providers.IsPermanent(err) {
				return result, fmt.Errorf("definition aborted on term %q: %w", entry.Term, err)
			}
			logging.LogEvent("term %q definition absorbed: %v", entry.Term, err)
			result.Warnings = append(result.Warnings, Warning{
				Stage:      "define",
				ChunkIndex: -1,
				Term:       entry.Term,
				Err:        err,
			})
		}
		if opts.Links != nil {
			if url, ok := opts.Links.Lookup(entry.Canonical); ok {
				entry.DocLink = url
			}
		}
	}

	result.Glossary.Entries = entries
	return result, nil
}
