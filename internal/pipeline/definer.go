// internal/pipeline/definer.go
package pipeline

import (
	"context"

	"glossgen/internal/glossary"
	"glossgen/internal/providers"
)

// PlaceholderDefinition fills a glossary entry whose definition call failed.
// The entry keeps its rank; the failure surfaces as a run warning instead.
const PlaceholderDefinition = "Definition unavailable."

// defineContextLimit bounds how much surrounding document text is sent with
// each definition request.
const defineContextLimit = 2000

// defineEntry fills one aggregated entry with a definition and context note.
// The entry is mutated in place; on error it keeps the placeholder definition
// so the caller can retain it in rank order.
func defineEntry(ctx context.Context, gen providers.Generator, entry *glossary.TermEntry, docText string, profile glossary.Profile) error {
	def, err := gen.Define(ctx, providers.DefineRequest{
		Term:    entry.Term,
		Context: contextWindow(docText),
		Profile: profile,
	})
	if err != nil {
		entry.Definition = PlaceholderDefinition
		return err
	}
	entry.Definition = def.Definition
	entry.ContextNote = def.ContextNote
	return nil
}

// contextWindow trims document text to the per-request context budget,
// backing up to a word boundary when possible.
func contextWindow(text string) string {
	if len(text) <= defineContextLimit {
		return text
	}
	cut := defineContextLimit
	for cut > defineContextLimit/2 && !isSpace(text[cut-1]) {
		cut--
	}
	return text[:cut]
}
