// internal/pipeline/extractor.go
package pipeline

import (
	"context"

	"glossgen/internal/glossary"
	"glossgen/internal/providers"
)

// extractChunk asks the generator for candidate terms in one chunk and tags
// each with the chunk's index. The per-chunk bound comes from the profile so
// junior audiences yield more, simpler candidates and senior fewer,
// specialized ones. The global term cap is the aggregator's job, not ours.
func extractChunk(ctx context.Context, gen providers.Generator, chunk glossary.Chunk, profile glossary.Profile) ([]glossary.CandidateTerm, error) {
	terms, err := gen.ExtractTerms(ctx, providers.ExtractRequest{
		ChunkText: chunk.Text,
		Profile:   profile,
		MaxTerms:  profile.ChunkTermLimit,
	})
	if err != nil {
		return nil, err
	}

	candidates := make([]glossary.CandidateTerm, 0, len(terms))
	for _, term := range terms {
		if glossary.Canonicalize(term) == "" {
			continue
		}
		candidates = append(candidates, glossary.CandidateTerm{
			Term:       term,
			ChunkIndex: chunk.Index,
		})
	}
	return candidates, nil
}
