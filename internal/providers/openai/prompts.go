// internal/providers/openai/prompts.go
package openai

import (
	"fmt"

	"glossgen/internal/providers"
)

// extractPrompt asks for a bounded JSON array of candidate terms. The
// audience description and the per-chunk bound both come from the expertise
// profile, so a senior profile naturally yields fewer, more specialized
// candidates.
func extractPrompt(req providers.ExtractRequest) string {
	return fmt.Sprintf(`You are analyzing technical documentation for a %s.

Extract technical terms, acronyms, and concepts that this audience might not fully understand or would benefit from clarification.

Document content:
%s

Instructions:
1. Identify technical terms, acronyms, jargon, and complex concepts
2. Focus on terms a %s might find challenging
3. Include terms that are used in specific contexts in this document
4. Return ONLY a JSON array of terms (no explanations)
5. Limit to the %d most important/complex terms if there are many
6. Order by importance/complexity for the target audience

Return format: ["term1", "term2", "term3"]`,
		req.Profile.Audience, req.ChunkText, req.Profile.Audience, req.MaxTerms)
}

// definePrompt asks for one term's definition and context note as a JSON
// object.
func definePrompt(req providers.DefineRequest) string {
	return fmt.Sprintf(`You are creating a glossary for a %s.

Document context (for reference):
%s

Generate a clear, concise definition for the technical term %q.

Instructions:
1. Provide a clear definition (2-3 sentences max)
2. If the term has a specific meaning in the document context, describe it in the context note
3. Keep the explanation appropriate for a %s: %s

Return ONLY a JSON object with this structure:
{"definition": "Clear explanation of the term", "context_note": "How it's specifically used in this document (omit if not applicable)"}`,
		req.Profile.Audience, req.Context, req.Term, req.Profile.Audience, req.Profile.DefinitionStyle)
}
