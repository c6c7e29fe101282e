// internal/cost/estimator.go

// Package cost predicts token volume and dollar cost for a pipeline run
// before any provider call is made. Estimation is a pure function of the
// chunk plan, the expertise profile, and the configured per-model rates, so
// it is safe to call repeatedly and always returns identical results for
// identical inputs.
package cost

import (
	"fmt"

	"glossgen/internal/appconfig"
	"glossgen/internal/glossary"
)

const (
	// charsPerToken is the rough chars-to-tokens heuristic for English prose.
	charsPerToken = 4
	// extractPromptOverheadTokens covers the fixed extraction prompt text
	// around the chunk body.
	extractPromptOverheadTokens = 180
	// extractOutputTokensPerTerm sizes the JSON array the extractor returns.
	extractOutputTokensPerTerm = 8
	// definePromptOverheadTokens covers the fixed definition prompt text.
	definePromptOverheadTokens = 150
	// defineContextTokens is the bounded document context sent per term.
	defineContextTokens = 500
	// defineOutputTokensPerTerm sizes a definition plus context note.
	defineOutputTokensPerTerm = 160
)

// Phase holds the prediction for one pipeline phase (extraction or
// definition): the model it runs on, its token volumes, and the dollar cost
// at the configured rates.
type Phase struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	Dollars      float64
}

// Estimate is the full cost prediction for one run.
type Estimate struct {
	ChunkCount int
	Extraction Phase
	Definition Phase
}

// Total returns the combined dollar cost of both phases.
func (e Estimate) Total() float64 {
	return e.Extraction.Dollars + e.Definition.Dollars
}

// Breakdown returns a one-line human-readable cost split.
func (e Estimate) Breakdown() string {
	return fmt.Sprintf("Extraction: $%.4f, Definitions: $%.4f", e.Extraction.Dollars, e.Definition.Dollars)
}

// ForRun predicts the cost of processing the given chunk plan with the given
// profile. Extraction scales with chunk count and size; definition is bounded
// by the term cap regardless of document size.
func ForRun(chunks []glossary.Chunk, profile glossary.Profile, cfg appconfig.Config) Estimate {
	est := Estimate{ChunkCount: len(chunks)}

	extractModel := cfg.ExtractModelName()
	est.Extraction = Phase{Model: extractModel, Calls: len(chunks)}
	for _, chunk := range chunks {
		est.Extraction.InputTokens += extractPromptOverheadTokens + len(chunk.Text)/charsPerToken
		est.Extraction.OutputTokens += profile.ChunkTermLimit * extractOutputTokensPerTerm
	}
	est.Extraction.Dollars = dollars(cfg.RateFor(extractModel), est.Extraction.InputTokens, est.Extraction.OutputTokens)

	// The definer never sees more than the term cap, so definition cost is
	// flat once the document produces enough candidates.
	termBudget := cfg.MaxTerms()
	if len(chunks) == 0 {
		termBudget = 0
	}
	defineModel := cfg.DefineModelName()
	est.Definition = Phase{
		Model:        defineModel,
		Calls:        termBudget,
		InputTokens:  termBudget * (definePromptOverheadTokens + defineContextTokens),
		OutputTokens: termBudget * defineOutputTokensPerTerm,
	}
	est.Definition.Dollars = dollars(cfg.RateFor(defineModel), est.Definition.InputTokens, est.Definition.OutputTokens)

	return est
}

func dollars(rate appconfig.ModelRate, inputTokens, outputTokens int) float64 {
	return float64(inputTokens)/1_000_000*rate.InputPerMTok +
		float64(outputTokens)/1_000_000*rate.OutputPerMTok
}
