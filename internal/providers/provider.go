// internal/providers/provider.go

// Package providers defines the interface to the language-generation
// collaborator used by the glossary pipeline. It provides a common
// abstraction for requesting candidate terms and definitions, regardless of
// the backing provider implementation.
package providers

import (
	"context"

	"glossgen/internal/glossary"
)

// ExtractRequest asks the provider for candidate terms in one chunk of
// document text, bounded by MaxTerms, judged against the profile's audience.
type ExtractRequest struct {
	ChunkText string
	Profile   glossary.Profile
	MaxTerms  int
}

// DefineRequest asks the provider for a definition and context note for a
// single term. Context carries bounded surrounding document text so the
// provider can ground the context note in this document's usage.
type DefineRequest struct {
	Term    string
	Context string
	Profile glossary.Profile
}

// Definition is the provider's answer for one term.
type Definition struct {
	Definition  string
	ContextNote string
}

// Generator is the capability interface every generation provider must
// implement. Extraction and definition are separate calls because they use
// differently priced backing models and have independent failure handling.
type Generator interface {
	// ExtractTerms returns candidate term strings for one chunk, at most
	// req.MaxTerms of them.
	ExtractTerms(ctx context.Context, req ExtractRequest) ([]string, error)
	// Define returns a definition and context note for one term.
	Define(ctx context.Context, req DefineRequest) (Definition, error)
}
