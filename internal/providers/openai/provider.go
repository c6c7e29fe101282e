// internal/providers/openai/provider.go

// Package openai provides a providers.Generator backed by OpenAI-compatible
// chat endpoints via langchaingo. Extraction and definition run on separately
// configured models so the cheap model handles the high-call-count extraction
// phase.
package openai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	lcopenai "github.com/tmc/langchaingo/llms/openai"

	"glossgen/internal/appconfig"
	"glossgen/internal/logging"
	"glossgen/internal/providers"
)

const (
	extractMaxTokens = 500
	defineMaxTokens  = 600
	callTemperature  = 0.3
)

// Provider implements providers.Generator against OpenAI-compatible APIs.
type Provider struct {
	extractLLM   llms.Model
	defineLLM    llms.Model
	extractModel string
	defineModel  string
	timeout      time.Duration
}

// New constructs a Provider from the application configuration. A missing
// API key is a permanent configuration error, reported before any call is
// made or cost incurred.
func New(cfg *appconfig.Config) (*Provider, error) {
	key := cfg.ResolveAPIKey()
	if key == "" {
		return nil, providers.Permanent("init", fmt.Errorf("no API key configured (set apiKey in %s or the OPENAI_API_KEY environment variable)", appconfig.DefaultConfigPath))
	}

	base := []lcopenai.Option{lcopenai.WithToken(key)}
	if url := strings.TrimSpace(cfg.BaseURL); url != "" {
		base = append(base, lcopenai.WithBaseURL(url))
	}

	extractLLM, err := lcopenai.New(append(base, lcopenai.WithModel(cfg.ExtractModelName()))...)
	if err != nil {
		return nil, providers.Permanent("init", fmt.Errorf("create extraction client: %w", err))
	}
	defineLLM, err := lcopenai.New(append(base, lcopenai.WithModel(cfg.DefineModelName()))...)
	if err != nil {
		return nil, providers.Permanent("init", fmt.Errorf("create definition client: %w", err))
	}

	return &Provider{
		extractLLM:   extractLLM,
		defineLLM:    defineLLM,
		extractModel: cfg.ExtractModelName(),
		defineModel:  cfg.DefineModelName(),
		timeout:      cfg.RequestTimeout(),
	}, nil
}

// ExtractTerms requests candidate terms for one chunk from the extraction
// model and parses the JSON array out of the response.
func (p *Provider) ExtractTerms(ctx context.Context, req providers.ExtractRequest) ([]string, error) {
	prompt := extractPrompt(req)
	raw, err := p.call(ctx, p.extractLLM, "extract", p.extractModel, prompt, extractMaxTokens)
	if err != nil {
		return nil, classify("extract", err)
	}

	terms, err := parseTermList(raw, req.MaxTerms)
	if err != nil {
		return nil, providers.Transient("extract", err)
	}
	return terms, nil
}

// Define requests a definition for one term from the definition model and
// parses the JSON object out of the response.
func (p *Provider) Define(ctx context.Context, req providers.DefineRequest) (providers.Definition, error) {
	prompt := definePrompt(req)
	raw, err := p.call(ctx, p.defineLLM, "define", p.defineModel, prompt, defineMaxTokens)
	if err != nil {
		return providers.Definition{}, classify("define", err)
	}

	def, err := parseDefinition(raw)
	if err != nil {
		return providers.Definition{}, providers.Transient("define", err)
	}
	return def, nil
}

// call performs one round trip with the per-call timeout and request logging.
func (p *Provider) call(ctx context.Context, llm llms.Model, role, model, prompt string, maxTokens int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	logging.LogCall("APP->LLM", role, model, prompt)
	raw, err := llms.GenerateFromSinglePrompt(ctx, llm, prompt,
		llms.WithTemperature(callTemperature),
		llms.WithMaxTokens(maxTokens),
	)
	if err != nil {
		return "", err
	}
	logging.LogCall("LLM->APP", role, model, raw)
	return raw, nil
}

// permanentMarkers flag failures no retry or later call will fix.
var permanentMarkers = []string{
	"401",
	"invalid api key",
	"incorrect api key",
	"unauthorized",
	"authentication",
	"model_not_found",
}

// classify sorts a transport error into the transient/permanent taxonomy.
// Credential and model-name failures are permanent; everything else
// (timeouts, rate limits, 5xx) is worth absorbing per item.
func classify(role string, err error) error {
	msg := strings.ToLower(err.Error())
	for _, marker := range permanentMarkers {
		if strings.Contains(msg, marker) {
			return providers.Permanent(role, err)
		}
	}
	return providers.Transient(role, err)
}
