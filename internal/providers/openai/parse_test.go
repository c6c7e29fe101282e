// internal/providers/openai/parse_test.go
package openai

import (
	"errors"
	"strings"
	"testing"

	"glossgen/internal/providers"
)

func TestParseTermList(t *testing.T) {
	raw := "Here are the terms you asked for:\n[\"Kubernetes\", \"gRPC\", \"OAuth\"]\nHope that helps."
	terms, err := parseTermList(raw, 8)
	if err != nil {
		t.Fatalf("parseTermList failed: %v", err)
	}
	if len(terms) != 3 || terms[0] != "Kubernetes" {
		t.Fatalf("unexpected terms: %v", terms)
	}
}

func TestParseTermListTruncates(t *testing.T) {
	terms, err := parseTermList(`["a","b","c","d"]`, 2)
	if err != nil {
		t.Fatalf("parseTermList failed: %v", err)
	}
	if len(terms) != 2 {
		t.Fatalf("expected truncation to 2 terms, got %v", terms)
	}
}

func TestParseTermListRejectsBadPayloads(t *testing.T) {
	cases := []string{
		"no json here at all",
		`{"terms": "not an array"}`,
		`[1, 2, 3]`,
		`["ok", 42]`,
	}
	for _, raw := range cases {
		if _, err := parseTermList(raw, 8); err == nil {
			t.Fatalf("expected parse error for %q", raw)
		}
	}
}

func TestParseDefinition(t *testing.T) {
	raw := "Sure:\n{\"definition\": \"A container orchestrator.\", \"context_note\": \"Used here for deployments.\"}"
	def, err := parseDefinition(raw)
	if err != nil {
		t.Fatalf("parseDefinition failed: %v", err)
	}
	if def.Definition != "A container orchestrator." {
		t.Fatalf("unexpected definition: %q", def.Definition)
	}
	if def.ContextNote != "Used here for deployments." {
		t.Fatalf("unexpected context note: %q", def.ContextNote)
	}
}

func TestParseDefinitionOptionalContextNote(t *testing.T) {
	def, err := parseDefinition(`{"definition": "Plain def."}`)
	if err != nil {
		t.Fatalf("parseDefinition failed: %v", err)
	}
	if def.ContextNote != "" {
		t.Fatalf("expected empty context note, got %q", def.ContextNote)
	}
}

func TestParseDefinitionRejectsBadPayloads(t *testing.T) {
	cases := []string{
		"no braces",
		`{"context_note": "but no definition"}`,
		`{"definition": "   "}`,
		`{"definition": 7}`,
	}
	for _, raw := range cases {
		if _, err := parseDefinition(raw); err == nil {
			t.Fatalf("expected parse error for %q", raw)
		}
	}
}

func TestClassify(t *testing.T) {
	if !providers.IsPermanent(classify("extract", errors.New("API returned 401 Unauthorized"))) {
		t.Fatal("expected credential failure to be permanent")
	}
	if providers.IsPermanent(classify("define", errors.New("429 too many requests"))) {
		t.Fatal("expected rate limit to be transient")
	}
	if providers.IsPermanent(classify("define", errors.New("context deadline exceeded"))) {
		t.Fatal("expected timeout to be transient")
	}
}

func TestPromptsEncodeProfile(t *testing.T) {
	profile := profileFixture()
	prompt := extractPrompt(providers.ExtractRequest{
		ChunkText: "body text",
		Profile:   profile,
		MaxTerms:  4,
	})
	if !strings.Contains(prompt, profile.Audience) {
		t.Fatal("extract prompt must name the audience")
	}
	if !strings.Contains(prompt, "4 most important") {
		t.Fatal("extract prompt must carry the per-chunk bound")
	}

	dPrompt := definePrompt(providers.DefineRequest{
		Term:    "sidecar",
		Context: "ctx",
		Profile: profile,
	})
	if !strings.Contains(dPrompt, `"sidecar"`) {
		t.Fatal("define prompt must quote the term")
	}
	if !strings.Contains(dPrompt, profile.DefinitionStyle) {
		t.Fatal("define prompt must carry the definition style")
	}
}
