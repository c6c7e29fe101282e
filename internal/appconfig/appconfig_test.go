// internal/appconfig/appconfig_test.go
package appconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestLoad covers the main configuration scenarios: a valid file with
// overrides, an invalid JSON file, an explicitly named missing file, and the
// default path with no file at all (which must succeed with defaults because
// glossgen can run on flags alone).
func TestLoad(t *testing.T) {
	validConfig := `{
        "extractModel": "gpt-4o-mini",
        "defineModel": "gpt-4o",
        "timeout": 45,
        "chunkSize": 4000,
        "termCap": 5,
        "rates": {
            "gpt-4o-mini": {"inputPerMTok": 0.15, "outputPerMTok": 0.6}
        }
    }`
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(validConfig), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() with valid config failed: %v", err)
	}
	if cfg.RequestTimeout() != 45*time.Second {
		t.Fatalf("expected 45s timeout, got %v", cfg.RequestTimeout())
	}
	if cfg.MaxChunkSize() != 4000 {
		t.Fatalf("expected chunk size 4000, got %d", cfg.MaxChunkSize())
	}
	if cfg.MaxTerms() != 5 {
		t.Fatalf("expected term cap 5, got %d", cfg.MaxTerms())
	}
	if cfg.ConfigPath != path {
		t.Fatalf("expected config path %q recorded, got %q", path, cfg.ConfigPath)
	}

	invalidPath := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(invalidPath, []byte(`{"chunkSize": `), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalidPath); err == nil {
		t.Fatal("expected error for invalid JSON")
	}

	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("expected error for explicitly named missing file")
	}

	defaultCfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() with no file at the default path must fall back to defaults: %v", err)
	}
	if defaultCfg.MaxTerms() != 8 {
		t.Fatalf("expected default term cap, got %d", defaultCfg.MaxTerms())
	}
}

func TestDefaults(t *testing.T) {
	var cfg Config

	if cfg.RequestTimeout() != 120*time.Second {
		t.Fatalf("expected default timeout 120s, got %v", cfg.RequestTimeout())
	}
	if cfg.MaxChunkSize() != 8000 {
		t.Fatalf("expected default chunk size 8000, got %d", cfg.MaxChunkSize())
	}
	if cfg.OverlapSize() != 0 {
		t.Fatalf("expected default overlap 0, got %d", cfg.OverlapSize())
	}
	if cfg.MaxTerms() != 8 {
		t.Fatalf("expected default term cap 8, got %d", cfg.MaxTerms())
	}
	if cfg.ExtractModelName() != "gpt-4o-mini" {
		t.Fatalf("unexpected default extract model %q", cfg.ExtractModelName())
	}
	if cfg.DefineModelName() != "gpt-4o" {
		t.Fatalf("unexpected default define model %q", cfg.DefineModelName())
	}
}

func TestOverlapClamping(t *testing.T) {
	cfg := Config{ChunkSize: 1000, ChunkOverlap: 5000}
	if cfg.OverlapSize() != 500 {
		t.Fatalf("expected oversized overlap clamped to 500, got %d", cfg.OverlapSize())
	}
	cfg = Config{ChunkOverlap: -3}
	if cfg.OverlapSize() != 0 {
		t.Fatalf("expected negative overlap clamped to 0, got %d", cfg.OverlapSize())
	}
}

func TestRateFor(t *testing.T) {
	cfg := Config{Rates: map[string]ModelRate{
		"custom-model": {InputPerMTok: 1, OutputPerMTok: 2},
		"gpt-4o-mini":  {InputPerMTok: 9, OutputPerMTok: 9},
	}}

	if got := cfg.RateFor("custom-model"); got.InputPerMTok != 1 {
		t.Fatalf("expected config rate for custom model, got %+v", got)
	}
	// Config-file rates win over built-in defaults.
	if got := cfg.RateFor("gpt-4o-mini"); got.InputPerMTok != 9 {
		t.Fatalf("expected override rate, got %+v", got)
	}
	if got := (Config{}).RateFor("gpt-4o"); got.InputPerMTok == 0 {
		t.Fatalf("expected built-in rate for gpt-4o, got %+v", got)
	}
	if got := (Config{}).RateFor("unpriced"); got != (ModelRate{}) {
		t.Fatalf("expected zero rate for unknown model, got %+v", got)
	}
}

func TestResolveAPIKey(t *testing.T) {
	cfg := Config{APIKey: " file-key "}
	if cfg.ResolveAPIKey() != "file-key" {
		t.Fatalf("expected trimmed file key, got %q", cfg.ResolveAPIKey())
	}

	t.Setenv("OPENAI_API_KEY", "env-key")
	if (Config{}).ResolveAPIKey() != "env-key" {
		t.Fatal("expected env fallback for API key")
	}
}
