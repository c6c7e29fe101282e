// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// legacyConfigPath is the path to the configuration file used in previous versions.
	legacyConfigPath = "config.json"
	// defaultRequestTimeout is the default timeout for a single provider call.
	defaultRequestTimeout = 120 * time.Second
	// defaultChunkSize is the maximum chunk length in characters.
	defaultChunkSize = 8000
	// defaultTermCap bounds the final glossary size.
	defaultTermCap = 8
	// defaultExtractModel is the cheaper model used for term extraction.
	defaultExtractModel = "gpt-4o-mini"
	// defaultDefineModel is the stronger model used for definitions.
	defaultDefineModel = "gpt-4o"
	// apiKeyEnvVar is consulted when the config file carries no key.
	apiKeyEnvVar = "OPENAI_API_KEY"
)

// ModelRate holds per-million-token pricing for one model.
type ModelRate struct {
	InputPerMTok  float64 `json:"inputPerMTok"`
	OutputPerMTok float64 `json:"outputPerMTok"`
}

// Config represents the top-level application configuration.
type Config struct {
	APIKey         string               `json:"apiKey,omitempty"`
	BaseURL        string               `json:"baseURL,omitempty"`
	ExtractModel   string               `json:"extractModel,omitempty"`
	DefineModel    string               `json:"defineModel,omitempty"`
	TimeoutSeconds int                  `json:"timeout,omitempty"`
	ChunkSize      int                  `json:"chunkSize,omitempty"`
	ChunkOverlap   int                  `json:"chunkOverlap,omitempty"`
	TermCap        int                  `json:"termCap,omitempty"`
	Rates          map[string]ModelRate `json:"rates,omitempty"`
	DocLinks       map[string]string    `json:"docLinks,omitempty"`
	Debug          bool                 `json:"debug"`
	NoProgress     bool                 `json:"noProgress"`
	LogFile        string               `json:"logFile,omitempty"`
	ConfigPath     string               `json:"-"`
}

// defaultRates mirrors published per-million-token pricing for the default
// models. Config-file rates override these per model.
var defaultRates = map[string]ModelRate{
	defaultExtractModel: {InputPerMTok: 0.15, OutputPerMTok: 0.60},
	defaultDefineModel:  {InputPerMTok: 2.50, OutputPerMTok: 10.00},
}

// RequestTimeout returns the timeout for one provider call, falling back to
// the default if not specified.
func (c Config) RequestTimeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultRequestTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// MaxChunkSize returns the chunk size ceiling in characters.
func (c Config) MaxChunkSize() int {
	if c.ChunkSize <= 0 {
		return defaultChunkSize
	}
	return c.ChunkSize
}

// OverlapSize returns the configured chunk overlap in characters, clamped to
// a non-negative value below the chunk size.
func (c Config) OverlapSize() int {
	if c.ChunkOverlap <= 0 {
		return 0
	}
	if c.ChunkOverlap >= c.MaxChunkSize() {
		return c.MaxChunkSize() / 2
	}
	return c.ChunkOverlap
}

// MaxTerms returns the glossary term cap.
func (c Config) MaxTerms() int {
	if c.TermCap <= 0 {
		return defaultTermCap
	}
	return c.TermCap
}

// ExtractModelName returns the model used for extraction calls.
func (c Config) ExtractModelName() string {
	if m := strings.TrimSpace(c.ExtractModel); m != "" {
		return m
	}
	return defaultExtractModel
}

// DefineModelName returns the model used for definition calls.
func (c Config) DefineModelName() string {
	if m := strings.TrimSpace(c.DefineModel); m != "" {
		return m
	}
	return defaultDefineModel
}

// RateFor resolves the per-token pricing for a model, preferring config-file
// rates over the built-in defaults. Unknown models price at zero so the cost
// estimate degrades to a token count rather than failing.
func (c Config) RateFor(model string) ModelRate {
	if rate, ok := c.Rates[model]; ok {
		return rate
	}
	if rate, ok := defaultRates[model]; ok {
		return rate
	}
	return ModelRate{}
}

// LogFilePath returns the path to the application log file, or empty for
// stderr-only logging.
func (c Config) LogFilePath() string {
	return strings.TrimSpace(c.LogFile)
}

// ResolveAPIKey returns the configured API key, falling back to the
// environment. An empty result is a permanent configuration error for any
// command that reaches the provider.
func (c Config) ResolveAPIKey() string {
	if k := strings.TrimSpace(c.APIKey); k != "" {
		return k
	}
	return strings.TrimSpace(os.Getenv(apiKeyEnvVar))
}

// Load reads the application configuration from the specified path, with
// fallback to a legacy path. A missing file is not an error: glossgen runs
// fine on defaults plus flags.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err == nil {
		config.ConfigPath = path
		return config, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		if path == DefaultConfigPath {
			config, legacyErr := loadFromPath(legacyConfigPath)
			if legacyErr == nil {
				config.ConfigPath = legacyConfigPath
				return config, nil
			}
			if errors.Is(legacyErr, os.ErrNotExist) {
				return Config{}, nil
			}
			return Config{}, fmt.Errorf("could not read config file %q: %w", legacyConfigPath, legacyErr)
		}
		return Config{}, fmt.Errorf("no configuration file found at %q", path)
	}

	return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
}

// loadFromPath is a helper function that loads the configuration from a specific file path.
func loadFromPath(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return Config{}, err
	}
	return config, nil
}
