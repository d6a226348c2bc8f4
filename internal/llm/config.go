package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds all model provider configuration.
type Config struct {
	// Provider selects which model provider to use.
	// Values: "openai", "anthropic", "gemini", "mock", "none"
	Provider string

	OpenAI    OpenAIConfig
	Anthropic AnthropicConfig
	Gemini    GeminiConfig
	Retry     RetryConfig

	// Timeout is the maximum duration for a single model call. A call
	// that exceeds it is abandoned and the engine falls back to the
	// heuristic path. Default: 30s.
	Timeout time.Duration
}

// OpenAIConfig holds configuration for the OpenAI-compatible provider.
// With the default BaseURL this talks to a locally hosted model served
// by Ollama; any OpenAI-compatible endpoint works.
type OpenAIConfig struct {
	APIKey  string // optional for local endpoints
	Model   string // Default: "llama3.2"
	BaseURL string // Default: "http://localhost:11434/v1"
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// RetryConfig configures retry behavior for transient failures.
// The engine runs with MaxAttempts=1 — a failed model call fails fast
// once per request and the heuristic path takes over.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "openai",
		OpenAI: OpenAIConfig{
			Model:   "llama3.2",
			BaseURL: "http://localhost:11434/v1",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		Retry: RetryConfig{
			MaxAttempts: 1,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("MOCKMATE_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}

	if k := os.Getenv("MOCKMATE_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("MOCKMATE_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("MOCKMATE_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if k := os.Getenv("MOCKMATE_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("MOCKMATE_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	if k := os.Getenv("MOCKMATE_GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("MOCKMATE_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	if t := os.Getenv("MOCKMATE_LLM_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			cfg.Timeout = d
		}
	}

	return cfg
}

// Disabled reports whether the configuration names no usable provider.
// The engine remains fully functional without one.
func (c Config) Disabled() bool {
	return c.Provider == "" || c.Provider == "none"
}

// Validate checks that the selected provider has its required API key set.
// The openai provider accepts an empty key for local endpoints.
func (c Config) Validate() error {
	switch c.Provider {
	case "openai", "mock", "none", "":
		// No API key needed.
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("MOCKMATE_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("MOCKMATE_GEMINI_API_KEY is required for the gemini provider")
		}
	default:
		return fmt.Errorf("unknown model provider: %q", c.Provider)
	}
	return nil
}
