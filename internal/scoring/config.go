package scoring

import "time"

// Config holds model evaluation configuration.
type Config struct {
	// MaxTokens caps the scoring response. The model only needs to emit
	// a number, so this stays small.
	MaxTokens int

	// Temperature for scoring calls. Low for consistency.
	Temperature float64

	// Timeout bounds each model call. A call that exceeds it is
	// abandoned and the heuristic result is used.
	Timeout time.Duration

	// Fallback controls failure policy: when true (the default), any
	// model error yields the heuristic result tagged as a fallback;
	// when false, model errors propagate to the caller.
	Fallback bool
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   64,
		Temperature: 0.2,
		Timeout:     30 * time.Second,
		Fallback:    true,
	}
}
