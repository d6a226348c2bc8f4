package selection

import "time"

// Config holds model-guided selection configuration.
type Config struct {
	// MaxTokens caps the selection response; the model only needs to
	// name an id.
	MaxTokens int

	// Temperature for selection calls.
	Temperature float64

	// Timeout bounds each model call; on expiry the heuristic strategy
	// takes over.
	Timeout time.Duration

	// TruncateAt limits question text length in the candidate prompt.
	TruncateAt int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   64,
		Temperature: 0.4,
		Timeout:     30 * time.Second,
		TruncateAt:  100,
	}
}
