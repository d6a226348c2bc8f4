package llm

import "context"

// Provider is the core abstraction for model interaction.
// Consumers call Complete with a prompt and receive free text back.
// No structured output is assumed: callers own all parsing of the
// returned text and must be defensive against extraneous prose.
type Provider interface {
	// Complete sends a prompt to the model and returns its raw text
	// response. Blocking; honors ctx cancellation and deadlines.
	Complete(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the system prompt. Sets the model's role and constraints.
	System string

	// Prompt is the user message. Mockmate only ever does single-turn
	// completions; there is no conversation history.
	Prompt string

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Default: 0.0 (deterministic) when not set.
	Temperature float64
}

// Response holds the model's output.
type Response struct {
	// Text is the raw generated text, trimmed of surrounding whitespace.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
