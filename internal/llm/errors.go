package llm

import (
	"fmt"
	"time"
)

// ErrModelUnavailable indicates the model is disabled, down, or unreachable.
type ErrModelUnavailable struct {
	Err error
}

func (e *ErrModelUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("model unavailable: %v", e.Err)
	}
	return "model unavailable"
}

func (e *ErrModelUnavailable) Unwrap() error { return e.Err }

// ErrParse indicates the model responded but the response lacked the
// expected content (a score integer, a question id).
type ErrParse struct {
	Want string // what the caller was scanning for
	Text string // the raw response text
}

func (e *ErrParse) Error() string {
	return fmt.Sprintf("model response missing %s", e.Want)
}

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }
