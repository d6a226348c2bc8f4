package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastRetryConfig(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_SucceedsFirstAttempt(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "ok"})
	p := WithRetry(mock, fastRetryConfig(3))

	resp, err := p.Complete(context.Background(), Request{Prompt: "hi"})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if resp.Text != "ok" {
		t.Errorf("Text = %q, want ok", resp.Text)
	}
	if mock.CallCount() != 1 {
		t.Errorf("CallCount = %d, want 1", mock.CallCount())
	}
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrModelUnavailable{Err: errors.New("connection refused")}},
		MockResponse{Text: "recovered"},
	)
	p := WithRetry(mock, fastRetryConfig(3))

	resp, err := p.Complete(context.Background(), Request{Prompt: "hi"})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if resp.Text != "recovered" {
		t.Errorf("Text = %q, want recovered", resp.Text)
	}
	if mock.CallCount() != 2 {
		t.Errorf("CallCount = %d, want 2", mock.CallCount())
	}
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	transient := &ErrModelUnavailable{Err: errors.New("down")}
	mock := NewMockProvider(
		MockResponse{Err: transient},
		MockResponse{Err: transient},
		MockResponse{Err: transient},
	)
	p := WithRetry(mock, fastRetryConfig(3))

	_, err := p.Complete(context.Background(), Request{Prompt: "hi"})
	if err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	if mock.CallCount() != 3 {
		t.Errorf("CallCount = %d, want 3", mock.CallCount())
	}
}

func TestRetry_SingleAttemptFailsFast(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrModelUnavailable{}},
		MockResponse{Text: "never reached"},
	)
	p := WithRetry(mock, fastRetryConfig(1))

	_, err := p.Complete(context.Background(), Request{Prompt: "hi"})
	if err == nil {
		t.Fatal("expected error with MaxAttempts=1")
	}
	if mock.CallCount() != 1 {
		t.Errorf("CallCount = %d, want exactly 1", mock.CallCount())
	}
}

func TestRetry_ParseErrorNotRetried(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrParse{Want: "a score"}},
		MockResponse{Text: "42"},
	)
	p := WithRetry(mock, fastRetryConfig(3))

	_, err := p.Complete(context.Background(), Request{Prompt: "hi"})
	var parseErr *ErrParse
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %v, want *ErrParse", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("CallCount = %d, parse failures must not be retried", mock.CallCount())
	}
}

func TestRetry_ContextErrorNotRetried(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: context.DeadlineExceeded},
		MockResponse{Text: "never reached"},
	)
	p := WithRetry(mock, fastRetryConfig(3))

	_, err := p.Complete(context.Background(), Request{Prompt: "hi"})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("error = %v, want context.DeadlineExceeded", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("CallCount = %d, context errors must not be retried", mock.CallCount())
	}
}

func TestShouldRetry(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"unavailable", &ErrModelUnavailable{}, true},
		{"rate limit", &ErrRateLimit{RetryAfter: time.Second}, true},
		{"generic network", errors.New("broken pipe"), true},
		{"parse", &ErrParse{Want: "a score"}, false},
		{"canceled", context.Canceled, false},
		{"deadline", context.DeadlineExceeded, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shouldRetry(tt.err); got != tt.want {
				t.Errorf("shouldRetry(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestRetry_BackoffHonorsRetryAfter(t *testing.T) {
	r := &RetryProvider{config: fastRetryConfig(3)}

	wait := r.backoff(0, &ErrRateLimit{RetryAfter: 42 * time.Millisecond})
	if wait != 42*time.Millisecond {
		t.Errorf("backoff = %v, want the rate limit's RetryAfter", wait)
	}
}

func TestConfigDisabled(t *testing.T) {
	for _, provider := range []string{"", "none"} {
		cfg := Config{Provider: provider}
		if !cfg.Disabled() {
			t.Errorf("Provider %q should be disabled", provider)
		}
	}
	cfg := Config{Provider: "openai"}
	if cfg.Disabled() {
		t.Error("openai provider reported disabled")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}

	cfg.Provider = "anthropic"
	if err := cfg.Validate(); err == nil {
		t.Error("anthropic without API key should fail validation")
	}
	cfg.Anthropic.APIKey = "key"
	if err := cfg.Validate(); err != nil {
		t.Errorf("anthropic with API key invalid: %v", err)
	}

	cfg.Provider = "carrier-pigeon"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown provider should fail validation")
	}
}
