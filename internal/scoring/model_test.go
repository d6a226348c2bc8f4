package scoring

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/mockmate/internal/bank"
	"github.com/abhisek/mockmate/internal/llm"
)

func testQuestion() *bank.Question {
	return &bank.Question{
		ID:      "js-var-scope",
		Content: "Explain the difference between var, let, and const.",
		Metadata: bank.Metadata{
			Category:         "technical",
			Role:             "frontend",
			Topic:            "javascript",
			Difficulty:       "easy",
			ExpectedKeywords: []string{"scope", "hoisting", "block"},
			TimeLimit:        120,
		},
	}
}

const testAnswer = "var is function scoped and hoisted. let and const are block scoped."

func TestEvaluateAnswer_NilProviderUsesRules(t *testing.T) {
	eval := NewEvaluator(nil, DefaultConfig())

	result, err := eval.EvaluateAnswer(context.Background(), testAnswer, testQuestion(), 0)
	if err != nil {
		t.Fatalf("EvaluateAnswer: %v", err)
	}
	if result.Method != MethodRules {
		t.Errorf("Method = %q, want %q", result.Method, MethodRules)
	}
}

func TestEvaluateAnswer_BlendsExactly(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Text: "90"})
	eval := NewEvaluator(provider, DefaultConfig())

	result, err := eval.EvaluateAnswer(context.Background(), testAnswer, testQuestion(), 0)
	if err != nil {
		t.Fatalf("EvaluateAnswer: %v", err)
	}
	if result.Method != MethodBlended {
		t.Errorf("Method = %q, want %q", result.Method, MethodBlended)
	}

	rules := EvaluateRules(testAnswer, testQuestion().Metadata.ExpectedKeywords, "")
	want := blend(90, rules.Score)
	if result.Score != want {
		t.Errorf("Score = %d, want round(0.5*90 + 0.5*%d) = %d", result.Score, rules.Score, want)
	}
	// Qualitative fields stay heuristic.
	if result.Feedback != rules.Feedback {
		t.Errorf("Feedback changed by blending: %q vs %q", result.Feedback, rules.Feedback)
	}
	if result.KeywordScore != rules.KeywordScore {
		t.Errorf("KeywordScore changed by blending: %d vs %d", result.KeywordScore, rules.KeywordScore)
	}
}

func TestBlend(t *testing.T) {
	tests := []struct {
		model, rule, want int
	}{
		{90, 56, 73},
		{0, 0, 0},
		{100, 100, 100},
		{71, 56, 64}, // 63.5 rounds up
		{0, 1, 1},    // 0.5 rounds up
	}
	for _, tt := range tests {
		if got := blend(tt.model, tt.rule); got != tt.want {
			t.Errorf("blend(%d, %d) = %d, want %d", tt.model, tt.rule, got, tt.want)
		}
	}
}

func TestEvaluateAnswer_ModelErrorFallsBack(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrModelUnavailable{}})
	eval := NewEvaluator(provider, DefaultConfig())

	result, err := eval.EvaluateAnswer(context.Background(), testAnswer, testQuestion(), 0)
	if err != nil {
		t.Fatalf("EvaluateAnswer: %v", err)
	}
	if result.Method != MethodFallback {
		t.Errorf("Method = %q, want %q", result.Method, MethodFallback)
	}

	rules := EvaluateRules(testAnswer, testQuestion().Metadata.ExpectedKeywords, "")
	if result.Score != rules.Score {
		t.Errorf("fallback Score = %d, want heuristic %d", result.Score, rules.Score)
	}
}

func TestEvaluateAnswer_ParseFailureFallsBack(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Text: "a thoughtful answer, hard to say"})
	eval := NewEvaluator(provider, DefaultConfig())

	result, err := eval.EvaluateAnswer(context.Background(), testAnswer, testQuestion(), 0)
	if err != nil {
		t.Fatalf("EvaluateAnswer: %v", err)
	}
	if result.Method != MethodFallback {
		t.Errorf("Method = %q, want %q", result.Method, MethodFallback)
	}
}

func TestEvaluateAnswer_FallbackDisabledPropagatesError(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrModelUnavailable{}})
	cfg := DefaultConfig()
	cfg.Fallback = false
	eval := NewEvaluator(provider, cfg)

	_, err := eval.EvaluateAnswer(context.Background(), testAnswer, testQuestion(), 0)
	if err == nil {
		t.Fatal("expected error with fallback disabled, got nil")
	}
}

// blockingProvider hangs until its context expires, simulating a model
// that never responds within the timeout.
type blockingProvider struct{}

func (blockingProvider) Complete(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingProvider) ModelID() string { return "blocking" }

func TestEvaluateAnswer_TimeoutFallsBack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timeout = 10 * time.Millisecond
	eval := NewEvaluator(blockingProvider{}, cfg)

	done := make(chan struct{})
	var result *Result
	var err error
	go func() {
		result, err = eval.EvaluateAnswer(context.Background(), testAnswer, testQuestion(), 0)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("EvaluateAnswer hung past its timeout")
	}

	if err != nil {
		t.Fatalf("EvaluateAnswer: %v", err)
	}
	if result.Method != MethodFallback {
		t.Errorf("Method = %q, want %q", result.Method, MethodFallback)
	}
}
