package scoring

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/abhisek/mockmate/internal/bank"
	"github.com/abhisek/mockmate/internal/llm"
)

const scoringSystemPrompt = `You are an experienced technical interviewer scoring a candidate's answer.
Respond with a single integer from 0 to 100 representing the answer's quality. Respond with the number only.`

// Evaluator scores answers, blending an optional model score with the
// deterministic heuristic. With a nil provider it is the heuristic
// evaluator with extra steps skipped.
type Evaluator struct {
	provider llm.Provider
	cfg      Config
}

// NewEvaluator creates an Evaluator. provider may be nil, in which case
// every evaluation is pure heuristic.
func NewEvaluator(provider llm.Provider, cfg Config) *Evaluator {
	return &Evaluator{provider: provider, cfg: cfg}
}

// EvaluateAnswer scores an answer to a question. The heuristic result is
// always computed first as the baseline. When a model is available, its
// 0-100 score is blended 50/50 with the heuristic score; the qualitative
// fields stay heuristic — the model contributes only its number. Any
// model failure (timeout, transport, parse) falls back to the heuristic
// result unless fallback is disabled by configuration.
func (e *Evaluator) EvaluateAnswer(ctx context.Context, answer string, q *bank.Question, timeTaken time.Duration) (*Result, error) {
	ruleResult := EvaluateRules(answer, q.Metadata.ExpectedKeywords, q.Metadata.IdealAnswer)

	if e.provider == nil {
		return ruleResult, nil
	}

	modelScore, err := e.modelScore(ctx, answer, q, timeTaken)
	if err != nil {
		if !e.cfg.Fallback {
			return nil, fmt.Errorf("model evaluation: %w", err)
		}
		fallback := *ruleResult
		fallback.Method = MethodFallback
		return &fallback, nil
	}

	blended := *ruleResult
	blended.Score = blend(modelScore, ruleResult.Score)
	blended.Method = MethodBlended
	return &blended, nil
}

// modelScore asks the model for a 0-100 score. One attempt, bounded by
// the configured timeout; no retry — fallback handles failure.
func (e *Evaluator) modelScore(ctx context.Context, answer string, q *bank.Question, timeTaken time.Duration) (int, error) {
	ctx = llm.WithPurpose(ctx, "answer-scoring")
	ctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	resp, err := e.provider.Complete(ctx, llm.Request{
		System:      scoringSystemPrompt,
		Prompt:      buildScoringPrompt(answer, q, timeTaken),
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	})
	if err != nil {
		return 0, err
	}

	return ExtractScore(resp.Text)
}

// blend averages the model and rule scores.
func blend(modelScore, ruleScore int) int {
	return int(math.Round(0.5*float64(modelScore) + 0.5*float64(ruleScore)))
}

func buildScoringPrompt(answer string, q *bank.Question, timeTaken time.Duration) string {
	prompt := fmt.Sprintf("Question: %s\n\nCandidate's answer: %s\n", q.Content, answer)
	if q.Metadata.IdealAnswer != "" {
		prompt += fmt.Sprintf("\nReference answer: %s\n", q.Metadata.IdealAnswer)
	}
	if timeTaken > 0 {
		prompt += fmt.Sprintf("\nTime taken: %d seconds (suggested limit %d seconds)\n",
			int(timeTaken.Seconds()), q.Metadata.TimeLimit)
	}
	prompt += "\nScore the answer from 0 to 100."
	return prompt
}
