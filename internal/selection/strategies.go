package selection

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/abhisek/mockmate/internal/bank"
	"github.com/abhisek/mockmate/internal/llm"
)

// attemptInput is what each strategy sees: the session context, the
// candidate pool, and whether the pool came from the relaxed filter
// (difficulty dropped).
type attemptInput struct {
	sctx       Context
	candidates []bank.Question
	relaxed    bool
}

// strategy is one selection attempt: a terminal success or a
// fall-through to the next strategy in order.
type strategy interface {
	name() string
	attempt(ctx context.Context, in attemptInput) (*Result, bool)
}

// modelStrategy asks the model to pick from the candidate list. Any
// failure (timeout, transport, unparseable response) declines; selection
// falls through to the heuristic. Logged, never fatal.
type modelStrategy struct {
	provider llm.Provider
	cfg      Config
}

func (s *modelStrategy) name() string { return "model" }

func (s *modelStrategy) attempt(ctx context.Context, in attemptInput) (*Result, bool) {
	if s.provider == nil {
		return nil, false
	}

	ctx = llm.WithPurpose(ctx, "question-selection")
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	resp, err := s.provider.Complete(ctx, llm.Request{
		System:      selectionSystemPrompt,
		Prompt:      buildSelectionPrompt(in.sctx, in.candidates, s.cfg.TruncateAt),
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: model selection failed, falling back: %v\n", err)
		return nil, false
	}

	id, err := parseSelectedID(resp.Text, in.candidates)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v, falling back\n", err)
		return nil, false
	}

	for _, q := range in.candidates {
		if q.ID == id {
			return &Result{
				Question:  q,
				Reasoning: fmt.Sprintf("model picked %s for role %s", id, in.sctx.Role),
				Method:    MethodAI,
			}, true
		}
	}
	return nil, false
}

// heuristicStrategy prefers uncovered topics and orders candidates by a
// difficulty preference derived from recent performance, then picks
// uniformly among the top three. It declines only when the pool is the
// relaxed one and there is no performance history to apply — batch
// pre-selection with an exhausted difficulty band — leaving the pick to
// the random strategy.
type heuristicStrategy struct {
	topics   func(ids []string) (map[string]bool, error)
	randIntn func(n int) int
}

func (s *heuristicStrategy) name() string { return "heuristic" }

func (s *heuristicStrategy) attempt(_ context.Context, in attemptInput) (*Result, bool) {
	if in.relaxed && len(in.sctx.RecentScores) == 0 {
		return nil, false
	}

	candidates := s.preferFreshTopics(in.sctx, in.candidates)

	order := difficultyPreference(averageScore(in.sctx.RecentScores))
	sort.SliceStable(candidates, func(i, j int) bool {
		return difficultyRank(candidates[i].Metadata.Difficulty, order) <
			difficultyRank(candidates[j].Metadata.Difficulty, order)
	})

	top := candidates
	if len(top) > 3 {
		top = top[:3]
	}
	chosen := top[s.randIntn(len(top))]

	return &Result{
		Question: chosen,
		Reasoning: fmt.Sprintf("heuristic pick: avg score %.0f prefers %s questions",
			averageScore(in.sctx.RecentScores), order[0]),
		Method: MethodFallback,
	}, true
}

// preferFreshTopics restricts candidates to topics not yet covered.
// Topic diversity is a soft preference: if it empties the set, the full
// candidate list is used instead.
func (s *heuristicStrategy) preferFreshTopics(sctx Context, candidates []bank.Question) []bank.Question {
	covered, err := s.topics(setToSlice(sctx.AnsweredIDs))
	if err != nil || len(covered) == 0 {
		return append([]bank.Question(nil), candidates...)
	}

	var fresh []bank.Question
	for _, q := range candidates {
		if !covered[q.Metadata.Topic] {
			fresh = append(fresh, q)
		}
	}
	if len(fresh) == 0 {
		return append([]bank.Question(nil), candidates...)
	}
	return fresh
}

// randomStrategy picks uniformly from the pool. Always succeeds; the
// last rung of the fallback chain.
type randomStrategy struct {
	randIntn func(n int) int
}

func (s *randomStrategy) name() string { return "random" }

func (s *randomStrategy) attempt(_ context.Context, in attemptInput) (*Result, bool) {
	chosen := in.candidates[s.randIntn(len(in.candidates))]
	return &Result{
		Question:  chosen,
		Reasoning: "random pick from remaining pool",
		Method:    MethodRandom,
	}, true
}

// averageScore returns the mean of the scores, defaulting to 50 when
// there is no history yet.
func averageScore(scores []int) float64 {
	if len(scores) == 0 {
		return 50
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return float64(sum) / float64(len(scores))
}

// difficultyPreference maps recent performance to a difficulty order:
// strong candidates get harder questions first.
func difficultyPreference(avg float64) []bank.Difficulty {
	switch {
	case avg >= 70:
		return []bank.Difficulty{bank.DifficultyHard, bank.DifficultyMedium, bank.DifficultyEasy}
	case avg >= 50:
		return []bank.Difficulty{bank.DifficultyMedium, bank.DifficultyEasy, bank.DifficultyHard}
	default:
		return []bank.Difficulty{bank.DifficultyEasy, bank.DifficultyMedium, bank.DifficultyHard}
	}
}

func difficultyRank(d bank.Difficulty, order []bank.Difficulty) int {
	for i, o := range order {
		if o == d {
			return i
		}
	}
	return len(order)
}

func setToSlice(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}
