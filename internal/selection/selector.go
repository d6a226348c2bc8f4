package selection

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/mockmate/internal/bank"
	"github.com/abhisek/mockmate/internal/llm"
)

// Selector chooses the next question for a session. Strategies are
// tried in order — model pick, topic/difficulty heuristic, uniform
// random — and the first success wins.
type Selector struct {
	store      *bank.Store
	strategies []strategy
}

// Option configures a Selector.
type Option func(*selectorParams)

type selectorParams struct {
	randIntn func(n int) int
}

// WithRand injects the random source used for tie-breaking picks.
func WithRand(randIntn func(n int) int) Option {
	return func(p *selectorParams) { p.randIntn = randIntn }
}

// NewSelector creates a Selector over the question store. provider may
// be nil; selection then starts at the heuristic strategy.
func NewSelector(store *bank.Store, provider llm.Provider, cfg Config, opts ...Option) *Selector {
	params := &selectorParams{randIntn: rand.IntN}
	for _, opt := range opts {
		opt(params)
	}

	return &Selector{
		store: store,
		strategies: []strategy{
			&modelStrategy{provider: provider, cfg: cfg},
			&heuristicStrategy{topics: store.TopicsCovered, randIntn: params.randIntn},
			&randomStrategy{randIntn: params.randIntn},
		},
	}
}

// SelectNext chooses the next question. Returns (nil, nil) when no
// questions remain for the role at all, across any difficulty — a
// defined terminal outcome, not an error.
func (s *Selector) SelectNext(ctx context.Context, sctx Context) (*Result, error) {
	candidates, relaxed, err := s.candidatePool(sctx)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	in := attemptInput{sctx: sctx, candidates: candidates, relaxed: relaxed}
	for _, strat := range s.strategies {
		if result, ok := strat.attempt(ctx, in); ok {
			return result, nil
		}
	}

	// Unreachable: the random strategy never declines on a non-empty pool.
	return nil, fmt.Errorf("no selection strategy produced a result")
}

// SelectForSession pre-selects up to count questions, excluding each
// pick from the next round. Scores are unknown at pre-selection time,
// so no performance history accumulates. Stops early when the pool is
// exhausted.
func (s *Selector) SelectForSession(ctx context.Context, sctx Context, count int) ([]Result, error) {
	answered := make(map[string]bool, len(sctx.AnsweredIDs)+count)
	for id := range sctx.AnsweredIDs {
		answered[id] = true
	}
	sctx.AnsweredIDs = answered

	var results []Result
	for range count {
		result, err := s.SelectNext(ctx, sctx)
		if err != nil {
			return nil, err
		}
		if result == nil {
			break
		}
		results = append(results, *result)
		answered[result.Question.ID] = true
	}
	return results, nil
}

// candidatePool filters by role and difficulty, relaxing to role-only
// when the difficulty band is exhausted.
func (s *Selector) candidatePool(sctx Context) ([]bank.Question, bool, error) {
	candidates, err := s.store.Filtered(bank.Filter{
		Role:       sctx.Role,
		Difficulty: sctx.Difficulty,
		ExcludeIDs: sctx.AnsweredIDs,
	})
	if err != nil {
		return nil, false, err
	}
	if len(candidates) > 0 {
		return candidates, false, nil
	}

	relaxed, err := s.store.Filtered(bank.Filter{
		Role:       sctx.Role,
		ExcludeIDs: sctx.AnsweredIDs,
	})
	if err != nil {
		return nil, false, err
	}
	return relaxed, true, nil
}
