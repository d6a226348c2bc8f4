// Package session orchestrates a mock interview: question selection,
// answer evaluation, and persistence, repeated until the question
// budget is exhausted, then the final feedback rollup.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mockmate/internal/bank"
	"github.com/abhisek/mockmate/internal/report"
	"github.com/abhisek/mockmate/internal/scoring"
	"github.com/abhisek/mockmate/internal/selection"
	"github.com/abhisek/mockmate/internal/store"
)

// Service runs interview sessions.
type Service struct {
	selector  *selection.Selector
	evaluator *scoring.Evaluator
	repo      store.SessionRepo
	now       func() time.Time
}

// NewService creates a session Service.
func NewService(selector *selection.Selector, evaluator *scoring.Evaluator, repo store.SessionRepo) *Service {
	return &Service{
		selector:  selector,
		evaluator: evaluator,
		repo:      repo,
		now:       time.Now,
	}
}

// Start creates and persists a new session.
func (s *Service) Start(ctx context.Context, role string, difficulty bank.Difficulty, totalQuestions int) (*State, error) {
	st := &State{
		ID:             uuid.NewString(),
		Role:           role,
		Difficulty:     difficulty,
		TotalQuestions: totalQuestions,
		AnsweredIDs:    make(map[string]bool),
		StartTime:      s.now(),
	}

	err := s.repo.CreateSession(ctx, store.SessionRecord{
		ID:             st.ID,
		Role:           st.Role,
		Difficulty:     string(st.Difficulty),
		TotalQuestions: st.TotalQuestions,
		StartedAt:      st.StartTime,
	})
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	return st, nil
}

// NextQuestion selects the next question and marks it pending.
// Returns (nil, nil) when the budget is exhausted or no questions
// remain for the role — the signal to finish the session.
func (s *Service) NextQuestion(ctx context.Context, st *State) (*selection.Result, error) {
	if st.Exhausted() {
		return nil, nil
	}

	result, err := s.selector.SelectNext(ctx, st.context())
	if err != nil {
		return nil, fmt.Errorf("select next question: %w", err)
	}
	if result == nil {
		return nil, nil
	}

	st.Pending = result
	st.PendingShownAt = s.now()
	return result, nil
}

// SubmitAnswer evaluates the answer to the pending question, persists
// the result, and updates the session history.
func (s *Service) SubmitAnswer(ctx context.Context, st *State, answer string) (*scoring.Result, error) {
	if st.Pending == nil {
		return nil, fmt.Errorf("no pending question")
	}

	q := st.Pending.Question
	timeTaken := s.now().Sub(st.PendingShownAt)

	result, err := s.evaluator.EvaluateAnswer(ctx, answer, &q, timeTaken)
	if err != nil {
		return nil, fmt.Errorf("evaluate answer: %w", err)
	}

	score := result.Score
	rec := store.AnswerRecord{
		SessionID:       st.ID,
		QuestionID:      q.ID,
		Topic:           q.Metadata.Topic,
		AnswerText:      answer,
		Score:           &score,
		KeywordScore:    result.KeywordScore,
		WordCount:       result.WordCount,
		MatchedKeywords: result.MatchedKeywords,
		MissedKeywords:  result.MissedKeywords,
		Feedback:        result.Feedback,
		Method:          string(result.Method),
		SelectionMethod: string(st.Pending.Method),
		CreatedAt:       s.now(),
	}
	if err := s.repo.AppendAnswer(ctx, rec); err != nil {
		return nil, fmt.Errorf("persist answer: %w", err)
	}

	st.AnsweredIDs[q.ID] = true
	st.RecentScores = append(st.RecentScores, result.Score)
	st.Answers = append(st.Answers, report.Answer{
		Topic: q.Metadata.Topic,
		Score: &score,
	})
	st.Pending = nil

	return result, nil
}

// Finish aggregates the session into final feedback and persists it.
func (s *Service) Finish(ctx context.Context, st *State) (*report.Feedback, error) {
	fb := report.Aggregate(st.Answers)

	now := s.now()
	err := s.repo.SaveFeedback(ctx, store.FeedbackRecord{
		SessionID:       st.ID,
		OverallScore:    fb.OverallScore,
		ReadinessScore:  fb.ReadinessScore,
		TopicScores:     fb.TopicScores,
		Strengths:       fb.Strengths,
		Weaknesses:      fb.Weaknesses,
		Recommendations: fb.Recommendations,
		CreatedAt:       now,
	})
	if err != nil {
		return nil, fmt.Errorf("persist session feedback: %w", err)
	}

	if err := s.repo.CompleteSession(ctx, st.ID, now); err != nil {
		return nil, fmt.Errorf("complete session: %w", err)
	}

	return fb, nil
}
