package store

import (
	"context"
	"time"
)

// SessionRecord is one persisted interview session.
type SessionRecord struct {
	ID             string
	Role           string
	Difficulty     string
	TotalQuestions int
	StartedAt      time.Time
	CompletedAt    *time.Time
}

// AnswerRecord is one persisted answer with its evaluation and the
// provenance of the question that prompted it.
type AnswerRecord struct {
	SessionID       string
	QuestionID      string
	Topic           string
	AnswerText      string
	Score           *int
	KeywordScore    int
	WordCount       int
	MatchedKeywords []string
	MissedKeywords  []string
	Feedback        string
	Method          string
	SelectionMethod string
	CreatedAt       time.Time
}

// FeedbackRecord is the persisted end-of-session rollup.
type FeedbackRecord struct {
	SessionID       string
	OverallScore    int
	ReadinessScore  int
	TopicScores     map[string]int
	Strengths       []string
	Weaknesses      []string
	Recommendations []string
	CreatedAt       time.Time
}

// SessionRepo persists sessions, answers, and session feedback.
type SessionRepo interface {
	// CreateSession inserts a new session row.
	CreateSession(ctx context.Context, rec SessionRecord) error

	// AppendAnswer inserts an answer row.
	AppendAnswer(ctx context.Context, rec AnswerRecord) error

	// SaveFeedback inserts the session's final feedback rollup.
	SaveFeedback(ctx context.Context, rec FeedbackRecord) error

	// CompleteSession stamps the session's completion time.
	CompleteSession(ctx context.Context, sessionID string, at time.Time) error

	// SessionAnswers returns all answers for a session in insert order.
	SessionAnswers(ctx context.Context, sessionID string) ([]AnswerRecord, error)

	// RecentSessions returns the most recent sessions, newest first.
	RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error)
}

// ModelCallEventData captures one model API call for observability.
type ModelCallEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// ModelUsageStats aggregates model calls by purpose.
type ModelUsageStats struct {
	Purpose      string
	Calls        int
	Failures     int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to model call events.
type EventRepo interface {
	// AppendModelCall records a model API call event.
	AppendModelCall(ctx context.Context, data ModelCallEventData) error

	// UsageByPurpose aggregates recorded calls per purpose label.
	UsageByPurpose(ctx context.Context) ([]ModelUsageStats, error)
}
