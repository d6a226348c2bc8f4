package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

type sessionRepo struct {
	db *sql.DB
}

func (r *sessionRepo) CreateSession(ctx context.Context, rec SessionRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (id, role, difficulty, total_questions, started_at)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.Role, rec.Difficulty, rec.TotalQuestions, rec.StartedAt)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *sessionRepo) AppendAnswer(ctx context.Context, rec AnswerRecord) error {
	matched, err := json.Marshal(rec.MatchedKeywords)
	if err != nil {
		return fmt.Errorf("marshal matched keywords: %w", err)
	}
	missed, err := json.Marshal(rec.MissedKeywords)
	if err != nil {
		return fmt.Errorf("marshal missed keywords: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO answers (session_id, question_id, topic, answer_text, score,
		     keyword_score, word_count, matched_keywords, missed_keywords,
		     feedback, method, selection_method, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.SessionID, rec.QuestionID, rec.Topic, rec.AnswerText, rec.Score,
		rec.KeywordScore, rec.WordCount, string(matched), string(missed),
		rec.Feedback, rec.Method, rec.SelectionMethod, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert answer: %w", err)
	}
	return nil
}

func (r *sessionRepo) SaveFeedback(ctx context.Context, rec FeedbackRecord) error {
	topicScores, err := json.Marshal(rec.TopicScores)
	if err != nil {
		return fmt.Errorf("marshal topic scores: %w", err)
	}
	strengths, err := json.Marshal(rec.Strengths)
	if err != nil {
		return fmt.Errorf("marshal strengths: %w", err)
	}
	weaknesses, err := json.Marshal(rec.Weaknesses)
	if err != nil {
		return fmt.Errorf("marshal weaknesses: %w", err)
	}
	recommendations, err := json.Marshal(rec.Recommendations)
	if err != nil {
		return fmt.Errorf("marshal recommendations: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO session_feedback (session_id, overall_score, readiness_score,
		     topic_scores, strengths, weaknesses, recommendations, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.SessionID, rec.OverallScore, rec.ReadinessScore,
		string(topicScores), string(strengths), string(weaknesses),
		string(recommendations), rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert session feedback: %w", err)
	}
	return nil
}

func (r *sessionRepo) CompleteSession(ctx context.Context, sessionID string, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE sessions SET completed_at = ? WHERE id = ?`, at, sessionID)
	if err != nil {
		return fmt.Errorf("complete session: %w", err)
	}
	return nil
}

func (r *sessionRepo) SessionAnswers(ctx context.Context, sessionID string) ([]AnswerRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT session_id, question_id, topic, answer_text, score,
		        keyword_score, word_count, matched_keywords, missed_keywords,
		        feedback, method, selection_method, created_at
		 FROM answers WHERE session_id = ? ORDER BY id`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}
	defer rows.Close()

	var out []AnswerRecord
	for rows.Next() {
		var rec AnswerRecord
		var matched, missed string
		if err := rows.Scan(&rec.SessionID, &rec.QuestionID, &rec.Topic,
			&rec.AnswerText, &rec.Score, &rec.KeywordScore, &rec.WordCount,
			&matched, &missed, &rec.Feedback, &rec.Method,
			&rec.SelectionMethod, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		if err := json.Unmarshal([]byte(matched), &rec.MatchedKeywords); err != nil {
			return nil, fmt.Errorf("unmarshal matched keywords: %w", err)
		}
		if err := json.Unmarshal([]byte(missed), &rec.MissedKeywords); err != nil {
			return nil, fmt.Errorf("unmarshal missed keywords: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *sessionRepo) RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, role, difficulty, total_questions, started_at, completed_at
		 FROM sessions ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		if err := rows.Scan(&rec.ID, &rec.Role, &rec.Difficulty,
			&rec.TotalQuestions, &rec.StartedAt, &rec.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
