package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendModelCall(ctx context.Context, data ModelCallEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO model_call_events (provider, model, purpose, input_tokens,
		     output_tokens, latency_ms, success, error_message, request_body,
		     response_body, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		data.Provider, data.Model, data.Purpose, data.InputTokens,
		data.OutputTokens, data.LatencyMs, data.Success, data.ErrorMessage,
		data.RequestBody, data.ResponseBody, time.Now())
	if err != nil {
		return fmt.Errorf("insert model call event: %w", err)
	}
	return nil
}

func (r *eventRepo) UsageByPurpose(ctx context.Context) ([]ModelUsageStats, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT purpose,
		        COUNT(*),
		        SUM(CASE WHEN success = 0 THEN 1 ELSE 0 END),
		        COALESCE(SUM(input_tokens), 0),
		        COALESCE(SUM(output_tokens), 0),
		        COALESCE(CAST(AVG(latency_ms) AS INTEGER), 0)
		 FROM model_call_events GROUP BY purpose ORDER BY purpose`)
	if err != nil {
		return nil, fmt.Errorf("query model usage: %w", err)
	}
	defer rows.Close()

	var out []ModelUsageStats
	for rows.Next() {
		var s ModelUsageStats
		if err := rows.Scan(&s.Purpose, &s.Calls, &s.Failures,
			&s.InputTokens, &s.OutputTokens, &s.AvgLatencyMs); err != nil {
			return nil, fmt.Errorf("scan model usage: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
