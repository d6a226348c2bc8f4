package store

// schemaDDL creates the persistence tables. Keyword lists and topic
// maps are stored as JSON text; they are read back only for reporting.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS sessions (
		id              TEXT PRIMARY KEY,
		role            TEXT NOT NULL,
		difficulty      TEXT NOT NULL,
		total_questions INTEGER NOT NULL,
		started_at      TIMESTAMP NOT NULL,
		completed_at    TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS answers (
		id               INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id       TEXT NOT NULL REFERENCES sessions(id),
		question_id      TEXT NOT NULL,
		topic            TEXT NOT NULL,
		answer_text      TEXT NOT NULL,
		score            INTEGER,
		keyword_score    INTEGER NOT NULL,
		word_count       INTEGER NOT NULL,
		matched_keywords TEXT NOT NULL,
		missed_keywords  TEXT NOT NULL,
		feedback         TEXT NOT NULL,
		method           TEXT NOT NULL,
		selection_method TEXT NOT NULL,
		created_at       TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_answers_session ON answers(session_id)`,
	`CREATE TABLE IF NOT EXISTS session_feedback (
		session_id      TEXT PRIMARY KEY REFERENCES sessions(id),
		overall_score   INTEGER NOT NULL,
		readiness_score INTEGER NOT NULL,
		topic_scores    TEXT NOT NULL,
		strengths       TEXT NOT NULL,
		weaknesses      TEXT NOT NULL,
		recommendations TEXT NOT NULL,
		created_at      TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS model_call_events (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		provider      TEXT NOT NULL,
		model         TEXT NOT NULL,
		purpose       TEXT NOT NULL,
		input_tokens  INTEGER NOT NULL,
		output_tokens INTEGER NOT NULL,
		latency_ms    INTEGER NOT NULL,
		success       INTEGER NOT NULL,
		error_message TEXT NOT NULL DEFAULT '',
		request_body  TEXT NOT NULL DEFAULT '',
		response_body TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMP NOT NULL
	)`,
}
