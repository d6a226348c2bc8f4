package scoring

// Method records how an evaluation was produced.
type Method string

const (
	// MethodRules: deterministic heuristic only.
	MethodRules Method = "rules"
	// MethodBlended: heuristic score averaged with the model's score.
	MethodBlended Method = "ai-blended"
	// MethodFallback: model was configured but failed; heuristic result used.
	MethodFallback Method = "fallback"
)

// Result is the evaluation of one answer. Created per request and owned
// by the caller afterwards; the engine retains no reference.
type Result struct {
	// Score is the overall score, always in [0, 100].
	Score int

	// Feedback is prose composed from score-banded templates plus the
	// strengths and weaknesses lists.
	Feedback string

	Strengths   []string
	Weaknesses  []string
	Suggestions []string

	// MatchedKeywords and MissedKeywords partition the question's
	// expected keywords (case-insensitive).
	MatchedKeywords []string
	MissedKeywords  []string

	// KeywordScore is the keyword coverage sub-score in [0, 100].
	KeywordScore int

	// WordCount is the number of whitespace-delimited tokens in the answer.
	WordCount int

	// Method records the evaluation provenance.
	Method Method
}
