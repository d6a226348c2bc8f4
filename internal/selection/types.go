package selection

import "github.com/abhisek/mockmate/internal/bank"

// Method records how a question was chosen, for observability.
type Method string

const (
	// MethodAI: the model picked from the candidate list.
	MethodAI Method = "ai"
	// MethodFallback: topic/difficulty-aware heuristic pick.
	MethodFallback Method = "fallback"
	// MethodRandom: uniform random pick from the remaining pool.
	MethodRandom Method = "random"
)

// Context is the caller-supplied snapshot of an in-progress interview.
// Read-only; the selector never mutates it.
type Context struct {
	Role       string
	Difficulty bank.Difficulty

	// AnsweredIDs is the set of question ids already asked.
	AnsweredIDs map[string]bool

	// TotalQuestions is the session's question budget.
	TotalQuestions int

	// RecentScores holds per-answer scores (0-100). Only the mean is
	// used, so ordering does not matter.
	RecentScores []int
}

// Result is one selected question with its provenance.
type Result struct {
	Question  bank.Question
	Reasoning string
	Method    Method
}
