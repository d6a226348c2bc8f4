package session

import (
	"time"

	"github.com/abhisek/mockmate/internal/bank"
	"github.com/abhisek/mockmate/internal/report"
	"github.com/abhisek/mockmate/internal/selection"
)

// State tracks the runtime state of an active interview.
type State struct {
	// ID is the UUID for this session.
	ID string

	// Role and Difficulty are the interview targets.
	Role       string
	Difficulty bank.Difficulty

	// TotalQuestions is the question budget for the session.
	TotalQuestions int

	// AnsweredIDs is the set of question ids already asked.
	AnsweredIDs map[string]bool

	// RecentScores holds per-answer scores in ask order.
	RecentScores []int

	// Answers accumulates topic/score pairs for the final rollup.
	Answers []report.Answer

	// Pending is the question awaiting an answer (nil between questions).
	Pending *selection.Result

	// PendingShownAt is when the pending question was served.
	PendingShownAt time.Time

	// StartTime is when the session began.
	StartTime time.Time
}

// Exhausted reports whether the question budget is spent.
func (st *State) Exhausted() bool {
	return len(st.Answers) >= st.TotalQuestions
}

// context builds the read-only selector view of this state.
func (st *State) context() selection.Context {
	return selection.Context{
		Role:           st.Role,
		Difficulty:     st.Difficulty,
		AnsweredIDs:    st.AnsweredIDs,
		TotalQuestions: st.TotalQuestions,
		RecentScores:   st.RecentScores,
	}
}
