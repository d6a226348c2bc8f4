package selection

import (
	"fmt"
	"strings"

	"github.com/abhisek/mockmate/internal/bank"
	"github.com/abhisek/mockmate/internal/llm"
)

const selectionSystemPrompt = `You are an experienced interviewer choosing the next question in a mock interview.
Pick the question that best probes the candidate next. Respond with the chosen question's id and nothing else.`

// buildSelectionPrompt formats the candidate list with role and
// difficulty context. Question text is truncated so a handful of
// candidates fits a small local model's context.
func buildSelectionPrompt(sctx Context, candidates []bank.Question, truncateAt int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Interview for role: %s, target difficulty: %s.\n", sctx.Role, sctx.Difficulty)
	if len(sctx.RecentScores) > 0 {
		fmt.Fprintf(&b, "Recent answer scores: %s.\n", joinScores(sctx.RecentScores))
	}
	b.WriteString("\nCandidate questions:\n")

	for _, q := range candidates {
		fmt.Fprintf(&b, "- id=%s topic=%s difficulty=%s text=%q\n",
			q.ID, q.Metadata.Topic, q.Metadata.Difficulty, truncate(q.Content, truncateAt))
	}

	b.WriteString("\nRespond with the id of the best next question.")
	return b.String()
}

// parseSelectedID scans free model text for any candidate's id as a
// literal substring. The first match in candidate list order wins,
// which keeps the parse deterministic against chatty responses.
func parseSelectedID(text string, candidates []bank.Question) (string, error) {
	for _, q := range candidates {
		if strings.Contains(text, q.ID) {
			return q.ID, nil
		}
	}
	return "", &llm.ErrParse{Want: "a candidate question id", Text: text}
}

func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

func joinScores(scores []int) string {
	parts := make([]string, len(scores))
	for i, s := range scores {
		parts[i] = fmt.Sprintf("%d", s)
	}
	return strings.Join(parts, ", ")
}
