package selection

import (
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/mockmate/internal/bank"
	"github.com/abhisek/mockmate/internal/llm"
)

func TestBuildSelectionPrompt(t *testing.T) {
	candidates := []bank.Question{
		question("q1", "frontend", "css", bank.DifficultyEasy),
		question("q2", "frontend", "javascript", bank.DifficultyMedium),
	}
	sctx := Context{
		Role:         "frontend",
		Difficulty:   bank.DifficultyMedium,
		RecentScores: []int{70, 55},
	}

	prompt := buildSelectionPrompt(sctx, candidates, 100)

	for _, want := range []string{
		"role: frontend",
		"difficulty: medium",
		"70, 55",
		"id=q1",
		"id=q2",
		"topic=javascript",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildSelectionPrompt_TruncatesQuestionText(t *testing.T) {
	long := question("q1", "frontend", "css", bank.DifficultyEasy)
	long.Content = strings.Repeat("x", 300)

	prompt := buildSelectionPrompt(Context{Role: "frontend"}, []bank.Question{long}, 100)

	if strings.Contains(prompt, long.Content) {
		t.Error("prompt contains untruncated question text")
	}
	if !strings.Contains(prompt, strings.Repeat("x", 100)+"...") {
		t.Error("prompt missing truncated question text with ellipsis")
	}
}

func TestParseSelectedID(t *testing.T) {
	candidates := []bank.Question{
		question("js-closures", "frontend", "javascript", bank.DifficultyMedium),
		question("css-flexbox", "frontend", "css", bank.DifficultyEasy),
	}

	tests := []struct {
		name string
		text string
		want string
	}{
		{"bare id", "js-closures", "js-closures"},
		{"id in prose", "I would go with css-flexbox because layout matters.", "css-flexbox"},
		{"candidate order wins on ties", "either js-closures or css-flexbox works", "js-closures"},
		{"quoted id", `My pick: "css-flexbox".`, "css-flexbox"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSelectedID(tt.text, candidates)
			if err != nil {
				t.Fatalf("parseSelectedID(%q): %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("parseSelectedID(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseSelectedID_NoCandidateID(t *testing.T) {
	candidates := []bank.Question{
		question("js-closures", "frontend", "javascript", bank.DifficultyMedium),
	}

	_, err := parseSelectedID("ask about their greatest weakness", candidates)
	if err == nil {
		t.Fatal("expected error when no candidate id appears")
	}
	var parseErr *llm.ErrParse
	if !errors.As(err, &parseErr) {
		t.Errorf("error = %T, want *llm.ErrParse", err)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 100); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
	if got := truncate("abcdef", 3); got != "abc..." {
		t.Errorf("truncate = %q, want abc...", got)
	}
	if got := truncate("abcdef", 0); got != "abcdef" {
		t.Errorf("truncate with max 0 = %q, want unchanged", got)
	}
}
