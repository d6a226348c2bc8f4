package scoring

import (
	"strings"
	"testing"
)

func TestEvaluateRules_WorkedExample(t *testing.T) {
	answer := "It's a function scoped variable affected by hoisting"
	keywords := []string{"scope", "hoisting", "block"}

	result := EvaluateRules(answer, keywords, "")

	if got, want := result.MatchedKeywords, []string{"scope", "hoisting"}; !equalStrings(got, want) {
		t.Errorf("MatchedKeywords = %v, want %v", got, want)
	}
	if got, want := result.MissedKeywords, []string{"block"}; !equalStrings(got, want) {
		t.Errorf("MissedKeywords = %v, want %v", got, want)
	}
	if result.KeywordScore != 67 {
		t.Errorf("KeywordScore = %d, want 67", result.KeywordScore)
	}
	if result.WordCount != 8 {
		t.Errorf("WordCount = %d, want 8", result.WordCount)
	}
	// 0.5*67 + 0.3*40 + 0.2*50 = 55.5 → 56
	if result.Score != 56 {
		t.Errorf("Score = %d, want 56", result.Score)
	}
	if result.Method != MethodRules {
		t.Errorf("Method = %q, want %q", result.Method, MethodRules)
	}
}

func TestEvaluateRules_EmptyAnswer(t *testing.T) {
	result := EvaluateRules("", []string{"scope", "hoisting"}, "")

	if result.Score < 0 || result.Score > 100 {
		t.Fatalf("Score = %d, out of range", result.Score)
	}
	if result.KeywordScore != 0 {
		t.Errorf("KeywordScore = %d, want 0", result.KeywordScore)
	}
	if result.WordCount != 0 {
		t.Errorf("WordCount = %d, want 0", result.WordCount)
	}
	if len(result.MatchedKeywords) != 0 {
		t.Errorf("MatchedKeywords = %v, want empty", result.MatchedKeywords)
	}
	// 0.5*0 + 0.3*0 + 0.2*50 = 10
	if result.Score != 10 {
		t.Errorf("Score = %d, want 10", result.Score)
	}
}

func TestEvaluateRules_NoExpectedKeywords(t *testing.T) {
	result := EvaluateRules("a perfectly reasonable answer. with two sentences.", nil, "")

	if result.KeywordScore != 0 {
		t.Errorf("KeywordScore = %d, want 0", result.KeywordScore)
	}
	if len(result.MatchedKeywords) != 0 || len(result.MissedKeywords) != 0 {
		t.Errorf("keyword partition not empty: %v / %v", result.MatchedKeywords, result.MissedKeywords)
	}
}

func TestEvaluateRules_KeywordPartition(t *testing.T) {
	keywords := []string{"Scope", "HOISTING", "block"}
	result := EvaluateRules("scope and hoisting matter", keywords, "")

	partition := append(append([]string{}, result.MatchedKeywords...), result.MissedKeywords...)
	if len(partition) != len(keywords) {
		t.Fatalf("partition size = %d, want %d", len(partition), len(keywords))
	}
	for _, kw := range keywords {
		found := false
		for _, p := range partition {
			if p == kw {
				found = true
			}
		}
		if !found {
			t.Errorf("keyword %q missing from partition", kw)
		}
	}
	for _, m := range result.MatchedKeywords {
		for _, n := range result.MissedKeywords {
			if m == n {
				t.Errorf("keyword %q in both matched and missed", m)
			}
		}
	}
}

func TestEvaluateRules_Idempotent(t *testing.T) {
	answer := "Closures capture variables. They enable private state."
	keywords := []string{"closure", "state"}

	a := EvaluateRules(answer, keywords, "")
	b := EvaluateRules(answer, keywords, "")

	if a.Score != b.Score || a.KeywordScore != b.KeywordScore || a.Feedback != b.Feedback {
		t.Errorf("evaluation not deterministic: %+v vs %+v", a, b)
	}
}

func TestEvaluateRules_KeywordMonotonicity(t *testing.T) {
	keywords := []string{"scope", "hoisting", "closure"}

	before := EvaluateRules("variables have scope", keywords, "")
	after := EvaluateRules("variables have scope and hoisting", keywords, "")

	if after.KeywordScore < before.KeywordScore {
		t.Errorf("KeywordScore decreased: %d -> %d", before.KeywordScore, after.KeywordScore)
	}
}

func TestScoreLength_Bands(t *testing.T) {
	tests := []struct {
		wordCount int
		want      int
	}{
		{0, 0},
		{4, 0},
		{5, 40},
		{14, 40},
		{15, 60},
		{29, 60},
		{30, 100},
		{500, 100},
		{501, 70},
	}
	for _, tt := range tests {
		if got := scoreLength(tt.wordCount); got != tt.want {
			t.Errorf("scoreLength(%d) = %d, want %d", tt.wordCount, got, tt.want)
		}
	}
}

func TestCountSentences(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"no terminal punctuation", 0},
		{"one sentence.", 1},
		{"one!? still one ending group", 1},
		{"first. second!", 2},
		{"a. b? c!", 3},
	}
	for _, tt := range tests {
		if got := countSentences(tt.text); got != tt.want {
			t.Errorf("countSentences(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestEvaluateRules_ScoreAlwaysInRange(t *testing.T) {
	answers := []string{
		"",
		"short",
		strings.Repeat("word ", 600),
		"scope hoisting block closure prototype. all keywords here! nicely structured.",
	}
	for _, answer := range answers {
		result := EvaluateRules(answer, []string{"scope", "hoisting", "block"}, "")
		if result.Score < 0 || result.Score > 100 {
			t.Errorf("Score = %d out of range for answer %q", result.Score, answer)
		}
	}
}

func TestComposeFeedback_Bands(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{85, "Excellent"},
		{65, "Good"},
		{45, "Decent"},
		{20, "significant improvement"},
	}
	for _, tt := range tests {
		got := composeFeedback(tt.score, nil, nil)
		if !strings.Contains(got, tt.want) {
			t.Errorf("composeFeedback(%d) = %q, want substring %q", tt.score, got, tt.want)
		}
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
