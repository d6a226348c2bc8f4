package bank

import (
	"fmt"
	"testing"
)

func TestParseCatalog(t *testing.T) {
	raw := []byte(`{
		"version": "1.0.0",
		"questions": [
			{
				"id": "js-var-scope",
				"text": "Explain var, let, and const.",
				"category": "technical",
				"role": "frontend",
				"topic": "javascript",
				"difficulty": "easy",
				"expected_keywords": "scope, hoisting, block",
				"ideal_answer": "var is function scoped; let and const are block scoped.",
				"time_limit": 120
			}
		]
	}`)

	questions, err := ParseCatalog(raw)
	if err != nil {
		t.Fatalf("ParseCatalog: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(questions))
	}

	q := questions[0]
	if q.ID != "js-var-scope" {
		t.Errorf("ID = %q", q.ID)
	}
	if q.Metadata.Difficulty != DifficultyEasy {
		t.Errorf("Difficulty = %q, want easy", q.Metadata.Difficulty)
	}
	if got, want := len(q.Metadata.ExpectedKeywords), 3; got != want {
		t.Errorf("ExpectedKeywords = %v, want %d entries", q.Metadata.ExpectedKeywords, want)
	}
	if q.Metadata.ExpectedKeywords[1] != "hoisting" {
		t.Errorf("keyword[1] = %q, want trimmed %q", q.Metadata.ExpectedKeywords[1], "hoisting")
	}
}

func TestParseCatalog_RejectsInvalidSchema(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{`},
		{"missing version", `{"questions": []}`},
		{"missing required id", `{
			"version": "1.0.0",
			"questions": [{"text": "x", "role": "any", "topic": "t", "difficulty": "easy"}]
		}`},
		{"bad difficulty", `{
			"version": "1.0.0",
			"questions": [{"id": "q", "text": "x", "role": "any", "topic": "t", "difficulty": "brutal"}]
		}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseCatalog([]byte(tt.raw)); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestParseCatalog_FormatVersionGate(t *testing.T) {
	for _, version := range []string{"1.0.0", "v1.0.0", "1.2.3"} {
		raw := []byte(fmt.Sprintf(`{"version": %q, "questions": []}`, version))
		if _, err := ParseCatalog(raw); err != nil {
			t.Errorf("version %q rejected: %v", version, err)
		}
	}

	for _, version := range []string{"2.0.0", "0.9.0", "not-a-version"} {
		raw := []byte(fmt.Sprintf(`{"version": %q, "questions": []}`, version))
		if _, err := ParseCatalog(raw); err == nil {
			t.Errorf("version %q accepted, want rejection", version)
		}
	}
}

func TestSplitKeywords(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"scope, hoisting, block", []string{"scope", "hoisting", "block"}},
		{"scope,hoisting", []string{"scope", "hoisting"}},
		{"  single  ", []string{"single"}},
		{"a,,b,", []string{"a", "b"}},
		{"", nil},
		{" , , ", nil},
	}
	for _, tt := range tests {
		got := SplitKeywords(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("SplitKeywords(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("SplitKeywords(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestFileLoader_EmbeddedDefault(t *testing.T) {
	loader := NewFileLoader("")

	questions, err := loader.Load()
	if err != nil {
		t.Fatalf("Load embedded catalog: %v", err)
	}
	if len(questions) == 0 {
		t.Fatal("embedded catalog is empty")
	}

	seen := map[string]bool{}
	for _, q := range questions {
		if q.ID == "" || q.Content == "" {
			t.Errorf("question with empty id or content: %+v", q)
		}
		if seen[q.ID] {
			t.Errorf("duplicate question id %s", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestFileLoader_MissingFile(t *testing.T) {
	loader := NewFileLoader("/nonexistent/catalog.json")
	if _, err := loader.Load(); err == nil {
		t.Fatal("expected error for missing catalog file")
	}
}
