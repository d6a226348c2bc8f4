package scoring

import (
	"fmt"
	"math"
	"strings"
)

// Sub-score weights for the overall heuristic score.
const (
	keywordWeight   = 0.5
	lengthWeight    = 0.3
	structureWeight = 0.2
)

// EvaluateRules scores an answer with the deterministic heuristic:
// keyword coverage, length, and structure signals combined into a 0-100
// score with qualitative feedback. Pure function, never fails; an empty
// answer scores the floor.
func EvaluateRules(answer string, expectedKeywords []string, idealAnswer string) *Result {
	normalized := strings.ToLower(strings.TrimSpace(answer))

	matched, missed := partitionKeywords(normalized, expectedKeywords)

	keywordScore := 0
	if len(expectedKeywords) > 0 {
		keywordScore = roundRatio(len(matched), len(expectedKeywords))
	}

	wordCount := len(strings.Fields(normalized))
	lengthScore := scoreLength(wordCount)
	structureScore := scoreStructure(normalized)

	overall := int(math.Round(
		keywordWeight*float64(keywordScore) +
			lengthWeight*float64(lengthScore) +
			structureWeight*float64(structureScore)))

	strengths, weaknesses, suggestions := deriveQualitative(
		keywordScore, wordCount, structureScore, missed)

	return &Result{
		Score:           overall,
		Feedback:        composeFeedback(overall, strengths, weaknesses),
		Strengths:       strengths,
		Weaknesses:      weaknesses,
		Suggestions:     suggestions,
		MatchedKeywords: matched,
		MissedKeywords:  missed,
		KeywordScore:    keywordScore,
		WordCount:       wordCount,
		Method:          MethodRules,
	}
}

// partitionKeywords splits the expected keywords into matched and
// missed. A keyword matches iff it is a case-insensitive substring of
// the normalized answer. Keywords keep their original casing and order.
func partitionKeywords(normalized string, expected []string) (matched, missed []string) {
	for _, kw := range expected {
		if strings.Contains(normalized, strings.ToLower(kw)) {
			matched = append(matched, kw)
		} else {
			missed = append(missed, kw)
		}
	}
	return matched, missed
}

// scoreLength bands the word count. The 30-500 band is the target.
func scoreLength(wordCount int) int {
	switch {
	case wordCount >= 30 && wordCount <= 500:
		return 100
	case wordCount > 500:
		return 70
	case wordCount >= 15:
		return 60
	case wordCount >= 5:
		return 40
	default:
		return 0
	}
}

// scoreStructure gives full credit for two or more sentences. A run of
// terminal punctuation (".", "!", "?") counts as one sentence ending.
func scoreStructure(normalized string) int {
	if countSentences(normalized) >= 2 {
		return 100
	}
	return 50
}

func countSentences(s string) int {
	count := 0
	inTerminal := false
	for _, r := range s {
		terminal := r == '.' || r == '!' || r == '?'
		if terminal && !inTerminal {
			count++
		}
		inTerminal = terminal
	}
	return count
}

func deriveQualitative(keywordScore, wordCount, structureScore int, missed []string) (strengths, weaknesses, suggestions []string) {
	if keywordScore >= 70 {
		strengths = append(strengths, "covered most of the key concepts")
	}
	if keywordScore < 40 {
		weaknesses = append(weaknesses, fmt.Sprintf(
			"missed key concepts: %s", strings.Join(missed, ", ")))
	}

	if wordCount < 30 {
		suggestions = append(suggestions, "expand your answer with more detail and examples")
	} else if wordCount > 500 {
		suggestions = append(suggestions, "condense your answer to its essential points")
	}

	if structureScore < 100 {
		suggestions = append(suggestions, "structure your answer into multiple sentences or points")
	}

	return strengths, weaknesses, suggestions
}

// composeFeedback builds the prose feedback from score-banded templates
// plus the strengths and weaknesses lists.
func composeFeedback(score int, strengths, weaknesses []string) string {
	var b strings.Builder

	switch {
	case score >= 80:
		b.WriteString("Excellent answer with strong coverage of the topic.")
	case score >= 60:
		b.WriteString("Good answer with room for improvement.")
	case score >= 40:
		b.WriteString("Decent attempt, but several areas need work.")
	default:
		b.WriteString("This answer needs significant improvement.")
	}

	if len(strengths) > 0 {
		b.WriteString(" Strengths: ")
		b.WriteString(strings.Join(strengths, "; "))
		b.WriteString(".")
	}
	if len(weaknesses) > 0 {
		b.WriteString(" Weaknesses: ")
		b.WriteString(strings.Join(weaknesses, "; "))
		b.WriteString(".")
	}

	return b.String()
}

// roundRatio returns round(100 * n / d).
func roundRatio(n, d int) int {
	return int(math.Round(100 * float64(n) / float64(d)))
}
