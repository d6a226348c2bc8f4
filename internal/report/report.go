// Package report rolls per-answer scores up into session-level feedback:
// topic breakdowns, strengths and weaknesses, recommendations, and a
// readiness score.
package report

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Answer is one scored answer as supplied by the session store. A nil
// Score marks an unevaluated answer; it is excluded from every mean.
type Answer struct {
	Topic string
	Score *int
}

// Feedback is the end-of-session rollup.
type Feedback struct {
	// OverallScore is the mean of all scored answers, rounded.
	OverallScore int

	// TopicScores maps each topic to its rounded mean score.
	TopicScores map[string]int

	// Strengths are topics scoring >= 70; Weaknesses are topics
	// scoring < 50. Topics in between are neither. Sorted.
	Strengths  []string
	Weaknesses []string

	// Recommendations are prose next steps derived from the rollup.
	Recommendations []string

	// ReadinessScore is a 0-100 composite of performance and practice
	// volume.
	ReadinessScore int
}

// Aggregate builds session feedback from scored answers. Empty input
// yields the zero rollup.
func Aggregate(answers []Answer) *Feedback {
	fb := &Feedback{TopicScores: map[string]int{}}

	sums := make(map[string]int)
	counts := make(map[string]int)
	total, scored := 0, 0

	for _, a := range answers {
		if a.Score == nil {
			continue
		}
		sums[a.Topic] += *a.Score
		counts[a.Topic]++
		total += *a.Score
		scored++
	}

	if scored == 0 {
		return fb
	}

	fb.OverallScore = roundMean(total, scored)

	for topic, sum := range sums {
		score := roundMean(sum, counts[topic])
		fb.TopicScores[topic] = score
		switch {
		case score >= 70:
			fb.Strengths = append(fb.Strengths, topic)
		case score < 50:
			fb.Weaknesses = append(fb.Weaknesses, topic)
		}
	}
	sort.Strings(fb.Strengths)
	sort.Strings(fb.Weaknesses)

	fb.Recommendations = recommendations(fb.OverallScore, fb.Weaknesses)
	fb.ReadinessScore = readiness(fb.OverallScore, scored)

	return fb
}

// recommendations names weak topics first, then adds exactly one
// banded entry on the overall score.
func recommendations(overall int, weaknesses []string) []string {
	var recs []string

	if len(weaknesses) > 0 {
		recs = append(recs, fmt.Sprintf(
			"Focus your preparation on: %s", strings.Join(weaknesses, ", ")))
	}

	switch {
	case overall < 50:
		recs = append(recs, "Review the fundamentals before your next session")
	case overall < 70:
		recs = append(recs, "Work on the depth and structure of your answers")
	default:
		recs = append(recs, "Strong performance - try harder questions next")
	}

	return recs
}

// readiness blends performance with practice volume: 0.6 x overall plus
// 4 points per answer, volume capped at 10 answers, total capped at 100.
func readiness(overall, answerCount int) int {
	capped := answerCount
	if capped > 10 {
		capped = 10
	}
	score := int(math.Round(0.6*float64(overall) + 4*float64(capped)))
	if score > 100 {
		return 100
	}
	return score
}

func roundMean(sum, n int) int {
	return int(math.Round(float64(sum) / float64(n)))
}
