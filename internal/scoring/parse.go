package scoring

import (
	"regexp"
	"strconv"

	"github.com/abhisek/mockmate/internal/llm"
)

var integerPattern = regexp.MustCompile(`\d+`)

// ExtractScore scans free model text for the first integer literal and
// clamps it to [0, 100]. The model contract is deliberately loose: the
// response may bury the number in prose ("I'd rate this 72 out of 100").
// Returns ErrParse when no integer appears at all.
func ExtractScore(text string) (int, error) {
	match := integerPattern.FindString(text)
	if match == "" {
		return 0, &llm.ErrParse{Want: "a 0-100 score", Text: text}
	}

	n, err := strconv.Atoi(match)
	if err != nil {
		// Only reachable on overflow of a huge digit run.
		return 100, nil
	}

	if n > 100 {
		return 100, nil
	}
	return n, nil
}
