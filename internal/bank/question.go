package bank

// Difficulty is a question difficulty level.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// RoleAny marks a question that applies to every role.
const RoleAny = "any"

// Question is one catalog entry: prompt text plus metadata.
// Immutable once loaded; owned by the Store's cache and freely shared
// by reference.
type Question struct {
	ID       string
	Content  string
	Metadata Metadata
}

// Metadata describes how a question is matched and scored.
type Metadata struct {
	Category   string
	Role       string
	Topic      string
	Difficulty Difficulty

	// ExpectedKeywords is the ordered list of keywords an answer is
	// scored against.
	ExpectedKeywords []string

	// IdealAnswer is a reference answer shown in the session report.
	IdealAnswer string

	// TimeLimit is the suggested answer time in seconds.
	TimeLimit int
}

// AppliesTo reports whether the question matches the given role.
// Questions with role "any" apply to every role.
func (q *Question) AppliesTo(role string) bool {
	return q.Metadata.Role == role || q.Metadata.Role == RoleAny
}
