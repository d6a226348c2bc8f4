package bank

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/mod/semver"
)

// FormatVersion is the catalog format this build understands. Catalogs
// with a different major version are rejected at load time.
const FormatVersion = "v1.0.0"

// Loader supplies the raw question catalog. The engine loads it once
// per cache rebuild and only ever reads it.
type Loader interface {
	// Load returns all questions in the catalog.
	Load() ([]Question, error)
}

// catalogFile is the on-disk catalog document.
type catalogFile struct {
	Version   string          `json:"version"`
	Questions []questionEntry `json:"questions"`
}

// questionEntry is one raw catalog row. expected_keywords is a
// comma-separated string, split and trimmed by the loader.
type questionEntry struct {
	ID               string `json:"id"`
	Text             string `json:"text"`
	Category         string `json:"category"`
	Role             string `json:"role"`
	Topic            string `json:"topic"`
	Difficulty       string `json:"difficulty"`
	ExpectedKeywords string `json:"expected_keywords"`
	IdealAnswer      string `json:"ideal_answer"`
	TimeLimit        int    `json:"time_limit"`
}

//go:embed catalog.json
var defaultCatalog []byte

// FileLoader loads a question catalog from a JSON file, falling back to
// the embedded default catalog when no path is configured.
type FileLoader struct {
	Path string
}

// NewFileLoader creates a loader for the catalog at path. An empty path
// selects the embedded default catalog.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{Path: path}
}

// Load reads, validates, and parses the catalog.
func (l *FileLoader) Load() ([]Question, error) {
	raw := defaultCatalog
	if l.Path != "" {
		data, err := os.ReadFile(l.Path)
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
		raw = data
	}
	return ParseCatalog(raw)
}

// ParseCatalog validates raw catalog JSON and converts it to questions.
func ParseCatalog(raw []byte) ([]Question, error) {
	if err := validateCatalog(raw); err != nil {
		return nil, err
	}

	var file catalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	if err := checkFormatVersion(file.Version); err != nil {
		return nil, err
	}

	questions := make([]Question, 0, len(file.Questions))
	for _, e := range file.Questions {
		questions = append(questions, Question{
			ID:      e.ID,
			Content: e.Text,
			Metadata: Metadata{
				Category:         e.Category,
				Role:             e.Role,
				Topic:            e.Topic,
				Difficulty:       Difficulty(e.Difficulty),
				ExpectedKeywords: SplitKeywords(e.ExpectedKeywords),
				IdealAnswer:      e.IdealAnswer,
				TimeLimit:        e.TimeLimit,
			},
		})
	}
	return questions, nil
}

// SplitKeywords splits a comma-separated keyword string into a trimmed
// list, dropping empty entries.
func SplitKeywords(s string) []string {
	var keywords []string
	for _, part := range strings.Split(s, ",") {
		if k := strings.TrimSpace(part); k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}

// checkFormatVersion rejects catalogs whose format major version does
// not match this build.
func checkFormatVersion(version string) error {
	v := version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("invalid catalog version %q", version)
	}
	if semver.Major(v) != semver.Major(FormatVersion) {
		return fmt.Errorf("unsupported catalog format %s (want %s.x)", version, semver.Major(FormatVersion))
	}
	return nil
}
