package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mockmate/internal/bank"
	"github.com/abhisek/mockmate/internal/llm"
	"github.com/abhisek/mockmate/internal/report"
	"github.com/abhisek/mockmate/internal/scoring"
	"github.com/abhisek/mockmate/internal/selection"
	"github.com/abhisek/mockmate/internal/session"
	"github.com/abhisek/mockmate/internal/store"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Run an adaptive mock interview",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInterview(cmd)
	},
}

func init() {
	addInterviewFlags(interviewCmd)
}

// addInterviewFlags registers the session flags. The root command runs
// an interview as its default action, so it carries the same flags.
func addInterviewFlags(cmd *cobra.Command) {
	cmd.Flags().String("role", "backend", "Target role (e.g. backend, frontend)")
	cmd.Flags().String("difficulty", "medium", "Target difficulty: easy, medium, or hard")
	cmd.Flags().Int("questions", 5, "Number of questions in the session")
}

// runInterview wires the engine and drives a line-based interview loop.
func runInterview(cmd *cobra.Command) error {
	ctx := cmd.Context()

	role, _ := cmd.Flags().GetString("role")
	difficulty, _ := cmd.Flags().GetString("difficulty")
	questions, _ := cmd.Flags().GetInt("questions")

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	cfg := llm.ConfigFromEnv()
	provider, err := llm.NewProvider(ctx, cfg, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "model provider not configured:", err)
		fmt.Fprintln(os.Stderr, "continuing with heuristic scoring only")
		provider = nil
	}

	questionStore := bank.NewStore(bank.NewFileLoader(resolveCatalogPath(cmd)))
	selector := selection.NewSelector(questionStore, provider, selection.DefaultConfig())
	evalCfg := scoring.DefaultConfig()
	evalCfg.Timeout = cfg.Timeout
	evaluator := scoring.NewEvaluator(provider, evalCfg)
	svc := session.NewService(selector, evaluator, st.SessionRepo())

	state, err := svc.Start(ctx, role, bank.Difficulty(difficulty), questions)
	if err != nil {
		return err
	}

	fmt.Printf("Mock interview: %s role, %s difficulty, %d questions. Type your answer and finish with an empty line.\n",
		role, difficulty, questions)

	reader := bufio.NewReader(os.Stdin)
	for n := 1; ; n++ {
		selected, err := svc.NextQuestion(ctx, state)
		if err != nil {
			return err
		}
		if selected == nil {
			break
		}

		q := selected.Question
		fmt.Printf("\nQuestion %d/%d [%s/%s]\n%s\n> ",
			n, questions, q.Metadata.Topic, q.Metadata.Difficulty, q.Content)

		answer, err := readAnswer(reader)
		if err != nil {
			return fmt.Errorf("read answer: %w", err)
		}

		result, err := svc.SubmitAnswer(ctx, state, answer)
		if err != nil {
			return err
		}
		printEvaluation(result)
	}

	fb, err := svc.Finish(ctx, state)
	if err != nil {
		return err
	}
	printFeedback(fb)
	return nil
}

// readAnswer collects lines until a blank line or EOF.
func readAnswer(reader *bufio.Reader) (string, error) {
	var lines []string
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimRight(line, "\n")
		if line == "" || err != nil {
			if err != nil && len(lines) == 0 && line == "" {
				return "", err
			}
			if line != "" {
				lines = append(lines, line)
			}
			return strings.Join(lines, "\n"), nil
		}
		lines = append(lines, line)
	}
}

func printEvaluation(result *scoring.Result) {
	fmt.Printf("\nScore: %d/100 (%s)\n%s\n", result.Score, result.Method, result.Feedback)
	if len(result.MissedKeywords) > 0 {
		fmt.Printf("Missed concepts: %s\n", strings.Join(result.MissedKeywords, ", "))
	}
	for _, s := range result.Suggestions {
		fmt.Printf("- %s\n", s)
	}
}

func printFeedback(fb *report.Feedback) {
	fmt.Printf("\n=== Session report ===\n")
	fmt.Printf("Overall score: %d/100\n", fb.OverallScore)
	fmt.Printf("Readiness:     %d/100\n", fb.ReadinessScore)
	for topic, score := range fb.TopicScores {
		fmt.Printf("  %-20s %d\n", topic, score)
	}
	if len(fb.Strengths) > 0 {
		fmt.Printf("Strengths:  %s\n", strings.Join(fb.Strengths, ", "))
	}
	if len(fb.Weaknesses) > 0 {
		fmt.Printf("Weaknesses: %s\n", strings.Join(fb.Weaknesses, ", "))
	}
	for _, rec := range fb.Recommendations {
		fmt.Printf("- %s\n", rec)
	}
}
