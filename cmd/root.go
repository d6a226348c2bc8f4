package cmd

import (
	"os"

	"github.com/abhisek/mockmate/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mockmate",
	Short: "AI-assisted mock interview coach",
	Long:  "Mockmate — adaptive mock interviews in the terminal: AI-assisted question selection and answer scoring with a deterministic fallback, fully functional without a model.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInterview(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MOCKMATE_DB env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to question catalog JSON (default: embedded catalog)")
	addInterviewFlags(rootCmd)

	rootCmd.AddCommand(interviewCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then MOCKMATE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveCatalogPath returns the catalog path from the --catalog flag
// or MOCKMATE_CATALOG env var; empty selects the embedded catalog.
func resolveCatalogPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("catalog"); p != "" {
		return p
	}
	return os.Getenv("MOCKMATE_CATALOG")
}
