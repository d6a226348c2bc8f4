package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mockmate/internal/bank"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect the question catalog",
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a question catalog file",
	RunE: func(cmd *cobra.Command, args []string) error {
		loader := bank.NewFileLoader(resolveCatalogPath(cmd))
		questions, err := loader.Load()
		if err != nil {
			return err
		}
		fmt.Printf("catalog OK: %d questions\n", len(questions))
		return nil
	},
}

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		role, _ := cmd.Flags().GetString("role")

		store := bank.NewStore(bank.NewFileLoader(resolveCatalogPath(cmd)))
		questions, err := store.Filtered(bank.Filter{Role: role})
		if err != nil {
			return err
		}

		for _, q := range questions {
			fmt.Printf("%-24s %-12s %-18s %-6s %s\n",
				q.ID, q.Metadata.Role, q.Metadata.Topic, q.Metadata.Difficulty,
				truncateText(q.Content, 60))
		}
		fmt.Printf("%d questions\n", len(questions))
		return nil
	},
}

func init() {
	bankListCmd.Flags().String("role", "", "Filter by role")
	bankCmd.AddCommand(bankValidateCmd)
	bankCmd.AddCommand(bankListCmd)
}

func truncateText(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
