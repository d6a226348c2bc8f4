package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mockmate/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recent sessions and model usage",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		sessions, err := st.SessionRepo().RecentSessions(ctx, 10)
		if err != nil {
			return err
		}

		fmt.Println("Recent sessions:")
		if len(sessions) == 0 {
			fmt.Println("  (none)")
		}
		for _, s := range sessions {
			status := "in progress"
			if s.CompletedAt != nil {
				status = "completed"
			}
			fmt.Printf("  %s  %-10s %-7s %2d questions  %s  %s\n",
				s.StartedAt.Format("2006-01-02 15:04"), s.Role, s.Difficulty,
				s.TotalQuestions, status, s.ID)
		}

		usage, err := st.EventRepo().UsageByPurpose(ctx)
		if err != nil {
			return err
		}

		fmt.Println("\nModel usage by purpose:")
		if len(usage) == 0 {
			fmt.Println("  (none)")
		}
		for _, u := range usage {
			fmt.Printf("  %-20s %4d calls (%d failed)  in=%d out=%d tokens  avg %dms\n",
				u.Purpose, u.Calls, u.Failures, u.InputTokens, u.OutputTokens, u.AvgLatencyMs)
		}
		return nil
	},
}
