package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newScoresCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Show the high score leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/scores"
			if cmd.Flags().Changed("limit") {
				path = fmt.Sprintf("%s?limit=%d", path, limit)
			}

			var result []HighScore

			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of entries")

	return cmd
}
