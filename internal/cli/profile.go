package cli

import (
	"github.com/spf13/cobra"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Profile commands",
	}

	cmd.AddCommand(newProfileGetCmd())
	cmd.AddCommand(newProfileSetCmd())
	cmd.AddCommand(newProfileHistoryCmd())

	return cmd
}

func newProfileGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Profile

			if err := client.Get("/api/v1/profile", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newProfileSetCmd() *cobra.Command {
	var name, mode string
	var track int

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update profile fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{}
			if name != "" {
				req["display_name"] = name
			}
			if mode != "" {
				req["game_mode"] = mode
			}
			if cmd.Flags().Changed("track") {
				req["last_track"] = track
			}

			var result Profile

			if err := client.Put("/api/v1/profile", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New display name")
	cmd.Flags().StringVar(&mode, "mode", "", "Preferred game mode")
	cmd.Flags().IntVar(&track, "track", 0, "Preferred music track index")

	return cmd
}

func newProfileHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show your recent game results",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []GameSummary

			if err := client.Get("/api/v1/profile/history", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
