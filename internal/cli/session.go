package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Game session commands",
	}

	cmd.AddCommand(newSessionStartCmd())
	cmd.AddCommand(newSessionShowCmd())
	cmd.AddCommand(newSessionInputCmd())
	cmd.AddCommand(newSessionMuteCmd())
	cmd.AddCommand(newSessionTrackCmd())
	cmd.AddCommand(newSessionCloseCmd())

	return cmd
}

func newSessionStartCmd() *cobra.Command {
	var difficulty, mode string
	var track int

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a new game session",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{}
			if difficulty != "" {
				req["difficulty"] = difficulty
			}
			if mode != "" {
				req["game_mode"] = mode
			}
			if cmd.Flags().Changed("track") {
				req["track"] = track
			}

			var result Snapshot

			if err := client.Post("/api/v1/sessions", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&difficulty, "difficulty", "", "Difficulty: easy, normal, hard")
	cmd.Flags().StringVar(&mode, "mode", "", "Game mode")
	cmd.Flags().IntVar(&track, "track", 0, "Starting music track index")

	return cmd
}

func newSessionShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <session-id>",
		Short: "Show the current session state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Snapshot

			if err := client.Get("/api/v1/sessions/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

// inputKeys maps key names to their JSON field names.
var inputKeys = map[string]string{
	"left":       "left",
	"right":      "right",
	"up":         "up",
	"down":       "down",
	"rotate-cw":  "rotate_cw",
	"rotate-ccw": "rotate_ccw",
	"hold":       "hold",
	"pause":      "pause",
}

func newSessionInputCmd() *cobra.Command {
	var held bool

	cmd := &cobra.Command{
		Use:   "input <session-id> <key>...",
		Short: "Send input keys to a session",
		Long: `Send one or more input key presses to a running session.

Keys: left, right, up, down, rotate-cw, rotate-ccw, hold, pause.
Use --held to report keys as held down instead of tapped.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionID := args[0]

			req := map[string]any{}
			for _, key := range args[1:] {
				field, ok := inputKeys[strings.ToLower(key)]
				if !ok {
					return fmt.Errorf("unknown key %q", key)
				}
				req[field] = map[string]bool{"pressed": true, "held": held}
			}

			if err := client.Post(fmt.Sprintf("/api/v1/sessions/%s/input", sessionID), req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Input sent")
			return nil
		},
	}

	cmd.Flags().BoolVar(&held, "held", false, "Report keys as held down")

	return cmd
}

func sendAudioAction(sessionID, action string) error {
	req := map[string]string{"action": action}

	var result Snapshot

	if err := client.Post(fmt.Sprintf("/api/v1/sessions/%s/audio", sessionID), req, &result); err != nil {
		return err
	}

	out := NewOutput(cfg.Output)
	out.Print(result)
	return nil
}

func newSessionMuteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mute <session-id>",
		Short: "Toggle a session's audio mute",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return sendAudioAction(args[0], "toggle_mute")
		},
	}
}

func newSessionTrackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "track <session-id>",
		Short: "Switch a session to the next music track",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return sendAudioAction(args[0], "next_track")
		},
	}
}

func newSessionCloseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "close <session-id>",
		Short: "Close a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/sessions/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Session closed")
			return nil
		},
	}
}
