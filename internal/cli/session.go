package cli

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Session commands",
	}

	cmd.AddCommand(newSessionStartCmd())
	cmd.AddCommand(newSessionShowCmd())
	cmd.AddCommand(newSessionGuessCmd())
	cmd.AddCommand(newSessionRestartCmd())
	cmd.AddCommand(newMuteCmd())

	return cmd
}

func newSessionStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start a new game session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SessionView

			if err := client.Post("/api/v1/sessions", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show the current session state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			var result SessionView

			if err := client.Get(fmt.Sprintf("/api/v1/sessions/%s", id), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionGuessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guess <id> <letter>",
		Short: "Guess a letter",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			letter := strings.ToUpper(args[1])

			if utf8.RuneCountInString(letter) != 1 {
				return fmt.Errorf("letter must be a single character")
			}

			req := map[string]string{"letter": letter}
			var result SessionView

			if err := client.Post(fmt.Sprintf("/api/v1/sessions/%s/guess", id), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionRestartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restart <id>",
		Short: "Restart the session with a fresh word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			var result SessionView

			if err := client.Post(fmt.Sprintf("/api/v1/sessions/%s/restart", id), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMuteCmd() *cobra.Command {
	var muted bool

	cmd := &cobra.Command{
		Use:   "mute",
		Short: "Set the shared audio device's mute flag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]bool{"muted": muted}
			var result map[string]bool

			if err := client.Put("/api/v1/media/mute", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&muted, "muted", true, "Mute (true) or unmute (false)")

	return cmd
}
