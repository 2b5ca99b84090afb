package cli

import (
	"github.com/spf13/cobra"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Profile commands",
	}

	cmd.AddCommand(newProfileShowCmd())
	cmd.AddCommand(newProfileDisplayNameCmd())
	cmd.AddCommand(newProfileResetCmd())

	return cmd
}

func newProfileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the profile summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ProfileSummary

			if err := client.Get("/api/v1/profile", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newProfileDisplayNameCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "display-name",
		Short: "Set the display name",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"displayName": name}

			if err := client.Put("/api/v1/profile/display-name", req, nil); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("display name updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newProfileResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset all game progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post("/api/v1/profile/reset", nil, nil); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("progress reset")
			return nil
		},
	}
}
