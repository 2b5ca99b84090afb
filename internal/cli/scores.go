package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newScoresCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Leaderboard and score commands",
	}

	cmd.AddCommand(newScoresLeaderboardCmd())
	cmd.AddCommand(newScoresTopCmd())
	cmd.AddCommand(newScoresMineCmd())
	cmd.AddCommand(newScoresRecentCmd())

	return cmd
}

func newScoresLeaderboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard <snake|words>",
		Short: "Show a game's leaderboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []LeaderboardRow

			if err := client.Get("/api/v1/leaderboards/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newScoresTopCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "top <snake|words>",
		Short: "Show a game's top scores",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []ScoreRecord

			path := fmt.Sprintf("/api/v1/scores/%s/top?limit=%d", args[0], limit)
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Number of entries")

	return cmd
}

func newScoresMineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mine",
		Short: "Show your score history",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []ScoreRecord

			if err := client.Get("/api/v1/scores/mine", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newScoresRecentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recent <snake|words>",
		Short: "Show your recent results for a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []RecentResult

			if err := client.Get("/api/v1/scores/"+args[0]+"/recent", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
