package cli

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/wheelgame-go/internal/api/request"
	"github.com/mcoot/wheelgame-go/internal/api/response"
)

func newPlayersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "players",
		Short: "Scoreboard commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Players

			if err := client.Get("/api/v1/players", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.AddCommand(newPlayersScoreCmd())
	cmd.AddCommand(newPlayersAdjustCmd())
	cmd.AddCommand(newPlayersBankruptCmd())

	return cmd
}

func scorePath(name string) string {
	return "/api/v1/players/" + url.PathEscape(name) + "/score"
}

func newPlayersScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <player>",
		Short: "Show a player's score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Score

			if err := client.Get(scorePath(args[0]), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newPlayersAdjustCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "adjust <player> <amount>",
		Short: "Add to (or subtract from) a player's score",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount: %w", err)
			}

			req := request.UpdateScoreRequest{Op: "adjust", Amount: amount}
			var result response.Score

			if err := client.Patch(scorePath(args[0]), req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newPlayersBankruptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bankrupt <player>",
		Short: "Reset a player's score to zero",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.UpdateScoreRequest{Op: "bankrupt"}
			var result response.Score

			if err := client.Patch(scorePath(args[0]), req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}
