package cli

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/mcoot/wheelgame-go/internal/api/request"
	"github.com/mcoot/wheelgame-go/internal/api/response"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameNextCmd())
	cmd.AddCommand(newGameSelectCmd())
	cmd.AddCommand(newGameSpinCmd())
	cmd.AddCommand(newGameWheelCmd())
	cmd.AddCommand(newGameLetterCmd())
	cmd.AddCommand(newGameSolveCmd())
	cmd.AddCommand(newGameBankruptCmd())

	return cmd
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Get the board and scoreboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.GameState

			if err := client.Get("/api/v1/game", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newGameNextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Load the next puzzle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.GameState

			if err := client.Post("/api/v1/game/next", nil, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newGameSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <player>",
		Short: "Choose whose turn it is",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.SelectPlayerRequest{Player: args[0]}
			var result response.GameState

			if err := client.Post("/api/v1/game/select", req, &result); err != nil {
				return err
			}

			output(cmd).PrintMessage(fmt.Sprintf("Selected %s", args[0]))
			return nil
		},
	}
}

func newGameSpinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spin <amount>",
		Short: "Enter the amount the wheel landed on",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount: %w", err)
			}

			req := request.SpinRequest{Amount: &amount}
			var result response.GameState

			if err := client.Post("/api/v1/game/spin", req, &result); err != nil {
				return err
			}

			output(cmd).PrintMessage(fmt.Sprintf("Spin: $%d", amount))
			return nil
		},
	}
}

func newGameWheelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wheel",
		Short: "Spin the wheel for the selected player",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.SpinResult

			if err := client.Post("/api/v1/game/spin/wheel", nil, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newGameLetterCmd() *cobra.Command {
	var player string
	var spin int

	cmd := &cobra.Command{
		Use:   "letter <letter>",
		Short: "Request a letter for the selected player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			letter := strings.ToUpper(args[0])
			if utf8.RuneCountInString(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' {
				return fmt.Errorf("letter must be a single character A-Z")
			}

			req := request.LetterRequest{Letter: letter}
			if cmd.Flags().Changed("player") {
				req.Player = &player
			}
			if cmd.Flags().Changed("spin") {
				req.Spin = &spin
			}
			var result response.LetterResult

			if err := client.Post("/api/v1/game/letters", req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&player, "player", "", "Select this player first")
	cmd.Flags().IntVar(&spin, "spin", 0, "Enter this spin amount first")

	return cmd
}

func newGameSolveCmd() *cobra.Command {
	var player string

	cmd := &cobra.Command{
		Use:   "solve <guess>...",
		Short: "Submit a solve for the selected player",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.SolveRequest{Guess: strings.Join(args, " ")}
			if cmd.Flags().Changed("player") {
				req.Player = &player
			}
			var result response.SolveResult

			if err := client.Post("/api/v1/game/solve", req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&player, "player", "", "Select this player first")

	return cmd
}

func newGameBankruptCmd() *cobra.Command {
	var player string

	cmd := &cobra.Command{
		Use:   "bankrupt",
		Short: "Reset the selected player's score to zero",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var req request.BankruptRequest
			if cmd.Flags().Changed("player") {
				req.Player = &player
			}
			var result response.GameState

			if err := client.Post("/api/v1/game/bankrupt", req, &result); err != nil {
				return err
			}

			name := player
			if result.SelectedPlayer != nil {
				name = *result.SelectedPlayer
			}
			output(cmd).PrintMessage(fmt.Sprintf("%s went bankrupt", name))
			return nil
		},
	}

	cmd.Flags().StringVar(&player, "player", "", "Select this player first")

	return cmd
}
