package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newMoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move recording commands",
	}

	cmd.AddCommand(newMoveAddCmd())
	cmd.AddCommand(newMoveListCmd())
	cmd.AddCommand(newMoveGetCmd())

	return cmd
}

func newMoveAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <game-id> <player-id> <data-json>",
		Short: "Record a move for a player",
		Long: `Record a move for a player in a game. The move payload is an
arbitrary JSON object, e.g. '{"from":"e2","to":"e4"}'.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data map[string]any
			if err := json.Unmarshal([]byte(args[2]), &data); err != nil {
				return fmt.Errorf("invalid move data: %w", err)
			}

			req := map[string]any{
				"playerId": args[1],
				"data":     data,
			}

			var result MoveResult

			if err := client.Post(fmt.Sprintf("/games/%s/moves", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMoveListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <game-id>",
		Short: "List a game's move history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result MovesList

			if err := client.Get(fmt.Sprintf("/games/%s/moves", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMoveGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <game-id> <move-id>",
		Short: "Get a single move",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result MoveResult

			if err := client.Get(fmt.Sprintf("/games/%s/moves/%s", args[0], args[1]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
