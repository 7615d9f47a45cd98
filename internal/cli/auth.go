package cli

import (
	"github.com/spf13/cobra"
)

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authentication commands",
	}

	cmd.AddCommand(newAuthRegisterCmd())
	cmd.AddCommand(newAuthMeCmd())

	return cmd
}

func newAuthRegisterCmd() *cobra.Command {
	var noSave bool

	cmd := &cobra.Command{
		Use:   "register <username>",
		Short: "Register a new user and save the issued API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"username": args[0]}

			var result UserResult

			if err := client.Post("/auth/register", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)

			if !noSave && result.User.APIKey != "" {
				if err := cfg.SaveToken(result.User.APIKey); err != nil {
					out.PrintError(err)
				} else if cfg.Verbose {
					out.PrintMessage("API key saved to " + cfg.TokenFile)
				}
			}

			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noSave, "no-save", false, "Do not save the API key to the token file")

	return cmd
}

func newAuthMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result UserResult

			if err := client.Get("/auth/me", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
