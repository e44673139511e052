package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sheetkit/sheetkit/auth"
)

var authoriseCmd = &cobra.Command{
	Use:     "authorise",
	Aliases: []string{"authorize"},
	Short:   "Run the OAuth2 consent flow and cache the token",
	Long: `Opens the Google consent page in a browser and caches the resulting
OAuth2 token next to the client credentials. With --console the verification
code is entered manually instead, for use on headless machines.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		console, _ := cmd.Flags().GetBool("console")

		oauth, err := auth.Config(cfg.Credentials, auth.Sheets, auth.DriveReadOnly)
		if err != nil {
			return err
		}

		if console {
			_, err = auth.ConsoleAuthorise(cmd.Context(), oauth, cfg.Token)
		} else {
			_, err = auth.Authorise(cmd.Context(), oauth, cfg.Token)
		}

		if err != nil {
			color.Red("✗ authorisation failed: %v", err)
			return err
		}

		color.Green("✓ authorised - token saved to %s", cfg.Token)

		return nil
	},
}

func init() {
	authoriseCmd.Flags().Bool("console", false, "Enter the verification code on the console instead of using a local callback")
}
