package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sheetkit/sheetkit/a1"
	"github.com/sheetkit/sheetkit/auth"
)

var clearCmd = &cobra.Command{
	Use:   "clear <range>",
	Short: "Clears the cell values in a range",
	Long: `Clears the cell values in a range. Formatting is left untouched; use
'border --clear' and the format commands to reset formatting.`,
	Example: `  sheetkit clear "Inventory!A2:D25"`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		rng, err := a1.Parse(args[0])
		if err != nil {
			return err
		}

		client, err := newClient(cmd.Context(), cfg, auth.Sheets)
		if err != nil {
			return err
		}

		if err := client.Clear(cmd.Context(), rng); err != nil {
			return err
		}

		color.Green("✓ cleared %s", rng)

		return nil
	},
}
