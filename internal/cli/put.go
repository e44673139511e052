package cli

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sheetkit/sheetkit/a1"
	"github.com/sheetkit/sheetkit/auth"
	"github.com/sheetkit/sheetkit/internal/tabular"
)

var putCmd = &cobra.Command{
	Use:   "put <range> <file>",
	Short: "Uploads a TSV file to a worksheet range",
	Long: `Uploads a TSV file to a worksheet range, header row included. The
range is sized to fit the file so a bounded range only needs a start cell.`,
	Example: `  sheetkit put "Inventory!A1" inventory.tsv`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		rng, err := a1.Parse(args[0])
		if err != nil {
			return err
		}

		f, err := os.Open(args[1])
		if err != nil {
			return err
		}

		defer f.Close()

		table, err := tabular.Read(f)
		if err != nil {
			return err
		}

		values := table.Values()
		area := a1.ForData(rng, len(values), len(table.Header))

		client, err := newClient(cmd.Context(), cfg, auth.Sheets)
		if err != nil {
			return err
		}

		updated, err := client.Update(cmd.Context(), area, values)
		if err != nil {
			return err
		}

		color.Green("✓ updated %v cells in %s", updated, area)

		return nil
	},
}
