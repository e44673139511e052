package cli

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sheetkit/sheetkit/a1"
	"github.com/sheetkit/sheetkit/auth"
)

var selectCmd = &cobra.Command{
	Use:   "select <range>",
	Short: "Prints the cell values in a range as tab-separated text",
	Example: `  sheetkit select "Inventory!A1:D25"
  sheetkit select "Inventory!B2:D"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		rng, err := a1.Parse(args[0])
		if err != nil {
			return err
		}

		client, err := newClient(cmd.Context(), cfg, auth.SheetsReadOnly)
		if err != nil {
			return err
		}

		values, err := client.Select(cmd.Context(), rng)
		if err != nil {
			return err
		}

		w := csv.NewWriter(os.Stdout)
		w.Comma = '\t'

		for _, row := range values {
			record := make([]string, len(row))
			for i, v := range row {
				record[i] = fmt.Sprintf("%v", v)
			}

			if err := w.Write(record); err != nil {
				return err
			}
		}

		w.Flush()

		return w.Error()
	},
}
