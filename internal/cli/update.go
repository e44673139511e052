package cli

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sheetkit/sheetkit/a1"
	"github.com/sheetkit/sheetkit/auth"
)

var updateCmd = &cobra.Command{
	Use:   "update <range>",
	Short: "Writes tab-separated values from stdin to a range",
	Long: `Writes tab-separated values from stdin (or --file) to a range. Unlike
'put' the rows are written as-is, without header validation. With --if-empty
the range is only written when it currently has no values.`,
	Example: `  echo "widget	7" | sheetkit update "Inventory!A2:B2"
  sheetkit update "Inventory!A1" --file rows.tsv --if-empty`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		file, _ := cmd.Flags().GetString("file")
		ifEmpty, _ := cmd.Flags().GetBool("if-empty")

		rng, err := a1.Parse(args[0])
		if err != nil {
			return err
		}

		var in io.Reader = os.Stdin
		if file != "" {
			f, err := os.Open(file)
			if err != nil {
				return err
			}

			defer f.Close()

			in = f
		}

		values, err := readValues(in)
		if err != nil {
			return err
		}

		client, err := newClient(cmd.Context(), cfg, auth.Sheets)
		if err != nil {
			return err
		}

		area := a1.ForData(rng, len(values), width(values))

		var updated int64
		if ifEmpty {
			updated, err = client.UpdateIfEmpty(cmd.Context(), area, values)
		} else {
			updated, err = client.Update(cmd.Context(), area, values)
		}

		if err != nil {
			return err
		}

		if updated == 0 && ifEmpty {
			color.Yellow("⚠ %s is not empty - no cells updated", area)
			return nil
		}

		color.Green("✓ updated %v cells in %s", updated, area)

		return nil
	},
}

func init() {
	updateCmd.Flags().String("file", "", "Read values from a TSV file instead of stdin")
	updateCmd.Flags().Bool("if-empty", false, "Only write when the range currently has no values")
}

func readValues(in io.Reader) ([][]any, error) {
	r := csv.NewReader(in)
	r.Comma = '\t'
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	values := make([][]any, len(records))
	for i, record := range records {
		row := make([]any, len(record))
		for j, v := range record {
			row[j] = v
		}
		values[i] = row
	}

	return values, nil
}

func width(values [][]any) int {
	w := 0
	for _, row := range values {
		if len(row) > w {
			w = len(row)
		}
	}

	return w
}
