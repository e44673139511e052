package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/sheetkit/sheetkit/a1"
	"github.com/sheetkit/sheetkit/auth"
	"github.com/sheetkit/sheetkit/internal/logger"
	"github.com/sheetkit/sheetkit/internal/tabular"
)

var getCmd = &cobra.Command{
	Use:   "get <range>",
	Short: "Downloads a worksheet range to a TSV file",
	Long: `Downloads a worksheet range to a TSV file. The first row of the range
is treated as the header row and column names must be unique.`,
	Example: `  sheetkit get "Inventory!A1:D" --file inventory.tsv`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		file, _ := cmd.Flags().GetString("file")
		if file == "" {
			file = time.Now().Format("2006-01-02T150405.tsv")
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

		table, err := tabular.FromValues(values)
		if err != nil {
			return err
		}

		tmp, err := os.CreateTemp(filepath.Dir(file), "sheetkit-*.tsv")
		if err != nil {
			return err
		}

		defer os.Remove(tmp.Name())

		if err := table.Write(tmp); err != nil {
			tmp.Close()
			return err
		}

		if err := tmp.Close(); err != nil {
			return err
		}

		if err := os.Rename(tmp.Name(), file); err != nil {
			return err
		}

		logger.Info("downloaded %v rows from %s", len(table.Records), rng)
		fmt.Printf("%s\n", file)

		return nil
	},
}

func init() {
	getCmd.Flags().String("file", "", "TSV file name. Defaults to '<yyyy-mm-ddTHHmmss>.tsv'")
}
