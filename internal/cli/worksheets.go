package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sheetkit/sheetkit/auth"
)

var worksheetsCmd = &cobra.Command{
	Use:   "worksheets",
	Short: "Lists the worksheets in the spreadsheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		client, err := newClient(cmd.Context(), cfg, auth.SheetsReadOnly)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)

		fmt.Fprintln(w, "ID\tTITLE\tROWS\tCOLUMNS")
		for _, worksheet := range client.Worksheets() {
			fmt.Fprintf(w, "%v\t%s\t%v\t%v\n", worksheet.ID, worksheet.Title, worksheet.Rows, worksheet.Columns)
		}

		return w.Flush()
	},
}
