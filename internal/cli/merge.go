package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sheetkit/sheetkit/a1"
	"github.com/sheetkit/sheetkit/auth"
	"github.com/sheetkit/sheetkit/sheet"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <range>",
	Short: "Merges or unmerges the cells in a range",
	Example: `  sheetkit merge "Inventory!A1:D1"
  sheetkit merge "Inventory!A1:D4" --type columns
  sheetkit merge "Inventory!A1:D4" --unmerge`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		mergeType, _ := cmd.Flags().GetString("type")
		unmerge, _ := cmd.Flags().GetBool("unmerge")

		rng, err := a1.Parse(args[0])
		if err != nil {
			return err
		}

		client, err := newClient(cmd.Context(), cfg, auth.Sheets)
		if err != nil {
			return err
		}

		if unmerge {
			if err := client.Unmerge(cmd.Context(), rng); err != nil {
				return err
			}

			color.Green("✓ unmerged %s", rng)

			return nil
		}

		mt, err := parseMergeType(mergeType)
		if err != nil {
			return err
		}

		if err := client.Merge(cmd.Context(), rng, mt); err != nil {
			return err
		}

		color.Green("✓ merged %s", rng)

		return nil
	},
}

func init() {
	mergeCmd.Flags().String("type", "all", "Merge type (all, columns, rows)")
	mergeCmd.Flags().Bool("unmerge", false, "Unmerge the cells in the range")
}

func parseMergeType(v string) (sheet.MergeType, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "all":
		return sheet.MergeAll, nil
	case "columns":
		return sheet.MergeColumns, nil
	case "rows":
		return sheet.MergeRows, nil
	default:
		return "", fmt.Errorf("invalid merge type '%s' - expected all, columns or rows", v)
	}
}
