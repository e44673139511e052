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

var borderCmd = &cobra.Command{
	Use:   "border <range>",
	Short: "Draws or clears cell borders on a range",
	Long: `Draws borders on a range. By default every cell in the range is
bordered on all four sides; --outline borders the range perimeter instead and
--sides restricts the borders drawn. --clear removes existing borders.`,
	Example: `  sheetkit border "Inventory!A1:D1" --style SOLID_THICK --color "#1A73E8"
  sheetkit border "Inventory!A1:D25" --outline
  sheetkit border "Inventory!A1:D25" --clear`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		style, _ := cmd.Flags().GetString("style")
		hex, _ := cmd.Flags().GetString("color")
		sides, _ := cmd.Flags().GetString("sides")
		outline, _ := cmd.Flags().GetBool("outline")
		clear, _ := cmd.Flags().GetBool("clear")

		rng, err := a1.Parse(args[0])
		if err != nil {
			return err
		}

		client, err := newClient(cmd.Context(), cfg, auth.Sheets)
		if err != nil {
			return err
		}

		if clear {
			if err := client.ClearBorders(cmd.Context(), rng); err != nil {
				return err
			}

			color.Green("✓ cleared borders on %s", rng)

			return nil
		}

		borders := sheet.Borders{
			Style:   sheet.BorderStyle(strings.ToUpper(style)),
			Outline: outline,
		}

		if hex != "" {
			c, err := sheet.ParseHexColor(hex)
			if err != nil {
				return err
			}

			borders.Color = &c
		}

		if sides != "" {
			borders.Sides, err = parseSides(sides)
			if err != nil {
				return err
			}
		}

		if err := client.SetBorders(cmd.Context(), rng, borders); err != nil {
			return err
		}

		color.Green("✓ set borders on %s", rng)

		return nil
	},
}

func init() {
	borderCmd.Flags().String("style", "SOLID", "Border style (SOLID, SOLID_MEDIUM, SOLID_THICK, DASHED, DOTTED, DOUBLE)")
	borderCmd.Flags().String("color", "", "Border colour as #RRGGBB. Defaults to black")
	borderCmd.Flags().String("sides", "", "Comma-separated sides to border (top,bottom,left,right). Defaults to all")
	borderCmd.Flags().Bool("outline", false, "Border the range perimeter instead of every cell")
	borderCmd.Flags().Bool("clear", false, "Remove existing borders")
}

func parseSides(list string) (sheet.Sides, error) {
	sides := sheet.Sides{}

	for _, side := range strings.Split(list, ",") {
		switch strings.ToLower(strings.TrimSpace(side)) {
		case "top":
			sides.Top = true
		case "bottom":
			sides.Bottom = true
		case "left":
			sides.Left = true
		case "right":
			sides.Right = true
		default:
			return sheet.Sides{}, fmt.Errorf("invalid side '%s' - expected top, bottom, left or right", side)
		}
	}

	return sides, nil
}
