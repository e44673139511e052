package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/sheetkit/sheetkit/auth"
	"github.com/sheetkit/sheetkit/sheet"
)

var revisionCmd = &cobra.Command{
	Use:   "revision",
	Short: "Prints the spreadsheet's latest revision",
	Long: `Prints the spreadsheet's latest revision ID and timestamp, for use in
scripts that only want to act when the spreadsheet has changed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		id, err := spreadsheetID(cfg)
		if err != nil {
			return err
		}

		oauth, err := auth.Config(cfg.Credentials, auth.DriveReadOnly)
		if err != nil {
			return err
		}

		ts, err := auth.TokenSource(cmd.Context(), oauth, cfg.Token)
		if err != nil {
			return err
		}

		gdrive, err := drive.NewService(cmd.Context(), option.WithTokenSource(ts))
		if err != nil {
			return fmt.Errorf("unable to create Drive client (%w)", err)
		}

		revision, err := sheet.LatestRevision(cmd.Context(), gdrive, id)
		if err != nil {
			return err
		}

		fmt.Printf("%s  %s\n", revision.ID, revision.Modified.Format("2006-01-02 15:04:05 MST"))

		return nil
	},
}
