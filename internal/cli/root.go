// Package cli implements the sheetkit command set. Each subcommand loads
// the resolved configuration, builds an authorised sheet.Client and runs a
// single spreadsheet operation.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sheetkit/sheetkit/auth"
	"github.com/sheetkit/sheetkit/internal/config"
	"github.com/sheetkit/sheetkit/internal/logger"
	"github.com/sheetkit/sheetkit/sheet"
)

var rootCmd = &cobra.Command{
	Use:   "sheetkit",
	Short: "Command line client for Google Sheets",
	Long: `sheetkit reads, updates and formats Google Sheets worksheets from the
command line. Data is exchanged as tab-separated text so that worksheets can
be piped to and from other tools.

Run 'sheetkit authorise' once to grant access before using the other
commands.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		logger.SetVerbose(cfg.Verbose)

		return nil
	},
}

// Execute runs the root command.
func Execute(version string) error {
	rootCmd.Version = version

	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("credentials", "", "Path to the client_secret.json file downloaded from the Google Cloud console")
	rootCmd.PersistentFlags().String("token", "", "Path to the cached OAuth2 token")
	rootCmd.PersistentFlags().String("url", "", "Spreadsheet URL e.g. 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'")
	rootCmd.PersistentFlags().String("spreadsheet", "", "Spreadsheet ID (alternative to --url)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enables debug output")
	rootCmd.PersistentFlags().Float64("rate-limit", 4.0, "Maximum Sheets API requests per second")

	viper.BindPFlag("credentials", rootCmd.PersistentFlags().Lookup("credentials"))
	viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))
	viper.BindPFlag("url", rootCmd.PersistentFlags().Lookup("url"))
	viper.BindPFlag("spreadsheet", rootCmd.PersistentFlags().Lookup("spreadsheet"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("rate-limit", rootCmd.PersistentFlags().Lookup("rate-limit"))

	rootCmd.AddCommand(authoriseCmd)
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(putCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(borderCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(worksheetsCmd)
	rootCmd.AddCommand(revisionCmd)
	rootCmd.AddCommand(versionCmd)
}

// newClient builds an authorised sheet.Client for the configured
// spreadsheet.
func newClient(ctx context.Context, cfg config.Config, scopes ...string) (*sheet.Client, error) {
	id, err := spreadsheetID(cfg)
	if err != nil {
		return nil, err
	}

	oauth, err := auth.Config(cfg.Credentials, scopes...)
	if err != nil {
		return nil, err
	}

	ts, err := auth.TokenSource(ctx, oauth, cfg.Token)
	if err != nil {
		return nil, err
	}

	logger.Debug("spreadsheet ID %s", id)

	return sheet.New(ctx, id,
		sheet.WithTokenSource(ts),
		sheet.WithRateLimit(cfg.RateLimit, cfg.Burst))
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}

	if cfg.Credentials == "" {
		return config.Config{}, fmt.Errorf("--credentials is a required option")
	}

	return cfg, nil
}
