package cli

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sheetkit/sheetkit/internal/config"
)

var urlExpr = regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`)

// spreadsheetID resolves the spreadsheet ID from --spreadsheet or --url.
func spreadsheetID(cfg config.Config) (string, error) {
	if id := strings.TrimSpace(cfg.Spreadsheet); id != "" {
		return id, nil
	}

	url := strings.TrimSpace(cfg.URL)
	if url == "" {
		return "", fmt.Errorf("--url or --spreadsheet is a required option")
	}

	match := urlExpr.FindStringSubmatch(url)
	if len(match) < 2 || match[1] == "" {
		return "", fmt.Errorf("invalid spreadsheet URL - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'")
	}

	return match[1], nil
}
