package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheetkit/sheetkit/internal/config"
)

func TestSpreadsheetID(t *testing.T) {
	tests := []struct {
		cfg      config.Config
		expected string
	}{
		{config.Config{Spreadsheet: "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"}, "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"},
		{config.Config{URL: "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"}, "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"},
		{config.Config{URL: "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms/edit#gid=0"}, "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"},
		{config.Config{Spreadsheet: "explicit", URL: "https://docs.google.com/spreadsheets/d/from-url"}, "explicit"},
	}

	for _, test := range tests {
		id, err := spreadsheetID(test.cfg)

		require.NoError(t, err)
		assert.Equal(t, test.expected, id)
	}
}

func TestSpreadsheetIDErrors(t *testing.T) {
	tests := []config.Config{
		{},
		{URL: "https://docs.google.com/spreadsheets/d/"},
		{URL: "https://example.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"},
	}

	for _, cfg := range tests {
		_, err := spreadsheetID(cfg)

		assert.Error(t, err, "cfg: %+v", cfg)
	}
}

func TestParseSides(t *testing.T) {
	sides, err := parseSides("top, Bottom")

	require.NoError(t, err)
	assert.True(t, sides.Top)
	assert.True(t, sides.Bottom)
	assert.False(t, sides.Left)
	assert.False(t, sides.Right)

	_, err = parseSides("top,diagonal")
	assert.Error(t, err)
}

func TestParseMergeType(t *testing.T) {
	mt, err := parseMergeType("columns")
	require.NoError(t, err)
	assert.Equal(t, "MERGE_COLUMNS", string(mt))

	mt, err = parseMergeType("")
	require.NoError(t, err)
	assert.Equal(t, "MERGE_ALL", string(mt))

	_, err = parseMergeType("diagonal")
	assert.Error(t, err)
}
