package a1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		a1       string
		expected Range
	}{
		{"Sheet1!B2:C10", Range{Sheet: "Sheet1", FromRow: 2, FromCol: 2, ToRow: 10, ToCol: 3}},
		{"Sheet1!B2:C", Range{Sheet: "Sheet1", FromRow: 2, FromCol: 2, ToCol: 3}},
		{"Sheet1!B2", Range{Sheet: "Sheet1", FromRow: 2, FromCol: 2}},
		{"B2:C10", Range{FromRow: 2, FromCol: 2, ToRow: 10, ToCol: 3}},
		{"A1", Range{FromRow: 1, FromCol: 1}},
		{"AA10:AB12", Range{FromRow: 10, FromCol: 27, ToRow: 12, ToCol: 28}},
		{"Class Data!A2:E", Range{Sheet: "Class Data", FromRow: 2, FromCol: 1, ToCol: 5}},
	}

	for _, test := range tests {
		r, err := Parse(test.a1)

		require.NoError(t, err, "unexpected error parsing '%s'", test.a1)
		assert.Equal(t, test.expected, r, "incorrectly parsed '%s'", test.a1)
	}
}

func TestParseWithInvalidRange(t *testing.T) {
	tests := []string{
		"",
		"Sheet1!",
		"Sheet1!1:10",
		"Sheet1!b2:c10",
		"Sheet1!B:C",
		"2:10",
	}

	for _, test := range tests {
		_, err := Parse(test)

		assert.ErrorIs(t, err, ErrInvalidRange, "expected error parsing '%s'", test)
	}
}

func TestParseClampsInvertedRange(t *testing.T) {
	r, err := Parse("Sheet1!F10:B2")

	require.NoError(t, err)
	assert.Equal(t, Range{Sheet: "Sheet1", FromRow: 10, FromCol: 6, ToRow: 10, ToCol: 6}, r)
}

func TestString(t *testing.T) {
	tests := []struct {
		r        Range
		expected string
	}{
		{Range{Sheet: "Sheet1", FromRow: 2, FromCol: 2, ToRow: 10, ToCol: 3}, "Sheet1!B2:C10"},
		{Range{Sheet: "Sheet1", FromRow: 2, FromCol: 2, ToCol: 3}, "Sheet1!B2:C"},
		{Range{FromRow: 2, FromCol: 2}, "B2"},
		{Range{}, "A1"},
		{Range{FromRow: 10, FromCol: 27, ToRow: 12, ToCol: 28}, "AA10:AB12"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.r.String())
	}
}

func TestParseStringRoundTrip(t *testing.T) {
	for _, a1 := range []string{"Sheet1!B2:C10", "Sheet1!B2:C", "B2", "Data!AA1:AB100"} {
		assert.Equal(t, a1, MustParse(a1).String())
	}
}

func TestForData(t *testing.T) {
	r := ForData(MustParse("Sheet1!B2"), 3, 4)

	assert.Equal(t, Range{Sheet: "Sheet1", FromRow: 2, FromCol: 2, ToRow: 4, ToCol: 5}, r)
}

func TestForDataWithEmptyData(t *testing.T) {
	r := ForData(MustParse("Sheet1!B2:F10"), 0, 0)

	assert.Equal(t, Range{Sheet: "Sheet1", FromRow: 2, FromCol: 2, ToRow: 10, ToCol: 6}, r)
}

func TestNextRow(t *testing.T) {
	r := MustParse("Sheet1!B2:F2")

	assert.Equal(t, MustParse("Sheet1!B3:F3"), r.NextRow())
	assert.Equal(t, MustParse("Sheet1!B2:F2"), r, "NextRow modified the original range")
}

func TestRow(t *testing.T) {
	r := MustParse("Sheet1!B2:F10")

	assert.Equal(t, MustParse("Sheet1!B2:F2"), r.Row(0, 1))
	assert.Equal(t, MustParse("Sheet1!B5:F6"), r.Row(3, 2))
}

func TestColumnNumber(t *testing.T) {
	tests := map[string]int{
		"A":   1,
		"B":   2,
		"Z":   26,
		"AA":  27,
		"AZ":  52,
		"BA":  53,
		"ZZ":  702,
		"AAA": 703,
		"a":   0,
		"":    0,
	}

	for name, expected := range tests {
		assert.Equal(t, expected, ColumnNumber(name), "incorrect column number for '%s'", name)
	}
}

func TestColumnName(t *testing.T) {
	tests := map[int]string{
		1:   "A",
		2:   "B",
		26:  "Z",
		27:  "AA",
		52:  "AZ",
		53:  "BA",
		702: "ZZ",
		703: "AAA",
		0:   "",
	}

	for n, expected := range tests {
		assert.Equal(t, expected, ColumnName(n), "incorrect column name for %d", n)
	}
}

func TestColumnNameNumberRoundTrip(t *testing.T) {
	for n := 1; n <= 1000; n++ {
		assert.Equal(t, n, ColumnNumber(ColumnName(n)))
	}
}
