// Package a1 implements parsing and manipulation of A1 notation cell ranges
// e.g. 'Transactions!B2:F10'.
//
// Rows and columns are 1-based; a zero end row/column marks an open-ended
// range ('B2:F' spans every row from 2 down). Ranges are plain values -
// derived ranges never modify the original.
package a1

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var ErrInvalidRange = errors.New("invalid range")

var a1Expr = regexp.MustCompile(`^([A-Z]+)([0-9]+)(?::([A-Z]+)([0-9]*))?$`)

// Range identifies a rectangular cell region on a worksheet.
type Range struct {
	Sheet   string
	FromRow int
	FromCol int
	ToRow   int // 0: unbounded
	ToCol   int // 0: unbounded
}

// Parse extracts a Range from A1 notation. Accepted forms are 'A1',
// 'A1:F10' and 'A1:F', optionally prefixed with a worksheet name and '!'.
func Parse(s string) (Range, error) {
	r := Range{}

	cells := strings.TrimSpace(s)
	if ix := strings.LastIndex(cells, "!"); ix != -1 {
		r.Sheet = cells[:ix]
		cells = cells[ix+1:]
	}

	match := a1Expr.FindStringSubmatch(cells)
	if match == nil {
		return Range{}, fmt.Errorf("%w: '%s' - expected something like 'Sheet1!A6:F10'", ErrInvalidRange, s)
	}

	r.FromCol = ColumnNumber(match[1])
	r.FromRow, _ = strconv.Atoi(match[2])

	if match[3] != "" {
		r.ToCol = ColumnNumber(match[3])
	}

	if match[4] != "" {
		r.ToRow, _ = strconv.Atoi(match[4])
	}

	return r.normalised(), nil
}

// MustParse is Parse for initializers and tests - it panics on invalid input.
func MustParse(s string) Range {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return r
}

// ForData sizes a range to exactly cover a rows x cols value matrix anchored
// at the range start.
func ForData(r Range, rows, cols int) Range {
	r = r.normalised()

	if rows > 0 {
		r.ToRow = r.FromRow + rows - 1
	}

	if cols > 0 {
		r.ToCol = r.FromCol + cols - 1
	}

	return r.normalised()
}

// normalised clamps a range to the invariants start >= 1 and end >= start
// (for bounded ends).
func (r Range) normalised() Range {
	if r.FromRow < 1 {
		r.FromRow = 1
	}

	if r.FromCol < 1 {
		r.FromCol = 1
	}

	if r.ToRow != 0 && r.ToRow < r.FromRow {
		r.ToRow = r.FromRow
	}

	if r.ToCol != 0 && r.ToCol < r.FromCol {
		r.ToCol = r.FromCol
	}

	return r
}

// WithSheet returns a copy of the range bound to the named worksheet.
func (r Range) WithSheet(sheet string) Range {
	r.Sheet = sheet
	return r
}

// NextRow shifts the range down one row, preserving its height.
func (r Range) NextRow() Range {
	r.FromRow++
	if r.ToRow != 0 {
		r.ToRow++
	}

	return r.normalised()
}

// Row derives the range covering rows [offset..offset+span-1] relative to the
// range's first row, spanning the same columns. A span < 1 yields one row.
func (r Range) Row(offset, span int) Range {
	if span < 1 {
		span = 1
	}

	r.FromRow += offset
	r = r.normalised()
	r.ToRow = r.FromRow + span - 1

	return r
}

// Start returns the top-left cell in A1 notation.
func (r Range) Start() string {
	r = r.normalised()
	return fmt.Sprintf("%s%d", ColumnName(r.FromCol), r.FromRow)
}

// End returns the bottom-right cell in A1 notation ('F10' or 'F' for an
// open-ended row), or "" when both ends are unbounded.
func (r Range) End() string {
	r = r.normalised()

	switch {
	case r.ToCol == 0 && r.ToRow == 0:
		return ""

	case r.ToRow == 0:
		return ColumnName(r.ToCol)

	case r.ToCol == 0:
		return fmt.Sprintf("%s%d", ColumnName(r.FromCol), r.ToRow)

	default:
		return fmt.Sprintf("%s%d", ColumnName(r.ToCol), r.ToRow)
	}
}

// String renders the range in canonical A1 notation, including the worksheet
// name if one is set.
func (r Range) String() string {
	var b strings.Builder

	if r.Sheet != "" {
		b.WriteString(r.Sheet)
		b.WriteString("!")
	}

	b.WriteString(r.Start())

	if end := r.End(); end != "" {
		b.WriteString(":")
		b.WriteString(end)
	}

	return b.String()
}

// ColumnNumber converts a column name to its 1-based index ('A' is 1,
// 'AA' is 27). Returns 0 for anything other than uppercase letters.
func ColumnNumber(name string) int {
	n := 0
	for _, c := range name {
		if c < 'A' || c > 'Z' {
			return 0
		}

		n = n*26 + 1 + int(c-'A')
	}

	return n
}

// ColumnName converts a 1-based column index to its name. Returns "" for
// indices smaller than 1.
func ColumnName(n int) string {
	name := []byte{}

	for n > 0 {
		name = append([]byte{byte('A' + (n-1)%26)}, name...)
		n = (n - 1) / 26
	}

	return string(name)
}
