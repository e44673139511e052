package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheetkit/sheetkit/a1"
)

func TestBorderRequest(t *testing.T) {
	grid := gridRange(a1.MustParse("Sheet1!B2:C10"), 100)

	rq := borderRequest(grid, Borders{Style: BorderSolid})

	require.NotNil(t, rq.RepeatCell, "default border mode is per-cell")

	assert.Equal(t, "userEnteredFormat.borders", rq.RepeatCell.Fields)

	borders := rq.RepeatCell.Cell.UserEnteredFormat.Borders
	for _, border := range []any{borders.Top, borders.Bottom, borders.Left, borders.Right} {
		assert.NotNil(t, border, "zero Sides must default to all sides")
	}

	assert.Equal(t, "SOLID", borders.Top.Style)
	require.NotNil(t, borders.Top.ColorStyle.RgbColor, "default border colour is black")
	assert.Equal(t, 1.0, borders.Top.ColorStyle.RgbColor.Alpha)
}

func TestBorderRequestWithSides(t *testing.T) {
	grid := gridRange(a1.MustParse("Sheet1!B2:C10"), 100)

	rq := borderRequest(grid, Borders{
		Style: BorderSolidThick,
		Sides: Sides{Top: true, Bottom: true},
	})

	borders := rq.RepeatCell.Cell.UserEnteredFormat.Borders
	assert.NotNil(t, borders.Top)
	assert.NotNil(t, borders.Bottom)
	assert.Nil(t, borders.Left)
	assert.Nil(t, borders.Right)
}

func TestBorderRequestWithOutline(t *testing.T) {
	grid := gridRange(a1.MustParse("Sheet1!B2:C10"), 100)

	red, err := NewColor(1, 0, 0)
	require.NoError(t, err)

	rq := borderRequest(grid, Borders{
		Style:   BorderDashed,
		Color:   &red,
		Outline: true,
	})

	require.NotNil(t, rq.UpdateBorders)

	assert.Equal(t, grid, rq.UpdateBorders.Range)
	assert.Equal(t, "DASHED", rq.UpdateBorders.Top.Style)
	assert.Equal(t, 1.0, rq.UpdateBorders.Top.ColorStyle.RgbColor.Red)
}

func TestBorderRequestWithThemeColour(t *testing.T) {
	grid := gridRange(a1.MustParse("Sheet1!B2:C10"), 100)

	rq := borderRequest(grid, Borders{
		Style: BorderSolid,
		Theme: ThemeAccent2,
	})

	assert.Equal(t, "ACCENT2", rq.RepeatCell.Cell.UserEnteredFormat.Borders.Top.ColorStyle.ThemeColor)
}

func TestBorderRequestWithEmptyStyleClearsBorders(t *testing.T) {
	grid := gridRange(a1.MustParse("Sheet1!B2:C10"), 100)

	rq := borderRequest(grid, Borders{})

	require.NotNil(t, rq.RepeatCell)

	borders := rq.RepeatCell.Cell.UserEnteredFormat.Borders
	assert.Nil(t, borders.Top)
	assert.Nil(t, borders.Bottom)
	assert.Nil(t, borders.Left)
	assert.Nil(t, borders.Right)
}
