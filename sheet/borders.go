package sheet

import (
	"context"

	sheets "google.golang.org/api/sheets/v4"

	"github.com/sheetkit/sheetkit/a1"
)

// Sides selects the borders to draw or clear.
type Sides struct {
	Top    bool
	Bottom bool
	Left   bool
	Right  bool
}

// AllSides selects every border.
var AllSides = Sides{Top: true, Bottom: true, Left: true, Right: true}

// Borders describes a border update. An empty Style clears the selected
// borders. A zero Sides defaults to AllSides. By default borders are drawn
// around every cell in the range; Outline draws them around the range
// perimeter instead.
type Borders struct {
	Style   BorderStyle
	Color   *Color
	Theme   ThemeColor
	Sides   Sides
	Outline bool
}

// SetBorders draws the described borders on the range.
func (c *Client) SetBorders(ctx context.Context, rng a1.Range, borders Borders) error {
	grid, err := c.gridRange(ctx, rng)
	if err != nil {
		return err
	}

	return c.batchUpdate(ctx, borderRequest(grid, borders))
}

// ClearBorders removes the borders from every cell in the range.
func (c *Client) ClearBorders(ctx context.Context, rng a1.Range) error {
	return c.SetBorders(ctx, rng, Borders{})
}

func (b Borders) border() *sheets.Border {
	if b.Style == "" {
		return nil
	}

	border := sheets.Border{
		Style: string(b.Style),
	}

	switch {
	case b.Color != nil:
		border.ColorStyle = b.Color.ColorStyle()

	case b.Theme != "":
		border.ColorStyle = themeColorStyle(b.Theme)

	default:
		border.ColorStyle = Black.ColorStyle()
	}

	return &border
}

func borderRequest(grid *sheets.GridRange, b Borders) *sheets.Request {
	if b.Sides == (Sides{}) {
		b.Sides = AllSides
	}

	var top, bottom, left, right *sheets.Border

	if border := b.border(); border != nil {
		if b.Sides.Top {
			top = border
		}

		if b.Sides.Bottom {
			bottom = border
		}

		if b.Sides.Left {
			left = border
		}

		if b.Sides.Right {
			right = border
		}
	}

	if b.Outline {
		return &sheets.Request{
			UpdateBorders: &sheets.UpdateBordersRequest{
				Range:  grid,
				Top:    top,
				Bottom: bottom,
				Left:   left,
				Right:  right,
			},
		}
	}

	return &sheets.Request{
		RepeatCell: &sheets.RepeatCellRequest{
			Range: grid,
			Cell: &sheets.CellData{
				UserEnteredFormat: &sheets.CellFormat{
					Borders: &sheets.Borders{
						Top:    top,
						Bottom: bottom,
						Left:   left,
						Right:  right,
					},
				},
			},
			Fields: "userEnteredFormat.borders",
		},
	}
}
