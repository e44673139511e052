package sheet

import (
	"context"
	"strings"

	sheets "google.golang.org/api/sheets/v4"

	"github.com/sheetkit/sheetkit/a1"
)

// TextFormat describes run-level text formatting. Zero-value fields are left
// untouched; an entirely zero TextFormat clears all text formatting (see
// ClearTextFormat). The *bool fields distinguish 'unset' from 'off' - use
// Bool.
type TextFormat struct {
	Foreground    *Color
	Theme         ThemeColor
	FontFamily    string
	FontSize      int64
	Bold          *bool
	Italic        *bool
	Strikethrough *bool
	Underline     *bool
	Link          string
}

// NumberFormat is a cell number format, e.g. {NumberFormatDate, "yyyy-mm-dd"}.
type NumberFormat struct {
	Type    NumberFormatType
	Pattern string
}

// Padding is cell padding in pixels.
type Padding struct {
	Top    int64
	Right  int64
	Bottom int64
	Left   int64
}

// TextRotation rotates cell text by an angle, or stacks it vertically.
type TextRotation struct {
	Angle    int64
	Vertical bool
}

// CellFormat describes cell-level formatting. Zero-value fields are left
// untouched; an entirely zero CellFormat clears all cell formatting (see
// ClearCellFormat).
type CellFormat struct {
	NumberFormat     *NumberFormat
	Background       *Color
	Theme            ThemeColor
	Padding          *Padding
	HorizontalAlign  HorizontalAlign
	VerticalAlign    VerticalAlign
	Wrap             WrapStrategy
	TextDirection    TextDirection
	HyperlinkDisplay HyperlinkDisplay
	Rotation         *TextRotation
}

// FormatText applies text formatting to every cell in the range. Only the
// populated fields are written - the update's field mask is restricted to
// the fields set on the format.
func (c *Client) FormatText(ctx context.Context, rng a1.Range, format TextFormat) error {
	grid, err := c.gridRange(ctx, rng)
	if err != nil {
		return err
	}

	return c.batchUpdate(ctx, textFormatRequest(grid, format))
}

// ClearTextFormat resets the text formatting of every cell in the range.
func (c *Client) ClearTextFormat(ctx context.Context, rng a1.Range) error {
	return c.FormatText(ctx, rng, TextFormat{})
}

// FormatCells applies cell formatting to every cell in the range. Only the
// populated fields are written.
func (c *Client) FormatCells(ctx context.Context, rng a1.Range, format CellFormat) error {
	grid, err := c.gridRange(ctx, rng)
	if err != nil {
		return err
	}

	return c.batchUpdate(ctx, cellFormatRequest(grid, format))
}

// ClearCellFormat resets the cell formatting of every cell in the range.
func (c *Client) ClearCellFormat(ctx context.Context, rng a1.Range) error {
	return c.FormatCells(ctx, rng, CellFormat{})
}

// Merge merges the cells in a range. An empty merge type defaults to
// MergeAll.
func (c *Client) Merge(ctx context.Context, rng a1.Range, mergeType MergeType) error {
	grid, err := c.gridRange(ctx, rng)
	if err != nil {
		return err
	}

	return c.batchUpdate(ctx, mergeRequest(grid, mergeType))
}

// Unmerge splits all merges intersecting the range.
func (c *Client) Unmerge(ctx context.Context, rng a1.Range) error {
	grid, err := c.gridRange(ctx, rng)
	if err != nil {
		return err
	}

	return c.batchUpdate(ctx, unmergeRequest(grid))
}

func (f TextFormat) textFormat() (*sheets.TextFormat, []string) {
	tf := sheets.TextFormat{}
	fields := []string{}

	switch {
	case f.Foreground != nil:
		tf.ForegroundColorStyle = f.Foreground.ColorStyle()
		fields = append(fields, "foregroundColorStyle")

	case f.Theme != "":
		tf.ForegroundColorStyle = themeColorStyle(f.Theme)
		fields = append(fields, "foregroundColorStyle")
	}

	if f.FontFamily != "" {
		tf.FontFamily = f.FontFamily
		fields = append(fields, "fontFamily")
	}

	if f.FontSize > 0 {
		tf.FontSize = f.FontSize
		fields = append(fields, "fontSize")
	}

	setOptional := func(field string, v *bool, dst *bool, force string) {
		if v != nil {
			*dst = *v
			tf.ForceSendFields = append(tf.ForceSendFields, force)
			fields = append(fields, field)
		}
	}

	setOptional("bold", f.Bold, &tf.Bold, "Bold")
	setOptional("italic", f.Italic, &tf.Italic, "Italic")
	setOptional("strikethrough", f.Strikethrough, &tf.Strikethrough, "Strikethrough")
	setOptional("underline", f.Underline, &tf.Underline, "Underline")

	if f.Link != "" {
		tf.Link = &sheets.Link{Uri: f.Link}
		fields = append(fields, "link")
	}

	return &tf, fields
}

func (f CellFormat) cellFormat() (*sheets.CellFormat, []string) {
	cf := sheets.CellFormat{}
	fields := []string{}

	if f.NumberFormat != nil {
		cf.NumberFormat = &sheets.NumberFormat{
			Type:    string(f.NumberFormat.Type),
			Pattern: f.NumberFormat.Pattern,
		}
		fields = append(fields, "numberFormat")
	}

	switch {
	case f.Background != nil:
		cf.BackgroundColorStyle = f.Background.ColorStyle()
		fields = append(fields, "backgroundColorStyle")

	case f.Theme != "":
		cf.BackgroundColorStyle = themeColorStyle(f.Theme)
		fields = append(fields, "backgroundColorStyle")
	}

	if f.Padding != nil {
		cf.Padding = &sheets.Padding{
			Top:             f.Padding.Top,
			Right:           f.Padding.Right,
			Bottom:          f.Padding.Bottom,
			Left:            f.Padding.Left,
			ForceSendFields: []string{"Top", "Right", "Bottom", "Left"},
		}
		fields = append(fields, "padding")
	}

	if f.HorizontalAlign != "" {
		cf.HorizontalAlignment = string(f.HorizontalAlign)
		fields = append(fields, "horizontalAlignment")
	}

	if f.VerticalAlign != "" {
		cf.VerticalAlignment = string(f.VerticalAlign)
		fields = append(fields, "verticalAlignment")
	}

	if f.Wrap != "" {
		cf.WrapStrategy = string(f.Wrap)
		fields = append(fields, "wrapStrategy")
	}

	if f.TextDirection != "" {
		cf.TextDirection = string(f.TextDirection)
		fields = append(fields, "textDirection")
	}

	if f.HyperlinkDisplay != "" {
		cf.HyperlinkDisplayType = string(f.HyperlinkDisplay)
		fields = append(fields, "hyperlinkDisplayType")
	}

	if f.Rotation != nil {
		cf.TextRotation = &sheets.TextRotation{
			Angle:    f.Rotation.Angle,
			Vertical: f.Rotation.Vertical,
		}
		fields = append(fields, "textRotation")
	}

	return &cf, fields
}

func textFormatRequest(grid *sheets.GridRange, format TextFormat) *sheets.Request {
	tf, fields := format.textFormat()

	return &sheets.Request{
		RepeatCell: &sheets.RepeatCellRequest{
			Range: grid,
			Cell: &sheets.CellData{
				UserEnteredFormat: &sheets.CellFormat{
					TextFormat: tf,
				},
			},
			Fields: fieldMask("userEnteredFormat.textFormat", fields),
		},
	}
}

func cellFormatRequest(grid *sheets.GridRange, format CellFormat) *sheets.Request {
	cf, fields := format.cellFormat()

	return &sheets.Request{
		RepeatCell: &sheets.RepeatCellRequest{
			Range: grid,
			Cell: &sheets.CellData{
				UserEnteredFormat: cf,
			},
			Fields: fieldMask("userEnteredFormat", fields),
		},
	}
}

func mergeRequest(grid *sheets.GridRange, mergeType MergeType) *sheets.Request {
	if mergeType == "" {
		mergeType = MergeAll
	}

	return &sheets.Request{
		MergeCells: &sheets.MergeCellsRequest{
			Range:     grid,
			MergeType: string(mergeType),
		},
	}
}

func unmergeRequest(grid *sheets.GridRange) *sheets.Request {
	return &sheets.Request{
		UnmergeCells: &sheets.UnmergeCellsRequest{
			Range: grid,
		},
	}
}

// fieldMask builds the update field mask for the populated fields, e.g.
// 'userEnteredFormat.textFormat.bold'. An empty field list masks the whole
// subtree, which resets it.
func fieldMask(base string, fields []string) string {
	if len(fields) == 0 {
		return base
	}

	mask := make([]string, len(fields))
	for i, f := range fields {
		mask[i] = base + "." + f
	}

	return strings.Join(mask, ",")
}
