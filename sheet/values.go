package sheet

import (
	"context"
	"fmt"

	sheets "google.golang.org/api/sheets/v4"

	"github.com/sheetkit/sheetkit/a1"
)

// Select reads the values in a range. Cells are returned as the Sheets API
// renders them (strings, float64, bool); an empty range yields no rows.
func (c *Client) Select(ctx context.Context, rng a1.Range) ([][]any, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	response, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng.String()).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve data from sheet (%w)", err)
	}

	return response.Values, nil
}

// Update writes a matrix of values anchored at the range start, interpreting
// the values as if they had been typed in ('USER_ENTERED'). Returns the
// number of updated cells.
func (c *Client) Update(ctx context.Context, rng a1.Range, values [][]any) (int64, error) {
	if err := c.wait(ctx); err != nil {
		return 0, err
	}

	rq := updateRequest(rng, values)

	response, err := c.svc.Spreadsheets.Values.BatchUpdate(c.spreadsheetID, rq).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("unable to update sheet values (%w)", err)
	}

	return response.TotalUpdatedCells, nil
}

// UpdateIfEmpty writes the values only if the target range has no data,
// returning 0 without writing otherwise.
func (c *Client) UpdateIfEmpty(ctx context.Context, rng a1.Range, values [][]any) (int64, error) {
	existing, err := c.Select(ctx, rng)
	if err != nil {
		return 0, err
	}

	if len(existing) > 0 {
		return 0, nil
	}

	return c.Update(ctx, rng, values)
}

// Clear removes the values in a range, leaving formatting intact.
func (c *Client) Clear(ctx context.Context, rng a1.Range) error {
	if err := c.wait(ctx); err != nil {
		return err
	}

	rq := sheets.ClearValuesRequest{}

	if _, err := c.svc.Spreadsheets.Values.Clear(c.spreadsheetID, rng.String(), &rq).Context(ctx).Do(); err != nil {
		return fmt.Errorf("unable to clear sheet values (%w)", err)
	}

	return nil
}

func updateRequest(rng a1.Range, values [][]any) *sheets.BatchUpdateValuesRequest {
	return &sheets.BatchUpdateValuesRequest{
		ValueInputOption: "USER_ENTERED",
		Data: []*sheets.ValueRange{
			valueRange(rng, values),
		},
	}
}

func valueRange(rng a1.Range, values [][]any) *sheets.ValueRange {
	return &sheets.ValueRange{
		Range:  rng.String(),
		Values: values,
	}
}
