package sheet

import (
	"context"
	"fmt"

	sheets "google.golang.org/api/sheets/v4"

	"github.com/sheetkit/sheetkit/a1"
)

// Batch accumulates value writes and formatting requests and submits them in
// (at most) two API calls - one values.batchUpdate for the queued writes
// followed by one spreadsheets.batchUpdate for the queued requests. A Batch
// is not safe for concurrent use.
type Batch struct {
	client   *Client
	data     []*sheets.ValueRange
	requests []*sheets.Request
}

// Batch creates an empty batch bound to the client's spreadsheet.
func (c *Client) Batch() *Batch {
	return &Batch{
		client: c,
	}
}

// Update queues a value write.
func (b *Batch) Update(rng a1.Range, values [][]any) {
	b.data = append(b.data, valueRange(rng, values))
}

// FormatText queues a text formatting update.
func (b *Batch) FormatText(ctx context.Context, rng a1.Range, format TextFormat) error {
	grid, err := b.client.gridRange(ctx, rng)
	if err != nil {
		return err
	}

	b.requests = append(b.requests, textFormatRequest(grid, format))

	return nil
}

// FormatCells queues a cell formatting update.
func (b *Batch) FormatCells(ctx context.Context, rng a1.Range, format CellFormat) error {
	grid, err := b.client.gridRange(ctx, rng)
	if err != nil {
		return err
	}

	b.requests = append(b.requests, cellFormatRequest(grid, format))

	return nil
}

// SetBorders queues a border update.
func (b *Batch) SetBorders(ctx context.Context, rng a1.Range, borders Borders) error {
	grid, err := b.client.gridRange(ctx, rng)
	if err != nil {
		return err
	}

	b.requests = append(b.requests, borderRequest(grid, borders))

	return nil
}

// Merge queues a cell merge.
func (b *Batch) Merge(ctx context.Context, rng a1.Range, mergeType MergeType) error {
	grid, err := b.client.gridRange(ctx, rng)
	if err != nil {
		return err
	}

	b.requests = append(b.requests, mergeRequest(grid, mergeType))

	return nil
}

// Unmerge queues a cell unmerge.
func (b *Batch) Unmerge(ctx context.Context, rng a1.Range) error {
	grid, err := b.client.gridRange(ctx, rng)
	if err != nil {
		return err
	}

	b.requests = append(b.requests, unmergeRequest(grid))

	return nil
}

// Size returns the number of queued operations.
func (b *Batch) Size() int {
	return len(b.data) + len(b.requests)
}

// Flush submits the queued operations - value writes first, then formatting
// requests - and resets the batch. A flush of an empty batch is a no-op.
// Value writes are dequeued as soon as they are applied, so if the request
// submission fails a retried Flush re-submits only the requests.
func (b *Batch) Flush(ctx context.Context) (int64, error) {
	updated := int64(0)

	if len(b.data) > 0 {
		if err := b.client.wait(ctx); err != nil {
			return 0, err
		}

		rq := sheets.BatchUpdateValuesRequest{
			ValueInputOption: "USER_ENTERED",
			Data:             b.data,
		}

		response, err := b.client.svc.Spreadsheets.Values.BatchUpdate(b.client.spreadsheetID, &rq).Context(ctx).Do()
		if err != nil {
			return 0, fmt.Errorf("unable to update sheet values (%w)", err)
		}

		updated = response.TotalUpdatedCells
		b.data = nil
	}

	if len(b.requests) > 0 {
		if err := b.client.batchUpdate(ctx, b.requests...); err != nil {
			return updated, err
		}
	}

	b.requests = nil

	return updated, nil
}
