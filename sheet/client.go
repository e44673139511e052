// Package sheet wraps the Google Sheets v4 API with range-oriented read,
// write and formatting operations.
//
// A Client is bound to a single spreadsheet. All operations take an A1
// notation range (package a1) and honour context cancellation; calls are
// paced by a token bucket rate limiter to stay inside the Sheets API
// per-user quotas.
package sheet

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"

	"github.com/sheetkit/sheetkit/a1"
)

// Sheets API read quota is 60 requests/min/user - the default limiter stays
// well inside that.
const (
	defaultRateLimit = 4.0
	defaultBurst     = 8
)

// Client is a Google Sheets client bound to a single spreadsheet. It caches
// the worksheet metadata retrieved when the client is created - use Refresh
// after adding/renaming worksheets out of band.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
	limiter       *rate.Limiter

	guard      sync.RWMutex
	worksheets []*sheets.SheetProperties
}

// Worksheet is the subset of worksheet metadata exposed by Worksheets.
type Worksheet struct {
	Title   string
	ID      int64
	Rows    int64
	Columns int64
}

type options struct {
	service    *sheets.Service
	clientOpts []option.ClientOption
	limit      rate.Limit
	burst      int
}

// Option configures a Client.
type Option func(*options)

// WithService supplies a prebuilt Sheets service.
func WithService(svc *sheets.Service) Option {
	return func(o *options) {
		o.service = svc
	}
}

// WithHTTPClient supplies an authorized HTTP client, e.g. from
// auth.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.clientOpts = append(o.clientOpts, option.WithHTTPClient(client))
	}
}

// WithTokenSource supplies an OAuth2 token source.
func WithTokenSource(ts oauth2.TokenSource) Option {
	return func(o *options) {
		o.clientOpts = append(o.clientOpts, option.WithTokenSource(ts))
	}
}

// WithRateLimit overrides the default request pacing.
func WithRateLimit(requestsPerSecond float64, burst int) Option {
	return func(o *options) {
		o.limit = rate.Limit(requestsPerSecond)
		o.burst = burst
	}
}

// New creates a client for the spreadsheet and validates that the
// spreadsheet is reachable with the supplied credentials.
func New(ctx context.Context, spreadsheetID string, opts ...Option) (*Client, error) {
	o := options{
		limit: rate.Limit(defaultRateLimit),
		burst: defaultBurst,
	}

	for _, opt := range opts {
		opt(&o)
	}

	svc := o.service
	if svc == nil {
		service, err := sheets.NewService(ctx, o.clientOpts...)
		if err != nil {
			return nil, fmt.Errorf("unable to create Sheets client (%w)", err)
		}

		svc = service
	}

	c := Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		limiter:       rate.NewLimiter(o.limit, o.burst),
	}

	if err := c.Refresh(ctx); err != nil {
		return nil, fmt.Errorf("%w: '%s' (%v)", ErrInvalidSpreadsheet, spreadsheetID, err)
	}

	return &c, nil
}

// SpreadsheetID returns the ID of the bound spreadsheet.
func (c *Client) SpreadsheetID() string {
	return c.spreadsheetID
}

// Refresh reloads the cached worksheet metadata.
func (c *Client) Refresh(ctx context.Context) error {
	if err := c.wait(ctx); err != nil {
		return err
	}

	spreadsheet, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Fields("sheets(properties)").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to fetch spreadsheet (%w)", err)
	}

	worksheets := make([]*sheets.SheetProperties, 0, len(spreadsheet.Sheets))
	for _, sheet := range spreadsheet.Sheets {
		worksheets = append(worksheets, sheet.Properties)
	}

	sort.SliceStable(worksheets, func(i, j int) bool { return worksheets[i].Index < worksheets[j].Index })

	c.guard.Lock()
	c.worksheets = worksheets
	c.guard.Unlock()

	return nil
}

// Worksheets lists the spreadsheet's worksheets in display order.
func (c *Client) Worksheets() []Worksheet {
	c.guard.RLock()
	defer c.guard.RUnlock()

	list := make([]Worksheet, 0, len(c.worksheets))
	for _, p := range c.worksheets {
		w := Worksheet{
			Title: p.Title,
			ID:    p.SheetId,
		}

		if p.GridProperties != nil {
			w.Rows = p.GridProperties.RowCount
			w.Columns = p.GridProperties.ColumnCount
		}

		list = append(list, w)
	}

	return list
}

// SheetID resolves a worksheet name to its sheet ID. Name matching ignores
// case and whitespace. An empty name resolves to the first worksheet. The
// metadata cache is refreshed once before giving up on an unknown name.
func (c *Client) SheetID(ctx context.Context, name string) (int64, error) {
	if id, ok := c.lookup(name); ok {
		return id, nil
	}

	if err := c.Refresh(ctx); err != nil {
		return 0, err
	}

	if id, ok := c.lookup(name); ok {
		return id, nil
	}

	return 0, fmt.Errorf("%w: '%s'", ErrSheetNotFound, name)
}

func (c *Client) lookup(name string) (int64, bool) {
	c.guard.RLock()
	defer c.guard.RUnlock()

	if name == "" && len(c.worksheets) > 0 {
		return c.worksheets[0].SheetId, true
	}

	for _, p := range c.worksheets {
		if normalise(p.Title) == normalise(name) {
			return p.SheetId, true
		}
	}

	return 0, false
}

// gridRange resolves a range's worksheet name and converts it to the Sheets
// API grid representation.
func (c *Client) gridRange(ctx context.Context, rng a1.Range) (*sheets.GridRange, error) {
	id, err := c.SheetID(ctx, rng.Sheet)
	if err != nil {
		return nil, err
	}

	return gridRange(rng, id), nil
}

// gridRange converts a 1-based closed range to the 0-based half-open grid
// representation. Open ends are omitted (unbounded).
func gridRange(rng a1.Range, sheetID int64) *sheets.GridRange {
	g := sheets.GridRange{
		SheetId:          sheetID,
		StartRowIndex:    int64(rng.FromRow - 1),
		StartColumnIndex: int64(rng.FromCol - 1),
		ForceSendFields:  []string{"StartRowIndex", "StartColumnIndex"},
	}

	if rng.ToRow > 0 {
		g.EndRowIndex = int64(rng.ToRow)
	}

	if rng.ToCol > 0 {
		g.EndColumnIndex = int64(rng.ToCol)
	}

	return &g
}

// batchUpdate issues a single spreadsheets.batchUpdate with the given
// requests.
func (c *Client) batchUpdate(ctx context.Context, requests ...*sheets.Request) error {
	if err := c.wait(ctx); err != nil {
		return err
	}

	rq := sheets.BatchUpdateSpreadsheetRequest{
		Requests: requests,
	}

	if _, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, &rq).Context(ctx).Do(); err != nil {
		return fmt.Errorf("unable to update spreadsheet (%w)", err)
	}

	return nil
}

func (c *Client) wait(ctx context.Context) error {
	return c.limiter.Wait(ctx)
}

func normalise(v string) string {
	return strings.ToLower(strings.ReplaceAll(v, " ", ""))
}
