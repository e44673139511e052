package sheet

import "errors"

var (
	// ErrInvalidSpreadsheet indicates the spreadsheet ID does not resolve to a
	// readable spreadsheet.
	ErrInvalidSpreadsheet = errors.New("invalid spreadsheet")

	// ErrSheetNotFound indicates a worksheet name that does not exist in the
	// spreadsheet.
	ErrSheetNotFound = errors.New("worksheet not found")

	// ErrInvalidColor indicates a colour channel outside its supported range.
	ErrInvalidColor = errors.New("invalid colour")
)

// Bool is a convenience for the optional bool fields in TextFormat.
func Bool(v bool) *bool {
	return &v
}
