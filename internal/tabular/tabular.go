// Package tabular converts between worksheet cell values and tab-separated
// text. The first row is always treated as a header row; column names are
// matched case- and space-insensitively and must be unique.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Table is an in-memory rectangular table with a header row.
type Table struct {
	Header  []string
	Records [][]string
}

// FromValues builds a Table from worksheet cell values. The first row is the
// header; rows shorter than the header are padded with blank cells and
// trailing all-blank rows are dropped.
func FromValues(values [][]any) (*Table, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("empty sheet")
	}

	index := map[string]int{}
	header := []string{}
	for i, v := range values[0] {
		k := normalise(stringify(v))
		if k == "" {
			return nil, fmt.Errorf("blank column name in column %v", i+1)
		}

		if _, ok := index[k]; ok {
			return nil, fmt.Errorf("duplicate column name '%s'", stringify(v))
		}

		index[k] = i
		header = append(header, clean(stringify(v)))
	}

	records := [][]string{}
	for _, row := range values[1:] {
		record := make([]string, len(header))
		for i := range header {
			if i < len(row) {
				record[i] = clean(stringify(row[i]))
			}
		}

		records = append(records, record)
	}

	for len(records) > 0 && blank(records[len(records)-1]) {
		records = records[:len(records)-1]
	}

	return &Table{
		Header:  header,
		Records: records,
	}, nil
}

// Values converts the table back to worksheet cell values, header row first.
func (t *Table) Values() [][]any {
	values := make([][]any, 0, len(t.Records)+1)

	row := make([]any, len(t.Header))
	for i, v := range t.Header {
		row[i] = v
	}
	values = append(values, row)

	for _, record := range t.Records {
		row := make([]any, len(record))
		for i, v := range record {
			row[i] = v
		}
		values = append(values, row)
	}

	return values
}

// Index returns the column index of the named column, matched case- and
// space-insensitively.
func (t *Table) Index(column string) (int, bool) {
	k := normalise(column)
	for i, h := range t.Header {
		if normalise(h) == k {
			return i, true
		}
	}

	return 0, false
}

// Read parses tab-separated text into a Table. Rows may be ragged; short
// rows are padded to the header width.
func Read(f io.Reader) (*Table, error) {
	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("TSV file is empty")
	}

	values := make([][]any, len(rows))
	for i, row := range rows {
		v := make([]any, len(row))
		for j, cell := range row {
			v[j] = cell
		}
		values[i] = v
	}

	return FromValues(values)
}

// Write renders the table as tab-separated text.
func (t *Table) Write(f io.Writer) error {
	w := csv.NewWriter(f)
	w.Comma = '\t'

	if err := w.Write(t.Header); err != nil {
		return err
	}

	for _, record := range t.Records {
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}

func stringify(v any) string {
	if v == nil {
		return ""
	}

	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprintf("%v", v)
}

func normalise(v string) string {
	return strings.ToLower(strings.ReplaceAll(v, " ", ""))
}

func clean(v string) string {
	return strings.TrimSpace(v)
}

func blank(record []string) bool {
	for _, v := range record {
		if v != "" {
			return false
		}
	}

	return true
}
