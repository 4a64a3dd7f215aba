// Package table provides the in-memory metadata table shared by the GEO,
// SRA, and ENA fetchers: an ordered set of named columns over string rows.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/csimplestring/go-csv/detector"
)

// Table holds rows of string values under an ordered list of named columns.
// Every row carries a value (possibly "") for every declared column.
type Table struct {
	cols []string
	rows [][]string
}

// New returns a table declaring the given columns, with no rows. A table
// with zero columns is the "no results" value returned by the combined
// fetch-and-merge path.
func New(cols ...string) *Table {
	t := &Table{}
	t.cols = append(t.cols, cols...)
	return t
}

// Columns returns the declared column names in order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.cols))
	copy(out, t.cols)
	return out
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// Empty reports whether the table has zero rows.
func (t *Table) Empty() bool {
	return len(t.rows) == 0
}

// Append adds one row. The row must have exactly one value per declared
// column.
func (t *Table) Append(row []string) error {
	if len(row) != len(t.cols) {
		return fmt.Errorf("table: row has %d values but table declares %d columns", len(row), len(t.cols))
	}

	stored := make([]string, len(row))
	copy(stored, row)
	t.rows = append(t.rows, stored)

	return nil
}

// Row returns a copy of row i.
func (t *Table) Row(i int) []string {
	out := make([]string, len(t.rows[i]))
	copy(out, t.rows[i])
	return out
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.cols {
		if c == name {
			return i
		}
	}

	return -1
}

// ColumnValues returns the values of the named column, one per row, or nil
// if the column is not declared.
func (t *Table) ColumnValues(name string) []string {
	ix := t.ColumnIndex(name)
	if ix < 0 {
		return nil
	}

	out := make([]string, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, row[ix])
	}

	return out
}

// Head returns a new table with at most n rows. n <= 0 yields zero rows.
func (t *Table) Head(n int) *Table {
	out := New(t.cols...)
	for i, row := range t.rows {
		if i >= n {
			break
		}
		out.Append(row)
	}

	return out
}

// WriteCSV writes the table as comma-delimited text with a header row.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(t.cols); err != nil {
		return err
	}
	for _, row := range t.rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// DetermineDelimiter returns the single most likely rune that would delimit
// the values in payload, assuming a CSV-like file, falling back to the
// provided default when detection is inconclusive.
func DetermineDelimiter(payload string, fallback rune) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(strings.NewReader(payload), '"')

	if len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	return fallback
}

// ReadDelimited parses CSV-like text whose delimiter is sniffed from the
// payload (comma when inconclusive). The first record is the header. Short
// records are padded with "" so that every row covers every column; long
// records are truncated to the header width. Blank payloads yield a table
// with zero columns.
func ReadDelimited(payload string) (*Table, error) {
	return ReadSeparated(payload, DetermineDelimiter(payload, ','))
}

// ReadSeparated parses delimited text with a known delimiter. See
// ReadDelimited for the row-shape rules.
func ReadSeparated(payload string, comma rune) (*Table, error) {
	if strings.TrimSpace(payload) == "" {
		return New(), nil
	}

	r := csv.NewReader(strings.NewReader(payload))
	r.Comma = comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return New(), nil
	}

	t := New(records[0]...)
	for _, rec := range records[1:] {
		row := make([]string, len(t.cols))
		copy(row, rec)
		t.Append(row)
	}

	return t, nil
}
