// Package report assembles the merged score table and handles tabular I/O.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Table is a simple wide table: header plus rows of string cells. Rows are
// aligned positionally; row i keeps meaning row i across derived fragments.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Column returns the index of the named column.
func (t Table) Column(name string) (int, bool) {
	for i, c := range t.Columns {
		if c == name {
			return i, true
		}
	}
	return 0, false
}

// ColumnValues returns the full column as a slice, one entry per row.
func (t Table) ColumnValues(name string) ([]string, error) {
	idx, ok := t.Column(name)
	if !ok {
		return nil, fmt.Errorf("missing column %q", name)
	}
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[idx]
	}
	return out, nil
}

// ReadCSV reads a header + data rows.
func ReadCSV(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return Table{}, fmt.Errorf("read csv: empty input")
	}
	return Table{Columns: records[0], Rows: records[1:]}, nil
}

// WriteCSV writes header + rows.
func (t Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
