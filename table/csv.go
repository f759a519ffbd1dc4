package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV writes the table as CSV with a header row of column names.
func (t *Table) WriteCSV(w io.Writer) error {
	if err := t.Validate(); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	header := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col.Name
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	row := make([]string, len(t.Columns))
	for r := 0; r < t.NumRows(); r++ {
		for i, col := range t.Columns {
			row[i] = strconv.FormatFloat(col.Values[r], 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV reads a table from CSV written in the WriteCSV layout: a
// header row of column names followed by numeric rows.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %v", err)
	}
	tbl := &Table{Columns: make([]Column, len(header))}
	for i, name := range header {
		tbl.Columns[i].Name = name
	}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		for i, field := range row {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("column %q: %v", header[i], err)
			}
			tbl.Columns[i].Values = append(tbl.Columns[i].Values, v)
		}
	}
	return tbl, nil
}
