/*
Package table converts pixel arrays to and from a tabular form of named
numeric columns: a long form with one row per value and wide forms with
one value column per channel or per depth frame.  Tables can be
exchanged as Arrow IPC streams or CSV.
*/
package table

import (
	"fmt"
	"strings"
)

// DefaultValueColumn is the value column name used when none is
// configured.
const DefaultValueColumn = "value"

// Column is a named sequence of numeric values.
type Column struct {
	Name   string
	Values []float64
}

// Table is an ordered set of equal-length columns.
type Table struct {
	Columns []Column
}

// NumRows returns the row count, zero for an empty table.
func (t *Table) NumRows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

// Column returns the first column with the given name, or nil.
func (t *Table) Column(name string) *Column {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i]
		}
	}
	return nil
}

// Validate checks that all columns have equal length.
func (t *Table) Validate() error {
	if len(t.Columns) == 0 {
		return nil
	}
	n := len(t.Columns[0].Values)
	for _, col := range t.Columns[1:] {
		if len(col.Values) != n {
			return fmt.Errorf("column %q has %d rows but column %q has %d",
				col.Name, len(col.Values), t.Columns[0].Name, n)
		}
	}
	return nil
}

func (t *Table) String() string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return fmt.Sprintf("table[%d rows: %s]", t.NumRows(), strings.Join(names, ","))
}
