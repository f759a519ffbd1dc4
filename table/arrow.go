package table

import (
	"fmt"
	"io"

	"github.com/apache/arrow/go/v14/arrow"
	"github.com/apache/arrow/go/v14/arrow/array"
	"github.com/apache/arrow/go/v14/arrow/ipc"
	"github.com/apache/arrow/go/v14/arrow/memory"
)

// ArrowSchema returns the Arrow schema for this table: one float64
// field per column, in column order.
func (t *Table) ArrowSchema() *arrow.Schema {
	fields := make([]arrow.Field, len(t.Columns))
	for i, col := range t.Columns {
		fields[i] = arrow.Field{Name: col.Name, Type: arrow.PrimitiveTypes.Float64}
	}
	return arrow.NewSchema(fields, nil)
}

// ArrowRecord materializes the table as a single Arrow record.  The
// caller must Release the record.
func (t *Table) ArrowRecord(pool memory.Allocator) (arrow.Record, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	cols := make([]arrow.Array, len(t.Columns))
	for i, col := range t.Columns {
		b := array.NewFloat64Builder(pool)
		b.AppendValues(col.Values, nil)
		cols[i] = b.NewArray()
		b.Release()
	}
	record := array.NewRecord(t.ArrowSchema(), cols, int64(t.NumRows()))
	for _, col := range cols {
		col.Release()
	}
	return record, nil
}

// WriteIPC streams the table as a single-record Arrow IPC stream.
func (t *Table) WriteIPC(w io.Writer) error {
	record, err := t.ArrowRecord(memory.NewGoAllocator())
	if err != nil {
		return err
	}
	defer record.Release()

	writer := ipc.NewWriter(w, ipc.WithSchema(t.ArrowSchema()))
	if err := writer.Write(record); err != nil {
		writer.Close()
		return err
	}
	return writer.Close()
}

// ReadIPC rebuilds a table from an Arrow IPC stream of float64 columns,
// concatenating all records.
func ReadIPC(r io.Reader) (*Table, error) {
	reader, err := ipc.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer reader.Release()

	schema := reader.Schema()
	tbl := &Table{Columns: make([]Column, len(schema.Fields()))}
	for i, field := range schema.Fields() {
		if field.Type.ID() != arrow.FLOAT64 {
			return nil, fmt.Errorf("field %q has type %s, expected float64", field.Name, field.Type)
		}
		tbl.Columns[i].Name = field.Name
	}
	for reader.Next() {
		record := reader.Record()
		for i := range tbl.Columns {
			vals := record.Column(i).(*array.Float64)
			tbl.Columns[i].Values = append(tbl.Columns[i].Values, vals.Float64Values()...)
		}
	}
	if err := reader.Err(); err != nil && err != io.EOF {
		return nil, err
	}
	return tbl, nil
}
