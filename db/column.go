package db

import (
	"modernc.org/libc"
	lib "modernc.org/sqlite/lib"

	"github.com/viant/sqlite-bind/internal/cmem"
	"github.com/viant/sqlite-bind/value"
)

// Value extracts one column of the current row as a tagged value. It is
// only meaningful while the most recent Step reported a row. col is
// 0-based; an index outside [0, ColumnCount) fails with a
// ColumnRangeError.
func (s *Stmt) Value(col int) (value.Value, error) {
	if err := s.checkColumn(col); err != nil {
		return value.Value{}, err
	}
	return s.columnValue(col), nil
}

// Column returns the values of one column across all remaining result
// rows, in iteration order. As a side effect the statement's cursor is
// advanced to completion. A step failure aborts the scan with no partial
// rows.
func (s *Stmt) Column(index int) ([]value.Value, error) {
	cols, err := s.Columns(index)
	if err != nil {
		return nil, err
	}
	return cols[0], nil
}

// ColumnByName is Column for a named result column. Name matching is
// exact (case-sensitive) against the engine's reported column names; an
// unknown name fails with a ColumnNotFoundError.
func (s *Stmt) ColumnByName(name string) ([]value.Value, error) {
	col, ok := s.colNames[name]
	if !ok {
		return nil, &ColumnNotFoundError{Name: name}
	}
	return s.Column(col)
}

// Columns returns one value sequence per requested index, preserving the
// caller's requested order, not sorted. All indexes are validated before
// the scan begins, so an out-of-range index fails identically on every
// call regardless of cursor position.
func (s *Stmt) Columns(indexes ...int) ([][]value.Value, error) {
	for _, index := range indexes {
		if err := s.checkColumn(index); err != nil {
			return nil, err
		}
	}
	out := make([][]value.Value, len(indexes))
	for {
		row, err := s.Step()
		if err != nil {
			return nil, err
		}
		if !row {
			return out, nil
		}
		for k, index := range indexes {
			out[k] = append(out[k], s.columnValue(index))
		}
	}
}

func (s *Stmt) checkColumn(col int) error {
	if n := s.ColumnCount(); col < 0 || col >= n {
		return &ColumnRangeError{Index: col, Count: n}
	}
	return nil
}

// columnValue reads the col'th column of the current row, tagging it with
// the engine's reported datatype. Text and blob payloads are copied out
// of engine memory before the cursor can move.
func (s *Stmt) columnValue(col int) value.Value {
	t := s.conn.tls
	switch lib.Xsqlite3_column_type(t, s.stmt, int32(col)) {
	case lib.SQLITE_INTEGER:
		return value.Integer(lib.Xsqlite3_column_int64(t, s.stmt, int32(col)))
	case lib.SQLITE_FLOAT:
		return value.Real(lib.Xsqlite3_column_double(t, s.stmt, int32(col)))
	case lib.SQLITE_TEXT:
		n := int(lib.Xsqlite3_column_bytes(t, s.stmt, int32(col)))
		return value.Text(cmem.GoStringN(lib.Xsqlite3_column_text(t, s.stmt, int32(col)), n))
	case lib.SQLITE_BLOB:
		p := lib.Xsqlite3_column_blob(t, s.stmt, int32(col))
		if p == 0 {
			return value.Blob(nil)
		}
		n := int(lib.Xsqlite3_column_bytes(t, s.stmt, int32(col)))
		return value.Blob(libc.GoBytes(p, n))
	default:
		return value.Null()
	}
}
