package db

import (
	"fmt"

	"modernc.org/libc"
	lib "modernc.org/sqlite/lib"

	"github.com/viant/sqlite-bind/internal/cmem"
	"github.com/viant/sqlite-bind/result"
)

// Stmt is a prepared statement: a compiled, parameterized SQL command
// handle that can be bound with values and stepped repeatedly. A Stmt is
// owned by the Conn that prepared it and is not safe for concurrent use.
type Stmt struct {
	conn     *Conn
	stmt     uintptr
	query    string
	colNames map[string]int
}

// Prepare compiles query into a prepared statement. The caller must
// release the statement with Finalize. A query with unconsumed trailing
// SQL is an error; so is a query that compiles to nothing (empty input or
// a lone comment).
//
// https://www.sqlite.org/c3ref/prepare.html
func (c *Conn) Prepare(query string) (*Stmt, error) {
	cquery, err := cmem.CString(query)
	if err != nil {
		return nil, fmt.Errorf("db: prepare %q: %w", query, err)
	}
	defer libc.Xfree(c.tls, cquery)
	stmtPtr, err := cmem.Malloc(c.tls, cmem.PtrSize)
	if err != nil {
		return nil, fmt.Errorf("db: prepare %q: %w", query, err)
	}
	defer libc.Xfree(c.tls, stmtPtr)
	tailPtr, err := cmem.Malloc(c.tls, cmem.PtrSize)
	if err != nil {
		return nil, fmt.Errorf("db: prepare %q: %w", query, err)
	}
	defer libc.Xfree(c.tls, tailPtr)

	res := result.Code(lib.Xsqlite3_prepare_v2(c.tls, c.conn, cquery, -1, stmtPtr, tailPtr))
	if err := c.reserr(res); err != nil {
		return nil, fmt.Errorf("db: prepare %q: %w", query, err)
	}
	handle := cmem.ReadPtr(stmtPtr)
	trailing := len(query) - int(cmem.ReadPtr(tailPtr)-cquery)
	if trailing != 0 {
		lib.Xsqlite3_finalize(c.tls, handle)
		return nil, fmt.Errorf("db: prepare %q: statement has trailing bytes", query)
	}
	if handle == 0 {
		return nil, fmt.Errorf("db: prepare %q: empty statement", query)
	}

	stmt := &Stmt{conn: c, stmt: handle, query: query}
	colCount := int(lib.Xsqlite3_column_count(c.tls, handle))
	stmt.colNames = make(map[string]int, colCount)
	for i := 0; i < colCount; i++ {
		if cname := lib.Xsqlite3_column_name(c.tls, handle, int32(i)); cname != 0 {
			stmt.colNames[libc.GoString(cname)] = i
		}
	}
	return stmt, nil
}

// Finalize deletes the prepared statement. The Stmt must not be used
// afterwards.
//
// https://www.sqlite.org/c3ref/finalize.html
func (s *Stmt) Finalize() error {
	res := result.Code(lib.Xsqlite3_finalize(s.conn.tls, s.stmt))
	s.stmt = 0
	if err := res.ToError(); err != nil {
		return fmt.Errorf("db: finalize: %w", err)
	}
	return nil
}

// Reset rewinds the statement cursor so the statement can be executed
// again. Bound parameter values are retained; use ClearBindings to drop
// them.
//
// https://www.sqlite.org/c3ref/reset.html
func (s *Stmt) Reset() error {
	res := result.Code(lib.Xsqlite3_reset(s.conn.tls, s.stmt))
	if err := s.conn.reserr(res); err != nil {
		return fmt.Errorf("db: reset: %w", err)
	}
	return nil
}

// ClearBindings sets every bound parameter back to NULL.
//
// https://www.sqlite.org/c3ref/clear_bindings.html
func (s *Stmt) ClearBindings() error {
	res := result.Code(lib.Xsqlite3_clear_bindings(s.conn.tls, s.stmt))
	if err := s.conn.reserr(res); err != nil {
		return fmt.Errorf("db: clear bindings: %w", err)
	}
	return nil
}

// Step advances the statement cursor. It reports true when a result row
// is available and false when the statement has run to completion; every
// other native status is an error. After an error the statement is reset.
//
// https://www.sqlite.org/c3ref/step.html
func (s *Stmt) Step() (bool, error) {
	switch res := result.Code(lib.Xsqlite3_step(s.conn.tls, s.stmt)); res.ToPrimary() {
	case result.Row:
		return true, nil
	case result.Done:
		return false, nil
	default:
		err := s.conn.reserr(res)
		lib.Xsqlite3_reset(s.conn.tls, s.stmt)
		return false, fmt.Errorf("db: step: %w", err)
	}
}

// ColumnCount returns the number of columns in the statement's result
// set, or 0 for statements that return no data.
//
// https://www.sqlite.org/c3ref/column_count.html
func (s *Stmt) ColumnCount() int {
	return int(lib.Xsqlite3_column_count(s.conn.tls, s.stmt))
}

// ColumnName returns the name assigned to a result column, or "" when col
// is out of range.
//
// https://www.sqlite.org/c3ref/column_name.html
func (s *Stmt) ColumnName(col int) string {
	return libc.GoString(lib.Xsqlite3_column_name(s.conn.tls, s.stmt, int32(col)))
}

// DataCount returns the number of columns in the current row, which is 0
// when no row is available.
//
// https://www.sqlite.org/c3ref/data_count.html
func (s *Stmt) DataCount() int {
	return int(lib.Xsqlite3_data_count(s.conn.tls, s.stmt))
}

// BindParameterCount returns the index of the largest parameter in the
// statement, which for statements without ?NNN gaps is the parameter
// count.
//
// https://www.sqlite.org/c3ref/bind_parameter_count.html
func (s *Stmt) BindParameterCount() int {
	return int(lib.Xsqlite3_bind_parameter_count(s.conn.tls, s.stmt))
}
