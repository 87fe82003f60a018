package db

import (
	"fmt"

	"modernc.org/libc"
	lib "modernc.org/sqlite/lib"

	"github.com/viant/sqlite-bind/internal/cmem"
	"github.com/viant/sqlite-bind/result"
	"github.com/viant/sqlite-bind/value"
)

// Bind binds v to the 1-based parameter position param, dispatching on
// the value's variant. A native bind failure (wrong statement state,
// out-of-range position, allocation failure inside the engine) surfaces
// as a result.Error.
func (s *Stmt) Bind(param int, v value.Value) error {
	switch v.Type() {
	case value.TypeInteger:
		return s.BindInt64(param, v.Int64())
	case value.TypeReal:
		return s.BindFloat(param, v.Float64())
	case value.TypeText:
		return s.BindText(param, v.Text())
	case value.TypeBlob:
		return s.BindBytes(param, v.Blob())
	default:
		return s.BindNull(param)
	}
}

// BindName resolves the named parameter to its position, then binds v
// there. A name absent from the statement is a lookup failure
// (ParamNotFoundError), distinct from engine-reported bind failures.
func (s *Stmt) BindName(name string, v value.Value) error {
	param, err := s.BindParameterIndex(name)
	if err != nil {
		return err
	}
	return s.Bind(param, v)
}

// BindParameterIndex returns the 1-based position of a named parameter.
// The name must include its prefix character (":", "@", or "$").
//
// https://www.sqlite.org/c3ref/bind_parameter_index.html
func (s *Stmt) BindParameterIndex(name string) (int, error) {
	cname, err := cmem.CString(name)
	if err != nil {
		return 0, fmt.Errorf("db: bind %q: %w", name, err)
	}
	defer libc.Xfree(s.conn.tls, cname)
	param := lib.Xsqlite3_bind_parameter_index(s.conn.tls, s.stmt, cname)
	if param == 0 {
		return 0, &ParamNotFoundError{Name: name}
	}
	return int(param), nil
}

// BindInt64 binds an integer to a 1-based parameter position.
//
// https://www.sqlite.org/c3ref/bind_blob.html
func (s *Stmt) BindInt64(param int, v int64) error {
	res := result.Code(lib.Xsqlite3_bind_int64(s.conn.tls, s.stmt, int32(param), v))
	return s.bindResult("int64", param, res)
}

// BindFloat binds a float to a 1-based parameter position.
//
// https://www.sqlite.org/c3ref/bind_blob.html
func (s *Stmt) BindFloat(param int, v float64) error {
	res := result.Code(lib.Xsqlite3_bind_double(s.conn.tls, s.stmt, int32(param), v))
	return s.bindResult("float", param, res)
}

// BindText binds a string to a 1-based parameter position. The engine
// receives its own copy, so the caller's string is never retained.
//
// https://www.sqlite.org/c3ref/bind_blob.html
func (s *Stmt) BindText(param int, v string) error {
	// The engine frees the copy through the destructor argument.
	p, err := cmem.CopyBytes(s.conn.tls, zeroPad([]byte(v)))
	if err != nil {
		return fmt.Errorf("db: bind text param %d: %w", param, err)
	}
	res := result.Code(lib.Xsqlite3_bind_text(s.conn.tls, s.stmt, int32(param), p, int32(len(v)), cmem.FreeFunc))
	return s.bindResult("text", param, res)
}

// BindBytes binds a blob to a 1-based parameter position. The engine
// receives its own copy, so the caller may reuse v immediately.
//
// https://www.sqlite.org/c3ref/bind_blob.html
func (s *Stmt) BindBytes(param int, v []byte) error {
	if len(v) == 0 {
		// A zero-length blob needs no caller buffer at all.
		res := result.Code(lib.Xsqlite3_bind_zeroblob(s.conn.tls, s.stmt, int32(param), 0))
		return s.bindResult("bytes", param, res)
	}
	p, err := cmem.CopyBytes(s.conn.tls, v)
	if err != nil {
		return fmt.Errorf("db: bind bytes param %d: %w", param, err)
	}
	res := result.Code(lib.Xsqlite3_bind_blob(s.conn.tls, s.stmt, int32(param), p, int32(len(v)), cmem.FreeFunc))
	return s.bindResult("bytes", param, res)
}

// BindNull binds SQL NULL to a 1-based parameter position.
//
// https://www.sqlite.org/c3ref/bind_blob.html
func (s *Stmt) BindNull(param int) error {
	res := result.Code(lib.Xsqlite3_bind_null(s.conn.tls, s.stmt, int32(param)))
	return s.bindResult("null", param, res)
}

func (s *Stmt) bindResult(what string, param int, res result.Code) error {
	if err := s.conn.reserr(res); err != nil {
		return fmt.Errorf("db: bind %s param %d: %w", what, param, err)
	}
	return nil
}

// zeroPad guarantees a non-empty buffer so the C allocation for an empty
// string is well defined.
func zeroPad(b []byte) []byte {
	if len(b) == 0 {
		return []byte{0}
	}
	return b
}
