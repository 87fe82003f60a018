package db

import (
	"fmt"

	"modernc.org/libc"
	lib "modernc.org/sqlite/lib"

	"github.com/viant/sqlite-bind/engine"
	"github.com/viant/sqlite-bind/internal/cmem"
	"github.com/viant/sqlite-bind/result"
)

// OpenFlags control how a database connection is opened.
//
// https://www.sqlite.org/c3ref/c_open_autoproxy.html
type OpenFlags int32

// Open flags.
const (
	OpenReadOnly  OpenFlags = lib.SQLITE_OPEN_READONLY
	OpenReadWrite OpenFlags = lib.SQLITE_OPEN_READWRITE
	OpenCreate    OpenFlags = lib.SQLITE_OPEN_CREATE
	OpenURI       OpenFlags = lib.SQLITE_OPEN_URI
	OpenMemory    OpenFlags = lib.SQLITE_OPEN_MEMORY
	OpenNoMutex   OpenFlags = lib.SQLITE_OPEN_NOMUTEX
	OpenFullMutex OpenFlags = lib.SQLITE_OPEN_FULLMUTEX
)

// Conn is an open connection to an SQLite database. A Conn and the
// statements prepared on it can only be used by one goroutine at a time.
type Conn struct {
	tls  *libc.TLS
	conn uintptr
}

// Open opens a database connection. For file-based databases, pass a path
// like "./db.sqlite"; for in-memory databases, pass ":memory:". No flags
// defaults to OpenReadWrite|OpenCreate|OpenURI.
//
// https://www.sqlite.org/c3ref/open.html
func Open(path string, flags ...OpenFlags) (*Conn, error) {
	if err := engine.Initialize(); err != nil {
		return nil, fmt.Errorf("db: open %q: %w", path, err)
	}
	var openFlags OpenFlags
	for _, f := range flags {
		openFlags |= f
	}
	if openFlags == 0 {
		openFlags = OpenReadWrite | OpenCreate | OpenURI
	}

	tls := libc.NewTLS()
	cpath, err := cmem.CString(path)
	if err != nil {
		tls.Close()
		return nil, fmt.Errorf("db: open %q: %w", path, err)
	}
	defer libc.Xfree(tls, cpath)
	connPtr, err := cmem.Malloc(tls, cmem.PtrSize)
	if err != nil {
		tls.Close()
		return nil, fmt.Errorf("db: open %q: %w", path, err)
	}
	defer libc.Xfree(tls, connPtr)

	res := result.Code(lib.Xsqlite3_open_v2(tls, cpath, connPtr, int32(openFlags), 0))
	handle := cmem.ReadPtr(connPtr)
	if !res.IsSuccess() {
		// A handle may exist even on failure; it carries the message.
		var msg string
		if handle != 0 {
			msg = libc.GoString(lib.Xsqlite3_errmsg(tls, handle))
			lib.Xsqlite3_close_v2(tls, handle)
		}
		tls.Close()
		return nil, fmt.Errorf("db: open %q: %w", path, result.NewError(res, msg))
	}
	return &Conn{tls: tls, conn: handle}, nil
}

// Close closes the connection. Every statement prepared on the connection
// must be finalized first; closing with live statements fails with
// SQLITE_BUSY and leaves the connection open.
//
// https://www.sqlite.org/c3ref/close.html
func (c *Conn) Close() error {
	if c.conn == 0 {
		return fmt.Errorf("db: close: connection already closed")
	}
	res := result.Code(lib.Xsqlite3_close(c.tls, c.conn))
	if err := c.reserr(res); err != nil {
		return fmt.Errorf("db: close: %w", err)
	}
	c.conn = 0
	c.tls.Close()
	c.tls = nil
	return nil
}

// reserr is the one point translating a native code into a typed error
// carrying the connection's current error message.
func (c *Conn) reserr(res result.Code) error {
	if res.IsSuccess() {
		return nil
	}
	return result.NewError(res, libc.GoString(lib.Xsqlite3_errmsg(c.tls, c.conn)))
}

// Exec prepares query, runs it to completion, and finalizes it. Result
// rows, if any, are discarded.
func (c *Conn) Exec(query string) error {
	stmt, err := c.Prepare(query)
	if err != nil {
		return err
	}
	defer stmt.Finalize()
	for {
		row, err := stmt.Step()
		if err != nil {
			return err
		}
		if !row {
			return nil
		}
	}
}

// Changes reports the number of rows affected by the most recent
// statement.
//
// https://www.sqlite.org/c3ref/changes.html
func (c *Conn) Changes() int {
	return int(lib.Xsqlite3_changes(c.tls, c.conn))
}

// LastInsertRowID reports the rowid of the most recent successful INSERT.
//
// https://www.sqlite.org/c3ref/last_insert_rowid.html
func (c *Conn) LastInsertRowID() int64 {
	return lib.Xsqlite3_last_insert_rowid(c.tls, c.conn)
}
