package result

import (
	"fmt"

	lib "modernc.org/sqlite/lib"
)

// Code is an SQLite result code. Values may be extended result codes; the
// low byte is the primary code.
//
// https://www.sqlite.org/rescode.html
type Code int32

// Primary result codes.
const (
	OK           Code = lib.SQLITE_OK
	GenericError Code = lib.SQLITE_ERROR
	Internal     Code = lib.SQLITE_INTERNAL
	Perm         Code = lib.SQLITE_PERM
	Abort        Code = lib.SQLITE_ABORT
	Busy         Code = lib.SQLITE_BUSY
	Locked       Code = lib.SQLITE_LOCKED
	NoMem        Code = lib.SQLITE_NOMEM
	ReadOnly     Code = lib.SQLITE_READONLY
	Interrupt    Code = lib.SQLITE_INTERRUPT
	IOErr        Code = lib.SQLITE_IOERR
	Corrupt      Code = lib.SQLITE_CORRUPT
	NotFound     Code = lib.SQLITE_NOTFOUND
	Full         Code = lib.SQLITE_FULL
	CantOpen     Code = lib.SQLITE_CANTOPEN
	Protocol     Code = lib.SQLITE_PROTOCOL
	Schema       Code = lib.SQLITE_SCHEMA
	TooBig       Code = lib.SQLITE_TOOBIG
	Constraint   Code = lib.SQLITE_CONSTRAINT
	Mismatch     Code = lib.SQLITE_MISMATCH
	Misuse       Code = lib.SQLITE_MISUSE
	NoLFS        Code = lib.SQLITE_NOLFS
	Auth         Code = lib.SQLITE_AUTH
	Range        Code = lib.SQLITE_RANGE
	NotADB       Code = lib.SQLITE_NOTADB
	Notice       Code = lib.SQLITE_NOTICE
	Warning      Code = lib.SQLITE_WARNING
	Row          Code = lib.SQLITE_ROW
	Done         Code = lib.SQLITE_DONE
)

// ToPrimary strips any extended information, leaving the primary code.
func (c Code) ToPrimary() Code {
	return c & 0xff
}

// IsSuccess reports whether c is one of the non-error codes: SQLITE_OK,
// SQLITE_ROW, or SQLITE_DONE.
func (c Code) IsSuccess() bool {
	switch c.ToPrimary() {
	case OK, Row, Done:
		return true
	}
	return false
}

var codeNames = map[Code]string{
	OK:           "SQLITE_OK",
	GenericError: "SQLITE_ERROR",
	Internal:     "SQLITE_INTERNAL",
	Perm:         "SQLITE_PERM",
	Abort:        "SQLITE_ABORT",
	Busy:         "SQLITE_BUSY",
	Locked:       "SQLITE_LOCKED",
	NoMem:        "SQLITE_NOMEM",
	ReadOnly:     "SQLITE_READONLY",
	Interrupt:    "SQLITE_INTERRUPT",
	IOErr:        "SQLITE_IOERR",
	Corrupt:      "SQLITE_CORRUPT",
	NotFound:     "SQLITE_NOTFOUND",
	Full:         "SQLITE_FULL",
	CantOpen:     "SQLITE_CANTOPEN",
	Protocol:     "SQLITE_PROTOCOL",
	Schema:       "SQLITE_SCHEMA",
	TooBig:       "SQLITE_TOOBIG",
	Constraint:   "SQLITE_CONSTRAINT",
	Mismatch:     "SQLITE_MISMATCH",
	Misuse:       "SQLITE_MISUSE",
	NoLFS:        "SQLITE_NOLFS",
	Auth:         "SQLITE_AUTH",
	Range:        "SQLITE_RANGE",
	NotADB:       "SQLITE_NOTADB",
	Notice:       "SQLITE_NOTICE",
	Warning:      "SQLITE_WARNING",
	Row:          "SQLITE_ROW",
	Done:         "SQLITE_DONE",
}

// String returns the SQLITE_* constant name of the primary code. Extended
// codes render as the primary name with the extended value in parentheses.
func (c Code) String() string {
	name, ok := codeNames[c.ToPrimary()]
	if !ok {
		return fmt.Sprintf("SQLITE_UNKNOWN(%d)", int32(c))
	}
	if c != c.ToPrimary() {
		return fmt.Sprintf("%s(%d)", name, int32(c))
	}
	return name
}
