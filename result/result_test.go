package result

import (
	"errors"
	"fmt"
	"testing"

	lib "modernc.org/sqlite/lib"
)

func TestToPrimary(t *testing.T) {
	ext := Code(lib.SQLITE_CONSTRAINT_UNIQUE)
	if got := ext.ToPrimary(); got != Constraint {
		t.Fatalf("ToPrimary(SQLITE_CONSTRAINT_UNIQUE) = %v, want SQLITE_CONSTRAINT", got)
	}
	if got := OK.ToPrimary(); got != OK {
		t.Fatalf("ToPrimary(OK) = %v", got)
	}
}

func TestIsSuccess(t *testing.T) {
	for _, c := range []Code{OK, Row, Done} {
		if !c.IsSuccess() {
			t.Errorf("%v.IsSuccess() = false", c)
		}
	}
	for _, c := range []Code{GenericError, Busy, Misuse, Range, NoMem} {
		if c.IsSuccess() {
			t.Errorf("%v.IsSuccess() = true", c)
		}
	}
}

func TestCodeString(t *testing.T) {
	if got := Misuse.String(); got != "SQLITE_MISUSE" {
		t.Fatalf("Misuse.String() = %q", got)
	}
	ext := Code(lib.SQLITE_CONSTRAINT_UNIQUE)
	if got := ext.String(); got != fmt.Sprintf("SQLITE_CONSTRAINT(%d)", lib.SQLITE_CONSTRAINT_UNIQUE) {
		t.Fatalf("extended String() = %q", got)
	}
	// An extended code whose primary byte is a named code renders under
	// the primary's name.
	if got := Code(9999).String(); got != fmt.Sprintf("SQLITE_PROTOCOL(%d)", 9999) {
		t.Fatalf("colliding extended String() = %q", got)
	}
	// 200 is not a primary code the engine defines.
	if got := Code(200).String(); got != "SQLITE_UNKNOWN(200)" {
		t.Fatalf("unknown String() = %q", got)
	}
}

func TestNewError(t *testing.T) {
	if err := NewError(OK, "ignored"); err != nil {
		t.Fatalf("NewError(OK) = %v, want nil", err)
	}
	err := NewError(Busy, "database is locked")
	if err == nil {
		t.Fatal("NewError(Busy) = nil")
	}
	if got := err.Error(); got != "SQLITE_BUSY: database is locked" {
		t.Fatalf("Error() = %q", got)
	}
	if got := Misuse.ToError().Error(); got != "SQLITE_MISUSE" {
		t.Fatalf("bare ToError() = %q", got)
	}
}

func TestErrCode(t *testing.T) {
	if got := ErrCode(nil); got != OK {
		t.Fatalf("ErrCode(nil) = %v", got)
	}
	err := fmt.Errorf("db: step: %w", NewError(Busy, "database is locked"))
	if got := ErrCode(err); got != Busy {
		t.Fatalf("ErrCode(wrapped busy) = %v", got)
	}
	if got := ErrCode(errors.New("unrelated")); got != GenericError {
		t.Fatalf("ErrCode(unrelated) = %v", got)
	}
}
