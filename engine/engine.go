package engine

import (
	"sync"

	"modernc.org/libc"
	lib "modernc.org/sqlite/lib"

	"github.com/viant/sqlite-bind/result"
)

// Version is the SQLite version in the format "X.Y.Z" where X is the
// major version number (always 3), Y is the minor version number, and Z
// is the release number.
const Version = lib.SQLITE_VERSION

// VersionNumber is an integer with the value (X*1000000 + Y*1000 + Z).
const VersionNumber = lib.SQLITE_VERSION_NUMBER

// SourceID identifies the check-in of the SQLite sources the engine was
// built from.
const SourceID = lib.SQLITE_SOURCE_ID

// mu serializes native calls made through the package-level TLS. The
// cached keyword and compile-option sets are read without it once
// populated.
var mu sync.Mutex

var tlsState struct {
	once sync.Once
	tls  *libc.TLS
}

// tls returns the package's libc thread-local state, created on first use.
func tls() *libc.TLS {
	tlsState.once.Do(func() {
		tlsState.tls = libc.NewTLS()
	})
	return tlsState.tls
}

var initState struct {
	once sync.Once
	err  error
}

// Initialize initializes the SQLite library. It is safe to call more than
// once; the native call runs exactly once per process. Connections opened
// through this module initialize the library themselves, so an explicit
// call is only needed when engine-level facilities are used first.
//
// https://www.sqlite.org/c3ref/initialize.html
func Initialize() error {
	initState.once.Do(func() {
		mu.Lock()
		defer mu.Unlock()
		initState.err = result.Code(lib.Xsqlite3_initialize(tls())).ToError()
	})
	return initState.err
}

// Shutdown deallocates resources held by the SQLite library.
//
// All database connections must be closed and all other engine resources
// released before calling Shutdown. Calling it while resources remain
// open is a fatal misuse of the library, not a recoverable error; the
// resulting behavior is undefined.
//
// https://www.sqlite.org/c3ref/initialize.html
func Shutdown() error {
	mu.Lock()
	defer mu.Unlock()
	return result.Code(lib.Xsqlite3_shutdown(tls())).ToError()
}
