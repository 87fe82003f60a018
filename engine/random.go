package engine

import (
	"modernc.org/libc"
	"modernc.org/libc/sys/types"
	lib "modernc.org/sqlite/lib"

	"github.com/viant/sqlite-bind/internal/cmem"
)

// Randomness returns n bytes from the engine's pseudo-random number
// generator. There are no statistical guarantees beyond what the native
// generator provides. n <= 0 yields nil.
//
// https://www.sqlite.org/c3ref/randomness.html
func Randomness(n int) []byte {
	if n <= 0 {
		return nil
	}
	mu.Lock()
	defer mu.Unlock()
	t := tls()
	p := cmem.MustMalloc(t, types.Size_t(n))
	defer libc.Xfree(t, p)
	lib.Xsqlite3_randomness(t, int32(n), p)
	out := make([]byte, n)
	copy(out, libc.GoBytes(p, n))
	return out
}
