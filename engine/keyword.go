package engine

import (
	"sort"
	"strings"
	"sync"

	"modernc.org/libc"
	lib "modernc.org/sqlite/lib"

	"github.com/viant/sqlite-bind/internal/cmem"
)

var keywordState struct {
	once sync.Once
	set  map[string]struct{}
}

// keywordSet populates the process-wide keyword cache on first access.
// The engine reports keyword names in their canonical uppercase form.
func keywordSet() map[string]struct{} {
	keywordState.once.Do(func() {
		mu.Lock()
		defer mu.Unlock()
		t := tls()
		count := lib.Xsqlite3_keyword_count(t)
		zPtr := cmem.MustMalloc(t, cmem.PtrSize)
		defer libc.Xfree(t, zPtr)
		nPtr := cmem.MustMalloc(t, 4)
		defer libc.Xfree(t, nPtr)
		set := make(map[string]struct{}, count)
		for i := int32(0); i < count; i++ {
			if lib.Xsqlite3_keyword_name(t, i, zPtr, nPtr) != lib.SQLITE_OK {
				continue
			}
			name := cmem.GoStringN(cmem.ReadPtr(zPtr), int(cmem.ReadInt32(nPtr)))
			set[name] = struct{}{}
		}
		keywordState.set = set
	})
	return keywordState.set
}

// IsKeyword reports whether word is a reserved SQL keyword. Matching is
// case-insensitive, mirroring the engine's own keyword check.
//
// https://www.sqlite.org/c3ref/keyword_check.html
func IsKeyword(word string) bool {
	_, ok := keywordSet()[strings.ToUpper(word)]
	return ok
}

// Keywords returns the engine's reserved keywords in sorted order. The
// returned slice is a copy; callers may modify it.
func Keywords() []string {
	set := keywordSet()
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
