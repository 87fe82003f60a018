package engine

import (
	"strings"
	"sync"

	"modernc.org/libc"
	lib "modernc.org/sqlite/lib"
)

var optionState struct {
	once  sync.Once
	names []string // as reported by the engine
	upper []string // uppercased, for case-insensitive matching
}

// compileOptions populates the process-wide compile-option cache on first
// access. Option names are reported without the SQLITE_ prefix and may
// carry an =VALUE suffix (e.g. "THREADSAFE=1").
func compileOptions() ([]string, []string) {
	optionState.once.Do(func() {
		mu.Lock()
		defer mu.Unlock()
		t := tls()
		var names, upper []string
		for i := int32(0); ; i++ {
			p := lib.Xsqlite3_compileoption_get(t, i)
			if p == 0 {
				break
			}
			name := libc.GoString(p)
			names = append(names, name)
			upper = append(upper, strings.ToUpper(name))
		}
		optionState.names = names
		optionState.upper = upper
	})
	return optionState.names, optionState.upper
}

// CompileOptions returns the compile-time options the engine was built
// with, in engine order, without the SQLITE_ prefix. The returned slice
// is a copy; callers may modify it.
func CompileOptions() []string {
	names, _ := compileOptions()
	return append([]string(nil), names...)
}

// CompileOptionUsed reports whether the engine was built with the given
// compile-time option. Matching mirrors the native check: it is
// case-insensitive, an optional SQLITE_ prefix on option is ignored, and
// an option with an =VALUE suffix matches its bare name.
//
// https://www.sqlite.org/c3ref/compileoption_get.html
func CompileOptionUsed(option string) bool {
	_, upper := compileOptions()
	probe := strings.ToUpper(option)
	probe = strings.TrimPrefix(probe, "SQLITE_")
	for _, name := range upper {
		if strings.HasPrefix(name, probe) && !isIDChar(name, len(probe)) {
			return true
		}
	}
	return false
}

// isIDChar reports whether s has an identifier character at position i.
// Past-the-end positions report false, so exact matches qualify.
func isIDChar(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	c := s[i]
	return c == '_' ||
		(c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') ||
		(c >= '0' && c <= '9')
}
