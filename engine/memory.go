package engine

import lib "modernc.org/sqlite/lib"

// MemoryUsed returns the number of bytes of engine memory currently
// outstanding (malloced but not freed).
//
// https://www.sqlite.org/c3ref/memory_highwater.html
func MemoryUsed() int64 {
	mu.Lock()
	defer mu.Unlock()
	return lib.Xsqlite3_memory_used(tls())
}

// MemoryHighwater returns the maximum value MemoryUsed has reached since
// the high-water mark was last reset. If reset is true the mark is reset
// to the current memory usage as a side effect of the same call.
//
// https://www.sqlite.org/c3ref/memory_highwater.html
func MemoryHighwater(reset bool) int64 {
	flag := int32(0)
	if reset {
		flag = 1
	}
	mu.Lock()
	defer mu.Unlock()
	return lib.Xsqlite3_memory_highwater(tls(), flag)
}
