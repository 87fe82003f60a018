// Package cmem holds the C memory plumbing shared by the engine and stmt
// packages: allocation with error reporting, Go/C string and byte
// conversion, out-parameter reads, and destructor function pointers for
// the modernc.org/libc runtime.
package cmem
