package cmem

import (
	"fmt"
	"unsafe"

	"modernc.org/libc"
	"modernc.org/libc/sys/types"
)

// PtrSize is the size of a C pointer, used when allocating out-parameters
// for native calls that return pointers through double indirection.
const PtrSize = types.Size_t(unsafe.Sizeof(uintptr(0)))

// Malloc allocates n bytes of C memory. The caller owns the returned
// pointer and must release it with libc.Xfree.
func Malloc(tls *libc.TLS, n types.Size_t) (uintptr, error) {
	p := libc.Xmalloc(tls, n)
	if p == 0 {
		return 0, fmt.Errorf("cmem: out of memory allocating %d bytes", n)
	}
	return p, nil
}

// MustMalloc is Malloc for small fixed-size allocations whose failure
// leaves no sensible recovery (out-parameter slots, cache population).
func MustMalloc(tls *libc.TLS, n types.Size_t) uintptr {
	p, err := Malloc(tls, n)
	if err != nil {
		panic(err)
	}
	return p
}

// CString copies s into C memory as a NUL-terminated string.
func CString(s string) (uintptr, error) {
	p, err := libc.CString(s)
	if err != nil {
		return 0, fmt.Errorf("cmem: %w", err)
	}
	return p, nil
}

// CopyBytes copies b into freshly allocated C memory and returns the
// pointer. Used to hand the engine its own copy of a caller buffer so the
// caller may reuse the buffer immediately (transient storage policy).
func CopyBytes(tls *libc.TLS, b []byte) (uintptr, error) {
	p, err := Malloc(tls, types.Size_t(len(b)))
	if err != nil {
		return 0, err
	}
	copy(libc.GoBytes(p, len(b)), b)
	return p, nil
}

// GoStringN converts n bytes of C memory at p into a Go string.
// A zero pointer yields the empty string.
func GoStringN(p uintptr, n int) string {
	if p == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(p)), n))
}

// ReadPtr dereferences a pointer-sized out-parameter.
func ReadPtr(p uintptr) uintptr {
	return *(*uintptr)(unsafe.Pointer(p))
}

// ReadInt32 dereferences an int32-sized out-parameter.
func ReadInt32(p uintptr) int32 {
	return *(*int32)(unsafe.Pointer(p))
}

// CFuncPointer converts a function defined by a function declaration to a
// C function pointer suitable for native destructor arguments. The result
// of using CFuncPointer on closures is undefined.
func CFuncPointer[T any](f T) uintptr {
	// Assumes the memory representation described in
	// https://golang.org/s/go11func: a function value is a pointer to a
	// struct whose first word is the code pointer.
	return *(*uintptr)(unsafe.Pointer(&struct{ f T }{f}))
}

// FreeFunc is the libc free routine as a C function pointer, passed to
// bind calls as the destructor for engine-owned copies.
var FreeFunc = CFuncPointer(libc.Xfree)
