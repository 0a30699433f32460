// Package host is the library-wide cpu.Context implementation used
// outside of tests: real ISA feature detection via x/sys/cpu, a
// virtual-core count from the Go runtime, and an aligned allocator
// built on manual pointer arithmetic over an oversized byte slice.
package host

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/ajroetker/go-magnetron/cpu"
)

// Context is the concrete cpu.Context used by every binary in this
// module outside of tests.
type Context struct {
	features map[cpu.Feature]bool
	cores    int
}

// NewContext detects the host's ISA features (see detectFeatures in
// the per-architecture files) and reports GOMAXPROCS as its virtual
// core count.
func NewContext() *Context {
	return &Context{
		features: detectFeatures(),
		cores:    runtime.GOMAXPROCS(0),
	}
}

func (c *Context) CPUFeatures() map[cpu.Feature]bool { return c.features }
func (c *Context) CPUVirtualCores() int              { return c.cores }
func (c *Context) CPUName() string                   { return fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH) }
func (c *Context) Allocator() cpu.Allocator           { return allocator{} }

// allocator implements cpu.Allocator by over-allocating a plain byte
// slice and returning a sub-slice whose data pointer is aligned. This
// relies on two guarantees the Go runtime already makes: the garbage
// collector never moves heap objects, and a slice expression keeps its
// backing array alive for as long as the resulting slice is reachable
// — so the returned (unaligned-looking) sub-slice keeps the whole
// padded allocation alive without needing a separate bookkeeping map.
type allocator struct{}

func (allocator) AlignedAlloc(size, alignment int) []byte {
	cpu.Assert(size > 0, "host: AlignedAlloc requires size > 0")
	cpu.Assert(alignment > 0 && alignment&(alignment-1) == 0, "host: AlignedAlloc requires a power-of-two alignment")

	raw := make([]byte, size+alignment)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(raw)))
	offset := (alignment - int(addr%uintptr(alignment))) % alignment
	return raw[offset : offset+size : offset+size]
}

func (allocator) AlignedFree(buf []byte) {
	// The garbage collector reclaims the backing array once every
	// reference (including this one) drops; there is no manual free
	// step to perform given the allocation strategy above.
}
