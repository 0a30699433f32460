package host

import (
	"testing"
	"unsafe"
)

func addrOf(b []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}

func TestNewContextReportsAtLeastOneCore(t *testing.T) {
	ctx := NewContext()
	if ctx.CPUVirtualCores() < 1 {
		t.Errorf("CPUVirtualCores() = %d, want >= 1", ctx.CPUVirtualCores())
	}
}

func TestAllocatorReturnsAlignedBuffer(t *testing.T) {
	a := allocator{}
	for _, alignment := range []int{16, 32, 64} {
		buf := a.AlignedAlloc(100, alignment)
		if len(buf) != 100 {
			t.Errorf("alignment %d: len(buf) = %d, want 100", alignment, len(buf))
		}
		addr := addrOf(buf)
		if addr%uintptr(alignment) != 0 {
			t.Errorf("alignment %d: buffer address %#x is not aligned", alignment, addr)
		}
	}
}

func TestAllocatorBuffersAreIndependentlyWritable(t *testing.T) {
	a := allocator{}
	b1 := a.AlignedAlloc(8, 16)
	b2 := a.AlignedAlloc(8, 16)
	b1[0] = 1
	b2[0] = 2
	if b1[0] != 1 || b2[0] != 2 {
		t.Error("writes to one allocation leaked into another")
	}
}
