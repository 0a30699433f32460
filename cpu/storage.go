package cpu

// StorageBuffer is an aligned host allocation plus the typed copy/fill
// operations tensors use to move bytes in and out of it. Created by
// AllocStorage, destroyed by FreeStorage which zeroes the descriptor.
//
// All operations assert their bounds rather than return an error:
// per spec §7, storage is treated as infallible — allocation either
// succeeds or the process aborts.
type StorageBuffer struct {
	base      []byte
	size      int
	alignment int
	device    *Device
}

// Size is the buffer's byte size.
func (b *StorageBuffer) Size() int { return b.size }

// Alignment is the buffer's byte alignment (always >= 16).
func (b *StorageBuffer) Alignment() int { return b.alignment }

// Bytes exposes the buffer's usable region directly, for callers (like
// the kernels package) that need a typed view over it without copying.
func (b *StorageBuffer) Bytes() []byte { return b.base[:b.size] }

// Set fills bytes [offset, size) with x. Note this observed contract:
// the length filled is size-offset, not a caller-supplied n — flagged
// suspect upstream (spec §9) but kept, since it is load-bearing for
// existing callers.
func (b *StorageBuffer) Set(offset int, x byte) {
	Assert(offset <= b.size, "cpu: storage Set offset out of bounds")
	for i := offset; i < b.size; i++ {
		b.base[i] = x
	}
}

// CopyIn copies src into [offset, offset+len(src)).
func (b *StorageBuffer) CopyIn(offset int, src []byte) {
	n := len(src)
	Assert(offset+n <= b.size, "cpu: storage CopyIn out of bounds")
	copy(b.base[offset:offset+n], src)
}

// CopyOut copies [offset, offset+len(dst)) into dst.
func (b *StorageBuffer) CopyOut(offset int, dst []byte) {
	n := len(dst)
	Assert(offset+n <= b.size, "cpu: storage CopyOut out of bounds")
	copy(dst, b.base[offset:offset+n])
}

// allocStorage obtains an aligned block and wires up its vtable-like
// methods above. On a CPU device, host<->device is just a memcpy; the
// abstraction exists so other backends (never implemented here, see
// spec Non-goals) can differ.
func allocStorage(dev *Device, size int) *StorageBuffer {
	Assert(size > 0, "cpu: AllocStorage requires size > 0")
	const alignment = 16
	raw := dev.ctx.Allocator().AlignedAlloc(size, alignment)
	return &StorageBuffer{base: raw, size: size, alignment: alignment, device: dev}
}

// freeStorage releases the block and zeroes the descriptor.
func freeStorage(b *StorageBuffer) {
	if b.device != nil && b.base != nil {
		b.device.ctx.Allocator().AlignedFree(b.base)
	}
	*b = StorageBuffer{}
}
