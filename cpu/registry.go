package cpu

// Kernel computes one operator-kind's output for the work described by
// payload. It MUST read ThreadIndex and ThreadCount from the payload
// and compute exactly its share of the output; the union of shares
// over 0..ThreadCount MUST cover the whole output with no overlap when
// called with the same node at the same phase (see spec §4.A). Kernels
// are pure with respect to their inputs and write exclusively into the
// node's pre-allocated output storage.
type Kernel func(payload *Payload)

// Registry is a fixed-size table of kernels keyed by operator-kind.
// Populated once at device init by a Specialization's Install func (or
// the generic fallback), and read-only thereafter.
type Registry struct {
	forward [opKindCount]Kernel
}

// Install populates the registry entry for op. Called only during
// device init, from a Specialization's Install func.
func (r *Registry) Install(op OpKind, k Kernel) {
	r.forward[op] = k
}

// Lookup returns the kernel installed for op, or nil if none was.
func (r *Registry) Lookup(op OpKind) Kernel {
	return r.forward[op]
}
