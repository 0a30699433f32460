package kernels

import "github.com/ajroetker/go-magnetron/cpu"

// fillRandomGeneric fills one thread's flat slice of the output with
// standard-normal samples. Each thread derives its own Rand from the
// node's base seed mixed with its thread index, rather than drawing
// from one generator shared across goroutines — reproducibility across
// different worker counts is explicitly not a goal (see Non-goals).
func fillRandomGeneric(p *cpu.Payload) {
	node := p.Node.(FillOp)
	out := node.Data()
	rnd := NewRand(node.Seed() ^ (uint64(p.ThreadIndex)*0x9e3779b97f4a7c15 + 1))

	start, end := splitRange(p.ThreadIndex, p.ThreadCount, int64(len(out)))
	for i := start; i < end; i++ {
		out[i] = rnd.NormalFloat32()
	}
}
