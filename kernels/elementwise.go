package kernels

import (
	"github.com/ajroetker/go-magnetron/cpu"
	"github.com/ajroetker/go-magnetron/internal/vecmath"
)

// addGeneric computes one thread's flat slice of out = lhs + rhs. The
// output is partitioned by flat element index rather than by row: add
// has no row/column structure to exploit, unlike matmul.
func addGeneric(p *cpu.Payload) {
	node := p.Node.(BinaryOp)
	out := node.Data()

	start, end := splitRange(p.ThreadIndex, p.ThreadCount, int64(len(out)))
	vecmath.AddF32(out[start:end], node.Left()[start:end], node.Right()[start:end])
}
