package kernels

import (
	"github.com/ajroetker/go-magnetron/cpu"
	"github.com/ajroetker/go-magnetron/internal/vecmath"
)

// matMulGeneric computes one thread's row band of out = lhs * rhs.
// Rows are partitioned statically across payload.ThreadCount by
// splitRange; each thread owns a disjoint, contiguous band of output
// rows and never touches another thread's band, so no synchronization
// beyond the pool's own barrier is needed.
func matMulGeneric(p *cpu.Payload) {
	node := p.Node.(Matrix)
	inputs := p.Node.Inputs()
	lhs := inputs[0].(Matrix)
	rhs := inputs[1].(Matrix)

	rows := lhs.Rows()
	inner := lhs.Cols()
	cols := rhs.Cols()

	startRow, endRow := splitRange(p.ThreadIndex, p.ThreadCount, int64(rows))
	out := node.Data()
	lhsData := lhs.Data()
	rhsData := rhs.Data()

	for row := startRow; row < endRow; row++ {
		outRow := out[int(row)*cols : int(row)*cols+cols]
		for j := range outRow {
			outRow[j] = 0
		}
		lhsRow := lhsData[int(row)*inner : int(row)*inner+inner]
		for k := 0; k < inner; k++ {
			a := lhsRow[k]
			if a == 0 {
				continue
			}
			rhsRow := rhsData[k*cols : k*cols+cols]
			vecmath.AxpyF32(outRow, a, rhsRow, outRow)
		}
	}
}
