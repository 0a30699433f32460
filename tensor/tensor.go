// Package tensor provides the minimal concrete cpu.Node implementation
// this module needs to exercise the backend end to end: a flat
// float32 buffer, a shape, and the operator that produced it. It is
// deliberately not a full autodiff graph — no backward closures, no
// operator overloading, no broadcasting — since the backend package
// only ever needs Op, NumEl and Inputs to dispatch and partition work.
package tensor

import (
	"fmt"

	"github.com/ajroetker/go-magnetron/cpu"
)

// Tensor is a dense, row-major float32 array tagged with the operator
// that computed it. It implements cpu.Node directly, and
// kernels.Matrix/BinaryOp/FillOp via the same accessor methods, so one
// concrete type serves every kernel in this module without an adapter
// per operator.
type Tensor struct {
	op     cpu.OpKind
	rows   int
	cols   int
	data   []float32
	inputs []cpu.Node
	seed   uint64
	refs   int
}

// NewFillRandom allocates a rows x cols tensor whose values are filled
// by ExecFwd from the given seed.
func NewFillRandom(rows, cols int, seed uint64) *Tensor {
	return &Tensor{
		op:   cpu.OpFillRandom,
		rows: rows,
		cols: cols,
		data: make([]float32, rows*cols),
		seed: seed,
		refs: 1,
	}
}

// NewMatMul builds a node representing lhs*rhs, output uninitialized
// until ExecFwd runs. lhs.Cols() must equal rhs.Rows().
func NewMatMul(lhs, rhs *Tensor) *Tensor {
	if lhs.cols != rhs.rows {
		panic(fmt.Sprintf("tensor: matmul shape mismatch: lhs is %dx%d, rhs is %dx%d", lhs.rows, lhs.cols, rhs.rows, rhs.cols))
	}
	return &Tensor{
		op:     cpu.OpMatMul,
		rows:   lhs.rows,
		cols:   rhs.cols,
		data:   make([]float32, lhs.rows*rhs.cols),
		inputs: []cpu.Node{lhs, rhs},
		refs:   1,
	}
}

// NewAdd builds a node representing lhs+rhs, elementwise. lhs and rhs
// must have identical shape.
func NewAdd(lhs, rhs *Tensor) *Tensor {
	if lhs.rows != rhs.rows || lhs.cols != rhs.cols {
		panic(fmt.Sprintf("tensor: add shape mismatch: lhs is %dx%d, rhs is %dx%d", lhs.rows, lhs.cols, rhs.rows, rhs.cols))
	}
	return &Tensor{
		op:     cpu.OpAdd,
		rows:   lhs.rows,
		cols:   lhs.cols,
		data:   make([]float32, lhs.rows*lhs.cols),
		inputs: []cpu.Node{lhs, rhs},
		refs:   1,
	}
}

// Op, NumEl and Inputs implement cpu.Node.
func (t *Tensor) Op() cpu.OpKind     { return t.op }
func (t *Tensor) NumEl() int64       { return int64(len(t.data)) }
func (t *Tensor) Inputs() []cpu.Node { return t.inputs }

// Rows, Cols and Data implement kernels.Matrix.
func (t *Tensor) Rows() int       { return t.rows }
func (t *Tensor) Cols() int       { return t.cols }
func (t *Tensor) Data() []float32 { return t.data }

// Left and Right implement kernels.BinaryOp for an add node.
func (t *Tensor) Left() []float32  { return t.inputs[0].(*Tensor).data }
func (t *Tensor) Right() []float32 { return t.inputs[1].(*Tensor).data }

// Seed implements kernels.FillOp for a fill-random node.
func (t *Tensor) Seed() uint64 { return t.seed }

// Incref and Decref track ownership by reference count, mirroring the
// upstream tensor's refcounted lifetime; Decref below zero is a
// programmer error, not a recoverable one.
func (t *Tensor) Incref() { t.refs++ }
func (t *Tensor) Decref() {
	cpu.Assert(t.refs > 0, "tensor: Decref on a tensor with no remaining references")
	t.refs--
}

// Refs reports the current reference count, for tests and callers that
// want to assert a tensor's lifetime before freeing device storage.
func (t *Tensor) Refs() int { return t.refs }
