package kernels

import (
	"testing"

	"github.com/ajroetker/go-magnetron/cpu"
)

type fakeBinaryOp struct {
	out, left, right []float32
}

func (b *fakeBinaryOp) Op() cpu.OpKind     { return cpu.OpAdd }
func (b *fakeBinaryOp) NumEl() int64       { return int64(len(b.out)) }
func (b *fakeBinaryOp) Inputs() []cpu.Node { return nil }
func (b *fakeBinaryOp) Data() []float32    { return b.out }
func (b *fakeBinaryOp) Left() []float32    { return b.left }
func (b *fakeBinaryOp) Right() []float32   { return b.right }

func TestAddGenericSingleThread(t *testing.T) {
	node := &fakeBinaryOp{
		out:   make([]float32, 5),
		left:  []float32{1, 2, 3, 4, 5},
		right: []float32{5, 4, 3, 2, 1},
	}
	runKernel(t, node, 1, addGeneric)
	for i, v := range node.out {
		if v != 6 {
			t.Errorf("out[%d] = %v, want 6", i, v)
		}
	}
}

func TestAddGenericPartitionedMatchesSingleThread(t *testing.T) {
	left := make([]float32, 101)
	right := make([]float32, 101)
	for i := range left {
		left[i] = float32(i)
		right[i] = float32(2 * i)
	}

	single := &fakeBinaryOp{out: make([]float32, 101), left: left, right: right}
	runKernel(t, single, 1, addGeneric)

	multi := &fakeBinaryOp{out: make([]float32, 101), left: left, right: right}
	runKernel(t, multi, 7, addGeneric)

	for i := range single.out {
		if single.out[i] != multi.out[i] {
			t.Errorf("index %d: single=%v multi=%v", i, single.out[i], multi.out[i])
		}
	}
}
