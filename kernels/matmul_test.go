package kernels

import (
	"testing"

	"github.com/ajroetker/go-magnetron/cpu"
)

type fakeMatrix struct {
	rows, cols int
	data       []float32
	inputs     []cpu.Node
}

func (m *fakeMatrix) Op() cpu.OpKind     { return cpu.OpMatMul }
func (m *fakeMatrix) NumEl() int64       { return int64(m.rows * m.cols) }
func (m *fakeMatrix) Inputs() []cpu.Node { return m.inputs }
func (m *fakeMatrix) Rows() int          { return m.rows }
func (m *fakeMatrix) Cols() int          { return m.cols }
func (m *fakeMatrix) Data() []float32    { return m.data }

func runKernel(t *testing.T, node cpu.Node, threadCount int, kernel cpu.Kernel) {
	t.Helper()
	for i := 0; i < threadCount; i++ {
		kernel(&cpu.Payload{Node: node, ThreadIndex: i, ThreadCount: threadCount})
	}
}

func TestMatMulIdentity(t *testing.T) {
	// 2x2 identity times [1 2; 3 4] should reproduce the right operand.
	lhs := &fakeMatrix{rows: 2, cols: 2, data: []float32{1, 0, 0, 1}}
	rhs := &fakeMatrix{rows: 2, cols: 2, data: []float32{1, 2, 3, 4}}
	out := &fakeMatrix{rows: 2, cols: 2, data: make([]float32, 4), inputs: []cpu.Node{lhs, rhs}}

	runKernel(t, out, 2, matMulGeneric)

	want := []float32{1, 2, 3, 4}
	for i, v := range want {
		if out.data[i] != v {
			t.Errorf("out[%d] = %v, want %v", i, out.data[i], v)
		}
	}
}

func TestMatMulAgreesAcrossThreadCounts(t *testing.T) {
	lhs := &fakeMatrix{rows: 5, cols: 3, data: []float32{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
		10, 11, 12,
		13, 14, 15,
	}}
	rhs := &fakeMatrix{rows: 3, cols: 4, data: []float32{
		1, 0, 0, 1,
		0, 1, 0, 1,
		0, 0, 1, 1,
	}}

	var baseline []float32
	for _, threads := range []int{1, 2, 3, 5} {
		out := &fakeMatrix{rows: 5, cols: 4, data: make([]float32, 20), inputs: []cpu.Node{lhs, rhs}}
		runKernel(t, out, threads, matMulGeneric)
		if baseline == nil {
			baseline = append([]float32(nil), out.data...)
			continue
		}
		for i := range baseline {
			if out.data[i] != baseline[i] {
				t.Errorf("threads=%d out[%d] = %v, want %v (baseline)", threads, i, out.data[i], baseline[i])
			}
		}
	}
}
