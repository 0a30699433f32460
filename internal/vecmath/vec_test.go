package vecmath

import "testing"

func TestAddF32(t *testing.T) {
	a := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	b := []float32{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}
	dst := make([]float32, len(a))
	AddF32(dst, a, b)
	for i := range dst {
		if dst[i] != 11 {
			t.Errorf("dst[%d] = %v, want 11", i, dst[i])
		}
	}
}

func TestAddF32UnevenLaneRemainder(t *testing.T) {
	a := []float32{1, 1, 1}
	b := []float32{2, 2, 2}
	dst := make([]float32, 3)
	AddF32(dst, a, b)
	want := []float32{3, 3, 3}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestAxpyF32(t *testing.T) {
	x := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}
	y := []float32{0, 0, 0, 0, 0, 0, 0, 0, 0}
	dst := make([]float32, len(x))
	AxpyF32(dst, 2, x, y)
	for i, v := range x {
		want := 2 * v
		if dst[i] != want {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want)
		}
	}
}

func TestSumF32(t *testing.T) {
	v := make([]float32, 37)
	for i := range v {
		v[i] = 1
	}
	if got := SumF32(v); got != 37 {
		t.Errorf("SumF32 = %v, want 37", got)
	}
}

func TestSumF32Empty(t *testing.T) {
	if got := SumF32(nil); got != 0 {
		t.Errorf("SumF32(nil) = %v, want 0", got)
	}
}
