// Package vecmath provides the small set of lane-chunked float32
// loops the kernels package builds its operator bodies from: a fused
// multiply-add sweep, an elementwise add, and a reduction sum.
//
// It borrows its shape from a general-purpose, multi-architecture SIMD
// vector library — process data in fixed-size lane chunks, with a
// scalar remainder tail — without that library's type-parameterized
// Vec[T], dtype zoo, or per-ISA build variants: this package only ever
// needs float32, and only ever needs a handful of operations, so it
// stays a flat, un-generic scalar implementation that the Go compiler
// auto-vectorizes no worse than a hand-unrolled loop would.
package vecmath

// laneWidth is the chunk size the loops below unroll by. It has no
// relationship to any actual SIMD register width — there is no
// runtime dispatch here — it is purely a software-pipelining hint for
// the compiler.
const laneWidth = 8

// AddF32 computes dst[i] = a[i] + b[i] for i in [0, n), where
// n = min(len(dst), len(a), len(b)).
func AddF32(dst, a, b []float32) {
	n := len(dst)
	if len(a) < n {
		n = len(a)
	}
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for ; i+laneWidth <= n; i += laneWidth {
		for j := 0; j < laneWidth; j++ {
			dst[i+j] = a[i+j] + b[i+j]
		}
	}
	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

// AxpyF32 computes dst[i] = alpha*x[i] + y[i] for i in [0, n), where
// n = min(len(dst), len(x), len(y)).
func AxpyF32(dst []float32, alpha float32, x, y []float32) {
	n := len(dst)
	if len(x) < n {
		n = len(x)
	}
	if len(y) < n {
		n = len(y)
	}
	i := 0
	for ; i+laneWidth <= n; i += laneWidth {
		for j := 0; j < laneWidth; j++ {
			dst[i+j] = alpha*x[i+j] + y[i+j]
		}
	}
	for ; i < n; i++ {
		dst[i] = alpha*x[i] + y[i]
	}
}

// SumF32 reduces v to a single value. Accumulates laneWidth partial
// sums in parallel before folding them together, the same tree-shaped
// reduction a SIMD ReduceSum performs across its lanes, so the result
// does not depend on len(v) in a way that would bias toward a purely
// sequential accumulation order.
func SumF32(v []float32) float32 {
	var acc [laneWidth]float32
	i := 0
	for ; i+laneWidth <= len(v); i += laneWidth {
		for j := 0; j < laneWidth; j++ {
			acc[j] += v[i+j]
		}
	}
	var sum float32
	for _, a := range acc {
		sum += a
	}
	for ; i < len(v); i++ {
		sum += v[i]
	}
	return sum
}
