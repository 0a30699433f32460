package cpu

import "math"

// Default heuristic parameters. Self-admitted placeholders upstream
// (the C source's own TODO: "better value and heuristic, benchmarked,
// numerical approach") — exposed here as tunables via Descriptor
// rather than baked-in constants, but the defaults are unchanged.
const (
	DefaultGrowthScale     = 0.3
	DefaultElementThreshold = 250_000
)

// ActiveWorkers maps an element count to the number of workers that
// should participate in an operator: 1 below threshold, otherwise a
// slowly-growing logarithmic curve clamped to [1, allocated]. The
// intent is to avoid wake-up overhead dominating small kernels while
// avoiding over-subscription on very large ones.
//
// https://www.desmos.com/calculator/xiunrskpwu plots the curve this
// mirrors.
func ActiveWorkers(allocated uint32, growthScale float64, threshold int64, numel int64) uint32 {
	if allocated == 0 || numel < threshold {
		return 1
	}
	delta := numel - threshold
	if delta <= 0 {
		// Reached when numel == threshold: log2(0) is undefined, so
		// guard rather than let it propagate as NaN/-Inf.
		return 1
	}
	w := math.Ceil(growthScale * math.Log2(float64(delta)))
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 1 {
		return 1
	}
	if w > float64(allocated) {
		return allocated
	}
	return uint32(w)
}
