//go:build arm64

package kernels

import "github.com/ajroetker/go-magnetron/cpu"

// specializations is empty on arm64: this package has no NEON/SVE
// feature-gated kernel bodies, so every arm64 device always selects
// the generic fallback.
func specializations() []cpu.Specialization {
	return nil
}
