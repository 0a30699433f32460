//go:build !amd64 && !arm64

package kernels

import "github.com/ajroetker/go-magnetron/cpu"

// specializations is empty on every architecture besides amd64 and
// arm64; these always select the generic fallback.
func specializations() []cpu.Specialization {
	return nil
}
