//go:build amd64

package host

import (
	"golang.org/x/sys/cpu"

	mcpu "github.com/ajroetker/go-magnetron/cpu"
)

// detectFeatures reports the amd64 ISA features the kernels package's
// specialization table gates on.
func detectFeatures() map[mcpu.Feature]bool {
	return map[mcpu.Feature]bool{
		mcpu.FeatureSSE41:   cpu.X86.HasSSE41,
		mcpu.FeatureAVX:     cpu.X86.HasAVX,
		mcpu.FeatureAVX2:    cpu.X86.HasAVX2,
		mcpu.FeatureAVX512F: cpu.X86.HasAVX512F,
	}
}
