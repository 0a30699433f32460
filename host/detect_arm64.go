//go:build arm64

package host

import mcpu "github.com/ajroetker/go-magnetron/cpu"

// detectFeatures reports no gated features on arm64: the kernels
// package's specialization table has no arm64 entries (see
// kernels.specializations), so there is nothing here to detect yet.
func detectFeatures() map[mcpu.Feature]bool {
	return map[mcpu.Feature]bool{}
}
