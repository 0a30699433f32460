//go:build !amd64 && !arm64

package host

import mcpu "github.com/ajroetker/go-magnetron/cpu"

// detectFeatures reports no gated features on unrecognized
// architectures.
func detectFeatures() map[mcpu.Feature]bool {
	return map[mcpu.Feature]bool{}
}
