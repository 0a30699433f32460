//go:build amd64

package kernels

import "github.com/ajroetker/go-magnetron/cpu"

// specializations lists amd64's candidate ISA feature bands,
// best-to-worst, mirroring the upstream ordering (avx512f, avx2, avx,
// sse4.1). Every entry installs the same generic kernel bodies: this
// package carries the ordering and feature gating the original source
// used, without hand-written per-ISA numerical kernels (see Source's
// doc comment on InstallGeneric).
func specializations() []cpu.Specialization {
	install := func(r *cpu.Registry) { Source{}.InstallGeneric(r) }
	return []cpu.Specialization{
		{Name: "avx512f", RequiredFeatures: []cpu.Feature{cpu.FeatureAVX512F}, Install: install},
		{Name: "avx2", RequiredFeatures: []cpu.Feature{cpu.FeatureAVX2}, Install: install},
		{Name: "avx", RequiredFeatures: []cpu.Feature{cpu.FeatureAVX}, Install: install},
		{Name: "sse4.1", RequiredFeatures: []cpu.Feature{cpu.FeatureSSE41}, Install: install},
	}
}
