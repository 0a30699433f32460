package kernels

import "github.com/ajroetker/go-magnetron/cpu"

// Source implements cpu.KernelSource, giving InitDeviceCPU the
// ordered ISA specialization list (per architecture, see
// specializations_*.go) and the generic fallback this package always
// provides regardless of architecture.
type Source struct{}

// Specializations returns this architecture's ordered, best-to-worst
// candidate kernel sets. See specializations_amd64.go,
// specializations_arm64.go and specializations_other.go.
func (Source) Specializations() []cpu.Specialization {
	return specializations()
}

// InstallGeneric populates r with the portable, architecture-agnostic
// kernel bodies. Every specialization on every architecture currently
// installs these same bodies — the "specialization" in this package is
// about which ISA feature band was detected, not about distinct
// numerical implementations, since vecmath's loops auto-vectorize
// adequately under the Go compiler without hand-written SIMD bodies.
func (Source) InstallGeneric(r *cpu.Registry) {
	r.Install(cpu.OpMatMul, matMulGeneric)
	r.Install(cpu.OpAdd, addGeneric)
	r.Install(cpu.OpFillRandom, fillRandomGeneric)
}
