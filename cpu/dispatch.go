package cpu

// Specialization is an immutable, ordered candidate kernel set for a
// given ISA feature band: a name, the features it requires, and an
// installer that populates a Registry with its kernels. Specialization
// lists are supplied best-to-worst by performance score by whoever
// extends the registry (see package kernels) — this package only knows
// how to walk the list, not what any particular entry means.
type Specialization struct {
	Name             string
	RequiredFeatures []Feature
	Install          func(r *Registry)
}

// Select iterates specializations in the order given (best to worst),
// skipping any whose RequiredFeatures list is empty, and installs the
// first whose required features are all present in ctx's advertised
// feature set. It returns the installed specialization's name and logs
// one informational line.
//
// If no specialization matches, fallback is installed instead — this
// is environment degradation, not a programmer error (spec §7): it is
// handled non-fatally, with an informational log line, and execution
// continues using fallback's kernels.
func Select(ctx Context, r *Registry, specializations []Specialization, fallback func(r *Registry)) string {
	features := ctx.CPUFeatures()
	for _, spec := range specializations {
		if len(spec.RequiredFeatures) == 0 {
			continue
		}
		hasAll := true
		for _, f := range spec.RequiredFeatures {
			if !features[f] {
				hasAll = false
				break
			}
		}
		if hasAll {
			spec.Install(r)
			log.Info().Str("specialization", spec.Name).Msg("selected kernel specialization")
			return spec.Name
		}
	}
	fallback(r)
	log.Info().Str("specialization", "generic").Msg("no ISA specialization matched, using generic fallback")
	return "generic"
}
