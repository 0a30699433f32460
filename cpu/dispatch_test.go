package cpu

import "testing"

type fakeAllocator struct{}

func (fakeAllocator) AlignedAlloc(size, alignment int) []byte { return make([]byte, size) }
func (fakeAllocator) AlignedFree(buf []byte)                  {}

type fakeContext struct {
	features map[Feature]bool
	cores    int
	name     string
}

func (c *fakeContext) CPUFeatures() map[Feature]bool { return c.features }
func (c *fakeContext) CPUVirtualCores() int           { return c.cores }
func (c *fakeContext) CPUName() string                { return c.name }
func (c *fakeContext) Allocator() Allocator            { return fakeAllocator{} }

func TestSelectPicksFirstFullySatisfiedSpecialization(t *testing.T) {
	ctx := &fakeContext{features: map[Feature]bool{FeatureAVX: true, FeatureSSE41: true}, cores: 1, name: "test"}
	specs := []Specialization{
		{Name: "avx512f", RequiredFeatures: []Feature{FeatureAVX512F}, Install: func(r *Registry) { r.Install(OpAdd, nil) }},
		{Name: "avx", RequiredFeatures: []Feature{FeatureAVX}, Install: func(r *Registry) { r.Install(OpMatMul, nil) }},
		{Name: "sse41", RequiredFeatures: []Feature{FeatureSSE41}, Install: func(r *Registry) { r.Install(OpFillRandom, nil) }},
	}
	r := &Registry{}
	name := Select(ctx, r, specs, func(r *Registry) { t.Fatal("fallback should not run") })
	if name != "avx" {
		t.Errorf("Select returned %q, want avx", name)
	}
}

func TestSelectFallsBackWhenNoneMatch(t *testing.T) {
	ctx := &fakeContext{features: map[Feature]bool{}, cores: 1, name: "test"}
	specs := []Specialization{
		{Name: "avx2", RequiredFeatures: []Feature{FeatureAVX2}, Install: func(r *Registry) { t.Fatal("should not install") }},
	}
	fellBack := false
	r := &Registry{}
	name := Select(ctx, r, specs, func(r *Registry) { fellBack = true })
	if !fellBack || name != "generic" {
		t.Errorf("Select did not fall back: fellBack=%v name=%q", fellBack, name)
	}
}

func TestSelectSkipsEntriesWithNoRequiredFeatures(t *testing.T) {
	ctx := &fakeContext{features: map[Feature]bool{}, cores: 1, name: "test"}
	specs := []Specialization{
		{Name: "bogus", RequiredFeatures: nil, Install: func(r *Registry) { t.Fatal("should not install an empty-feature entry") }},
	}
	r := &Registry{}
	name := Select(ctx, r, specs, func(r *Registry) {})
	if name != "generic" {
		t.Errorf("Select returned %q, want generic", name)
	}
}

func TestSelectIsDeterministic(t *testing.T) {
	ctx := &fakeContext{features: map[Feature]bool{FeatureAVX2: true, FeatureAVX: true, FeatureSSE41: true}, cores: 1, name: "test"}
	specs := []Specialization{
		{Name: "avx2", RequiredFeatures: []Feature{FeatureAVX2}, Install: func(r *Registry) {}},
		{Name: "avx", RequiredFeatures: []Feature{FeatureAVX}, Install: func(r *Registry) {}},
	}
	for i := 0; i < 10; i++ {
		r := &Registry{}
		if name := Select(ctx, r, specs, func(r *Registry) {}); name != "avx2" {
			t.Fatalf("iteration %d: Select returned %q, want avx2", i, name)
		}
	}
}
