// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cpu

import (
	"errors"
	"fmt"
)

// ErrBackwardNotImplemented is returned by ExecBwd: backward execution
// is out of scope for this backend (see spec Non-goals) but the
// failure is reported cleanly rather than silently no-op'd or left to
// panic on a nil lookup.
var ErrBackwardNotImplemented = errors.New("cpu: backward execution is not implemented")

// KernelSource is the extension seam a kernel-providing package
// implements to populate a fresh Registry, without this package ever
// needing to know what kernels exist. Specializations is consulted
// first, in order, via Select; InstallGeneric is the fallback when
// none of them match the host's advertised features.
type KernelSource interface {
	Specializations() []Specialization
	InstallGeneric(r *Registry)
}

// Descriptor configures a Device at InitDeviceCPU time. Zero-value
// fields fall back to sensible defaults (see InitDeviceCPU).
type Descriptor struct {
	// NumWorkers is the number of allocated (OS-backed, see Pool)
	// workers. 0 means "use Context.CPUVirtualCores()".
	NumWorkers int
	// GrowthScale and ElementThreshold tune ActiveWorkers. Zero means
	// "use DefaultGrowthScale / DefaultElementThreshold".
	GrowthScale     float64
	ElementThreshold int64
	// SchedPriority hints at worker scheduling priority (see
	// SchedPriority's doc — currently inert).
	SchedPriority SchedPriority
}

// Device is the CPU compute backend façade: a kernel registry, the
// specialization chosen for it, a worker pool sized at init time, and
// the heuristic parameters governing how many of those workers
// participate in any one operator.
type Device struct {
	ctx              Context
	registry         *Registry
	pool             *Pool // nil when numWorkers <= 1 — see InitDeviceCPU.
	numWorkers       uint32
	specialization   string
	growthScale      float64
	elementThreshold int64
}

// InitDeviceCPU builds the registry (selecting an ISA specialization
// via source against ctx's advertised features) and, if the resolved
// thread count is more than 1, sizes and starts the worker pool. A
// single-threaded device never creates a pool at all: ExecFwd runs the
// kernel directly on the caller in that case.
func InitDeviceCPU(ctx Context, source KernelSource, desc Descriptor) *Device {
	Assert(ctx != nil, "cpu: InitDeviceCPU requires a non-nil Context")
	Assert(source != nil, "cpu: InitDeviceCPU requires a non-nil KernelSource")

	registry := &Registry{}
	specialization := Select(ctx, registry, source.Specializations(), source.InstallGeneric)

	numWorkers := desc.NumWorkers
	if numWorkers <= 0 {
		numWorkers = ctx.CPUVirtualCores()
	}
	if numWorkers <= 0 {
		numWorkers = 1
	}

	growthScale := desc.GrowthScale
	if growthScale == 0 {
		growthScale = DefaultGrowthScale
	}
	threshold := desc.ElementThreshold
	if threshold == 0 {
		threshold = DefaultElementThreshold
	}

	d := &Device{
		ctx:              ctx,
		registry:         registry,
		numWorkers:       uint32(numWorkers),
		specialization:   specialization,
		growthScale:      growthScale,
		elementThreshold: threshold,
	}
	if numWorkers > 1 {
		d.pool = newPool(uint32(numWorkers), registry, desc.SchedPriority)
	}
	return d
}

// DestroyDeviceCPU interrupts and drains the device's worker pool, if
// one was created; a no-op on a single-threaded device.
func DestroyDeviceCPU(d *Device) {
	if d.pool != nil {
		d.pool.destroy()
	}
}

// Name is a human-readable device label, "<cpu-name> - <specialization>
// - Using N Compute Threads", mirroring the upstream device banner.
func (d *Device) Name() string {
	return fmt.Sprintf("%s - %s - Using %d Compute Threads", d.ctx.CPUName(), d.specialization, d.numWorkers)
}

// Specialization is the name of the kernel specialization this device
// selected at init (e.g. "avx2", or "generic" on a fallback).
func (d *Device) Specialization() string { return d.specialization }

// NumWorkers is the number of allocated (not necessarily active for
// any one operator) workers backing this device.
func (d *Device) NumWorkers() int { return int(d.numWorkers) }

// ExecFwd evaluates node forward on the host. If no pool was created,
// or the heuristic picks a width of 1, the kernel runs directly on the
// caller with payload {node, 0, 1} and the rest of the pool (if any)
// is never woken. Otherwise the op is fanned out across
// ActiveWorkers(allocated, growthScale, threshold, node.NumEl())
// workers from the device's pool.
func (d *Device) ExecFwd(node Node) {
	Assert(node != nil, "cpu: ExecFwd requires a non-nil Node")

	if d.pool == nil {
		d.execInline(node)
		return
	}
	active := ActiveWorkers(d.numWorkers, d.growthScale, d.elementThreshold, node.NumEl())
	if active <= 1 {
		d.execInline(node)
		return
	}
	d.pool.parallelCompute(node, active)
}

// execInline runs the kernel for node on the calling goroutine only,
// bypassing the pool entirely — no phase advance, no wakeups.
func (d *Device) execInline(node Node) {
	kernel := d.registry.Lookup(node.Op())
	Assert(kernel != nil, "cpu: no kernel installed for op "+node.Op().String())
	payload := Payload{Node: node, ThreadIndex: 0, ThreadCount: 1}
	kernel(&payload)
	payload.Node = nil
}

// ExecBwd would evaluate node's gradient; backward execution is out of
// scope for this backend (see spec Non-goals), so it reports that
// cleanly instead of silently doing nothing.
func (d *Device) ExecBwd(node Node) error {
	return fmt.Errorf("%w: op %s", ErrBackwardNotImplemented, node.Op())
}

// AllocStorage reserves an aligned host buffer of size bytes for node
// data. Freed with FreeStorage.
func (d *Device) AllocStorage(size int) *StorageBuffer {
	return allocStorage(d, size)
}

// FreeStorage releases a buffer obtained from AllocStorage.
func (d *Device) FreeStorage(b *StorageBuffer) {
	freeStorage(b)
}
