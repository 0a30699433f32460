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
	"runtime"
	"sync"
	"sync/atomic"
)

// SchedPriority is a scheduling-priority hint for worker goroutines.
// Workers are conceptually created with a "high" priority hint, but Go
// exposes no portable API to apply OS thread priority to a goroutine —
// and the upstream C source itself leaves the equivalent call
// commented out (mag_thread_set_prio is never actually invoked). This
// type exists so the intent is documented at the call site; it is
// never acted on.
type SchedPriority int

const (
	SchedPriorityNormal SchedPriority = iota
	SchedPriorityHigh
)

// Pool is the barrier-synchronized worker pool: the heart of this
// package. It implements a phase-counter rendezvous — a single
// mutex/condvar pair coordinates "begin phase P" and "phase P
// complete" without per-task allocation, and without a work queue.
//
// Global state (P, active k, completed c, interrupt I) lives under mu.
// Each worker also holds a private phase p_i. Initial: P=0, c=0,
// I=false, all p_i=0. Terminal: I=true.
//
// Exactly one mutex/condvar pair serves both roles: kickoff's broadcast
// wakes workers, the last completion's broadcast wakes the caller in
// barrier. The two predicates (phase > p_i; completed == allocated)
// disambiguate which waiter should proceed.
type Pool struct {
	mu               sync.Mutex
	cond             sync.Cond
	interrupt        bool
	phase            uint64
	completed        uint64
	allocatedWorkers uint32
	activeWorkers    uint32
	onlineCount      atomic.Int32
	workers          []worker
	registry         *Registry
	schedPriority    SchedPriority
}

// newPool allocates n workers and spawns goroutines for workers 1..n-1
// (worker 0 is driven inline by the caller — see parallelCompute). It
// blocks until all spawned goroutines have reached their wait loop,
// mirroring the source's spin-yield on num_workers_online.
func newPool(n uint32, registry *Registry, prio SchedPriority) *Pool {
	Assert(n > 0, "cpu: newPool requires at least one worker")
	p := &Pool{
		allocatedWorkers: n,
		activeWorkers:    n,
		workers:          make([]worker, n),
		registry:         registry,
		schedPriority:    prio,
	}
	p.cond.L = &p.mu
	for i := range p.workers {
		p.workers[i] = worker{
			pool:    p,
			index:   i,
			isAsync: i != 0,
			payload: Payload{ThreadIndex: i, ThreadCount: int(n)},
		}
	}
	for i := 1; i < len(p.workers); i++ {
		go p.workers[i].loop()
	}
	for p.onlineCount.Load() != int32(n-1) {
		runtime.Gosched()
	}
	return p
}

// kickoff writes node and the active worker count into every worker's
// payload, advances the phase, resets the completion counter, and
// wakes every worker. Must be called with no phase currently in
// flight from this caller (the pool is not safe for concurrent
// submitters — see spec §5).
func (p *Pool) kickoff(node Node, activeWorkers uint32) {
	p.mu.Lock()
	p.activeWorkers = activeWorkers
	for i := range p.workers {
		p.workers[i].payload.Node = node
		p.workers[i].payload.ThreadCount = int(activeWorkers)
	}
	p.phase++
	p.completed = 0
	p.mu.Unlock()
	p.cond.Broadcast()
}

// barrier blocks until every allocated worker — active or not — has
// completed the current phase. Deliberately waits for allocatedWorkers,
// not activeWorkers: inactive workers still wake, observe the new
// phase, and increment completed, so a single completion target serves
// both roles. The alternative (track completed == active, separately
// from "has observed the phase") reintroduces exactly the coupling
// this avoids.
func (p *Pool) barrier() {
	p.mu.Lock()
	for p.completed != uint64(p.allocatedWorkers) {
		p.cond.Wait()
	}
	for i := range p.workers {
		Assert(p.workers[i].phase == p.phase, "cpu: worker phase did not advance to pool phase after barrier")
	}
	p.mu.Unlock()
}

// parallelCompute kicks off a phase, executes worker 0's share inline
// on the calling thread (saving one context switch on the
// latency-critical small-tensor path), then blocks until the rest of
// the pool has finished.
//
// Worker 0 has no goroutine of its own, so unlike workers 1..n-1 it
// never runs awaitWork — the one place every other worker picks up
// p.phase into its own w.phase. kickoff and parallelCompute run on the
// same goroutine, so the phase it just wrote is visible here with no
// further synchronization; parallelCompute advances workers[0].phase
// itself before executeAndSignal, so barrier's per-worker phase check
// sees worker 0 caught up like every other worker.
func (p *Pool) parallelCompute(node Node, activeWorkers uint32) {
	p.kickoff(node, activeWorkers)
	p.workers[0].phase = p.phase
	p.workers[0].executeAndSignal()
	p.barrier()
}

// destroy interrupts every worker and waits for them to exit their
// loop. Go goroutines need no explicit join: the spin-wait until
// onlineCount reaches zero is already sufficient proof that loop() has
// returned for every worker, where the source needs a separate
// pthread_join per OS thread.
func (p *Pool) destroy() {
	p.mu.Lock()
	p.interrupt = true
	p.phase++
	p.mu.Unlock()
	p.cond.Broadcast()
	for p.onlineCount.Load() != 0 {
		runtime.Gosched()
	}
}
