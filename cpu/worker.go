package cpu

// worker is one lane of the thread pool's phase-counter rendezvous.
// Worker 0 is the calling (main) thread and has no goroutine of its
// own — workers 1..N-1 run their loop on a dedicated goroutine. A
// worker holds a non-owning back-reference to its pool: the pool
// exclusively owns the worker array, the back-reference exists only
// for lookup of the shared mutex/condvar.
type worker struct {
	phase   uint64
	payload Payload
	pool    *Pool
	index   int
	isAsync bool
}

// awaitWork blocks until the pool either starts a new phase or is
// interrupted. Returns false (and has released the mutex already) when
// the pool was interrupted; the caller should exit its loop.
func (w *worker) awaitWork() bool {
	w.pool.mu.Lock()
	for !(w.pool.interrupt || w.pool.phase > w.phase) {
		w.pool.cond.Wait()
	}
	if w.pool.interrupt {
		w.pool.mu.Unlock()
		return false
	}
	w.phase = w.pool.phase
	w.pool.mu.Unlock()
	return true
}

// executeAndSignal runs the kernel for the current phase if this
// worker is active this phase, then signals completion. Inactive
// workers (index >= active worker count) still participate in the
// completion count — see Pool doc for why.
func (w *worker) executeAndSignal() {
	if w.index < int(w.pool.activeWorkers) {
		kernel := w.pool.registry.Lookup(w.payload.Node.Op())
		Assert(kernel != nil, "cpu: no kernel installed for op "+w.payload.Node.Op().String())
		kernel(&w.payload)
		w.payload.Node = nil
	}
	w.pool.mu.Lock()
	w.pool.completed++
	if w.pool.completed == uint64(w.pool.allocatedWorkers) {
		w.pool.cond.Broadcast()
	}
	w.pool.mu.Unlock()
}

// loop is the OS-thread-backed worker's entry point: wait, work,
// signal, repeat, until interrupted. The main thread never calls this,
// nor awaitWork — Pool.parallelCompute advances worker 0's phase and
// calls executeAndSignal for it directly, with no OS thread of its own
// (see DESIGN.md).
func (w *worker) loop() {
	w.pool.onlineCount.Add(1)
	defer w.pool.onlineCount.Add(-1)
	for w.awaitWork() {
		w.executeAndSignal()
	}
}
