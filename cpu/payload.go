package cpu

// Payload is the per-invocation descriptor carried to each worker: the
// node being executed, the worker's index, and the currently active
// worker count. Pure data, no operations — its lifetime is the
// duration of one kickoff/barrier cycle.
//
// Node is consumed (set to nil) by the worker after it executes, so
// re-executing the same operator requires a new kickoff.
type Payload struct {
	Node        Node
	ThreadIndex int
	ThreadCount int
}
