package kernels

// splitRange divides [0, total) into threadCount contiguous, roughly
// equal shares and returns the half-open [start, end) owned by
// threadIndex. Any remainder is spread one unit at a time across the
// first shares, so every index in [0, total) belongs to exactly one
// share and no two shares overlap.
func splitRange(threadIndex, threadCount int, total int64) (start, end int64) {
	if threadCount <= 0 || total <= 0 {
		return 0, 0
	}
	base := total / int64(threadCount)
	rem := total % int64(threadCount)

	start = int64(threadIndex) * base
	if int64(threadIndex) < rem {
		start += int64(threadIndex)
	} else {
		start += rem
	}

	share := base
	if int64(threadIndex) < rem {
		share++
	}
	end = start + share
	return start, end
}
