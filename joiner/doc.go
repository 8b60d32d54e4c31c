// Package joiner runs many byte-producing tasks concurrently and merges
// their output into a single stream in task submission order.
//
// Each admitted task gets its own worker goroutine and a bounded chunk
// channel sized from the per-task buffer budget. A sequential drain loop
// consumes tasks strictly in order, so a slow early task backpressures the
// whole run while later tasks fill their buffers. At most Parallel tasks
// are in flight (launched but not yet joined) at any instant.
package joiner
