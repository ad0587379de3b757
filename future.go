package goscatter

import "sync"

// Future is the pending result handle for one dispatched partition. The
// executor resolves it exactly once with a partial result or an error; later
// Resolve calls are no-ops. The coordinator reads it exactly once and a
// future is never reused across dispatches.
type Future struct {
	partition Partition

	once   sync.Once
	done   chan struct{}
	result []float64
	err    error
}

// NewFuture creates an unresolved future for the given partition. It is
// exported for custom Executor implementations.
func NewFuture(partition Partition) *Future {
	return &Future{
		partition: partition,
		done:      make(chan struct{}),
	}
}

// Partition returns the partition this future was dispatched for.
func (f *Future) Partition() Partition { return f.partition }

// Resolve completes the future. Only the first call has any effect.
func (f *Future) Resolve(result []float64, err error) {
	f.once.Do(func() {
		f.result = result
		f.err = err
		close(f.done)
	})
}

// Done is closed once the future resolves.
func (f *Future) Done() <-chan struct{} { return f.done }

// Result returns the resolved value. It must only be called after Done is
// closed.
func (f *Future) Result() ([]float64, error) { return f.result, f.err }
