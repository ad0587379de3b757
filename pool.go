package goscatter

import (
	"context"
	"fmt"
	"sync"
)

// Executor is the worker execution substrate the coordinator dispatches to.
// Dispatch must not block the caller and must eventually resolve the returned
// future, even when the run context is cancelled. The default executor is a
// Pool; alternative substrates only need to satisfy this interface.
type Executor interface {
	Dispatch(ctx context.Context, dataset []float64, partition Partition, transform Transform) *Future
}

type task func()

// Pool runs dispatched partition computations on a fixed set of goroutines.
type Pool struct {
	numWorkers int
	tasks      chan task
	once       sync.Once
	wg         sync.WaitGroup
}

func NewPool(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	return &Pool{
		numWorkers: numWorkers,
		tasks:      make(chan task, numWorkers),
	}
}

func (p *Pool) Start() {
	p.once.Do(func() {
		for range p.numWorkers {
			p.wg.Go(func() {
				for t := range p.tasks {
					t()
				}
			})
		}
	})
}

// Dispatch queues one partition computation and returns its pending handle.
// The worker checks the run context before applying the transform, so tasks
// abandoned after a timeout resolve as unavailable instead of running.
func (p *Pool) Dispatch(ctx context.Context, dataset []float64, partition Partition, transform Transform) *Future {
	future := NewFuture(partition)
	p.tasks <- func() {
		if err := ctx.Err(); err != nil {
			future.Resolve(nil, fmt.Errorf("%w: %v", ErrWorkerUnavailable, err))
			return
		}
		samples := dataset[partition.Offset : partition.Offset+partition.Length]
		result, err := applyTransform(transform, samples)
		if err != nil {
			future.Resolve(nil, &ComputeError{Partition: partition.Index, Err: err})
			return
		}
		future.Resolve(result, nil)
	}
	return future
}

// Close stops intake. Workers exit after draining queued tasks; it does not
// wait for in-flight tasks, so an abandoned run never blocks teardown.
func (p *Pool) Close() {
	close(p.tasks)
}

// Wait blocks until all workers have exited. Call after Close.
func (p *Pool) Wait() {
	p.wg.Wait()
}

// applyTransform shields the pool from panicking transforms.
func applyTransform(transform Transform, samples []float64) (result []float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("transform panicked: %v", r)
		}
	}()
	return transform.Apply(samples)
}
