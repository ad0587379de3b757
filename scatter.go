// Package goscatter is a master/worker scatter-gather framework for numeric
// datasets. A single-use Coordinator splits an ordered dataset into
// contiguous partitions, dispatches one transform invocation per partition to
// a worker pool, awaits all pending results under one aggregate deadline, and
// reduces the ordered partial results into the final output.
//
// The framework owns partition bookkeeping, concurrent dispatch, per-worker
// future tracking, timeout and failure handling, and ordered aggregation. The
// transform and the reducer are caller-supplied collaborators; the framework
// never inspects what they compute.
package goscatter

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/nemanja-m/goscatter/internal/shared/logging"
)

// Config configures a single-use Coordinator.
type Config struct {
	// Workers is the worker pool size and the target partition count.
	Workers int

	// Timeout bounds the whole fan-out, measured from the first dispatch.
	// There are no per-worker timeouts: a single slow worker and a globally
	// overloaded run both surface as one aggregate timeout.
	Timeout time.Duration

	Transform Transform
	Reducer   Reducer

	// Executor overrides the worker execution substrate. When nil the
	// coordinator owns a Pool of Workers goroutines for the run.
	Executor Executor

	Logger logging.Logger
}

// Coordinator fans a dataset out across a worker pool and gathers the
// results. One instance serves exactly one run; it is not reused.
type Coordinator struct {
	cfg    Config
	logger logging.Logger
	state  atomic.Int32
}

func NewCoordinator(cfg Config) (*Coordinator, error) {
	if cfg.Workers <= 0 {
		return nil, fmt.Errorf("%w: worker count must be positive, got %d", ErrInvalidArgument, cfg.Workers)
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalidArgument, cfg.Timeout)
	}
	if cfg.Transform == nil {
		return nil, fmt.Errorf("%w: transform is required", ErrInvalidArgument)
	}
	if cfg.Reducer == nil {
		return nil, fmt.Errorf("%w: reducer is required", ErrInvalidArgument)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Coordinator{cfg: cfg, logger: logger}, nil
}

// State returns the coordinator's current run state.
func (c *Coordinator) State() RunState {
	return RunState(c.state.Load())
}

func (c *Coordinator) setState(s RunState) {
	c.state.Store(int32(s))
}

// outcome carries one resolved future from the fan-in goroutines to Run.
type outcome struct {
	partition int
	result    []float64
	err       error
}

// Run executes the full scatter-gather cycle over dataset and returns the
// reduced result. The dataset is read-only and shared by all workers. On
// timeout or worker failure no partial result is returned; the error
// identifies the failing phase and partitions. Calling Run twice returns
// ErrCoordinatorUsed.
func (c *Coordinator) Run(ctx context.Context, dataset []float64) ([]float64, error) {
	if !c.state.CompareAndSwap(int32(StateIdle), int32(StateDispatching)) {
		return nil, ErrCoordinatorUsed
	}

	partitions, err := SplitEven(len(dataset), c.cfg.Workers)
	if err != nil {
		c.setState(StateFailed)
		return nil, err
	}

	executor := c.cfg.Executor
	if executor == nil {
		pool := NewPool(c.cfg.Workers)
		pool.Start()
		defer pool.Close()
		executor = pool
	}

	// Cancelling the run context lets pool workers skip tasks abandoned by a
	// timeout; correctness never depends on them stopping.
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// The aggregate deadline starts at the first dispatch.
	timer := time.NewTimer(c.cfg.Timeout)
	defer timer.Stop()

	results := make(chan outcome, len(partitions))
	for _, partition := range partitions {
		future := executor.Dispatch(runCtx, dataset, partition, c.cfg.Transform)
		go func() {
			<-future.Done()
			result, err := future.Result()
			results <- outcome{partition: future.Partition().Index, result: result, err: err}
		}()
	}

	c.logger.Debug(
		"Partitions dispatched",
		"partitions", len(partitions),
		"dataset_size", len(dataset),
		"timeout", c.cfg.Timeout.String(),
	)
	c.setState(StateAwaitingAll)

	partials := make([][]float64, len(partitions))
	resolved := make([]bool, len(partitions))
	pending := len(partitions)

	for pending > 0 {
		select {
		case out := <-results:
			if out.err != nil {
				failure := lowestFailure(out, results)
				c.setState(StateFailed)
				c.logger.Error("Worker failed", "partition", failure.partition, "error", failure.err)
				return nil, &AggregateError{Partition: failure.partition, Err: failure.err}
			}
			partials[out.partition] = out.result
			resolved[out.partition] = true
			pending--

		case <-timer.C:
			unresolved := make([]int, 0, pending)
			for i, ok := range resolved {
				if !ok {
					unresolved = append(unresolved, i)
				}
			}
			c.setState(StateTimedOut)
			c.logger.Error("Aggregate deadline elapsed", "unresolved", unresolved)
			return nil, &TimeoutError{Unresolved: unresolved}

		case <-ctx.Done():
			c.setState(StateFailed)
			return nil, fmt.Errorf("run cancelled: %w", ctx.Err())
		}
	}

	c.setState(StateAggregating)
	final, err := c.cfg.Reducer.Reduce(partials)
	if err != nil {
		c.setState(StateFailed)
		return nil, err
	}
	c.setState(StateCompleted)

	c.logger.Debug("Run completed", "partitions", len(partitions), "result_len", len(final))
	return final, nil
}

// lowestFailure drains already-resolved outcomes without blocking so that
// when failures race, the one with the lowest partition index is reported.
func lowestFailure(first outcome, results <-chan outcome) outcome {
	failure := first
	for {
		select {
		case out := <-results:
			if out.err != nil && out.partition < failure.partition {
				failure = out
			}
		default:
			return failure
		}
	}
}
