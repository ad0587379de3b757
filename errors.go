package goscatter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidArgument is returned for malformed inputs such as a
	// non-positive dataset size or worker count.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrWorkerUnavailable marks a dispatched task that never ran because its
	// worker was torn down or its run context was cancelled.
	ErrWorkerUnavailable = errors.New("worker unavailable")

	// ErrInvalidReducerInput is returned when the reducer receives an empty
	// partial-result collection or an empty element. It indicates a contract
	// violation upstream of the reducer.
	ErrInvalidReducerInput = errors.New("invalid reducer input")

	// ErrCoordinatorUsed is returned when Run is called on a coordinator that
	// already ran. Coordinators are single-use.
	ErrCoordinatorUsed = errors.New("coordinator already used")
)

// ComputeError reports a transform failure on a single partition.
type ComputeError struct {
	Partition int
	Err       error
}

func (e *ComputeError) Error() string {
	return fmt.Sprintf("partition %d: compute failed: %v", e.Partition, e.Err)
}

func (e *ComputeError) Unwrap() error { return e.Err }

// TimeoutError reports that the aggregate deadline elapsed before every
// partition resolved. Unresolved holds the indices still outstanding, in
// ascending order.
type TimeoutError struct {
	Unresolved []int
}

func (e *TimeoutError) Error() string {
	parts := make([]string, len(e.Unresolved))
	for i, p := range e.Unresolved {
		parts[i] = strconv.Itoa(p)
	}
	return fmt.Sprintf("aggregation timed out; unresolved partitions: [%s]", strings.Join(parts, " "))
}

// AggregateError wraps the first observed worker failure. When several
// failures have resolved by the time the coordinator observes one, the
// failure with the lowest partition index wins.
type AggregateError struct {
	Partition int
	Err       error
}

func (e *AggregateError) Error() string {
	return fmt.Sprintf("aggregation failed at partition %d: %v", e.Partition, e.Err)
}

func (e *AggregateError) Unwrap() error { return e.Err }
