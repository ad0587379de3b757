// Package runs tracks scatter-gather runs executed by the long-running
// server: bookkeeping, storage, and asynchronous execution on fresh
// coordinators.
package runs

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusSubmitted Status = "SUBMITTED"
	StatusRunning   Status = "RUNNING"
	StatusCompleted Status = "COMPLETED"
	StatusTimedOut  Status = "TIMED_OUT"
	StatusFailed    Status = "FAILED"
)

// Terminal reports whether a run in this status will never change again.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusTimedOut || s == StatusFailed
}

type Run struct {
	ID          uuid.UUID
	Transform   string
	Workers     int
	Timeout     time.Duration
	Width       int
	DatasetSize int

	Status Status
	Result []float64

	// Error is set on FAILED and TIMED_OUT runs.
	Error string
	// FailedPartition identifies the first failed partition on FAILED runs
	// caused by a worker error.
	FailedPartition *int
	// UnresolvedPartitions lists outstanding partitions on TIMED_OUT runs.
	UnresolvedPartitions []int

	SubmittedAt time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
}

type Filter struct {
	Status *Status
	Limit  int
	Offset int
}
