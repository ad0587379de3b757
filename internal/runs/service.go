package runs

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nemanja-m/goscatter"
	"github.com/nemanja-m/goscatter/internal/shared/config"
	"github.com/nemanja-m/goscatter/internal/shared/logging"
	"github.com/nemanja-m/goscatter/internal/shared/metrics"
	"github.com/nemanja-m/goscatter/registry"
)

// Submission describes one run request. Zero Workers, Timeout, or Width fall
// back to the service defaults (width defaults to the reducer's own rule).
type Submission struct {
	Transform string
	Samples   []float64
	Workers   int
	Timeout   time.Duration
	Width     int
}

type Service struct {
	store    Store
	defaults config.RunConfig
	metrics  *metrics.Metrics
	logger   logging.Logger

	wg sync.WaitGroup
}

func NewService(store Store, defaults config.RunConfig, m *metrics.Metrics, logger logging.Logger) *Service {
	return &Service{
		store:    store,
		defaults: defaults,
		metrics:  m,
		logger:   logger,
	}
}

// Submit validates the submission, records it, and starts executing it on a
// fresh coordinator. It returns immediately; progress is observable through
// Get and List.
func (s *Service) Submit(sub Submission) (*Run, error) {
	transform, err := registry.Get(sub.Transform)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", goscatter.ErrInvalidArgument, err)
	}
	if len(sub.Samples) == 0 {
		return nil, fmt.Errorf("%w: dataset must not be empty", goscatter.ErrInvalidArgument)
	}

	workers := sub.Workers
	if workers <= 0 {
		workers = s.defaults.Workers
	}
	timeout := sub.Timeout
	if timeout <= 0 {
		timeout = s.defaults.Timeout
	}

	run := &Run{
		ID:          uuid.New(),
		Transform:   sub.Transform,
		Workers:     workers,
		Timeout:     timeout,
		Width:       sub.Width,
		DatasetSize: len(sub.Samples),
		Status:      StatusSubmitted,
		SubmittedAt: time.Now().UTC(),
	}
	if err := s.store.Save(run); err != nil {
		return nil, err
	}

	s.logger.Info(
		"Run submitted",
		"run_id", run.ID.String(),
		"transform", run.Transform,
		"workers", run.Workers,
		"dataset_size", run.DatasetSize,
	)

	// Snapshot before the executing goroutine starts mutating run.
	snapshot := cloneRun(run)

	s.wg.Add(1)
	go s.execute(run, transform, sub.Samples)

	return snapshot, nil
}

func (s *Service) Get(id uuid.UUID) (*Run, error) {
	return s.store.GetByID(id)
}

func (s *Service) List(filter Filter) ([]*Run, int, error) {
	return s.store.List(filter)
}

// Drain blocks until all in-flight runs reach a terminal state. Used on
// shutdown and in tests.
func (s *Service) Drain() {
	s.wg.Wait()
}

func (s *Service) execute(run *Run, transform goscatter.Transform, samples []float64) {
	defer s.wg.Done()

	started := time.Now().UTC()
	run.Status = StatusRunning
	run.StartedAt = &started
	if err := s.store.Update(run); err != nil {
		s.logger.Error("Failed to update run", "run_id", run.ID.String(), "error", err)
	}

	result, err := s.runOnce(run, transform, samples)

	completed := time.Now().UTC()
	run.CompletedAt = &completed

	switch {
	case err == nil:
		run.Status = StatusCompleted
		run.Result = result

	case isTimeout(err, run):
		run.Status = StatusTimedOut
		run.Error = err.Error()

	default:
		run.Status = StatusFailed
		run.Error = err.Error()
		var aggErr *goscatter.AggregateError
		if errors.As(err, &aggErr) {
			p := aggErr.Partition
			run.FailedPartition = &p
		}
	}

	if err := s.store.Update(run); err != nil {
		s.logger.Error("Failed to update run", "run_id", run.ID.String(), "error", err)
	}

	// SplitEven clamps the worker count to the dataset size, so the number
	// of dispatched partitions can be lower than the requested workers.
	s.metrics.ObserveRun(string(run.Status), completed.Sub(started), min(run.Workers, run.DatasetSize))

	if run.Status == StatusCompleted {
		s.logger.Info("Run completed", "run_id", run.ID.String(), "result_len", len(run.Result))
	} else {
		s.logger.Error("Run finished with failure",
			"run_id", run.ID.String(),
			"status", string(run.Status),
			"error", run.Error,
		)
	}
}

func (s *Service) runOnce(run *Run, transform goscatter.Transform, samples []float64) ([]float64, error) {
	coordinator, err := goscatter.NewCoordinator(goscatter.Config{
		Workers:   run.Workers,
		Timeout:   run.Timeout,
		Transform: transform,
		Reducer:   goscatter.TransposeSum{Width: run.Width},
		Logger:    s.logger,
	})
	if err != nil {
		return nil, err
	}
	return coordinator.Run(context.Background(), samples)
}

func isTimeout(err error, run *Run) bool {
	var timeoutErr *goscatter.TimeoutError
	if errors.As(err, &timeoutErr) {
		run.UnresolvedPartitions = timeoutErr.Unresolved
		return true
	}
	return false
}
