package runs

import (
	"sync"

	"github.com/google/uuid"
)

type Store interface {
	Save(run *Run) error
	Update(run *Run) error
	GetByID(id uuid.UUID) (*Run, error)
	List(filter Filter) ([]*Run, int, error)
}

// MemoryStore keeps runs in process memory. It stores and returns copies, so
// callers may mutate what they pass in and what they get back without racing
// the executing goroutines.
type MemoryStore struct {
	mu    sync.RWMutex
	runs  map[uuid.UUID]*Run
	order []uuid.UUID // submission order, newest last
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		runs: make(map[uuid.UUID]*Run),
	}
}

func (s *MemoryStore) Save(run *Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.runs[run.ID]; !exists {
		s.order = append(s.order, run.ID)
	}
	s.runs[run.ID] = cloneRun(run)
	return nil
}

func (s *MemoryStore) Update(run *Run) error {
	return s.Save(run)
}

func (s *MemoryStore) GetByID(id uuid.UUID) (*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, exists := s.runs[id]
	if !exists {
		return nil, nil
	}
	return cloneRun(run), nil
}

func (s *MemoryStore) List(filter Filter) ([]*Run, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var filtered []*Run
	// Newest first.
	for i := len(s.order) - 1; i >= 0; i-- {
		run := s.runs[s.order[i]]
		if filter.Status != nil && run.Status != *filter.Status {
			continue
		}
		filtered = append(filtered, run)
	}

	total := len(filtered)

	offset := filter.Offset
	if offset > total {
		offset = total
	}
	filtered = filtered[offset:]

	if filter.Limit > 0 && filter.Limit < len(filtered) {
		filtered = filtered[:filter.Limit]
	}

	out := make([]*Run, len(filtered))
	for i, run := range filtered {
		out[i] = cloneRun(run)
	}
	return out, total, nil
}

func cloneRun(run *Run) *Run {
	clone := *run
	if run.Result != nil {
		clone.Result = append([]float64(nil), run.Result...)
	}
	if run.UnresolvedPartitions != nil {
		clone.UnresolvedPartitions = append([]int(nil), run.UnresolvedPartitions...)
	}
	if run.FailedPartition != nil {
		p := *run.FailedPartition
		clone.FailedPartition = &p
	}
	if run.StartedAt != nil {
		t := *run.StartedAt
		clone.StartedAt = &t
	}
	if run.CompletedAt != nil {
		t := *run.CompletedAt
		clone.CompletedAt = &t
	}
	return &clone
}
