package goscatter

// RunState tracks a coordinator through its single run.
//
// Idle -> Dispatching -> AwaitingAll -> {Aggregating -> Completed} | TimedOut | Failed
//
// Completed, TimedOut and Failed are terminal; no transition re-enters
// Dispatching.
type RunState int32

const (
	StateIdle RunState = iota
	StateDispatching
	StateAwaitingAll
	StateAggregating
	StateCompleted
	StateTimedOut
	StateFailed
)

func (s RunState) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateDispatching:
		return "DISPATCHING"
	case StateAwaitingAll:
		return "AWAITING_ALL"
	case StateAggregating:
		return "AGGREGATING"
	case StateCompleted:
		return "COMPLETED"
	case StateTimedOut:
		return "TIMED_OUT"
	case StateFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// Terminal reports whether no further transitions are possible from s.
func (s RunState) Terminal() bool {
	return s == StateCompleted || s == StateTimedOut || s == StateFailed
}
