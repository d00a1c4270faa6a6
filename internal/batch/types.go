package batch

import "context"

// State is a per-file processing state. Waiting and Processing are
// transient; the rest are terminal.
type State int

const (
	StateWaiting State = iota
	StateProcessing
	StateCompleted
	StateSkipped
	StateFailed
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateWaiting:
		return "waiting"
	case StateProcessing:
		return "processing"
	case StateCompleted:
		return "completed"
	case StateSkipped:
		return "skipped"
	case StateFailed:
		return "failed"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Terminal reports whether s ends a file's processing.
func (s State) Terminal() bool {
	switch s {
	case StateCompleted, StateSkipped, StateFailed, StateCancelled:
		return true
	default:
		return false
	}
}

// FileUpdate is one per-file state transition, emitted at most once per
// (file, state) pair: StateProcessing when a file starts, then exactly one
// terminal state. Immutable once sent.
type FileUpdate struct {
	Path  string
	State State
	Total int
	Err   string
}

// FileResult is the successful outcome of processing one file.
type FileResult int

const (
	FileCompleted FileResult = iota
	FileSkipped
)

// Operation is one batch image transformation. Prepare validates batch-wide
// preconditions (a failing Prepare aborts the run before any file);
// ProcessFile transforms a single file. A ProcessFile error that wraps
// context.Canceled halts the batch; any other error fails only that file.
type Operation interface {
	Name() string
	Prepare(ctx context.Context) error
	ProcessFile(ctx context.Context, path string) (FileResult, error)
}

// Outcome summarizes one finished batch run.
type Outcome struct {
	Total     int
	Completed int
	Skipped   int
	Failed    int
	Cancelled int
	Canceled  bool
}
