package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"
)

// ErrBusy is returned by Run while another batch is still in flight.
var ErrBusy = errors.New("a batch is already running")

// Runner drives one Operation over one ordered file list. Files are
// processed strictly sequentially; cancellation is observed at file
// boundaries (plus inside any operation I/O that honors the context).
type Runner struct {
	running atomic.Bool
}

func NewRunner() *Runner {
	return &Runner{}
}

// Run executes op over files, emitting a StateProcessing update and exactly
// one terminal update per file on updates, in input order. A Prepare failure
// aborts the run before any update is emitted. When the context is canceled
// no terminal update is emitted for files that never started; the Outcome
// counts them Cancelled.
func (r *Runner) Run(ctx context.Context, op Operation, files []string, updates chan<- FileUpdate) (Outcome, error) {
	if !r.running.CompareAndSwap(false, true) {
		return Outcome{}, ErrBusy
	}
	defer r.running.Store(false)

	out := Outcome{Total: len(files)}

	if err := op.Prepare(ctx); err != nil {
		return out, fmt.Errorf("%s: %w", op.Name(), err)
	}

	for i, path := range files {
		if ctx.Err() != nil {
			out.Canceled = true
			break
		}

		send(updates, FileUpdate{Path: path, State: StateProcessing, Total: out.Total})

		res, err := processFile(ctx, op, path)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				out.Canceled = true
				break
			}
			out.Failed++
			slog.Warn("file failed",
				"op", op.Name(),
				"file", filepath.Base(path),
				"index", i+1,
				"total", out.Total,
				"err", err,
			)
			send(updates, FileUpdate{Path: path, State: StateFailed, Total: out.Total, Err: err.Error()})
			continue
		}

		switch res {
		case FileSkipped:
			out.Skipped++
			send(updates, FileUpdate{Path: path, State: StateSkipped, Total: out.Total})
		default:
			out.Completed++
			send(updates, FileUpdate{Path: path, State: StateCompleted, Total: out.Total})
		}
	}

	if ctx.Err() != nil {
		out.Canceled = true
	}
	if out.Canceled {
		out.Cancelled = out.Total - out.Completed - out.Skipped - out.Failed
	}

	return out, nil
}

// processFile confines a panicking codec to a single file's Failed state.
func processFile(ctx context.Context, op Operation, path string) (res FileResult, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%s: panic: %v", op.Name(), rec)
		}
	}()
	return op.ProcessFile(ctx, path)
}

func send(updates chan<- FileUpdate, update FileUpdate) {
	if updates != nil {
		updates <- update
	}
}
