package workers

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ErrWorkerPanic is returned by Run for every worker that panicked.
var ErrWorkerPanic = errors.New("worker panicked")

// Workers is a batch of workers sharing a concurrency limit.
type Workers struct {
	workers []Worker
	limit   int
}

// NewWorkers creates a batch running at most limit workers at a time. A
// limit below one means unlimited.
func NewWorkers(limit int, workers ...Worker) *Workers {
	return &Workers{workers: workers, limit: limit}
}

func (w *Workers) Add(worker Worker) {
	w.workers = append(w.workers, worker)
}

func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker and blocks until all have returned. Workers are
// started even after ctx is done so each can report its own outcome.
func (w *Workers) Run(ctx context.Context) error {
	var g errgroup.Group
	if w.limit > 0 {
		g.SetLimit(w.limit)
	}

	panics := make([]error, len(w.workers))
	for i, worker := range w.workers {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					panics[i] = fmt.Errorf("%w: worker %d: %v", ErrWorkerPanic, i, r)
				}
			}()
			worker.Run(ctx)
			return nil
		})
	}
	_ = g.Wait()

	return errors.Join(panics...)
}
