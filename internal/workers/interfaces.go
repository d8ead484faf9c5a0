// Package workers runs independent units of work with bounded concurrency.
// A failing or panicking worker never affects its siblings.
package workers

import "context"

// Worker is a unit of work run by [Workers]. Implementations handle their own
// errors; Run returns when the work is finished or ctx is done.
type Worker interface {
	Run(ctx context.Context)
}

// WorkerFunc adapts a function to [Worker].
type WorkerFunc func(ctx context.Context)

func (f WorkerFunc) Run(ctx context.Context) {
	f(ctx)
}
