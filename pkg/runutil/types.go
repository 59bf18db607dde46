package runutil

import "context"

// Worker is a long-running task, like the reader and writer loops of
// cmd/ctxhammer. It keeps running until the given context gets cancelled
// and must return the cancellation cause, if any.
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a plain function to the Worker interface.
type WorkerFunc func(ctx context.Context) error

func (fn WorkerFunc) Run(ctx context.Context) error {
	return fn(ctx)
}

// Job is a task that does one unit of work and returns. Jobs become Workers
// by wrapping them with Repeat.
type Job interface {
	RunOnce(ctx context.Context) error
}

// JobFunc adapts a plain function to the Job interface.
type JobFunc func(ctx context.Context) error

func (fn JobFunc) RunOnce(ctx context.Context) error {
	return fn(ctx)
}
