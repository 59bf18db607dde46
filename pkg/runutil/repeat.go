package runutil

import (
	"context"
	"time"
)

type jobWorker struct {
	wait             time.Duration
	job              Job
	startImmediately bool
}

// Repeat reruns a job indefinitely until the context gets cancelled. The job
// runs at most once in the given time interval, so wait is the time between
// the starts of two runs (based on [time.Ticker]), not the sleep between
// them.
func Repeat(wait time.Duration, job Job, opts ...RepeatOption) Worker {
	w := &jobWorker{
		wait: wait,
		job:  job,
	}

	for _, o := range opts {
		o(w)
	}

	return w
}

type RepeatOption func(*jobWorker)

// WithStartImmediately runs the job once right away instead of waiting for
// the first tick.
func WithStartImmediately() RepeatOption {
	return func(w *jobWorker) {
		w.startImmediately = true
	}
}

func (w jobWorker) Run(ctx context.Context) error {
	if w.startImmediately {
		err := w.job.RunOnce(ctx)
		if err != nil {
			return err
		}
	}

	ticker := time.NewTicker(w.wait)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			err := w.job.RunOnce(ctx)
			if err != nil {
				return err
			}
		}
	}
}
