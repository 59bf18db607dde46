package runutil

import (
	"context"
	"errors"
	"sync"
)

// ErrWorkerExitedPrematurely indicates that a worker in RunAllWorkers exited
// while the context was not cancelled yet.
var ErrWorkerExitedPrematurely = errors.New("worker exited prematurely")

// RunAllWorkers starts all workers in goroutines and waits until all are
// exited.
//
// Behaviour:
//   - The execution for all workers gets cancelled when the first worker
//     exits, regardless of its result.
//   - Err is nil, if the context gets cancelled and all workers return nil.
//   - Err contains [ErrWorkerExitedPrematurely], if a worker returns nil
//     while the context was not cancelled yet.
//   - Err contains all errors returned by the workers.
func RunAllWorkers(ctx context.Context, workers ...Worker) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg   sync.WaitGroup
		mux  sync.Mutex
		errs []error
	)

	collect := func(err error) {
		mux.Lock()
		errs = append(errs, err)
		mux.Unlock()
	}

	wg.Add(len(workers))
	for _, w := range workers {
		go func() {
			defer wg.Done()
			defer cancel()

			err := w.Run(ctx)
			if err != nil {
				collect(err)
			} else if ctx.Err() == nil {
				// A nil return while the context is still alive means the
				// worker stopped on its own.
				collect(ErrWorkerExitedPrematurely)
			}
		}()
	}

	wg.Wait()

	return errors.Join(errs...)
}

// RunAllJobs runs all jobs in parallel and returns their joined errors.
func RunAllJobs(ctx context.Context, jobs ...Job) error {
	var (
		wg   sync.WaitGroup
		mux  sync.Mutex
		errs []error
	)

	wg.Add(len(jobs))
	for _, j := range jobs {
		go func() {
			defer wg.Done()

			err := j.RunOnce(ctx)
			if err != nil {
				mux.Lock()
				errs = append(errs, err)
				mux.Unlock()
			}
		}()
	}

	wg.Wait()

	return errors.Join(errs...)
}
