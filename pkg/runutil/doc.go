// Package runutil manages long-running services (Workers) and one-off tasks
// (Jobs).
//
// Workers run until their context gets cancelled:
//
//	type Worker interface {
//	    Run(ctx context.Context) error
//	}
//
// RunAllWorkers starts a set of workers and treats the first exit, clean or
// not, as the shutdown signal for the rest.
//
// The package integrates with the dig dependency injection library. Worker
// constructors get registered on the container and started together:
//
//	err := errors.Join(
//	    runutil.ProvideWorker(c, NewWriterWorker),
//	    runutil.ProvideWorker(c, NewReaderWorker),
//	)
//	if err != nil {
//	    return err
//	}
//
//	return runutil.RunProvidedWorkers(ctx, c)
package runutil
