package runutil

import (
	"context"

	"go.uber.org/dig"
)

// WorkerConfiger is for types that define their own workers, including
// repeats and start behaviour:
//
//	func (w *WriterWorker) Workers() []runutil.Worker {
//	    return []runutil.Worker{
//	        runutil.Repeat(time.Second, runutil.JobFunc(w.write),
//	            runutil.WithStartImmediately()),
//	    }
//	}
type WorkerConfiger interface {
	Workers() []Worker
}

// WorkerGroup is an input parameter struct for dig to retrieve all instances
// that implement WorkerConfiger.
type WorkerGroup struct {
	dig.In
	All []WorkerConfiger `group:"worker"`
}

// ProvideWorker registers a WorkerConfiger constructor, which can later be
// started with RunProvidedWorkers.
func ProvideWorker(c *dig.Container, fn any) error {
	return c.Provide(fn, dig.Group("worker"), dig.As(new(WorkerConfiger)))
}

// RunProvidedWorkers starts all workers that were registered with
// ProvideWorker using RunAllWorkers. Every worker gets its own logutil
// subsystem named after its configurer type.
func RunProvidedWorkers(ctx context.Context, c *dig.Container) error {
	return c.Invoke(func(in WorkerGroup) error {
		workers := []Worker{}
		for _, configer := range in.All {
			if configer == nil {
				continue
			}

			for _, w := range configer.Workers() {
				workers = append(workers,
					NamedWorkerFromType(w, configer),
				)
			}
		}
		return RunAllWorkers(ctx, workers...)
	})
}
