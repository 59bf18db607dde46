package main

import (
	"context"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/rebuy-de/ctxstore/pkg/ctxstore"
	"github.com/rebuy-de/ctxstore/pkg/digutil"
	"github.com/rebuy-de/ctxstore/pkg/logutil"
	"github.com/rebuy-de/ctxstore/pkg/runutil"
)

// record is the payload the workers shuffle through the store.
type record struct {
	Name      string
	CreatedAt time.Time
}

// WriterWorker keeps overwriting random names with fresh owned records. Name
// collisions between writers exercise the single-slot-per-name semantics.
type WriterWorker struct {
	store     *ctxstore.Context
	names     namePool
	writes    atomic.Int64
	destroyed atomic.Int64
}

func NewWriterWorker(store *ctxstore.Context, names namePool) *WriterWorker {
	return &WriterWorker{store: store, names: names}
}

func (w *WriterWorker) Workers() []runutil.Worker {
	return []runutil.Worker{
		runutil.Repeat(time.Millisecond, runutil.JobFunc(w.write),
			runutil.WithStartImmediately()),
	}
}

func (w *WriterWorker) write(ctx context.Context) error {
	name := w.names[rand.IntN(len(w.names))]

	ctxstore.PutOwned(w.store, name,
		&record{Name: name, CreatedAt: time.Now()},
		func(*record) { w.destroyed.Add(1) },
	)
	w.writes.Add(1)

	return nil
}

// ReaderWorker looks up random names and counts hits and misses. It runs
// much hotter than the writers, since reads only take the shared lock.
type ReaderWorker struct {
	store  *ctxstore.Context
	names  namePool
	hits   atomic.Int64
	misses atomic.Int64
}

func NewReaderWorker(store *ctxstore.Context, names namePool) *ReaderWorker {
	return &ReaderWorker{store: store, names: names}
}

func (w *ReaderWorker) Workers() []runutil.Worker {
	return []runutil.Worker{
		runutil.WorkerFunc(w.read),
	}
}

func (w *ReaderWorker) read(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		name := w.names[rand.IntN(len(w.names))]

		_, ok := ctxstore.From[record](w.store, name)
		if ok {
			w.hits.Add(1)
		} else {
			w.misses.Add(1)
		}
	}
}

// ReleaserWorker takes ownership of random entries away from the store, so
// destructor-free removal happens under load too.
type ReleaserWorker struct {
	store    *ctxstore.Context
	names    namePool
	released atomic.Int64
}

func NewReleaserWorker(store *ctxstore.Context, names namePool) *ReleaserWorker {
	return &ReleaserWorker{store: store, names: names}
}

func (w *ReleaserWorker) Workers() []runutil.Worker {
	return []runutil.Worker{
		runutil.Repeat(10*time.Millisecond, runutil.JobFunc(w.release)),
	}
}

func (w *ReleaserWorker) release(ctx context.Context) error {
	name := w.names[rand.IntN(len(w.names))]

	_, ok := ctxstore.Take[record](w.store, name)
	if ok {
		w.released.Add(1)
	}

	return nil
}

// statsReport gets flattened into log fields via logutil.FromStruct.
type statsReport struct {
	Entries  int     `logfield:"entries"`
	Sets     float64 `logfield:"sets"`
	Destroys float64 `logfield:"destroys"`
	Releases float64 `logfield:"releases"`
}

// StatsWorker periodically reports store metrics. The prometheus registry is
// optional; without one it only logs the entry count.
type StatsWorker struct {
	store    *ctxstore.Context
	registry *prometheus.Registry
}

func NewStatsWorker(store *ctxstore.Context, registry digutil.Optional[prometheus.Registry]) *StatsWorker {
	return &StatsWorker{store: store, registry: registry.Value}
}

func (w *StatsWorker) Workers() []runutil.Worker {
	return []runutil.Worker{
		runutil.Repeat(time.Second, runutil.JobFunc(w.report)),
	}
}

func (w *StatsWorker) report(ctx context.Context) error {
	stats := statsReport{
		Entries: w.store.Len(),
	}

	if w.registry != nil {
		families, err := w.registry.Gather()
		if err != nil {
			return errors.Wrap(err, "gather store metrics")
		}

		for _, family := range families {
			metrics := family.GetMetric()
			if len(metrics) == 0 {
				continue
			}

			switch family.GetName() {
			case "ctxstore_sets_total":
				stats.Sets = metrics[0].GetCounter().GetValue()
			case "ctxstore_destroys_total":
				stats.Destroys = metrics[0].GetCounter().GetValue()
			case "ctxstore_releases_total":
				stats.Releases = metrics[0].GetCounter().GetValue()
			}
		}
	}

	log := logutil.Get(ctx)
	for key, value := range logutil.FromStruct(stats) {
		log = log.With(key, value)
	}
	log.Info("progress")

	return nil
}
