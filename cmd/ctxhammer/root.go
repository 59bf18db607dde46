package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/dig"

	"github.com/rebuy-de/ctxstore/pkg/cmdutil"
	"github.com/rebuy-de/ctxstore/pkg/ctxstore"
	"github.com/rebuy-de/ctxstore/pkg/digutil"
	"github.com/rebuy-de/ctxstore/pkg/logutil"
	"github.com/rebuy-de/ctxstore/pkg/runutil"
)

func NewRootCommand() *cobra.Command {
	return cmdutil.New(
		"ctxhammer", "Stress-tests a shared ctxstore.Context with concurrent workers",
		cmdutil.WithLogVerboseFlag(),
		cmdutil.WithLogTint(),
		cmdutil.WithLogToGraylog(),
		cmdutil.WithVersionCommand(),
		cmdutil.WithVersionLog(slog.LevelDebug),
		cmdutil.WithRunner(new(Runner)),
	)
}

// namePool is the fixed set of entry names the workers fight over. Keeping
// it small forces name collisions, which is the interesting part.
type namePool []string

func newNamePool(size int) namePool {
	pool := make(namePool, 0, size)
	for i := range size {
		pool = append(pool, fmt.Sprintf("entry-%d", i))
	}
	return pool
}

type Runner struct {
	duration time.Duration
	names    int
}

func (r *Runner) Bind(cmd *cobra.Command) error {
	cmd.PersistentFlags().DurationVar(
		&r.duration, "duration", 10*time.Second,
		`How long to hammer the store.`)
	cmd.PersistentFlags().IntVar(
		&r.names, "names", 16,
		`Number of distinct entry names the workers contend on.`)

	return nil
}

func (r *Runner) Run(ctx context.Context) error {
	ctx = logutil.Start(ctx, "ctxhammer")
	ctx, cancel := context.WithTimeout(ctx, r.duration)
	defer cancel()

	registry := prometheus.NewRegistry()

	store := ctxstore.New(ctxstore.WithMetrics(registry, "hammer"))
	defer store.Close()

	c := dig.New()
	err := errors.Join(
		digutil.ProvideValue(c, store),
		digutil.ProvideValue(c, registry),
		digutil.ProvideValue(c, newNamePool(r.names)),
		runutil.ProvideWorker(c, NewWriterWorker),
		runutil.ProvideWorker(c, NewReaderWorker),
		runutil.ProvideWorker(c, NewReleaserWorker),
		runutil.ProvideWorker(c, NewStatsWorker),
	)
	if err != nil {
		return err
	}

	err = runutil.RunProvidedWorkers(ctx, c)
	if err != nil {
		return err
	}

	logutil.Get(ctx).Info("done",
		"entries", store.Len(),
		"snapshot", store.Entries(),
	)

	return nil
}
