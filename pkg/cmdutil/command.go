package cmdutil

import (
	"context"

	"github.com/spf13/cobra"
)

// Option configures a cobra command created with New.
type Option func(*cobra.Command) error

// New creates a cobra command and applies all given options. PreRun and
// PersistentPreRun hooks registered by the individual options are collected
// and chained in option order, since cobra itself only supports a single
// hook per command.
func New(use, desc string, options ...Option) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: desc,
	}

	var (
		preRuns           = make([]func(*cobra.Command, []string), 0)
		persistentPreRuns = make([]func(*cobra.Command, []string), 0)
	)

	for _, o := range options {
		err := o(cmd)
		Must(err)

		if cmd.PreRun != nil {
			preRuns = append(preRuns, cmd.PreRun)
		}
		cmd.PreRun = nil

		if cmd.PersistentPreRun != nil {
			persistentPreRuns = append(persistentPreRuns, cmd.PersistentPreRun)
		}
		cmd.PersistentPreRun = nil
	}

	if len(persistentPreRuns) > 0 {
		cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
			for _, run := range persistentPreRuns {
				run(cmd, args)
			}
		}
	}

	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		for _, run := range preRuns {
			run(cmd, args)
		}
	}

	return cmd
}

// WithSubCommand attaches a child command.
func WithSubCommand(sub *cobra.Command) Option {
	return func(parent *cobra.Command) error {
		parent.AddCommand(sub)
		return nil
	}
}

// WithRun sets the run function of the command. The function receives a
// context that gets cancelled on SIGINT and SIGTERM.
func WithRun(run RunFuncWithContext) Option {
	return func(cmd *cobra.Command) error {
		cmd.Run = func(cmd *cobra.Command, args []string) {
			run(SignalRootContext(), cmd, args)
		}
		return nil
	}
}

// Runner is the preferred way to define the behaviour of a command. Bind
// registers flags, Run does the work. Errors bubble up to main instead of
// exiting somewhere deep in the call stack.
type Runner interface {
	Bind(cmd *cobra.Command) error
	Run(ctx context.Context) error
}

// WithRunner binds the Runner's flags and wires its Run function to the
// command, using a signal-aware root context.
func WithRunner(runner Runner) Option {
	return func(cmd *cobra.Command) error {
		err := runner.Bind(cmd)
		if err != nil {
			return err
		}

		cmd.Run = func(cmd *cobra.Command, args []string) {
			ctx := SignalRootContext()
			Must(runner.Run(ctx))
		}
		return nil
	}
}
