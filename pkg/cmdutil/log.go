package cmdutil

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	sloggraylog "github.com/samber/slog-graylog/v2"
	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"
	"github.com/Graylog2/go-gelf/gelf"
)

// logLevel is shared by all log options, so the verbose flag also applies to
// handlers that were installed by other options.
var logLevel = new(slog.LevelVar)

// WithLogVerboseFlag adds a --verbose flag that lowers the log level to
// debug.
func WithLogVerboseFlag() Option {
	var enabled bool

	return func(cmd *cobra.Command) error {
		cmd.PersistentFlags().BoolVarP(
			&enabled, "verbose", "v", false,
			"prints debug log messages")

		cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
			logLevel.Set(slog.LevelInfo)
			if enabled {
				logLevel.Set(slog.LevelDebug)
			}
		}

		return nil
	}
}

// WithLogTint installs a human-readable, colorized slog handler as the
// default logger. It should be listed before WithLogToGraylog, so the
// Graylog handler can fan out from it.
func WithLogTint() Option {
	return func(cmd *cobra.Command) error {
		cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
			handler := tint.NewHandler(os.Stderr, &tint.Options{
				Level: logLevel,
			})
			slog.SetDefault(slog.New(handler))
		}

		return nil
	}
}

// WithLogToGraylog adds a --gelf-address flag. When set, log records
// additionally go to Graylog via GELF; the previously installed default
// handler keeps receiving them too.
func WithLogToGraylog() Option {
	var gelfAddress string

	return func(cmd *cobra.Command) error {
		cmd.PersistentFlags().StringVar(
			&gelfAddress, "gelf-address", "",
			`Address to Graylog for logging (format: "ip:port").`)

		cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
			if gelfAddress == "" {
				return
			}

			writer, err := gelf.NewWriter(gelfAddress)
			if err != nil {
				slog.Error("failed to set up GELF writer", "error", err)
				Exit(ExitCodeGeneralError)
			}

			graylog := sloggraylog.Option{
				Level:  logLevel,
				Writer: writer,
			}.NewGraylogHandler()

			slog.SetDefault(slog.New(slogmulti.Fanout(
				slog.Default().Handler(),
				graylog,
			)))
		}

		return nil
	}
}
