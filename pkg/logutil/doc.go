// Package logutil provides context-aware structured logging on top of
// log/slog.
//
// Subsystems (workers, tools, request handlers) call Start once to get a
// logger that carries a generated trace ID and the subsystem path. The
// logger travels inside the context.Context, so deeply nested code can pick
// it up with Get without plumbing a logger through every signature:
//
//	ctx = logutil.Start(ctx, "hammer/writer")
//	logutil.Get(ctx).Info("worker started")
//
// Additional fields stick to the context:
//
//	ctx = logutil.WithField(ctx, "entry-name", name)
//
// FromStruct converts annotated structs into log fields via the logfield
// tag.
package logutil
