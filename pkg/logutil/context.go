package logutil

import (
	"context"
	"log/slog"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/mitchellh/mapstructure"
)

type contextKey string

const contextKeyMeta contextKey = "meta"

// meta lives in the context and holds the current logger together with the
// trace path. The path is kept separately, so nested Start calls can rebuild
// the full subsystem hierarchy.
type meta struct {
	path []trace
	log  *slog.Logger
}

func (m meta) subsystem() string {
	subsystems := []string{"/"}

	for _, t := range m.path {
		subsystems = append(subsystems, t.subsystem)
	}

	return path.Join(subsystems...)
}

type trace struct {
	id        string
	subsystem string
}

// Get extracts the current logger from the given context. It returns the
// default logger, if there is no logger in the context.
func Get(ctx context.Context) *slog.Logger {
	m, ok := ctx.Value(contextKeyMeta).(meta)
	if !ok {
		return slog.Default()
	}
	return m.log
}

// GetSubsystem extracts the subsystem path from the given context.
func GetSubsystem(ctx context.Context) string {
	m, ok := ctx.Value(contextKeyMeta).(meta)
	if !ok {
		return ""
	}
	return m.subsystem()
}

// Start enters a new subsystem: it generates a fresh trace ID, appends the
// subsystem to the path from the given context and stores a logger with all
// accumulated trace IDs in the returned context.
func Start(ctx context.Context, subsystem string, opts ...ContextOption) context.Context {
	m, ok := ctx.Value(contextKeyMeta).(meta)
	if !ok {
		m = meta{}
	}

	m.log = slog.Default()
	m.path = append(m.path, trace{
		id:        uuid.NewString(),
		subsystem: subsystem,
	})

	ids := []string{}

	for _, t := range m.path {
		m.log = m.log.With("trace-id-"+slug.Make(t.subsystem), t.id)
		ids = append(ids, t.id)
	}

	m.log = m.log.With("subsystem", m.subsystem())
	m.log = m.log.With("trace-id", strings.Join(ids, "-"))

	for _, opt := range opts {
		m = opt(m)
	}

	return context.WithValue(ctx, contextKeyMeta, m)
}

// Update creates a new context with an updated logger.
func Update(ctx context.Context, opts ...ContextOption) context.Context {
	m, ok := ctx.Value(contextKeyMeta).(meta)
	if !ok {
		// Updating a context that was never started is a usage error, but
		// not one worth failing over. Return the context unaltered.
		return ctx
	}

	for _, opt := range opts {
		m = opt(m)
	}

	return context.WithValue(ctx, contextKeyMeta, m)
}

// ContextOption modifies the logger stored in a context.
type ContextOption func(meta) meta

// Field is a ContextOption that adds a single field to the logger.
func Field(key string, value any) ContextOption {
	return func(m meta) meta {
		m.log = m.log.With(key, value)
		return m
	}
}

// WithField is a shortcut for Update with a single Field option.
func WithField(ctx context.Context, key string, value any) context.Context {
	return Update(ctx, Field(key, value))
}

// Fields is a ContextOption that adds all given fields to the logger.
func Fields(fields map[string]any) ContextOption {
	return func(m meta) meta {
		attrs := make([]any, 0, len(fields)*2)
		for k, v := range fields {
			attrs = append(attrs, k, v)
		}
		m.log = m.log.With(attrs...)
		return m
	}
}

// WithFields is a shortcut for Update with a single Fields option.
func WithFields(ctx context.Context, fields map[string]any) context.Context {
	return Update(ctx, Fields(fields))
}

// FromStruct converts any struct into log fields, honouring the logfield
// annotation:
//
//	type Entry struct {
//	    Name  string `logfield:"entry-name"`
//	    Owned bool   `logfield:"owned"`
//	}
//
// See the mapstructure docs for the tag syntax.
func FromStruct(s any) map[string]any {
	fields := map[string]any{}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "logfield",
		Result:  &fields,
	})
	if err != nil {
		return map[string]any{"logfield-error": err}
	}

	err = dec.Decode(s)
	if err != nil {
		return map[string]any{"logfield-error": err}
	}

	return fields
}
