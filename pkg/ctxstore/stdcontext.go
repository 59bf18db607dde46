package ctxstore

import "context"

type contextKey string

const contextKeyStore contextKey = "store"

// NewContext returns a copy of ctx that carries the store, so it can travel
// along call chains that already pass a context.Context around.
func NewContext(ctx context.Context, store *Context) context.Context {
	return context.WithValue(ctx, contextKeyStore, store)
}

// FromContext extracts a store previously attached with NewContext. It
// returns nil, if there is none.
func FromContext(ctx context.Context) *Context {
	store, ok := ctx.Value(contextKeyStore).(*Context)
	if !ok {
		return nil
	}
	return store
}
