package ctxstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rebuy-de/ctxstore/pkg/ctxstore"
)

func TestStoreTravelsWithContext(t *testing.T) {
	store := ctxstore.New()
	defer store.Close()

	ctx := ctxstore.NewContext(context.Background(), store)
	require.Same(t, store, ctxstore.FromContext(ctx))
}

func TestFromContextWithoutStore(t *testing.T) {
	require.Nil(t, ctxstore.FromContext(context.Background()))
}
