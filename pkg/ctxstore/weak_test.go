package ctxstore_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rebuy-de/ctxstore/pkg/ctxstore"
)

func TestWeakHandleLiveness(t *testing.T) {
	store := ctxstore.New()

	handle := store.Weak()
	require.True(t, handle.Alive())

	have, ok := handle.Get()
	require.True(t, ok)
	require.Same(t, store, have)

	require.NoError(t, store.Close())

	require.False(t, handle.Alive())
	_, ok = handle.Get()
	require.False(t, ok)
}

func TestWeakHandlesShareControlBlock(t *testing.T) {
	store := ctxstore.New()

	first := store.Weak()
	second := store.Weak()
	copied := first

	store.Close()

	require.False(t, first.Alive())
	require.False(t, second.Alive())
	require.False(t, copied.Alive())
}

func TestWeakHandleSurvivesMove(t *testing.T) {
	src := ctxstore.New()
	dst := ctxstore.New()

	srcHandle := src.Weak()
	dstHandle := dst.Weak()

	cfg := config{Endpoint: "localhost"}
	ctxstore.Put(src, "cfg", &cfg)

	dst.MoveFrom(src)

	// Both Contexts still exist, so both handles stay alive. The source is
	// merely empty now.
	require.True(t, srcHandle.Alive())
	require.True(t, dstHandle.Alive())

	have, ok := srcHandle.Get()
	require.True(t, ok)
	require.Equal(t, 0, have.Len())

	have, ok = dstHandle.Get()
	require.True(t, ok)
	require.Equal(t, 1, have.Len())

	src.Close()
	require.False(t, srcHandle.Alive())
	require.True(t, dstHandle.Alive())

	dst.Close()
	require.False(t, dstHandle.Alive())
}

func TestZeroHandleIsDead(t *testing.T) {
	var handle ctxstore.Handle
	require.False(t, handle.Alive())

	_, ok := handle.Get()
	require.False(t, ok)
}
