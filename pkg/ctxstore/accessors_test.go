package ctxstore_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rebuy-de/ctxstore/pkg/ctxstore"
	"github.com/rebuy-de/ctxstore/pkg/testutil"
)

func TestTypedAccessors(t *testing.T) {
	store := ctxstore.New()
	defer store.Close()

	cfg := config{Endpoint: "localhost"}
	ctxstore.Put(store, "cfg", &cfg)

	require.True(t, ctxstore.Has[config](store, "cfg"))
	require.False(t, ctxstore.Has[session](store, "cfg"))

	have, ok := ctxstore.From[config](store, "cfg")
	require.True(t, ok)
	require.Same(t, &cfg, have)

	// Same name, different type: the store never hands out a value under
	// the wrong type token.
	_, ok = ctxstore.From[session](store, "cfg")
	require.False(t, ok)

	ctxstore.Erase[config](store, "cfg")
	require.False(t, ctxstore.Has[config](store, "cfg"))
}

func TestTakeOnlyReturnsOwned(t *testing.T) {
	store := ctxstore.New()
	defer store.Close()

	borrowed := config{Endpoint: "borrowed"}
	ctxstore.Put(store, "borrowed", &borrowed)

	owned := config{Endpoint: "owned"}
	ctxstore.PutOwned(store, "owned", &owned, nil)

	_, ok := ctxstore.Take[config](store, "borrowed")
	require.False(t, ok)

	have, ok := ctxstore.Take[config](store, "owned")
	require.True(t, ok)
	require.Same(t, &owned, have)
}

func TestEntriesSnapshot(t *testing.T) {
	store := ctxstore.New()
	defer store.Close()

	cfg := config{Endpoint: "localhost"}
	ses := session{ID: "a"}
	count := 7

	ctxstore.PutOwned(store, "cfg", &cfg, nil)
	ctxstore.Put(store, "session", &ses)
	ctxstore.Put(store, "", &count)

	require.Equal(t, []ctxstore.EntryInfo{
		{Name: "", Type: "int", Owned: false},
		{Name: "cfg", Type: "ctxstore_test.config", Owned: true},
		{Name: "session", Type: "ctxstore_test.session", Owned: false},
	}, store.Entries())

	testutil.AssertGoldenJSON(t, "test-fixtures/entries.json", store.Entries())
}
