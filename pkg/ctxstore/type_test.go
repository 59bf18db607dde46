package ctxstore_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rebuy-de/ctxstore/pkg/ctxstore"
)

func TestTypeIdentity(t *testing.T) {
	cases := []struct {
		Name      string
		A, B      ctxstore.Type
		WantEqual bool
	}{
		{
			Name:      "SameType",
			A:         ctxstore.TypeOf[config](),
			B:         ctxstore.TypeOf[config](),
			WantEqual: true,
		},
		{
			Name:      "DistinctTypes",
			A:         ctxstore.TypeOf[config](),
			B:         ctxstore.TypeOf[session](),
			WantEqual: false,
		},
		{
			Name:      "ValueVersusPointer",
			A:         ctxstore.TypeOf[config](),
			B:         ctxstore.TypeOf[*config](),
			WantEqual: false,
		},
		{
			Name:      "InterfaceType",
			A:         ctxstore.TypeOf[io.Reader](),
			B:         ctxstore.TypeOf[io.Reader](),
			WantEqual: true,
		},
		{
			Name:      "InterfaceVersusConcrete",
			A:         ctxstore.TypeOf[io.Reader](),
			B:         ctxstore.TypeOf[io.Writer](),
			WantEqual: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			require.Equal(t, tc.WantEqual, tc.A == tc.B)
		})
	}
}

func TestAnyType(t *testing.T) {
	require.True(t, ctxstore.AnyType.IsAny())
	require.False(t, ctxstore.TypeOf[config]().IsAny())
	require.Equal(t, "<any>", ctxstore.AnyType.String())
}

func TestOpsOfDispatch(t *testing.T) {
	var destroyed *config

	ops := ctxstore.OpsOf[config](func(c *config) { destroyed = c })
	require.Equal(t, ctxstore.TypeOf[config](), ops.Type)

	cfg := config{Endpoint: "localhost"}
	ops.Destroy(&cfg)
	require.Same(t, &cfg, destroyed)

	// A value of the wrong type must not reach the typed destroy function.
	destroyed = nil
	ops.Destroy(&session{ID: "a"})
	require.Nil(t, destroyed)
}
