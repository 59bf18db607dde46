package ctxstore_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/rebuy-de/ctxstore/pkg/ctxstore"
)

func metricValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != name {
			continue
		}

		for _, metric := range family.GetMetric() {
			if metric.GetCounter() != nil {
				return metric.GetCounter().GetValue()
			}
			if metric.GetGauge() != nil {
				return metric.GetGauge().GetValue()
			}
		}
	}

	t.Fatalf("metric %q not found", name)
	return 0
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()

	store := ctxstore.New(ctxstore.WithMetrics(reg, "test"))
	defer store.Close()

	cfg := config{Endpoint: "localhost"}
	ctxstore.PutOwned(store, "cfg", &cfg, func(*config) {})

	// The idempotent re-set must not show up as an effective operation.
	ctxstore.PutOwned(store, "cfg", &cfg, func(*config) {})

	ses := session{ID: "a"}
	ctxstore.Put(store, "session", &ses)

	require.Equal(t, 2.0, metricValue(t, reg, "ctxstore_sets_total"))
	require.Equal(t, 2.0, metricValue(t, reg, "ctxstore_entries"))

	ctxstore.Erase[session](store, "session")
	require.Equal(t, 1.0, metricValue(t, reg, "ctxstore_erases_total"))
	require.Equal(t, 1.0, metricValue(t, reg, "ctxstore_entries"))

	replacement := config{Endpoint: "new"}
	ctxstore.PutOwned(store, "cfg", &replacement, func(*config) {})
	require.Equal(t, 3.0, metricValue(t, reg, "ctxstore_sets_total"))
	require.Equal(t, 1.0, metricValue(t, reg, "ctxstore_destroys_total"))

	released, ok := ctxstore.Take[config](store, "cfg")
	require.True(t, ok)
	require.Same(t, &replacement, released)
	require.Equal(t, 1.0, metricValue(t, reg, "ctxstore_releases_total"))
	require.Equal(t, 0.0, metricValue(t, reg, "ctxstore_entries"))

	// Released values never count as destroyed.
	require.Equal(t, 1.0, metricValue(t, reg, "ctxstore_destroys_total"))
}
