package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Contadores(t *testing.T) {
	m := New()

	m.AssetCleanup("deleted")
	m.AssetCleanup("deleted")
	m.AssetCleanup("failed")
	m.PedidoCreated()
	m.CatalogCache(true)
	m.CatalogCache(false)
	m.ObserveRequest("/products", "GET", "200", 10*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.assetCleanup.WithLabelValues("deleted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.assetCleanup.WithLabelValues("failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.pedidosCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.catalogCache.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("/products", "GET", "200")))
}

func TestNew_RegistrosIndependientes(t *testing.T) {
	a, b := New(), New()
	a.PedidoCreated()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.pedidosCreated))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.pedidosCreated))
}
