package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/pedidos-hosteleria/internal/application/ports"
)

var _ ports.Metrics = (*Metrics)(nil)

const namespace = "pedidos"

// Metrics métricas Prometheus del servicio sobre un registro propio.
type Metrics struct {
	registry        *prometheus.Registry
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	assetCleanup    *prometheus.CounterVec
	pedidosCreated  prometheus.Counter
	catalogCache    *prometheus.CounterVec
}

// New crea y registra las métricas. Cada llamada usa un registro nuevo, así los tests no colisionan.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Peticiones HTTP por ruta, método y código de estado",
			},
			[]string{"route", "method", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duración de las peticiones HTTP en segundos",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		assetCleanup: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "asset_cleanup_total",
				Help:      "Borrados de imágenes huérfanas por resultado",
			},
			[]string{"result"},
		),
		pedidosCreated: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "pedidos_created_total",
				Help:      "Pedidos creados",
			},
		),
		catalogCache: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "catalog_cache_requests_total",
				Help:      "Lecturas de la caché del catálogo por resultado (hit, miss)",
			},
			[]string{"result"},
		),
	}
}

// ObserveRequest registra una petición HTTP terminada.
func (m *Metrics) ObserveRequest(route, method, status string, d time.Duration) {
	m.requests.WithLabelValues(route, method, status).Inc()
	m.requestDuration.WithLabelValues(route, method).Observe(d.Seconds())
}

func (m *Metrics) AssetCleanup(result string) {
	m.assetCleanup.WithLabelValues(result).Inc()
}

func (m *Metrics) PedidoCreated() {
	m.pedidosCreated.Inc()
}

// CatalogCache registra un acierto o fallo de la caché del catálogo.
func (m *Metrics) CatalogCache(hit bool) {
	if hit {
		m.catalogCache.WithLabelValues("hit").Inc()
		return
	}
	m.catalogCache.WithLabelValues("miss").Inc()
}

// Handler expone el registro en formato Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry devuelve el registro subyacente.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
