// Package metrics exposes Prometheus metrics for the HTTP API and the query cache.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/venue-admin/internal/querycache"
)

const namespace = "venue_admin"

// Metrics - собственный registry сервиса, чтобы тесты не делили глобальный
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func New(cache *querycache.Cache) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.duration,
	)
	if cache != nil {
		m.registry.MustRegister(newCacheCollector(cache))
	}
	return m
}

// ObserveRequest records one served request. route is the matched pattern,
// not the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// cacheCollector читает счётчики кеша в момент scrape
type cacheCollector struct {
	cache       *querycache.Cache
	entries     *prometheus.Desc
	hits        *prometheus.Desc
	misses      *prometheus.Desc
	fetches     *prometheus.Desc
	fetchErrors *prometheus.Desc
}

func newCacheCollector(cache *querycache.Cache) *cacheCollector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "query_cache", name), help, nil, nil)
	}
	return &cacheCollector{
		cache:       cache,
		entries:     desc("entries", "Query keys currently cached."),
		hits:        desc("hits_total", "Reads served from a fresh entry."),
		misses:      desc("misses_total", "Reads that needed a fetch."),
		fetches:     desc("fetches_total", "Backend fetches started."),
		fetchErrors: desc("fetch_errors_total", "Backend fetches that failed."),
	}
}

func (c *cacheCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.entries
	ch <- c.hits
	ch <- c.misses
	ch <- c.fetches
	ch <- c.fetchErrors
}

func (c *cacheCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.cache.Stats()
	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(s.Entries))
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(s.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(s.Misses))
	ch <- prometheus.MustNewConstMetric(c.fetches, prometheus.CounterValue, float64(s.Fetches))
	ch <- prometheus.MustNewConstMetric(c.fetchErrors, prometheus.CounterValue, float64(s.FetchErrors))
}
