package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis command failures by command name.
var RedisErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "murmur_redis_errors_total",
		Help: "Total number of Redis command errors",
	},
	[]string{"command"},
)

// FeedCacheHits counts feed page cache lookups by outcome (hit/miss).
var FeedCacheHits = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "murmur_feed_cache_lookups_total",
		Help: "Feed page cache lookups partitioned by outcome",
	},
	[]string{"outcome"},
)

var (
	promOnce sync.Once
	prom     *fiberprometheus.FiberPrometheus
)

// InitMetrics creates the fiberprometheus middleware for the given service
// name. The HTTP collectors live in the default registry, so the middleware
// is built once per process regardless of how many servers are constructed.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		prom = fiberprometheus.New(serviceName)
	})
	return prom
}

// MetricsMiddleware wraps the fiberprometheus handler as a Fiber middleware.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
