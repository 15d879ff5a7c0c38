// Package observability provides Prometheus metrics and OpenTelemetry tracing.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AuthAttempts counts login attempts partitioned by result
	// (success, invalid_credentials, error).
	AuthAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stockroom_auth_attempts_total",
		Help: "Login attempts by result",
	}, []string{"result"})

	// TokenValidations counts bearer token validations by result
	// (valid, invalid, unknown_subject).
	TokenValidations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stockroom_token_validations_total",
		Help: "Bearer token validations by result",
	}, []string{"result"})

	// RequestTransitions counts lifecycle transitions on inventory requests
	// partitioned by target status and outcome (applied, conflict).
	RequestTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stockroom_request_transitions_total",
		Help: "Inventory request lifecycle transitions by target status and outcome",
	}, []string{"to_status", "outcome"})

	// RequestsCreated counts inventory requests submitted.
	RequestsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stockroom_requests_created_total",
		Help: "Inventory requests submitted",
	})

	// CacheHits counts cache-aside hits by entity.
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stockroom_cache_hits_total",
		Help: "Cache hits by entity",
	}, []string{"entity"})

	// CacheMisses counts cache-aside misses by entity.
	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stockroom_cache_misses_total",
		Help: "Cache misses by entity",
	}, []string{"entity"})

	// RedisErrors counts Redis command failures by operation.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stockroom_redis_errors_total",
		Help: "Redis command failures by operation",
	}, []string{"operation"})

	// RateLimitRejections counts requests rejected by the rate limiter.
	RateLimitRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stockroom_ratelimit_rejections_total",
		Help: "Requests rejected by the rate limiter",
	})
)
