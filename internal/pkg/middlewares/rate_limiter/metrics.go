package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RateLimitExceededTotal - отклоненные запросы; client_kind = user | addr.
var RateLimitExceededTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_rate_limit_rejected_total",
		Help: "Requests rejected by the per-client token bucket",
	},
	[]string{"route", "client_kind"},
)
