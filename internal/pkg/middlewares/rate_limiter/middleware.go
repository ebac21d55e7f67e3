package rate_limiter

import (
	"net"
	"net/http"
	"strconv"

	"foodbank/internal/pkg/middlewares/metrics"
	"foodbank/pkg/logger"
)

const headerUserID = "X-User-ID"

var tooManyRequestsBody = []byte(`{"error":"rate limit exceeded"}`)

// Middleware ограничивает частоту запросов на пользователя, без X-User-ID на адрес клиента.
// Маршруты из exempt не ограничиваются.
func Middleware(log handlerLogger, capacity int, limiter Limiter, exempt ...string) func(http.Handler) http.Handler {
	exemptRoutes := make(map[string]struct{}, len(exempt))
	for _, route := range exempt {
		exemptRoutes[route] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := metrics.RouteTemplate(r)
			if _, ok := exemptRoutes[route]; ok {
				next.ServeHTTP(w, r)
				return
			}

			key, kind := clientKey(r)
			if limiter.Allow(key) {
				next.ServeHTTP(w, r)
				return
			}

			RateLimitExceededTotal.WithLabelValues(route, kind).Inc()
			log.Warn("rate limit exceeded",
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("client", key),
			)

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(capacity))
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			if _, err := w.Write(tooManyRequestsBody); err != nil {
				log.Error("failed to write rate limit response", logger.NewField("error", err))
			}
		})
	}
}

func clientKey(r *http.Request) (key, kind string) {
	if userID := r.Header.Get(headerUserID); userID != "" {
		return "user:" + userID, "user"
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "addr:" + host, "addr"
}
