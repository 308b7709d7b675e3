package rate_limiter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"onboarding/internal/generated/dto"
	"onboarding/internal/pkg/middlewares/metrics"
	"onboarding/internal/pkg/middlewares/request_id"
	"onboarding/pkg/logger"
)

// Middleware ограничивает тяжелые маршруты (bulk операции) общим бакетом.
// limit уходит клиенту в X-RateLimit-Limit.
func Middleware(log handlerLogger, limit int, limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			route := metrics.RouteTemplate(r)
			RateLimitExceededTotal.WithLabelValues(r.Method, route).Inc()

			log.With(
				logger.NewField("request_id", request_id.FromContext(r.Context())),
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("rate limit exceeded")

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)

			err := json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "rate limit exceeded, try again later"})
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("route", route),
				).Error("failed to write rate limit response")
			}
		})
	}
}
