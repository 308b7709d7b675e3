package healthcheck_head

import (
	"context"
	"net/http"
	"sort"
	"sync/atomic"
	"time"

	"onboarding/pkg/logger"
)

const pingTimeout = time.Second

type Handler struct {
	isShuttingDown *atomic.Bool
	log            handlerLogger
	names          []string
	deps           map[string]Pinger
}

func New(isShuttingDown *atomic.Bool, log handlerLogger, deps map[string]Pinger) *Handler {
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)

	return &Handler{
		isShuttingDown: isShuttingDown,
		log:            log.With(),
		names:          names,
		deps:           deps,
	}
}

// ServeHTTP: 503 во время остановки или если недоступна хотя бы одна зависимость.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	for _, name := range h.names {
		if err := h.deps[name].Ping(ctx); err != nil {
			h.log.Warn("readiness check failed",
				logger.NewField("dependency", name),
				logger.NewField("error", err),
			)
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
