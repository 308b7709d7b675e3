package ping_get

import (
	"encoding/json"
	"net/http"

	"onboarding/internal/generated/dto"
	"onboarding/internal/pkg/clock"
	"onboarding/pkg/logger"
)

type Handler struct {
	log   handlerLogger
	clock Clock
}

func New(log handlerLogger, clock Clock) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:   handlerLog,
		clock: clock,
	}
}

// ServeHTTP отвечает pong и бизнес-временем, по которому считаются даты записей.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	now := h.clock.Now()
	zone, _ := now.Zone()

	message := "pong"
	res := dto.PingResponse{
		Message:      &message,
		BusinessDate: now.Format(clock.DateLayout),
		BusinessTime: now.Format(clock.TimeLayout),
		Zone:         zone,
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(res)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
