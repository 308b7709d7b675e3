package capacity_get

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	dtomap "onboarding/internal/dto"
	"onboarding/internal/entities"
	"onboarding/internal/handlers/rest/response"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

// ServeHTTP: GET /partner/{id}/capacity?delivery_type=Car&additional=3
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	partnerID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, h.log, "invalid partner id")
		return
	}

	query := r.URL.Query()
	deliveryType := entities.ParseDeliveryType(query.Get("delivery_type"))

	additional := 1
	if raw := query.Get("additional"); raw != "" {
		additional, err = strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, h.log, "invalid additional count")
			return
		}
	}

	check, err := h.service.CheckCapacity(r.Context(), partnerID, deliveryType, additional)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dtomap.FromCapacityCheck(check))
}
