package stock_get

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"onboarding/internal/generated/dto"
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

// ServeHTTP: GET /stock/{item_id}?size=L&riders=10
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.ParseInt(mux.Vars(r)["item_id"], 10, 64)
	if err != nil {
		response.BadRequest(w, h.log, "invalid item id")
		return
	}

	query := r.URL.Query()

	riders := 0
	if raw := query.Get("riders"); raw != "" {
		riders, err = strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, h.log, "invalid riders count")
			return
		}
	}

	snapshot, err := h.service.Snapshot(r.Context(), itemID, query.Get("size"), riders)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.StockResponse{
		ItemID:      snapshot.Item.ID,
		ItemName:    snapshot.Item.Name,
		Size:        snapshot.Size,
		Quantity:    snapshot.Quantity,
		RiderCount:  snapshot.RiderCount,
		PerRiderCap: snapshot.PerRiderCap,
		MaxPerRider: snapshot.Item.MaxPerRider,
	})
}
