package stock_level_put

import (
	"encoding/json"
	"net/http"

	"github.com/AlekSi/pointer"
	dtomap "onboarding/internal/dto"
	"onboarding/internal/entities"
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

// ServeHTTP: PUT /stock/level
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.StockLevelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, h.log, "invalid request body")
		return
	}

	size := pointer.GetString(req.Size)
	written, err := h.service.SetStockLevel(r.Context(), req.ItemID, size, req.Quantity, pointer.GetString(req.Notes))
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.StockLevelResponse{
		ItemID:      req.ItemID,
		Size:        entities.NormalizeSize(size),
		Quantity:    req.Quantity,
		Transaction: dtomap.FromStockTransaction(written),
	})
}
