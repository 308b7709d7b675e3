package stock_return_post

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

// ServeHTTP: POST /stock/return
// restock по умолчанию true, restock=false - списание без записи в журнал,
// в ответе written_off=true и нет transaction.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.StockReturnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, h.log, "invalid request body")
		return
	}

	restock := req.Restock == nil || *req.Restock

	written, err := h.service.Return(r.Context(), entities.EquipmentReturn{
		RiderID:  req.RiderID,
		ItemID:   req.ItemID,
		Size:     pointer.GetString(req.Size),
		Quantity: req.Quantity,
		Restock:  restock,
		Notes:    pointer.GetString(req.Notes),
	})
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	status := http.StatusOK
	if written != nil {
		status = http.StatusCreated
	}

	response.JSON(w, h.log, status, dto.StockReturnResponse{
		Restocked:   written != nil,
		WrittenOff:  !restock,
		Transaction: dtomap.FromStockTransaction(written),
	})
}
