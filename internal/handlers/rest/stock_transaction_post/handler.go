package stock_transaction_post

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

// ServeHTTP: POST /stock/transaction
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.StockTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, h.log, "invalid request body")
		return
	}

	written, err := h.service.RecordTransaction(r.Context(), entities.TransactionRecord{
		ItemID:   req.ItemID,
		Size:     pointer.GetString(req.Size),
		Type:     entities.TransactionType(req.Type),
		Quantity: req.Quantity,
		RiderID:  req.RiderID,
		Notes:    pointer.GetString(req.Notes),
	})
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusCreated, dtomap.FromStockTransaction(written))
}
