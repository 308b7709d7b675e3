package response

import (
	"encoding/json"
	"errors"
	"net/http"

	dtomap "onboarding/internal/dto"
	"onboarding/internal/entities"
	"onboarding/internal/generated/dto"
	"onboarding/internal/service/slots"
	"onboarding/internal/service/stock"
	"onboarding/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// StatusOf сопоставляет таксономию ошибок с HTTP статусом.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, entities.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, entities.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entities.ErrCapacityExceeded),
		errors.Is(err, entities.ErrStockInsufficient),
		errors.Is(err, entities.ErrIllegalTransition):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func JSON(w http.ResponseWriter, log handlerLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// Error пишет ошибку в теле ответа. Текст внутренних ошибок наружу не отдается.
func Error(w http.ResponseWriter, log handlerLogger, err error) {
	status := StatusOf(err)
	body := dto.ErrorResponse{Error: err.Error(), Details: details(err)}

	if status == http.StatusInternalServerError {
		log.With(
			logger.NewField("error", err),
		).Error("request failed")
		body = dto.ErrorResponse{Error: http.StatusText(status)}
	}

	JSON(w, log, status, body)
}

func BadRequest(w http.ResponseWriter, log handlerLogger, msg string) {
	JSON(w, log, http.StatusBadRequest, dto.ErrorResponse{Error: msg})
}

func details(err error) *interface{} {
	var detail interface{}

	var shortage *stock.ShortageError
	var daily *slots.DailyCapacityError
	switch {
	case errors.As(err, &shortage):
		detail = shortage.Shortages
	case errors.As(err, &daily):
		detail = dtomap.FromDailyCapacity(daily)
	default:
		return nil
	}
	return &detail
}
