package workflow_complete_post

import (
	"encoding/json"
	"net/http"

	"github.com/AlekSi/pointer"
	"github.com/gorilla/mux"
	dtomap "onboarding/internal/dto"
	"onboarding/internal/entities"
	"onboarding/internal/generated/dto"
	"onboarding/internal/handlers/rest/response"
	"onboarding/pkg/logger"
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

// ServeHTTP: POST /workflow/{workflow}/complete
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.CompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, h.log, "invalid request body")
		return
	}

	workflow := entities.WorkflowType(mux.Vars(r)["workflow"])

	outcome, err := h.service.Complete(r.Context(), entities.BulkCompletion{
		Workflow:   workflow,
		RiderIDs:   req.RiderIDs,
		Date:       req.Date,
		Time:       pointer.GetString(req.Time),
		Actor:      req.Actor,
		Notes:      pointer.GetString(req.Notes),
		Selections: dtomap.ToSelections(req.Selections),
	})
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	if outcome.HasFailures() || outcome.BlockedCount > 0 {
		h.log.Info("bulk completion partially applied",
			logger.NewField("workflow", workflow.String()),
			logger.NewField("succeeded", outcome.SuccessCount),
			logger.NewField("blocked", outcome.BlockedCount),
			logger.NewField("failed", len(outcome.Failures)),
		)
	}

	response.JSON(w, h.log, http.StatusOK, dtomap.FromBulkOutcome(outcome))
}
