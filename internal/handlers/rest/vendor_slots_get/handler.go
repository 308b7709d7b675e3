package vendor_slots_get

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	dtomap "onboarding/internal/dto"
	"onboarding/internal/entities"
	"onboarding/internal/generated/dto"
	"onboarding/internal/handlers/rest/response"
	"onboarding/internal/service/slots"
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

// ServeHTTP: GET /vendor/{id}/slots?date=2026-03-02&riders=12
// Без riders возвращается только сетка слотов.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vendorID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, h.log, "invalid vendor id")
		return
	}

	query := r.URL.Query()
	date := query.Get("date")

	rawRiders := query.Get("riders")
	if rawRiders == "" {
		grid, err := h.service.GenerateSlots(r.Context(), vendorID, date)
		if err != nil {
			response.Error(w, h.log, err)
			return
		}

		response.JSON(w, h.log, http.StatusOK, dto.SlotsResponse{
			VendorID:  vendorID,
			Date:      date,
			Slots:     dtomap.FromSlots(grid),
			Suggested: []int{},
		})
		return
	}

	riders, err := strconv.Atoi(rawRiders)
	if err != nil {
		response.BadRequest(w, h.log, "invalid riders count")
		return
	}

	plan, err := h.service.Suggest(r.Context(), vendorID, date, riders)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	res := dto.SlotsResponse{
		VendorID:  plan.VendorID,
		Date:      plan.Date,
		Location:  plan.Location,
		Riders:    riders,
		Slots:     dtomap.FromSlots(plan.Slots),
		Suggested: plan.Counts,
		Assigned:  plan.Assigned,
		Shortfall: plan.Shortfall,
		DailyMax:  plan.DailyMax,
	}
	if res.Suggested == nil {
		res.Suggested = []int{}
	}

	vendor := &entities.Vendor{ID: plan.VendorID, MaxBoxesPerDay: plan.DailyMax}
	var daily *slots.DailyCapacityError
	if errors.As(slots.CheckDailyCapacity(vendor, riders), &daily) {
		res.DailyLimit = dtomap.FromDailyCapacity(daily)
	}

	response.JSON(w, h.log, http.StatusOK, res)
}
