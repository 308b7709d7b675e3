// Package dto переводит доменные сущности в модели HTTP API и обратно.
// Сами модели генерируются из api/openapi.yaml в internal/generated/dto.
package dto

import (
	"github.com/AlekSi/pointer"
	"onboarding/internal/entities"
	api "onboarding/internal/generated/dto"
	"onboarding/internal/service/slots"
)

func FromStockTransaction(t *entities.StockTransaction) *api.StockTransaction {
	if t == nil {
		return nil
	}

	out := &api.StockTransaction{
		ID:        t.ID,
		ItemID:    t.ItemID,
		Size:      t.Size,
		Type:      t.Type.String(),
		Quantity:  t.Quantity,
		RiderID:   t.RiderID,
		BatchID:   t.BatchID,
		CreatedAt: t.CreatedAt,
	}
	if t.Notes != "" {
		out.Notes = pointer.ToString(t.Notes)
	}
	return out
}

func FromBulkOutcome(o *entities.BulkOutcome) api.BulkOutcome {
	resp := api.BulkOutcome{
		Workflow:     o.Workflow.String(),
		SuccessCount: o.SuccessCount,
		BlockedCount: o.BlockedCount,
		FailureCount: len(o.Failures),
		Succeeded:    nonNil(o.Succeeded),
		Blocked:      make([]api.BlockedGroup, 0, len(o.Blocked)),
		Failures:     make([]api.RiderFailure, 0, len(o.Failures)),
	}

	for _, b := range o.Blocked {
		resp.Blocked = append(resp.Blocked, api.BlockedGroup{
			PartnerID: b.PartnerID,
			RiderIDs:  nonNil(b.RiderIDs),
			Reason:    b.Reason,
		})
	}
	for _, f := range o.Failures {
		resp.Failures = append(resp.Failures, api.RiderFailure{RiderID: f.RiderID, Reason: f.Reason})
	}

	if o.Plan != nil {
		var assigned []api.SlotAssignment
		for i, count := range o.Plan.Counts {
			if count == 0 {
				continue
			}
			assigned = append(assigned, api.SlotAssignment{
				Start: o.Plan.Slots[i].Start,
				End:   o.Plan.Slots[i].End,
				Count: count,
			})
		}
		if len(assigned) > 0 {
			resp.Slots = &assigned
		}
	}
	if o.Distribution != nil {
		resp.BatchID = pointer.ToString(o.Distribution.BatchID)
	}
	return resp
}

func FromCapacityCheck(check *entities.CapacityCheck) api.CapacityResponse {
	resp := api.CapacityResponse{
		PartnerID:  check.PartnerID,
		Allowed:    check.Allowed,
		Additional: make(map[string]int, len(check.Additional)),
		Current: api.CapacityCounts{
			Car:        check.Current.Car,
			Motorcycle: check.Current.Motorcycle,
			Total:      check.Current.Total,
		},
		Targets: api.CapacityCounts{
			Car:        check.Targets.Car,
			Motorcycle: check.Targets.Motorcycle,
			Total:      check.Targets.Total,
		},
	}
	if check.Reason != "" {
		resp.Reason = pointer.ToString(check.Reason)
	}
	for t, n := range check.Additional {
		resp.Additional[t.String()] = n
	}
	return resp
}

func FromSlots(grid []entities.Slot) []api.Slot {
	out := make([]api.Slot, 0, len(grid))
	for _, s := range grid {
		out = append(out, api.Slot{
			Start:     s.Start,
			End:       s.End,
			Capacity:  s.Capacity,
			Booked:    s.Booked,
			Available: s.Available,
		})
	}
	return out
}

func FromDailyCapacity(err *slots.DailyCapacityError) *api.DailyLimit {
	return &api.DailyLimit{
		Message:       err.Error(),
		Deficit:       err.Deficit,
		SuggestedDays: err.SuggestedDays,
	}
}

func ToSelections(in *[]api.EquipmentSelection) []entities.EquipmentSelection {
	if in == nil {
		return nil
	}

	out := make([]entities.EquipmentSelection, 0, len(*in))
	for _, s := range *in {
		out = append(out, entities.EquipmentSelection{
			ItemID:           s.ItemID,
			Size:             pointer.GetString(s.Size),
			QuantityPerRider: s.QuantityPerRider,
		})
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
