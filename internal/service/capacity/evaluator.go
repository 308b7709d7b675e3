package capacity

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"onboarding/internal/entities"
)

// Evaluator - гейт по квотам партнера. Ничего не резервирует: квота тратится
// только когда вызывающий реально записал Scheduled.
type Evaluator struct {
	partners PartnerRepository
	riders   RiderRepository
}

func New(partners PartnerRepository, riders RiderRepository) *Evaluator {
	return &Evaluator{
		partners: partners,
		riders:   riders,
	}
}

func (e *Evaluator) CheckCapacity(
	ctx context.Context,
	partnerID int64,
	deliveryType entities.DeliveryType,
	additionalCount int,
) (*entities.CapacityCheck, error) {
	if deliveryType == "" {
		return nil, ErrMissingDeliveryType
	}
	return e.CheckBatch(ctx, partnerID, map[entities.DeliveryType]int{deliveryType: additionalCount})
}

// CheckBatch проецирует сразу несколько типов доставки одного партнера, чтобы общий
// лимит видел весь батч, а не каждый тип по отдельности.
func (e *Evaluator) CheckBatch(
	ctx context.Context,
	partnerID int64,
	additional map[entities.DeliveryType]int,
) (*entities.CapacityCheck, error) {
	if partnerID <= 0 {
		return nil, ErrInvalidPartnerID
	}
	for _, n := range additional {
		if n < 0 {
			return nil, ErrNegativeAdditional
		}
	}

	partner, err := e.partners.GetByID(ctx, partnerID)
	if err != nil {
		return nil, fmt.Errorf("get partner %d: %w", partnerID, err)
	}

	riders, err := e.riders.ListByPartnerRef(ctx, partner.ID, partner.Name)
	if err != nil {
		return nil, fmt.Errorf("list partner %d riders: %w", partnerID, err)
	}

	check := &entities.CapacityCheck{
		PartnerID:  partner.ID,
		Additional: additional,
		Current:    CountActive(partner, riders),
		Targets:    partner.Targets(),
	}

	if !partner.IsOpen() {
		check.Reason = fmt.Sprintf("partner %s is %s", partner.Name, partner.Status)
		return check, nil
	}

	check.Allowed, check.Reason = Project(partner.Name, check.Current, check.Targets, additional)
	return check, nil
}

// CountActive считает активных райдеров партнера по типам доставки.
func CountActive(partner *entities.Partner, riders []entities.Rider) entities.CapacityCounts {
	var counts entities.CapacityCounts
	for i := range riders {
		r := &riders[i]
		if !MatchesPartner(partner, r) || !r.IsActive() {
			continue
		}

		switch entities.ParseDeliveryType(r.Attributes.DeliveryType.String()) {
		case entities.DeliveryCar:
			counts.Car++
		case entities.DeliveryMotorcycle:
			counts.Motorcycle++
		}
		counts.Total++
	}
	return counts
}

// MatchesPartner: по id, а для райдеров без id - по названию компании.
// Исторические импорты не всегда проставляли partner_id.
func MatchesPartner(partner *entities.Partner, r *entities.Rider) bool {
	if r.Attributes.PartnerID != nil {
		return *r.Attributes.PartnerID == partner.ID
	}

	company := strings.TrimSpace(r.Attributes.CompanyName)
	return company != "" && strings.EqualFold(company, strings.TrimSpace(partner.Name))
}

// Project сравнивает current + additional с лимитами. Типы кроме Car/Motorcycle
// проверяются только по общему лимиту.
func Project(
	partnerName string,
	current entities.CapacityCounts,
	targets entities.CapacityTargets,
	additional map[entities.DeliveryType]int,
) (bool, string) {
	var reasons []string
	total := 0

	types := make([]entities.DeliveryType, 0, len(additional))
	for t := range additional {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	for _, t := range types {
		n := additional[t]
		total += n

		var cur, target int
		switch entities.ParseDeliveryType(t.String()) {
		case entities.DeliveryCar:
			cur, target = current.Car, targets.Car
		case entities.DeliveryMotorcycle:
			cur, target = current.Motorcycle, targets.Motorcycle
		default:
			continue
		}

		if cur+n > target {
			reasons = append(reasons, fmt.Sprintf("%s capacity exceeded for partner %s: %d/%d", t, partnerName, cur+n, target))
		}
	}

	if current.Total+total > targets.Total {
		reasons = append(reasons, fmt.Sprintf("total capacity exceeded for partner %s: %d/%d", partnerName, current.Total+total, targets.Total))
	}

	if len(reasons) > 0 {
		return false, strings.Join(reasons, "; ")
	}
	return true, ""
}
