//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=capacity_test
package capacity

import (
	"context"

	"onboarding/internal/entities"
)

type PartnerRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Partner, error)
}

type RiderRepository interface {
	// ListByPartnerRef возвращает райдеров с partner_id = partnerID, а также райдеров
	// без partner_id, у которых название компании совпадает с partnerName.
	ListByPartnerRef(ctx context.Context, partnerID int64, partnerName string) ([]entities.Rider, error)
}
