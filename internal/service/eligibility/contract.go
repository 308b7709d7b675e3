//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=eligibility_test
package eligibility

import (
	"context"

	"onboarding/internal/entities"
)

type RiderRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Rider, error)
	ApplyChange(ctx context.Context, change entities.WorkflowChange) error
}
