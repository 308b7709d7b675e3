//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_eligibility_changed_test
package rider_eligibility_changed

import (
	"context"

	"onboarding/internal/entities"
	"onboarding/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Apply(ctx context.Context, event entities.EligibilityChange) (bool, error)
}
