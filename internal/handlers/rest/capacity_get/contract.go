//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=capacity_get_test
package capacity_get

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
	CheckCapacity(ctx context.Context, partnerID int64, deliveryType entities.DeliveryType, additionalCount int) (*entities.CapacityCheck, error)
}
