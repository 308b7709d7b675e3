//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=vendor_slots_get_test
package vendor_slots_get

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
	GenerateSlots(ctx context.Context, vendorID int64, date string) ([]entities.Slot, error)
	Suggest(ctx context.Context, vendorID int64, date string, n int) (*entities.SlotPlan, error)
}
