//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stock_return_post_test
package stock_return_post

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
	Return(ctx context.Context, equipmentReturn entities.EquipmentReturn) (*entities.StockTransaction, error)
}
