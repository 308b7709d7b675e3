//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stock_get_test
package stock_get

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
	Snapshot(ctx context.Context, itemID int64, size string, riderCount int) (*entities.StockSnapshot, error)
}
