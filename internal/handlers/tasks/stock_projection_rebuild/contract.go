//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stock_projection_rebuild_test
package stock_projection_rebuild

import (
	"context"

	"onboarding/pkg/logger"
)

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	RebuildProjection(ctx context.Context) (int, error)
}
