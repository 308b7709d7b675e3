//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=workflow_complete_post_test
package workflow_complete_post

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
	Complete(ctx context.Context, req entities.BulkCompletion) (*entities.BulkOutcome, error)
}
