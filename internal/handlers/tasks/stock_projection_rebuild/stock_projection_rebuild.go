package stock_projection_rebuild

import (
	"context"
	"fmt"
	"time"

	"onboarding/pkg/logger"
)

// StockProjectionRebuild периодически пересчитывает кэш остатков из журнала,
// чтобы расхождение после сбоя инвалидации жило не дольше интервала.
type StockProjectionRebuild struct {
	log      taskLogger
	service  Service
	interval time.Duration
}

func NewStockProjectionRebuild(log taskLogger, service Service, interval time.Duration) *StockProjectionRebuild {
	return &StockProjectionRebuild{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (s *StockProjectionRebuild) TTL() time.Duration {
	return s.interval
}

func (s *StockProjectionRebuild) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	start := time.Now()
	keys, err := s.service.RebuildProjection(ctxWithTimeout)
	if err != nil {
		return fmt.Errorf("rebuild stock projection: %w", err)
	}

	s.log.With(
		logger.NewField("keys", keys),
		logger.NewField("duration", time.Since(start).String()),
	).Info("stock projection rebuilt")
	return nil
}

func (s *StockProjectionRebuild) Info() string {
	return "stock projection rebuild"
}
