//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orchestrator_test
package orchestrator

import (
	"context"

	"onboarding/internal/entities"
	"onboarding/pkg/logger"
)

type RiderRepository interface {
	GetByIDs(ctx context.Context, ids []string) ([]entities.Rider, error)
	// ApplyChange пишет статус и метаданные одного процесса, если текущий статус
	// равен change.Expected, иначе возвращает entities.ErrStatusChanged.
	ApplyChange(ctx context.Context, change entities.WorkflowChange) error
}

type PartnerRepository interface {
	GetByName(ctx context.Context, name string) (*entities.Partner, error)
}

type CapacityEvaluator interface {
	CheckBatch(ctx context.Context, partnerID int64, additional map[entities.DeliveryType]int) (*entities.CapacityCheck, error)
}

type SlotAllocator interface {
	Reserve(ctx context.Context, vendorID int64, date string, n int, manual []int) (*entities.SlotPlan, error)
}

type StockLedger interface {
	CheckAvailability(ctx context.Context, selections []entities.EquipmentSelection, riderCount int) error
	DistributeBatch(ctx context.Context, selections []entities.EquipmentSelection, riderCount int, notes string) (*entities.DistributionBatch, error)
}

type Notifier interface {
	NotifyVendor(ctx context.Context, notifications []entities.VendorNotification) error
}

type Locker interface {
	Lock(ctx context.Context, keys ...string) error
}

type TxManager interface {
	DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
	DoRequiresNew(ctx context.Context, fn func(ctx context.Context) error) error
}

type orchestratorLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
}
