//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stock_test
package stock

import (
	"context"

	"onboarding/internal/entities"
	"onboarding/pkg/logger"
)

type ItemRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.EquipmentItem, error)
}

type LedgerRepository interface {
	Append(ctx context.Context, txs []entities.StockTransaction) ([]entities.StockTransaction, error)
	Sum(ctx context.Context, key entities.StockKey) (int, error)
	// SumByRider суммирует транзакции типа txType, привязанные к райдеру.
	SumByRider(ctx context.Context, riderID string, key entities.StockKey, txType entities.TransactionType) (int, error)
	Levels(ctx context.Context) ([]entities.StockLevel, error)
}

type RiderRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Rider, error)
}

// Projection - перестраиваемый кэш остатков. Источник истины всегда журнал.
// Invalidate сдвигает версию ключа и общую эпоху, Set и Replace пишут только
// если версия (эпоха) не сдвинулась с момента чтения.
type Projection interface {
	Get(ctx context.Context, key entities.StockKey) (int, bool, error)
	Version(ctx context.Context, key entities.StockKey) (int64, error)
	Set(ctx context.Context, key entities.StockKey, quantity int, version int64) (bool, error)
	Invalidate(ctx context.Context, keys ...entities.StockKey) error
	Epoch(ctx context.Context) (int64, error)
	Replace(ctx context.Context, levels []entities.StockLevel, epoch int64) (bool, error)
}

type Locker interface {
	Lock(ctx context.Context, keys ...string) error
}

type TxManager interface {
	DoCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}

type ledgerLogger interface {
	Warn(msg string, fields ...logger.Field)
}
