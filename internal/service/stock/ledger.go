package stock

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"onboarding/internal/entities"
	"onboarding/pkg/logger"
)

// Ledger - журнал движений склада. Остаток нигде не хранится как истина,
// это всегда сумма транзакций по (позиция, размер).
type Ledger struct {
	items      ItemRepository
	ledger     LedgerRepository
	riders     RiderRepository
	projection Projection
	locker     Locker
	txManager  TxManager
	logger     ledgerLogger
}

func New(
	items ItemRepository,
	ledger LedgerRepository,
	riders RiderRepository,
	projection Projection,
	locker Locker,
	txManager TxManager,
	logger ledgerLogger,
) *Ledger {
	return &Ledger{
		items:      items,
		ledger:     ledger,
		riders:     riders,
		projection: projection,
		locker:     locker,
		txManager:  txManager,
		logger:     logger,
	}
}

// demand - потребность батча в одной позиции.
type demand struct {
	key   entities.StockKey
	total int
}

// RecordTransaction пишет одну ручную транзакцию. Возврат идет через Return:
// без райдера и сверх выданного ему возврат не принимается.
func (l *Ledger) RecordTransaction(ctx context.Context, rec entities.TransactionRecord) (*entities.StockTransaction, error) {
	quantity, err := signedQuantity(rec.Type, rec.Quantity)
	if err != nil {
		return nil, err
	}

	if rec.Type == entities.TransactionReturn {
		if rec.RiderID == nil || *rec.RiderID == "" {
			return nil, ErrMissingRider
		}
		return l.Return(ctx, entities.EquipmentReturn{
			RiderID:  *rec.RiderID,
			ItemID:   rec.ItemID,
			Size:     rec.Size,
			Quantity: quantity,
			Restock:  true,
			Notes:    rec.Notes,
		})
	}

	key := entities.NewStockKey(rec.ItemID, rec.Size)
	item, err := l.itemFor(ctx, key)
	if err != nil {
		return nil, err
	}
	if rec.Type == entities.TransactionDistribution && !item.IsOffered(key.Size) {
		return nil, fmt.Errorf("%w: item %d size %s", ErrItemNotOffered, key.ItemID, key.Size)
	}

	var written entities.StockTransaction
	err = l.txManager.DoCommitted(ctx, func(ctx context.Context) error {
		if err := l.locker.Lock(ctx, key.LockKey()); err != nil {
			return fmt.Errorf("lock %s: %w", key.LockKey(), err)
		}

		if quantity < 0 {
			current, err := l.ledger.Sum(ctx, key)
			if err != nil {
				return fmt.Errorf("sum stock: %w", err)
			}
			if current+quantity < 0 {
				return &ShortageError{Shortages: []Shortage{{
					ItemID: key.ItemID, Size: key.Size, Required: -quantity, Available: current,
				}}}
			}
		}

		out, err := l.ledger.Append(ctx, []entities.StockTransaction{{
			ItemID:   key.ItemID,
			Size:     key.Size,
			Type:     rec.Type,
			Quantity: quantity,
			RiderID:  rec.RiderID,
			BatchID:  rec.BatchID,
			Notes:    rec.Notes,
		}})
		if err != nil {
			return fmt.Errorf("append transaction: %w", err)
		}
		written = out[0]
		return nil
	})
	if err != nil {
		l.countRejection("record", err)
		return nil, err
	}

	LedgerTransactionsTotal.WithLabelValues(rec.Type.String()).Inc()
	l.invalidate(ctx, key)
	return &written, nil
}

// CurrentStock читает остаток через проекцию, при промахе считает по журналу.
// Ошибки кэша не ломают чтение. Версия ключа читается до суммы: если между
// ними прошла запись, прогрев пропускается и устаревшая сумма в кэш не попадает.
func (l *Ledger) CurrentStock(ctx context.Context, itemID int64, size string) (int, error) {
	key := entities.NewStockKey(itemID, size)

	quantity, ok, err := l.projection.Get(ctx, key)
	switch {
	case err != nil:
		l.logger.Warn("stock projection get failed", stockFields(key, err)...)
	case ok:
		ProjectionLookupsTotal.WithLabelValues("hit").Inc()
		return quantity, nil
	}
	ProjectionLookupsTotal.WithLabelValues("miss").Inc()

	version, err := l.projection.Version(ctx, key)
	fill := err == nil
	if err != nil {
		l.logger.Warn("stock projection version failed", stockFields(key, err)...)
	}

	quantity, err = l.ledger.Sum(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("sum stock for item %d size %s: %w", key.ItemID, key.Size, err)
	}

	if fill {
		stored, err := l.projection.Set(ctx, key, quantity, version)
		switch {
		case err != nil:
			l.logger.Warn("stock projection set failed", stockFields(key, err)...)
		case !stored:
			ProjectionLookupsTotal.WithLabelValues("stale").Inc()
		}
	}
	return quantity, nil
}

// Snapshot - остаток и лимит на райдера для батча из riderCount райдеров.
func (l *Ledger) Snapshot(ctx context.Context, itemID int64, size string, riderCount int) (*entities.StockSnapshot, error) {
	if riderCount < 0 {
		return nil, ErrInvalidRiderCount
	}

	key := entities.NewStockKey(itemID, size)
	item, err := l.itemFor(ctx, key)
	if err != nil {
		return nil, err
	}

	quantity, err := l.CurrentStock(ctx, key.ItemID, key.Size)
	if err != nil {
		return nil, err
	}

	return &entities.StockSnapshot{
		Item:        item,
		Size:        key.Size,
		Quantity:    quantity,
		RiderCount:  riderCount,
		PerRiderCap: PerRiderCap(quantity, riderCount, item.MaxPerRider),
	}, nil
}

// PerRiderCap = min(max_per_rider, stock / riderCount). max_per_rider <= 0 - без лимита,
// отрицательный остаток считается нулевым.
func PerRiderCap(stock, riderCount, maxPerRider int) int {
	available := max(0, stock)
	if riderCount > 0 {
		available /= riderCount
	}
	if maxPerRider > 0 {
		available = min(available, maxPerRider)
	}
	return available
}

// SetStockLevel приводит остаток к desired одной корректирующей транзакцией.
// Если остаток уже равен desired, ничего не пишется и возвращается nil.
func (l *Ledger) SetStockLevel(ctx context.Context, itemID int64, size string, desired int, notes string) (*entities.StockTransaction, error) {
	if desired < 0 {
		return nil, ErrNegativeLevel
	}

	key := entities.NewStockKey(itemID, size)
	if _, err := l.itemFor(ctx, key); err != nil {
		return nil, err
	}

	var written *entities.StockTransaction
	err := l.txManager.DoCommitted(ctx, func(ctx context.Context) error {
		if err := l.locker.Lock(ctx, key.LockKey()); err != nil {
			return fmt.Errorf("lock %s: %w", key.LockKey(), err)
		}

		current, err := l.ledger.Sum(ctx, key)
		if err != nil {
			return fmt.Errorf("sum stock: %w", err)
		}

		delta := desired - current
		if delta == 0 {
			return nil
		}

		out, err := l.ledger.Append(ctx, []entities.StockTransaction{{
			ItemID:   key.ItemID,
			Size:     key.Size,
			Type:     entities.TransactionAdjustment,
			Quantity: delta,
			Notes:    notes,
		}})
		if err != nil {
			return fmt.Errorf("append adjustment: %w", err)
		}
		written = &out[0]
		return nil
	})
	if err != nil {
		return nil, err
	}

	if written != nil {
		LedgerTransactionsTotal.WithLabelValues(entities.TransactionAdjustment.String()).Inc()
		l.invalidate(ctx, key)
	}
	return written, nil
}

// CheckAvailability - проверка без записи: хватит ли остатков на батч.
func (l *Ledger) CheckAvailability(ctx context.Context, selections []entities.EquipmentSelection, riderCount int) error {
	demands, err := l.demands(ctx, selections, riderCount)
	if err != nil {
		return err
	}

	if err = l.checkShortages(ctx, demands); err != nil {
		l.countRejection("check", err)
		return err
	}
	return nil
}

// DistributeBatch списывает экипировку на весь батч атомарно: либо по одной
// distribution транзакции на каждую позицию, либо ни одной.
func (l *Ledger) DistributeBatch(
	ctx context.Context,
	selections []entities.EquipmentSelection,
	riderCount int,
	notes string,
) (*entities.DistributionBatch, error) {
	demands, err := l.demands(ctx, selections, riderCount)
	if err != nil {
		return nil, err
	}

	batchID := uuid.NewString()
	batch := &entities.DistributionBatch{
		BatchID:    batchID,
		RiderCount: riderCount,
	}

	err = l.txManager.DoCommitted(ctx, func(ctx context.Context) error {
		keys := make([]string, 0, len(demands))
		for _, d := range demands {
			keys = append(keys, d.key.LockKey())
		}
		if err := l.locker.Lock(ctx, keys...); err != nil {
			return fmt.Errorf("lock stock: %w", err)
		}

		if err := l.checkShortages(ctx, demands); err != nil {
			return err
		}

		txs := make([]entities.StockTransaction, 0, len(demands))
		for _, d := range demands {
			txs = append(txs, entities.StockTransaction{
				ItemID:   d.key.ItemID,
				Size:     d.key.Size,
				Type:     entities.TransactionDistribution,
				Quantity: -d.total,
				BatchID:  &batchID,
				Notes:    notes,
			})
		}

		out, err := l.ledger.Append(ctx, txs)
		if err != nil {
			return fmt.Errorf("append distribution: %w", err)
		}
		batch.Transactions = out
		return nil
	})
	if err != nil {
		l.countRejection("distribute", err)
		return nil, err
	}

	keys := make([]entities.StockKey, 0, len(demands))
	for _, d := range demands {
		keys = append(keys, d.key)
	}
	LedgerTransactionsTotal.WithLabelValues(entities.TransactionDistribution.String()).Add(float64(len(demands)))
	l.invalidate(ctx, keys...)
	return batch, nil
}

// Return возвращает экипировку на склад. Количество урезается до выданного
// этому райдеру за вычетом прошлых возвратов.
func (l *Ledger) Return(ctx context.Context, ret entities.EquipmentReturn) (*entities.StockTransaction, error) {
	if ret.RiderID == "" {
		return nil, ErrMissingRider
	}
	if ret.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if !ret.Restock {
		return nil, nil
	}

	key := entities.NewStockKey(ret.ItemID, ret.Size)
	if _, err := l.itemFor(ctx, key); err != nil {
		return nil, err
	}

	rider, err := l.riders.GetByID(ctx, ret.RiderID)
	if err != nil {
		return nil, fmt.Errorf("get rider %s: %w", ret.RiderID, err)
	}

	var written entities.StockTransaction
	err = l.txManager.DoCommitted(ctx, func(ctx context.Context) error {
		if err := l.locker.Lock(ctx, key.LockKey()); err != nil {
			return fmt.Errorf("lock %s: %w", key.LockKey(), err)
		}

		returned, err := l.ledger.SumByRider(ctx, rider.ID, key, entities.TransactionReturn)
		if err != nil {
			return fmt.Errorf("sum rider returns: %w", err)
		}

		remaining := rider.AllocatedQuantity(key.ItemID, key.Size) - returned
		if remaining <= 0 {
			return fmt.Errorf("%w: rider %s item %d size %s", ErrNothingToReturn, rider.ID, key.ItemID, key.Size)
		}

		riderID := rider.ID
		out, err := l.ledger.Append(ctx, []entities.StockTransaction{{
			ItemID:   key.ItemID,
			Size:     key.Size,
			Type:     entities.TransactionReturn,
			Quantity: min(ret.Quantity, remaining),
			RiderID:  &riderID,
			Notes:    ret.Notes,
		}})
		if err != nil {
			return fmt.Errorf("append return: %w", err)
		}
		written = out[0]
		return nil
	})
	if err != nil {
		return nil, err
	}

	LedgerTransactionsTotal.WithLabelValues(entities.TransactionReturn.String()).Inc()
	l.invalidate(ctx, key)
	return &written, nil
}

// RebuildProjection пересчитывает кэш остатков целиком из журнала. Если за время
// чтения журнала кэш инвалидировали, замена отменяется: следующий запуск
// перечитает журнал.
func (l *Ledger) RebuildProjection(ctx context.Context) (int, error) {
	epoch, err := l.projection.Epoch(ctx)
	if err != nil {
		return 0, fmt.Errorf("read stock projection epoch: %w", err)
	}

	levels, err := l.ledger.Levels(ctx)
	if err != nil {
		return 0, fmt.Errorf("load stock levels: %w", err)
	}

	replaced, err := l.projection.Replace(ctx, levels, epoch)
	if err != nil {
		return 0, fmt.Errorf("replace stock projection: %w", err)
	}
	if !replaced {
		return 0, ErrProjectionChanged
	}
	return len(levels), nil
}

func (l *Ledger) itemFor(ctx context.Context, key entities.StockKey) (*entities.EquipmentItem, error) {
	item, err := l.items.GetByID(ctx, key.ItemID)
	if err != nil {
		return nil, fmt.Errorf("get item %d: %w", key.ItemID, err)
	}
	if !item.HasSize(key.Size) {
		return nil, fmt.Errorf("%w: item %d size %s", ErrUnknownSize, key.ItemID, key.Size)
	}
	return item, nil
}

// demands сливает одинаковые позиции и проверяет их по карточке товара.
// Результат отсортирован по ключу, чтобы lock'и брались в одном порядке.
func (l *Ledger) demands(ctx context.Context, selections []entities.EquipmentSelection, riderCount int) ([]demand, error) {
	if riderCount <= 0 {
		return nil, ErrInvalidRiderCount
	}
	if len(selections) == 0 {
		return nil, ErrEmptySelection
	}

	perRider := make(map[entities.StockKey]int, len(selections))
	for _, s := range selections {
		if s.QuantityPerRider <= 0 {
			return nil, ErrInvalidQuantity
		}
		perRider[entities.NewStockKey(s.ItemID, s.Size)] += s.QuantityPerRider
	}

	demands := make([]demand, 0, len(perRider))
	for key, qty := range perRider {
		item, err := l.itemFor(ctx, key)
		if err != nil {
			return nil, err
		}
		if !item.IsOffered(key.Size) {
			return nil, fmt.Errorf("%w: item %d size %s", ErrItemNotOffered, key.ItemID, key.Size)
		}
		if item.MaxPerRider > 0 && qty > item.MaxPerRider {
			return nil, fmt.Errorf("%w: item %d allows %d, requested %d", ErrExceedsMaxPerRider, key.ItemID, item.MaxPerRider, qty)
		}
		demands = append(demands, demand{key: key, total: qty * riderCount})
	}

	sort.Slice(demands, func(i, j int) bool {
		if demands[i].key.ItemID != demands[j].key.ItemID {
			return demands[i].key.ItemID < demands[j].key.ItemID
		}
		return demands[i].key.Size < demands[j].key.Size
	})
	return demands, nil
}

// checkShortages читает журнал напрямую: гейт не доверяет кэшу.
func (l *Ledger) checkShortages(ctx context.Context, demands []demand) error {
	var shortages []Shortage
	for _, d := range demands {
		current, err := l.ledger.Sum(ctx, d.key)
		if err != nil {
			return fmt.Errorf("sum stock for item %d size %s: %w", d.key.ItemID, d.key.Size, err)
		}
		if current < d.total {
			shortages = append(shortages, Shortage{
				ItemID:    d.key.ItemID,
				Size:      d.key.Size,
				Required:  d.total,
				Available: current,
			})
		}
	}

	if len(shortages) > 0 {
		return &ShortageError{Shortages: shortages}
	}
	return nil
}

// invalidate вызывается только после DoCommitted: к этому моменту запись видна всем.
func (l *Ledger) invalidate(ctx context.Context, keys ...entities.StockKey) {
	if err := l.projection.Invalidate(ctx, keys...); err != nil {
		l.logger.Warn("stock projection invalidate failed", logger.NewField("keys", len(keys)), logger.NewField("error", err))
	}
}

func (l *Ledger) countRejection(operation string, err error) {
	if errors.Is(err, entities.ErrStockInsufficient) {
		LedgerRejectionsTotal.WithLabelValues(operation).Inc()
	}
}

func signedQuantity(t entities.TransactionType, quantity int) (int, error) {
	switch t {
	case entities.TransactionInbound, entities.TransactionReturn:
		if quantity <= 0 {
			return 0, ErrInvalidQuantity
		}
		return quantity, nil
	case entities.TransactionDistribution:
		if quantity <= 0 {
			return 0, ErrInvalidQuantity
		}
		return -quantity, nil
	case entities.TransactionAdjustment:
		if quantity == 0 {
			return 0, ErrZeroAdjustment
		}
		return quantity, nil
	default:
		return 0, ErrInvalidTransactionType
	}
}

func stockFields(key entities.StockKey, err error) []logger.Field {
	return []logger.Field{
		logger.NewField("item_id", key.ItemID),
		logger.NewField("size", key.Size),
		logger.NewField("error", err),
	}
}
