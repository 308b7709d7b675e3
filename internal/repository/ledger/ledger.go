package ledger

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"onboarding/internal/entities"
	"onboarding/internal/repository"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type TransactionDB struct {
	ID        int64
	ItemID    int64
	Size      string
	Type      string
	Quantity  int
	RiderID   *string
	BatchID   *string
	Notes     string
	CreatedAt time.Time
}

// Repository - журнал складских транзакций. Только вставка и агрегаты,
// UPDATE/DELETE запрещены триггером.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Append(ctx context.Context, txs []entities.StockTransaction) ([]entities.StockTransaction, error) {
	if len(txs) == 0 {
		return []entities.StockTransaction{}, nil
	}

	builder := qb.
		Insert("stock_transactions").
		Columns("item_id", "size", "type", "quantity", "rider_id", "batch_id", "notes")
	for _, tx := range txs {
		builder = builder.Values(
			tx.ItemID,
			entities.NormalizeSize(tx.Size),
			tx.Type.String(),
			tx.Quantity,
			tx.RiderID,
			tx.BatchID,
			tx.Notes,
		)
	}
	builder = builder.Suffix("RETURNING id, item_id, size, type, quantity, rider_id, batch_id, notes, created_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected ledger repository append error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, appendError(err)
	}
	defer rows.Close()

	result := make([]entities.StockTransaction, 0, len(txs))
	for rows.Next() {
		var txModel TransactionDB
		err := rows.Scan(
			&txModel.ID,
			&txModel.ItemID,
			&txModel.Size,
			&txModel.Type,
			&txModel.Quantity,
			&txModel.RiderID,
			&txModel.BatchID,
			&txModel.Notes,
			&txModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected ledger repository append error: %w", err)
		}
		result = append(result, ToDomain(&txModel))
	}

	if err := rows.Err(); err != nil {
		return nil, appendError(err)
	}

	return result, nil
}

func appendError(err error) error {
	if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
		return entities.ErrItemNotFound
	}
	if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
		return fmt.Errorf("%w: transaction sign does not match its type", entities.ErrValidation)
	}
	return fmt.Errorf("unexpected ledger repository append error: %w", err)
}

func (r *Repository) Sum(ctx context.Context, key entities.StockKey) (int, error) {
	query := `
		SELECT COALESCE(SUM(quantity), 0)
		FROM stock_transactions
		WHERE item_id = $1 AND size = $2`

	var sum int
	if err := r.querier.QueryRow(ctx, query, key.ItemID, entities.NormalizeSize(key.Size)).Scan(&sum); err != nil {
		return 0, fmt.Errorf("unexpected ledger repository sum error: %w", err)
	}
	return sum, nil
}

func (r *Repository) SumByRider(
	ctx context.Context,
	riderID string,
	key entities.StockKey,
	txType entities.TransactionType,
) (int, error) {
	query := `
		SELECT COALESCE(SUM(quantity), 0)
		FROM stock_transactions
		WHERE rider_id = $1 AND item_id = $2 AND size = $3 AND type = $4`

	var sum int
	err := r.querier.QueryRow(ctx, query, riderID, key.ItemID, entities.NormalizeSize(key.Size), txType.String()).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("unexpected ledger repository sumbyrider error: %w", err)
	}
	return sum, nil
}

func (r *Repository) Levels(ctx context.Context) ([]entities.StockLevel, error) {
	query, args, err := qb.
		Select("item_id", "size", "SUM(quantity)").
		From("stock_transactions").
		GroupBy("item_id", "size").
		OrderBy("item_id", "size").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected ledger repository levels error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected ledger repository levels error: %w", err)
	}
	defer rows.Close()

	levels := make([]entities.StockLevel, 0, 32)
	for rows.Next() {
		var level entities.StockLevel
		if err := rows.Scan(&level.ItemID, &level.Size, &level.Quantity); err != nil {
			return nil, fmt.Errorf("unexpected ledger repository levels error: %w", err)
		}
		levels = append(levels, level)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected ledger repository levels error: %w", err)
	}

	return levels, nil
}

func ToDomain(t *TransactionDB) entities.StockTransaction {
	return entities.StockTransaction{
		ID:        t.ID,
		ItemID:    t.ItemID,
		Size:      t.Size,
		Type:      entities.TransactionType(t.Type),
		Quantity:  t.Quantity,
		RiderID:   t.RiderID,
		BatchID:   t.BatchID,
		Notes:     t.Notes,
		CreatedAt: t.CreatedAt,
	}
}
