package rider

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"onboarding/internal/entities"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Rider, error) {
	query, args, err := qb.
		Select(columns...).
		From("riders").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository getbyid error: %w", err)
	}

	var riderModel RiderDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(riderModel.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrRiderNotFound
		}
		return nil, fmt.Errorf("unexpected rider repository getbyid error: %w", err)
	}

	return ToDomain(&riderModel)
}

// GetByIDs возвращает найденных райдеров в порядке id, отсутствующие пропускаются.
func (r *Repository) GetByIDs(ctx context.Context, ids []string) ([]entities.Rider, error) {
	if len(ids) == 0 {
		return []entities.Rider{}, nil
	}

	return r.list(ctx, "getbyids", sq.Eq{"id": ids})
}

func (r *Repository) ListByPartnerRef(ctx context.Context, partnerID int64, partnerName string) ([]entities.Rider, error) {
	var where sq.Sqlizer = sq.Eq{"partner_id": partnerID}
	if partnerName != "" {
		where = sq.Or{
			sq.Eq{"partner_id": partnerID},
			sq.And{
				sq.Eq{"partner_id": nil},
				sq.Expr("lower(trim(company_name)) = lower(trim(?))", partnerName),
			},
		}
	}

	return r.list(ctx, "listbypartnerref", where)
}

func (r *Repository) list(ctx context.Context, op string, where sq.Sqlizer) ([]entities.Rider, error) {
	query, args, err := qb.
		Select(columns...).
		From("riders").
		Where(where).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository %s error: %w", op, err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository %s error: %w", op, err)
	}
	defer rows.Close()

	riderModels := make([]RiderDB, 0, 16)
	for rows.Next() {
		var riderModel RiderDB
		if err := rows.Scan(riderModel.scanTargets()...); err != nil {
			return nil, fmt.Errorf("unexpected rider repository %s error: %w", op, err)
		}
		riderModels = append(riderModels, riderModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected rider repository %s error: %w", op, err)
	}

	return ToDomainList(riderModels)
}

// ApplyChange заменяет статус и метаданные одного процесса, если текущий статус
// совпадает с ожидаемым. Иначе ErrStatusChanged, райдера нет - ErrRiderNotFound.
func (r *Repository) ApplyChange(ctx context.Context, change entities.WorkflowChange) error {
	statusColumn, metaColumn, err := workflowColumns(change.Workflow)
	if err != nil {
		return err
	}

	meta, err := FromDomainMeta(change.State)
	if err != nil {
		return fmt.Errorf("encode %s meta for rider %s: %w", change.Workflow, change.RiderID, err)
	}

	query, args, err := qb.
		Update("riders").
		Set(statusColumn, change.State.Status.String()).
		Set(metaColumn, meta).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{
			"id":         change.RiderID,
			statusColumn: change.Expected.String(),
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected rider repository applychange error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected rider repository applychange error: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	err = r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM riders WHERE id = $1)`, change.RiderID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("unexpected rider repository applychange error: %w", err)
	}
	if !exists {
		return entities.ErrRiderNotFound
	}
	return entities.ErrStatusChanged
}

func (r *Repository) CountInstallationBookings(ctx context.Context, vendorID int64, date string) (map[string]int, error) {
	query := `
		SELECT installation_meta ->> 'time_start', COUNT(*)
		FROM riders
		WHERE installation_status IN ('scheduled', 'completed')
			AND installation_meta ->> 'vendor_id' = $1
			AND installation_meta ->> 'date' = $2
		GROUP BY 1`

	rows, err := r.querier.Query(ctx, query, fmt.Sprint(vendorID), date)
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository countinstallationbookings error: %w", err)
	}
	defer rows.Close()

	booked := make(map[string]int)
	for rows.Next() {
		var (
			start *string
			count int
		)
		if err := rows.Scan(&start, &count); err != nil {
			return nil, fmt.Errorf("unexpected rider repository countinstallationbookings error: %w", err)
		}
		if start != nil {
			booked[*start] += count
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected rider repository countinstallationbookings error: %w", err)
	}

	return booked, nil
}
