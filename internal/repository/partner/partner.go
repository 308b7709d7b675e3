package partner

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"onboarding/internal/entities"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type PartnerDB struct {
	ID          int64
	Name        string
	Status      string
	CarTarget   *int
	BikeTarget  *int
	TotalTarget *int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Partner, error) {
	return r.get(ctx, "getbyid", sq.Eq{"id": id})
}

// GetByName ищет партнера по названию без учета регистра и крайних пробелов.
func (r *Repository) GetByName(ctx context.Context, name string) (*entities.Partner, error) {
	return r.get(ctx, "getbyname", sq.Expr("lower(trim(name)) = lower(trim(?))", name))
}

func (r *Repository) get(ctx context.Context, op string, where sq.Sqlizer) (*entities.Partner, error) {
	query, args, err := qb.
		Select("id", "name", "status", "car_target", "bike_target", "total_target", "created_at", "updated_at").
		From("partners").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected partner repository %s error: %w", op, err)
	}

	var partnerModel PartnerDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&partnerModel.ID,
			&partnerModel.Name,
			&partnerModel.Status,
			&partnerModel.CarTarget,
			&partnerModel.BikeTarget,
			&partnerModel.TotalTarget,
			&partnerModel.CreatedAt,
			&partnerModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrPartnerNotFound
		}
		return nil, fmt.Errorf("unexpected partner repository %s error: %w", op, err)
	}

	return ToDomain(&partnerModel), nil
}

func ToDomain(p *PartnerDB) *entities.Partner {
	if p == nil {
		return nil
	}

	return &entities.Partner{
		ID:          p.ID,
		Name:        p.Name,
		Status:      entities.PartnerStatus(p.Status),
		CarTarget:   p.CarTarget,
		BikeTarget:  p.BikeTarget,
		TotalTarget: p.TotalTarget,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
