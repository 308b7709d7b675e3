package equipment

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"onboarding/internal/entities"
)

type ItemDB struct {
	ID            int64
	Name          string
	Category      string
	Sizes         []string
	UnitPrice     float64
	IsChargeable  bool
	IsActive      bool
	InactiveSizes []string
	MaxPerRider   int
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.EquipmentItem, error) {
	query := `
		SELECT id, name, category, sizes, unit_price::float8, is_chargeable,
			is_active, inactive_sizes, max_per_rider
		FROM equipment_items
		WHERE id = $1`

	var itemModel ItemDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&itemModel.ID,
			&itemModel.Name,
			&itemModel.Category,
			&itemModel.Sizes,
			&itemModel.UnitPrice,
			&itemModel.IsChargeable,
			&itemModel.IsActive,
			&itemModel.InactiveSizes,
			&itemModel.MaxPerRider,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrItemNotFound
		}
		return nil, fmt.Errorf("unexpected equipment repository getbyid error: %w", err)
	}

	return ToDomain(&itemModel), nil
}

func ToDomain(i *ItemDB) *entities.EquipmentItem {
	if i == nil {
		return nil
	}

	sizes := make([]string, 0, len(i.Sizes))
	for _, s := range i.Sizes {
		sizes = append(sizes, entities.NormalizeSize(s))
	}
	inactive := make([]string, 0, len(i.InactiveSizes))
	for _, s := range i.InactiveSizes {
		inactive = append(inactive, entities.NormalizeSize(s))
	}

	return &entities.EquipmentItem{
		ID:            i.ID,
		Name:          i.Name,
		Category:      i.Category,
		Sizes:         sizes,
		UnitPrice:     i.UnitPrice,
		IsChargeable:  i.IsChargeable,
		IsActive:      i.IsActive,
		InactiveSizes: inactive,
		MaxPerRider:   i.MaxPerRider,
	}
}
