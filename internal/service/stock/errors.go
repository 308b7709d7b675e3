package stock

import (
	"errors"
	"fmt"
	"strings"

	"onboarding/internal/entities"
)

var (
	ErrInvalidTransactionType = fmt.Errorf("%w: unknown transaction type", entities.ErrValidation)
	ErrInvalidQuantity        = fmt.Errorf("%w: quantity must be positive", entities.ErrValidation)
	ErrZeroAdjustment         = fmt.Errorf("%w: adjustment delta must not be zero", entities.ErrValidation)
	ErrNegativeLevel          = fmt.Errorf("%w: stock level must not be negative", entities.ErrValidation)
	ErrUnknownSize            = fmt.Errorf("%w: size is not defined for item", entities.ErrValidation)
	ErrItemNotOffered         = fmt.Errorf("%w: item or size is inactive", entities.ErrValidation)
	ErrExceedsMaxPerRider     = fmt.Errorf("%w: quantity per rider exceeds item limit", entities.ErrValidation)
	ErrInvalidRiderCount      = fmt.Errorf("%w: rider count must be positive", entities.ErrValidation)
	ErrEmptySelection         = fmt.Errorf("%w: no equipment selected", entities.ErrValidation)
	ErrMissingRider           = fmt.Errorf("%w: rider id is required", entities.ErrValidation)
	ErrNothingToReturn        = fmt.Errorf("%w: nothing left to return for rider", entities.ErrValidation)

	ErrProjectionChanged = errors.New("stock projection changed during rebuild")
)

type Shortage struct {
	ItemID    int64  `json:"item_id"`
	Size      string `json:"size"`
	Required  int    `json:"required"`
	Available int    `json:"available"`
}

// ShortageError перечисляет все позиции, которых не хватает, а не только первую.
type ShortageError struct {
	Shortages []Shortage
}

func (e *ShortageError) Error() string {
	parts := make([]string, 0, len(e.Shortages))
	for _, s := range e.Shortages {
		parts = append(parts, fmt.Sprintf("item %d size %s: required %d, available %d", s.ItemID, s.Size, s.Required, s.Available))
	}
	return "insufficient stock: " + strings.Join(parts, "; ")
}

func (e *ShortageError) Unwrap() error {
	return entities.ErrStockInsufficient
}
