package entities

import (
	"errors"
	"fmt"
)

// Категории ошибок ядра. Конкретные ошибки сервисов оборачивают одну из них.
var (
	ErrValidation        = errors.New("validation error")
	ErrCapacityExceeded  = errors.New("capacity exceeded")
	ErrStockInsufficient = errors.New("stock insufficient")
	ErrIllegalTransition = errors.New("illegal transition")
	ErrNotFound          = errors.New("not found")
	ErrPartialFailure    = errors.New("partial failure")
)

var (
	ErrRiderNotFound   = fmt.Errorf("rider %w", ErrNotFound)
	ErrPartnerNotFound = fmt.Errorf("partner %w", ErrNotFound)
	ErrVendorNotFound  = fmt.Errorf("vendor %w", ErrNotFound)
	ErrItemNotFound    = fmt.Errorf("equipment item %w", ErrNotFound)

	// ErrStatusChanged - статус райдера изменился между чтением и записью.
	ErrStatusChanged = fmt.Errorf("%w: workflow status changed concurrently", ErrIllegalTransition)
)
