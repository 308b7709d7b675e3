package slots

import (
	"fmt"

	"onboarding/internal/entities"
)

var (
	ErrInvalidVendorID      = fmt.Errorf("%w: invalid vendor id", entities.ErrValidation)
	ErrInvalidDate          = fmt.Errorf("%w: date must be YYYY-MM-DD", entities.ErrValidation)
	ErrInvalidRiderCount    = fmt.Errorf("%w: rider count must be positive", entities.ErrValidation)
	ErrInvalidVendorHours   = fmt.Errorf("%w: vendor working hours are invalid", entities.ErrValidation)
	ErrSlotCountMismatch    = fmt.Errorf("%w: slot counts do not match slot grid", entities.ErrValidation)
	ErrNegativeSlotCount    = fmt.Errorf("%w: slot count must not be negative", entities.ErrValidation)
	ErrSlotOverbooked       = fmt.Errorf("%w: slot count exceeds available capacity", entities.ErrCapacityExceeded)
	ErrAllocationExceedsN   = fmt.Errorf("%w: allocated more riders than requested", entities.ErrValidation)
	ErrAllocationIncomplete = fmt.Errorf("%w: not every rider is assigned to a slot", entities.ErrCapacityExceeded)
)

// DailyCapacityError - батч больше дневного лимита вендора.
type DailyCapacityError struct {
	VendorID      int64
	Requested     int
	DailyMax      int
	Deficit       int
	SuggestedDays int
}

func (e *DailyCapacityError) Error() string {
	return fmt.Sprintf(
		"vendor %d handles at most %d riders per day, requested %d (short by %d), split across %d days",
		e.VendorID, e.DailyMax, e.Requested, e.Deficit, e.SuggestedDays,
	)
}

func (e *DailyCapacityError) Unwrap() error {
	return entities.ErrCapacityExceeded
}
