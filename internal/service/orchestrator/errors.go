package orchestrator

import (
	"fmt"

	"onboarding/internal/entities"
)

var (
	ErrNoRiders          = fmt.Errorf("%w: rider ids are required", entities.ErrValidation)
	ErrMissingVendor     = fmt.Errorf("%w: installation requires a vendor", entities.ErrValidation)
	ErrMissingSelections = fmt.Errorf("%w: equipment completion requires selections", entities.ErrValidation)
	ErrUnexpectedSlots   = fmt.Errorf("%w: slot counts are only accepted for installation", entities.ErrValidation)
)
