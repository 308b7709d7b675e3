package capacity

import (
	"fmt"

	"onboarding/internal/entities"
)

var (
	ErrInvalidPartnerID    = fmt.Errorf("%w: invalid partner id", entities.ErrValidation)
	ErrNegativeAdditional  = fmt.Errorf("%w: additional count must not be negative", entities.ErrValidation)
	ErrMissingDeliveryType = fmt.Errorf("%w: delivery type is required", entities.ErrValidation)
)
