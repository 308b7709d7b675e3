package eligibility

import (
	"context"
	"fmt"

	"onboarding/internal/entities"
	"onboarding/internal/service/workflow"
)

var ErrMissingRiderID = fmt.Errorf("%w: rider id is required", entities.ErrValidation)

// Eligibility применяет события пересчета допуска. Запланированные и завершенные
// процессы не трогает: машина состояний вернет TransitionError.
type Eligibility struct {
	riders  RiderRepository
	machine *workflow.Machine
}

func New(riders RiderRepository, machine *workflow.Machine) *Eligibility {
	return &Eligibility{
		riders:  riders,
		machine: machine,
	}
}

// Apply возвращает false, если статус уже соответствовал событию.
func (e *Eligibility) Apply(ctx context.Context, event entities.EligibilityChange) (bool, error) {
	if event.RiderID == "" {
		return false, ErrMissingRiderID
	}

	rider, err := e.riders.GetByID(ctx, event.RiderID)
	if err != nil {
		return false, fmt.Errorf("get rider %s: %w", event.RiderID, err)
	}

	change, changed, err := e.machine.SetEligibility(rider, event.Workflow, event.Eligible)
	if err != nil || !changed {
		return false, err
	}

	if err = e.riders.ApplyChange(ctx, change); err != nil {
		return false, fmt.Errorf("apply eligibility for rider %s: %w", event.RiderID, err)
	}
	return true, nil
}
