package workflow

import (
	"fmt"

	"onboarding/internal/entities"
)

var (
	ErrInvalidWorkflow           = fmt.Errorf("%w: unknown workflow", entities.ErrValidation)
	ErrMissingActor              = fmt.Errorf("%w: actor is required", entities.ErrValidation)
	ErrInvalidScheduleDate       = fmt.Errorf("%w: schedule date must be YYYY-MM-DD", entities.ErrValidation)
	ErrInvalidTimeRange          = fmt.Errorf("%w: time range must be HH:MM with start before end", entities.ErrValidation)
	ErrMissingCompletionMetadata = fmt.Errorf("%w: completion date, time and actor are required", entities.ErrValidation)
	ErrMissingAllocations        = fmt.Errorf("%w: equipment completion requires size/quantity allocations", entities.ErrValidation)
	ErrInvalidAllocation         = fmt.Errorf("%w: allocation quantity must be positive", entities.ErrValidation)
)

// TransitionError - нарушение правила перехода, с указанием самого правила.
type TransitionError struct {
	Workflow entities.WorkflowType
	From     entities.WorkflowStatus
	To       entities.WorkflowStatus
	Rule     string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("illegal %s transition %s -> %s: %s", e.Workflow, e.From, e.To, e.Rule)
}

func (e *TransitionError) Unwrap() error {
	return entities.ErrIllegalTransition
}
