package workflow

import (
	"time"

	"onboarding/internal/entities"
	"onboarding/internal/pkg/clock"
)

type Clock interface {
	Now() time.Time
}

type ScheduleDetails struct {
	Date      string
	TimeStart string
	TimeEnd   string
	Location  string
	VendorID  *int64
	PartnerID *int64
	Actor     string
	Notes     string
}

type CompletionDetails struct {
	Date        string
	Time        string
	Actor       string
	Allocations []entities.EquipmentAllocation
	Notes       string
}

// Machine - единственное место, где решается легальность перехода статуса процесса.
// Сама ничего не пишет: возвращает WorkflowChange с ожидаемым предыдущим статусом,
// который репозиторий применяет compare-and-swap'ом.
type Machine struct {
	clock Clock
}

func New(clock Clock) *Machine {
	return &Machine{clock: clock}
}

// CanSchedule проверяет только статус, без метаданных. Используется до гейтов,
// чтобы неподходящие райдеры не учитывались в квотах.
func (m *Machine) CanSchedule(rider *entities.Rider, w entities.WorkflowType) error {
	if !w.IsValid() {
		return ErrInvalidWorkflow
	}

	from := rider.Workflow(w).Status
	switch from {
	case entities.StatusEligible:
		return nil
	case entities.StatusNotEligible:
		return &TransitionError{Workflow: w, From: from, To: entities.StatusScheduled, Rule: "rider is not eligible"}
	case entities.StatusScheduled:
		return &TransitionError{Workflow: w, From: from, To: entities.StatusScheduled, Rule: "already scheduled"}
	case entities.StatusCompleted:
		return &TransitionError{Workflow: w, From: from, To: entities.StatusScheduled, Rule: "completed workflow cannot be rescheduled"}
	default:
		return &TransitionError{Workflow: w, From: from, To: entities.StatusScheduled, Rule: "unknown current status"}
	}
}

func (m *Machine) Schedule(rider *entities.Rider, w entities.WorkflowType, d ScheduleDetails) (entities.WorkflowChange, error) {
	if err := m.CanSchedule(rider, w); err != nil {
		return entities.WorkflowChange{}, err
	}
	if err := ValidateSchedule(d); err != nil {
		return entities.WorkflowChange{}, err
	}

	now := m.clock.Now()
	meta := &entities.WorkflowMeta{
		Date:        d.Date,
		TimeStart:   d.TimeStart,
		TimeEnd:     d.TimeEnd,
		Location:    d.Location,
		VendorID:    d.VendorID,
		PartnerID:   d.PartnerID,
		ScheduledBy: d.Actor,
		ScheduledAt: &now,
		Notes:       d.Notes,
	}

	return entities.WorkflowChange{
		RiderID:  rider.ID,
		Workflow: w,
		Expected: entities.StatusEligible,
		State:    entities.WorkflowState{Status: entities.StatusScheduled, Meta: meta},
	}, nil
}

// CanComplete: Scheduled -> Completed всегда, Eligible -> Completed только для обучения.
func (m *Machine) CanComplete(rider *entities.Rider, w entities.WorkflowType) error {
	if !w.IsValid() {
		return ErrInvalidWorkflow
	}

	from := rider.Workflow(w).Status
	switch from {
	case entities.StatusScheduled:
		return nil
	case entities.StatusEligible:
		if w == entities.WorkflowTraining {
			return nil
		}
		return &TransitionError{Workflow: w, From: from, To: entities.StatusCompleted, Rule: "must be scheduled before completion"}
	case entities.StatusCompleted:
		return &TransitionError{Workflow: w, From: from, To: entities.StatusCompleted, Rule: "already completed"}
	default:
		return &TransitionError{Workflow: w, From: from, To: entities.StatusCompleted, Rule: "rider is not eligible"}
	}
}

func (m *Machine) Complete(rider *entities.Rider, w entities.WorkflowType, d CompletionDetails) (entities.WorkflowChange, error) {
	if err := m.CanComplete(rider, w); err != nil {
		return entities.WorkflowChange{}, err
	}
	if err := ValidateCompletion(w, d); err != nil {
		return entities.WorkflowChange{}, err
	}

	current := rider.Workflow(w)
	meta := &entities.WorkflowMeta{}
	if current.Meta != nil {
		copied := *current.Meta
		meta = &copied
	}

	now := m.clock.Now()
	meta.CompletionDate = d.Date
	meta.CompletionTime = d.Time
	meta.CompletedBy = d.Actor
	meta.CompletedAt = &now
	if len(d.Allocations) > 0 {
		meta.Allocations = append([]entities.EquipmentAllocation(nil), d.Allocations...)
	}
	if d.Notes != "" {
		meta.Notes = d.Notes
	}

	return entities.WorkflowChange{
		RiderID:  rider.ID,
		Workflow: w,
		Expected: current.Status,
		State:    entities.WorkflowState{Status: entities.StatusCompleted, Meta: meta},
	}, nil
}

// SetEligibility применяет решение внешнего прохода пересчета допуска.
// Трогает только NotEligible <-> Eligible; changed=false если статус уже нужный.
func (m *Machine) SetEligibility(rider *entities.Rider, w entities.WorkflowType, eligible bool) (change entities.WorkflowChange, changed bool, err error) {
	if !w.IsValid() {
		return entities.WorkflowChange{}, false, ErrInvalidWorkflow
	}

	target := entities.StatusNotEligible
	if eligible {
		target = entities.StatusEligible
	}

	from := rider.Workflow(w).Status
	if from == target {
		return entities.WorkflowChange{}, false, nil
	}
	if from.IsActive() {
		return entities.WorkflowChange{}, false, &TransitionError{
			Workflow: w, From: from, To: target,
			Rule: "eligibility cannot change once scheduled or completed",
		}
	}

	return entities.WorkflowChange{
		RiderID:  rider.ID,
		Workflow: w,
		Expected: from,
		State:    entities.WorkflowState{Status: target},
	}, true, nil
}

// ValidateSchedule проверяет метаданные без учета статуса райдера.
func ValidateSchedule(d ScheduleDetails) error {
	if d.Actor == "" {
		return ErrMissingActor
	}
	if !isValidDate(d.Date) {
		return ErrInvalidScheduleDate
	}
	if !isValidTimeRange(d.TimeStart, d.TimeEnd) {
		return ErrInvalidTimeRange
	}
	return nil
}

func ValidateCompletion(w entities.WorkflowType, d CompletionDetails) error {
	if d.Actor == "" || !isValidDate(d.Date) || !isValidClock(d.Time) {
		return ErrMissingCompletionMetadata
	}
	if w != entities.WorkflowEquipment {
		return nil
	}
	if len(d.Allocations) == 0 {
		return ErrMissingAllocations
	}
	for _, a := range d.Allocations {
		if a.Quantity <= 0 {
			return ErrInvalidAllocation
		}
	}
	return nil
}

func isValidDate(s string) bool {
	_, err := time.Parse(clock.DateLayout, s)
	return err == nil
}

func isValidClock(s string) bool {
	_, err := time.Parse(clock.TimeLayout, s)
	return err == nil
}

// Пустой диапазон допустим (обучение без времени), половинчатый - нет.
func isValidTimeRange(start, end string) bool {
	if start == "" && end == "" {
		return true
	}
	if !isValidClock(start) || !isValidClock(end) {
		return false
	}
	return start < end
}
