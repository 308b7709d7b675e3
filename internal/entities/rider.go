package entities

import (
	"strings"
	"time"
)

type WorkflowType string

const (
	WorkflowTraining     WorkflowType = "training"
	WorkflowInstallation WorkflowType = "installation"
	WorkflowEquipment    WorkflowType = "equipment"
)

var Workflows = []WorkflowType{WorkflowTraining, WorkflowInstallation, WorkflowEquipment}

func (w WorkflowType) String() string {
	return string(w)
}

func (w WorkflowType) IsValid() bool {
	switch w {
	case WorkflowTraining, WorkflowInstallation, WorkflowEquipment:
		return true
	default:
		return false
	}
}

type WorkflowStatus string

const (
	StatusNotEligible WorkflowStatus = "not_eligible"
	StatusEligible    WorkflowStatus = "eligible"
	StatusScheduled   WorkflowStatus = "scheduled"
	StatusCompleted   WorkflowStatus = "completed"
)

func (s WorkflowStatus) String() string {
	return string(s)
}

// Rank задает порядок статусов, переход с меньшим рангом считается регрессией.
func (s WorkflowStatus) Rank() int {
	switch s {
	case StatusEligible:
		return 1
	case StatusScheduled:
		return 2
	case StatusCompleted:
		return 3
	default:
		return 0
	}
}

// IsActive - райдер с таким статусом учитывается в квотах партнера.
func (s WorkflowStatus) IsActive() bool {
	return s == StatusScheduled || s == StatusCompleted
}

type DeliveryType string

const (
	DeliveryCar        DeliveryType = "Car"
	DeliveryMotorcycle DeliveryType = "Motorcycle"
)

func (d DeliveryType) String() string {
	return string(d)
}

// ParseDeliveryType приводит значения из импорта к двум известным типам.
// Незнакомое значение возвращается как есть и учитывается только в общем лимите.
func ParseDeliveryType(s string) DeliveryType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "car":
		return DeliveryCar
	case "motorcycle", "motorbike", "bike":
		return DeliveryMotorcycle
	default:
		return DeliveryType(strings.TrimSpace(s))
	}
}

type RiderAttributes struct {
	Name         string
	Phone        string
	Nationality  string
	DeliveryType DeliveryType
	PartnerID    *int64
	CompanyName  string
	JobStatus    string
	Extra        map[string]string
}

// EquipmentAllocation - что конкретно выдано райдеру при завершении выдачи.
type EquipmentAllocation struct {
	ItemID   int64  `json:"item_id"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

// WorkflowMeta хранится в JSONB колонке рядом со статусом.
type WorkflowMeta struct {
	Date      string `json:"date,omitempty"`
	TimeStart string `json:"time_start,omitempty"`
	TimeEnd   string `json:"time_end,omitempty"`
	Location  string `json:"location,omitempty"`
	VendorID  *int64 `json:"vendor_id,omitempty"`
	PartnerID *int64 `json:"partner_id,omitempty"`

	ScheduledBy string     `json:"scheduled_by,omitempty"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`

	CompletionDate string                `json:"completion_date,omitempty"`
	CompletionTime string                `json:"completion_time,omitempty"`
	CompletedBy    string                `json:"completed_by,omitempty"`
	CompletedAt    *time.Time            `json:"completed_at,omitempty"`
	Allocations    []EquipmentAllocation `json:"allocations,omitempty"`
	Notes          string                `json:"notes,omitempty"`
}

type WorkflowState struct {
	Status WorkflowStatus
	Meta   *WorkflowMeta
}

// Normalized сбрасывает метаданные для статусов, где они не имеют смысла.
func (s WorkflowState) Normalized() WorkflowState {
	if !s.Status.IsActive() {
		return WorkflowState{Status: s.Status}
	}
	return s
}

type Rider struct {
	ID           string
	Attributes   RiderAttributes
	Training     WorkflowState
	Installation WorkflowState
	Equipment    WorkflowState
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (r *Rider) Workflow(w WorkflowType) WorkflowState {
	switch w {
	case WorkflowTraining:
		return r.Training
	case WorkflowInstallation:
		return r.Installation
	case WorkflowEquipment:
		return r.Equipment
	default:
		return WorkflowState{Status: StatusNotEligible}
	}
}

func (r *Rider) SetWorkflow(w WorkflowType, state WorkflowState) {
	state = state.Normalized()
	switch w {
	case WorkflowTraining:
		r.Training = state
	case WorkflowInstallation:
		r.Installation = state
	case WorkflowEquipment:
		r.Equipment = state
	}
}

// IsActive - хотя бы один процесс запланирован или завершен.
func (r *Rider) IsActive() bool {
	return r.Training.Status.IsActive() ||
		r.Installation.Status.IsActive() ||
		r.Equipment.Status.IsActive()
}

// AllocatedQuantity - сколько единицы (item,size) выдано райдеру по метаданным выдачи.
func (r *Rider) AllocatedQuantity(itemID int64, size string) int {
	if r.Equipment.Meta == nil {
		return 0
	}
	total := 0
	for _, a := range r.Equipment.Meta.Allocations {
		if a.ItemID == itemID && NormalizeSize(a.Size) == NormalizeSize(size) {
			total += a.Quantity
		}
	}
	return total
}

// WorkflowChange - запись одного процесса райдера с проверкой предыдущего статуса.
type WorkflowChange struct {
	RiderID  string
	Workflow WorkflowType
	Expected WorkflowStatus
	State    WorkflowState
}

// EligibilityChange - решение внешнего прохода допуска по одному процессу райдера.
type EligibilityChange struct {
	RiderID  string       `json:"rider_id"`
	Workflow WorkflowType `json:"workflow"`
	Eligible bool         `json:"eligible"`
}
