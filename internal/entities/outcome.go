package entities

type RiderFailure struct {
	RiderID string `json:"rider_id"`
	Reason  string `json:"reason"`
}

// BlockedGroup - часть батча, отклоненная гейтом целиком.
type BlockedGroup struct {
	PartnerID *int64   `json:"partner_id,omitempty"`
	RiderIDs  []string `json:"rider_ids"`
	Reason    string   `json:"reason"`
}

type BulkOutcome struct {
	Workflow     WorkflowType
	SuccessCount int
	BlockedCount int
	Succeeded    []string
	Blocked      []BlockedGroup
	Failures     []RiderFailure
	Plan         *SlotPlan
	Distribution *DistributionBatch
}

func (o *BulkOutcome) HasFailures() bool {
	return len(o.Failures) > 0
}

// BulkSchedule - запрос на перевод батча райдеров в Scheduled.
type BulkSchedule struct {
	Workflow  WorkflowType
	RiderIDs  []string
	Date      string
	TimeStart string
	TimeEnd   string
	Location  string
	Actor     string
	Notes     string

	// Только для установки: вендор и, опционально, ручная раскладка по слотам.
	VendorID   *int64
	SlotCounts []int

	// Только для выдачи: предварительная проверка остатков.
	Selections []EquipmentSelection
}

// BulkCompletion - запрос на перевод батча райдеров в Completed.
type BulkCompletion struct {
	Workflow   WorkflowType
	RiderIDs   []string
	Date       string
	Time       string
	Actor      string
	Notes      string
	Selections []EquipmentSelection
}
