package rider

import "time"

type RiderDB struct {
	ID                 string
	Name               string
	Phone              string
	Nationality        string
	DeliveryType       string
	PartnerID          *int64
	CompanyName        string
	JobStatus          string
	Extra              []byte
	TrainingStatus     string
	TrainingMeta       []byte
	InstallationStatus string
	InstallationMeta   []byte
	EquipmentStatus    string
	EquipmentMeta      []byte
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

var columns = []string{
	"id",
	"name",
	"phone",
	"nationality",
	"delivery_type",
	"partner_id",
	"company_name",
	"job_status",
	"extra",
	"training_status",
	"training_meta",
	"installation_status",
	"installation_meta",
	"equipment_status",
	"equipment_meta",
	"created_at",
	"updated_at",
}

func (r *RiderDB) scanTargets() []any {
	return []any{
		&r.ID,
		&r.Name,
		&r.Phone,
		&r.Nationality,
		&r.DeliveryType,
		&r.PartnerID,
		&r.CompanyName,
		&r.JobStatus,
		&r.Extra,
		&r.TrainingStatus,
		&r.TrainingMeta,
		&r.InstallationStatus,
		&r.InstallationMeta,
		&r.EquipmentStatus,
		&r.EquipmentMeta,
		&r.CreatedAt,
		&r.UpdatedAt,
	}
}
