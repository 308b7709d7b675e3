package rider

import (
	"encoding/json"
	"fmt"

	"onboarding/internal/entities"
)

func ToDomain(r *RiderDB) (*entities.Rider, error) {
	if r == nil {
		return nil, nil
	}

	rider := &entities.Rider{
		ID: r.ID,
		Attributes: entities.RiderAttributes{
			Name:         r.Name,
			Phone:        r.Phone,
			Nationality:  r.Nationality,
			DeliveryType: entities.ParseDeliveryType(r.DeliveryType),
			PartnerID:    r.PartnerID,
			CompanyName:  r.CompanyName,
			JobStatus:    r.JobStatus,
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}

	if len(r.Extra) > 0 {
		if err := json.Unmarshal(r.Extra, &rider.Attributes.Extra); err != nil {
			return nil, fmt.Errorf("decode rider %s extra: %w", r.ID, err)
		}
	}

	states := []struct {
		workflow entities.WorkflowType
		status   string
		meta     []byte
	}{
		{entities.WorkflowTraining, r.TrainingStatus, r.TrainingMeta},
		{entities.WorkflowInstallation, r.InstallationStatus, r.InstallationMeta},
		{entities.WorkflowEquipment, r.EquipmentStatus, r.EquipmentMeta},
	}
	for _, s := range states {
		state := entities.WorkflowState{Status: entities.WorkflowStatus(s.status)}
		if len(s.meta) > 0 {
			state.Meta = &entities.WorkflowMeta{}
			if err := json.Unmarshal(s.meta, state.Meta); err != nil {
				return nil, fmt.Errorf("decode rider %s %s meta: %w", r.ID, s.workflow, err)
			}
		}
		rider.SetWorkflow(s.workflow, state)
	}

	return rider, nil
}

func ToDomainList(ridersDB []RiderDB) ([]entities.Rider, error) {
	result := make([]entities.Rider, 0, len(ridersDB))
	for i := range ridersDB {
		rider, err := ToDomain(&ridersDB[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *rider)
	}
	return result, nil
}

// FromDomainMeta кодирует метаданные для JSONB колонки. nil - NULL.
func FromDomainMeta(state entities.WorkflowState) ([]byte, error) {
	state = state.Normalized()
	if state.Meta == nil {
		return nil, nil
	}
	return json.Marshal(state.Meta)
}

// workflowColumns - колонки статуса и метаданных процесса. Имена колонок
// подставляются в SQL, поэтому берутся только из этого списка.
func workflowColumns(w entities.WorkflowType) (status, meta string, err error) {
	switch w {
	case entities.WorkflowTraining:
		return "training_status", "training_meta", nil
	case entities.WorkflowInstallation:
		return "installation_status", "installation_meta", nil
	case entities.WorkflowEquipment:
		return "equipment_status", "equipment_meta", nil
	default:
		return "", "", fmt.Errorf("%w: unknown workflow %q", entities.ErrValidation, w)
	}
}
