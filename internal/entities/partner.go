package entities

import (
	"fmt"
	"time"
)

type PartnerStatus string

const (
	PartnerOpen   PartnerStatus = "Open"
	PartnerClosed PartnerStatus = "Closed"
)

func (s PartnerStatus) String() string {
	return string(s)
}

const (
	DefaultCarTarget   = 50
	DefaultBikeTarget  = 50
	DefaultTotalTarget = 100
)

type Partner struct {
	ID          int64
	Name        string
	Status      PartnerStatus
	CarTarget   *int
	BikeTarget  *int
	TotalTarget *int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p *Partner) IsOpen() bool {
	return p.Status == PartnerOpen
}

func (p *Partner) Targets() CapacityTargets {
	return CapacityTargets{
		Car:        valueOr(p.CarTarget, DefaultCarTarget),
		Motorcycle: valueOr(p.BikeTarget, DefaultBikeTarget),
		Total:      valueOr(p.TotalTarget, DefaultTotalTarget),
	}
}

type CapacityCounts struct {
	Car        int `json:"car"`
	Motorcycle int `json:"motorcycle"`
	Total      int `json:"total"`
}

type CapacityTargets struct {
	Car        int `json:"car"`
	Motorcycle int `json:"motorcycle"`
	Total      int `json:"total"`
}

type CapacityCheck struct {
	PartnerID  int64
	Allowed    bool
	Reason     string
	Additional map[DeliveryType]int
	Current    CapacityCounts
	Targets    CapacityTargets
}

func valueOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

// PartnerLockKey - ключ advisory lock'а на квоты партнера.
func PartnerLockKey(id int64) string {
	return fmt.Sprintf("partner:%d", id)
}
