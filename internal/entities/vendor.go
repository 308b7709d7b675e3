package entities

import "fmt"

type Vendor struct {
	ID              int64
	Name            string
	Location        string
	BoxesPerHour    int
	MaxBoxesPerDay  int
	StartTime       string
	EndTime         string
	BreakStart      *string
	BreakEnd        *string
	ServiceableDays string
	Timezone        string
}

type Slot struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Capacity  int    `json:"capacity"`
	Booked    int    `json:"booked"`
	Available int    `json:"available"`
}

// SlotPlan - сетка слотов вендора на день и распределение батча по ней.
type SlotPlan struct {
	VendorID  int64
	Date      string
	Location  string
	DailyMax  int
	Slots     []Slot
	Counts    []int
	Assigned  int
	Shortfall int
}

// Expand раскладывает Counts в слот для каждой позиции батча по порядку.
func (p *SlotPlan) Expand() []Slot {
	out := make([]Slot, 0, p.Assigned)
	for i, n := range p.Counts {
		for j := 0; j < n; j++ {
			out = append(out, p.Slots[i])
		}
	}
	return out
}

// VendorNotification уходит вендору после коммита расписания установки.
type VendorNotification struct {
	VendorID  int64  `json:"vendor_id"`
	RiderID   string `json:"rider_id"`
	RiderName string `json:"rider_name"`
	Phone     string `json:"phone"`
	Date      string `json:"date"`
	TimeStart string `json:"time_start"`
	TimeEnd   string `json:"time_end"`
	Location  string `json:"location"`
}

// VendorDayLockKey сериализует запись на слоты одного вендора в один день.
func VendorDayLockKey(vendorID int64, date string) string {
	return fmt.Sprintf("vendor:%d:%s", vendorID, date)
}
