package slots

import (
	"context"
	"fmt"
	"math"
	"time"

	"onboarding/internal/entities"
	"onboarding/internal/pkg/clock"
)

const slotStep = 60

type Allocator struct {
	vendors  VendorRepository
	bookings BookingRepository
}

func New(vendors VendorRepository, bookings BookingRepository) *Allocator {
	return &Allocator{
		vendors:  vendors,
		bookings: bookings,
	}
}

// GenerateSlots строит сетку вендора на дату с учетом уже записанных райдеров.
func (a *Allocator) GenerateSlots(ctx context.Context, vendorID int64, date string) ([]entities.Slot, error) {
	_, slots, err := a.load(ctx, vendorID, date)
	return slots, err
}

// Suggest - жадное распределение n райдеров без отказа при нехватке мест:
// нехватка видна в Shortfall, дневной лимит в DailyMax.
func (a *Allocator) Suggest(ctx context.Context, vendorID int64, date string, n int) (*entities.SlotPlan, error) {
	if n <= 0 {
		return nil, ErrInvalidRiderCount
	}

	vendor, slots, err := a.load(ctx, vendorID, date)
	if err != nil {
		return nil, err
	}

	counts, shortfall := Allocate(slots, n)
	return newPlan(vendor, date, slots, counts, shortfall), nil
}

// Reserve - распределение для коммита. manual == nil означает жадное распределение,
// иначе ручная раскладка проверяется как есть. Ошибка, если хоть один райдер
// остается без слота или превышен дневной лимит.
func (a *Allocator) Reserve(ctx context.Context, vendorID int64, date string, n int, manual []int) (*entities.SlotPlan, error) {
	if n <= 0 {
		return nil, ErrInvalidRiderCount
	}

	vendor, slots, err := a.load(ctx, vendorID, date)
	if err != nil {
		return nil, err
	}

	if err = CheckDailyCapacity(vendor, n); err != nil {
		return nil, err
	}

	counts := manual
	if counts == nil {
		counts, _ = Allocate(slots, n)
	}
	if err = ValidateAllocation(slots, counts, n); err != nil {
		return nil, err
	}

	return newPlan(vendor, date, slots, counts, 0), nil
}

func (a *Allocator) load(ctx context.Context, vendorID int64, date string) (*entities.Vendor, []entities.Slot, error) {
	if vendorID <= 0 {
		return nil, nil, ErrInvalidVendorID
	}
	day, err := time.Parse(clock.DateLayout, date)
	if err != nil {
		return nil, nil, ErrInvalidDate
	}

	vendor, err := a.vendors.GetByID(ctx, vendorID)
	if err != nil {
		return nil, nil, fmt.Errorf("get vendor %d: %w", vendorID, err)
	}

	booked, err := a.bookings.CountInstallationBookings(ctx, vendorID, date)
	if err != nil {
		return nil, nil, fmt.Errorf("count bookings for vendor %d on %s: %w", vendorID, date, err)
	}

	slots, err := BuildGrid(vendor, day.Weekday(), booked)
	if err != nil {
		return nil, nil, fmt.Errorf("vendor %d: %w", vendorID, err)
	}
	return vendor, slots, nil
}

// BuildGrid режет рабочий день на часовые слоты. Последний слот может быть короче
// и заканчивается ровно в end_time. Слоты, целиком попадающие в перерыв, пропускаются.
func BuildGrid(vendor *entities.Vendor, weekday time.Weekday, booked map[string]int) ([]entities.Slot, error) {
	start, okStart := parseClock(vendor.StartTime)
	end, okEnd := parseClock(vendor.EndTime)
	if !okStart || !okEnd || start >= end {
		return nil, ErrInvalidVendorHours
	}

	breakStart, breakEnd, hasBreak := breakWindow(vendor)

	capacity := 0
	if ParseServiceableDays(vendor.ServiceableDays).Has(weekday) && vendor.BoxesPerHour > 0 {
		capacity = vendor.BoxesPerHour
	}

	var slots []entities.Slot
	for from := start; from < end; from += slotStep {
		to := min(from+slotStep, end)
		if hasBreak && from >= breakStart && to <= breakEnd {
			continue
		}

		slot := entities.Slot{
			Start:    formatClock(from),
			End:      formatClock(to),
			Capacity: capacity,
			Booked:   booked[formatClock(from)],
		}
		slot.Available = max(0, slot.Capacity-slot.Booked)
		slots = append(slots, slot)
	}
	return slots, nil
}

// Allocate раскладывает n райдеров по слотам в хронологическом порядке.
func Allocate(slots []entities.Slot, n int) ([]int, int) {
	counts := make([]int, len(slots))
	remaining := n
	for i, s := range slots {
		if remaining <= 0 {
			break
		}
		take := min(s.Available, remaining)
		counts[i] = take
		remaining -= take
	}
	return counts, max(0, remaining)
}

// Override выставляет ручное значение слота, зажимая его в
// [0, min(available, n - сумма остальных)].
func Override(slots []entities.Slot, counts []int, index, value, n int) ([]int, error) {
	if len(counts) != len(slots) || index < 0 || index >= len(slots) {
		return nil, ErrSlotCountMismatch
	}

	others := 0
	for i, c := range counts {
		if i != index {
			others += c
		}
	}

	upper := max(0, min(slots[index].Available, n-others))
	out := make([]int, len(counts))
	copy(out, counts)
	out[index] = max(0, min(value, upper))
	return out, nil
}

// Shrink снимает excess мест с ручной раскладки, начиная с последнего слота.
func Shrink(counts []int, excess int) []int {
	out := make([]int, len(counts))
	copy(out, counts)
	for i := len(out) - 1; i >= 0 && excess > 0; i-- {
		cut := min(max(out[i], 0), excess)
		out[i] -= cut
		excess -= cut
	}
	return out
}

func ValidateAllocation(slots []entities.Slot, counts []int, n int) error {
	if len(counts) != len(slots) {
		return ErrSlotCountMismatch
	}

	total := 0
	for i, c := range counts {
		if c < 0 {
			return ErrNegativeSlotCount
		}
		if c > slots[i].Available {
			return fmt.Errorf("%w: slot %s-%s has %d available, requested %d",
				ErrSlotOverbooked, slots[i].Start, slots[i].End, slots[i].Available, c)
		}
		total += c
	}

	switch {
	case total > n:
		return fmt.Errorf("%w: %d/%d", ErrAllocationExceedsN, total, n)
	case total < n:
		return fmt.Errorf("%w: %d of %d assigned", ErrAllocationIncomplete, total, n)
	}
	return nil
}

// CheckDailyCapacity: max_boxes_per_day <= 0 означает отсутствие дневного лимита.
func CheckDailyCapacity(vendor *entities.Vendor, n int) error {
	if vendor.MaxBoxesPerDay <= 0 || n <= vendor.MaxBoxesPerDay {
		return nil
	}
	return &DailyCapacityError{
		VendorID:      vendor.ID,
		Requested:     n,
		DailyMax:      vendor.MaxBoxesPerDay,
		Deficit:       n - vendor.MaxBoxesPerDay,
		SuggestedDays: int(math.Ceil(float64(n) / float64(vendor.MaxBoxesPerDay))),
	}
}

func newPlan(vendor *entities.Vendor, date string, slots []entities.Slot, counts []int, shortfall int) *entities.SlotPlan {
	assigned := 0
	for _, c := range counts {
		assigned += c
	}
	return &entities.SlotPlan{
		VendorID:  vendor.ID,
		Date:      date,
		Location:  vendor.Location,
		DailyMax:  vendor.MaxBoxesPerDay,
		Slots:     slots,
		Counts:    counts,
		Assigned:  assigned,
		Shortfall: shortfall,
	}
}

func breakWindow(vendor *entities.Vendor) (int, int, bool) {
	if vendor.BreakStart == nil || vendor.BreakEnd == nil {
		return 0, 0, false
	}
	from, okFrom := parseClock(*vendor.BreakStart)
	to, okTo := parseClock(*vendor.BreakEnd)
	if !okFrom || !okTo || from >= to {
		return 0, 0, false
	}
	return from, to, true
}

// parseClock переводит HH:MM (допускается HH:MM:SS из базы) в минуты от полуночи.
func parseClock(s string) (int, bool) {
	if len(s) > len(clock.TimeLayout) {
		s = s[:len(clock.TimeLayout)]
	}
	t, err := time.Parse(clock.TimeLayout, s)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
