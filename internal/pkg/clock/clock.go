package clock

import (
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	// DefaultOffset - бизнес живет по UTC+3 независимо от часового пояса хоста.
	DefaultOffset = 3 * time.Hour
)

// Business возвращает время в фиксированном бизнес-смещении.
type Business struct {
	zone *time.Location
	now  func() time.Time
}

func New(offset time.Duration) *Business {
	return NewWithSource(offset, time.Now)
}

func NewWithSource(offset time.Duration, now func() time.Time) *Business {
	return &Business{
		zone: time.FixedZone(zoneName(offset), int(offset.Seconds())),
		now:  now,
	}
}

func (b *Business) Now() time.Time {
	return b.now().In(b.zone)
}

// Today - текущая бизнес-дата в формате YYYY-MM-DD.
func (b *Business) Today() string {
	return b.Now().Format(DateLayout)
}

func (b *Business) Location() *time.Location {
	return b.zone
}

// ParseDate разбирает YYYY-MM-DD как полночь бизнес-дня.
func (b *Business) ParseDate(date string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, date, b.zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", date, err)
	}
	return t, nil
}

func zoneName(offset time.Duration) string {
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	h := int(offset.Hours())
	m := int(offset.Minutes()) % 60
	if m == 0 {
		return fmt.Sprintf("UTC%s%d", sign, h)
	}
	return fmt.Sprintf("UTC%s%d:%02d", sign, h, m)
}
