package slots

import (
	"strconv"
	"strings"
	"time"
)

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sun":       time.Sunday,
	"mon":       time.Monday,
	"tue":       time.Tuesday,
	"tues":      time.Tuesday,
	"wed":       time.Wednesday,
	"thu":       time.Thursday,
	"thur":      time.Thursday,
	"thurs":     time.Thursday,
	"fri":       time.Friday,
	"sat":       time.Saturday,
}

// WeekdaySet - битовая маска дней недели, бит i соответствует time.Weekday(i).
type WeekdaySet uint8

const allDays WeekdaySet = 1<<7 - 1

func (s WeekdaySet) Has(d time.Weekday) bool {
	return s&(1<<uint(d)) != 0
}

func (s WeekdaySet) with(d time.Weekday) WeekdaySet {
	return s | 1<<uint(d)
}

// Days возвращает дни по порядку начиная с воскресенья.
func (s WeekdaySet) Days() []time.Weekday {
	days := make([]time.Weekday, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Has(d) {
			days = append(days, d)
		}
	}
	return days
}

// ParseServiceableDays разбирает свободный текст из карточки вендора.
// Пустой результат означает "каждый день": вендор без расписания не должен
// внезапно стать недоступным.
func ParseServiceableDays(raw string) WeekdaySet {
	var set WeekdaySet

	tokens := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == '|'
	})
	for _, token := range tokens {
		set |= parseDayToken(strings.ToLower(strings.TrimSpace(token)))
	}

	if set == 0 {
		return allDays
	}
	return set
}

func parseDayToken(token string) WeekdaySet {
	switch token {
	case "":
		return 0
	case "weekdays", "weekday", "workdays":
		return weekdayRange(time.Monday, time.Friday)
	case "weekends", "weekend":
		return WeekdaySet(0).with(time.Saturday).with(time.Sunday)
	case "all days", "all", "daily", "everyday", "every day":
		return allDays
	}

	if from, to, ok := strings.Cut(token, "-"); ok {
		start, okStart := parseDay(strings.TrimSpace(from))
		end, okEnd := parseDay(strings.TrimSpace(to))
		if !okStart || !okEnd {
			return 0
		}
		return weekdayRange(start, end)
	}

	if d, ok := parseDay(token); ok {
		return WeekdaySet(0).with(d)
	}
	return 0
}

func parseDay(token string) (time.Weekday, bool) {
	if d, ok := weekdayNames[token]; ok {
		return d, true
	}
	if n, err := strconv.Atoi(token); err == nil && n >= 0 && n <= 6 {
		return time.Weekday(n), true
	}
	return 0, false
}

// weekdayRange включает оба конца; Fri-Mon переходит через воскресенье.
func weekdayRange(from, to time.Weekday) WeekdaySet {
	var set WeekdaySet
	for d := from; ; d = (d + 1) % 7 {
		set = set.with(d)
		if d == to {
			break
		}
	}
	return set
}
