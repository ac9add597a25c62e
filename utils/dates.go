// utils/dates.go
package utils

import "time"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// DaysUntil rounds up: a batch expiring later today still counts as one day.
func DaysUntil(now, target time.Time) int {
	diff := target.Sub(now)
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days
}

// WithinNextMonths reports whether target falls in [now, now+months].
func WithinNextMonths(now, target time.Time, months int) bool {
	limit := now.AddDate(0, months, 0)
	return !target.Before(now) && !target.After(limit)
}

// PeriodKey buckets a date for reporting: "2006-01-02" for day granularity,
// "2006-01" for month.
func PeriodKey(t time.Time, granularity string) string {
	if granularity == "day" {
		return t.UTC().Format("2006-01-02")
	}
	return t.UTC().Format("2006-01")
}
