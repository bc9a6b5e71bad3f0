package analytics

import "time"

// RangeForTimeframe returns the date range covered by an admin report
// timeframe tag (7d, 30d, 90d, 1y). Unknown tags default to 30 days.
func RangeForTimeframe(timeframe string) *DateRange {
	now := time.Now()
	var start time.Time

	switch timeframe {
	case "7d":
		start = now.AddDate(0, 0, -7)
	case "90d":
		start = now.AddDate(0, 0, -90)
	case "1y":
		start = now.AddDate(-1, 0, 0)
	default: // 30d
		start = now.AddDate(0, 0, -30)
	}

	return &DateRange{
		Start: start,
		End:   now,
		Field: "created_at",
	}
}

// StartOfDay returns midnight of the given time in its location
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the Monday of the given time's week
func StartOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday = 7
	}
	monday := t.AddDate(0, 0, -weekday+1)
	return StartOfDay(monday)
}

// StartOfMonth returns midnight of the first day of the given time's month
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// TodayRange returns the range covering the current day
func TodayRange(field string) *DateRange {
	now := time.Now()
	if field == "" {
		field = "created_at"
	}
	return &DateRange{
		Start: StartOfDay(now),
		End:   now,
		Field: field,
	}
}

// WeekRange returns the range covering the current week (Monday to now)
func WeekRange(field string) *DateRange {
	now := time.Now()
	if field == "" {
		field = "created_at"
	}
	return &DateRange{
		Start: StartOfWeek(now),
		End:   now,
		Field: field,
	}
}
