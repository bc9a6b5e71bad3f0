package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeForTimeframe(t *testing.T) {
	cases := map[string]int{
		"7d":      7,
		"30d":     30,
		"90d":     90,
		"unknown": 30,
	}
	for timeframe, days := range cases {
		r := RangeForTimeframe(timeframe)
		require.NotNil(t, r, timeframe)
		got := r.End.Sub(r.Start)
		// AddDate over DST boundaries can shift by an hour either way
		assert.InDelta(t, float64(days*24), got.Hours(), 25, timeframe)
		assert.Equal(t, "created_at", r.Field)
	}

	year := RangeForTimeframe("1y")
	assert.True(t, year.End.Sub(year.Start).Hours() > 360*24)
}

func TestStartOfWeekIsMonday(t *testing.T) {
	// 2026-08-23 is a Sunday
	sunday := time.Date(2026, 8, 23, 15, 30, 0, 0, time.UTC)
	monday := StartOfWeek(sunday)

	assert.Equal(t, time.Monday, monday.Weekday())
	assert.Equal(t, 17, monday.Day())
	assert.Equal(t, 0, monday.Hour())
}

func TestStartOfDay(t *testing.T) {
	ts := time.Date(2026, 8, 28, 23, 59, 59, 0, time.UTC)
	start := StartOfDay(ts)
	assert.Equal(t, time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), start)
}

func TestToFloat64Coercions(t *testing.T) {
	assert.Equal(t, 3.5, ToFloat64(3.5))
	assert.Equal(t, 7.0, ToFloat64(int64(7)))
	assert.Equal(t, 0.0, ToFloat64(nil))
	assert.Equal(t, 0.0, ToFloat64("not a number"))
}

func TestToStringCoercions(t *testing.T) {
	assert.Equal(t, "prophet", ToString("prophet"))
	assert.Equal(t, "2026-08-28", ToString(time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "", ToString(nil))
	assert.Equal(t, "42", ToString(int64(42)))
}
