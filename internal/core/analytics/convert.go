package analytics

import (
	"fmt"
	"strconv"
	"time"
)

// Result rows come back from GORM as map[string]interface{} with
// driver-dependent numeric types; these helpers coerce them.

// ToFloat64 coerces an aggregate result value to float64
func ToFloat64(value interface{}) float64 {
	if value == nil {
		return 0
	}

	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		// NUMERIC aggregates scan as strings
		f, _ := strconv.ParseFloat(v, 64)
		return f
	case []byte:
		f, _ := strconv.ParseFloat(string(v), 64)
		return f
	default:
		return 0
	}
}

// ToInt coerces an aggregate result value to int
func ToInt(value interface{}) int {
	return int(ToFloat64(value))
}

// ToString coerces a group-by result value to its label string
func ToString(value interface{}) string {
	if value == nil {
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case time.Time:
		return v.Format("2006-01-02")
	case int, int32, int64:
		return fmt.Sprintf("%d", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
