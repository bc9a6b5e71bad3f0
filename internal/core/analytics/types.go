package analytics

import "time"

// AggregateQuery represents a generic database aggregation query
type AggregateQuery struct {
	Table      string                 // Table or JOIN clause
	GroupBy    []string               // GROUP BY columns
	Aggregates map[string]string      // Aggregate functions: {"total": "SUM(amount)", "count": "COUNT(*)"}
	Filters    map[string]interface{} // WHERE conditions
	DateRange  *DateRange             // Date range filter
	OrderBy    []string               // ORDER BY clauses
	Limit      int                    // LIMIT (0 = no limit)
}

// DateRange represents a time period for filtering
type DateRange struct {
	Start time.Time
	End   time.Time
	Field string // Date field to filter on (e.g., "created_at")
}
