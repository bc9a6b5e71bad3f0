package analytics

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Aggregator provides generic database aggregation helpers
type Aggregator struct {
	db *gorm.DB
}

// NewAggregator creates a new aggregator
func NewAggregator(db *gorm.DB) *Aggregator {
	return &Aggregator{db: db}
}

// Aggregate performs a generic aggregation query
func (a *Aggregator) Aggregate(query AggregateQuery) ([]map[string]interface{}, error) {
	selectParts := []string{}
	selectParts = append(selectParts, query.GroupBy...)
	for alias, agg := range query.Aggregates {
		selectParts = append(selectParts, fmt.Sprintf("%s AS %s", agg, alias))
	}

	db := a.db.Table(query.Table).Select(strings.Join(selectParts, ", "))

	db = applyFilters(db, query.Filters)

	if query.DateRange != nil {
		db = db.Where(fmt.Sprintf("%s BETWEEN ? AND ?", query.DateRange.Field),
			query.DateRange.Start, query.DateRange.End)
	}

	if len(query.GroupBy) > 0 {
		groups := make([]string, len(query.GroupBy))
		for i, g := range query.GroupBy {
			groups[i] = groupExpr(g)
		}
		db = db.Group(strings.Join(groups, ", "))
	}

	for _, order := range query.OrderBy {
		db = db.Order(order)
	}

	if query.Limit > 0 {
		db = db.Limit(query.Limit)
	}

	var results []map[string]interface{}
	if err := db.Find(&results).Error; err != nil {
		return nil, fmt.Errorf("aggregate query failed: %w", err)
	}

	return results, nil
}

// groupExpr strips a column alias so a select expression like
// "DATE(created_at) AS activity_date" can be reused in GROUP BY
func groupExpr(sel string) string {
	if i := strings.Index(strings.ToUpper(sel), " AS "); i >= 0 {
		return sel[:i]
	}
	return sel
}

// applyFilters adds WHERE conditions. A condition containing "?" is treated
// as parameterized, a condition with a nil value as a raw predicate
// (e.g. "rating IS NOT NULL"), anything else as simple equality.
func applyFilters(db *gorm.DB, filters map[string]interface{}) *gorm.DB {
	for condition, value := range filters {
		switch {
		case strings.Contains(condition, "?"):
			db = db.Where(condition, value)
		case value == nil:
			db = db.Where(condition)
		default:
			db = db.Where(fmt.Sprintf("%s = ?", condition), value)
		}
	}
	return db
}

// Count performs a simple COUNT query with filters and an optional date range
func (a *Aggregator) Count(table string, filters map[string]interface{}, dateRange *DateRange) (int64, error) {
	db := applyFilters(a.db.Table(table), filters)

	if dateRange != nil {
		db = db.Where(fmt.Sprintf("%s BETWEEN ? AND ?", dateRange.Field),
			dateRange.Start, dateRange.End)
	}

	var count int64
	if err := db.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count query failed: %w", err)
	}

	return count, nil
}

// Average performs a simple AVG query
func (a *Aggregator) Average(table, column string, filters map[string]interface{}, dateRange *DateRange) (float64, error) {
	query := AggregateQuery{
		Table:      table,
		Aggregates: map[string]string{"avg": fmt.Sprintf("AVG(%s)", column)},
		Filters:    filters,
		DateRange:  dateRange,
	}

	results, err := a.Aggregate(query)
	if err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}

	return ToFloat64(results[0]["avg"]), nil
}

// Distribution performs a COUNT grouped by one column and returns the counts
// keyed by that column's value. NULL and empty group values are skipped.
func (a *Aggregator) Distribution(table, column string, filters map[string]interface{}, dateRange *DateRange) (map[string]int, error) {
	results, err := a.Aggregate(AggregateQuery{
		Table:      table,
		GroupBy:    []string{column},
		Aggregates: map[string]string{"cnt": "COUNT(*)"},
		Filters:    filters,
		DateRange:  dateRange,
	})
	if err != nil {
		return nil, err
	}

	dist := make(map[string]int, len(results))
	for _, row := range results {
		key := ToString(row[column])
		if key == "" {
			continue
		}
		dist[key] = ToInt(row["cnt"])
	}

	return dist, nil
}
