// Package analytics derives summary statistics and filtered views over an
// inquiry collection. Every function is pure: deterministic for the same
// input order and the same injected reference time, with no side effects.
package analytics

import (
	"sort"
	"strings"
	"time"
	"workation/internal/domains/inquiry/model"
	"workation/shared/constant"
)

// Criteria narrows a collection view. Zero-valued fields impose no
// constraint; set fields compose with logical AND.
type Criteria struct {
	Search  string `json:"search"`
	Package string `json:"package"`
	Period  string `json:"period" validate:"omitempty,oneof=today week month"`
}

// Stats is the dashboard summary over one collection snapshot.
type Stats struct {
	Total      int    `json:"total"`
	Today      int    `json:"today"`
	Last7Days  int    `json:"last_7_days"`
	TopPackage string `json:"top_package"`
}

// SortNewestFirst returns a new slice ordered by descending parsed timestamp.
// The sort is stable; records with unparseable timestamps order as if their
// timestamp were the minimum possible value, i.e. after all parseable ones.
func SortNewestFirst(records []model.Inquiry) []model.Inquiry {
	sorted := make([]model.Inquiry, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		left, leftOK := model.ParseTimestamp(sorted[i].Timestamp)
		right, rightOK := model.ParseTimestamp(sorted[j].Timestamp)

		if leftOK != rightOK {
			return leftOK
		}

		return left.After(right)
	})

	return sorted
}

// ComputeStats aggregates the collection against the given reference time.
// Today is a calendar-day prefix match, Last7Days a rolling inclusive window.
// TopPackage is the most frequent non-empty package value; among equal counts
// the value encountered first in input order wins.
func ComputeStats(records []model.Inquiry, now time.Time) Stats {
	stats := Stats{Total: len(records)}

	dayPrefix := now.Format("2006-01-02")
	weekAgo := now.AddDate(0, 0, -7)

	counts := map[string]int{}
	order := []string{}

	for _, record := range records {
		if strings.HasPrefix(record.Timestamp, dayPrefix) {
			stats.Today++
		}

		if ts, ok := model.ParseTimestamp(record.Timestamp); ok && !ts.Before(weekAgo) {
			stats.Last7Days++
		}

		if record.Package != "" {
			if _, seen := counts[record.Package]; !seen {
				order = append(order, record.Package)
			}

			counts[record.Package]++
		}
	}

	best := 0
	for _, pkg := range order {
		if counts[pkg] > best {
			best = counts[pkg]
			stats.TopPackage = pkg
		}
	}

	return stats
}

// ApplyFilters keeps the records matching every set criterion, preserving
// input order. It never re-sorts; callers compose with SortNewestFirst.
func ApplyFilters(records []model.Inquiry, criteria Criteria, now time.Time) []model.Inquiry {
	filtered := make([]model.Inquiry, 0, len(records))

	search := strings.ToLower(criteria.Search)

	for _, record := range records {
		if criteria.Search != "" && !matchesSearch(record, search, criteria.Search) {
			continue
		}

		if criteria.Package != "" && record.Package != criteria.Package {
			continue
		}

		if criteria.Period != "" && !matchesPeriod(record, criteria.Period, now) {
			continue
		}

		filtered = append(filtered, record)
	}

	return filtered
}

// matchesSearch unions a case-insensitive substring match over name, company
// and email with a case-sensitive substring match over phone.
func matchesSearch(record model.Inquiry, lowered, raw string) bool {
	return strings.Contains(strings.ToLower(record.Name), lowered) ||
		strings.Contains(strings.ToLower(record.Company), lowered) ||
		strings.Contains(strings.ToLower(record.Email), lowered) ||
		strings.Contains(record.Phone, raw)
}

// matchesPeriod applies the calendar-day / rolling-week / calendar-month
// window. Records with unparseable or empty timestamps never match a period.
func matchesPeriod(record model.Inquiry, period string, now time.Time) bool {
	ts, ok := model.ParseTimestamp(record.Timestamp)
	if !ok {
		return false
	}

	local := ts.In(now.Location())

	switch period {
	case constant.PeriodToday:
		year, month, day := local.Date()
		nowYear, nowMonth, nowDay := now.Date()

		return year == nowYear && month == nowMonth && day == nowDay
	case constant.PeriodWeek:
		return !ts.Before(now.AddDate(0, 0, -7))
	case constant.PeriodMonth:
		return local.Month() == now.Month() && local.Year() == now.Year()
	default:
		return true
	}
}
