package analytics_test

import (
	"testing"
	"time"
	"workation/internal/domains/inquiry/analytics"
	"workation/internal/domains/inquiry/model"

	"github.com/stretchr/testify/assert"
)

func record(id int64, ts string, fields ...func(*model.Inquiry)) model.Inquiry {
	inquiry := model.Inquiry{ID: id, Timestamp: ts, Status: model.StatusPending}
	for _, apply := range fields {
		apply(&inquiry)
	}

	return inquiry
}

func withName(name string) func(*model.Inquiry) {
	return func(i *model.Inquiry) { i.Name = name }
}

func withPackage(pkg string) func(*model.Inquiry) {
	return func(i *model.Inquiry) { i.Package = pkg }
}

func withPhone(phone string) func(*model.Inquiry) {
	return func(i *model.Inquiry) { i.Phone = phone }
}

func TestSortNewestFirst(t *testing.T) {
	records := []model.Inquiry{
		record(1, "2025-08-10T09:00:00Z"),
		record(2, "not-a-date"),
		record(3, "2025-08-28T09:00:00Z"),
		record(4, ""),
		record(5, "2025-08-20T09:00:00Z"),
	}

	sorted := analytics.SortNewestFirst(records)

	ids := make([]int64, len(sorted))
	for i, rec := range sorted {
		ids[i] = rec.ID
	}

	// Descending by timestamp, unparseable last in original relative order.
	assert.Equal(t, []int64{3, 5, 1, 2, 4}, ids)

	// Input slice is untouched.
	assert.Equal(t, int64(1), records[0].ID)
}

func TestSortNewestFirstStable(t *testing.T) {
	records := []model.Inquiry{
		record(1, "2025-08-20T09:00:00Z", withName("first")),
		record(2, "2025-08-20T09:00:00Z", withName("second")),
		record(3, "2025-08-20T09:00:00Z", withName("third")),
	}

	sorted := analytics.SortNewestFirst(records)

	assert.Equal(t, "first", sorted[0].Name)
	assert.Equal(t, "second", sorted[1].Name)
	assert.Equal(t, "third", sorted[2].Name)
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)

	records := []model.Inquiry{
		record(1, "2025-08-20T11:00:00Z", withPackage("nomad")),    // T-10d
		record(2, "2025-08-28T12:00:00Z", withPackage("starter")),  // T-2d
		record(3, "2025-08-30T11:00:00Z", withPackage("nomad")),    // T-1h
		record(4, "bad-timestamp", withPackage("paradise")),
		record(5, "2025-07-01T00:00:00Z"),
	}

	stats := analytics.ComputeStats(records, now)

	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 1, stats.Today)
	assert.Equal(t, 2, stats.Last7Days)
	assert.Equal(t, "nomad", stats.TopPackage)
}

func TestComputeStatsTotalAlwaysMatches(t *testing.T) {
	now := time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		records []model.Inquiry
	}{
		{name: "empty", records: nil},
		{name: "single unparseable", records: []model.Inquiry{record(1, "???")}},
		{
			name: "mixed",
			records: []model.Inquiry{
				record(1, "2025-08-30T01:00:00Z"),
				record(2, "2024-01-01T00:00:00Z"),
				record(3, ""),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := analytics.ComputeStats(tt.records, now)
			assert.Equal(t, len(tt.records), stats.Total)
			assert.LessOrEqual(t, stats.Today, stats.Total)
			assert.LessOrEqual(t, stats.Last7Days, stats.Total)
		})
	}
}

func TestComputeStatsTopPackageTieBreak(t *testing.T) {
	now := time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)

	records := []model.Inquiry{
		record(1, "2025-08-29T00:00:00Z", withPackage("paradise")),
		record(2, "2025-08-29T01:00:00Z", withPackage("starter")),
		record(3, "2025-08-29T02:00:00Z", withPackage("starter")),
		record(4, "2025-08-29T03:00:00Z", withPackage("paradise")),
	}

	// Equal counts: the package seen first in input order wins.
	assert.Equal(t, "paradise", analytics.ComputeStats(records, now).TopPackage)
}

func TestComputeStatsIgnoresEmptyPackages(t *testing.T) {
	now := time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)

	records := []model.Inquiry{
		record(1, "2025-08-29T00:00:00Z"),
		record(2, "2025-08-29T01:00:00Z"),
	}

	assert.Equal(t, "", analytics.ComputeStats(records, now).TopPackage)
}

func TestApplyFiltersSearch(t *testing.T) {
	now := time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)

	records := []model.Inquiry{
		record(1, "2025-08-29T00:00:00Z", withName("Kim Minsoo")),
		record(2, "2025-08-29T01:00:00Z", withName("Lee Jiwoo")),
		record(3, "2025-08-29T02:00:00Z", withPhone("010-5678-1234")),
	}

	tests := []struct {
		name     string
		search   string
		expected []int64
	}{
		{name: "case-insensitive name match", search: "KIM", expected: []int64{1}},
		{name: "substring match", search: "jiwoo", expected: []int64{2}},
		{name: "phone raw match", search: "5678", expected: []int64{3}},
		{name: "no match", search: "park", expected: []int64{}},
		{name: "empty search keeps all", search: "", expected: []int64{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := analytics.ApplyFilters(records, analytics.Criteria{Search: tt.search}, now)

			ids := make([]int64, 0, len(filtered))
			for _, rec := range filtered {
				ids = append(ids, rec.ID)
			}

			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestApplyFiltersPackageIsExact(t *testing.T) {
	now := time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)

	records := []model.Inquiry{
		record(1, "2025-08-29T00:00:00Z", withPackage("starter")),
		record(2, "2025-08-29T01:00:00Z", withPackage("Starter")),
		record(3, "2025-08-29T02:00:00Z", withPackage("starter-plus")),
	}

	filtered := analytics.ApplyFilters(records, analytics.Criteria{Package: "starter"}, now)

	assert.Len(t, filtered, 1)
	assert.Equal(t, int64(1), filtered[0].ID)
}

func TestApplyFiltersPeriod(t *testing.T) {
	now := time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)

	records := []model.Inquiry{
		record(1, "2025-08-20T11:00:00Z"), // T-10d
		record(2, "2025-08-28T12:00:00Z"), // T-2d
		record(3, "2025-08-30T11:00:00Z"), // T-1h
		record(4, "2025-07-31T00:00:00Z"), // previous month
		record(5, "not-a-date"),
		record(6, ""),
	}

	tests := []struct {
		name     string
		period   string
		expected []int64
	}{
		{name: "today", period: "today", expected: []int64{3}},
		{name: "rolling week", period: "week", expected: []int64{2, 3}},
		{name: "calendar month", period: "month", expected: []int64{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := analytics.ApplyFilters(records, analytics.Criteria{Period: tt.period}, now)

			ids := make([]int64, 0, len(filtered))
			for _, rec := range filtered {
				ids = append(ids, rec.ID)
			}

			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestApplyFiltersCompose(t *testing.T) {
	now := time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)

	records := []model.Inquiry{
		record(1, "2025-08-29T00:00:00Z", withName("Anna"), withPackage("starter")),
		record(2, "2025-08-29T01:00:00Z", withName("Anna"), withPackage("nomad")),
		record(3, "2025-08-10T00:00:00Z", withName("Anna"), withPackage("starter")),
		record(4, "2025-08-29T02:00:00Z", withName("Boram"), withPackage("starter")),
	}

	criteria := analytics.Criteria{Search: "a", Package: "starter", Period: "week"}
	combined := analytics.ApplyFilters(records, criteria, now)

	// AND-composition equals the intersection of the individual filters.
	bySearch := analytics.ApplyFilters(records, analytics.Criteria{Search: "a"}, now)
	byPackage := analytics.ApplyFilters(records, analytics.Criteria{Package: "starter"}, now)
	byPeriod := analytics.ApplyFilters(records, analytics.Criteria{Period: "week"}, now)

	inAll := func(id int64) bool {
		contains := func(set []model.Inquiry) bool {
			for _, rec := range set {
				if rec.ID == id {
					return true
				}
			}

			return false
		}

		return contains(bySearch) && contains(byPackage) && contains(byPeriod)
	}

	for _, rec := range records {
		matched := false
		for _, kept := range combined {
			if kept.ID == rec.ID {
				matched = true
			}
		}

		assert.Equal(t, inAll(rec.ID), matched, "record %d", rec.ID)
	}

	assert.Len(t, combined, 2)
	assert.Equal(t, int64(1), combined[0].ID)
	assert.Equal(t, int64(4), combined[1].ID)
}

func TestWeekScenarioSortedNewestFirst(t *testing.T) {
	now := time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)

	records := []model.Inquiry{
		record(1, "2025-08-20T12:00:00Z"), // T-10d
		record(2, "2025-08-28T12:00:00Z"), // T-2d
		record(3, "2025-08-30T11:00:00Z"), // T-1h
	}

	view := analytics.ApplyFilters(analytics.SortNewestFirst(records), analytics.Criteria{Period: "week"}, now)

	assert.Len(t, view, 2)
	assert.Equal(t, int64(3), view[0].ID)
	assert.Equal(t, int64(2), view[1].ID)
}
