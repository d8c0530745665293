// Package report aggregates scrape and citation results into tables and
// renders them to the console.
package report

import (
	"slices"
	"sort"

	"faculty-analyze-go/internal/model"
	"faculty-analyze-go/internal/service"
)

// ProfileRows collects the successful rows out of a batch of results,
// preserving input order.
func ProfileRows(results []service.ProfileResult) []model.ProfileRow {
	rows := make([]model.ProfileRow, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		rows = append(rows, r.Row)
	}
	return rows
}

// SortByInterestCount returns a copy ordered ascending by captured interest
// items. Ties keep their original order; the input is left untouched.
func SortByInterestCount(rows []model.ProfileRow) []model.ProfileRow {
	sorted := slices.Clone(rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].InterestCount < sorted[j].InterestCount
	})
	return sorted
}

// BuildCitationTable reshapes per-year citation mappings into one long-form
// table: rows sorted ascending by year within each subject, subjects
// concatenated in input order. Failed subjects contribute no rows.
func BuildCitationTable(results []service.AuthorResult) []model.CitationRecord {
	var records []model.CitationRecord
	for _, r := range results {
		if r.Err != nil || r.Author == nil {
			continue
		}
		years := make([]int, 0, len(r.Author.CitesPerYear))
		for year := range r.Author.CitesPerYear {
			years = append(years, year)
		}
		sort.Ints(years)
		for _, year := range years {
			records = append(records, model.CitationRecord{
				Name:  r.Subject.Name,
				Year:  year,
				Cites: r.Author.CitesPerYear[year],
			})
		}
	}
	return records
}

// MedianCites computes the per-subject median of yearly citation counts,
// grouped in first-appearance order. Missing years are not interpolated.
func MedianCites(records []model.CitationRecord) []model.MedianRow {
	var order []string
	grouped := map[string][]int{}
	for _, rec := range records {
		if _, seen := grouped[rec.Name]; !seen {
			order = append(order, rec.Name)
		}
		grouped[rec.Name] = append(grouped[rec.Name], rec.Cites)
	}

	rows := make([]model.MedianRow, 0, len(order))
	for _, name := range order {
		rows = append(rows, model.MedianRow{Name: name, MedianCites: median(grouped[name])})
	}
	return rows
}

func median(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := slices.Clone(values)
	sort.Ints(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return float64(sorted[mid])
	}
	return float64(sorted[mid-1]+sorted[mid]) / 2
}
