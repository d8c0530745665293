package report

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"faculty-analyze-go/internal/model"

	"github.com/guptarohit/asciigraph"
	"github.com/mattn/go-runewidth"
)

const maxBarWidth = 40

// BarChart renders one horizontal bar per subject, ascending by interest
// count, with labels padded to a common width.
func BarChart(out io.Writer, rows []model.ProfileRow) {
	sorted := SortByInterestCount(rows)

	labelWidth := 0
	maxCount := 0
	for _, r := range sorted {
		if w := runewidth.StringWidth(r.Name); w > labelWidth {
			labelWidth = w
		}
		if r.InterestCount > maxCount {
			maxCount = r.InterestCount
		}
	}

	fmt.Fprintln(out, "Interest items captured per faculty member")
	for _, r := range sorted {
		width := 0
		if maxCount > 0 {
			width = r.InterestCount * maxBarWidth / maxCount
		}
		fmt.Fprintf(out, "%s │%s %d\n",
			runewidth.FillRight(r.Name, labelWidth),
			strings.Repeat("█", width),
			r.InterestCount)
	}
}

// LineChart plots citations per year as one series per subject over the
// union of observed years. Years a subject has no observation for render as
// gaps, not zeros.
func LineChart(records []model.CitationRecord) string {
	if len(records) == 0 {
		return ""
	}

	yearSet := map[int]bool{}
	var names []string
	perSubject := map[string]map[int]int{}
	for _, rec := range records {
		yearSet[rec.Year] = true
		if _, seen := perSubject[rec.Name]; !seen {
			names = append(names, rec.Name)
			perSubject[rec.Name] = map[int]int{}
		}
		perSubject[rec.Name][rec.Year] = rec.Cites
	}

	years := make([]int, 0, len(yearSet))
	for year := range yearSet {
		years = append(years, year)
	}
	sort.Ints(years)

	series := make([][]float64, len(names))
	for i, name := range names {
		points := make([]float64, len(years))
		for j, year := range years {
			cites, ok := perSubject[name][year]
			if !ok {
				points[j] = math.NaN()
				continue
			}
			points[j] = float64(cites)
		}
		series[i] = points
	}

	caption := fmt.Sprintf("Citations per year, %d-%d", years[0], years[len(years)-1])
	return asciigraph.PlotMany(series,
		asciigraph.Height(12),
		asciigraph.Caption(caption),
		asciigraph.SeriesLegends(names...),
	)
}
