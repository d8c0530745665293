package report

import (
	"fmt"
	"io"
	"strings"

	"faculty-analyze-go/internal/model"
	"faculty-analyze-go/internal/service"

	"github.com/jedib0t/go-pretty/v6/table"
)

func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(out)
	return t
}

// RenderProfiles prints the scraped-profile table in input order.
func RenderProfiles(out io.Writer, rows []model.ProfileRow) {
	t := newTable(out)
	t.AppendHeader(table.Row{"Name", "Department", "Title", "Email", "Interests", "Items"})
	for _, r := range rows {
		t.AppendRow(table.Row{
			r.Name, r.Department, r.Title, r.Email,
			strings.Join(r.Interests, "; "), r.InterestCount,
		})
	}
	t.Render()
}

// RenderAuthorSummary prints one subject's scholar profile metrics.
func RenderAuthorSummary(out io.Writer, res service.AuthorResult) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, res.Subject.Name)
	if res.Err != nil {
		fmt.Fprintf(out, "  unavailable: %v\n", res.Err)
		return
	}
	t := newTable(out)
	t.AppendHeader(table.Row{"Name", "Affiliation", "Cited By", "h-index", "i10-index"})
	t.AppendRow(table.Row{
		res.Author.Name, res.Author.Affiliation,
		res.Author.CitedBy, res.Author.HIndex, res.Author.I10Index,
	})
	t.Render()
}

// RenderPublications prints up to limit of the subject's publications.
func RenderPublications(out io.Writer, res service.AuthorResult, limit int) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, res.Subject.Name)
	if res.Err != nil {
		fmt.Fprintf(out, "  unavailable: %v\n", res.Err)
		return
	}
	t := newTable(out)
	t.AppendHeader(table.Row{"Title", "Year"})
	for i, pub := range res.Author.Publications {
		if i >= limit {
			break
		}
		t.AppendRow(table.Row{pub.Title, pub.Year})
	}
	t.Render()
}

// RenderCitationHead prints the first n rows of the combined citation table.
func RenderCitationHead(out io.Writer, records []model.CitationRecord, n int) {
	t := newTable(out)
	t.AppendHeader(table.Row{"Name", "Year", "Cites"})
	for i, rec := range records {
		if i >= n {
			break
		}
		t.AppendRow(table.Row{rec.Name, rec.Year, rec.Cites})
	}
	t.Render()
}

// RenderMedians prints the per-subject median citation counts.
func RenderMedians(out io.Writer, rows []model.MedianRow) {
	t := newTable(out)
	t.AppendHeader(table.Row{"Name", "Median Cites/Year"})
	for _, r := range rows {
		t.AppendRow(table.Row{r.Name, fmt.Sprintf("%.1f", r.MedianCites)})
	}
	t.Render()
}

// RenderInfobox prints the Key/Value rows of a scraped infobox.
func RenderInfobox(out io.Writer, rows []model.InfoboxRow) {
	t := newTable(out)
	t.AppendHeader(table.Row{"Key", "Value"})
	for _, r := range rows {
		t.AppendRow(table.Row{r.Key, r.Value})
	}
	t.Render()
}
