package fetcher

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// AuthorParser turns a Google Scholar citations page into an Author.
type AuthorParser struct{}

// NewAuthorParser creates a parser.
func NewAuthorParser() *AuthorParser {
	return &AuthorParser{}
}

// Parse decodes the citations page HTML. Fields missing from the page stay
// at their zero values.
func (p *AuthorParser) Parse(rawHTML string) (*Author, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, err
	}

	a := &Author{CitesPerYear: map[int]int{}}

	a.Name = strings.TrimSpace(doc.Find("#gsc_prf_in").Text())
	a.Affiliation = strings.TrimSpace(doc.Find(".gsc_prf_il").First().Text())

	// Citation metrics table; only the all-time column is kept.
	doc.Find("#gsc_rsb_st tr").Each(func(_ int, tr *goquery.Selection) {
		label := strings.ToLower(strings.TrimSpace(tr.Find("td").First().Text()))
		allTime := strings.TrimSpace(tr.Find("td.gsc_rsb_std").Eq(0).Text())
		switch {
		case strings.Contains(label, "citations"):
			a.CitedBy, _ = strconv.Atoi(strings.ReplaceAll(allTime, ",", ""))
		case strings.Contains(label, "h-index"):
			a.HIndex, _ = strconv.Atoi(allTime)
		case strings.Contains(label, "i10-index"):
			a.I10Index, _ = strconv.Atoi(allTime)
		}
	})

	// Per-year citations come from the bar chart: gsc_g_t holds the year
	// labels, gsc_g_a the counts, matched up by position.
	var years []int
	doc.Find(".gsc_g_t").Each(func(_ int, s *goquery.Selection) {
		year, _ := strconv.Atoi(strings.TrimSpace(s.Text()))
		years = append(years, year)
	})
	doc.Find(".gsc_g_a").Each(func(i int, s *goquery.Selection) {
		if i >= len(years) || years[i] == 0 {
			return
		}
		cites, _ := strconv.Atoi(strings.TrimSpace(s.Text()))
		a.CitesPerYear[years[i]] = cites
	})

	doc.Find(".gsc_a_tr").Each(func(_ int, tr *goquery.Selection) {
		pub := Publication{}
		pub.Title = strings.TrimSpace(tr.Find(".gsc_a_at").Text())
		pub.Year, _ = strconv.Atoi(strings.TrimSpace(tr.Find(".gsc_a_y span").Text()))
		pub.Citations, _ = strconv.Atoi(strings.TrimSpace(tr.Find(".gsc_a_ac").Text()))
		if pub.Title != "" {
			a.Publications = append(a.Publications, pub)
		}
	})

	return a, nil
}
