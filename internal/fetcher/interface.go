package fetcher

import "context"

// HTMLFetcher retrieves raw markup for a URL.
type HTMLFetcher interface {
	FetchPage(ctx context.Context, pageURL string) (string, error)
}

// AuthorSource resolves scholar identifiers to author handles and populates
// them section by section.
type AuthorSource interface {
	SearchAuthorID(ctx context.Context, scholarID string) (*Author, error)
	Fill(ctx context.Context, a *Author, sections ...Section) error
}

// Section names a group of author fields populated together, mirroring the
// detail sections of the citations page.
type Section string

const (
	SectionBasics       Section = "basics"
	SectionIndices      Section = "indices"
	SectionCounts       Section = "counts"
	SectionPublications Section = "publications"
)

// Publication is one entry of an author's publication list.
type Publication struct {
	Title     string `json:"title"`
	Year      int    `json:"year"`
	Citations int    `json:"citations"`
}

// Author is a Google Scholar author handle. SearchAuthorID returns it with
// only the identifier and URL set; Fill enriches it.
type Author struct {
	ScholarID    string        `json:"scholar_id"`
	ScholarURL   string        `json:"scholar_url"`
	Name         string        `json:"name"`
	Affiliation  string        `json:"affiliation"`
	CitedBy      int           `json:"citedby"`
	HIndex       int           `json:"hindex"`
	I10Index     int           `json:"i10index"`
	Publications []Publication `json:"publications,omitempty"`
	CitesPerYear map[int]int   `json:"cites_per_year,omitempty"`
}
