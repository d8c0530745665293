package fetcher

import (
	"context"
	"fmt"
	"regexp"
)

const defaultScholarBaseURL = "https://scholar.google.com"

// Scholar IDs are 12-character alphanumeric tokens, e.g. "yPbxmSwAAAAJ".
var scholarIDRe = regexp.MustCompile(`^[a-zA-Z0-9_-]{10,14}$`)

// AuthorClient reads author profiles off Google Scholar citations pages.
type AuthorClient struct {
	baseURL string
	fetcher HTMLFetcher
	parser  *AuthorParser
}

// NewAuthorClient creates a client. baseURL may be overridden for tests or
// mirrors; empty means scholar.google.com.
func NewAuthorClient(baseURL string, f HTMLFetcher) *AuthorClient {
	if baseURL == "" {
		baseURL = defaultScholarBaseURL
	}
	return &AuthorClient{
		baseURL: baseURL,
		fetcher: f,
		parser:  NewAuthorParser(),
	}
}

// SearchAuthorID resolves a scholar ID to an author handle. The handle
// carries only the identifier and profile URL until Fill populates it.
func (c *AuthorClient) SearchAuthorID(_ context.Context, scholarID string) (*Author, error) {
	if !scholarIDRe.MatchString(scholarID) {
		return nil, fmt.Errorf("%q does not look like a scholar id", scholarID)
	}
	return &Author{
		ScholarID:  scholarID,
		ScholarURL: c.baseURL + "/citations?user=" + scholarID + "&hl=en",
	}, nil
}

// Fill fetches the author's citations page once and populates the requested
// sections on the handle. Fetch and parse failures propagate to the caller.
func (c *AuthorClient) Fill(ctx context.Context, a *Author, sections ...Section) error {
	pageURL := fmt.Sprintf("%s/citations?user=%s&hl=en&pagesize=100", c.baseURL, a.ScholarID)
	rawHTML, err := c.fetcher.FetchPage(ctx, pageURL)
	if err != nil {
		return fmt.Errorf("failed to fetch scholar page: %w", err)
	}
	parsed, err := c.parser.Parse(rawHTML)
	if err != nil {
		return fmt.Errorf("failed to parse scholar page: %w", err)
	}

	for _, section := range sections {
		switch section {
		case SectionBasics:
			a.Name = parsed.Name
			a.Affiliation = parsed.Affiliation
		case SectionIndices:
			a.HIndex = parsed.HIndex
			a.I10Index = parsed.I10Index
		case SectionCounts:
			a.CitedBy = parsed.CitedBy
			a.CitesPerYear = parsed.CitesPerYear
		case SectionPublications:
			a.Publications = parsed.Publications
		}
	}
	return nil
}
