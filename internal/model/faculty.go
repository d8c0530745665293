package model

// Subject is one faculty member being profiled.
type Subject struct {
	Name       string `yaml:"name"`
	Department string `yaml:"department"`
	ProfileURL string `yaml:"profile_url"`
	ScholarID  string `yaml:"scholar_id"`
}

// ProfileRow is one scraped profile flattened for tabular output.
type ProfileRow struct {
	Name          string
	Department    string
	URL           string
	Title         string
	Email         string
	Interests     []string
	InterestCount int
}

// CitationRecord is one (subject, year, cites) row of the long-form table.
type CitationRecord struct {
	Name  string
	Year  int
	Cites int
}

// MedianRow is the per-subject median of yearly citation counts.
type MedianRow struct {
	Name        string
	MedianCites float64
}

// InfoboxRow is one Key/Value pair pulled from a Wikipedia infobox table.
type InfoboxRow struct {
	Key   string
	Value string
}
