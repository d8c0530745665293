package config

import (
	"errors"
	"fmt"
	"os"

	"faculty-analyze-go/internal/extract"
	"faculty-analyze-go/internal/model"

	"gopkg.in/yaml.v3"
)

// Roster validation errors.
var (
	ErrNoSubjects          = errors.New("at least one subject is required")
	ErrSubjectMissingName  = errors.New("subject name is required")
	ErrSubjectMissingURL   = errors.New("subject profile_url is required")
	ErrSubjectMissingID    = errors.New("subject scholar_id is required")
	ErrRuleMissingHeading  = errors.New("rule heading is required")
	ErrRuleMissingLevels   = errors.New("rule levels are required")
	ErrRuleUnknownStrategy = errors.New("rule strategy must be list_after_heading or next_sibling")
)

// Roster is the YAML shape for subjects and interest-extraction rules.
type Roster struct {
	Subjects []model.Subject        `yaml:"subjects"`
	Rules    []extract.InterestRule `yaml:"rules"`
}

// DefaultRoster returns the built-in PSU faculty roster and default rules.
func DefaultRoster() *Roster {
	return &Roster{
		Subjects: []model.Subject{
			{
				Name:       "Matt Golder",
				Department: "Political Science (College of the Liberal Arts)",
				ProfileURL: "https://polisci.la.psu.edu/people/mrg19/",
				ScholarID:  "yPbxmSwAAAAJ",
			},
			{
				Name:       "Sona N. Golder",
				Department: "Political Science (College of the Liberal Arts)",
				ProfileURL: "https://polisci.la.psu.edu/people/sng11/",
				ScholarID:  "Cuz1fTcAAAAJ",
			},
			{
				Name:       "Derek Kreager",
				Department: "Sociology & Criminology (College of the Liberal Arts)",
				ProfileURL: "https://sociology.la.psu.edu/people/derek-kreager/",
				ScholarID:  "9c6_ChYAAAAJ",
			},
			{
				Name:       "Jeremy Staff",
				Department: "Sociology & Criminology (College of the Liberal Arts)",
				ProfileURL: "https://sociology.la.psu.edu/people/jeremy-staff/",
				ScholarID:  "nm4ZRCgAAAAJ",
			},
		},
		Rules: extract.DefaultRules(),
	}
}

// LoadRoster reads a roster file. An empty path selects the built-in
// defaults; a file without rules falls back to the default rule set.
func LoadRoster(path string) (*Roster, error) {
	if path == "" {
		return DefaultRoster(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}
	var roster Roster
	if err := yaml.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("failed to parse roster: %w", err)
	}
	if len(roster.Rules) == 0 {
		roster.Rules = extract.DefaultRules()
	}
	if err := roster.Validate(); err != nil {
		return nil, err
	}
	return &roster, nil
}

// Validate checks that subjects and rules are complete enough to run.
func (r *Roster) Validate() error {
	if len(r.Subjects) == 0 {
		return ErrNoSubjects
	}
	for i, sub := range r.Subjects {
		if sub.Name == "" {
			return fmt.Errorf("subject %d: %w", i, ErrSubjectMissingName)
		}
		if sub.ProfileURL == "" {
			return fmt.Errorf("subject %q: %w", sub.Name, ErrSubjectMissingURL)
		}
		if sub.ScholarID == "" {
			return fmt.Errorf("subject %q: %w", sub.Name, ErrSubjectMissingID)
		}
	}
	for i, rule := range r.Rules {
		if rule.Heading == "" {
			return fmt.Errorf("rule %d: %w", i, ErrRuleMissingHeading)
		}
		if len(rule.Levels) == 0 {
			return fmt.Errorf("rule %q: %w", rule.Heading, ErrRuleMissingLevels)
		}
		if rule.Strategy != extract.ListAfterHeading && rule.Strategy != extract.NextSibling {
			return fmt.Errorf("rule %q: %w", rule.Heading, ErrRuleUnknownStrategy)
		}
	}
	return nil
}
