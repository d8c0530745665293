// Package service orchestrates the per-subject pipelines. Everything runs
// strictly sequentially: one subject's fetch, parse and extraction completes
// before the next begins.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"faculty-analyze-go/internal/extract"
	"faculty-analyze-go/internal/fetcher"
	"faculty-analyze-go/internal/model"

	"github.com/PuerkitoBio/goquery"
)

// ProfileService applies the extraction pipeline to faculty profile pages.
type ProfileService struct {
	fetcher fetcher.HTMLFetcher
	rules   []extract.InterestRule
}

// NewProfileService creates the service. Passing no rules selects the
// default heading rule set.
func NewProfileService(f fetcher.HTMLFetcher, rules []extract.InterestRule) *ProfileService {
	if len(rules) == 0 {
		rules = extract.DefaultRules()
	}
	return &ProfileService{fetcher: f, rules: rules}
}

// ProfileResult pairs a subject with its scraped row or the failure that
// prevented one.
type ProfileResult struct {
	Subject model.Subject
	Row     model.ProfileRow
	Err     error
}

// ScrapeAll runs the pipeline once per subject. A subject's failure is
// recorded on its result and does not abort the rest of the batch.
func (s *ProfileService) ScrapeAll(ctx context.Context, subjects []model.Subject) []ProfileResult {
	results := make([]ProfileResult, 0, len(subjects))
	for _, sub := range subjects {
		row, err := s.scrapeOne(ctx, sub)
		if err != nil {
			slog.Error("profile scrape failed",
				"subject", sub.Name, "url", sub.ProfileURL, "error", err)
			results = append(results, ProfileResult{Subject: sub, Err: err})
			continue
		}
		slog.Info("profile scraped",
			"subject", sub.Name, "interest_items", row.InterestCount)
		results = append(results, ProfileResult{Subject: sub, Row: row})
	}
	return results
}

func (s *ProfileService) scrapeOne(ctx context.Context, sub model.Subject) (model.ProfileRow, error) {
	raw, err := s.fetcher.FetchPage(ctx, sub.ProfileURL)
	if err != nil {
		return model.ProfileRow{}, err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return model.ProfileRow{}, fmt.Errorf("failed to parse %s: %w", sub.ProfileURL, err)
	}

	ex := extract.Extract(doc, s.rules)
	return model.ProfileRow{
		Name:          sub.Name,
		Department:    sub.Department,
		URL:           sub.ProfileURL,
		Title:         ex.Title,
		Email:         ex.Email,
		Interests:     ex.Interests,
		InterestCount: len(ex.Interests),
	}, nil
}
