package service

import (
	"context"
	"log/slog"

	"faculty-analyze-go/internal/fetcher"
	"faculty-analyze-go/internal/model"
)

// CitationService pulls citation metrics for each subject from the scholar
// index.
type CitationService struct {
	source fetcher.AuthorSource
}

// NewCitationService creates the service.
func NewCitationService(source fetcher.AuthorSource) *CitationService {
	return &CitationService{source: source}
}

// AuthorResult pairs a subject with its populated author handle or the
// failure that prevented one.
type AuthorResult struct {
	Subject model.Subject
	Author  *fetcher.Author
	Err     error
}

// CollectAll resolves and fills each subject's author profile sequentially,
// isolating failures per subject.
func (s *CitationService) CollectAll(ctx context.Context, subjects []model.Subject) []AuthorResult {
	results := make([]AuthorResult, 0, len(subjects))
	for _, sub := range subjects {
		author, err := s.collectOne(ctx, sub)
		if err != nil {
			slog.Error("citation lookup failed",
				"subject", sub.Name, "scholar_id", sub.ScholarID, "error", err)
			results = append(results, AuthorResult{Subject: sub, Err: err})
			continue
		}
		slog.Info("citation profile filled",
			"subject", sub.Name, "citedby", author.CitedBy, "years", len(author.CitesPerYear))
		results = append(results, AuthorResult{Subject: sub, Author: author})
	}
	return results
}

func (s *CitationService) collectOne(ctx context.Context, sub model.Subject) (*fetcher.Author, error) {
	author, err := s.source.SearchAuthorID(ctx, sub.ScholarID)
	if err != nil {
		return nil, err
	}
	err = s.source.Fill(ctx, author,
		fetcher.SectionBasics,
		fetcher.SectionIndices,
		fetcher.SectionCounts,
		fetcher.SectionPublications,
	)
	if err != nil {
		return nil, err
	}
	return author, nil
}
