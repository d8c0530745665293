package service

import (
	"context"
	"errors"
	"testing"

	"faculty-analyze-go/internal/fetcher"
	"faculty-analyze-go/internal/model"

	"github.com/stretchr/testify/require"
)

type stubAuthorSource struct {
	authors map[string]*fetcher.Author
}

func (s *stubAuthorSource) SearchAuthorID(_ context.Context, scholarID string) (*fetcher.Author, error) {
	if _, ok := s.authors[scholarID]; !ok {
		return nil, errors.New("unknown scholar id")
	}
	return &fetcher.Author{ScholarID: scholarID}, nil
}

func (s *stubAuthorSource) Fill(_ context.Context, a *fetcher.Author, _ ...fetcher.Section) error {
	*a = *s.authors[a.ScholarID]
	return nil
}

func TestCollectAll(t *testing.T) {
	subjects := []model.Subject{
		{Name: "Jane Doe", ScholarID: "janeAAAAAAAJ"},
		{Name: "Gone Person", ScholarID: "goneAAAAAAAJ"},
	}
	svc := NewCitationService(&stubAuthorSource{authors: map[string]*fetcher.Author{
		"janeAAAAAAAJ": {
			ScholarID:    "janeAAAAAAAJ",
			Name:         "Jane Doe",
			CitedBy:      1234,
			CitesPerYear: map[int]int{2022: 4, 2021: 2, 2023: 9},
		},
	}})

	results := svc.CollectAll(context.Background(), subjects)
	require.Len(t, results, 2)

	require.NoError(t, results[0].Err)
	require.Equal(t, 1234, results[0].Author.CitedBy)
	require.Len(t, results[0].Author.CitesPerYear, 3)

	// resolution failure stays on its own result
	require.Error(t, results[1].Err)
	require.Nil(t, results[1].Author)
}
