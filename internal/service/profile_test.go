package service

import (
	"context"
	"errors"
	"testing"

	"faculty-analyze-go/internal/model"

	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	pages map[string]string
}

func (s *stubFetcher) FetchPage(_ context.Context, pageURL string) (string, error) {
	raw, ok := s.pages[pageURL]
	if !ok {
		return "", errors.New("connection refused")
	}
	return raw, nil
}

const janePage = `<html><body>
	<p>Distinguished Professor of Things</p>
	<p>jane@psu.edu</p>
	<h2>Areas of Interest</h2>
	<ul><li>Voting</li><li>Elections</li></ul>
</body></html>`

const johnPage = `<html><body>
	<p>Associate Professor of Sociology, john@psu.edu</p>
	<h3>Research Interests</h3>
	<p>Crime</p>
</body></html>`

func TestScrapeAll(t *testing.T) {
	subjects := []model.Subject{
		{Name: "Jane Doe", Department: "Political Science", ProfileURL: "https://example.edu/jane"},
		{Name: "John Roe", Department: "Sociology", ProfileURL: "https://example.edu/john"},
	}
	svc := NewProfileService(&stubFetcher{pages: map[string]string{
		"https://example.edu/jane": janePage,
		"https://example.edu/john": johnPage,
	}}, nil)

	results := svc.ScrapeAll(context.Background(), subjects)
	require.Len(t, results, 2)

	jane := results[0]
	require.NoError(t, jane.Err)
	require.Equal(t, "Jane Doe", jane.Row.Name)
	require.Contains(t, jane.Row.Title, "Distinguished Professor")
	require.Equal(t, "jane@psu.edu", jane.Row.Email)
	require.Equal(t, []string{"Voting", "Elections"}, jane.Row.Interests)
	require.Equal(t, 2, jane.Row.InterestCount)

	john := results[1]
	require.NoError(t, john.Err)
	require.Equal(t, []string{"Crime"}, john.Row.Interests)
}

func TestScrapeAllIsolatesFailures(t *testing.T) {
	subjects := []model.Subject{
		{Name: "Dead Link", ProfileURL: "https://example.edu/missing"},
		{Name: "Jane Doe", ProfileURL: "https://example.edu/jane"},
	}
	svc := NewProfileService(&stubFetcher{pages: map[string]string{
		"https://example.edu/jane": janePage,
	}}, nil)

	results := svc.ScrapeAll(context.Background(), subjects)
	require.Len(t, results, 2)
	require.Error(t, results[0].Err)
	require.NoError(t, results[1].Err)
	require.Equal(t, 2, results[1].Row.InterestCount)
}

func TestScrapeAllEmptyFieldsAreNotErrors(t *testing.T) {
	subjects := []model.Subject{{Name: "Nobody", ProfileURL: "https://example.edu/blank"}}
	svc := NewProfileService(&stubFetcher{pages: map[string]string{
		"https://example.edu/blank": "<html><body><p>nothing relevant</p></body></html>",
	}}, nil)

	results := svc.ScrapeAll(context.Background(), subjects)
	require.NoError(t, results[0].Err)
	require.Equal(t, "", results[0].Row.Title)
	require.Equal(t, "", results[0].Row.Email)
	require.Zero(t, results[0].Row.InterestCount)
}
