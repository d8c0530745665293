package extract

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func parseHTML(t *testing.T, raw string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	require.NoError(t, err)
	return doc
}

func TestNormalizeSpace(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"a  b", "a b"},
		{"\t a \n\n b\r\n", "a b"},
		{"  ", ""},
		{"already clean", "already clean"},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.want, NormalizeSpace(tc.in))
	}
}

func TestFullText(t *testing.T) {
	doc := parseHTML(t, `<html><body>
		<h1>Jane   Doe</h1>
		<p>Distinguished <b>Professor</b>
		of Things</p>
	</body></html>`)

	require.Equal(t, "Jane Doe Distinguished Professor of Things", FullText(doc))
}

func TestTitle(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want string
	}{
		{
			name: "distinguished prefix",
			text: "Jane Doe Distinguished Professor of Things jane@psu.edu",
			want: "Distinguished Professor of Things jane@psu.edu",
		},
		{
			name: "associate without prefix",
			text: "John Doe Associate Professor of Sociology",
			want: "Associate Professor of Sociology",
		},
		{
			name: "first of several occurrences wins",
			text: "Liberal Arts Professor of Politics and also Professor of History",
			want: "Liberal Arts Professor of Politics and also Professor of History",
		},
		{
			name: "no professor keyword",
			text: "Jane Doe Senior Lecturer",
			want: "",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Title(tc.text))
		})
	}
}

func TestTitleTruncatesTrailingRun(t *testing.T) {
	long := "Professor " + strings.Repeat("x", 200)
	got := Title(long)
	// keyword plus at most 120 trailing characters
	require.LessOrEqual(t, len(got), len("Professor")+120)
	require.True(t, strings.HasPrefix(got, "Professor"))
}

func TestEmail(t *testing.T) {
	require.Equal(t, "jane@psu.edu", Email("contact jane@psu.edu or john@psu.edu"))
	require.Equal(t, "", Email("contact jane@example.com"))
}

func TestInterestsAreasOfInterest(t *testing.T) {
	doc := parseHTML(t, `<html><body>
		<h2>Areas of Interest</h2>
		<ul>
			<li> Voting </li>
			<li><a href="#">Elections</a></li>
			<li>  </li>
		</ul>
	</body></html>`)

	require.Equal(t, []string{"Voting", "Elections"}, Interests(doc, DefaultRules()))
}

func TestInterestsListNotImmediateSibling(t *testing.T) {
	// the first following <ul> counts even with elements in between
	doc := parseHTML(t, `<html><body>
		<h2>Areas of Interest</h2>
		<p>intro</p>
		<ul><li>Crime</li></ul>
	</body></html>`)

	require.Equal(t, []string{"Crime"}, Interests(doc, DefaultRules()))
}

func TestInterestsResearchInterestsBothLevels(t *testing.T) {
	doc := parseHTML(t, `<html><body>
		<h2>Research Interests</h2>
		<div><span>Networks</span> and <span>Methods</span></div>
		<h3>Research Interests</h3>
		<p>Life course</p>
	</body></html>`)

	require.Equal(t, []string{"Networks", "and", "Methods", "Life course"},
		Interests(doc, DefaultRules()))
}

func TestInterestsNoMatchingHeading(t *testing.T) {
	doc := parseHTML(t, `<html><body>
		<h2>Biography</h2>
		<ul><li>not an interest</li></ul>
	</body></html>`)

	require.Empty(t, Interests(doc, DefaultRules()))
}

func TestInterestsHeadingTextNormalized(t *testing.T) {
	doc := parseHTML(t, `<html><body>
		<h2>  Areas of
		Interest </h2>
		<ul><li>Voting</li></ul>
	</body></html>`)

	require.Equal(t, []string{"Voting"}, Interests(doc, DefaultRules()))
}

func TestExtractEndToEnd(t *testing.T) {
	doc := parseHTML(t, `<html><body>
		<h1>Jane Doe</h1>
		<p>Distinguished Professor of Things</p>
		<p>jane@psu.edu</p>
		<h2>Areas of Interest</h2>
		<ul>
			<li>Voting</li>
			<li>Elections</li>
		</ul>
	</body></html>`)

	ex := Extract(doc, DefaultRules())
	require.True(t, strings.HasPrefix(ex.Title, "Distinguished Professor"))
	require.Equal(t, "jane@psu.edu", ex.Email)
	require.Equal(t, []string{"Voting", "Elections"}, ex.Interests)
	require.Len(t, ex.Interests, 2)
}

func TestExtractEmptyPage(t *testing.T) {
	ex := Extract(parseHTML(t, `<html><body><p>nothing here</p></body></html>`), DefaultRules())
	require.Equal(t, "", ex.Title)
	require.Equal(t, "", ex.Email)
	require.Empty(t, ex.Interests)
}
