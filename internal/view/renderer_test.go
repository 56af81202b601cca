package view

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reddit-explorer/internal/models"
)

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, 3, 1, 9, 5, 7, 0, time.UTC)
	assert.Equal(t, "2024-03-01 09:05:07 UTC", FormatDate(ts))

	est := time.FixedZone("EST", -5*3600)
	assert.Equal(t, "2024-03-01 14:05:07 UTC", FormatDate(time.Date(2024, 3, 1, 9, 5, 7, 0, est)))
}

func TestDated(t *testing.T) {
	posts := []models.Post{
		{ID: "a", CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)},
		{ID: "b", CreatedAt: time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC)},
	}

	dated := Dated(posts)
	require.Len(t, dated, 2)
	assert.Equal(t, "a", dated[0].ID)
	assert.Equal(t, "2024-01-02 03:04:05 UTC", dated[0].Date)
	assert.Equal(t, "2023-12-31 23:59:59 UTC", dated[1].Date)

	assert.NotNil(t, Dated(nil))
	assert.Empty(t, Dated(nil))
}

func TestSortOptions(t *testing.T) {
	assert.Equal(t, []string{"hot", "new", "top", "rising", "controversial"}, PageData{}.SortOptions())
}

func render(t *testing.T, data PageData) string {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, IndexTemplate, data, nil))
	return buf.String()
}

func TestRenderEmptyPage(t *testing.T) {
	out := render(t, PageData{})

	assert.Contains(t, out, `action="/search_subreddits"`)
	assert.Contains(t, out, `action="/trending_posts"`)
	assert.Contains(t, out, `action="/search_posts"`)
	assert.Contains(t, out, `action="/high_engagement_posts"`)
	assert.Contains(t, out, `<option value="controversial">`)
	assert.NotContains(t, out, `class="error"`)
}

func TestRenderSubreddits(t *testing.T) {
	out := render(t, PageData{
		Keyword:    "golang",
		Subreddits: []models.Subreddit{{Name: "golang", Subscribers: 250000, URL: models.SubredditURL("golang")}},
	})

	assert.Contains(t, out, `href="https://www.reddit.com/r/golang/"`)
	assert.Contains(t, out, "250000 subscribers")
}

func TestRenderTrendingMarksSelectedSort(t *testing.T) {
	out := render(t, PageData{
		SubredditName: "golang",
		Sort:          "top",
		Trending:      []models.Post{{Title: "Go 1.24 released", Score: 900, CommentCount: 120, URL: "https://go.dev"}},
	})

	assert.Contains(t, out, `<option value="top" selected>`)
	assert.Contains(t, out, "Trending in r/golang (top)")
	assert.Contains(t, out, "120 comments | 900 upvotes")
}

func TestRenderEngagementResults(t *testing.T) {
	post := models.Post{
		Subreddit:    "startups",
		Title:        "AI startup raises seed",
		Score:        150,
		CommentCount: 40,
		CreatedAt:    time.Date(2024, 5, 9, 8, 0, 0, 0, time.UTC),
	}
	out := render(t, PageData{
		Engagement:    &models.EngagementQuery{Query: "ai startup", MinScore: 100, MinComments: 10, Days: 7},
		FilteredPosts: Dated([]models.Post{post}),
		Scanned:       50,
	})

	assert.Contains(t, out, "1 of 50 posts scanned")
	assert.Contains(t, out, "2024-05-09 08:00:00 UTC")
	assert.Contains(t, out, `name="min_upvotes" min="0" value="100"`)
	assert.Contains(t, out, "last 7 days")
}

func TestRenderEscapesError(t *testing.T) {
	out := render(t, PageData{Error: "<script>alert(1)</script>"})

	assert.Contains(t, out, `class="error"`)
	assert.NotContains(t, out, "<script>")
}

func TestRenderEngagementErrorHidesSummary(t *testing.T) {
	out := render(t, PageData{
		Error:      "min_upvotes must be at least 0",
		Engagement: &models.EngagementQuery{Query: "ai", MinScore: -1, Days: 7},
	})

	assert.Contains(t, out, "min_upvotes must be at least 0")
	assert.NotContains(t, out, "0 of 0 posts scanned")
	assert.NotContains(t, out, "High engagement posts for")
	assert.Contains(t, out, `name="min_upvotes" min="0" value="-1"`)
}
