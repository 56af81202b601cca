package explorer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reddit-explorer/internal/client"
	"reddit-explorer/internal/engagement"
	"reddit-explorer/internal/explorer"
	"reddit-explorer/internal/mocks"
	"reddit-explorer/internal/models"
)

var fixedNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func fixedSelector() *engagement.Selector {
	return engagement.NewSelector(func() time.Time { return fixedNow })
}

func TestSearchSubredditsUsesFixedLimit(t *testing.T) {
	mockClient := &mocks.MockContentClient{
		SearchSubredditsFunc: func(ctx context.Context, keyword string, limit int) ([]models.Subreddit, error) {
			assert.Equal(t, "golang", keyword)
			assert.Equal(t, explorer.SubredditSearchLimit, limit)
			return []models.Subreddit{{Name: "golang", Subscribers: 10, URL: models.SubredditURL("golang")}}, nil
		},
	}

	svc := explorer.NewExplorerService(mockClient, nil)
	subs, err := svc.SearchSubreddits(context.Background(), "golang")

	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "https://www.reddit.com/r/golang/", subs[0].URL)
}

func TestTrendingPostsPassesSortMode(t *testing.T) {
	mockClient := &mocks.MockContentClient{
		ListPostsFunc: func(ctx context.Context, subreddit string, sort client.SortMode, limit int) ([]models.Post, error) {
			assert.Equal(t, "golang", subreddit)
			assert.Equal(t, client.SortTop, sort)
			assert.Equal(t, explorer.TrendingLimit, limit)
			return []models.Post{{ID: "1"}, {ID: "2"}}, nil
		},
	}

	svc := explorer.NewExplorerService(mockClient, nil)
	posts, err := svc.TrendingPosts(context.Background(), "golang", client.SortTop)

	require.NoError(t, err)
	assert.Len(t, posts, 2)
}

func TestSearchPostsUsesRelevance(t *testing.T) {
	mockClient := &mocks.MockContentClient{
		SearchPostsFunc: func(ctx context.Context, query string, sort client.SearchSort, limit int) ([]models.Post, error) {
			assert.Equal(t, client.SearchRelevance, sort)
			assert.Equal(t, explorer.PostSearchLimit, limit)
			return nil, nil
		},
	}

	svc := explorer.NewExplorerService(mockClient, nil)
	posts, err := svc.SearchPosts(context.Background(), "generics")

	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestHighEngagementPostsFilters(t *testing.T) {
	day := 24 * time.Hour
	fetched := []models.Post{
		{ID: "low", Score: 5, CommentCount: 2, CreatedAt: fixedNow.Add(-day)},
		{ID: "old", Score: 500, CommentCount: 50, CreatedAt: fixedNow.Add(-10 * day)},
		{ID: "hit", Score: 200, CommentCount: 60, CreatedAt: fixedNow.Add(-2 * day)},
	}

	mockClient := &mocks.MockContentClient{
		SearchPostsFunc: func(ctx context.Context, query string, sort client.SearchSort, limit int) ([]models.Post, error) {
			assert.Equal(t, "ai startup", query)
			assert.Equal(t, explorer.EngagementScanLimit, limit)
			return fetched, nil
		},
	}

	svc := explorer.NewExplorerService(mockClient, fixedSelector())
	res, err := svc.HighEngagementPosts(context.Background(), models.EngagementQuery{
		Query:       "ai startup",
		MinScore:    100,
		MinComments: 10,
		Days:        7,
	})

	require.NoError(t, err)
	assert.Equal(t, 3, res.Scanned)
	require.Len(t, res.Posts, 1)
	assert.Equal(t, "hit", res.Posts[0].ID)
}

func TestClientErrorsAreWrapped(t *testing.T) {
	upstream := &client.APIError{Op: "search_posts", Err: errors.New("503 Service Unavailable")}
	mockClient := &mocks.MockContentClient{
		SearchPostsFunc: func(ctx context.Context, query string, sort client.SearchSort, limit int) ([]models.Post, error) {
			return nil, upstream
		},
		SearchSubredditsFunc: func(ctx context.Context, keyword string, limit int) ([]models.Subreddit, error) {
			return nil, upstream
		},
		ListPostsFunc: func(ctx context.Context, subreddit string, sort client.SortMode, limit int) ([]models.Post, error) {
			return nil, upstream
		},
	}
	svc := explorer.NewExplorerService(mockClient, fixedSelector())
	ctx := context.Background()

	_, err := svc.SearchPosts(ctx, "q")
	assert.ErrorIs(t, err, client.ErrUpstream)

	_, err = svc.SearchSubreddits(ctx, "q")
	assert.ErrorIs(t, err, client.ErrUpstream)

	_, err = svc.TrendingPosts(ctx, "golang", client.SortHot)
	assert.ErrorIs(t, err, client.ErrUpstream)

	res, err := svc.HighEngagementPosts(ctx, models.EngagementQuery{Query: "q"})
	assert.ErrorIs(t, err, client.ErrUpstream)
	assert.Empty(t, res.Posts)
}
