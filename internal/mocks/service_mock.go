package mocks

import (
	"context"

	"reddit-explorer/internal/client"
	"reddit-explorer/internal/explorer"
	"reddit-explorer/internal/models"
)

type MockExplorerService struct {
	SearchSubredditsFunc    func(ctx context.Context, keyword string) ([]models.Subreddit, error)
	TrendingPostsFunc       func(ctx context.Context, subreddit string, sort client.SortMode) ([]models.Post, error)
	SearchPostsFunc         func(ctx context.Context, query string) ([]models.Post, error)
	HighEngagementPostsFunc func(ctx context.Context, q models.EngagementQuery) (explorer.EngagementResult, error)
}

func (m *MockExplorerService) SearchSubreddits(ctx context.Context, keyword string) ([]models.Subreddit, error) {
	return m.SearchSubredditsFunc(ctx, keyword)
}

func (m *MockExplorerService) TrendingPosts(ctx context.Context, subreddit string, sort client.SortMode) ([]models.Post, error) {
	return m.TrendingPostsFunc(ctx, subreddit, sort)
}

func (m *MockExplorerService) SearchPosts(ctx context.Context, query string) ([]models.Post, error) {
	return m.SearchPostsFunc(ctx, query)
}

func (m *MockExplorerService) HighEngagementPosts(ctx context.Context, q models.EngagementQuery) (explorer.EngagementResult, error) {
	return m.HighEngagementPostsFunc(ctx, q)
}
