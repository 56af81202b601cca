package mocks

import (
	"context"

	"reddit-explorer/internal/client"
	"reddit-explorer/internal/models"
)

type MockContentClient struct {
	SearchSubredditsFunc func(ctx context.Context, keyword string, limit int) ([]models.Subreddit, error)
	ListPostsFunc        func(ctx context.Context, subreddit string, sort client.SortMode, limit int) ([]models.Post, error)
	SearchPostsFunc      func(ctx context.Context, query string, sort client.SearchSort, limit int) ([]models.Post, error)
}

func (m *MockContentClient) SearchSubreddits(ctx context.Context, keyword string, limit int) ([]models.Subreddit, error) {
	return m.SearchSubredditsFunc(ctx, keyword, limit)
}

func (m *MockContentClient) ListPosts(ctx context.Context, subreddit string, sort client.SortMode, limit int) ([]models.Post, error) {
	return m.ListPostsFunc(ctx, subreddit, sort, limit)
}

func (m *MockContentClient) SearchPosts(ctx context.Context, query string, sort client.SearchSort, limit int) ([]models.Post, error) {
	return m.SearchPostsFunc(ctx, query, sort, limit)
}
