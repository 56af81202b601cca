package explorer

import (
	"context"
	"fmt"
	"time"

	"reddit-explorer/internal/client"
	"reddit-explorer/internal/engagement"
	"reddit-explorer/internal/logging"
	"reddit-explorer/internal/metrics"
	"reddit-explorer/internal/models"
)

// Fixed per-request fetch limits.
const (
	SubredditSearchLimit = 10
	TrendingLimit        = 5
	PostSearchLimit      = 10
	EngagementScanLimit  = 50
)

// ExplorerService defines the operations behind each route
type ExplorerService interface {
	SearchSubreddits(ctx context.Context, keyword string) ([]models.Subreddit, error)
	TrendingPosts(ctx context.Context, subreddit string, sort client.SortMode) ([]models.Post, error)
	SearchPosts(ctx context.Context, query string) ([]models.Post, error)
	HighEngagementPosts(ctx context.Context, q models.EngagementQuery) (EngagementResult, error)
}

// EngagementResult is the outcome of one filtered search.
type EngagementResult struct {
	Posts   []models.Post
	Scanned int
}

type explorerService struct {
	client   client.ContentClient
	selector *engagement.Selector
}

// NewExplorerService wires a content client and an engagement selector. A nil
// selector uses the wall clock.
func NewExplorerService(c client.ContentClient, selector *engagement.Selector) ExplorerService {
	if selector == nil {
		selector = engagement.NewSelector(nil)
	}
	return &explorerService{
		client:   c,
		selector: selector,
	}
}

func (s *explorerService) SearchSubreddits(ctx context.Context, keyword string) ([]models.Subreddit, error) {
	subs, err := s.client.SearchSubreddits(ctx, keyword, SubredditSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("search subreddits: %w", err)
	}
	return subs, nil
}

func (s *explorerService) TrendingPosts(ctx context.Context, subreddit string, sort client.SortMode) ([]models.Post, error) {
	posts, err := s.client.ListPosts(ctx, subreddit, sort, TrendingLimit)
	if err != nil {
		return nil, fmt.Errorf("list %s posts of r/%s: %w", sort, subreddit, err)
	}
	return posts, nil
}

func (s *explorerService) SearchPosts(ctx context.Context, query string) ([]models.Post, error) {
	posts, err := s.client.SearchPosts(ctx, query, client.SearchRelevance, PostSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("search posts: %w", err)
	}
	return posts, nil
}

// HighEngagementPosts searches r/all once and keeps the posts meeting every
// threshold of q.
func (s *explorerService) HighEngagementPosts(ctx context.Context, q models.EngagementQuery) (EngagementResult, error) {
	startTime := time.Now()

	posts, err := s.client.SearchPosts(ctx, q.Query, client.SearchRelevance, EngagementScanLimit)
	if err != nil {
		return EngagementResult{}, fmt.Errorf("search posts for engagement filter: %w", err)
	}

	kept := s.selector.Apply(posts, q.MinScore, q.MinComments, q.MaxAge())
	metrics.RecordEngagement(len(posts), len(kept))

	logging.Debug().
		Str("query", q.Query).
		Int("min_score", q.MinScore).
		Int("min_comments", q.MinComments).
		Int("days", q.Days).
		Int("scanned", len(posts)).
		Int("kept", len(kept)).
		Dur("elapsed", time.Since(startTime)).
		Msg("engagement filter applied")

	return EngagementResult{Posts: kept, Scanned: len(posts)}, nil
}
