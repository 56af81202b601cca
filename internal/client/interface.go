// internal/client/interface.go
package client

import (
	"context"
	"errors"
	"fmt"

	"reddit-explorer/internal/models"
)

// ContentClient is the subset of the Reddit API the explorer needs.
type ContentClient interface {
	SearchSubreddits(ctx context.Context, keyword string, limit int) ([]models.Subreddit, error)
	ListPosts(ctx context.Context, subreddit string, sort SortMode, limit int) ([]models.Post, error)
	SearchPosts(ctx context.Context, query string, sort SearchSort, limit int) ([]models.Post, error)
}

// ErrInvalidSubreddit is returned for names outside Reddit's subreddit charset.
var ErrInvalidSubreddit = errors.New("invalid subreddit name")

// ErrUpstream is matched by every APIError.
var ErrUpstream = errors.New("content API request failed")

// APIError wraps a failed call to the content API.
type APIError struct {
	Op  string
	Err error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func (e *APIError) Is(target error) bool {
	return target == ErrUpstream
}
