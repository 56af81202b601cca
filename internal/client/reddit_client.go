// internal/client/reddit_client.go
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/loganintech/go-reddit/v2/reddit"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"reddit-explorer/internal/config"
	"reddit-explorer/internal/logging"
	"reddit-explorer/internal/metrics"
	"reddit-explorer/internal/models"
)

const breakerName = "reddit-api"

// RedditClient talks to the Reddit API with script-app credentials. It is
// safe for concurrent use and is meant to be built once per process.
type RedditClient struct {
	api     *reddit.Client
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[any]
}

var _ ContentClient = (*RedditClient)(nil)

// NewRedditClient builds a client from cfg. httpClient may be nil to use
// the library default transport.
func NewRedditClient(cfg *config.Config, httpClient *http.Client) (*RedditClient, error) {
	if cfg.UserAgent == "" {
		return nil, fmt.Errorf("REDDIT_USER_AGENT must not be empty")
	}

	creds := reddit.Credentials{
		ID:       cfg.Credentials.ClientID,
		Secret:   cfg.Credentials.ClientSecret,
		Username: cfg.Credentials.Username,
		Password: cfg.Credentials.Password,
	}

	opts := []reddit.Opt{reddit.WithUserAgent(cfg.UserAgent)}
	if httpClient != nil {
		opts = append(opts, reddit.WithHTTPClient(httpClient))
	}
	if cfg.RedditBaseURL != "" {
		opts = append(opts, reddit.WithBaseURL(cfg.RedditBaseURL))
	}
	if cfg.RedditTokenURL != "" {
		opts = append(opts, reddit.WithTokenURL(cfg.RedditTokenURL))
	}

	api, err := reddit.NewClient(creds, opts...)
	if err != nil {
		return nil, fmt.Errorf("create reddit client: %w", err)
	}

	limit := rate.Inf
	if cfg.RateLimitDelay > 0 {
		limit = rate.Every(cfg.RateLimitDelay)
	}

	logging.Info().
		Str("user_agent", cfg.UserAgent).
		Dur("rate_limit_delay", cfg.RateLimitDelay).
		Int("proxies", len(cfg.ProxyURLs)).
		Msg("reddit client initialized")

	return &RedditClient{
		api:     api,
		limiter: rate.NewLimiter(limit, 1),
		breaker: newBreaker(cfg.BreakerFailures, cfg.BreakerTimeout),
	}, nil
}

func newBreaker(failures int, timeout time.Duration) *gobreaker.CircuitBreaker[any] {
	if failures <= 0 {
		failures = 5
	}
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	return gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(failures)
		},
		// a caller giving up is not an upstream failure
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state change")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
		},
	})
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

// do paces, guards and instruments one API call.
func do[T any](ctx context.Context, c *RedditClient, op string, fn func() (T, error)) (T, error) {
	var zero T
	start := time.Now()

	if err := c.limiter.Wait(ctx); err != nil {
		// the limiter refuses early when the wait would outlast the deadline
		if ctx.Err() == nil {
			err = fmt.Errorf("%w: %v", context.DeadlineExceeded, err)
		}
		return zero, &APIError{Op: op, Err: err}
	}

	res, err := c.breaker.Execute(func() (any, error) {
		return fn()
	})
	metrics.RecordUpstream(op, err, time.Since(start))
	if err != nil {
		logging.Error().Err(err).Str("operation", op).Msg("reddit API call failed")
		return zero, &APIError{Op: op, Err: err}
	}
	return res.(T), nil
}

func (r *RedditClient) SearchSubreddits(ctx context.Context, keyword string, limit int) ([]models.Subreddit, error) {
	return do(ctx, r, "search_subreddits", func() ([]models.Subreddit, error) {
		subs, _, err := r.api.Subreddit.Search(ctx, url.QueryEscape(keyword), &reddit.ListSubredditOptions{
			ListOptions: reddit.ListOptions{Limit: limit},
		})
		if err != nil {
			return nil, err
		}

		out := make([]models.Subreddit, 0, len(subs))
		for _, s := range subs {
			if s == nil {
				continue
			}
			out = append(out, toSubreddit(s))
		}
		return out, nil
	})
}

func (r *RedditClient) ListPosts(ctx context.Context, subreddit string, sort SortMode, limit int) ([]models.Post, error) {
	name := strings.TrimPrefix(strings.TrimSpace(subreddit), "r/")
	if !models.IsSubredditName(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSubreddit, subreddit)
	}

	return do(ctx, r, "list_posts", func() ([]models.Post, error) {
		list := reddit.ListOptions{Limit: limit}

		var posts []*reddit.Post
		var err error
		switch sort {
		case SortHot:
			posts, _, err = r.api.Subreddit.HotPosts(ctx, name, &list)
		case SortNew:
			posts, _, err = r.api.Subreddit.NewPosts(ctx, name, &list)
		case SortTop:
			posts, _, err = r.api.Subreddit.TopPosts(ctx, name, &reddit.ListPostOptions{ListOptions: list})
		case SortRising:
			posts, _, err = r.api.Subreddit.RisingPosts(ctx, name, &list)
		case SortControversial:
			posts, _, err = r.api.Subreddit.ControversialPosts(ctx, name, &reddit.ListPostOptions{ListOptions: list})
		default:
			return nil, fmt.Errorf("unsupported sort mode %s", sort)
		}
		if err != nil {
			return nil, err
		}
		return toPosts(posts), nil
	})
}

func (r *RedditClient) SearchPosts(ctx context.Context, query string, sort SearchSort, limit int) ([]models.Post, error) {
	return do(ctx, r, "search_posts", func() ([]models.Post, error) {
		posts, _, err := r.api.Subreddit.SearchPosts(ctx, query, "all", &reddit.ListPostSearchOptions{
			ListPostOptions: reddit.ListPostOptions{
				ListOptions: reddit.ListOptions{Limit: limit},
			},
			Sort: string(sort),
		})
		if err != nil {
			return nil, err
		}
		return toPosts(posts), nil
	})
}

func toSubreddit(s *reddit.Subreddit) models.Subreddit {
	return models.Subreddit{
		Name:        s.Name,
		Subscribers: s.Subscribers,
		URL:         models.SubredditURL(s.Name),
	}
}

func toPosts(posts []*reddit.Post) []models.Post {
	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if p == nil {
			continue
		}

		var created time.Time
		if p.Created != nil {
			created = p.Created.Time.UTC()
		}

		out = append(out, models.Post{
			ID:           p.ID,
			Subreddit:    p.SubredditName,
			Title:        p.Title,
			Author:       p.Author,
			Score:        p.Score,
			CommentCount: p.NumberOfComments,
			URL:          p.URL,
			CreatedAt:    created,
		})
	}
	return out
}
