package models

import (
	"fmt"
	"regexp"
	"time"
)

// Post represents a Reddit post as fetched from the content API
// swagger:model Post
type Post struct {
	// Reddit post ID
	ID string `json:"id"`
	// Subreddit name without the r/ prefix
	Subreddit string `json:"subreddit"`
	// Post title
	Title string `json:"title"`
	// Author's username
	Author string `json:"author,omitempty"`
	// Post score (upvotes minus downvotes)
	Score int `json:"score"`
	// Number of comments
	CommentCount int `json:"comments"`
	// Link target of the post
	URL string `json:"url"`
	// Creation timestamp (UTC)
	CreatedAt time.Time `json:"created_at"`
}

// Subreddit represents a subreddit search result
// swagger:model Subreddit
type Subreddit struct {
	// Display name without the r/ prefix
	Name string `json:"name"`
	// Subscriber count
	Subscribers int `json:"subscribers"`
	// Full URL to the subreddit
	URL string `json:"url"`
}

// SubredditURL returns the canonical web URL of a subreddit.
func SubredditURL(name string) string {
	return fmt.Sprintf("https://www.reddit.com/r/%s/", name)
}

// EngagementQuery holds the thresholds of a high engagement search.
// swagger:model EngagementQuery
type EngagementQuery struct {
	// Search query
	Query string `json:"query" validate:"required,max=512"`
	// Minimum score a post must have
	MinScore int `json:"min_upvotes" validate:"gte=0"`
	// Minimum number of comments a post must have
	MinComments int `json:"min_comments" validate:"gte=0"`
	// Maximum post age in days
	Days int `json:"days" validate:"gte=0,lte=36500"`
}

// MaxAge converts the day window into a duration.
func (q EngagementQuery) MaxAge() time.Duration {
	return time.Duration(q.Days) * 24 * time.Hour
}

// HTTPError represents an HTTP error response
// swagger:model HTTPError
type HTTPError struct {
	// HTTP status code
	Code int `json:"code"`
	// Error message
	Message string `json:"message"`
}

var subredditNamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{2,21}$`)

// IsSubredditName reports whether name uses Reddit's subreddit name charset.
func IsSubredditName(name string) bool {
	return subredditNamePattern.MatchString(name)
}
