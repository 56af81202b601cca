package models

// SubredditSearchRequest is the form posted to /search_subreddits
// swagger:model SubredditSearchRequest
type SubredditSearchRequest struct {
	// Keyword matched against subreddit names and descriptions
	Keyword string `json:"keyword" form:"keyword" validate:"required,max=512"`
}

// TrendingRequest is the form posted to /trending_posts
// swagger:model TrendingRequest
type TrendingRequest struct {
	// Subreddit name without the r/ prefix: 2-21 letters, digits or underscores
	Subreddit string `json:"subreddit" form:"subreddit" validate:"required,subreddit"`
	// hot, new, top, rising, controversial or default
	SortBy string `json:"sort_by" form:"sort_by"`
}

// SearchRequest is the form posted to /search_posts
// swagger:model SearchRequest
type SearchRequest struct {
	// Search query
	Query string `json:"query" form:"query" validate:"required,max=512"`
}
