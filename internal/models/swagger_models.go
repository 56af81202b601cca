package models

// ResponseMeta describes how a result list was produced
// swagger:model ResponseMeta
type ResponseMeta struct {
	// Limit sent to the content API
	RequestedLimit int `json:"requested_limit"`
	// Count of records returned
	Count int `json:"count"`
	// Processing time in milliseconds
	ProcessingTimeMs int64 `json:"processing_time_ms"`
}

// SubredditSearchResponse represents a response for the subreddit search endpoint
// swagger:model SubredditSearchResponse
type SubredditSearchResponse struct {
	// Search keyword
	Keyword string `json:"keyword"`
	// Matching subreddits
	Subreddits []Subreddit `json:"subreddits"`
	// Metadata about the request
	Meta ResponseMeta `json:"meta"`
}

// TrendingResponse represents a response for the trending posts endpoint
// swagger:model TrendingResponse
type TrendingResponse struct {
	// Subreddit name
	Subreddit string `json:"subreddit"`
	// Sort mode used
	Sort string `json:"sort"`
	// Posts in listing order
	Posts []Post `json:"posts"`
	// Metadata about the request
	Meta ResponseMeta `json:"meta"`
}

// SearchResponse represents a response for the global post search endpoint
// swagger:model SearchResponse
type SearchResponse struct {
	// Search query
	Query string `json:"query"`
	// Posts matching the search
	Posts []Post `json:"posts"`
	// Metadata about the search
	Meta ResponseMeta `json:"meta"`
}

// DatedPost is a post with its creation date formatted for display
// swagger:model DatedPost
type DatedPost struct {
	Post
	// Creation date, e.g. 2024-01-02 15:04:05 UTC
	Date string `json:"date"`
}

// EngagementResponse represents a response for the high engagement endpoint
// swagger:model EngagementResponse
type EngagementResponse struct {
	// Thresholds applied
	Query EngagementQuery `json:"query"`
	// Posts that passed every threshold
	Posts []DatedPost `json:"posts"`
	// Number of posts fetched before filtering
	Scanned int `json:"scanned"`
	// Metadata about the search
	Meta ResponseMeta `json:"meta"`
}
