// Package engagement selects posts that meet score, comment and age thresholds.
package engagement

import (
	"time"

	"reddit-explorer/internal/models"
)

// Clock returns the current instant.
type Clock func() time.Time

// Selector applies engagement thresholds against a clock.
type Selector struct {
	now Clock
}

// NewSelector returns a Selector using now, or the UTC wall clock when now is nil.
func NewSelector(now Clock) *Selector {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &Selector{now: now}
}

// Apply keeps the posts satisfying every threshold, in input order.
func (s *Selector) Apply(posts []models.Post, minScore, minComments int, maxAge time.Duration) []models.Post {
	return FilterAt(posts, minScore, minComments, maxAge, s.now())
}

// Filter is Apply against the UTC wall clock.
func Filter(posts []models.Post, minScore, minComments int, maxAge time.Duration) []models.Post {
	return FilterAt(posts, minScore, minComments, maxAge, time.Now().UTC())
}

// FilterAt keeps posts with score >= minScore, comments >= minComments and a
// creation time no earlier than now-maxAge. The cutoff is inclusive and is
// computed once. Thresholds are not validated.
func FilterAt(posts []models.Post, minScore, minComments int, maxAge time.Duration, now time.Time) []models.Post {
	cutoff := now.Add(-maxAge)

	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if p.Score < minScore || p.CommentCount < minComments {
			continue
		}
		if p.CreatedAt.Before(cutoff) {
			continue
		}
		out = append(out, p)
	}
	return out
}
