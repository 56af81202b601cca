package client

import (
	"fmt"
	"strings"
)

// SortMode is the ranking requested for a subreddit listing.
type SortMode int

const (
	SortHot SortMode = iota
	SortNew
	SortTop
	SortRising
	SortControversial
)

var sortModeNames = map[SortMode]string{
	SortHot:           "hot",
	SortNew:           "new",
	SortTop:           "top",
	SortRising:        "rising",
	SortControversial: "controversial",
}

func (s SortMode) String() string {
	if name, ok := sortModeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("SortMode(%d)", int(s))
}

// SortModes lists every listing sort in display order.
func SortModes() []SortMode {
	return []SortMode{SortHot, SortNew, SortTop, SortRising, SortControversial}
}

// ParseSortMode converts a form value. Empty and "default" mean hot; any
// other unknown value is rejected.
func ParseSortMode(s string) (SortMode, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" || v == "default" {
		return SortHot, nil
	}
	for mode, name := range sortModeNames {
		if name == v {
			return mode, nil
		}
	}
	return SortHot, fmt.Errorf("unknown sort mode %q", s)
}

// SearchSort is the ranking requested for a post search.
type SearchSort string

const (
	SearchRelevance SearchSort = "relevance"
	SearchHot       SearchSort = "hot"
	SearchTop       SearchSort = "top"
	SearchNew       SearchSort = "new"
	SearchComments  SearchSort = "comments"
)
